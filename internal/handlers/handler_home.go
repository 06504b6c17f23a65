package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHome godoc
// @Summary Service banner
// @Description Returns a short identification string for the service.
// @Tags home
// @Produce plain
// @Success 200 {string} string "society backend"
// @Router / [get]
func GetHome(c *gin.Context) {
	c.String(http.StatusOK, "society backend")
}
