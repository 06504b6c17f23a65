package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/urmilakunj/society_backend/internal/core/ports/services"
	"github.com/urmilakunj/society_backend/internal/dto"
	"github.com/urmilakunj/society_backend/internal/middleware"
)

// financeHandler handles HTTP requests for lifetime financial summaries.
type financeHandler struct {
	financeService portssvc.FinanceSvcFacade
}

func newFinanceHandler(fs portssvc.FinanceSvcFacade) *financeHandler {
	return &financeHandler{financeService: fs}
}

// registerFinanceRoutes registers routes for the unified balance view.
func registerFinanceRoutes(rg *gin.RouterGroup, financeService portssvc.FinanceSvcFacade) {
	h := newFinanceHandler(financeService)

	rg.GET("/finance/summary", h.getUnifiedSummary)
}

// getUnifiedSummary godoc
// @Summary Get the society's lifetime balance
// @Description Aggregates verified income, expenses, and manual adjustments across every period into the current balance.
// @Tags finance
// @Produce json
// @Success 200 {object} dto.UnifiedTotalsResponse
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Security BearerAuth
// @Router /finance/summary [get]
func (h *financeHandler) getUnifiedSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	totals, err := h.financeService.GetUnifiedTotals(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute unified summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUnifiedTotalsResponse(totals))
}
