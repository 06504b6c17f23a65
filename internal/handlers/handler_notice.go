package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urmilakunj/society_backend/internal/apperrors"
	portssvc "github.com/urmilakunj/society_backend/internal/core/ports/services"
	"github.com/urmilakunj/society_backend/internal/dto"
	"github.com/urmilakunj/society_backend/internal/middleware"
)

// noticeHandler handles HTTP requests related to notices.
type noticeHandler struct {
	noticeService portssvc.NoticeSvcFacade
}

func newNoticeHandler(ns portssvc.NoticeSvcFacade) *noticeHandler {
	return &noticeHandler{noticeService: ns}
}

// registerNoticeRoutes registers routes related to notices.
func registerNoticeRoutes(rg *gin.RouterGroup, noticeService portssvc.NoticeSvcFacade) {
	h := newNoticeHandler(noticeService)

	notices := rg.Group("/notices")
	{
		notices.GET("", h.listNotices)
		notices.POST("", middleware.RequireAdmin(), h.createNotice)
		notices.DELETE("/:noticeID", middleware.RequireAdmin(), h.deleteNotice)
	}
}

// createNotice godoc
// @Summary Publish a notice
// @Description Publishes a general notice to the society board (admin operation).
// @Tags notices
// @Accept json
// @Produce json
// @Param notice body dto.CreateNoticeRequest true "Notice details"
// @Success 201 {object} dto.NoticeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create notice"
// @Security BearerAuth
// @Router /notices [post]
func (h *noticeHandler) createNotice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	notice, err := h.noticeService.CreateNotice(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create notice", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create notice"})
		}
		return
	}

	logger.Info("Notice created", slog.String("notice_id", notice.NoticeID))
	c.JSON(http.StatusCreated, dto.ToNoticeResponse(notice))
}

// listNotices godoc
// @Summary List notices
// @Description Retrieves all notices, pinned ones first, then newest first.
// @Tags notices
// @Produce json
// @Success 200 {array} dto.NoticeResponse
// @Failure 500 {object} map[string]string "Failed to list notices"
// @Security BearerAuth
// @Router /notices [get]
func (h *noticeHandler) listNotices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	notices, err := h.noticeService.ListNotices(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list notices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list notices"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListNoticeResponse(notices))
}

// deleteNotice godoc
// @Summary Delete a notice
// @Description Removes a notice from the board (admin operation).
// @Tags notices
// @Produce json
// @Param noticeID path string true "Notice ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Notice not found"
// @Failure 500 {object} map[string]string "Failed to delete notice"
// @Security BearerAuth
// @Router /notices/{noticeID} [delete]
func (h *noticeHandler) deleteNotice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	noticeID := c.Param("noticeID")

	if err := h.noticeService.DeleteNotice(c.Request.Context(), noticeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notice not found"})
		} else {
			logger.Error("Failed to delete notice", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete notice"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
