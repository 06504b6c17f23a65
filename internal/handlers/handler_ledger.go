package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urmilakunj/society_backend/internal/apperrors"
	portssvc "github.com/urmilakunj/society_backend/internal/core/ports/services"
	"github.com/urmilakunj/society_backend/internal/dto"
	"github.com/urmilakunj/society_backend/internal/middleware"
)

// ledgerHandler handles HTTP requests for reconciled statements,
// opening balances, and manual adjustments.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// RegisterLedgerRoutes registers statement and adjustment routes under a
// period. Exported for handler tests.
func RegisterLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	period := rg.Group("/periods/:periodID")
	{
		period.GET("/statement", h.getStatement)
		period.GET("/statement/export", h.exportStatement)
		period.GET("/stats", h.getStats)
		period.GET("/opening-balance", h.getOpeningBalance)
		period.PUT("/opening-balance", middleware.RequireAdmin(), h.setOpeningBalance)

		entries := period.Group("/entries")
		{
			entries.GET("", h.listManualEntries)
			entries.POST("", middleware.RequireAdmin(), h.createManualEntry)
			entries.PUT("/:entryID", middleware.RequireAdmin(), h.updateManualEntry)
			entries.DELETE("/:entryID", middleware.RequireAdmin(), h.deleteManualEntry)
		}
	}
}

// getStatement godoc
// @Summary Get a period's reconciled statement
// @Description Merges verified payments, expenses, and manual adjustments into a chronologically ordered running-balance statement.
// @Tags ledger
// @Produce json
// @Param periodID path string true "Period ID (YYYY-MM)"
// @Success 200 {object} dto.LedgerStatementResponse
// @Failure 404 {object} map[string]string "Period not found"
// @Failure 500 {object} map[string]string "Failed to build statement"
// @Security BearerAuth
// @Router /periods/{periodID}/statement [get]
func (h *ledgerHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID := c.Param("periodID")

	stmt, err := h.ledgerService.GetStatement(c.Request.Context(), periodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Period not found"})
		} else {
			logger.Error("Failed to build statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build statement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerStatementResponse(stmt))
}

// exportStatement godoc
// @Summary Export a period's statement
// @Description Renders the reconciled statement as a downloadable CSV or XLSX file.
// @Tags ledger
// @Produce application/octet-stream
// @Param periodID path string true "Period ID (YYYY-MM)"
// @Param format query string false "Export format: csv (default) or xlsx"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Unsupported format"
// @Failure 404 {object} map[string]string "Period not found"
// @Failure 500 {object} map[string]string "Failed to export statement"
// @Security BearerAuth
// @Router /periods/{periodID}/statement/export [get]
func (h *ledgerHandler) exportStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID := c.Param("periodID")
	format := c.DefaultQuery("format", "csv")

	var (
		data        []byte
		contentType string
		filename    string
		err         error
	)
	switch format {
	case "csv":
		data, err = h.ledgerService.ExportStatementCSV(c.Request.Context(), periodID)
		contentType = "text/csv"
		filename = fmt.Sprintf("ledger-%s.csv", periodID)
	case "xlsx":
		data, err = h.ledgerService.ExportStatementXLSX(c.Request.Context(), periodID)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		filename = fmt.Sprintf("ledger-%s.xlsx", periodID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported export format: " + format})
		return
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Period not found"})
		} else {
			logger.Error("Failed to export statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export statement"})
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

// getStats godoc
// @Summary Get a period's collection snapshot
// @Description Returns expected, paid, verified, and pending counts plus the verified amount collected.
// @Tags ledger
// @Produce json
// @Param periodID path string true "Period ID (YYYY-MM)"
// @Success 200 {object} dto.PeriodStatsResponse
// @Failure 404 {object} map[string]string "Period not found"
// @Failure 500 {object} map[string]string "Failed to compute stats"
// @Security BearerAuth
// @Router /periods/{periodID}/stats [get]
func (h *ledgerHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID := c.Param("periodID")

	stats, err := h.ledgerService.GetPeriodStats(c.Request.Context(), periodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Period not found"})
		} else {
			logger.Error("Failed to compute stats", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPeriodStatsResponse(stats))
}

// getOpeningBalance godoc
// @Summary Get a period's opening balance
// @Description Retrieves the stored opening balance, zero when none was ever set.
// @Tags ledger
// @Produce json
// @Param periodID path string true "Period ID (YYYY-MM)"
// @Success 200 {object} dto.OpeningBalanceResponse
// @Failure 404 {object} map[string]string "Period not found"
// @Failure 500 {object} map[string]string "Failed to retrieve opening balance"
// @Security BearerAuth
// @Router /periods/{periodID}/opening-balance [get]
func (h *ledgerHandler) getOpeningBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID := c.Param("periodID")

	amount, err := h.ledgerService.GetOpeningBalance(c.Request.Context(), periodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Period not found"})
		} else {
			logger.Error("Failed to get opening balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve opening balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.OpeningBalanceResponse{PeriodID: periodID, Amount: amount})
}

// setOpeningBalance godoc
// @Summary Set a period's opening balance
// @Description Stores the opening balance used as the statement's starting figure (admin operation).
// @Tags ledger
// @Accept json
// @Produce json
// @Param periodID path string true "Period ID (YYYY-MM)"
// @Param balance body dto.SetOpeningBalanceRequest true "Opening balance"
// @Success 200 {object} dto.OpeningBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Period not found"
// @Failure 500 {object} map[string]string "Failed to set opening balance"
// @Security BearerAuth
// @Router /periods/{periodID}/opening-balance [put]
func (h *ledgerHandler) setOpeningBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID := c.Param("periodID")

	var req dto.SetOpeningBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.ledgerService.SetOpeningBalance(c.Request.Context(), periodID, req.Amount, updaterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Period not found"})
		} else {
			logger.Error("Failed to set opening balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set opening balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.OpeningBalanceResponse{PeriodID: periodID, Amount: req.Amount})
}

// listManualEntries godoc
// @Summary List a period's manual entries
// @Description Retrieves the manual ledger adjustments recorded for a period.
// @Tags ledger
// @Produce json
// @Param periodID path string true "Period ID (YYYY-MM)"
// @Success 200 {array} dto.ManualEntryResponse
// @Failure 404 {object} map[string]string "Period not found"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Security BearerAuth
// @Router /periods/{periodID}/entries [get]
func (h *ledgerHandler) listManualEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID := c.Param("periodID")

	entries, err := h.ledgerService.ListManualEntries(c.Request.Context(), periodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Period not found"})
		} else {
			logger.Error("Failed to list manual entries", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListManualEntryResponse(entries))
}

// createManualEntry godoc
// @Summary Add a manual ledger entry
// @Description Adds a manual Cr/Dr adjustment to a period's ledger (admin operation).
// @Tags ledger
// @Accept json
// @Produce json
// @Param periodID path string true "Period ID (YYYY-MM)"
// @Param entry body dto.CreateManualEntryRequest true "Entry details"
// @Success 201 {object} dto.ManualEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Period not found"
// @Failure 500 {object} map[string]string "Failed to create entry"
// @Security BearerAuth
// @Router /periods/{periodID}/entries [post]
func (h *ledgerHandler) createManualEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID := c.Param("periodID")

	var req dto.CreateManualEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.ledgerService.CreateManualEntry(c.Request.Context(), periodID, req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Period not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create manual entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create entry"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToManualEntryResponse(entry))
}

// updateManualEntry godoc
// @Summary Update a manual ledger entry
// @Description Replaces a manual adjustment's fields (admin operation).
// @Tags ledger
// @Accept json
// @Produce json
// @Param periodID path string true "Period ID (YYYY-MM)"
// @Param entryID path string true "Entry ID"
// @Param entry body dto.UpdateManualEntryRequest true "Entry details"
// @Success 200 {object} dto.ManualEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to update entry"
// @Security BearerAuth
// @Router /periods/{periodID}/entries/{entryID} [put]
func (h *ledgerHandler) updateManualEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID := c.Param("periodID")
	entryID := c.Param("entryID")

	var req dto.UpdateManualEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.ledgerService.UpdateManualEntry(c.Request.Context(), periodID, entryID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update manual entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToManualEntryResponse(entry))
}

// deleteManualEntry godoc
// @Summary Delete a manual ledger entry
// @Description Removes a manual adjustment from a period's ledger (admin operation).
// @Tags ledger
// @Produce json
// @Param periodID path string true "Period ID (YYYY-MM)"
// @Param entryID path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to delete entry"
// @Security BearerAuth
// @Router /periods/{periodID}/entries/{entryID} [delete]
func (h *ledgerHandler) deleteManualEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID := c.Param("periodID")
	entryID := c.Param("entryID")

	if err := h.ledgerService.DeleteManualEntry(c.Request.Context(), periodID, entryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		} else {
			logger.Error("Failed to delete manual entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entry"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
