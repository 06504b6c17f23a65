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

// paymentHandler handles HTTP requests related to maintenance payments.
type paymentHandler struct {
	paymentService  portssvc.PaymentSvcFacade
	userService     portssvc.UserSvcFacade
	reminderService portssvc.ReminderSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade, us portssvc.UserSvcFacade, rs portssvc.ReminderSvcFacade) *paymentHandler {
	return &paymentHandler{
		paymentService:  ps,
		userService:     us,
		reminderService: rs,
	}
}

// registerPaymentRoutes registers routes related to maintenance payments.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade, userService portssvc.UserSvcFacade, reminderService portssvc.ReminderSvcFacade) {
	h := newPaymentHandler(paymentService, userService, reminderService)

	payments := rg.Group("/periods/:periodID/payments")
	{
		payments.GET("", middleware.RequireAdmin(), h.listPayments)
		payments.POST("", middleware.RequireAdmin(), h.recordPayment)
		payments.PATCH("/:flatNo/verify", middleware.RequireAdmin(), h.verifyPayment)
		payments.GET("/:flatNo/reminder", middleware.RequireAdmin(), h.getReminderLink)
	}

	// Static sibling of the payments subtree; the router cannot mix a
	// literal segment with :flatNo at the same level.
	rg.POST("/periods/:periodID/my-payment", h.markPaid)
	rg.GET("/payments/my", h.listMyPayments)
}

// residentFlat resolves the authenticated user's flat number. Admins
// without a flat get an empty string.
func (h *paymentHandler) residentFlat(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return "", false
	}
	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		return "", false
	}
	return user.FlatNo, true
}

// markPaid godoc
// @Summary Declare own payment
// @Description Records that the authenticated resident has paid this period's dues. The record stays unverified until an admin confirms it.
// @Tags payments
// @Accept json
// @Produce json
// @Param periodID path string true "Period ID (YYYY-MM)"
// @Param payment body dto.MarkPaidRequest true "Payment details"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Period not found"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Security BearerAuth
// @Router /periods/{periodID}/my-payment [post]
func (h *paymentHandler) markPaid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID := c.Param("periodID")

	var req dto.MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	flatNo, ok := h.residentFlat(c)
	if !ok || flatNo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No flat registered for this account"})
		return
	}

	payment, err := h.paymentService.MarkPaid(c.Request.Context(), periodID, flatNo, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Period not found"})
		} else {
			logger.Error("Failed to mark payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// verifyPayment godoc
// @Summary Verify a payment
// @Description Sets or clears the verification flag on a flat's payment record (admin operation).
// @Tags payments
// @Accept json
// @Produce json
// @Param periodID path string true "Period ID (YYYY-MM)"
// @Param flatNo path string true "Flat number"
// @Param verify body dto.VerifyPaymentRequest true "Verification flag"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to update payment"
// @Security BearerAuth
// @Router /periods/{periodID}/payments/{flatNo}/verify [patch]
func (h *paymentHandler) verifyPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID := c.Param("periodID")
	flatNo := c.Param("flatNo")

	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	verifierUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payment, err := h.paymentService.SetVerified(c.Request.Context(), periodID, flatNo, req.Verified, verifierUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		} else {
			logger.Error("Failed to verify payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// recordPayment godoc
// @Summary Record a payment on behalf of a flat
// @Description Stores an admin-entered payment, paid and verified in one step.
// @Tags payments
// @Accept json
// @Produce json
// @Param periodID path string true "Period ID (YYYY-MM)"
// @Param payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Period not found"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Security BearerAuth
// @Router /periods/{periodID}/payments [post]
func (h *paymentHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID := c.Param("periodID")

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	adminUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), periodID, req, adminUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Period not found"})
		} else {
			logger.Error("Failed to record payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List a period's payments
// @Description Retrieves every payment record for a period (admin operation).
// @Tags payments
// @Produce json
// @Param periodID path string true "Period ID (YYYY-MM)"
// @Success 200 {array} dto.PaymentResponse
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Security BearerAuth
// @Router /periods/{periodID}/payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID := c.Param("periodID")

	payments, err := h.paymentService.ListPaymentsByPeriod(c.Request.Context(), periodID)
	if err != nil {
		logger.Error("Failed to list payments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPaymentResponse(payments))
}

// listMyPayments godoc
// @Summary List own payment history
// @Description Retrieves the authenticated resident's payment records across all periods.
// @Tags payments
// @Produce json
// @Success 200 {array} dto.PaymentResponse
// @Failure 400 {object} map[string]string "No flat registered"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Security BearerAuth
// @Router /payments/my [get]
func (h *paymentHandler) listMyPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	flatNo, ok := h.residentFlat(c)
	if !ok || flatNo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No flat registered for this account"})
		return
	}

	payments, err := h.paymentService.ListPaymentsByFlat(c.Request.Context(), flatNo)
	if err != nil {
		logger.Error("Failed to list own payments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPaymentResponse(payments))
}

// getReminderLink godoc
// @Summary Build a dues reminder link
// @Description Composes the reminder message and WhatsApp deep link for a flat's pending dues (admin operation).
// @Tags payments
// @Produce json
// @Param periodID path string true "Period ID (YYYY-MM)"
// @Param flatNo path string true "Flat number"
// @Success 200 {object} dto.ReminderLinkResponse
// @Failure 404 {object} map[string]string "Period not found"
// @Failure 500 {object} map[string]string "Failed to build reminder"
// @Security BearerAuth
// @Router /periods/{periodID}/payments/{flatNo}/reminder [get]
func (h *paymentHandler) getReminderLink(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID := c.Param("periodID")
	flatNo := c.Param("flatNo")

	reminder, err := h.reminderService.BuildDueReminder(c.Request.Context(), periodID, flatNo)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Period not found"})
		} else {
			logger.Error("Failed to build reminder", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build reminder"})
		}
		return
	}

	c.JSON(http.StatusOK, reminder)
}
