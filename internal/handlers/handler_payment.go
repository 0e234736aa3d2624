package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/retail_ledger/internal/core/ports/services"
	"github.com/SscSPs/retail_ledger/internal/dto"
	"github.com/SscSPs/retail_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// RegisterPaymentRoutes registers the /payments routes.
func RegisterPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	registerValidators()
	h := &paymentHandler{paymentService: paymentService}

	payments := rg.Group("/payments")
	{
		payments.POST("", h.createPayment)
		payments.GET("/:paymentID", h.getPayment)
		payments.DELETE("/:paymentID", h.deletePayment)
	}
}

// createPayment godoc
// @Summary Record a payment
// @Description Records a customer receipt, supplier payment or expense, posts it to the ledger and applies customer receipts to open orders.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} domain.Payment
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Referenced order not found"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, logger, err)
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record payment")
		return
	}
	logger.Info("Payment recorded", slog.String("payment_id", payment.PaymentID), slog.String("party_type", string(payment.PartyType)))
	c.JSON(http.StatusCreated, payment)
}

// getPayment godoc
// @Summary Get a payment
// @Tags payments
// @Produce  json
// @Param   paymentID path string true "Payment ID"
// @Success 200 {object} domain.Payment
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to retrieve payment"
// @Security BearerAuth
// @Router /payments/{paymentID} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("payment_id", c.Param("paymentID")))
	payment, err := h.paymentService.GetPayment(c.Request.Context(), c.Param("paymentID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve payment")
		return
	}
	c.JSON(http.StatusOK, payment)
}

// deletePayment godoc
// @Summary Delete a payment
// @Description Withdraws the payment from the orders it settled, soft-deletes it and reverses its batch.
// @Tags payments
// @Param   paymentID path string true "Payment ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to delete payment"
// @Security BearerAuth
// @Router /payments/{paymentID} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("payment_id", c.Param("paymentID")))
	if err := h.paymentService.DeletePayment(c.Request.Context(), c.Param("paymentID")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete payment")
		return
	}
	logger.Info("Payment deleted")
	c.Status(http.StatusNoContent)
}
