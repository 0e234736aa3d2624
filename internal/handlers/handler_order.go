package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/retail_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/retail_ledger/internal/core/ports/services"
	"github.com/SscSPs/retail_ledger/internal/dto"
	"github.com/SscSPs/retail_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// orderHandler exposes the order writes that drive ledger postings.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

// RegisterOrderRoutes registers the /orders routes.
func RegisterOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	registerValidators()
	h := &orderHandler{orderService: orderService}

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("/:orderID", h.getOrder)
		orders.PATCH("/:orderID/payment-status", h.setPaymentStatus)
		orders.DELETE("/:orderID", h.deleteOrder)
	}
}

// createOrder godoc
// @Summary Create an order
// @Description Records a sales invoice and posts its INVOICE batch, plus an INVOICE_CASH batch for the amount collected at the counter.
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   order body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} domain.Order
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Chart of accounts incomplete"
// @Failure 500 {object} map[string]string "Failed to create order"
// @Security BearerAuth
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, logger, err)
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create order")
		return
	}
	logger.Info("Order created", slog.String("order_id", order.OrderID), slog.String("order_number", order.OrderNumber))
	c.JSON(http.StatusCreated, order)
}

// getOrder godoc
// @Summary Get an order
// @Tags orders
// @Produce  json
// @Param   orderID path string true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Failed to retrieve order"
// @Security BearerAuth
// @Router /orders/{orderID} [get]
func (h *orderHandler) getOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("order_id", c.Param("orderID")))
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("orderID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve order")
		return
	}
	c.JSON(http.StatusOK, order)
}

// setPaymentStatus godoc
// @Summary Mark an order paid or unpaid
// @Description Moves the outstanding (or collected) amount between cash and the customer's receivable with a PAYMENT_TOGGLE batch.
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   orderID path string true "Order ID"
// @Param   body body dto.SetPaymentStatusRequest true "Target status"
// @Success 200 {object} domain.Order
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 409 {object} map[string]string "Recorded payments are applied to the order"
// @Failure 500 {object} map[string]string "Failed to update order"
// @Security BearerAuth
// @Router /orders/{orderID}/payment-status [patch]
func (h *orderHandler) setPaymentStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("order_id", c.Param("orderID")))
	var req dto.SetPaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, logger, err)
		return
	}

	order, err := h.orderService.SetPaymentStatus(c.Request.Context(), c.Param("orderID"), domain.PaymentStatus(req.Status))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update order")
		return
	}
	logger.Info("Order payment status set", slog.String("status", string(order.PaymentStatus)))
	c.JSON(http.StatusOK, order)
}

// deleteOrder godoc
// @Summary Delete an order
// @Description Soft-deletes the order and reverses every batch posted for it.
// @Tags orders
// @Param   orderID path string true "Order ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Failed to delete order"
// @Security BearerAuth
// @Router /orders/{orderID} [delete]
func (h *orderHandler) deleteOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("order_id", c.Param("orderID")))
	if err := h.orderService.DeleteOrder(c.Request.Context(), c.Param("orderID")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete order")
		return
	}
	logger.Info("Order deleted")
	c.Status(http.StatusNoContent)
}
