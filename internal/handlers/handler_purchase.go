package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/retail_ledger/internal/core/ports/services"
	"github.com/SscSPs/retail_ledger/internal/dto"
	"github.com/SscSPs/retail_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
}

// RegisterPurchaseRoutes registers the /purchases routes.
func RegisterPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade) {
	registerValidators()
	h := &purchaseHandler{purchaseService: purchaseService}

	purchases := rg.Group("/purchases")
	purchases.POST("", h.createPurchaseBill)
	purchases.DELETE("/:billID", h.deletePurchaseBill)
}

// createPurchaseBill godoc
// @Summary Record a supplier bill
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   bill body dto.CreatePurchaseBillRequest true "Bill details"
// @Success 201 {object} domain.PurchaseBill
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record bill"
// @Security BearerAuth
// @Router /purchases [post]
func (h *purchaseHandler) createPurchaseBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePurchaseBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, logger, err)
		return
	}

	bill, err := h.purchaseService.CreatePurchaseBill(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record bill")
		return
	}
	logger.Info("Purchase bill recorded", slog.String("bill_id", bill.BillID))
	c.JSON(http.StatusCreated, bill)
}

// deletePurchaseBill godoc
// @Summary Delete a supplier bill
// @Tags purchases
// @Param   billID path string true "Bill ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Bill not found"
// @Failure 500 {object} map[string]string "Failed to delete bill"
// @Security BearerAuth
// @Router /purchases/{billID} [delete]
func (h *purchaseHandler) deletePurchaseBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("bill_id", c.Param("billID")))
	if err := h.purchaseService.DeletePurchaseBill(c.Request.Context(), c.Param("billID")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete bill")
		return
	}
	c.Status(http.StatusNoContent)
}
