package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/retail_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/retail_ledger/internal/core/ports/services"
	"github.com/SscSPs/retail_ledger/internal/dto"
	"github.com/SscSPs/retail_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for batches, balances and the chart of accounts.
type ledgerHandler struct {
	ledgerService   portssvc.LedgerPostingSvcFacade
	balanceService  portssvc.BalanceSvc
	accountRegistry portssvc.AccountReaderSvc
}

func newLedgerHandler(ls portssvc.LedgerPostingSvcFacade, bs portssvc.BalanceSvc, ar portssvc.AccountReaderSvc) *ledgerHandler {
	return &ledgerHandler{
		ledgerService:   ls,
		balanceService:  bs,
		accountRegistry: ar,
	}
}

// RegisterLedgerRoutes registers the /ledger routes.
func RegisterLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerPostingSvcFacade, balanceService portssvc.BalanceSvc, accountRegistry portssvc.AccountReaderSvc) {
	registerValidators()
	h := newLedgerHandler(ledgerService, balanceService, accountRegistry)

	ledger := rg.Group("/ledger")
	{
		ledger.GET("/health", h.healthCheck)

		batches := ledger.Group("/batches")
		batches.POST("", h.postBatch)
		batches.GET("", h.listBatches)
		batches.GET("/:batchID", h.getBatch)
		batches.POST("/:batchID/reverse", h.reverseBatch)

		accounts := ledger.Group("/accounts")
		accounts.GET("", h.listAccounts)
		accounts.GET("/:code/balance", h.getAccountBalance)
	}
}

// postBatch godoc
// @Summary Post a manual journal batch
// @Description Validates and posts an adjustment, opening or migration batch. Entries may name accounts by id or by code.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   batch body dto.PostJournalBatchRequest true "Batch and its entries"
// @Success 201 {object} dto.GetBatchResponse
// @Success 200 {object} dto.GetBatchResponse "Reference already posted, existing batch returned"
// @Failure 400 {object} map[string]string "Unbalanced or malformed batch"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Unknown account"
// @Failure 500 {object} map[string]string "Failed to post batch"
// @Security BearerAuth
// @Router /ledger/batches [post]
func (h *ledgerHandler) postBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PostJournalBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, logger, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to post batch", slog.String("reference_type", req.ReferenceType), slog.Int("entries", len(req.Entries)))

	result, err := h.ledgerService.PostAdjustment(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to post batch")
		return
	}

	status := http.StatusCreated
	if result.Skipped {
		status = http.StatusOK
	} else {
		logger.Info("Batch posted", slog.String("batch_number", result.Batch.BatchNumber))
	}
	c.JSON(status, dto.ToGetBatchResponse(result))
}

// listBatches godoc
// @Summary List journal batches
// @Description Lists batches newest first, optionally filtered by reference and date range
// @Tags ledger
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Param   referenceType query string false "Reference type, e.g. INVOICE"
// @Param   referenceID query string false "Reference id"
// @Param   from query string false "First transaction date (YYYY-MM-DD)"
// @Param   to query string false "Last transaction date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListBatchesResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list batches"
// @Security BearerAuth
// @Router /ledger/batches [get]
func (h *ledgerHandler) listBatches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListBatchesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, logger, err)
		return
	}

	resp, err := h.ledgerService.ListBatches(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list batches")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getBatch godoc
// @Summary Get a journal batch
// @Tags ledger
// @Produce  json
// @Param   batchID path string true "Batch ID"
// @Success 200 {object} dto.GetBatchResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Batch not found"
// @Failure 500 {object} map[string]string "Failed to retrieve batch"
// @Security BearerAuth
// @Router /ledger/batches/{batchID} [get]
func (h *ledgerHandler) getBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("batch_id", c.Param("batchID")))

	batch, entries, err := h.ledgerService.GetBatch(c.Request.Context(), c.Param("batchID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve batch")
		return
	}
	c.JSON(http.StatusOK, dto.GetBatchResponse{
		Batch:   dto.ToJournalBatchResponse(batch),
		Entries: dto.ToLedgerEntryResponses(entries),
	})
}

// reverseBatch godoc
// @Summary Reverse a journal batch
// @Description Posts a compensating batch with every leg swapped. The original batch is marked reversed and never edited.
// @Tags ledger
// @Produce  json
// @Param   batchID path string true "Batch ID"
// @Success 201 {object} dto.GetBatchResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Batch not found"
// @Failure 409 {object} map[string]string "Batch already reversed or is a reversal"
// @Failure 500 {object} map[string]string "Failed to reverse batch"
// @Security BearerAuth
// @Router /ledger/batches/{batchID}/reverse [post]
func (h *ledgerHandler) reverseBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("batch_id", c.Param("batchID")))
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.ledgerService.ReverseBatch(c.Request.Context(), c.Param("batchID"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reverse batch")
		return
	}
	logger.Info("Batch reversed", slog.String("reversal_batch_number", result.Batch.BatchNumber))
	c.JSON(http.StatusCreated, dto.ToGetBatchResponse(result))
}

// healthCheck godoc
// @Summary Ledger health check
// @Description Sums every posted entry and reports whether total debits equal total credits
// @Tags ledger
// @Produce  json
// @Success 200 {object} domain.LedgerHealth
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to check ledger"
// @Security BearerAuth
// @Router /ledger/health [get]
func (h *ledgerHandler) healthCheck(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	health, err := h.balanceService.HealthCheck(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to check ledger")
		return
	}
	c.JSON(http.StatusOK, health)
}

// listAccounts godoc
// @Summary List accounts
// @Tags ledger
// @Produce  json
// @Param   type query string false "Account type" Enums(ASSET, LIABILITY, EQUITY, REVENUE, EXPENSE)
// @Success 200 {array} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid account type"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /ledger/accounts [get]
func (h *ledgerHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, logger, err)
		return
	}

	var accountType *domain.AccountType
	if params.AccountType != "" {
		t := domain.AccountType(params.AccountType)
		accountType = &t
	}

	accounts, err := h.accountRegistry.ListAccounts(c.Request.Context(), accountType)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountsResponse(accounts))
}

// getAccountBalance godoc
// @Summary Get an account balance
// @Description Returns debit and credit totals and the balance on the account's normal side
// @Tags ledger
// @Produce  json
// @Param   code path string true "Account code, e.g. 1100 or 1300-C42"
// @Param   asOf query string false "Only count batches dated on or before this day (YYYY-MM-DD)"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to compute balance"
// @Security BearerAuth
// @Router /ledger/accounts/{code}/balance [get]
func (h *ledgerHandler) getAccountBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("account_code", c.Param("code")))
	var params dto.AccountBalanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, logger, err)
		return
	}

	var asOf *time.Time
	if params.AsOf != "" {
		// the binding tag already checked the layout
		d, _ := domain.ParseDate(params.AsOf)
		asOf = &d
	}

	balance, err := h.balanceService.GetAccountBalance(c.Request.Context(), c.Param("code"), asOf)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountBalanceResponse(balance))
}
