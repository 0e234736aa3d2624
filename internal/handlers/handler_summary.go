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

type summaryHandler struct {
	summaryService portssvc.SummarySvcFacade
}

// RegisterSummaryRoutes registers the /summary routes.
func RegisterSummaryRoutes(rg *gin.RouterGroup, summaryService portssvc.SummarySvcFacade) {
	registerValidators()
	h := &summaryHandler{summaryService: summaryService}

	summary := rg.Group("/summary")
	{
		summary.GET("/realtime", h.getRealtimeSummary)
		summary.GET("/daily", h.listDailySummaries)
		summary.GET("/daily/:date", h.getDailySummary)
		summary.PUT("/daily/:date/opening-balance", h.setOpeningBalance)
	}
}

// dateParam parses the :date path parameter and answers 400 when it is malformed.
func dateParam(c *gin.Context, logger *slog.Logger) (time.Time, bool) {
	d, err := domain.ParseDate(c.Param("date"))
	if err != nil {
		logger.Warn("Invalid date parameter", slog.String("date", c.Param("date")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
		return time.Time{}, false
	}
	return d, true
}

// getRealtimeSummary godoc
// @Summary Realtime daily summary
// @Description Computes the figures of one business day from its orders and payments. Defaults to today.
// @Tags summary
// @Produce  json
// @Param   date query string false "Business date (YYYY-MM-DD)"
// @Success 200 {object} domain.RealtimeSummary
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Security BearerAuth
// @Router /summary/realtime [get]
func (h *summaryHandler) getRealtimeSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.RealtimeSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, logger, err)
		return
	}

	date := time.Now().UTC()
	if params.Date != "" {
		date, _ = domain.ParseDate(params.Date)
	}

	summary, err := h.summaryService.GetRealtimeSummary(c.Request.Context(), date)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// listDailySummaries godoc
// @Summary List stored daily summaries
// @Tags summary
// @Produce  json
// @Param   from query string true "First day (YYYY-MM-DD)"
// @Param   to query string true "Last day (YYYY-MM-DD)"
// @Success 200 {array} domain.DailySummary
// @Failure 400 {object} map[string]string "Invalid range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list summaries"
// @Security BearerAuth
// @Router /summary/daily [get]
func (h *summaryHandler) listDailySummaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListDailySummariesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, logger, err)
		return
	}
	from, _ := domain.ParseDate(params.From)
	to, _ := domain.ParseDate(params.To)

	rows, err := h.summaryService.ListDailySummaries(c.Request.Context(), from, to)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list summaries")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// getDailySummary godoc
// @Summary Get the stored summary of a day
// @Tags summary
// @Produce  json
// @Param   date path string true "Business date (YYYY-MM-DD)"
// @Success 200 {object} domain.DailySummary
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No summary for that day"
// @Failure 500 {object} map[string]string "Failed to retrieve summary"
// @Security BearerAuth
// @Router /summary/daily/{date} [get]
func (h *summaryHandler) getDailySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date, ok := dateParam(c, logger)
	if !ok {
		return
	}

	row, err := h.summaryService.GetDailySummary(c.Request.Context(), date)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve summary")
		return
	}
	c.JSON(http.StatusOK, row)
}

// setOpeningBalance godoc
// @Summary Set the opening cash balance of a day
// @Tags summary
// @Accept  json
// @Produce  json
// @Param   date path string true "Business date (YYYY-MM-DD)"
// @Param   body body dto.SetOpeningBalanceRequest true "Opening balance"
// @Success 200 {object} domain.DailySummary
// @Failure 400 {object} map[string]string "Invalid date or amount"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to set opening balance"
// @Security BearerAuth
// @Router /summary/daily/{date}/opening-balance [put]
func (h *summaryHandler) setOpeningBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date, ok := dateParam(c, logger)
	if !ok {
		return
	}
	var req dto.SetOpeningBalanceRequest
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

	row, err := h.summaryService.SetOpeningBalance(c.Request.Context(), date, req.Amount, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to set opening balance")
		return
	}
	logger.Info("Opening balance set", slog.String("date", date.Format(domain.DateLayout)), slog.String("amount", req.Amount.String()))
	c.JSON(http.StatusOK, row)
}
