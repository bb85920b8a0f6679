package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/def_finance/internal/core/domain"
	portssvc "github.com/SscSPs/def_finance/internal/core/ports/services"
	"github.com/SscSPs/def_finance/internal/dto"
	"github.com/SscSPs/def_finance/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// RegisterReportingRoutes registers routes related to financial reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/cash-flow", h.getCashFlow)
		reportingGroup.GET("/ledger", h.getLedger)
		reportingGroup.GET("/dashboard", h.getDashboard)
		reportingGroup.GET("/income-statement", h.getIncomeStatement)
		reportingGroup.GET("/competences", h.getCompetences)
	}
}

func parseMonth(raw string) (*domain.YearMonth, error) {
	if raw == "" {
		return nil, nil
	}
	ym, err := domain.ParseYearMonth(raw)
	if err != nil {
		return nil, err
	}
	return &ym, nil
}

// getCashFlow godoc
// @Summary Generate the cash-flow projection
// @Description Projects the unpaid entries of a month day by day, with overdue entries carried into day zero
// @Tags reports
// @Produce json
// @Param month query string false "Month (YYYY-MM)" default(current month)
// @Param unit query string false "Unit name or 'todas'"
// @Param detailed query bool false "Include the entries of every day"
// @Success 200 {object} dto.CashFlowResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/cash-flow [get]
func (h *reportingHandler) getCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.CashFlowParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid cash flow query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	month, err := parseMonth(params.Month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month format. Use YYYY-MM"})
		return
	}

	report, err := h.reportingService.CashFlow(c.Request.Context(), month, params.Unit)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate cash flow report")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashFlowResponse(*report, params.Detailed))
}

// getLedger godoc
// @Summary Generate the filtered ledger
// @Description Lists filtered, sorted entries with signed totals; the cash adjustment appears as a row when it applies
// @Tags reports
// @Produce json
// @Param kind query string false "Entrada or Saida"
// @Param status query string false "due, overdue or paid"
// @Param unit query string false "Unit name or 'todas'"
// @Param counterparty query string false "Counterparty substring"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param sort query string false "Sort column"
// @Param direction query string false "asc or desc"
// @Success 200 {object} dto.LedgerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/ledger [get]
func (h *reportingHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid ledger query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate ledger")
		return
	}

	report, err := h.reportingService.Ledger(c.Request.Context(), filter, params.ToSort())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerResponse(*report))
}

// getDashboard godoc
// @Summary Generate the dashboard
// @Description Summary cards plus the monthly payables/receivables chart
// @Tags reports
// @Produce json
// @Param span query int false "Chart length in months (1-36)"
// @Success 200 {object} domain.Dashboard
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.DashboardParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid dashboard query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	dashboard, err := h.reportingService.Dashboard(c.Request.Context(), params.Span)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate dashboard")
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// getIncomeStatement godoc
// @Summary Generate the income statement (DRE)
// @Description Revenue, costs and expenses paid within a month
// @Tags reports
// @Produce json
// @Param month query string false "Month (YYYY-MM)" default(current month)
// @Success 200 {object} domain.IncomeStatement
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.IncomeStatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid income statement query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	month, err := parseMonth(params.Month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month format. Use YYYY-MM"})
		return
	}

	st, err := h.reportingService.IncomeStatement(c.Request.Context(), month)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate income statement")
		return
	}
	c.JSON(http.StatusOK, st)
}

// getCompetences godoc
// @Summary List income statement months
// @Tags reports
// @Produce json
// @Success 200 {object} dto.CompetencesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list months"
// @Security BearerAuth
// @Router /reports/competences [get]
func (h *reportingHandler) getCompetences(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	months, err := h.reportingService.Competences(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list months")
		return
	}
	c.JSON(http.StatusOK, dto.CompetencesResponse{Months: months})
}
