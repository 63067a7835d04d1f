package handlers

import (
	"io"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finstatements/internal/core/ports/services"
	"github.com/SscSPs/finstatements/internal/dto"
	"github.com/SscSPs/finstatements/internal/middleware"
	"github.com/SscSPs/finstatements/internal/spreadsheet"
	"github.com/gin-gonic/gin"
)

// Report names accepted by the export route.
const (
	reportTrialBalance    = "trial-balance"
	reportIncomeStatement = "income-statement"
	reportBalanceSheet    = "balance-sheet"
	reportDashboard       = "dashboard"
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

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/"+reportTrialBalance, h.getTrialBalance)
		reportingGroup.GET("/"+reportIncomeStatement, h.getIncomeStatement)
		reportingGroup.GET("/"+reportBalanceSheet, h.getBalanceSheet)
		reportingGroup.GET("/"+reportDashboard, h.getDashboard)
		reportingGroup.GET("/:report/export", h.exportReport)
	}
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Lists every account with a nonzero balance of its own postings, split into debit and credit columns
// @Tags reports
// @Produce json
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tb, err := h.reportingService.TrialBalance(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "generate trial balance")
		return
	}

	logger.Info("Trial balance generated", slog.Int("rows", len(tb.Rows)), slog.Bool("balanced", tb.Balanced))
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(tb))
}

// getIncomeStatement godoc
// @Summary Generate income statement
// @Description Generates the profit and loss statement for the configured fiscal year, with notes and comparison figures merged in
// @Tags reports
// @Produce json
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	is, err := h.reportingService.IncomeStatement(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "generate income statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(is))
}

// getBalanceSheet godoc
// @Summary Generate balance sheet
// @Description Generates the statement of financial position. An out-of-balance sheet is still returned, with balanced=false and a warning.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	bs, err := h.reportingService.BalanceSheet(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "generate balance sheet")
		return
	}
	if !bs.Balanced {
		logger.Warn("Balance sheet does not balance", slog.String("difference", bs.Difference.StringFixed(2)))
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(bs))
}

// getDashboard godoc
// @Summary Get dashboard figures
// @Description Headline totals, cash, working capital, current ratio and profit margin
// @Tags reports
// @Produce json
// @Success 200 {object} domain.Dashboard
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	d, err := h.reportingService.Dashboard(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "generate dashboard")
		return
	}
	c.JSON(http.StatusOK, d)
}

// exportReport godoc
// @Summary Export a report
// @Description Downloads a report as an .xlsx workbook
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param report path string true "Report name" Enums(trial-balance, income-statement, balance-sheet, dashboard)
// @Success 200 {file} file
// @Failure 404 {object} map[string]string "Unknown report"
// @Failure 500 {object} map[string]string "Failed to export report"
// @Security BearerAuth
// @Router /reports/{report}/export [get]
func (h *reportingHandler) exportReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ctx := c.Request.Context()
	report := c.Param("report")

	var write func(io.Writer) error
	switch report {
	case reportTrialBalance:
		tb, err := h.reportingService.TrialBalance(ctx)
		if err != nil {
			respondWithError(c, err, "export trial balance")
			return
		}
		write = func(w io.Writer) error { return spreadsheet.WriteTrialBalance(w, tb) }
	case reportIncomeStatement:
		is, err := h.reportingService.IncomeStatement(ctx)
		if err != nil {
			respondWithError(c, err, "export income statement")
			return
		}
		write = func(w io.Writer) error { return spreadsheet.WriteIncomeStatement(w, is) }
	case reportBalanceSheet:
		bs, err := h.reportingService.BalanceSheet(ctx)
		if err != nil {
			respondWithError(c, err, "export balance sheet")
			return
		}
		write = func(w io.Writer) error { return spreadsheet.WriteBalanceSheet(w, bs) }
	case reportDashboard:
		d, err := h.reportingService.Dashboard(ctx)
		if err != nil {
			respondWithError(c, err, "export dashboard")
			return
		}
		write = func(w io.Writer) error { return spreadsheet.WriteDashboard(w, d) }
	default:
		logger.Warn("Unknown report requested for export", slog.String("report", report))
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown report " + report})
		return
	}

	logger.Info("Exporting report", slog.String("report", report))
	writeWorkbook(c, report+".xlsx", write)
}
