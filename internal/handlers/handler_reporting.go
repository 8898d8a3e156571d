package handlers

import (
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/sevacare/hospital_finance_app/internal/core/ports/services"
	"github.com/sevacare/hospital_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for statements and reconciliation.
type reportingHandler struct {
	reportingService      portssvc.ReportingSvc
	reconciliationService portssvc.ReconciliationSvc
}

func newReportingHandler(rs portssvc.ReportingSvc, cs portssvc.ReconciliationSvc) *reportingHandler {
	return &reportingHandler{reportingService: rs, reconciliationService: cs}
}

// registerReportingRoutes registers routes for reports and reconciliation.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc, reconciliationService portssvc.ReconciliationSvc) {
	h := newReportingHandler(reportingService, reconciliationService)

	reports := rg.Group("/reports")
	{
		reports.GET("/balance-sheet", h.balanceSheet)
		reports.GET("/income-expenditure", h.incomeExpenditure)
		reports.GET("/receipt-payment", h.receiptPayment)
		reports.GET("/bank", h.bankReport)
		reports.GET("/vouchers", h.voucherReport)
	}

	rg.GET("/reconciliation", h.reconcile)
}

func (h *reportingHandler) balanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, ok := parseDateQuery(c, "asOf", time.Now().UTC())
	if !ok {
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to build balance sheet")
		return
	}
	c.JSON(http.StatusOK, report)
}

// periodRange reads the from/to query params shared by the period reports.
// Defaults cover the current month to date.
func periodRange(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	from, ok := parseDateQuery(c, "from", monthStart)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	to, ok := parseDateQuery(c, "to", now)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func (h *reportingHandler) incomeExpenditure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, ok := periodRange(c)
	if !ok {
		return
	}

	report, err := h.reportingService.IncomeExpenditure(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to build income and expenditure report")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) receiptPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, ok := periodRange(c)
	if !ok {
		return
	}

	report, err := h.reportingService.ReceiptPayment(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to build receipt and payment report")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) bankReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	now := time.Now().UTC()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year parameter"})
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month parameter, expected 1-12"})
		return
	}

	report, err := h.reportingService.BankReport(c.Request.Context(), year, time.Month(month))
	if err != nil {
		respondError(c, logger, err, "Failed to build bank report")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) voucherReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, ok := periodRange(c)
	if !ok {
		return
	}

	report, err := h.reportingService.VoucherReport(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to build voucher report")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) reconcile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, ok := parseDateQuery(c, "asOf", time.Now().UTC())
	if !ok {
		return
	}

	result, err := h.reconciliationService.Check(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to run reconciliation")
		return
	}
	c.JSON(http.StatusOK, result)
}
