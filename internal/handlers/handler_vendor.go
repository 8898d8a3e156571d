package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/sevacare/hospital_finance_app/internal/core/ports/services"
	"github.com/sevacare/hospital_finance_app/internal/dto"
	"github.com/sevacare/hospital_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// vendorHandler handles HTTP requests for vendor payable ledgers.
type vendorHandler struct {
	vendorService portssvc.VendorSvcFacade
}

func newVendorHandler(vs portssvc.VendorSvcFacade) *vendorHandler {
	return &vendorHandler{vendorService: vs}
}

// registerVendorRoutes registers routes for vendor ledgers.
func registerVendorRoutes(rg *gin.RouterGroup, vendorService portssvc.VendorSvcFacade) {
	h := newVendorHandler(vendorService)

	vendors := rg.Group("/vendors")
	{
		vendors.POST("", h.createVendor)
		vendors.GET("", h.listVendors)
		vendors.GET("/:id", h.getVendor)
		vendors.POST("/:id/purchases", h.recordPurchase)
		vendors.POST("/:id/payments", h.recordPayment)
		vendors.POST("/:id/adjustments", h.recordAdjustment)
	}
}

func (h *vendorHandler) createVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createVendor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to create vendor")
		return
	}
	c.JSON(http.StatusCreated, dto.ToVendorResponse(vendor, req.OpeningBalance))
}

func (h *vendorHandler) listVendors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	vendors, err := h.vendorService.ListVendors(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list vendors")
		return
	}
	out := make([]dto.VendorResponse, len(vendors))
	for i := range vendors {
		out[i] = dto.ToVendorResponse(&vendors[i].Vendor, vendors[i].Balance)
	}
	c.JSON(http.StatusOK, gin.H{"vendors": out})
}

func (h *vendorHandler) getVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	vendor, err := h.vendorService.GetVendorByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve vendor")
		return
	}
	c.JSON(http.StatusOK, dto.ToVendorResponse(&vendor.Vendor, vendor.Balance))
}

func (h *vendorHandler) recordPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for recordPurchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	result, err := h.vendorService.RecordPurchase(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to record purchase")
		return
	}

	resp := dto.PurchaseResponse{
		PurchaseEntry:       dto.ToEntryResponse(&result.PurchaseEntry),
		CreditLimitExceeded: result.CreditLimitExceeded,
	}
	if result.PaymentEntry != nil {
		pe := dto.ToEntryResponse(result.PaymentEntry)
		resp.PaymentEntry = &pe
	}
	if result.VendorPaymentEntry != nil {
		vpe := dto.ToEntryResponse(result.VendorPaymentEntry)
		resp.VendorPaymentEntry = &vpe
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *vendorHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for recordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	result, err := h.vendorService.RecordPayment(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusCreated, dto.PaymentResponse{
		PayingEntry: dto.ToEntryResponse(&result.PayingEntry),
		VendorEntry: dto.ToEntryResponse(&result.VendorEntry),
		BalanceType: string(result.BalanceType),
	})
}

func (h *vendorHandler) recordAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for recordAdjustment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	entry, err := h.vendorService.RecordAdjustment(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to record adjustment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}
