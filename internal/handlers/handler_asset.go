package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/sevacare/hospital_finance_app/internal/core/ports/services"
	"github.com/sevacare/hospital_finance_app/internal/dto"
	"github.com/sevacare/hospital_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// assetHandler handles HTTP requests for the fixed asset register.
type assetHandler struct {
	assetService portssvc.AssetSvcFacade
}

func newAssetHandler(as portssvc.AssetSvcFacade) *assetHandler {
	return &assetHandler{assetService: as}
}

// registerAssetRoutes registers routes for the fixed asset register.
func registerAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvcFacade) {
	h := newAssetHandler(assetService)

	assets := rg.Group("/assets")
	{
		assets.POST("", h.acquireAsset)
		assets.GET("", h.listAssets)
		assets.GET("/:id", h.getAsset)
		assets.POST("/:id/payments", h.applyPayment)
	}
}

func (h *assetHandler) acquireAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AcquireAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for acquireAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	result, err := h.assetService.AcquireAsset(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to acquire asset")
		return
	}

	resp := gin.H{"asset": dto.ToAssetResponse(&result.Asset)}
	if result.PurchaseEntry != nil {
		resp["purchaseEntry"] = dto.ToEntryResponse(result.PurchaseEntry)
	}
	if result.PaymentEntry != nil {
		resp["paymentEntry"] = dto.ToEntryResponse(result.PaymentEntry)
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *assetHandler) listAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	assets, err := h.assetService.ListAssets(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list assets")
		return
	}
	out := make([]dto.AssetResponse, len(assets))
	for i := range assets {
		out[i] = dto.ToAssetResponse(&assets[i])
	}
	c.JSON(http.StatusOK, gin.H{"assets": out})
}

func (h *assetHandler) getAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asset, err := h.assetService.GetAssetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve asset")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

func (h *assetHandler) applyPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AssetPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for applyPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	asset, entry, err := h.assetService.ApplyPayment(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to apply asset payment")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"asset":        dto.ToAssetResponse(asset),
		"paymentEntry": dto.ToEntryResponse(entry),
	})
}
