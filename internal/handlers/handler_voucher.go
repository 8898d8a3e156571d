package handlers

import (
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/sevacare/hospital_finance_app/internal/core/ports/services"
	"github.com/sevacare/hospital_finance_app/internal/dto"
	"github.com/sevacare/hospital_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// voucherHandler handles HTTP requests for the Main Account voucher stream.
type voucherHandler struct {
	consolidationService portssvc.ConsolidationSvcFacade
}

func newVoucherHandler(cs portssvc.ConsolidationSvcFacade) *voucherHandler {
	return &voucherHandler{consolidationService: cs}
}

// registerVoucherRoutes registers routes for vouchers and the repair sweep.
func registerVoucherRoutes(rg *gin.RouterGroup, consolidationService portssvc.ConsolidationSvcFacade) {
	h := newVoucherHandler(consolidationService)

	vouchers := rg.Group("/vouchers")
	{
		vouchers.GET("", h.listVouchers)
		vouchers.GET("/:voucherNumber", h.getVoucher)
		vouchers.GET("/source/:txnNumber", h.getVoucherBySourceTxn)
		vouchers.POST("/sweep", h.sweepUnmirrored)
	}
}

func (h *voucherHandler) listVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	now := time.Now().UTC()
	from, ok := parseDateQuery(c, "from", now.AddDate(0, -1, 0))
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to", now)
	if !ok {
		return
	}

	vouchers, err := h.consolidationService.ListVouchers(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to list vouchers")
		return
	}
	out := make([]dto.VoucherResponse, len(vouchers))
	for i := range vouchers {
		out[i] = dto.ToVoucherResponse(&vouchers[i])
	}
	c.JSON(http.StatusOK, gin.H{"vouchers": out})
}

func (h *voucherHandler) getVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	voucher, err := h.consolidationService.GetVoucherByNumber(c.Request.Context(), c.Param("voucherNumber"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve voucher")
		return
	}
	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

func (h *voucherHandler) getVoucherBySourceTxn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	voucher, err := h.consolidationService.GetVoucherBySourceTxn(c.Request.Context(), c.Param("txnNumber"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve voucher")
		return
	}
	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

func (h *voucherHandler) sweepUnmirrored(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	actorID, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	scanned, repaired, err := h.consolidationService.SweepUnmirrored(c.Request.Context(), limit, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to sweep unmirrored movements")
		return
	}

	out := make([]dto.VoucherResponse, len(repaired))
	for i := range repaired {
		out[i] = dto.ToVoucherResponse(&repaired[i])
	}
	c.JSON(http.StatusOK, dto.SweepResponse{
		Scanned:  scanned,
		Repaired: len(repaired),
		Vouchers: out,
	})
}
