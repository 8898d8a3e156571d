package handlers

import (
	"log/slog"
	"net/http"

	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	portssvc "github.com/sevacare/hospital_finance_app/internal/core/ports/services"
	"github.com/sevacare/hospital_finance_app/internal/dto"
	"github.com/sevacare/hospital_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// periodHandler handles HTTP requests for daily collection period locks.
type periodHandler struct {
	periodService portssvc.PeriodSvc
}

func newPeriodHandler(ps portssvc.PeriodSvc) *periodHandler {
	return &periodHandler{periodService: ps}
}

// registerPeriodRoutes registers routes for collection period locks.
func registerPeriodRoutes(rg *gin.RouterGroup, periodService portssvc.PeriodSvc) {
	h := newPeriodHandler(periodService)

	periods := rg.Group("/periods")
	{
		periods.POST("/finalize", h.finalizePeriod)
		periods.GET("", h.listFinalized)
	}
}

func (h *periodHandler) finalizePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.FinalizePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for finalizePeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	period, err := h.periodService.Finalize(c.Request.Context(), req.PeriodDate, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to finalize period")
		return
	}
	c.JSON(http.StatusCreated, toPeriodResponse(period))
}

func (h *periodHandler) listFinalized(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	periods, err := h.periodService.ListFinalized(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list finalized periods")
		return
	}
	out := make([]dto.PeriodResponse, len(periods))
	for i := range periods {
		out[i] = toPeriodResponse(&periods[i])
	}
	c.JSON(http.StatusOK, gin.H{"periods": out})
}

func toPeriodResponse(p *domain.CollectionPeriod) dto.PeriodResponse {
	return dto.PeriodResponse{
		PeriodDate:  p.PeriodDate,
		FinalizedAt: p.FinalizedAt,
		FinalizedBy: p.FinalizedBy,
	}
}
