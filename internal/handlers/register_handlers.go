package handlers

import (
	portssvc "github.com/sevacare/hospital_finance_app/internal/core/ports/services"
	"github.com/sevacare/hospital_finance_app/internal/middleware"
	"github.com/sevacare/hospital_finance_app/pkg/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.ActorMiddleware())

	registerLedgerRoutes(v1, services.Ledger)
	registerVendorRoutes(v1, services.Vendor)
	registerAssetRoutes(v1, services.Asset)
	registerVoucherRoutes(v1, services.Consolidation)
	registerReportingRoutes(v1, services.Reporting, services.Reconciliation)
	registerPeriodRoutes(v1, services.Period)
}
