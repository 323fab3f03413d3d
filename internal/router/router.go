package router

import (
	"github.com/gin-gonic/gin"

	"salesdesk/internal/config"
	"salesdesk/internal/domain"
	"salesdesk/internal/handler"
	"salesdesk/internal/middleware"
	"salesdesk/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg config.CORSConfig,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	itemH *handler.ItemHandler,
	customerH *handler.CustomerHandler,
	saleH *handler.SaleHandler,
	reportH *handler.ReportHandler,
	dashboardH *handler.DashboardHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Operator registration is admin-only
	protected.POST("/auth/register", middleware.RequireRole(domain.RoleAdmin), authH.Register)

	// Item catalog
	items := protected.Group("/items")
	items.POST("", itemH.Create)
	items.GET("", itemH.List)
	items.GET("/:id", itemH.Get)
	items.PUT("/:id", itemH.Update)
	items.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), itemH.Delete)

	// Customers
	customers := protected.Group("/customers")
	customers.POST("", customerH.Create)
	customers.GET("", customerH.List)
	customers.GET("/:id", customerH.Get)
	customers.PUT("/:id", customerH.Update)
	customers.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), customerH.Delete)

	// Sales ledger
	sales := protected.Group("/sales")
	sales.POST("", saleH.Create)
	sales.GET("", saleH.List)
	sales.GET("/:id", saleH.Get)

	// Reports and exports
	reports := protected.Group("/reports")
	reports.GET("/sales", reportH.Sales)
	reports.GET("/items", reportH.Items)
	reports.GET("/customers/:id", reportH.CustomerLedger)
	reports.GET("/export", reportH.Export)

	// Dashboard
	protected.GET("/dashboard", dashboardH.Snapshot)

	return r
}
