package main

import (
	"fmt"
	"log"

	"salesdesk/internal/config"
	"salesdesk/internal/email/noop"
	"salesdesk/internal/email/ses"
	"salesdesk/internal/handler"
	"salesdesk/internal/port"
	"salesdesk/internal/repository/postgres"
	"salesdesk/internal/router"
	"salesdesk/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	itemRepo := postgres.NewItemRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	saleRepo := postgres.NewSaleRepo(db)

	// Initialize mail transport
	sender, err := newEmailSender(cfg.Email)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	itemSvc := service.NewItemService(itemRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	saleSvc := service.NewSaleService(saleRepo, itemRepo, customerRepo)
	reportSvc := service.NewReportService(saleRepo, itemRepo, customerRepo, sender)
	dashboardSvc := service.NewDashboardService(saleRepo, itemRepo)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	itemH := handler.NewItemHandler(itemSvc)
	customerH := handler.NewCustomerHandler(customerSvc)
	saleH := handler.NewSaleHandler(saleSvc)
	reportH := handler.NewReportHandler(reportSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg.CORS, authSvc, authH, itemH, customerH, saleH, reportH, dashboardH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func newEmailSender(cfg config.EmailConfig) (port.EmailSender, error) {
	switch cfg.Provider {
	case "ses":
		return ses.NewSESSender(&cfg)
	default:
		return noop.NewNoopSender(), nil
	}
}
