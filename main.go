// File: rentaldesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"rentaldesk/config"
	"rentaldesk/cron"
	"rentaldesk/database"
	adminRepoPkg "rentaldesk/database/repository/admin"
	applicationRepoPkg "rentaldesk/database/repository/application"
	availabilityRepoPkg "rentaldesk/database/repository/availability"
	documentRepoPkg "rentaldesk/database/repository/document"
	inquiryRepoPkg "rentaldesk/database/repository/inquiry"
	maintenanceRepoPkg "rentaldesk/database/repository/maintenance"
	propertyRepoPkg "rentaldesk/database/repository/property"
	showingRepoPkg "rentaldesk/database/repository/showing"
	tenantRepoPkg "rentaldesk/database/repository/tenant"
	"rentaldesk/handlers"
	"rentaldesk/middleware"
	"rentaldesk/routes"
	adminSvc "rentaldesk/services/admin"
	applicationSvc "rentaldesk/services/application"
	documentSvc "rentaldesk/services/document"
	inquirySvc "rentaldesk/services/inquiry"
	maintenanceSvc "rentaldesk/services/maintenance"
	propertySvc "rentaldesk/services/property"
	showingSvc "rentaldesk/services/showing"
	"rentaldesk/services/storage"
	tenantSvc "rentaldesk/services/tenant"
	"rentaldesk/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	defer database.CloseDB()
	utils.InitCache()
	utils.InitAuthCache()

	storageService, err := storage.NewStorageService(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	propRepo := propertyRepoPkg.NewPostgresPropertyRepo()
	showRepo := showingRepoPkg.NewPostgresShowingRepo()
	availRepo := availabilityRepoPkg.NewPostgresAvailabilityRepo()
	inqRepo := inquiryRepoPkg.NewPostgresInquiryRepo()
	appRepo := applicationRepoPkg.NewPostgresApplicationRepo()
	tenRepo := tenantRepoPkg.NewPostgresTenantRepo()
	admRepo := adminRepoPkg.NewPostgresAdminRepo()
	maintRepo := maintenanceRepoPkg.NewPostgresMaintenanceRepo()
	docRepo := documentRepoPkg.NewPostgresDocumentRepo()

	// background worker and reminder queue.
	scheduler := cron.NewAsynqScheduler()
	defer scheduler.Close()
	cron.InitShowingWorker(showRepo)

	// services.
	propertyService := &propertySvc.DefaultPropertyService{
		Repo:  propRepo,
		Cache: utils.GetCacheClient(),
	}
	showingService := &showingSvc.DefaultShowingService{
		Repo:             showRepo,
		AvailabilityRepo: availRepo,
		Scheduler:        scheduler,
	}
	availabilityService := &showingSvc.DefaultAvailabilityService{Repo: availRepo}
	inquiryService := &inquirySvc.DefaultInquiryService{Repo: inqRepo}
	applicationService := &applicationSvc.DefaultApplicationService{Repo: appRepo}
	tenantService := &tenantSvc.DefaultTenantService{Repo: tenRepo}
	adminService := &adminSvc.DefaultAdminService{Repo: admRepo}
	maintenanceService := &maintenanceSvc.DefaultMaintenanceService{Repo: maintRepo}
	documentService := &documentSvc.DefaultDocumentService{
		Repo:    docRepo,
		Storage: storageService,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Property:     handlers.NewPropertyHandler(propertyService),
		Showing:      handlers.NewShowingHandler(showingService),
		Availability: handlers.NewAvailabilityHandler(availabilityService),
		Inquiry:      handlers.NewInquiryHandler(inquiryService),
		Application:  handlers.NewApplicationHandler(applicationService),
		Auth:         handlers.NewAuthHandler(adminService),
		Tenant:       handlers.NewTenantHandler(tenantService),
		Maintenance:  handlers.NewMaintenanceHandler(maintenanceService),
		Document:     handlers.NewDocumentHandler(documentService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
