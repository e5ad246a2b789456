// File: routes/routes.go
package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"rentaldesk/handlers"
	"rentaldesk/middleware"
)

// RegisterPropertyRoutes registers public listing and admin property endpoints.
func RegisterPropertyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/properties")
	{
		api.GET("", hb.Property.ListPropertiesHandler)
		api.GET("/:id", hb.Property.GetPropertyHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.POST("", hb.Property.CreatePropertyHandler)
		protected.PUT("/:id", hb.Property.UpdatePropertyHandler)
		protected.DELETE("/:id", hb.Property.DeletePropertyHandler)
	}
}

// RegisterShowingRoutes registers the public booking flow and the admin queue.
func RegisterShowingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/showings")
	{
		api.POST("", hb.Showing.BookShowingHandler)
		api.GET("/property/:propertyId/available-slots", hb.Showing.AvailableSlotsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.GET("", hb.Showing.ListShowingsHandler)
		protected.GET("/:id", hb.Showing.GetShowingHandler)
		protected.PATCH("/:id/status", hb.Showing.UpdateShowingStatusHandler)
		protected.DELETE("/:id", hb.Showing.DeleteShowingHandler)
	}
}

// RegisterAvailabilityRoutes registers management of weekly showing windows.
// GET is public so the booking scheduler UI can read windows; writes are admin.
// The path parameter names a property for GET/POST and a rule for PUT/DELETE.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("/:id", hb.Availability.ListAvailabilityHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.POST("/:id", hb.Availability.CreateAvailabilityHandler)
		protected.PUT("/:id", hb.Availability.UpdateAvailabilityHandler)
		protected.DELETE("/:id", hb.Availability.DeleteAvailabilityHandler)
	}
}

// RegisterInquiryRoutes registers the public contact form and admin triage.
func RegisterInquiryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/inquiries")
	{
		api.POST("", hb.Inquiry.CreateInquiryHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.GET("", hb.Inquiry.ListInquiriesHandler)
		protected.PATCH("/:id/status", hb.Inquiry.UpdateInquiryStatusHandler)
	}
}

// RegisterApplicationRoutes registers the public application form and admin review.
func RegisterApplicationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/applications")
	{
		api.POST("", hb.Application.CreateApplicationHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.GET("", hb.Application.ListApplicationsHandler)
		protected.PATCH("/:id/status", hb.Application.UpdateApplicationStatusHandler)
	}
}

// RegisterAuthRoutes registers back-office authentication endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.AdminLoginHandler)
		api.GET("/verify", hb.Auth.AdminVerifyHandler)
		api.POST("/logout", hb.Auth.AdminLogoutHandler)
	}
}

// RegisterTenantRoutes registers the tenant portal and the admin directory.
func RegisterTenantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tenants")
	{
		api.POST("/register", hb.Tenant.RegisterTenantHandler)
		api.POST("/login", hb.Tenant.LoginTenantHandler)
		api.GET("/verify", hb.Tenant.VerifyTenantHandler)
		api.POST("/logout", hb.Tenant.LogoutTenantHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.GET("", hb.Tenant.TenantDirectoryHandler)
	}
}

// RegisterMaintenanceRoutes registers tenant tickets and the admin work queue.
func RegisterMaintenanceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/maintenance")
	{
		// GET branches on the caller's role inside the handler.
		api.GET("", hb.Maintenance.ListMaintenanceHandler)

		mine := api.Group("")
		mine.Use(middleware.JWTAuthTenantMiddleware())
		mine.POST("", hb.Maintenance.CreateMaintenanceHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.PATCH("/:id", hb.Maintenance.UpdateMaintenanceHandler)
	}
}

// RegisterDocumentRoutes registers document upload and delivery endpoints.
func RegisterDocumentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/documents")
	{
		// GET branches on the caller's role inside the handler.
		api.GET("", hb.Document.ListDocumentsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.POST("", hb.Document.UploadDocumentHandler)
		protected.DELETE("/:id", hb.Document.DeleteDocumentHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPropertyRoutes(r, hb)
	RegisterShowingRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterInquiryRoutes(r, hb)
	RegisterApplicationRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterTenantRoutes(r, hb)
	RegisterMaintenanceRoutes(r, hb)
	RegisterDocumentRoutes(r, hb)
	RegisterHealthRoute(r)
}
