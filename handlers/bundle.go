// File: handlers/bundle.go
package handlers

// HandlerBundle gathers the per-domain handlers so route registration takes a
// single dependency.
type HandlerBundle struct {
	Property     *PropertyHandler
	Showing      *ShowingHandler
	Availability *AvailabilityHandler
	Inquiry      *InquiryHandler
	Application  *ApplicationHandler
	Auth         *AuthHandler
	Tenant       *TenantHandler
	Maintenance  *MaintenanceHandler
	Document     *DocumentHandler
}
