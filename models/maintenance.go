package models

import "time"

// Maintenance priorities and statuses.
const (
	PriorityLow       = "LOW"
	PriorityMedium    = "MEDIUM"
	PriorityHigh      = "HIGH"
	PriorityEmergency = "EMERGENCY"

	MaintenanceNew        = "NEW"
	MaintenanceInProgress = "IN_PROGRESS"
	MaintenanceScheduled  = "SCHEDULED"
	MaintenanceCompleted  = "COMPLETED"
	MaintenanceCancelled  = "CANCELLED"
)

// MaintenanceRequest is a repair ticket filed by a tenant.
type MaintenanceRequest struct {
	ID                   string               `json:"id"`
	TenantID             string               `json:"tenantId"`
	PropertyID           string               `json:"propertyId"`
	Category             string               `json:"category"`
	Priority             string               `json:"priority"`
	Description          string               `json:"description"`
	PreferredAccessTimes *string              `json:"preferredAccessTimes"`
	Photos               []string             `json:"photos"` // uploaded photo URLs
	Status               string               `json:"status"`
	AdminNotes           *string              `json:"adminNotes"`
	Tenant               *MaintenanceTenant   `json:"tenant,omitempty"`
	Property             *MaintenanceProperty `json:"property,omitempty"`
	CreatedAt            time.Time            `json:"createdAt"`
	UpdatedAt            time.Time            `json:"updatedAt"`
}

// MaintenanceTenant is the tenant subset joined onto admin listings.
type MaintenanceTenant struct {
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone"`
	UnitNumber *string `json:"unitNumber"`
}

// MaintenanceProperty is the property subset joined onto admin listings.
type MaintenanceProperty struct {
	Title   string `json:"title"`
	Address string `json:"address"`
}

type CreateMaintenanceRequest struct {
	PropertyID           string   `json:"propertyId" binding:"required"`
	Category             string   `json:"category" binding:"required"`
	Priority             string   `json:"priority" binding:"required"`
	Description          string   `json:"description" binding:"required"`
	PreferredAccessTimes string   `json:"preferredAccessTimes"`
	Photos               []string `json:"photos"`
}

type UpdateMaintenanceRequest struct {
	Status     *string `json:"status"`
	AdminNotes *string `json:"adminNotes"`
}

func ValidMaintenanceStatus(s string) bool {
	switch s {
	case MaintenanceNew, MaintenanceInProgress, MaintenanceScheduled, MaintenanceCompleted, MaintenanceCancelled:
		return true
	}
	return false
}

func ValidMaintenancePriority(s string) bool {
	switch s {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityEmergency:
		return true
	}
	return false
}
