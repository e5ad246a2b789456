package models

import "time"

// Showing statuses. Only PENDING and CONFIRMED occupy a slot.
const (
	ShowingPending   = "PENDING"
	ShowingConfirmed = "CONFIRMED"
	ShowingCancelled = "CANCELLED"
	ShowingCompleted = "COMPLETED"
)

// Showing is a scheduled property visit booked by a prospective tenant.
type Showing struct {
	ID            string           `json:"id"`
	PropertyID    string           `json:"propertyId"`
	Name          string           `json:"name"`
	Email         string           `json:"email"`
	Phone         string           `json:"phone"`
	ScheduledDate time.Time        `json:"scheduledDate"` // calendar date, midnight UTC
	ScheduledTime string           `json:"scheduledTime"` // canonical "HH:MM" 24h
	Duration      int              `json:"duration"`      // minutes
	Status        string           `json:"status"`
	Notes         *string          `json:"notes"`
	Property      *PropertySummary `json:"property,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// CreateShowingRequest is the public booking payload.
// ScheduledTime accepts "HH:MM" or "h:MM AM/PM"; it is normalized before persisting.
type CreateShowingRequest struct {
	PropertyID    string `json:"propertyId" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	ScheduledDate string `json:"scheduledDate" binding:"required"` // "YYYY-MM-DD"
	ScheduledTime string `json:"scheduledTime" binding:"required"`
	Duration      int    `json:"duration"`
	Notes         string `json:"notes"`
}

// UpdateShowingStatusRequest is the admin status-transition payload.
type UpdateShowingStatusRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

func ValidShowingStatus(s string) bool {
	switch s {
	case ShowingPending, ShowingConfirmed, ShowingCancelled, ShowingCompleted:
		return true
	}
	return false
}
