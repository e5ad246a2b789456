package models

import "time"

// AvailabilityRule is a recurring weekly window during which showings may be booked.
type AvailabilityRule struct {
	ID           string    `json:"id"`
	PropertyID   string    `json:"propertyId"`
	DayOfWeek    int       `json:"dayOfWeek"`    // 0 = Sunday .. 6 = Saturday
	StartTime    string    `json:"startTime"`    // "HH:MM" 24h
	EndTime      string    `json:"endTime"`      // "HH:MM" 24h, after StartTime
	SlotDuration int       `json:"slotDuration"` // minutes
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Slot is one bookable interval offered by the slot calculator.
type Slot struct {
	Time     string `json:"time"`     // display form, "h:MM AM/PM"
	Value    string `json:"value"`    // canonical form, "HH:MM"
	Duration int    `json:"duration"` // minutes
}

// CreateAvailabilityRequest is the admin payload for adding a weekly window.
type CreateAvailabilityRequest struct {
	DayOfWeek    *int   `json:"dayOfWeek" binding:"required"`
	StartTime    string `json:"startTime" binding:"required"`
	EndTime      string `json:"endTime" binding:"required"`
	SlotDuration int    `json:"slotDuration"`
}

// UpdateAvailabilityRequest carries partial updates; nil fields are left untouched.
type UpdateAvailabilityRequest struct {
	DayOfWeek    *int    `json:"dayOfWeek"`
	StartTime    *string `json:"startTime"`
	EndTime      *string `json:"endTime"`
	SlotDuration *int    `json:"slotDuration"`
	IsActive     *bool   `json:"isActive"`
}
