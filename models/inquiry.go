package models

import "time"

// Inquiry types and statuses.
const (
	InquiryGeneral     = "GENERAL"
	InquiryShowing     = "SHOWING"
	InquiryApplication = "APPLICATION"

	InquiryNew       = "NEW"
	InquiryContacted = "CONTACTED"
	InquiryClosed    = "CLOSED"
)

// Inquiry is a contact-form message about a property.
type Inquiry struct {
	ID            string           `json:"id"`
	PropertyID    string           `json:"propertyId"`
	Name          string           `json:"name"`
	Email         string           `json:"email"`
	Phone         *string          `json:"phone"`
	Message       string           `json:"message"`
	InquiryType   string           `json:"inquiryType"`
	PreferredDate *time.Time       `json:"preferredDate"`
	PreferredTime *string          `json:"preferredTime"`
	Status        string           `json:"status"`
	Property      *PropertySummary `json:"property,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}

type CreateInquiryRequest struct {
	PropertyID    string `json:"propertyId" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone"`
	Message       string `json:"message" binding:"required"`
	InquiryType   string `json:"inquiryType" binding:"required"`
	PreferredDate string `json:"preferredDate"` // "YYYY-MM-DD", optional
	PreferredTime string `json:"preferredTime"`
}

type UpdateInquiryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func ValidInquiryStatus(s string) bool {
	switch s {
	case InquiryNew, InquiryContacted, InquiryClosed:
		return true
	}
	return false
}
