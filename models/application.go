package models

import "time"

// Application statuses.
const (
	ApplicationPending   = "PENDING"
	ApplicationApproved  = "APPROVED"
	ApplicationRejected  = "REJECTED"
	ApplicationWithdrawn = "WITHDRAWN"
)

// Application is a rental application submitted from the public site.
type Application struct {
	ID         string `json:"id"`
	PropertyID string `json:"propertyId"`

	// Personal information.
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	DateOfBirth *time.Time `json:"dateOfBirth"`

	// Move-in details.
	DesiredMoveInDate *time.Time `json:"desiredMoveInDate"`
	LeaseTerm         *string    `json:"leaseTerm"`
	NumberOfOccupants *int       `json:"numberOfOccupants"`
	HasPets           bool       `json:"hasPets"`
	PetDetails        *string    `json:"petDetails"`

	// Employment.
	EmploymentStatus *string  `json:"employmentStatus"`
	Employer         *string  `json:"employer"`
	JobTitle         *string  `json:"jobTitle"`
	MonthlyIncome    *float64 `json:"monthlyIncome"`

	// Rental history.
	CurrentAddress   *string `json:"currentAddress"`
	LandlordName     *string `json:"landlordName"`
	LandlordPhone    *string `json:"landlordPhone"`
	ReasonForLeaving *string `json:"reasonForLeaving"`

	// References.
	Reference1Name         *string `json:"reference1Name"`
	Reference1Phone        *string `json:"reference1Phone"`
	Reference1Relationship *string `json:"reference1Relationship"`
	Reference2Name         *string `json:"reference2Name"`
	Reference2Phone        *string `json:"reference2Phone"`
	Reference2Relationship *string `json:"reference2Relationship"`

	AdditionalInfo *string          `json:"additionalInfo"`
	Status         string           `json:"status"`
	Property       *PropertySummary `json:"property,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// CreateApplicationRequest mirrors the public application form.
type CreateApplicationRequest struct {
	PropertyID  string `json:"propertyId" binding:"required"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	DateOfBirth string `json:"dateOfBirth"` // "YYYY-MM-DD", optional

	DesiredMoveInDate string `json:"desiredMoveInDate"`
	LeaseTerm         string `json:"leaseTerm"`
	NumberOfOccupants *int   `json:"numberOfOccupants"`
	HasPets           bool   `json:"hasPets"`
	PetDetails        string `json:"petDetails"`

	EmploymentStatus string   `json:"employmentStatus"`
	Employer         string   `json:"employer"`
	JobTitle         string   `json:"jobTitle"`
	MonthlyIncome    *float64 `json:"monthlyIncome"`

	CurrentAddress   string `json:"currentAddress"`
	LandlordName     string `json:"landlordName"`
	LandlordPhone    string `json:"landlordPhone"`
	ReasonForLeaving string `json:"reasonForLeaving"`

	Reference1Name         string `json:"reference1Name"`
	Reference1Phone        string `json:"reference1Phone"`
	Reference1Relationship string `json:"reference1Relationship"`
	Reference2Name         string `json:"reference2Name"`
	Reference2Phone        string `json:"reference2Phone"`
	Reference2Relationship string `json:"reference2Relationship"`

	AdditionalInfo string `json:"additionalInfo"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationRejected, ApplicationWithdrawn:
		return true
	}
	return false
}
