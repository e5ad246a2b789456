package models

import "time"

// Tenant is a portal account tied to a leased property.
type Tenant struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Password   string     `json:"-"` // bcrypt hash, never serialized
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Phone      *string    `json:"phone"`
	PropertyID string     `json:"propertyId"`
	UnitNumber *string    `json:"unitNumber"`
	LeaseStart *time.Time `json:"leaseStart"`
	LeaseEnd   *time.Time `json:"leaseEnd"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// TenantSummary is the public shape returned by auth endpoints.
type TenantSummary struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	PropertyID string     `json:"propertyId"`
	LeaseStart *time.Time `json:"leaseStart,omitempty"`
	LeaseEnd   *time.Time `json:"leaseEnd,omitempty"`
}

// TenantDirectoryEntry is the admin directory row, with the property title joined.
type TenantDirectoryEntry struct {
	ID            string  `json:"id"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Email         string  `json:"email"`
	UnitNumber    *string `json:"unitNumber"`
	PropertyTitle string  `json:"propertyTitle"`
}

type RegisterTenantRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName" binding:"required"`
	Phone      string `json:"phone"`
	PropertyID string `json:"propertyId" binding:"required"`
	UnitNumber string `json:"unitNumber"`
	LeaseStart string `json:"leaseStart"` // "YYYY-MM-DD", optional
	LeaseEnd   string `json:"leaseEnd"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by register and login for both principals.
type AuthResponse struct {
	Token  string         `json:"token"`
	Tenant *TenantSummary `json:"tenant,omitempty"`
	Admin  *AdminSummary  `json:"admin,omitempty"`
}
