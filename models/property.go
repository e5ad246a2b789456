package models

import "time"

// Property is a rental unit shown on the public site and managed from the back office.
type Property struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Address     string          `json:"address"`
	City        string          `json:"city"`
	State       string          `json:"state"`
	Zip         string          `json:"zip"`
	Price       int             `json:"price"` // monthly rent, whole dollars
	Bedrooms    int             `json:"bedrooms"`
	Bathrooms   float64         `json:"bathrooms"`
	Sqft        *int            `json:"sqft"`
	Available   bool            `json:"available"`
	PetsAllowed bool            `json:"petsAllowed"`
	Features    string          `json:"features"` // comma-separated, e.g. "Gym,Pool,Doorman"
	Images      []PropertyImage `json:"images"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type PropertyImage struct {
	ID         string `json:"id"`
	PropertyID string `json:"propertyId"`
	URL        string `json:"url"`
}

// PropertySummary is the subset joined onto inquiries, applications and showings.
type PropertySummary struct {
	Title   string `json:"title"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
}

// CreatePropertyRequest is the admin payload for creating a property.
type CreatePropertyRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Address     string   `json:"address" binding:"required"`
	City        string   `json:"city" binding:"required"`
	State       string   `json:"state" binding:"required"`
	Zip         string   `json:"zip" binding:"required"`
	Price       int      `json:"price" binding:"required,gt=0"`
	Bedrooms    int      `json:"bedrooms" binding:"required,gte=0"`
	Bathrooms   float64  `json:"bathrooms" binding:"required,gt=0"`
	Sqft        *int     `json:"sqft"`
	Available   *bool    `json:"available"`
	PetsAllowed bool     `json:"petsAllowed"`
	Features    string   `json:"features"`
	ImageURLs   []string `json:"imageUrls"`
}

// UpdatePropertyRequest carries partial updates; nil fields are left untouched.
type UpdatePropertyRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Address     *string  `json:"address"`
	City        *string  `json:"city"`
	State       *string  `json:"state"`
	Zip         *string  `json:"zip"`
	Price       *int     `json:"price"`
	Bedrooms    *int     `json:"bedrooms"`
	Bathrooms   *float64 `json:"bathrooms"`
	Sqft        *int     `json:"sqft"`
	Available   *bool    `json:"available"`
	PetsAllowed *bool    `json:"petsAllowed"`
	Features    *string  `json:"features"`
}
