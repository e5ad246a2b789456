package models

import "time"

// Admin is a back-office account.
type Admin struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type AdminSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
