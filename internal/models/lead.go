package models

import "time"

// SalesLead represents an enterprise-sales inquiry from the contact form
type SalesLead struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company"`
	Phone     string    `json:"phone,omitempty"`
	TeamSize  int       `json:"teamSize,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateLeadRequest represents the enterprise contact form payload
type CreateLeadRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Phone    string `json:"phone"`
	TeamSize int    `json:"teamSize"`
	Message  string `json:"message"`
}
