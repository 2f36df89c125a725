package models

import "time"

// Testimonial represents a customer quote shown on marketing pages
type Testimonial struct {
	ID        int       `json:"id"`
	Author    string    `json:"author"`
	RoleTitle string    `json:"roleTitle"`
	Company   string    `json:"company"`
	Quote     string    `json:"quote"`
	Rating    int       `json:"rating"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateTestimonialRequest represents a request to create a testimonial
type CreateTestimonialRequest struct {
	Author    string `json:"author"`
	RoleTitle string `json:"roleTitle"`
	Company   string `json:"company"`
	Quote     string `json:"quote"`
	Rating    int    `json:"rating"`
	Published bool   `json:"published"`
}
