package domain

import "time"

// Class is one entry in the training-class catalog.
type Class struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Lessons     int       `json:"lessons"`
	CreatedAt   time.Time `json:"created_at"`
}
