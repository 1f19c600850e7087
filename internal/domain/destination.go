package domain

import (
	"time"

	"github.com/google/uuid"
)

// SavedDestination is a place a user bookmarked from the discover page.
type SavedDestination struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"` // e.g. "beach", "city", "mountains"
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
