package domain

import (
	"time"

	"github.com/google/uuid"
)

// DiaryEntry is a dated journal entry owned by one user.
// Entries are created and deleted, never edited in place.
type DiaryEntry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	EntryDate time.Time `json:"entry_date"`
	Location  string    `json:"location,omitempty"` // optional free-text place name
	CreatedAt time.Time `json:"created_at"`
}
