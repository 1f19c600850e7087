// Package domain contains the core data types for the Wanderplan API.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (store, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// TravelType classifies who a trip is planned for.
type TravelType string

// Valid travel types. These match the check constraint on the trips table.
const (
	TravelSolo   TravelType = "solo"
	TravelCouple TravelType = "couple"
	TravelFamily TravelType = "family"
	TravelGroup  TravelType = "group"
)

// Valid reports whether t is one of the known travel types.
func (t TravelType) Valid() bool {
	switch t {
	case TravelSolo, TravelCouple, TravelFamily, TravelGroup:
		return true
	}
	return false
}

// TripStatus tracks where a trip is in its lifecycle.
type TripStatus string

// Valid trip statuses.
const (
	StatusPlanned   TripStatus = "planned"
	StatusCompleted TripStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s TripStatus) Valid() bool {
	return s == StatusPlanned || s == StatusCompleted
}

// Trip represents a single planned or completed trip owned by one user.
// Trips are created by the plan-trip flow and deleted from the trips list;
// there is no update operation.
//
// EndDate is not required to be after StartDate at write time. Only the
// recommendation flow, which derives a day count, enforces that ordering.
type Trip struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Destination string     `json:"destination"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	Budget      float64    `json:"budget"` // non-negative currency amount
	TravelType  TravelType `json:"travel_type"`
	Status      TripStatus `json:"status"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
