package domain

import (
	"time"

	"github.com/google/uuid"
)

// StoredItinerary wraps a computed Itinerary with the envelope fields the
// service layer persists and caches, modeled on HOSLog's driver-scoped
// envelope in the driver-service domain package.
type StoredItinerary struct {
	ID            uuid.UUID `json:"id" db:"id"`
	DriverID      uuid.UUID `json:"driver_id" db:"driver_id"`
	RequestedAt   time.Time `json:"requested_at" db:"requested_at"`
	TripStartTime time.Time `json:"trip_start_time" db:"trip_start_time"`
	UsedCycleHours int      `json:"used_cycle_hours" db:"used_cycle_hours"`
	Itinerary     Itinerary `json:"itinerary" db:"-"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
