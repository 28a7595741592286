// Package repository defines the data-access interfaces the service layer
// depends on, and a Postgres implementation of them.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/draymaster/itinerary-service/internal/domain"
)

// ItineraryRepository persists computed itineraries and looks them up by ID
// or by the driver that requested them.
type ItineraryRepository interface {
	Create(ctx context.Context, itinerary *domain.StoredItinerary) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StoredItinerary, error)
	GetLatestByDriverID(ctx context.Context, driverID uuid.UUID) (*domain.StoredItinerary, error)
}
