package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/draymaster/itinerary-service/internal/domain"
)

// PostgresItineraryRepository implements ItineraryRepository against a
// Postgres table holding the computed itinerary as a jsonb column, the way
// the fleet's other services store compound domain payloads alongside their
// scalar envelope fields.
type PostgresItineraryRepository struct {
	db *sqlx.DB
}

// NewPostgresItineraryRepository creates a new repository over db.
func NewPostgresItineraryRepository(db *sqlx.DB) *PostgresItineraryRepository {
	return &PostgresItineraryRepository{db: db}
}

// itineraryRow is the flat row shape sqlx scans, with the computed
// itinerary kept as raw jsonb bytes until decoded.
type itineraryRow struct {
	ID             uuid.UUID `db:"id"`
	DriverID       uuid.UUID `db:"driver_id"`
	RequestedAt    sql.NullTime `db:"requested_at"`
	TripStartTime  sql.NullTime `db:"trip_start_time"`
	UsedCycleHours int       `db:"used_cycle_hours"`
	ItineraryJSON  []byte    `db:"itinerary_json"`
	CreatedAt      sql.NullTime `db:"created_at"`
}

func (r itineraryRow) toDomain() (*domain.StoredItinerary, error) {
	var it domain.Itinerary
	if err := json.Unmarshal(r.ItineraryJSON, &it); err != nil {
		return nil, fmt.Errorf("decode stored itinerary: %w", err)
	}
	return &domain.StoredItinerary{
		ID:             r.ID,
		DriverID:       r.DriverID,
		RequestedAt:    r.RequestedAt.Time,
		TripStartTime:  r.TripStartTime.Time,
		UsedCycleHours: r.UsedCycleHours,
		Itinerary:      it,
		CreatedAt:      r.CreatedAt.Time,
	}, nil
}

func (r *PostgresItineraryRepository) Create(ctx context.Context, itinerary *domain.StoredItinerary) error {
	payload, err := json.Marshal(itinerary.Itinerary)
	if err != nil {
		return fmt.Errorf("encode itinerary: %w", err)
	}

	query := `
		INSERT INTO itineraries (
			id, driver_id, requested_at, trip_start_time, used_cycle_hours, itinerary_json, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = r.db.ExecContext(ctx, query,
		itinerary.ID, itinerary.DriverID, itinerary.RequestedAt, itinerary.TripStartTime,
		itinerary.UsedCycleHours, payload, itinerary.CreatedAt,
	)
	return err
}

func (r *PostgresItineraryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.StoredItinerary, error) {
	var row itineraryRow
	query := `SELECT id, driver_id, requested_at, trip_start_time, used_cycle_hours, itinerary_json, created_at
		FROM itineraries WHERE id = $1`
	err := r.db.GetContext(ctx, &row, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.toDomain()
}

func (r *PostgresItineraryRepository) GetLatestByDriverID(ctx context.Context, driverID uuid.UUID) (*domain.StoredItinerary, error) {
	var row itineraryRow
	query := `SELECT id, driver_id, requested_at, trip_start_time, used_cycle_hours, itinerary_json, created_at
		FROM itineraries WHERE driver_id = $1 ORDER BY requested_at DESC LIMIT 1`
	err := r.db.GetContext(ctx, &row, query, driverID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.toDomain()
}
