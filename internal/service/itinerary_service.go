// Package service composes the pure itinerary core with persistence,
// caching, and event publishing.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/draymaster/itinerary-service/internal/domain"
	"github.com/draymaster/itinerary-service/internal/hosrules"
	"github.com/draymaster/itinerary-service/internal/itinerary"
	"github.com/draymaster/itinerary-service/internal/platform/apperrors"
	"github.com/draymaster/itinerary-service/internal/platform/kafkabus"
	"github.com/draymaster/itinerary-service/internal/platform/logger"
	"github.com/draymaster/itinerary-service/internal/repository"
)

// eventPublisher is the subset of kafkabus.Producer the service depends on,
// narrowed so tests can substitute a fake without a live broker.
type eventPublisher interface {
	Publish(ctx context.Context, topic string, event *kafkabus.Event) error
}

// ItineraryService plans HOS-compliant itineraries, persists them, caches
// the latest one per driver in Redis, and publishes computed/alert events.
type ItineraryService struct {
	repo          repository.ItineraryRepository
	redis         *redis.Client
	cacheTTL      time.Duration
	eventProducer eventPublisher
	logger        *logger.Logger
}

// NewItineraryService builds an ItineraryService.
func NewItineraryService(
	repo repository.ItineraryRepository,
	redisClient *redis.Client,
	cacheTTL time.Duration,
	eventProducer eventPublisher,
	log *logger.Logger,
) *ItineraryService {
	return &ItineraryService{
		repo:          repo,
		redis:         redisClient,
		cacheTTL:      cacheTTL,
		eventProducer: eventProducer,
		logger:        log,
	}
}

// PlanItineraryInput carries the routing-provider result and trip context
// the transformer needs.
type PlanItineraryInput struct {
	DriverID       uuid.UUID
	Route          domain.Route
	UsedCycleHours int
	TripStartTime  time.Time
}

// PlanItinerary transforms route into an HOS-compliant itinerary, persists
// it, caches it as the driver's latest, and publishes an itinerary.computed
// event (plus a compliance alert when the cycle budget is nearly spent).
func (s *ItineraryService) PlanItinerary(ctx context.Context, input PlanItineraryInput) (*domain.StoredItinerary, error) {
	computed, err := itinerary.Transform(input.Route, input.UsedCycleHours, input.TripStartTime)
	if err != nil {
		return nil, apperrors.MalformedRouteError(err.Error())
	}

	stored := &domain.StoredItinerary{
		ID:             uuid.New(),
		DriverID:       input.DriverID,
		RequestedAt:    time.Now(),
		TripStartTime:  input.TripStartTime,
		UsedCycleHours: input.UsedCycleHours,
		Itinerary:      *computed,
		CreatedAt:      time.Now(),
	}

	if err := s.repo.Create(ctx, stored); err != nil {
		return nil, apperrors.DatabaseError("create itinerary", err)
	}

	if err := s.cacheLatest(ctx, stored); err != nil {
		s.logger.Warnw("failed to cache latest itinerary", "driver_id", input.DriverID, "error", err)
	}

	if s.eventProducer != nil {
		event := kafkabus.NewEvent(kafkabus.Topics.ItineraryComputed, "itinerary-service", map[string]interface{}{
			"itinerary_id":     stored.ID.String(),
			"driver_id":        stored.DriverID.String(),
			"total_seconds":    computed.ItineraryTotalSeconds,
			"cycles_used_end":  computed.HOSSummary.CyclesUsedEnd,
			"cycles_remaining": computed.HOSSummary.CyclesRemaining,
		})
		_ = s.eventProducer.Publish(ctx, kafkabus.Topics.ItineraryComputed, event)

		if severity, reason, ok := complianceSeverity(computed.HOSSummary.CyclesRemaining); ok {
			alert := kafkabus.NewEvent(kafkabus.Topics.ComplianceAlert, "itinerary-service", map[string]interface{}{
				"driver_id": stored.DriverID.String(),
				"severity":  severity,
				"reason":    reason,
			})
			_ = s.eventProducer.Publish(ctx, kafkabus.Topics.ComplianceAlert, alert)
		}
	}

	s.logger.Infow("itinerary planned", "driver_id", input.DriverID, "itinerary_id", stored.ID)
	return stored, nil
}

// complianceSeverity classifies the cycle budget left at the end of a
// planned itinerary the way checkDriverCompliance classifies document
// expirations: critical takes priority over warning, checked in that
// order, and ok is false when neither threshold is crossed.
func complianceSeverity(cyclesRemaining int) (severity, reason string, ok bool) {
	cycleWarningThreshold := int(0.10 * hosrules.Default().CycleDuration.Seconds())

	switch {
	case cyclesRemaining <= 0:
		return "critical", "70-hour cycle budget exhausted by planned itinerary", true
	case cyclesRemaining <= cycleWarningThreshold:
		return "warning", "70-hour cycle budget nearly exhausted by planned itinerary", true
	default:
		return "", "", false
	}
}

// GetItinerary fetches a previously computed itinerary by ID.
func (s *ItineraryService) GetItinerary(ctx context.Context, id uuid.UUID) (*domain.StoredItinerary, error) {
	stored, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.DatabaseError("get itinerary", err)
	}
	if stored == nil {
		return nil, apperrors.NotFoundError("itinerary", id.String())
	}
	return stored, nil
}

// GetLatestItinerary returns a driver's most recently computed itinerary,
// preferring the Redis cache and falling back to Postgres.
func (s *ItineraryService) GetLatestItinerary(ctx context.Context, driverID uuid.UUID) (*domain.StoredItinerary, error) {
	if cached, err := s.latestFromCache(ctx, driverID); err != nil {
		s.logger.Warnw("failed to read latest itinerary from cache", "driver_id", driverID, "error", err)
	} else if cached != nil {
		return cached, nil
	}

	stored, err := s.repo.GetLatestByDriverID(ctx, driverID)
	if err != nil {
		return nil, apperrors.DatabaseError("get latest itinerary", err)
	}
	if stored == nil {
		return nil, apperrors.NotFoundError("itinerary", driverID.String())
	}

	if err := s.cacheLatest(ctx, stored); err != nil {
		s.logger.Warnw("failed to backfill cache", "driver_id", driverID, "error", err)
	}
	return stored, nil
}

func (s *ItineraryService) cacheLatest(ctx context.Context, stored *domain.StoredItinerary) error {
	if s.redis == nil {
		return nil
	}
	payload, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("marshal itinerary for cache: %w", err)
	}
	return s.redis.Set(ctx, latestCacheKey(stored.DriverID), payload, s.cacheTTL).Err()
}

func (s *ItineraryService) latestFromCache(ctx context.Context, driverID uuid.UUID) (*domain.StoredItinerary, error) {
	if s.redis == nil {
		return nil, nil
	}
	payload, err := s.redis.Get(ctx, latestCacheKey(driverID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stored domain.StoredItinerary
	if err := json.Unmarshal(payload, &stored); err != nil {
		return nil, fmt.Errorf("unmarshal cached itinerary: %w", err)
	}
	return &stored, nil
}

func latestCacheKey(driverID uuid.UUID) string {
	return fmt.Sprintf("itinerary:latest:%s", driverID.String())
}

// DefaultRules exposes the fixed HOS rule table the service's HTTP layer
// can surface for introspection (e.g. a /v1/rules endpoint).
func DefaultRules() hosrules.Rules {
	return hosrules.Default()
}
