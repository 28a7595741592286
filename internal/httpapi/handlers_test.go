package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/draymaster/itinerary-service/internal/domain"
	"github.com/draymaster/itinerary-service/internal/platform/logger"
	"github.com/draymaster/itinerary-service/internal/service"
)

type mockRepo struct {
	byID map[uuid.UUID]*domain.StoredItinerary
}

func newMockRepo() *mockRepo {
	return &mockRepo{byID: make(map[uuid.UUID]*domain.StoredItinerary)}
}

func (m *mockRepo) Create(ctx context.Context, it *domain.StoredItinerary) error {
	m.byID[it.ID] = it
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.StoredItinerary, error) {
	return m.byID[id], nil
}

func (m *mockRepo) GetLatestByDriverID(ctx context.Context, driverID uuid.UUID) (*domain.StoredItinerary, error) {
	for _, it := range m.byID {
		if it.DriverID == driverID {
			return it, nil
		}
	}
	return nil, nil
}

// testRoute's Coordinates are not part of the JSON encoding (json:"-"), so
// the request also carries Geometry: an encoded polyline of 31 points at
// 0.001-degree spacing, enough for every step's way_points.
func testRoute() domain.Route {
	coords := make([]domain.Coordinate, 200)
	for i := range coords {
		coords[i] = domain.Coordinate{float64(i) * 0.001, float64(i) * 0.001}
	}
	return domain.Route{
		Summary:  domain.Summary{Distance: 3000, Duration: 3600},
		Geometry: "??" + strings.Repeat("gEgE", 30),
		Segments: []domain.Segment{{
			Steps: []domain.Step{
				{Distance: 1000, Duration: 1800, WayPoints: [2]int{0, 10}},
				{Distance: 2000, Duration: 1800, WayPoints: [2]int{10, 30}},
			},
		}},
		Coordinates: coords,
		BBox:        []float64{0, 0, 1, 1},
	}
}

func TestPlanItineraryHandlerCreates(t *testing.T) {
	svc := service.NewItineraryService(newMockRepo(), nil, time.Hour, nil, logger.Default())
	router := NewRouter(svc, logger.Default())

	reqBody := planItineraryRequest{
		DriverID:       uuid.New(),
		Route:          testRoute(),
		UsedCycleHours: 0,
		TripStartTime:  time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC),
	}
	body, _ := json.Marshal(reqBody)

	req := httptest.NewRequest(http.MethodPost, "/v1/itineraries", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var stored domain.StoredItinerary
	if err := json.Unmarshal(rec.Body.Bytes(), &stored); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if stored.Itinerary.ItineraryTotalSeconds != 3600 {
		t.Fatalf("expected itinerary_total_seconds 3600, got %d", stored.Itinerary.ItineraryTotalSeconds)
	}
}

func TestGetItineraryHandlerNotFound(t *testing.T) {
	svc := service.NewItineraryService(newMockRepo(), nil, time.Hour, nil, logger.Default())
	router := NewRouter(svc, logger.Default())

	req := httptest.NewRequest(http.MethodGet, "/v1/itineraries/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHealthEndpoint(t *testing.T) {
	svc := service.NewItineraryService(newMockRepo(), nil, time.Hour, nil, logger.Default())
	router := NewRouter(svc, logger.Default())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
