package itinerary

import (
	"testing"
	"time"

	"github.com/draymaster/itinerary-service/internal/domain"
)

func fakeCoords() []domain.Coordinate {
	coords := make([]domain.Coordinate, 200)
	for i := range coords {
		coords[i] = domain.Coordinate{float64(i) * 0.001, float64(i) * 0.001}
	}
	return coords
}

func TestTransformShortRoute(t *testing.T) {
	r := domain.Route{
		Summary: domain.Summary{Distance: 3000, Duration: 3600},
		Segments: []domain.Segment{{
			Steps: []domain.Step{
				{Distance: 1000, Duration: 1800, WayPoints: [2]int{0, 10}},
				{Distance: 2000, Duration: 1800, WayPoints: [2]int{10, 30}},
			},
		}},
		Coordinates: fakeCoords(),
		BBox:        []float64{0, 0, 1, 1},
	}

	result, err := Transform(r, 0, time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if result.ItineraryTotalSeconds != 3600 {
		t.Fatalf("expected itinerary_total_seconds 3600, got %d", result.ItineraryTotalSeconds)
	}
	if len(result.Stops) != 0 {
		t.Fatalf("expected 0 stops, got %d", len(result.Stops))
	}
	if result.HOSSummary.CyclesRemaining != 70*3600-result.HOSSummary.CyclesUsedEnd {
		t.Fatalf("cycles_remaining inconsistent with cycles_used_end")
	}
}

func TestTransformMidnightStraddlingELD(t *testing.T) {
	r := domain.Route{
		Summary: domain.Summary{Distance: 400000, Duration: 14400},
		Segments: []domain.Segment{{
			Steps: []domain.Step{
				{Distance: 400000, Duration: 14400, WayPoints: [2]int{0, 199}},
			},
		}},
		Coordinates: fakeCoords(),
		BBox:        []float64{0, 0, 1, 1},
	}

	start := time.Date(2026, 1, 1, 23, 30, 0, 0, time.UTC)
	result, err := Transform(r, 0, start)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if len(result.ELD) != 2 {
		t.Fatalf("expected 2 ELD logs, got %d", len(result.ELD))
	}
	if result.ELD[0].TotalDriving != 1800 {
		t.Fatalf("expected first log to total 1800s driving, got %d", result.ELD[0].TotalDriving)
	}
	if result.ELD[1].TotalDriving != 12600 {
		t.Fatalf("expected second log to total 12600s driving, got %d", result.ELD[1].TotalDriving)
	}
}

func TestTransformRejectsMissingSegments(t *testing.T) {
	r := domain.Route{Coordinates: fakeCoords()}
	if _, err := Transform(r, 0, time.Now()); err == nil {
		t.Fatal("expected error for missing segments")
	}
}

func TestTransformRejectsMissingGeometry(t *testing.T) {
	r := domain.Route{
		Segments: []domain.Segment{{Steps: []domain.Step{{Distance: 1, Duration: 1, WayPoints: [2]int{0, 1}}}}},
	}
	if _, err := Transform(r, 0, time.Now()); err == nil {
		t.Fatal("expected error for missing geometry")
	}
}

func TestTransformRejectsNegativeUsedCycle(t *testing.T) {
	r := domain.Route{
		Segments:    []domain.Segment{{Steps: []domain.Step{{Distance: 1, Duration: 1, WayPoints: [2]int{0, 1}}}}},
		Coordinates: fakeCoords(),
	}
	if _, err := Transform(r, -1, time.Now()); err == nil {
		t.Fatal("expected error for negative used_cycle_hours")
	}
}
