// Package itinerary wires the geodesic interpolator, step planner, and ELD
// day splitter into the single Transform entrypoint the service layer calls.
package itinerary

import (
	"fmt"
	"time"

	"github.com/draymaster/itinerary-service/internal/domain"
	"github.com/draymaster/itinerary-service/internal/eld"
	"github.com/draymaster/itinerary-service/internal/geo"
	"github.com/draymaster/itinerary-service/internal/hosrules"
	"github.com/draymaster/itinerary-service/internal/planner"
)

const summaryNotes = "Stops placed where a limit is reached, splitting the step in progress; 30-min break once consecutive driving reaches 8h; 10h rest once driving reaches 11h; 34h reset once the 70h cycle is reached; fuel stop every 1,000 miles; 1h service at each zero-distance step."

// Transform runs the full pipeline against route: validates it, decodes its
// geometry, plans HOS/fueling stops, splits the resulting events into daily
// ELD logs, and assembles the final Itinerary. route is deep-copied on
// entry so the caller's slices are never aliased or mutated.
func Transform(route domain.Route, usedCycleHours int, tripStart time.Time) (*domain.Itinerary, error) {
	if usedCycleHours < 0 {
		return nil, fmt.Errorf("itinerary: used_cycle_hours must be non-negative, got %d", usedCycleHours)
	}

	working := route.Clone()

	if err := validateRoute(working); err != nil {
		return nil, err
	}

	coords, err := resolveCoordinates(working)
	if err != nil {
		return nil, err
	}

	rules := hosrules.Default()
	usedCycleSeconds := float64(usedCycleHours) * 3600

	result, err := planner.Plan(working, coords, rules, usedCycleSeconds)
	if err != nil {
		return nil, err
	}

	initialTime := eld.SnapToNextDay(tripStart)
	logs := eld.Split(result.HOSEvents, initialTime)

	travelSeconds := working.Summary.Duration
	var stopSeconds int
	for _, stop := range result.Stops {
		stopSeconds += stop.DurationSeconds
	}
	totalSeconds := travelSeconds + float64(stopSeconds)

	return &domain.Itinerary{
		BBox:                  working.BBox,
		Stops:                 result.Stops,
		HOSEvents:             result.HOSEvents,
		ELD:                   logs,
		ItineraryTotalSeconds: int(totalSeconds),
		HOSSummary: domain.HOSSummary{
			OriginalTravelSeconds: int(travelSeconds),
			AddedStopSeconds:      stopSeconds,
			TotalItinerarySeconds: int(totalSeconds),
			TotalDistance:         working.Summary.Distance,
			CyclesUsedEnd:         int(result.TotalCycleOnDuty),
			CyclesRemaining:       int(rules.CycleDuration.Seconds() - result.TotalCycleOnDuty),
			Notes:                 summaryNotes,
		},
	}, nil
}

// validateRoute checks the preconditions §7 calls fatal: missing segments
// and missing geometry. Waypoint-range validation happens per-step inside
// the planner, where the decoded coordinate count is already in hand.
func validateRoute(route domain.Route) error {
	if len(route.Segments) == 0 {
		return fmt.Errorf("itinerary: malformed route: no segments")
	}
	if route.Geometry == "" && len(route.Coordinates) == 0 {
		return fmt.Errorf("itinerary: malformed route: missing geometry")
	}
	return nil
}

// resolveCoordinates prefers a pre-decoded Coordinates slice (set by a
// caller that already ran geo.DecodePolyline) and otherwise decodes
// Geometry itself.
func resolveCoordinates(route domain.Route) ([]domain.Coordinate, error) {
	if len(route.Coordinates) > 0 {
		return route.Coordinates, nil
	}

	decoded, err := geo.DecodePolyline(route.Geometry)
	if err != nil {
		return nil, fmt.Errorf("itinerary: malformed route: %w", err)
	}

	coords := make([]domain.Coordinate, len(decoded))
	for i, c := range decoded {
		coords[i] = domain.Coordinate{c.Lon(), c.Lat()}
	}
	return coords, nil
}
