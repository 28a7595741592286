package planner

import (
	"fmt"

	"github.com/draymaster/itinerary-service/internal/domain"
	"github.com/draymaster/itinerary-service/internal/geo"
	"github.com/draymaster/itinerary-service/internal/hosrules"
)

// Result is the planner's output: the two event streams and the final
// driver-state counters the assembler needs for the summary block.
type Result struct {
	HOSEvents        []domain.HOSEvent
	Stops            []domain.Stop
	TotalCycleOnDuty float64
}

// Plan walks route's segments and steps in order, inserting HOS stops and
// fueling stops per spec.md §4.3, and returns the resulting event streams.
// coords is the already-decoded polyline, indexable by each step's
// way_points.
func Plan(route domain.Route, coords []domain.Coordinate, rules hosrules.Rules, usedCycleSeconds float64) (Result, error) {
	s := newState(rules, usedCycleSeconds)

	for segIdx, seg := range route.Segments {
		for stepIdx, step := range seg.Steps {
			if err := validateWayPoints(step.WayPoints, len(coords)); err != nil {
				return Result{}, fmt.Errorf("planner: segment %d step %d: %w", segIdx, stepIdx, err)
			}

			if step.Distance == 0.0 {
				reason := "Dropoff Item"
				if segIdx == 0 {
					reason = "Pickup Item"
				}
				s.recordService(coords[step.WayPoints[1]], segIdx, stepIdx, reason)
				continue
			}

			if err := planStep(s, step, segIdx, stepIdx, coords); err != nil {
				return Result{}, err
			}
		}
	}

	return Result{
		HOSEvents:        s.hosEvents,
		Stops:            s.stops,
		TotalCycleOnDuty: s.totalCycleOnDuty,
	}, nil
}

func validateWayPoints(wp [2]int, numCoords int) error {
	if wp[0] < 0 || wp[1] < 0 || wp[0] >= numCoords || wp[1] >= numCoords {
		return fmt.Errorf("way_points %v out of range for %d decoded coordinates", wp, numCoords)
	}
	return nil
}

// planStep runs predicates 2-6 of spec.md §4.3 against a single non-service
// step, mutating s and consuming the step's remaining duration/distance as
// it inserts HOS and fueling stops.
func planStep(s *state, step domain.Step, segIdx, stepIdx int, coords []domain.Coordinate) error {
	stepDistance := step.Distance
	stepDuration := step.Duration
	instruction := step.Instruction

	startIdx, endIdx := step.WayPoints[0], step.WayPoints[1]
	prevCoord := coords[startIdx]
	segmentCoords := coords[startIdx : endIdx+1]

	needsRest := s.cumulativeDriving+stepDuration >= s.rules.DriveLimit.Seconds()
	needsBreak := s.consecutiveDriving+stepDuration >= s.rules.BreakAfterDrive.Seconds()
	overCycle := s.totalCycleOnDuty+stepDuration >= s.rules.CycleDuration.Seconds()

	t := choosePriorityTrigger(needsRest, needsBreak, overCycle)

	if t != triggerNone {
		remaining := remainingTime(t, s.rules, s.cumulativeDriving, s.consecutiveDriving, s.totalCycleOnDuty)

		if remaining > 0 {
			remainingDistance := predictDistance(stepDuration, stepDistance, remaining)
			s.recordDrive(remaining, remainingDistance, segIdx, stepIdx, instruction)

			stepDuration -= remaining
			stepDistance -= remainingDistance
			prevCoord = domain.Coordinate(geo.PointAlongLine(segmentCoords, remainingDistance))
		}

		switch t {
		case triggerCycle:
			s.recordStop(prevCoord, domain.EventRest, s.rules.CycleRest.Seconds(), "Weekly 70 hour limit reached")
		case triggerRest:
			s.recordStop(prevCoord, domain.EventRest, s.rules.TenHourRest.Seconds(), "10-hour rest required (11h driving limit would be exceeded)")
		case triggerBreak:
			s.recordStop(prevCoord, domain.EventBreak, s.rules.BreakDuration.Seconds(), "30-min break required (8h driving)")
		}
	}

	needsFueling := s.cumulativeDistance+stepDistance >= s.rules.DistanceLimitMeters
	if needsFueling {
		remainingDistance := s.rules.DistanceLimitMeters - s.cumulativeDistance
		if remainingDistance > 0 {
			remaining := predictDuration(stepDuration, stepDistance, remainingDistance)
			s.recordDrive(remaining, remainingDistance, segIdx, stepIdx, instruction)

			stepDuration -= remaining
			stepDistance -= remainingDistance
			prevCoord = domain.Coordinate(geo.PointAlongLine(segmentCoords, remainingDistance))
		}

		s.recordStop(prevCoord, domain.EventFuel, s.rules.BreakDuration.Seconds(), "1,000 miles has been reached, truck needs fueling")
	}

	s.recordDrive(stepDuration, stepDistance, segIdx, stepIdx, instruction)
	return nil
}

// predictDistance scales distance to the share of duration already spent,
// returning 0 for the degenerate duration==0, distance>0 case (spec.md §7).
func predictDistance(prevDuration, prevDistance, newDuration float64) float64 {
	if prevDuration == 0 {
		return 0
	}
	return (prevDistance * newDuration) / prevDuration
}

// predictDuration is predictDistance's inverse, used by the fueling check.
func predictDuration(prevDuration, prevDistance, newDistance float64) float64 {
	if prevDistance == 0 {
		return 0
	}
	return (newDistance * prevDuration) / prevDistance
}
