// Package planner is the main HOS state machine: it walks an input route's
// segments and steps, maintains the driver-state counters, and emits the
// hos_events/stops streams an itinerary is built from.
package planner

import (
	"github.com/draymaster/itinerary-service/internal/domain"
	"github.com/draymaster/itinerary-service/internal/hosrules"
)

// state holds the counters that live only inside a single planning run.
type state struct {
	cumulativeDriving   float64 // s, driving since last 10h rest or cycle reset
	consecutiveDriving  float64 // s, driving since last break/rest/fuel/service
	cumulativeOnDuty    float64 // s, informational: driving + service
	totalCycleOnDuty    float64 // s, driving + service + fuel since last 34h reset
	cumulativeDistance  float64 // m, distance since last fueling stop
	secondsElapsed      float64 // s, offset from trip start

	hosEvents []domain.HOSEvent
	stops     []domain.Stop

	rules hosrules.Rules
}

func newState(rules hosrules.Rules, usedCycleSeconds float64) *state {
	return &state{
		totalCycleOnDuty: usedCycleSeconds,
		rules:            rules,
	}
}

// recordDrive appends a drive event using the current elapsed offset, then
// advances driving/on-duty/cycle counters by the truncated duration and the
// elapsed clock by the real-valued duration.
func (s *state) recordDrive(duration, distance float64, segIdx, stepIdx int, instruction string) {
	segIdxCopy, stepIdxCopy := segIdx, stepIdx
	event := domain.HOSEvent{
		Type:                 domain.EventDrive,
		DurationSeconds:      int(duration),
		DistanceMeters:       distance,
		SegmentIndex:         &segIdxCopy,
		StepIndex:            &stepIdxCopy,
		Instruction:          instruction,
		TimeFromStartSeconds: int(s.secondsElapsed),
	}
	s.hosEvents = append(s.hosEvents, event)

	whole := float64(int(duration))
	s.cumulativeDriving += whole
	s.consecutiveDriving += whole
	s.cumulativeOnDuty += whole
	s.totalCycleOnDuty += whole
	s.secondsElapsed += duration
	s.cumulativeDistance += distance
}

// recordStop appends a break/rest/fuel event to both streams and resets the
// counters that type of stop clears.
func (s *state) recordStop(coord domain.Coordinate, typ domain.EventType, duration float64, reason string) {
	event := domain.HOSEvent{
		Type:                 typ,
		DurationSeconds:      int(duration),
		Reason:               reason,
		Location:             coord.Rounded(),
		TimeFromStartSeconds: int(s.secondsElapsed),
	}
	s.hosEvents = append(s.hosEvents, event)
	s.stops = append(s.stops, domain.Stop{
		Type:                 typ,
		DurationSeconds:      int(duration),
		Reason:               reason,
		Location:             event.Location,
		TimeFromStartSeconds: event.TimeFromStartSeconds,
	})
	s.secondsElapsed += duration

	switch typ {
	case domain.EventRest:
		s.cumulativeDriving = 0
		s.cumulativeOnDuty = 0
		s.consecutiveDriving = 0
		if duration == s.rules.CycleRest.Seconds() {
			s.totalCycleOnDuty = 0
		}
	case domain.EventBreak:
		s.consecutiveDriving = 0
	case domain.EventFuel:
		s.consecutiveDriving = 0
		s.cumulativeDistance = 0
		s.totalCycleOnDuty += duration
	}
}

// recordService appends a service event and its matching stop, per
// spec.md §4.2's fixed PICKUP_DROPOFF_SERVICE duration.
func (s *state) recordService(coord domain.Coordinate, segIdx, stepIdx int, reason string) {
	duration := s.rules.PickupDropoffService.Seconds()
	segIdxCopy, stepIdxCopy := segIdx, stepIdx
	loc := coord.Rounded()
	offset := int(s.secondsElapsed)

	event := domain.HOSEvent{
		Type:                 domain.EventService,
		DurationSeconds:      int(duration),
		Reason:               reason,
		Location:             loc,
		SegmentIndex:         &segIdxCopy,
		StepIndex:            &stepIdxCopy,
		TimeFromStartSeconds: offset,
	}
	s.hosEvents = append(s.hosEvents, event)
	s.stops = append(s.stops, domain.Stop{
		Type:                 domain.EventService,
		DurationSeconds:      int(duration),
		Reason:               reason,
		Location:             loc,
		TimeFromStartSeconds: offset,
		SegmentIndex:         &segIdxCopy,
		StepIndex:            &stepIdxCopy,
	})

	s.cumulativeOnDuty += duration
	s.totalCycleOnDuty += duration
	s.secondsElapsed += duration
	s.consecutiveDriving = 0
}
