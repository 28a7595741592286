// Package eld replays a planner's hos_events stream against a trip start
// timestamp and rolls it into one log per calendar day, splitting any event
// that straddles midnight.
package eld

import (
	"time"

	"github.com/draymaster/itinerary-service/internal/domain"
)

const snapThreshold = 30 * time.Minute

// SnapToNextDay advances t to the next midnight (in t's own location) when
// t falls within snapThreshold of it; otherwise t is returned unchanged.
// Only the initial trip timestamp is snapped — mid-trip day boundaries are
// exact midnights with no snap.
func SnapToNextDay(t time.Time) time.Time {
	nextMidnight := startOfNextDay(t)
	if nextMidnight.Sub(t) < snapThreshold {
		return nextMidnight
	}
	return t
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func startOfNextDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1)
}

func eldTypeFor(t domain.EventType) domain.ELDEventType {
	switch t {
	case domain.EventBreak, domain.EventRest:
		return domain.ELDOffDuty
	case domain.EventService, domain.EventFuel:
		return domain.ELDOnDuty
	default:
		return domain.ELDDrive
	}
}

// Split turns the events stream into one ELDLog per calendar day touched.
// An empty stream yields an empty log list.
func Split(events []domain.HOSEvent, initialTime time.Time) []domain.ELDLog {
	if len(events) == 0 {
		return nil
	}

	logs := []domain.ELDLog{newLog(initialTime)}
	curTotal := 0

	for _, event := range events {
		n := len(logs) - 1
		eventType := eldTypeFor(event.Type)

		dayStart := logs[n].StartTime
		if crossesDay(dayStart, curTotal+event.DurationSeconds) {
			splittable := secondsUntilMidnight(dayStart, curTotal)
			splits := event.DurationSeconds > splittable

			newStart := startOfNextDay(dayStart)
			newLogEntry := newLog(newStart)

			if splits {
				overflow := event.DurationSeconds - splittable
				appendEvent(&logs[n], eventType, curTotal, splittable, event.Reason)
				appendEvent(&newLogEntry, eventType, 0, overflow, event.Reason)
				logs = append(logs, newLogEntry)
				curTotal = overflow
				continue
			}

			logs = append(logs, newLogEntry)
			n = len(logs) - 1
			curTotal = 0
		}

		appendEvent(&logs[n], eventType, curTotal, event.DurationSeconds, event.Reason)
		curTotal += event.DurationSeconds
	}

	return logs
}

func newLog(start time.Time) domain.ELDLog {
	return domain.ELDLog{StartTime: start}
}

func crossesDay(dayStart time.Time, secondsFromStart int) bool {
	end := dayStart.Add(time.Duration(secondsFromStart) * time.Second)
	return dayStart.Day() != end.Day() || dayStart.Month() != end.Month() || dayStart.Year() != end.Year()
}

func secondsUntilMidnight(dayStart time.Time, curTotal int) int {
	current := dayStart.Add(time.Duration(curTotal) * time.Second)
	next := startOfNextDay(current)
	return int(next.Sub(current).Seconds())
}

// appendEvent applies the coalescing rule: consecutive events of the same
// ELD type (service/fuel both on_duty, break/rest both off_duty) extend the
// previous span instead of starting a new one.
func appendEvent(log *domain.ELDLog, eventType domain.ELDEventType, offset, duration int, reason string) {
	if n := len(log.LogEvents); n > 0 && log.LogEvents[n-1].EventType == eventType {
		log.LogEvents[n-1].DurationSeconds += duration
	} else {
		ev := domain.ELDEvent{
			EventType:            eventType,
			TimeFromStartSeconds: offset,
			DurationSeconds:      duration,
		}
		if eventType == domain.ELDOffDuty || eventType == domain.ELDOnDuty {
			ev.Remark = reason
		}
		log.LogEvents = append(log.LogEvents, ev)
	}
	addTotal(log, eventType, duration)
}

func addTotal(log *domain.ELDLog, eventType domain.ELDEventType, duration int) {
	switch eventType {
	case domain.ELDDrive:
		log.TotalDriving += duration
	case domain.ELDOffDuty:
		log.TotalOffDuty += duration
	case domain.ELDOnDuty:
		log.TotalOnDuty += duration
	}
}
