package eld

import (
	"testing"
	"time"

	"github.com/draymaster/itinerary-service/internal/domain"
)

func TestSnapToNextDayWithinThreshold(t *testing.T) {
	t30 := time.Date(2026, 1, 1, 23, 45, 0, 0, time.UTC)
	got := SnapToNextDay(t30)
	want := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSnapToNextDayOutsideThreshold(t *testing.T) {
	tNoSnap := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	got := SnapToNextDay(tNoSnap)
	if !got.Equal(tNoSnap) {
		t.Fatalf("expected no snap, got %v", got)
	}
}

func TestSplitEmptyEvents(t *testing.T) {
	logs := Split(nil, time.Now())
	if logs != nil {
		t.Fatalf("expected nil logs for empty stream, got %v", logs)
	}
}

func TestSplitMidnightStraddlingDrive(t *testing.T) {
	start := time.Date(2026, 1, 1, 23, 30, 0, 0, time.UTC)
	initial := SnapToNextDay(start)
	if !initial.Equal(start) {
		t.Fatalf("fixture expects no initial snap, got %v", initial)
	}

	events := []domain.HOSEvent{
		{Type: domain.EventDrive, DurationSeconds: 14400},
	}

	logs := Split(events, initial)
	if len(logs) != 2 {
		t.Fatalf("expected 2 ELD logs, got %d", len(logs))
	}

	if len(logs[0].LogEvents) != 1 || logs[0].LogEvents[0].DurationSeconds != 1800 {
		t.Fatalf("expected first log to hold a 1800s drive, got %+v", logs[0].LogEvents)
	}
	if len(logs[1].LogEvents) != 1 || logs[1].LogEvents[0].DurationSeconds != 12600 {
		t.Fatalf("expected second log to hold a 12600s drive, got %+v", logs[1].LogEvents)
	}
	if !logs[1].StartTime.Equal(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected second log to start at midnight, got %v", logs[1].StartTime)
	}
}

func TestSplitCoalescesSameELDType(t *testing.T) {
	initial := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	events := []domain.HOSEvent{
		{Type: domain.EventBreak, DurationSeconds: 1800},
		{Type: domain.EventRest, DurationSeconds: 36000},
	}

	logs := Split(events, initial)
	if len(logs) != 1 {
		t.Fatalf("expected a single day, got %d", len(logs))
	}
	if len(logs[0].LogEvents) != 1 {
		t.Fatalf("expected break+rest to coalesce into one off_duty span, got %+v", logs[0].LogEvents)
	}
	if logs[0].LogEvents[0].DurationSeconds != 37800 {
		t.Fatalf("expected coalesced duration 37800, got %d", logs[0].LogEvents[0].DurationSeconds)
	}
	if logs[0].TotalOffDuty != 37800 {
		t.Fatalf("expected total_off_duty 37800, got %d", logs[0].TotalOffDuty)
	}
}
