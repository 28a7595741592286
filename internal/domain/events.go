package domain

import "time"

// EventType enumerates the kinds of HOS event the planner emits.
type EventType string

const (
	EventDrive   EventType = "drive"
	EventBreak   EventType = "break"
	EventRest    EventType = "rest"
	EventFuel    EventType = "fuel"
	EventService EventType = "service"
)

// HOSEvent is a single entry in the hos_events stream. Drive events carry
// DistanceMeters/SegmentIndex/StepIndex/Instruction; break/rest/fuel/service
// events carry Reason/Location. Service events also carry segment/step
// indices.
type HOSEvent struct {
	Type                 EventType `json:"type"`
	DurationSeconds      int       `json:"duration_seconds"`
	TimeFromStartSeconds int       `json:"time_from_start_seconds"`

	DistanceMeters float64 `json:"distance_meters,omitempty"`
	SegmentIndex   *int    `json:"segment_index,omitempty"`
	StepIndex      *int    `json:"step_index,omitempty"`
	Instruction    string  `json:"instruction,omitempty"`

	Reason   string     `json:"reason,omitempty"`
	Location Coordinate `json:"location,omitempty"`
}

// Stop is the subset of non-drive HOS events surfaced separately for
// mapping UIs; its fields always mirror a matching hos_events entry.
type Stop struct {
	Type                 EventType  `json:"type"`
	DurationSeconds      int        `json:"duration_seconds"`
	Reason               string     `json:"reason"`
	Location             Coordinate `json:"location"`
	TimeFromStartSeconds int        `json:"time_from_start_seconds"`
	SegmentIndex         *int       `json:"segment_index,omitempty"`
	StepIndex            *int       `json:"step_index,omitempty"`
}

// ELDEventType enumerates the three duty categories an ELD log tracks.
type ELDEventType string

const (
	ELDDrive    ELDEventType = "drive"
	ELDOffDuty  ELDEventType = "off_duty"
	ELDOnDuty   ELDEventType = "on_duty"
)

// ELDEvent is one coalesced span within a day's log.
type ELDEvent struct {
	EventType            ELDEventType `json:"event_type"`
	TimeFromStartSeconds int          `json:"time_from_start_seconds"`
	DurationSeconds      int          `json:"duration_seconds"`
	Remark               string       `json:"remark,omitempty"`
}

// ELDLog is one calendar day's record.
type ELDLog struct {
	StartTime     time.Time  `json:"start_time"`
	LogEvents     []ELDEvent `json:"log_events"`
	TotalDriving  int        `json:"total_driving"`
	TotalOffDuty  int        `json:"total_off_duty"`
	TotalOnDuty   int        `json:"total_on_duty"`
}

// HOSSummary reports the trip's aggregate travel/stop time and remaining
// cycle budget.
type HOSSummary struct {
	OriginalTravelSeconds int     `json:"original_travel_seconds"`
	AddedStopSeconds      int     `json:"added_stop_seconds"`
	TotalItinerarySeconds int     `json:"total_itinerary_seconds"`
	TotalDistance         float64 `json:"total_distance"`
	CyclesUsedEnd         int     `json:"cycles_used_end"`
	CyclesRemaining       int     `json:"cycles_remaining"`
	Notes                 string  `json:"notes"`
}

// Itinerary is the core's complete output: the route echo plus the
// inserted stops, the full event stream, per-day ELD logs, and a summary.
type Itinerary struct {
	BBox                  []float64  `json:"bbox"`
	Stops                 []Stop     `json:"stops"`
	HOSEvents             []HOSEvent `json:"hos_events"`
	ELD                   []ELDLog   `json:"eld"`
	ItineraryTotalSeconds int        `json:"itinerary_total_seconds"`
	HOSSummary            HOSSummary `json:"hos_summary"`
}
