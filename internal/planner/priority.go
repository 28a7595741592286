package planner

import "github.com/draymaster/itinerary-service/internal/hosrules"

// trigger identifies which HOS limit fired for a step, in strict priority
// order: cycle reset outranks a 10-hour rest, which outranks a 30-min break.
type trigger int

const (
	triggerNone trigger = iota
	triggerBreak
	triggerRest
	triggerCycle
)

// choosePriorityTrigger picks the single trigger to act on when more than
// one predicate is true for a step, per spec.md §4.3 step 3/4 — cycle > rest
// > break, strictly. Both the remaining-time computation and the stop
// insertion below route through this one function so the two orderings the
// source keeps separately can never drift apart.
func choosePriorityTrigger(needsRest, needsBreak, overCycle bool) trigger {
	switch {
	case overCycle:
		return triggerCycle
	case needsRest:
		return triggerRest
	case needsBreak:
		return triggerBreak
	default:
		return triggerNone
	}
}

// remainingTime returns the exact seconds until the chosen trigger's limit,
// computed from the relevant running counter alone; the step's duration does
// not enter into it.
func remainingTime(t trigger, rules hosrules.Rules, cumulativeDriving, consecutiveDriving, totalCycleOnDuty float64) float64 {
	switch t {
	case triggerCycle:
		return rules.CycleDuration.Seconds() - totalCycleOnDuty
	case triggerRest:
		return rules.DriveLimit.Seconds() - cumulativeDriving
	case triggerBreak:
		return rules.BreakAfterDrive.Seconds() - consecutiveDriving
	default:
		return 0
	}
}
