package planner

import (
	"testing"

	"github.com/draymaster/itinerary-service/internal/hosrules"
)

func TestChoosePriorityTriggerOrdering(t *testing.T) {
	cases := []struct {
		name                             string
		needsRest, needsBreak, overCycle bool
		want                             trigger
	}{
		{"none", false, false, false, triggerNone},
		{"break only", false, true, false, triggerBreak},
		{"rest only", true, false, false, triggerRest},
		{"cycle only", false, false, true, triggerCycle},
		{"rest beats break", true, true, false, triggerRest},
		{"cycle beats rest and break", true, true, true, triggerCycle},
		{"cycle beats break", false, true, true, triggerCycle},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := choosePriorityTrigger(c.needsRest, c.needsBreak, c.overCycle)
			if got != c.want {
				t.Errorf("choosePriorityTrigger(%v, %v, %v) = %v, want %v", c.needsRest, c.needsBreak, c.overCycle, got, c.want)
			}
		})
	}
}

func TestRemainingTimeUsesMatchingCounter(t *testing.T) {
	rules := hosrules.Default()

	got := remainingTime(triggerRest, rules, 36000, 0, 0)
	want := rules.DriveLimit.Seconds() - 36000
	if got != want {
		t.Errorf("remainingTime(triggerRest) = %v, want %v", got, want)
	}

	got = remainingTime(triggerBreak, rules, 0, 25200, 0)
	want = rules.BreakAfterDrive.Seconds() - 25200
	if got != want {
		t.Errorf("remainingTime(triggerBreak) = %v, want %v", got, want)
	}

	got = remainingTime(triggerCycle, rules, 0, 0, 250000)
	want = rules.CycleDuration.Seconds() - 250000
	if got != want {
		t.Errorf("remainingTime(triggerCycle) = %v, want %v", got, want)
	}

	if got := remainingTime(triggerNone, rules, 0, 0, 0); got != 0 {
		t.Errorf("remainingTime(triggerNone) = %v, want 0", got)
	}
}
