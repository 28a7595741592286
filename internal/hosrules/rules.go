// Package hosrules holds the fixed Hours-of-Service constants the planner
// enforces, structured the way shared/pkg/config's business rules are: a
// single struct of named limits plus a default constructor, rather than bare
// package-level constants, so a caller could in principle swap in a
// different rule set.
package hosrules

import "time"

// MetersPerMile converts the DISTANCE_LIMIT constant from miles to meters.
const MetersPerMile = 1609.344

// Rules is the fixed HOS rule table (spec.md §3).
type Rules struct {
	DriveLimit            time.Duration // max driving between 10h rests
	BreakAfterDrive        time.Duration // max consecutive driving before a 30-min break
	BreakDuration          time.Duration // required off-duty break
	TenHourRest            time.Duration // required daily off-duty reset
	PickupDropoffService   time.Duration // on-duty service duration per pickup/dropoff
	CycleDuration          time.Duration // max on-duty within rolling cycle
	CycleRest              time.Duration // off-duty reset that clears the cycle counter
	DistanceLimitMeters    float64       // fueling interval, in meters
}

// Default returns the fixed HOS rule table used throughout this service.
// There is exactly one rule table; regulation currency is explicitly out of
// scope (spec.md §1 Non-goals), so this is not made caller-configurable
// beyond the struct it returns.
func Default() Rules {
	return Rules{
		DriveLimit:           11 * time.Hour,
		BreakAfterDrive:      8 * time.Hour,
		BreakDuration:        30 * time.Minute,
		TenHourRest:          10 * time.Hour,
		PickupDropoffService: 1 * time.Hour,
		CycleDuration:        70 * time.Hour,
		CycleRest:            34 * time.Hour,
		DistanceLimitMeters:  1000 * MetersPerMile,
	}
}
