// Package protocolday computes the compliance window of a recovery protocol.
//
// A protocol day runs from 05:00 local time until 05:00 of the next calendar day.
// Both task satisfaction and streak day markers are derived from Threshold, so
// the two can never disagree about which day an instant belongs to.
package protocolday

import "time"

// BoundaryHour is the local hour at which a new protocol day starts.
const BoundaryHour = 5

// Threshold returns the start of the protocol day containing now, in now's location.
func Threshold(now time.Time) time.Time {
	y, m, d := now.Date()
	today := time.Date(y, m, d, BoundaryHour, 0, 0, 0, now.Location())
	if !now.Before(today) {
		return today
	}
	return time.Date(y, m, d-1, BoundaryHour, 0, 0, 0, now.Location())
}

// Next returns the start of the protocol day following the one containing now.
func Next(now time.Time) time.Time {
	t := Threshold(now)
	y, m, d := t.Date()
	return time.Date(y, m, d+1, BoundaryHour, 0, 0, 0, t.Location())
}

// Satisfied reports whether a completion at lastCompleted counts for the protocol day containing now.
// A zero lastCompleted means the task was never completed.
func Satisfied(lastCompleted, now time.Time) bool {
	if lastCompleted.IsZero() {
		return false
	}
	return lastCompleted.After(Threshold(now))
}
