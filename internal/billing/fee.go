// Package billing computes parking fees from elapsed wall-clock time and an
// hourly rate. All functions are pure; persistence and rate lookup live in
// the repository layer.
package billing

import (
	"math"
	"time"
)

// DefaultHourlyRate applies when no rate row is flagged active. Absence of
// an active rate is a valid, defaulted state, not an error.
const DefaultHourlyRate = 2.5

// MinBillableHours is the minimum-charge policy: every session bills at
// least 15 minutes, regardless of actual elapsed time.
const MinBillableHours = 0.25

// ComputeFee converts an entry/exit timestamp pair and an hourly rate into
// a cost rounded to two decimals plus the elapsed duration in minutes.
//
// Billable hours are floor-clamped to MinBillableHours, so very short (or
// clock-skewed negative) stays still bill the minimum. The duration is
// computed from the unclamped elapsed time and rounded up to whole minutes,
// letting a 3-minute stay display as 3 minutes while billing 15.
func ComputeFee(entry, exit time.Time, hourlyRate float64) (cost float64, durationMinutes int) {
	elapsed := exit.Sub(entry)

	hours := math.Max(elapsed.Hours(), MinBillableHours)
	cost = math.Round(hours*hourlyRate*100) / 100

	if elapsed > 0 {
		durationMinutes = int(math.Ceil(elapsed.Minutes()))
	}
	return cost, durationMinutes
}
