// Package schedule realizes recurring schedules into transactions and moves
// their due dates forward.
//
// Each frequency has its own Advancer, looked up in a registry so new
// frequencies can be added without touching Pay.
package schedule

import (
	"fmt"
	"time"

	"verde/internal/models"
)

// Advancer computes the next due date of a schedule after it was paid.
type Advancer interface {
	// Next returns the following due date, and false when the schedule is
	// finished and should be removed.
	Next(due time.Time) (time.Time, bool)
}

// OnceAdvancer ends the schedule after one payment.
type OnceAdvancer struct{}

// Next always reports the schedule as finished.
func (OnceAdvancer) Next(due time.Time) (time.Time, bool) { return due, false }

// MonthlyAdvancer moves the due date one calendar month ahead. Day overflow
// normalizes into the following month (Jan 31 becomes Mar 2 or 3).
type MonthlyAdvancer struct{}

// Next adds one month.
func (MonthlyAdvancer) Next(due time.Time) (time.Time, bool) { return due.AddDate(0, 1, 0), true }

// WeeklyAdvancer moves the due date seven days ahead.
type WeeklyAdvancer struct{}

// Next adds seven days.
func (WeeklyAdvancer) Next(due time.Time) (time.Time, bool) { return due.AddDate(0, 0, 7), true }

var advancers = map[models.Frequency]Advancer{
	models.FrequencyOnce:    OnceAdvancer{},
	models.FrequencyMonthly: MonthlyAdvancer{},
	models.FrequencyWeekly:  WeeklyAdvancer{},
}

// GetAdvancer returns the advancer registered for a frequency.
func GetAdvancer(frequency models.Frequency) (Advancer, error) {
	a, ok := advancers[frequency]
	if !ok {
		return nil, fmt.Errorf("unknown frequency: %s", frequency)
	}
	return a, nil
}

// RegisterAdvancer installs an advancer for a frequency, replacing any
// existing one.
func RegisterAdvancer(frequency models.Frequency, a Advancer) {
	advancers[frequency] = a
}

// Advance returns the next due date string for a schedule dated date. The
// second result is false when the schedule should be removed.
func Advance(date string, frequency models.Frequency) (string, bool, error) {
	a, err := GetAdvancer(frequency)
	if err != nil {
		return "", false, err
	}
	due, err := models.ParseDate(date)
	if err != nil {
		return "", false, fmt.Errorf("invalid schedule date %q: %w", date, err)
	}
	next, keep := a.Next(due)
	if !keep {
		return "", false, nil
	}
	return models.FormatDate(next), true, nil
}
