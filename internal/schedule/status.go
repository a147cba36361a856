package schedule

import (
	"math"
	"sort"
	"time"

	"verde/internal/models"
)

// Status classifies how close a schedule is to its due date.
type Status string

const (
	StatusOverdue Status = "overdue"
	StatusNear    Status = "near"
	StatusOnTime  Status = "on-time"
)

// nearWindowDays is the inclusive number of days ahead that counts as near.
const nearWindowDays = 3

// DaysUntil returns the whole days from today to date, rounded up.
func DaysUntil(date, today string) (int, error) {
	due, err := models.ParseDate(date)
	if err != nil {
		return 0, err
	}
	now, err := models.ParseDate(today)
	if err != nil {
		return 0, err
	}
	return int(math.Ceil(due.Sub(now).Hours() / 24)), nil
}

// StatusOf classifies a day difference.
func StatusOf(days int) Status {
	switch {
	case days < 0:
		return StatusOverdue
	case days <= nearWindowDays:
		return StatusNear
	default:
		return StatusOnTime
	}
}

// Due is a schedule annotated with its status relative to today.
type Due struct {
	models.Schedule
	DaysUntil int    `json:"days_until"`
	Status    Status `json:"status"`
}

// Agenda annotates schedules with their status, ordered by due date. Schedules
// with unparsable dates are skipped.
func Agenda(schedules []models.Schedule, today time.Time) []Due {
	day := models.FormatDate(today)
	out := make([]Due, 0, len(schedules))
	for _, s := range schedules {
		days, err := DaysUntil(s.Date, day)
		if err != nil {
			continue
		}
		out = append(out, Due{Schedule: s, DaysUntil: days, Status: StatusOf(days)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// OverdueCount returns how many schedules are past due.
func OverdueCount(schedules []models.Schedule, today time.Time) int {
	n := 0
	for _, d := range Agenda(schedules, today) {
		if d.Status == StatusOverdue {
			n++
		}
	}
	return n
}
