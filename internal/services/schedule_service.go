package services

import (
	"context"

	apperrors "verde/internal/errors"
	"verde/internal/events"
	"verde/internal/models"
	"verde/internal/schedule"
)

// AddSchedule creates a schedule.
func (f *Finance) AddSchedule(ctx context.Context, sch models.Schedule) (*models.Schedule, error) {
	normalizeSchedule(&sch)
	if err := validateSchedule(sch); err != nil {
		return nil, err
	}
	sch.ID = f.newID(models.PrefixSchedule)

	err := f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		s.Schedules = append(s.Schedules, sch)
		return one(event(events.CollectionSchedules, events.ActionCreated, sch.ID,
			map[string]any{"frequency": sch.Frequency, "date": sch.Date})), nil
	})
	if err != nil {
		return nil, err
	}
	return &sch, nil
}

// normalizeSchedule applies the transaction category and destination rules
// so the realized transaction is valid as-is.
func normalizeSchedule(sch *models.Schedule) {
	tx := models.Transaction{Type: sch.Type, CategoryID: sch.CategoryID, ToAccountID: sch.ToAccountID, Description: sch.Description}
	tx.Normalize()
	sch.CategoryID = tx.CategoryID
	sch.ToAccountID = tx.ToAccountID
}

// UpdateSchedule merges patch into the schedule with id. Unknown ids are
// ignored.
func (f *Finance) UpdateSchedule(ctx context.Context, id string, patch models.SchedulePatch) error {
	return f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		i := s.ScheduleIndex(id)
		if i < 0 {
			return nil, nil
		}
		updated := s.Schedules[i]
		patch.Apply(&updated)
		normalizeSchedule(&updated)
		if err := validateSchedule(updated); err != nil {
			return nil, err
		}
		if updated.Equal(s.Schedules[i]) {
			return nil, nil
		}
		s.Schedules[i] = updated
		return one(event(events.CollectionSchedules, events.ActionUpdated, id, nil)), nil
	})
}

// DeleteSchedule removes the schedule with id. Unknown ids are ignored.
func (f *Finance) DeleteSchedule(ctx context.Context, id string) error {
	return f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		i := s.ScheduleIndex(id)
		if i < 0 {
			return nil, nil
		}
		s.Schedules = append(s.Schedules[:i:i], s.Schedules[i+1:]...)
		return one(event(events.CollectionSchedules, events.ActionDeleted, id, nil)), nil
	})
}

// GetSchedule returns the schedule with id.
func (f *Finance) GetSchedule(id string) (*models.Schedule, error) {
	var (
		sch models.Schedule
		ok  bool
	)
	f.view(func(s *models.State) {
		if i := s.ScheduleIndex(id); i >= 0 {
			sch, ok = s.Schedules[i], true
		}
	})
	if !ok {
		return nil, apperrors.ErrScheduleNotFound
	}
	return &sch, nil
}

// Agenda returns every schedule annotated with its status as of today,
// soonest first.
func (f *Finance) Agenda() []schedule.Due {
	var out []schedule.Due
	now := f.now()
	f.view(func(s *models.State) { out = schedule.Agenda(s.Schedules, now) })
	return out
}

// PaySchedule realizes the schedule as a transaction dated today and moves
// the schedule forward (or removes it for one-off schedules). It returns nil
// for unknown ids.
func (f *Finance) PaySchedule(ctx context.Context, id string) (*models.Transaction, error) {
	var paid *models.Transaction
	err := f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		tx, ok, err := schedule.Pay(s, id, f.newID(models.PrefixTransaction), f.today(), f.paymentPrefix)
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
		if !ok {
			return nil, nil
		}
		paid = &tx

		evts := []events.Event{
			transactionEvent(events.ActionCreated, tx),
			event(events.CollectionSchedules, events.ActionPaid, id, map[string]any{"transaction_id": tx.ID}),
		}
		return evts, nil
	})
	if err != nil {
		return nil, err
	}
	return paid, nil
}
