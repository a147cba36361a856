package services

import (
	"context"

	apperrors "verde/internal/errors"
	"verde/internal/events"
	"verde/internal/models"
)

// GoalView is a goal with its completion progress.
type GoalView struct {
	models.Goal
	Progress  float64 `json:"progress"`
	Completed bool    `json:"completed"`
}

// AddGoal creates a goal.
func (f *Finance) AddGoal(ctx context.Context, g models.Goal) (*models.Goal, error) {
	if err := validateGoal(g); err != nil {
		return nil, err
	}
	g.ID = f.newID(models.PrefixGoal)

	err := f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		s.Goals = append(s.Goals, g)
		return one(event(events.CollectionGoals, events.ActionCreated, g.ID,
			map[string]any{"name": g.Name, "target_amount": g.TargetAmount.String()})), nil
	})
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// UpdateGoal merges patch into the goal with id. Unknown ids are ignored.
func (f *Finance) UpdateGoal(ctx context.Context, id string, patch models.GoalPatch) error {
	return f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		i := s.GoalIndex(id)
		if i < 0 {
			return nil, nil
		}
		updated := s.Goals[i]
		patch.Apply(&updated)
		if err := validateGoal(updated); err != nil {
			return nil, err
		}
		if updated.Equal(s.Goals[i]) {
			return nil, nil
		}
		s.Goals[i] = updated
		return one(event(events.CollectionGoals, events.ActionUpdated, id,
			map[string]any{"completed": updated.IsCompleted()})), nil
	})
}

// DeleteGoal removes the goal with id. Unknown ids are ignored.
func (f *Finance) DeleteGoal(ctx context.Context, id string) error {
	return f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		i := s.GoalIndex(id)
		if i < 0 {
			return nil, nil
		}
		s.Goals = append(s.Goals[:i:i], s.Goals[i+1:]...)
		return one(event(events.CollectionGoals, events.ActionDeleted, id, nil)), nil
	})
}

// GetGoal returns the goal with id.
func (f *Finance) GetGoal(id string) (*models.Goal, error) {
	var (
		g  models.Goal
		ok bool
	)
	f.view(func(s *models.State) {
		if i := s.GoalIndex(id); i >= 0 {
			g, ok = s.Goals[i], true
		}
	})
	if !ok {
		return nil, apperrors.ErrGoalNotFound
	}
	return &g, nil
}

// ListGoals returns every goal with its progress.
func (f *Finance) ListGoals() []GoalView {
	out := []GoalView{}
	f.view(func(s *models.State) {
		for _, g := range s.Goals {
			out = append(out, GoalView{Goal: g, Progress: g.Progress(), Completed: g.IsCompleted()})
		}
	})
	return out
}
