package services

import (
	"context"
	"strings"

	apperrors "verde/internal/errors"
	"verde/internal/events"
	"verde/internal/models"
	"verde/internal/score"
)

// GetProfile returns the logged-in profile.
func (f *Finance) GetProfile() (*models.UserProfile, error) {
	var profile *models.UserProfile
	f.view(func(s *models.State) {
		if s.User != nil {
			p := *s.User
			p.Achievements = append([]models.Achievement{}, s.User.Achievements...)
			profile = &p
		}
	})
	if profile == nil {
		return nil, apperrors.ErrNoActiveUser
	}
	return profile, nil
}

// Login sets the local display identity. An existing profile keeps its plan,
// score and achievements; otherwise a basic profile is created. The score is
// brought up to date as part of the same transition.
func (f *Finance) Login(ctx context.Context, name, email string) (*models.UserProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name is required")
	}

	var profile models.UserProfile
	err := f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		if s.User == nil {
			s.User = &models.UserProfile{Plan: models.PlanBasic, Achievements: []models.Achievement{}}
		}
		s.User.Name = name
		s.User.Email = strings.TrimSpace(email)
		score.Refresh(s, f.now())
		profile = *s.User
		return one(event(events.CollectionUser, events.ActionLogin, "", map[string]any{"name": name})), nil
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateUserProfile merges patch into the profile. Derived fields are kept.
// It is a no-op when nobody is logged in.
func (f *Finance) UpdateUserProfile(ctx context.Context, patch models.ProfilePatch) error {
	if patch.Plan != nil && !patch.Plan.Valid() {
		return invalid("plan must be basic or premium")
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return invalid("name must not be empty")
	}
	return f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		if s.User == nil {
			return nil, nil
		}
		before := *s.User
		patch.Apply(s.User)
		if before.SameDetails(*s.User) {
			return nil, nil
		}
		return one(event(events.CollectionUser, events.ActionUpdated, "", nil)), nil
	})
}

// Logout clears the profile. Ledger data is kept.
func (f *Finance) Logout(ctx context.Context) error {
	return f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		if s.User == nil {
			return nil, nil
		}
		s.User = nil
		return one(event(events.CollectionUser, events.ActionLogout, "", nil)), nil
	})
}

// GetScore explains the current score.
func (f *Finance) GetScore() score.Breakdown {
	var b score.Breakdown
	now := f.now()
	f.view(func(s *models.State) { b = score.Compute(s, now) })
	return b
}

// RecomputeScore re-evaluates the score and achievements without any other
// change, e.g. after a month boundary shifts the savings window.
func (f *Finance) RecomputeScore(ctx context.Context) error {
	return f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		if !score.Refresh(s, f.now()) {
			return nil, nil
		}
		return one(event(events.CollectionUser, events.ActionRefreshed, "",
			map[string]any{"score": s.User.Score, "achievements": len(s.User.Achievements)})), nil
	})
}
