package models

import "time"

// Plan is the user's subscription tier. It is display-only.
type Plan string

const (
	PlanBasic   Plan = "basic"
	PlanPremium Plan = "premium"
)

// Valid reports whether p is a known plan.
func (p Plan) Valid() bool {
	return p == PlanBasic || p == PlanPremium
}

// Achievement is a milestone badge. UnlockedAt never changes once set.
type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	UnlockedAt  time.Time `json:"unlocked_at"`
}

// UserProfile is the single local user. Score and Achievements are derived.
type UserProfile struct {
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Avatar       string        `json:"avatar,omitempty"`
	Plan         Plan          `json:"plan"`
	Score        int           `json:"score"`
	Achievements []Achievement `json:"achievements"`
}

// HasAchievement reports whether an achievement with id is unlocked.
func (u UserProfile) HasAchievement(id string) bool {
	for _, a := range u.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}

// ProfilePatch carries a partial profile update. Score and achievements are
// not patchable.
type ProfilePatch struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
	Plan   *Plan   `json:"plan,omitempty"`
}

// Apply merges the patch into u.
func (p ProfilePatch) Apply(u *UserProfile) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Plan != nil {
		u.Plan = *p.Plan
	}
}

// SameDetails reports whether u and o share the patchable fields.
func (u UserProfile) SameDetails(o UserProfile) bool {
	return u.Name == o.Name && u.Email == o.Email && u.Avatar == o.Avatar && u.Plan == o.Plan
}
