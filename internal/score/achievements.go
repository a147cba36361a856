package score

import (
	"time"

	"verde/internal/models"
)

// Rule is one unlockable achievement.
type Rule struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Unlocked    func(s *models.State, score int) bool
}

// Rules is the achievement catalog, evaluated in order.
var Rules = []Rule{
	{
		ID:          "first-transaction",
		Title:       "First step",
		Description: "Recorded your first transaction.",
		Icon:        "🌱",
		Unlocked: func(s *models.State, _ int) bool {
			return len(s.Transactions) >= 1
		},
	},
	{
		ID:          "five-investments",
		Title:       "Diversified",
		Description: "Tracking five or more investments.",
		Icon:        "📊",
		Unlocked: func(s *models.State, _ int) bool {
			return len(s.Investments) >= 5
		},
	},
	{
		// Approximates "three months under budget" with volume plus a high score.
		ID:          "budget-master",
		Title:       "Budget master",
		Description: "Kept a score above 800 across more than twenty transactions.",
		Icon:        "🏆",
		Unlocked: func(s *models.State, score int) bool {
			return score > 800 && len(s.Transactions) > 20
		},
	},
}

// Evaluate returns existing plus any newly unlocked achievements stamped with
// now. Existing achievements are never removed or re-stamped.
func Evaluate(existing []models.Achievement, s *models.State, score int, now time.Time) []models.Achievement {
	unlocked := make(map[string]bool, len(existing))
	out := make([]models.Achievement, len(existing), len(existing)+len(Rules))
	copy(out, existing)
	for _, a := range existing {
		unlocked[a.ID] = true
	}

	for _, r := range Rules {
		if unlocked[r.ID] || !r.Unlocked(s, score) {
			continue
		}
		out = append(out, models.Achievement{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Icon:        r.Icon,
			UnlockedAt:  now,
		})
	}
	return out
}

// Refresh recomputes the profile's score and achievements. It reports false,
// leaving the profile untouched, when neither the score nor the achievement
// count changed, or when there is no profile.
func Refresh(s *models.State, now time.Time) bool {
	if s.User == nil {
		return false
	}
	total := ComputeScore(s, now)
	achievements := Evaluate(s.User.Achievements, s, total, now)
	if total == s.User.Score && len(achievements) == len(s.User.Achievements) {
		return false
	}
	s.User.Score = total
	s.User.Achievements = achievements
	return true
}
