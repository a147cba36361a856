package models

// State is the whole persisted ledger document. Transactions are stored
// newest first. User is nil after logout.
type State struct {
	Categories   []Category    `json:"categories"`
	Accounts     []Account     `json:"accounts"`
	Transactions []Transaction `json:"transactions"`
	Budgets      []Budget      `json:"budgets"`
	Schedules    []Schedule    `json:"schedules"`
	Investments  []Investment  `json:"investments"`
	Goals        []Goal        `json:"goals"`
	User         *UserProfile  `json:"user"`
}

// Clone returns a deep copy of s. Pointer fields inside entities are only
// ever replaced, never written through, so copying the structs is enough.
func (s *State) Clone() *State {
	if s == nil {
		return &State{}
	}
	c := &State{
		Categories:   cloneSlice(s.Categories),
		Accounts:     cloneSlice(s.Accounts),
		Transactions: cloneSlice(s.Transactions),
		Budgets:      cloneSlice(s.Budgets),
		Schedules:    cloneSlice(s.Schedules),
		Investments:  cloneSlice(s.Investments),
		Goals:        cloneSlice(s.Goals),
	}
	if s.User != nil {
		u := *s.User
		u.Achievements = cloneSlice(s.User.Achievements)
		c.User = &u
	}
	return c
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// Category resolves a category id. System ids resolve to the built-in system
// categories; dangling ids resolve to an "Unknown" sentinel and false.
func (s *State) Category(id string) (Category, bool) {
	if c, ok := SystemCategory(id); ok {
		return c, true
	}
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	unknown := unknownCategory
	unknown.ID = id
	return unknown, false
}

// CategoryLabel returns "Parent > Child" for subcategories and the plain name
// otherwise.
func (s *State) CategoryLabel(id string) string {
	c, ok := s.Category(id)
	if !ok || c.ParentID == nil {
		return c.Name
	}
	parent, ok := s.Category(*c.ParentID)
	if !ok {
		return c.Name
	}
	return parent.Name + " > " + c.Name
}

// Account resolves an account id, returning an "Unknown account" sentinel and
// false when it does not exist.
func (s *State) Account(id string) (Account, bool) {
	if i := s.AccountIndex(id); i >= 0 {
		return s.Accounts[i], true
	}
	unknown := unknownAccount
	unknown.ID = id
	return unknown, false
}

// AccountIndex returns the position of the account with id, or -1.
func (s *State) AccountIndex(id string) int {
	for i := range s.Accounts {
		if s.Accounts[i].ID == id {
			return i
		}
	}
	return -1
}

// TransactionIndex returns the position of the transaction with id, or -1.
func (s *State) TransactionIndex(id string) int {
	for i := range s.Transactions {
		if s.Transactions[i].ID == id {
			return i
		}
	}
	return -1
}

// CategoryIndex returns the position of the category with id, or -1.
func (s *State) CategoryIndex(id string) int {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			return i
		}
	}
	return -1
}

// BudgetIndex returns the position of the budget with id, or -1.
func (s *State) BudgetIndex(id string) int {
	for i := range s.Budgets {
		if s.Budgets[i].ID == id {
			return i
		}
	}
	return -1
}

// ScheduleIndex returns the position of the schedule with id, or -1.
func (s *State) ScheduleIndex(id string) int {
	for i := range s.Schedules {
		if s.Schedules[i].ID == id {
			return i
		}
	}
	return -1
}

// InvestmentIndex returns the position of the investment with id, or -1.
func (s *State) InvestmentIndex(id string) int {
	for i := range s.Investments {
		if s.Investments[i].ID == id {
			return i
		}
	}
	return -1
}

// GoalIndex returns the position of the goal with id, or -1.
func (s *State) GoalIndex(id string) int {
	for i := range s.Goals {
		if s.Goals[i].ID == id {
			return i
		}
	}
	return -1
}

func sameOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
