// Package seed builds the initial ledger state used when nothing has been
// persisted yet.
package seed

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"verde/internal/models"
)

//go:embed defaults.toml
var defaultsTOML string

// File is the TOML layout of a seed file.
type File struct {
	Profile    Profile    `toml:"profile"`
	Accounts   []Account  `toml:"accounts"`
	Categories []Category `toml:"categories"`
}

// Profile seeds the guest user.
type Profile struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
	Plan  string `toml:"plan"`
	Score int    `toml:"score"`
}

// Account seeds one account. Balance is a decimal string.
type Account struct {
	ID      string `toml:"id"`
	Name    string `toml:"name"`
	Type    string `toml:"type"`
	Balance string `toml:"balance"`
}

// Category seeds one category; Parent is the parent id for subcategories.
type Category struct {
	ID     string `toml:"id"`
	Name   string `toml:"name"`
	Type   string `toml:"type"`
	Icon   string `toml:"icon"`
	Color  string `toml:"color"`
	Parent string `toml:"parent"`
}

// Default returns the built-in seed.
func Default() (*File, error) {
	var f File
	if _, err := toml.Decode(defaultsTOML, &f); err != nil {
		return nil, fmt.Errorf("decode built-in seed: %w", err)
	}
	return &f, nil
}

// Load reads a seed file from path, falling back to the built-in seed when
// path is empty.
func Load(path string) (*File, error) {
	if path == "" {
		return Default()
	}
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("decode seed %s: %w", path, err)
	}
	return &f, nil
}

// State converts the seed into a fresh ledger state with a logged-in guest
// profile and empty transactional collections.
func (f *File) State() (*models.State, error) {
	s := &models.State{
		Categories:   make([]models.Category, 0, len(f.Categories)),
		Accounts:     make([]models.Account, 0, len(f.Accounts)),
		Transactions: []models.Transaction{},
		Budgets:      []models.Budget{},
		Schedules:    []models.Schedule{},
		Investments:  []models.Investment{},
		Goals:        []models.Goal{},
	}

	for _, c := range f.Categories {
		typ := models.CategoryType(c.Type)
		if !typ.Valid() {
			return nil, fmt.Errorf("category %s: unknown type %q", c.ID, c.Type)
		}
		cat := models.Category{ID: c.ID, Name: c.Name, Type: typ, Icon: c.Icon, Color: c.Color}
		if c.Parent != "" {
			parent := c.Parent
			cat.ParentID = &parent
		}
		s.Categories = append(s.Categories, cat)
	}

	for _, a := range f.Accounts {
		typ := models.AccountType(a.Type)
		if !typ.Valid() {
			return nil, fmt.Errorf("account %s: unknown type %q", a.ID, a.Type)
		}
		balance := decimal.Zero
		if a.Balance != "" {
			b, err := decimal.NewFromString(a.Balance)
			if err != nil {
				return nil, fmt.Errorf("account %s: bad balance %q: %w", a.ID, a.Balance, err)
			}
			balance = b
		}
		s.Accounts = append(s.Accounts, models.Account{ID: a.ID, Name: a.Name, Type: typ, Balance: balance})
	}

	plan := models.Plan(f.Profile.Plan)
	if !plan.Valid() {
		plan = models.PlanBasic
	}
	name := f.Profile.Name
	if name == "" {
		name = "Guest"
	}
	s.User = &models.UserProfile{
		Name:         name,
		Email:        f.Profile.Email,
		Plan:         plan,
		Score:        f.Profile.Score,
		Achievements: []models.Achievement{},
	}
	return s, nil
}

// Encode renders f as TOML, e.g. to write a starting point for SEED_FILE.
func (f *File) Encode() (string, error) {
	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(f); err != nil {
		return "", err
	}
	return buf.String(), nil
}
