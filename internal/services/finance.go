package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	apperrors "verde/internal/errors"
	"verde/internal/events"
	"verde/internal/logger"
	"verde/internal/models"
	"verde/internal/schedule"
	"verde/internal/score"
	"verde/internal/seed"
)

// Finance owns the ledger state. Every mutation runs as one atomic
// transition: a working copy is changed, the derived profile state is
// recomputed when needed, the result is persisted, and only then does it
// replace the current state and get announced on the bus.
type Finance struct {
	mu    sync.RWMutex
	state *models.State

	store         StatePersister
	bus           *events.Bus
	now           func() time.Time
	newID         func(prefix string) string
	paymentPrefix string
	seed          *seed.File
	log           *zap.SugaredLogger
}

// Option configures a Finance.
type Option func(*Finance)

// WithClock overrides the time source used for "today" and unlock stamps.
func WithClock(now func() time.Time) Option {
	return func(f *Finance) { f.now = now }
}

// WithIDGenerator overrides entity id generation.
func WithIDGenerator(newID func(prefix string) string) Option {
	return func(f *Finance) { f.newID = newID }
}

// WithBus publishes committed mutations on bus.
func WithBus(bus *events.Bus) Option {
	return func(f *Finance) { f.bus = bus }
}

// WithPaymentPrefix sets the description prefix of paid schedules.
func WithPaymentPrefix(prefix string) Option {
	return func(f *Finance) { f.paymentPrefix = prefix }
}

// WithSeed sets the state used when the store is empty.
func WithSeed(file *seed.File) Option {
	return func(f *Finance) { f.seed = file }
}

// NewFinance loads the persisted state, seeding and saving defaults when the
// store is empty.
func NewFinance(ctx context.Context, store StatePersister, opts ...Option) (*Finance, error) {
	f := &Finance{
		store:         store,
		bus:           events.NewBus(),
		now:           time.Now,
		newID:         models.NewID,
		paymentPrefix: schedule.DefaultPaymentPrefix,
		log:           logger.Named("finance"),
	}
	for _, opt := range opts {
		opt(f)
	}

	state, err := store.Load(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if state == nil {
		if state, err = f.seedState(); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := store.Save(ctx, state); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		f.log.Infow("seeded empty ledger", "categories", len(state.Categories), "accounts", len(state.Accounts))
	}

	f.state = ensureCollections(state)
	return f, nil
}

func (f *Finance) seedState() (*models.State, error) {
	file := f.seed
	if file == nil {
		var err error
		if file, err = seed.Default(); err != nil {
			return nil, err
		}
	}
	return file.State()
}

// ensureCollections replaces nil slices so JSON consumers always see arrays.
func ensureCollections(s *models.State) *models.State {
	if s.Categories == nil {
		s.Categories = []models.Category{}
	}
	if s.Accounts == nil {
		s.Accounts = []models.Account{}
	}
	if s.Transactions == nil {
		s.Transactions = []models.Transaction{}
	}
	if s.Budgets == nil {
		s.Budgets = []models.Budget{}
	}
	if s.Schedules == nil {
		s.Schedules = []models.Schedule{}
	}
	if s.Investments == nil {
		s.Investments = []models.Investment{}
	}
	if s.Goals == nil {
		s.Goals = []models.Goal{}
	}
	if s.User != nil && s.User.Achievements == nil {
		s.User.Achievements = []models.Achievement{}
	}
	return s
}

// Bus returns the bus committed mutations are published on.
func (f *Finance) Bus() *events.Bus {
	return f.bus
}

// State returns a deep copy of the current state.
func (f *Finance) State() *models.State {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state.Clone()
}

// view runs fn against the current state under the read lock. fn must not
// retain references into the state.
func (f *Finance) view(fn func(s *models.State)) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	fn(f.state)
}

func (f *Finance) today() string {
	return models.FormatDate(f.now())
}

// mutation changes a working copy of the state and describes what it did.
// Returning no events means nothing changed and the commit is skipped.
type mutation func(s *models.State) ([]events.Event, error)

// scoreInputs are the collections whose changes affect the score.
var scoreInputs = map[events.Collection]bool{
	events.CollectionTransactions: true,
	events.CollectionBudgets:      true,
	events.CollectionInvestments:  true,
	events.CollectionGoals:        true,
}

func (f *Finance) commit(ctx context.Context, m mutation) error {
	f.mu.Lock()

	working := f.state.Clone()
	evts, err := m(working)
	if err != nil {
		f.mu.Unlock()
		return err
	}
	if len(evts) == 0 {
		f.mu.Unlock()
		return nil
	}

	now := f.now()
	if touchesScore(evts) && score.Refresh(working, now) {
		evts = append(evts, events.Event{
			Collection: events.CollectionUser,
			Action:     events.ActionRefreshed,
			Payload:    map[string]any{"score": working.User.Score, "achievements": len(working.User.Achievements)},
		})
	}

	if err := f.store.Save(ctx, working); err != nil {
		f.mu.Unlock()
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	f.state = working
	f.mu.Unlock()

	for i := range evts {
		evts[i].OccurredAt = now
	}
	f.bus.Publish(ctx, evts...)
	return nil
}

func touchesScore(evts []events.Event) bool {
	for _, e := range evts {
		if scoreInputs[e.Collection] {
			return true
		}
	}
	return false
}

func event(collection events.Collection, action events.Action, id string, payload map[string]any) events.Event {
	return events.Event{Collection: collection, Action: action, EntityID: id, Payload: payload}
}

func one(e events.Event) []events.Event {
	return []events.Event{e}
}
