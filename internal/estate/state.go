// Package estate owns the mutable family and asset state and serialises every
// change to it.
package estate

import (
	"bytes"
	"context"
	"sync"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"inheritance-engine/internal/heirs"
	"inheritance-engine/internal/ledger"
	"inheritance-engine/internal/model"
	"inheritance-engine/internal/snapshot"
)

// State is the single owner of a family, its ledger and the manual deduction.
// All methods are safe for concurrent use.
type State struct {
	mu     sync.Mutex
	family model.Family
	ledger *ledger.Ledger
	other  int64
	heirs  []model.HeirRecord

	store  snapshot.Store
	logger *zap.Logger
}

type Option func(*config)

type config struct {
	store      snapshot.Store
	logger     *zap.Logger
	ledgerOpts []ledger.Option
}

func WithStore(s snapshot.Store) Option {
	return func(c *config) { c.store = s }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l }
}

func WithLedgerOptions(opts ...ledger.Option) Option {
	return func(c *config) { c.ledgerOpts = append(c.ledgerOpts, opts...) }
}

func New(s model.Situation, opts ...Option) *State {
	cfg := config{store: snapshot.Nop{}, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	family := s.Family.Clone()
	family.Normalize()
	return &State{
		family: family,
		ledger: ledger.New(s.Assets, cfg.ledgerOpts...),
		other:  max(s.OtherDeduction, 0),
		heirs:  heirs.Resolve(family),
		store:  cfg.store,
		logger: cfg.logger,
	}
}

// Situation returns a copy of the current inputs.
func (s *State) Situation() model.Situation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.situation()
}

func (s *State) situation() model.Situation {
	return model.Situation{
		Family:         s.family.Clone(),
		Assets:         s.ledger.Assets(),
		OtherDeduction: s.other,
	}
}

func (s *State) Heirs() []model.HeirRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.HeirRecord(nil), s.heirs...)
}

func (s *State) Person(id string) (model.Person, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.family.Person(id)
	if p == nil {
		return model.Person{}, false
	}
	return *p, true
}

func (s *State) Asset(id string) (model.Asset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Get(id)
}

func (s *State) AddAsset(t model.AssetType, amount int64, name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.AddAsset(t, amount, name)
}

// MoveAsset validates the target against the current heirs.
func (s *State) MoveAsset(id string, target model.Location) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.MoveAsset(id, target, s.heirs)
}

func (s *State) DeleteAsset(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.DeleteAsset(id)
}

func (s *State) SetAmount(id string, amount int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.SetAmount(id, amount)
}

func (s *State) ResetAllocation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger.ResetAllocation()
}

func (s *State) SetOtherDeduction(amount int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.other = max(amount, 0)
}

// EditFamily applies fn to a copy of the family and commits it only if fn
// succeeds. Heirs are re-resolved and assets held directly by anyone who
// stopped being an heir go back to the pool; the count of such assets is
// returned. Extended-slot placements stay put.
func (s *State) EditFamily(fn func(f *model.Family) error) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.family.Clone()
	if err := fn(&next); err != nil {
		return 0, err
	}
	s.family = next
	s.heirs = heirs.Resolve(next)
	return s.reconcile(), nil
}

// Reconcile returns to the pool assets held directly by non-heirs, for
// example when the initial situation was supplied from outside.
func (s *State) Reconcile() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reconcile()
}

func (s *State) reconcile() int {
	active := heirs.ActiveIDs(s.heirs)
	return s.ledger.ReleaseOwners(func(id string) bool { return active[id] })
}

// Summary returns the derived figures for the current state, reusing a
// stored result when the inputs are structurally unchanged.
func (s *State) Summary(ctx context.Context) model.Summary {
	s.mu.Lock()
	sit := s.situation()
	s.mu.Unlock()

	in, err := snapshot.Input(sit)
	if err != nil {
		s.logger.Warn("snapshot input", zap.Error(err))
		return Derive(sit)
	}
	key := snapshot.KeyOf(in)

	if b, ok := s.store.Get(ctx, key); ok {
		var cached snapshot.Entry
		switch err := json.Unmarshal(b, &cached); {
		case err != nil:
			s.logger.Warn("discarding undecodable cached summary", zap.String("key", key))
		case !bytes.Equal(cached.Input, in):
			s.logger.Debug("cached summary key collision", zap.String("key", key))
		default:
			return cached.Summary
		}
	}

	sum := Derive(sit)
	if b, err := json.Marshal(snapshot.Entry{Input: in, Summary: sum}); err == nil {
		if err := s.store.Set(ctx, key, b); err != nil {
			s.logger.Warn("store summary", zap.String("key", key), zap.Error(err))
		}
	}
	return sum
}
