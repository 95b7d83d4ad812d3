// Package ledger tracks where each discrete asset currently sits.
//
// A Ledger is not safe for concurrent use; estate.State owns one and
// serialises access to it.
package ledger

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/google/uuid"

	"inheritance-engine/internal/model"
)

var (
	ErrInvalidAmount    = errors.New("amount must be a positive whole number")
	ErrInvalidAssetType = errors.New("unknown asset type")
)

type Ledger struct {
	assets []model.Asset
	newID  func() string
}

type Option func(*Ledger)

// WithIDFunc replaces the uuid generator used for new assets.
func WithIDFunc(fn func() string) Option {
	return func(l *Ledger) {
		l.newID = fn
	}
}

// New builds a ledger over a copy of assets.
func New(assets []model.Asset, opts ...Option) *Ledger {
	l := &Ledger{
		assets: slices.Clone(assets),
		newID:  func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// AddAsset inserts a new asset into the pool and returns its id.
func (l *Ledger) AddAsset(t model.AssetType, amount int64, name string) (string, error) {
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidAssetType, t)
	}
	if amount <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}
	if amount > math.MaxInt64-l.Total() {
		return "", fmt.Errorf("%w: estate total would overflow", ErrInvalidAmount)
	}
	id := l.newID()
	l.assets = append(l.assets, model.Asset{
		ID:       id,
		Type:     t,
		Amount:   amount,
		Location: model.Pool(),
		Name:     name,
	})
	l.sortPool()
	return id, nil
}

// MoveAsset relocates an asset to the pool, an extended slot, or an active
// heir. Anything else, including an unknown asset, is a rejected no-op.
func (l *Ledger) MoveAsset(id string, target model.Location, heirs []model.HeirRecord) bool {
	i := l.index(id)
	if i < 0 || !validTarget(target, heirs) {
		return false
	}
	l.assets[i].Location = target
	return true
}

func validTarget(target model.Location, heirs []model.HeirRecord) bool {
	switch target.Kind {
	case model.LocationPool, model.LocationExtended:
		return true
	case model.LocationHeir:
		for _, h := range heirs {
			if h.ID == target.HeirID {
				return h.IsHeir
			}
		}
	}
	return false
}

// DeleteAsset removes an asset that sits in the pool. Allocated assets must
// be moved back first.
func (l *Ledger) DeleteAsset(id string) bool {
	i := l.index(id)
	if i < 0 || !l.assets[i].Location.IsPool() {
		return false
	}
	l.assets = slices.Delete(l.assets, i, i+1)
	return true
}

// SetAmount edits an amount in place, clamping negatives to zero. It reports
// whether the asset exists.
func (l *Ledger) SetAmount(id string, amount int64) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.assets[i].Amount = max(amount, 0)
	return true
}

// ResetAllocation returns every asset to the pool.
func (l *Ledger) ResetAllocation() {
	for i := range l.assets {
		l.assets[i].Location = model.Pool()
	}
}

// ReleaseOwners returns to the pool every asset held directly by an heir
// that fails keep. Extended slots are accepted on their pattern alone and are
// left where they are. It returns the number of assets moved.
func (l *Ledger) ReleaseOwners(keep func(heirID string) bool) int {
	n := 0
	for i, a := range l.assets {
		if a.Location.Kind == model.LocationHeir && !keep(a.Location.HeirID) {
			l.assets[i].Location = model.Pool()
			n++
		}
	}
	return n
}

// Assets returns a copy of the current assets.
func (l *Ledger) Assets() []model.Asset {
	return slices.Clone(l.assets)
}

func (l *Ledger) Get(id string) (model.Asset, bool) {
	i := l.index(id)
	if i < 0 {
		return model.Asset{}, false
	}
	return l.assets[i], true
}

func (l *Ledger) Total() int64 {
	var sum int64
	for _, a := range l.assets {
		sum += a.Amount
	}
	return sum
}

func (l *Ledger) PoolTotal() int64 {
	var sum int64
	for _, a := range l.assets {
		if a.Location.IsPool() {
			sum += a.Amount
		}
	}
	return sum
}

func (l *Ledger) index(id string) int {
	return slices.IndexFunc(l.assets, func(a model.Asset) bool { return a.ID == id })
}

// sortPool orders pooled assets by type then descending amount. Allocated
// assets keep their relative positions.
func (l *Ledger) sortPool() {
	var pooled []int
	for i, a := range l.assets {
		if a.Location.IsPool() {
			pooled = append(pooled, i)
		}
	}
	sorted := make([]model.Asset, len(pooled))
	for j, i := range pooled {
		sorted[j] = l.assets[i]
	}
	slices.SortStableFunc(sorted, func(a, b model.Asset) int {
		if r := a.Type.Rank() - b.Type.Rank(); r != 0 {
			return r
		}
		switch {
		case a.Amount > b.Amount:
			return -1
		case a.Amount < b.Amount:
			return 1
		}
		return 0
	})
	for j, i := range pooled {
		l.assets[i] = sorted[j]
	}
}
