// Package snapshot keys derived estate results by a structural hash of their
// inputs and stores them for reuse.
package snapshot

import (
	"context"
	"strconv"

	"github.com/cespare/xxhash/v2"
	json "github.com/goccy/go-json"

	"inheritance-engine/internal/model"
)

// Store holds encoded summaries by key. A miss is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
}

type input struct {
	Family         model.Family  `json:"f"`
	Assets         []model.Asset `json:"a"`
	OtherDeduction int64         `json:"o"`
}

// Input encodes everything a Summary depends on. Two situations with equal
// family, asset list and manual deduction encode identically.
func Input(s model.Situation) ([]byte, error) {
	return json.Marshal(input{Family: s.Family, Assets: s.Assets, OtherDeduction: s.OtherDeduction})
}

// KeyOf hashes an encoded input. Distinct inputs can share a key, so a stored
// Entry must be checked against its Input before use.
func KeyOf(in []byte) string {
	return "estate:" + strconv.FormatUint(xxhash.Sum64(in), 16)
}

func Key(s model.Situation) (string, error) {
	in, err := Input(s)
	if err != nil {
		return "", err
	}
	return KeyOf(in), nil
}

// Entry is the stored form of a summary.
type Entry struct {
	Input   []byte        `json:"input"`
	Summary model.Summary `json:"summary"`
}

// Nop never hits.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (Nop) Set(context.Context, string, []byte) error { return nil }
