package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

type LocationKind int

const (
	LocationPool LocationKind = iota
	LocationHeir
	LocationExtended
)

// SlotKind names an extended-family bucket hanging off an heir.
type SlotKind string

const (
	SlotSpouse SlotKind = "spouse"
	SlotChild  SlotKind = "child"
)

const (
	poolKey      = "pool"
	spouseSuffix = "_spouse"
	childInfix   = "_child_"
)

var ErrInvalidLocation = errors.New("invalid location")

// Location is where an asset currently sits: the unallocated pool, an heir,
// or one of an heir's extended-family slots. The zero value is the pool.
type Location struct {
	Kind   LocationKind
	HeirID string
	Slot   SlotKind
	Index  int
}

func Pool() Location {
	return Location{Kind: LocationPool}
}

func HeirLocation(heirID string) Location {
	return Location{Kind: LocationHeir, HeirID: heirID}
}

func SpouseSlot(heirID string) Location {
	return Location{Kind: LocationExtended, HeirID: heirID, Slot: SlotSpouse}
}

func ChildSlot(heirID string, index int) Location {
	return Location{Kind: LocationExtended, HeirID: heirID, Slot: SlotChild, Index: index}
}

func (l Location) IsPool() bool {
	return l.Kind == LocationPool
}

// Owner returns the heir id the location belongs to, directly or through an
// extended slot. Empty for the pool.
func (l Location) Owner() string {
	if l.Kind == LocationPool {
		return ""
	}
	return l.HeirID
}

// String renders the wire encoding: "pool", "<heir>", "<heir>_spouse" or
// "<heir>_child_<index>".
func (l Location) String() string {
	switch l.Kind {
	case LocationHeir:
		return l.HeirID
	case LocationExtended:
		if l.Slot == SlotSpouse {
			return l.HeirID + spouseSuffix
		}
		return l.HeirID + childInfix + strconv.Itoa(l.Index)
	}
	return poolKey
}

// ParseLocation decodes the wire encoding. Extended slots are matched on the
// suffix so heir ids may themselves contain underscores.
func ParseLocation(s string) (Location, error) {
	if s == "" {
		return Location{}, fmt.Errorf("%w: empty", ErrInvalidLocation)
	}
	if s == poolKey {
		return Pool(), nil
	}
	if owner, ok := strings.CutSuffix(s, spouseSuffix); ok {
		if owner == "" {
			return Location{}, fmt.Errorf("%w: %q", ErrInvalidLocation, s)
		}
		return SpouseSlot(owner), nil
	}
	if i := strings.LastIndex(s, childInfix); i >= 0 {
		owner, raw := s[:i], s[i+len(childInfix):]
		idx, err := strconv.Atoi(raw)
		if err == nil {
			if owner == "" || idx < 0 {
				return Location{}, fmt.Errorf("%w: %q", ErrInvalidLocation, s)
			}
			return ChildSlot(owner, idx), nil
		}
	}
	return HeirLocation(s), nil
}

func (l Location) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *Location) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*l = Pool()
		return nil
	}
	parsed, err := ParseLocation(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
