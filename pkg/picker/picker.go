// Package picker models the searchable select widget used by entity forms:
// a filtered candidate dropdown, a parallel selected-items list and an
// inline create-new affordance.
package picker

import (
	"sort"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Value is the tagged variant backing a picker entry: either a raw string
// or a reference to a backing entity.
type Value interface {
	Label() string
	value()
}

// Raw is a plain string entry with no backing record.
type Raw string

func (r Raw) Label() string { return string(r) }
func (Raw) value()          {}

// Ref points at a backing entity.
type Ref struct {
	ID   uuid.UUID
	Name string
}

func (r Ref) Label() string { return r.Name }
func (Ref) value()          {}

// Equal compares two values by display name. Two distinct backing records
// sharing a display name are treated as the same option; identity is not
// consulted.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Label() == b.Label()
}

// Mode selects what happens when a candidate is picked.
type Mode int

const (
	// ModeAppend appends the candidate to the selected list and clears
	// the query.
	ModeAppend Mode = iota
	// ModeSingle stores the single chosen candidate.
	ModeSingle
)

// DisplayNew controls when the create-new affordance renders.
type DisplayNew int

const (
	DisplayNever DisplayNew = iota
	DisplayAlways
	// DisplayWhenEmpty shows the affordance only when the filtered
	// candidate list is empty.
	DisplayWhenEmpty
)

// Badge is the richer display record a selected value maps to in badge
// mode.
type Badge struct {
	Name        string
	Description string
	Rarity      string
}

type Config struct {
	Mode       Mode
	DisplayNew DisplayNew
	// Badges maps value labels to display records. A lookup miss falls
	// back to plain text rendering.
	Badges map[string]Badge
	// OnCreate runs when the create-new affordance is invoked. It must
	// not touch the field's own selection state.
	OnCreate func()
}

type Field struct {
	cfg        Config
	candidates []Value
	selected   []Value
	single     Value
	query      string
}

func New(cfg Config, candidates []Value) *Field {
	return &Field{cfg: cfg, candidates: candidates}
}

func (f *Field) SetQuery(q string) { f.query = q }
func (f *Field) Query() string     { return f.query }

func (f *Field) isSelected(v Value) bool {
	for _, s := range f.selected {
		if Equal(s, v) {
			return true
		}
	}
	return f.single != nil && Equal(f.single, v)
}

// Candidates returns the filtered view: candidates minus the current
// selection, matched against the query case-insensitively and ordered by
// match rank. Computed lazily on each call; never mutates the field.
func (f *Field) Candidates() []Value {
	available := make([]Value, 0, len(f.candidates))
	for _, c := range f.candidates {
		if !f.isSelected(c) {
			available = append(available, c)
		}
	}
	if f.query == "" {
		return available
	}

	labels := make([]string, len(available))
	for i, c := range available {
		labels[i] = c.Label()
	}
	ranks := fuzzy.RankFindNormalizedFold(f.query, labels)
	sort.Sort(ranks)

	matched := make([]Value, 0, len(ranks))
	for _, rank := range ranks {
		matched = append(matched, available[rank.OriginalIndex])
	}
	return matched
}

// Select applies the configured addition mode to the picked candidate:
// append-and-clear in ModeAppend, store-directly in ModeSingle. Exactly one
// of the two happens.
func (f *Field) Select(v Value) {
	if v == nil || f.isSelected(v) {
		return
	}
	switch f.cfg.Mode {
	case ModeSingle:
		f.single = v
	default:
		f.selected = append(f.selected, v)
		f.query = ""
	}
}

// Deselect removes a value from the selected list (or clears the single
// value) by display-name equality.
func (f *Field) Deselect(v Value) {
	if f.single != nil && Equal(f.single, v) {
		f.single = nil
		return
	}
	for i, s := range f.selected {
		if Equal(s, v) {
			f.selected = append(f.selected[:i], f.selected[i+1:]...)
			return
		}
	}
}

// Selected returns the external selected-items list (ModeAppend).
func (f *Field) Selected() []Value { return f.selected }

// Single returns the stored single value (ModeSingle).
func (f *Field) Single() (Value, bool) { return f.single, f.single != nil }

// ShowCreate reports whether the create-new affordance renders under the
// configured policy.
func (f *Field) ShowCreate() bool {
	switch f.cfg.DisplayNew {
	case DisplayAlways:
		return true
	case DisplayWhenEmpty:
		return len(f.Candidates()) == 0
	default:
		return false
	}
}

// Create invokes the caller-supplied callback. Selection state is left
// untouched.
func (f *Field) Create() {
	if f.cfg.OnCreate != nil {
		f.cfg.OnCreate()
	}
}

// BadgeFor maps a value through the badge lookup table. The second return
// is false on a lookup miss, in which case callers render the plain label.
func (f *Field) BadgeFor(v Value) (Badge, bool) {
	if v == nil || f.cfg.Badges == nil {
		return Badge{}, false
	}
	b, ok := f.cfg.Badges[v.Label()]
	return b, ok
}
