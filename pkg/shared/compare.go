package shared

import (
	"time"

	"github.com/google/uuid"
)

// SameMembers reports set equality of two membership lists: identical
// cardinality and every ID present on both sides, order irrelevant.
// Duplicates collapse to a single membership.
func SameMembers(a, b []uuid.UUID) bool {
	setA := make(map[uuid.UUID]struct{}, len(a))
	for _, id := range a {
		setA[id] = struct{}{}
	}
	setB := make(map[uuid.UUID]struct{}, len(b))
	for _, id := range b {
		setB[id] = struct{}{}
	}
	if len(setA) != len(setB) {
		return false
	}
	for id := range setA {
		if _, ok := setB[id]; !ok {
			return false
		}
	}
	return true
}

// SameDay compares two timestamps at day granularity in UTC.
func SameDay(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return a.IsZero() == b.IsZero()
	}
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
