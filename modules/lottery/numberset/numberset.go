package numberset

import (
	"slices"
	"strconv"
	"strings"
)

const (
	// Min and Max bound every pickable number, inclusive.
	Min = 1
	Max = 49

	// Size is the number of picks in a selection.
	Size = 5
)

// NumberSet is a player's selection: exactly Size distinct numbers in
// [Min, Max]. The stored order is the order the player picked them in;
// use Canonical for order-independent comparisons.
type NumberSet [Size]int32

// New builds a NumberSet from a raw candidate selection, validating it first.
func New(candidate []int32) (NumberSet, error) {
	if err := Validate(candidate); err != nil {
		return NumberSet{}, err
	}
	var set NumberSet
	copy(set[:], candidate)
	return set, nil
}

// Canonical returns the selection sorted ascending. Fingerprinting and
// duplicate detection operate on the canonical form so permutations of the
// same numbers collide.
func (s NumberSet) Canonical() NumberSet {
	canonical := s
	slices.Sort(canonical[:])
	return canonical
}

// CanonicalString renders the canonical form as "a,b,c,d,e".
func (s NumberSet) CanonicalString() string {
	canonical := s.Canonical()
	parts := make([]string, 0, Size)
	for _, n := range canonical[:] {
		parts = append(parts, strconv.FormatInt(int64(n), 10))
	}
	return strings.Join(parts, ",")
}

func (s NumberSet) String() string {
	return s.CanonicalString()
}

// Contains reports whether n is part of the selection.
func (s NumberSet) Contains(n int32) bool {
	return slices.Contains(s[:], n)
}

// MatchCount returns the size of the intersection with other.
func (s NumberSet) MatchCount(other NumberSet) int {
	count := 0
	for _, n := range s {
		if other.Contains(n) {
			count++
		}
	}
	return count
}

// SameCombination reports whether both selections contain the same numbers,
// regardless of pick order.
func (s NumberSet) SameCombination(other NumberSet) bool {
	return s.Canonical() == other.Canonical()
}

// Slice returns the selection as a fresh slice in pick order.
func (s NumberSet) Slice() []int32 {
	out := make([]int32, Size)
	copy(out, s[:])
	return out
}
