package nfa

import (
	"slices"
	"strconv"
	"strings"

	"github.com/coregx/corepeg/internal/sparse"
)

// StateSet is a set of state IDs.
// The zero value is not usable; create sets with NewStateSet.
type StateSet struct {
	set *sparse.Set
}

// NewStateSet creates an empty state set.
func NewStateSet(ids ...StateID) *StateSet {
	s := &StateSet{set: sparse.NewSet(16)}
	for _, id := range ids {
		s.Insert(id)
	}
	return s
}

// Insert adds id to the set and reports whether it was new.
func (s *StateSet) Insert(id StateID) bool {
	return s.set.Insert(uint32(id))
}

// Contains reports whether id is in the set.
func (s *StateSet) Contains(id StateID) bool {
	return s.set.Contains(uint32(id))
}

// Len returns the number of states in the set.
func (s *StateSet) Len() int {
	return s.set.Len()
}

// IsEmpty returns true if the set holds no state.
func (s *StateSet) IsEmpty() bool {
	return s.set.IsEmpty()
}

// Union adds every state of other to s.
func (s *StateSet) Union(other *StateSet) {
	s.set.Union(other.set)
}

// Equal reports whether both sets hold the same states.
func (s *StateSet) Equal(other *StateSet) bool {
	return s.set.Equal(other.set)
}

// Clear empties the set.
func (s *StateSet) Clear() {
	s.set.Clear()
}

// Values returns a copy of the states in insertion order.
func (s *StateSet) Values() []StateID {
	raw := s.set.Values()
	ids := make([]StateID, len(raw))
	for i, v := range raw {
		ids[i] = StateID(v)
	}
	return ids
}

// at returns the i-th state in insertion order.
func (s *StateSet) at(i int) StateID {
	return StateID(s.set.Values()[i])
}

// Sorted returns the states in ascending order.
func (s *StateSet) Sorted() []StateID {
	ids := s.Values()
	slices.Sort(ids)
	return ids
}

// String returns the states in ascending order, e.g. "{0, 3, 4}".
func (s *StateSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, id := range s.Sorted() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	b.WriteByte('}')
	return b.String()
}
