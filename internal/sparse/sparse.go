// Package sparse provides a sparse set data structure for efficient membership testing.
//
// A sparse set supports O(1) insertion, membership testing and clearing while
// keeping a dense list of its elements in insertion order. The NFA fragments use
// it to hold sets of state IDs during epsilon-closure and transition steps.
//
// Unlike a fixed-universe sparse set, this one grows on demand: fragments are
// composed without knowing the final number of states, so the universe is only
// known once a value is inserted.
package sparse

// Set is a set of uint32 values that supports O(1) operations.
// The sparse array maps a value to its index in the dense array; it is grown
// when a value beyond its length is inserted.
type Set struct {
	sparse []uint32 // value -> index in dense
	dense  []uint32 // values in insertion order
}

// NewSet creates a new set sized for values below capacity.
// Larger values are accepted; they grow the set.
func NewSet(capacity int) *Set {
	if capacity < 0 {
		capacity = 0
	}
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds a value to the set.
// Returns true if the value was not present before.
func (s *Set) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	if int(value) >= len(s.sparse) {
		s.grow(int(value) + 1)
	}
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	return true
}

func (s *Set) grow(min int) {
	n := len(s.sparse) * 2
	if n < min {
		n = min
	}
	sparse := make([]uint32, n)
	copy(sparse, s.sparse)
	s.sparse = sparse
}

// Contains returns true if the value is in the set
func (s *Set) Contains(value uint32) bool {
	if int(value) >= len(s.sparse) {
		return false
	}
	idx := s.sparse[value]
	return int(idx) < len(s.dense) && s.dense[idx] == value
}

// Remove removes a value from the set.
// If the value is not present, this is a no-op.
func (s *Set) Remove(value uint32) {
	if !s.Contains(value) {
		return
	}

	// swap with the last element and pop
	idx := s.sparse[value]
	last := s.dense[len(s.dense)-1]
	s.dense[idx] = last
	s.sparse[last] = idx
	s.dense = s.dense[:len(s.dense)-1]
}

// Clear removes all elements from the set in O(1) time
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of elements in the set
func (s *Set) Len() int {
	return len(s.dense)
}

// IsEmpty returns true if the set contains no elements
func (s *Set) IsEmpty() bool {
	return len(s.dense) == 0
}

// Values returns the values in insertion order.
// The returned slice is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense
}

// Union inserts every value of other into s.
func (s *Set) Union(other *Set) {
	for _, v := range other.dense {
		s.Insert(v)
	}
}

// Equal reports whether both sets hold the same values, ignoring order.
func (s *Set) Equal(other *Set) bool {
	if len(s.dense) != len(other.dense) {
		return false
	}
	for _, v := range s.dense {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the set.
func (s *Set) Clone() *Set {
	c := &Set{
		sparse: make([]uint32, len(s.sparse)),
		dense:  make([]uint32, len(s.dense)),
	}
	copy(c.sparse, s.sparse)
	copy(c.dense, s.dense)
	return c
}
