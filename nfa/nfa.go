package nfa

import (
	"fmt"
	"sync"
)

// StateID uniquely identifies an NFA state.
// IDs are handed out by a Builder; a state is only ever compared by ID.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID
const InvalidState StateID = 0xFFFFFFFF

// Kind identifies the variant of a Fragment.
type Kind uint8

const (
	// KindNull matches only the empty string
	KindNull Kind = iota

	// KindSingleton consumes exactly one character accepted by its Class
	KindSingleton

	// KindAlternation matches any one of its branches
	KindAlternation

	// KindConcatenation matches its elements one after another
	KindConcatenation

	// KindRepetition matches its inner fragment one or more (or zero or more) times
	KindRepetition
)

// String returns a human-readable representation of the Kind
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindSingleton:
		return "Singleton"
	case KindAlternation:
		return "Alternation"
	case KindConcatenation:
		return "Concatenation"
	case KindRepetition:
		return "Repetition"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Fragment is a composable NFA.
//
// Fragments are composed by delegation: a composite fragment answers
// transition queries by asking the child that owns the state instead of
// merging all children into one flat automaton. Fragments are immutable once
// built and may be shared by any number of concurrent runs.
//
// The set of variants is closed; fragments are created through a Builder.
type Fragment interface {
	// Kind returns the variant of the fragment.
	Kind() Kind

	// Start returns the initial state.
	Start() StateID

	// Accepts returns the accept states. The slice must not be modified.
	Accepts() []StateID

	// Transit adds to dst the states reachable from s by consuming r.
	Transit(s StateID, r rune, dst *StateSet)

	// Epsilon adds to dst the states reachable from s without consuming
	// input, s included. The result of a single call is not necessarily
	// closed; see Closure.
	Epsilon(s StateID, dst *StateSet)

	// Owns reports whether s is a state of this fragment or of one of its
	// children.
	Owns(s StateID) bool

	String() string

	// span returns the lowest owned ID and one past the highest.
	span() (lo, hi StateID)

	// each calls fn for every state the fragment owns.
	each(fn func(StateID))

	// children returns the direct sub-fragments.
	children() []Fragment
}

// IsAccept returns true if one of the given states is an accept state of f.
func IsAccept(f Fragment, states *StateSet) bool {
	for _, a := range f.Accepts() {
		if states.Contains(a) {
			return true
		}
	}
	return false
}

// EpsilonSet adds to dst the union of f.Epsilon(s) for every s in states.
func EpsilonSet(f Fragment, states *StateSet, dst *StateSet) {
	for _, s := range states.Values() {
		f.Epsilon(s, dst)
	}
}

// Closure returns the epsilon-closure of states in f.
//
// Fragments compute epsilon transitions locally, so one application of
// EpsilonSet is not guaranteed to be closed; Closure keeps applying Epsilon
// to every state it adds until the set stops changing.
func Closure(f Fragment, states *StateSet) *StateSet {
	closed := NewStateSet()
	EpsilonSet(f, states, closed)
	closeOver(f, closed)
	return closed
}

// closeOver extends set in place to its epsilon-closure in f. Each state is
// expanded once; states added by an expansion are expanded in turn.
func closeOver(f Fragment, set *StateSet) {
	for i := 0; i < set.Len(); i++ {
		f.Epsilon(set.at(i), set)
	}
}

// scratch holds state sets for the intermediate results of Epsilon.
// Sets are cleared before they are returned to the pool.
var scratch = sync.Pool{
	New: func() any { return NewStateSet() },
}

func getSet() *StateSet {
	return scratch.Get().(*StateSet)
}

func putSet(s *StateSet) {
	s.Clear()
	scratch.Put(s)
}

func contains(ids []StateID, s StateID) bool {
	for _, id := range ids {
		if id == s {
			return true
		}
	}
	return false
}

func within(f Fragment, s StateID) bool {
	lo, hi := f.span()
	return s >= lo && s < hi
}

// NFA is a compiled fragment tree ready to run.
// It is safe to use concurrently; every Run owns its state sets.
type NFA struct {
	root    Fragment
	pattern string
	states  int
}

// Root returns the top-level fragment.
func (n *NFA) Root() Fragment {
	return n.root
}

// States returns the number of states allocated for the NFA
func (n *NFA) States() int {
	return n.states
}

// Pattern returns the source pattern, or "" if the NFA was assembled with a Builder.
func (n *NFA) Pattern() string {
	return n.pattern
}

// String returns a human-readable representation of the NFA
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, root: %s}", n.states, n.root)
}
