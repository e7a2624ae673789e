package nfa

import "strings"

// Concatenation matches its elements one after another.
// It introduces no state of its own: it starts where the first element
// starts and accepts where the last element accepts.
type Concatenation struct {
	seq    []Fragment
	lo, hi StateID
}

// Kind returns KindConcatenation
func (n *Concatenation) Kind() Kind { return KindConcatenation }

// Start returns the start state of the first element
func (n *Concatenation) Start() StateID { return n.seq[0].Start() }

// Accepts returns the accept states of the last element
func (n *Concatenation) Accepts() []StateID { return n.seq[len(n.seq)-1].Accepts() }

// Elements returns the concatenated fragments in order.
func (n *Concatenation) Elements() []Fragment { return n.seq }

// Transit delegates to the element owning s.
func (n *Concatenation) Transit(s StateID, r rune, dst *StateSet) {
	if !within(n, s) {
		return
	}
	for _, e := range n.seq {
		if e.Owns(s) {
			e.Transit(s, r, dst)
			return
		}
	}
}

// Epsilon takes the owning element's closure of s. When s accepts that
// element, the start closures of the following elements are folded in for as
// long as each of them accepts the running set, which lets the closure see
// through nullable elements.
func (n *Concatenation) Epsilon(s StateID, dst *StateSet) {
	if !within(n, s) {
		return
	}
	last := len(n.seq) - 1
	for i, e := range n.seq {
		if !e.Owns(s) {
			continue
		}
		reached := getSet()
		e.Epsilon(s, reached)
		if i < last && contains(e.Accepts(), s) {
			for _, next := range n.seq[i+1:] {
				next.Epsilon(next.Start(), reached)
				if !IsAccept(next, reached) {
					break
				}
			}
		}
		dst.Union(reached)
		putSet(reached)
		return
	}
}

// Owns reports whether an element owns s
func (n *Concatenation) Owns(s StateID) bool {
	if !within(n, s) {
		return false
	}
	for _, e := range n.seq {
		if e.Owns(s) {
			return true
		}
	}
	return false
}

func (n *Concatenation) String() string {
	parts := make([]string, len(n.seq))
	for i, e := range n.seq {
		parts[i] = e.String()
	}
	return "Concatenation(" + strings.Join(parts, ", ") + ")"
}

func (n *Concatenation) span() (lo, hi StateID) { return n.lo, n.hi }

func (n *Concatenation) each(fn func(StateID)) {
	for _, e := range n.seq {
		e.each(fn)
	}
}

func (n *Concatenation) children() []Fragment { return n.seq }
