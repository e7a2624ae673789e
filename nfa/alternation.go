package nfa

import "strings"

// Alternation matches any one of its branches.
//
// It adds a fresh start and end state on top of the branches. Completing a
// branch (reaching one of its accept states) folds into the shared end state.
type Alternation struct {
	start, end StateID
	branches   []Fragment
	accepts    []StateID
	lo, hi     StateID
}

// Kind returns KindAlternation
func (n *Alternation) Kind() Kind { return KindAlternation }

// Start returns the shared start state
func (n *Alternation) Start() StateID { return n.start }

// Accepts returns the shared end state
func (n *Alternation) Accepts() []StateID { return n.accepts }

// Branches returns the alternatives in declaration order.
func (n *Alternation) Branches() []Fragment { return n.branches }

// Transit delegates to the first branch owning s that yields a state.
func (n *Alternation) Transit(s StateID, r rune, dst *StateSet) {
	if !within(n, s) {
		return
	}
	for _, b := range n.branches {
		if !b.Owns(s) {
			continue
		}
		before := dst.Len()
		b.Transit(s, r, dst)
		if dst.Len() > before {
			return
		}
	}
}

// Epsilon from start reaches start and every branch's start closure. From a
// branch state it is the branch's own closure, plus end when that closure
// holds one of the branch's accept states.
func (n *Alternation) Epsilon(s StateID, dst *StateSet) {
	switch {
	case s == n.start:
		dst.Insert(n.start)
		for _, b := range n.branches {
			b.Epsilon(b.Start(), dst)
		}
	case s == n.end:
		dst.Insert(n.end)
	case within(n, s):
		for _, b := range n.branches {
			if !b.Owns(s) {
				continue
			}
			reached := getSet()
			b.Epsilon(s, reached)
			if IsAccept(b, reached) {
				reached.Insert(n.end)
			}
			dst.Union(reached)
			putSet(reached)
			return
		}
	}
}

// Owns reports whether s is the start, the end, or a state of a branch
func (n *Alternation) Owns(s StateID) bool {
	if s == n.start || s == n.end {
		return true
	}
	if !within(n, s) {
		return false
	}
	for _, b := range n.branches {
		if b.Owns(s) {
			return true
		}
	}
	return false
}

func (n *Alternation) String() string {
	parts := make([]string, len(n.branches))
	for i, b := range n.branches {
		parts[i] = b.String()
	}
	return "Alternation(" + strings.Join(parts, ", ") + ")"
}

func (n *Alternation) span() (lo, hi StateID) { return n.lo, n.hi }

func (n *Alternation) each(fn func(StateID)) {
	fn(n.start)
	fn(n.end)
	for _, b := range n.branches {
		b.each(fn)
	}
}

func (n *Alternation) children() []Fragment { return n.branches }
