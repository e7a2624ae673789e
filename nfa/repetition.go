package nfa

// Repetition matches its inner fragment repeatedly: one or more times, or
// zero or more times when nullable. It shares the inner fragment's states.
type Repetition struct {
	inner    Fragment
	nullable bool
}

// Kind returns KindRepetition
func (n *Repetition) Kind() Kind { return KindRepetition }

// Start returns the inner start state
func (n *Repetition) Start() StateID { return n.inner.Start() }

// Accepts returns the inner accept states
func (n *Repetition) Accepts() []StateID { return n.inner.Accepts() }

// Inner returns the repeated fragment
func (n *Repetition) Inner() Fragment { return n.inner }

// Nullable reports whether zero occurrences are accepted ('*' rather than '+')
func (n *Repetition) Nullable() bool { return n.nullable }

// Transit delegates to the inner fragment.
func (n *Repetition) Transit(s StateID, r rune, dst *StateSet) {
	n.inner.Transit(s, r, dst)
}

// Epsilon extends the inner closure with the zero-occurrence bypass from the
// start (nullable only) and the loop back from an accept state to the start.
func (n *Repetition) Epsilon(s StateID, dst *StateSet) {
	if !n.inner.Owns(s) {
		return
	}
	n.inner.Epsilon(s, dst)
	accepts := n.inner.Accepts()
	if n.nullable && s == n.inner.Start() {
		for _, a := range accepts {
			n.inner.Epsilon(a, dst)
		}
	}
	if contains(accepts, s) {
		n.inner.Epsilon(n.inner.Start(), dst)
	}
}

// Owns delegates to the inner fragment
func (n *Repetition) Owns(s StateID) bool { return n.inner.Owns(s) }

func (n *Repetition) String() string {
	if n.nullable {
		return "Star(" + n.inner.String() + ")"
	}
	return "Plus(" + n.inner.String() + ")"
}

func (n *Repetition) span() (lo, hi StateID) { return n.inner.span() }

func (n *Repetition) each(fn func(StateID)) { n.inner.each(fn) }

func (n *Repetition) children() []Fragment { return []Fragment{n.inner} }
