package nfa

// Null is the fragment matching only the empty string.
// Its single state is both start and accept state.
type Null struct {
	state   StateID
	accepts []StateID
}

// Kind returns KindNull
func (n *Null) Kind() Kind { return KindNull }

// Start returns the only state
func (n *Null) Start() StateID { return n.state }

// Accepts returns the only state
func (n *Null) Accepts() []StateID { return n.accepts }

// Transit never adds a state: Null consumes nothing.
func (n *Null) Transit(StateID, rune, *StateSet) {}

// Epsilon adds s itself when s is the Null state.
func (n *Null) Epsilon(s StateID, dst *StateSet) {
	if s == n.state {
		dst.Insert(s)
	}
}

// Owns reports whether s is the Null state
func (n *Null) Owns(s StateID) bool { return s == n.state }

func (n *Null) String() string { return "Null" }

func (n *Null) span() (lo, hi StateID) { return n.state, n.state + 1 }

func (n *Null) each(fn func(StateID)) { fn(n.state) }

func (n *Null) children() []Fragment { return nil }

// Singleton consumes exactly one character accepted by its Class.
type Singleton struct {
	start, end StateID
	class      Class
	accepts    []StateID
}

// Kind returns KindSingleton
func (n *Singleton) Kind() Kind { return KindSingleton }

// Start returns the state before the character
func (n *Singleton) Start() StateID { return n.start }

// Accepts returns the state after the character
func (n *Singleton) Accepts() []StateID { return n.accepts }

// Class returns the character predicate
func (n *Singleton) Class() Class { return n.class }

// Transit moves from start to end when r belongs to the class.
func (n *Singleton) Transit(s StateID, r rune, dst *StateSet) {
	if s == n.start && n.class.Matches(r) {
		dst.Insert(n.end)
	}
}

// Epsilon is the identity on owned states.
func (n *Singleton) Epsilon(s StateID, dst *StateSet) {
	if n.Owns(s) {
		dst.Insert(s)
	}
}

// Owns reports whether s is the start or end state
func (n *Singleton) Owns(s StateID) bool { return s == n.start || s == n.end }

func (n *Singleton) String() string { return "Singleton(" + n.class.String() + ")" }

func (n *Singleton) span() (lo, hi StateID) { return n.start, n.end + 1 }

func (n *Singleton) each(fn func(StateID)) {
	fn(n.start)
	fn(n.end)
}

func (n *Singleton) children() []Fragment { return nil }
