package nfa

// Builder allocates state IDs and assembles fragments.
//
// Every fragment of one automaton must come from the same Builder, and a
// fragment may appear only once in a tree: composite fragments tell their
// children apart by the IDs they own. Children are always created before
// their parent, so a parent never owns an ID lower than its first child.
type Builder struct {
	next StateID
}

// NewBuilder creates a new fragment builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Len returns the number of states allocated so far
func (b *Builder) Len() int {
	return int(b.next)
}

func (b *Builder) alloc() StateID {
	id := b.next
	b.next++
	return id
}

// Null adds a fragment matching the empty string
func (b *Builder) Null() *Null {
	s := b.alloc()
	return &Null{state: s, accepts: []StateID{s}}
}

// Char adds a fragment matching exactly r
func (b *Builder) Char(r rune) *Singleton {
	return b.Class(RuneClass(r))
}

// Set adds a fragment matching any rune of the given set
func (b *Builder) Set(runes ...rune) *Singleton {
	return b.Class(SetClass(runes...))
}

// Any adds a fragment matching one arbitrary rune ('\n' only when newline is true)
func (b *Builder) Any(newline bool) *Singleton {
	return b.Class(AnyClass(newline))
}

// Class adds a fragment matching one rune of the class
func (b *Builder) Class(c Class) *Singleton {
	start := b.alloc()
	end := b.alloc()
	return &Singleton{start: start, end: end, class: c, accepts: []StateID{end}}
}

// Alternation adds a fragment matching any one of the branches.
func (b *Builder) Alternation(branches ...Fragment) (*Alternation, error) {
	if len(branches) == 0 {
		return nil, &BuildError{Message: "alternation needs a branch", StateID: InvalidState, Err: ErrEmptyAlternation}
	}
	if err := b.checkParts(branches); err != nil {
		return nil, err
	}
	lo, _ := spanOf(branches)
	start := b.alloc()
	end := b.alloc()
	return &Alternation{
		start:    start,
		end:      end,
		branches: append([]Fragment(nil), branches...),
		accepts:  []StateID{end},
		lo:       lo,
		hi:       end + 1,
	}, nil
}

// Concatenation adds a fragment matching the elements in order.
func (b *Builder) Concatenation(seq ...Fragment) (*Concatenation, error) {
	if len(seq) == 0 {
		return nil, &BuildError{Message: "concatenation needs an element", StateID: InvalidState, Err: ErrEmptyConcatenation}
	}
	if err := b.checkParts(seq); err != nil {
		return nil, err
	}
	lo, hi := spanOf(seq)
	return &Concatenation{
		seq: append([]Fragment(nil), seq...),
		lo:  lo,
		hi:  hi,
	}, nil
}

// Repetition adds a fragment matching inner one or more times, or zero or
// more times when nullable.
func (b *Builder) Repetition(inner Fragment, nullable bool) *Repetition {
	return &Repetition{inner: inner, nullable: nullable}
}

// Build wraps root into an NFA ready to run.
func (b *Builder) Build(root Fragment) (*NFA, error) {
	if root == nil {
		return nil, &BuildError{Message: "nil root fragment", StateID: InvalidState, Err: ErrForeignFragment}
	}
	if _, hi := root.span(); hi > b.next {
		return nil, &BuildError{Message: "root fragment was built by another builder", StateID: hi - 1, Err: ErrForeignFragment}
	}
	return &NFA{root: root, states: b.Len()}, nil
}

// checkParts verifies that parts come from this builder and own disjoint states.
func (b *Builder) checkParts(parts []Fragment) error {
	seen := NewStateSet()
	var err error
	for _, p := range parts {
		if p == nil {
			return &BuildError{Message: "nil fragment", StateID: InvalidState, Err: ErrForeignFragment}
		}
		p.each(func(s StateID) {
			if err != nil {
				return
			}
			switch {
			case s >= b.next:
				err = &BuildError{Message: "fragment was built by another builder", StateID: s, Err: ErrForeignFragment}
			case !seen.Insert(s):
				err = &BuildError{Message: "fragment used more than once", StateID: s, Err: ErrSharedFragment}
			}
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func spanOf(parts []Fragment) (lo, hi StateID) {
	lo, hi = parts[0].span()
	for _, p := range parts[1:] {
		plo, phi := p.span()
		lo = min(lo, plo)
		hi = max(hi, phi)
	}
	return lo, hi
}
