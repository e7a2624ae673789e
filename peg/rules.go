package peg

import (
	"errors"
	"fmt"
	"slices"
)

// Rules is a table of named rules for mutually recursive grammars.
//
// Ref hands out a reference to a rule that may be defined later; Resolve
// checks that every referenced rule was defined. Defined rules are traced
// through Named.
//
//	r := g.Rules()
//	r.Define("list", g.Then(g.MustRegex(`\(`), g.ZeroOrMore(r.Ref("item")), g.MustRegex(`\)`)))
//	r.Define("item", g.Cond(`\(`, r.Ref("list")).OrElse(g.MustRegex("[a-z]+")))
//	if err := r.Resolve(); err != nil { ... }
//
// Rules is not safe for concurrent definition; the parsers it hands out
// are safe to share once resolved.
type Rules[A any] struct {
	g     *Grammar[A]
	refs  map[string]*recursive[A]
	order []string
}

// Rules creates an empty rule table.
func (g *Grammar[A]) Rules() *Rules[A] {
	return &Rules[A]{g: g, refs: make(map[string]*recursive[A])}
}

// Ref returns a reference to the named rule.
func (r *Rules[A]) Ref(name string) Parser[A] {
	return r.ref(name)
}

// Define sets the parser of the named rule and returns a reference to it.
func (r *Rules[A]) Define(name string, p Parser[A]) (Parser[A], error) {
	ref := r.ref(name)
	if ref.target != nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateRule, name)
	}
	ref.target = r.g.Named(name, p)
	return ref, nil
}

// Resolve reports every rule that was referenced but not defined.
func (r *Rules[A]) Resolve() error {
	var errs []error
	for _, name := range r.order {
		if r.refs[name].target == nil {
			errs = append(errs, fmt.Errorf("%w: %s", ErrUndefinedRule, name))
		}
	}
	return errors.Join(errs...)
}

// Names returns the rule names in order of first use
func (r *Rules[A]) Names() []string {
	return slices.Clone(r.order)
}

func (r *Rules[A]) ref(name string) *recursive[A] {
	if ref, ok := r.refs[name]; ok {
		return ref
	}
	ref := &recursive[A]{name: name}
	r.refs[name] = ref
	r.order = append(r.order, name)
	return ref
}
