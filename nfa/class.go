package nfa

import (
	"fmt"
	"regexp/syntax"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// ClassKind identifies how a Class decides whether a character matches.
type ClassKind uint8

const (
	// ClassRune matches exactly one rune
	ClassRune ClassKind = iota

	// ClassSet matches any rune of an explicit set
	ClassSet

	// ClassAny matches every rune
	ClassAny

	// ClassAnyNotNL matches every rune except '\n'
	ClassAnyNotNL

	// ClassRanges matches runes inside sorted [lo, hi] pairs
	ClassRanges
)

// Class is the character predicate of a Singleton fragment.
type Class struct {
	kind  ClassKind
	runes []rune // ClassRune: one rune, ClassSet: members, ClassRanges: lo/hi pairs
	text  string // source text, for String
}

// RuneClass returns a class matching exactly r.
func RuneClass(r rune) Class {
	return Class{kind: ClassRune, runes: []rune{r}}
}

// SetClass returns a class matching any of the given runes.
func SetClass(runes ...rune) Class {
	return Class{kind: ClassSet, runes: slices.Clone(runes)}
}

// AnyClass returns the class of '.'.
// When newline is false, '\n' is excluded, following Go's regexp convention.
func AnyClass(newline bool) Class {
	if newline {
		return Class{kind: ClassAny}
	}
	return Class{kind: ClassAnyNotNL}
}

// RangeClass returns a class matching the runes inside the [lo, hi] pairs.
// The slice is laid out as in regexp/syntax: lo0, hi0, lo1, hi1, ...
func RangeClass(pairs []rune) Class {
	return Class{kind: ClassRanges, runes: slices.Clone(pairs)}
}

// Kind returns the kind of the class
func (c Class) Kind() ClassKind {
	return c.kind
}

// Matches reports whether r belongs to the class.
func (c Class) Matches(r rune) bool {
	switch c.kind {
	case ClassRune:
		return r == c.runes[0]
	case ClassSet:
		return slices.Contains(c.runes, r)
	case ClassAny:
		return true
	case ClassAnyNotNL:
		return r != '\n'
	case ClassRanges:
		for i := 0; i+1 < len(c.runes); i += 2 {
			if r < c.runes[i] {
				return false
			}
			if r <= c.runes[i+1] {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// String returns a human-readable representation of the class
func (c Class) String() string {
	if c.text != "" {
		return c.text
	}
	switch c.kind {
	case ClassRune:
		return strconv.QuoteRune(c.runes[0])
	case ClassSet:
		var b strings.Builder
		b.WriteByte('{')
		for i, r := range c.runes {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.QuoteRune(r))
		}
		b.WriteByte('}')
		return b.String()
	case ClassAny:
		return "(?s:.)"
	case ClassAnyNotNL:
		return "."
	case ClassRanges:
		var b strings.Builder
		b.WriteByte('[')
		for i := 0; i+1 < len(c.runes); i += 2 {
			lo, hi := c.runes[i], c.runes[i+1]
			b.WriteString(quoteClassRune(lo))
			if hi != lo {
				b.WriteByte('-')
				b.WriteString(quoteClassRune(hi))
			}
		}
		b.WriteByte(']')
		return b.String()
	default:
		return fmt.Sprintf("Class(%d)", c.kind)
	}
}

func quoteClassRune(r rune) string {
	q := strconv.QuoteRune(r)
	return q[1 : len(q)-1]
}

// bracketClass hands the interior of a bracket expression to regexp/syntax
// and turns the resulting single-character node into a Class. span includes
// the enclosing brackets.
func bracketClass(span string) (Class, error) {
	re, err := syntax.Parse(span, syntax.Perl)
	if err != nil {
		return Class{}, err
	}

	var c Class
	switch re.Op {
	case syntax.OpCharClass:
		c = RangeClass(re.Rune)
	case syntax.OpNoMatch:
		c = RangeClass(nil)
	case syntax.OpAnyChar:
		c = AnyClass(true)
	case syntax.OpAnyCharNotNL:
		c = AnyClass(false)
	case syntax.OpLiteral:
		if len(re.Rune) != 1 {
			return Class{}, fmt.Errorf("%s is not a single-character class", span)
		}
		if re.Flags&syntax.FoldCase != 0 {
			c = SetClass(foldOrbit(re.Rune[0])...)
		} else {
			c = RuneClass(re.Rune[0])
		}
	default:
		return Class{}, fmt.Errorf("%s is not a single-character class (%v)", span, re.Op)
	}
	c.text = span
	return c, nil
}

// foldOrbit returns r and every rune equivalent to it under simple case folding.
func foldOrbit(r rune) []rune {
	orbit := []rune{r}
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		orbit = append(orbit, f)
	}
	return orbit
}

// scanBracket returns the length of the bracket expression starting at
// p[i] == '[', or 0 if no well-formed span starts there. A span holds at
// least one unit, a unit being an escaped character or any character other
// than '[' and ']'.
func scanBracket(p []rune, i int) int {
	units := 0
	for j := i + 1; j < len(p); {
		switch p[j] {
		case '\\':
			if j+1 >= len(p) {
				return 0
			}
			j += 2
			units++
		case '[':
			return 0
		case ']':
			if units == 0 {
				return 0
			}
			return j - i + 1
		default:
			j++
			units++
		}
	}
	return 0
}
