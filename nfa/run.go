package nfa

import (
	"errors"
	"io"
	"strings"
)

// Input is the character source consumed by Run.
// Besides reading it must take back the one character that had no
// transition.
type Input interface {
	io.RuneReader

	// Unread pushes r back so that the next ReadRune returns it.
	Unread(r rune) error
}

// ConditionResult is the outcome of one trial run.
//
// Scanned holds every character consumed, also when Matched is false: the
// caller owns that text and must push all of it back to undo the trial.
type ConditionResult struct {
	Scanned string
	Matched bool
}

// Run consumes the longest prefix of in that keeps at least one transition
// alive and reports whether the automaton accepts at that point.
//
// The scan is a single greedy forward pass: it never retries a shorter
// prefix, so a dead end after an accepting prefix yields Matched == false.
// Reaching the end of input stops the scan normally. Read errors other than
// io.EOF are returned together with the text scanned so far.
func (n *NFA) Run(in Input) (ConditionResult, error) {
	var scanned strings.Builder
	root := n.root
	states := NewStateSet(root.Start())
	closeOver(root, states)
	next := NewStateSet()

	for !states.IsEmpty() {
		r, _, err := in.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return ConditionResult{Scanned: scanned.String()}, err
		}

		next.Clear()
		for i := 0; i < states.Len(); i++ {
			root.Transit(states.at(i), r, next)
		}
		if next.IsEmpty() {
			if err := in.Unread(r); err != nil {
				return ConditionResult{Scanned: scanned.String()}, err
			}
			break
		}
		scanned.WriteRune(r)
		closeOver(root, next)
		states, next = next, states
	}

	return ConditionResult{
		Scanned: scanned.String(),
		Matched: IsAccept(root, states),
	}, nil
}
