package nfa

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented description of the fragment tree rooted at f,
// one fragment per line with its start and accept states.
func Dump(w io.Writer, f Fragment) error {
	return dump(w, f, 0)
}

func dump(w io.Writer, f Fragment, depth int) error {
	indent := strings.Repeat("  ", depth)
	label := f.Kind().String()
	switch v := f.(type) {
	case *Singleton:
		label += " " + v.Class().String()
	case *Repetition:
		if v.Nullable() {
			label += " *"
		} else {
			label += " +"
		}
	}
	if _, err := fmt.Fprintf(w, "%s%s start=%d accept=%v\n", indent, label, f.Start(), f.Accepts()); err != nil {
		return err
	}
	for _, c := range f.children() {
		if err := dump(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
