package nfa

import (
	"errors"
	"io"
	"slices"
	"strings"
	"testing"
	"unicode/utf8"
)

// stringInput is a minimal Input over an in-memory string.
type stringInput struct {
	runes []rune
	pos   int
}

func newStringInput(s string) *stringInput {
	return &stringInput{runes: []rune(s)}
}

func (in *stringInput) ReadRune() (rune, int, error) {
	if in.pos >= len(in.runes) {
		return 0, 0, io.EOF
	}
	r := in.runes[in.pos]
	in.pos++
	return r, utf8.RuneLen(r), nil
}

func (in *stringInput) Unread(r rune) error {
	if in.pos == 0 || in.runes[in.pos-1] != r {
		return errors.New("unread mismatch")
	}
	in.pos--
	return nil
}

func (in *stringInput) rest() string {
	return string(in.runes[in.pos:])
}

func TestRun(t *testing.T) {
	tests := []struct {
		pattern     string
		input       string
		wantScanned string
		wantMatched bool
	}{
		{"765", "765", "765", true},
		{"765", "961", "", false},
		{"765", "", "", false},
		{"765", "76x", "76", false},
		{"a*", "ab", "a", true},
		{"a*", "aaab", "aaa", true},
		{"a*", "b", "", true},
		{"a+", "ab", "a", true},
		{"a+", "aaab", "aaa", true},
		{"a+", "b", "", false},
		{"ab+", "abb", "abb", true},
		{"ab+", "abab", "ab", true},
		{"765|346", "765", "765", true},
		{"765|346", "346", "346", true},
		{"765|346", "961", "", false},
		{"765|346", "", "", false},
		{".", "a", "a", true},
		{".", "\n", "", false},
		{".", "", "", false},
		{`[a-zA-Z\[\]]`, "i", "i", true},
		{`[a-zA-Z\[\]]`, "Z", "Z", true},
		{`[a-zA-Z\[\]]`, "[", "[", true},
		{`[a-zA-Z\[\]]`, "]", "]", true},
		{`[a-zA-Z\[\]]`, "1", "", false},
		{"(7|3)o", "7o", "7o", true},
		{"(7|3)o", "3o", "3o", true},
		{"(7|3)pro", "9o", "", false},
		{"(ab)*", "ab", "ab", true},
		{"(ab)*", "ababab", "ababab", true},
		{"(ab)*", "b", "", true},
		{"(ab)+", "ab", "ab", true},
		{"(ab)+", "b", "", false},
		{"(ab)+", "abbb", "ab", true},
		{"(ab)+", "aba", "aba", false},
		{"a||b", "c", "", true},
		{"x(a|)y", "xy", "xy", true},
		{"x(a|)y", "xay", "xay", true},
		{"a*b*c", "c", "c", true},
		{"a*b*c", "aabbc", "aabbc", true},
		{"(a*)*b", "aab", "aab", true},
		{"é+", "ééx", "éé", true},
		{`a\*`, "a*", "a*", true},
		{`a\nb`, "a\nb", "a\nb", true},
		{"a[b", "a[b", "a[b", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			n, err := Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile(%q) error: %v", tt.pattern, err)
			}
			in := newStringInput(tt.input)
			got, err := n.Run(in)
			if err != nil {
				t.Fatalf("Run error: %v", err)
			}
			if got.Scanned != tt.wantScanned || got.Matched != tt.wantMatched {
				t.Errorf("Run(%q) = {%q, %v}, want {%q, %v}",
					tt.input, got.Scanned, got.Matched, tt.wantScanned, tt.wantMatched)
			}
			// everything not scanned is still readable
			wantRest := tt.input[len(got.Scanned):]
			if in.rest() != wantRest {
				t.Errorf("unread input = %q, want %q", in.rest(), wantRest)
			}
		})
	}
}

func TestRun_DotNewline(t *testing.T) {
	n, err := NewCompiler(CompilerConfig{DotNewline: true}).Compile(".")
	if err != nil {
		t.Fatal(err)
	}
	got, err := n.Run(newStringInput("\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Matched || got.Scanned != "\n" {
		t.Errorf("'.' with DotNewline on \\n = %+v, want match", got)
	}
}

type failingInput struct {
	stringInput
	err error
}

func (in *failingInput) ReadRune() (rune, int, error) {
	if in.pos >= len(in.runes) {
		return 0, 0, in.err
	}
	return in.stringInput.ReadRune()
}

func TestRun_ReadError(t *testing.T) {
	errBroken := errors.New("broken pipe")
	in := &failingInput{stringInput: *newStringInput("ab"), err: errBroken}

	got, err := MustCompile("a*b*c").Run(in)
	if !errors.Is(err, errBroken) {
		t.Fatalf("Run error = %v, want %v", err, errBroken)
	}
	if got.Scanned != "ab" {
		t.Errorf("Scanned = %q, want %q", got.Scanned, "ab")
	}
}

func TestRun_Reuse(t *testing.T) {
	n := MustCompile("(ab)+")
	for i := 0; i < 3; i++ {
		got, err := n.Run(newStringInput("ababx"))
		if err != nil {
			t.Fatal(err)
		}
		if got.Scanned != "abab" || !got.Matched {
			t.Fatalf("run %d = %+v", i, got)
		}
	}
}

func TestRun_AllocationsDoNotGrowWithInput(t *testing.T) {
	n := MustCompile("(a|b(c|d)*)*e")
	short := "abcdab" + "e"
	long := strings.Repeat("abcdab", 500) + "e"

	allocs := func(s string) float64 {
		return testing.AllocsPerRun(20, func() {
			res, err := n.Run(newStringInput(s))
			if err != nil || !res.Matched {
				t.Fatalf("Run(%q...) = %+v, %v", s[:7], res, err)
			}
		})
	}
	a, b := allocs(short), allocs(long)
	// only the scanned text may grow, by doubling
	if b > a+40 {
		t.Errorf("allocations per Run: %v for %d runes, %v for %d runes", a, len(short), b, len(long))
	}
}

// iteratedClosure applies EpsilonSet to fresh sets until nothing changes.
func iteratedClosure(f Fragment, states *StateSet) *StateSet {
	cur := states
	for {
		next := NewStateSet()
		EpsilonSet(f, cur, next)
		if next.Equal(cur) {
			return next
		}
		cur = next
	}
}

func TestClosure_SameAsIteratedPasses(t *testing.T) {
	for _, p := range []string{"(a|b)*c", "x(a|)y", "((a*)*|b)+", "(a|(b|c*)*)*d", "a*b*c*", "(()|a)*"} {
		root := MustCompile(p).Root()
		for s := StateID(0); root.Owns(s); s++ {
			want := iteratedClosure(root, NewStateSet(s)).Sorted()
			got := Closure(root, NewStateSet(s)).Sorted()
			if !slices.Equal(got, want) {
				t.Errorf("%q state %d: Closure = %v, want %v", p, s, got, want)
			}
		}
	}
}
