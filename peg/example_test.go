package peg_test

import (
	"fmt"
	"strconv"

	"github.com/coregx/corepeg/peg"
)

func Example() {
	g := peg.New[int]()
	number := g.Action(`[0-9]+`, func(text string, sum int) int {
		n, _ := strconv.Atoi(text)
		return sum + n
	})
	sum := g.Then(number, g.ZeroOrMore(g.Then(g.MustRegex(`\+`), number)))

	res, ok, err := g.MatchString(sum, "10+20+12 rest", 0)
	fmt.Println(res.Index, res.Attr, ok, err)
	// Output: 8 42 true <nil>
}

func ExampleGrammar_Letrec() {
	g := peg.New[int]()
	brackets := g.Letrec(func(self peg.Parser[int]) peg.Parser[int] {
		return g.Cond("<", g.Then(g.MustRegex("<"), self, g.MustRegex(">"))).
			OrElse(g.Success())
	})

	for _, s := range []string{"<<<>>>", "<<>>>", "<<<>>"} {
		res, ok, _ := g.MatchString(brackets, s, 0)
		fmt.Println(s, res.Index, ok)
	}
	// Output:
	// <<<>>> 6 true
	// <<>>> 4 true
	// <<<>> 0 false
}

func ExampleGrammar_Cond() {
	g := peg.New[string]()
	kind := func(k string) func(string, string) string {
		return func(string, string) string { return k }
	}
	token := g.Cond(`[0-9]`, g.Action(`[0-9]+`, kind("number"))).
		OrElseIf(`[a-z]`, g.Action(`[a-z]+`, kind("word"))).
		OrElse(g.Fail())

	for _, s := range []string{"42", "abc", "?"} {
		res, ok, _ := g.MatchString(token, s, "")
		fmt.Printf("%q %s %v\n", s, res.Attr, ok)
	}
	// Output:
	// "42" number true
	// "abc" word true
	// "?"  false
}

func ExampleGrammar_Times() {
	g := peg.New[int]()
	p := g.Times(1, 3, g.MustRegex("27"))

	res, ok, _ := g.MatchString(p, "27272727", 0)
	fmt.Println(res.Index, ok)
	// Output: 6 true
}
