// Command corepeg compiles and runs patterns of the corepeg regex dialect.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/coregx/corepeg/cmd/corepeg/cli"
)

func main() {
	if err := cli.Main().Execute(); err != nil {
		if !errors.Is(err, cli.ErrNoMatch) && !errors.Is(err, cli.ErrInvalidPattern) {
			fmt.Fprintln(os.Stderr, "corepeg:", err)
		}
		os.Exit(1)
	}
}
