// Command kaleidoc is the Kaleido language front end.
package main

import (
	"os"

	"github.com/you-not-fish/kaleido/cmd/kaleidoc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
