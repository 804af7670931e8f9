package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/arthur-debert/cupidconf/cmd/cupidconf"
	"github.com/arthur-debert/cupidconf/pkg/output/styles"
)

func main() {
	rootCmd := cupidconf.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// A negative check result was already printed; just carry the
		// exit status.
		if !errors.Is(err, cupidconf.ErrNoMatch) {
			errorStyle := styles.ErrorStyle
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(1)
	}
}
