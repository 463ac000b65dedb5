// Package main is the entry point for the mcpadd CLI.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/thoreinstein/mcpadd/cmd/mcpadd/commands"
	"github.com/thoreinstein/mcpadd/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		os.Exit(errors.ExitSuccess)
	}

	fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "%s %s\n", color.YellowString("Hint:"), exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}

	os.Exit(errors.ExitUser)
}
