// Package render turns planned registration artifacts into human-readable
// output for dry-run display and generate-command mode.
//
// Rendering never executes anything. Quoting here is for eyes and clipboards
// only; the actual subprocess launch always receives the raw argument vector.
package render

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/mcpadd/internal/target"
	"github.com/thoreinstein/mcpadd/internal/validate"
)

// Command renders a CLI artifact as a pasteable shell command string.
// For file artifacts it falls back to Describe.
func Command(a *target.Artifact) string {
	if a.Program == "" {
		return Describe(a)
	}
	return a.Program + " " + validate.ShellJoin(a.Args)
}

// Describe renders the artifact as a dry-run explanation of the side effect
// that would occur.
func Describe(a *target.Artifact) string {
	if a.Program != "" {
		return fmt.Sprintf("would run: %s %s", a.Program, validate.ShellJoin(a.Args))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "would update %s with:\n", a.Path)
	b.Write(a.Fragment)
	return b.String()
}

// Snippet renders the artifact in the form a user would paste: a shell
// command for CLI targets, a JSON fragment for the file target.
func Snippet(a *target.Artifact) string {
	if a.Program != "" {
		return Command(a)
	}
	return string(a.Fragment)
}
