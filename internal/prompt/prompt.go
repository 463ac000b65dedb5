// Package prompt provides the interactive forms used by the add workflow.
//
// Prompts only run on a terminal; in non-interactive contexts (pipes, CI,
// --force) callers receive the provided defaults unchanged.
package prompt

import (
	"github.com/charmbracelet/huh"

	"github.com/thoreinstein/mcpadd/internal/errors"
	"github.com/thoreinstein/mcpadd/internal/logging"
	"github.com/thoreinstein/mcpadd/internal/validate"
)

// Prompter asks the user for registration choices. Interactive is false in
// non-TTY contexts, in which case every method returns its default.
type Prompter struct {
	Interactive bool
}

// New returns a Prompter bound to the current terminal state.
func New() *Prompter {
	return &Prompter{Interactive: logging.StdinIsTTY()}
}

// ServerName asks for the server name, pre-filled with def. The input is
// validated with the same rule the dispatcher enforces.
func (p *Prompter) ServerName(def string) (string, error) {
	if !p.Interactive {
		return def, nil
	}

	name := def
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Server name").
			Description("1-64 characters: letters, digits, hyphen, underscore").
			Value(&name).
			Validate(func(s string) error {
				_, err := validate.ServerName(s)
				return err
			}),
	))
	if err := form.Run(); err != nil {
		return "", errors.Wrap(err, "prompting for server name")
	}
	return name, nil
}

// Scope asks which scope to register under, offering only the target's
// allowed set.
func (p *Prompter) Scope(targetName string, allowed []string, def string) (string, error) {
	if !p.Interactive {
		return def, nil
	}

	opts := make([]huh.Option[string], len(allowed))
	for i, s := range allowed {
		opts[i] = huh.NewOption(s, s)
	}

	scope := def
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Scope for " + targetName).
			Options(opts...).
			Value(&scope),
	))
	if err := form.Run(); err != nil {
		return "", errors.Wrap(err, "prompting for scope")
	}
	return scope, nil
}

// Confirm asks a yes/no question. Non-interactive contexts decline.
func (p *Prompter) Confirm(question string) (bool, error) {
	if !p.Interactive {
		return false, nil
	}

	ok := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(question).
			Value(&ok),
	))
	if err := form.Run(); err != nil {
		return false, errors.Wrap(err, "prompting for confirmation")
	}
	return ok, nil
}
