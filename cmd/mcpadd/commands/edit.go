package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcpadd/internal/editor"
	"github.com/thoreinstein/mcpadd/internal/errors"
	"github.com/thoreinstein/mcpadd/internal/logging"
)

var editScope string

func init() {
	editCmd.Flags().StringVar(&editScope, "scope", "user",
		"scope whose config file to open: user, local, project")
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit [name]",
	Short: "Open a target's config file in your editor",
	Long: `Open the selected target's configuration file for a scope in your
editor. When a server name is given (or picked from the fuzzy finder), the
editor is positioned at that server's entry.

Editor resolution: the "editor" key in mcpadd's own config, then $EDITOR,
then $VISUAL, then nano, then vi.`,
	Example: `  mcpadd edit
  mcpadd edit github
  mcpadd edit --gemini --scope project
  mcpadd edit memory --oc`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	logger := slog.Default()

	t, err := newTarget(resolveTargetName(), logger)
	if err != nil {
		return errors.NewUserError(err, "valid targets: claude (default), --gemini, --opencode")
	}

	root, err := projectRoot()
	if err != nil {
		return errors.NewSystemError(err, "")
	}

	names, path, err := registeredServers(t, editScope, root)
	if err != nil {
		return errors.NewUserError(err, "")
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	} else if len(names) > 0 && logging.StdinIsTTY() {
		idx, err := fuzzyfinder.Find(names, func(i int) string { return names[i] })
		switch {
		case errors.Is(err, fuzzyfinder.ErrAbort):
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		case err != nil:
			return errors.NewSystemError(err, "")
		}
		name = names[idx]
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Warn("config file does not exist yet", "path", path)
	}

	line := 0
	if name != "" {
		line = editor.LocateEntry(path, name)
		if line == 0 {
			logger.Warn("server not found in config file", "name", name, "path", path)
		}
	}

	editorCmd := ""
	if toolConfig != nil {
		editorCmd = toolConfig.Editor
	}

	if err := editor.OpenAtWith(editorCmd, path, line); err != nil {
		return errors.NewSystemError(err, "set $EDITOR to a working editor command")
	}
	return nil
}
