package commands

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcpadd/internal/errors"
)

var listAllScopes bool

func init() {
	listCmd.Flags().BoolVarP(&listAllScopes, "all", "a", false,
		"list every scope the target supports")
	listCmd.Flags().StringVar(&listScope, "scope", "user",
		"scope whose config file to list: user, local, project")
	rootCmd.AddCommand(listCmd)
}

var listScope string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List servers registered with the selected target",
	Long: `Read the selected target's configuration files and list the server
names registered there. This is a read-only view of the config files mcpadd
knows about; it does not invoke the target's own CLI.`,
	Example: `  mcpadd list
  mcpadd list --all
  mcpadd list --gemini --scope project`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	logger := slog.Default()

	t, err := newTarget(resolveTargetName(), logger)
	if err != nil {
		return errors.NewUserError(err, "valid targets: claude (default), --gemini, --opencode")
	}

	root, err := projectRoot()
	if err != nil {
		return errors.NewSystemError(err, "")
	}

	scopes := []string{listScope}
	if listAllScopes {
		scopes = t.AllowedScopes()
	}

	out := cmd.OutOrStdout()
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	total := 0
	for _, scope := range scopes {
		names, path, err := registeredServers(t, scope, root)
		if err != nil {
			return errors.NewUserError(err, "")
		}

		fmt.Fprintf(out, "%s %s %s\n", bold(t.DisplayName()), scope, dim("("+path+")"))
		if len(names) == 0 {
			fmt.Fprintf(out, "  %s\n", dim("(none)"))
			continue
		}
		for _, name := range names {
			fmt.Fprintf(out, "  %s\n", name)
		}
		total += len(names)
	}

	logger.Debug("listed servers", "target", t.Name(), "count", total)
	return nil
}
