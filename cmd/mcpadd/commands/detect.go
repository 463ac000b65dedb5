package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcpadd/internal/detect"
	"github.com/thoreinstein/mcpadd/internal/errors"
	"github.com/thoreinstein/mcpadd/internal/validate"
)

func init() {
	rootCmd.AddCommand(detectCmd)
}

var detectCmd = &cobra.Command{
	Use:   "detect [dir]",
	Short: "Show what project the auto-detector sees",
	Long: `Inspect a directory (default: the working directory) the same way the
add command does, and print the project type, suggested server name, and the
launch command that would be registered. Nothing is built or registered.`,
	Example: `  mcpadd detect
  mcpadd detect ~/src/my-mcp-server`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDetect,
}

func runDetect(cmd *cobra.Command, args []string) error {
	logger := slog.Default()

	dir := ""
	if len(args) > 0 {
		dir = args[0]
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return errors.NewSystemError(err, "")
		}
		dir = cwd
	}

	project, err := detect.Detect(dir)
	if err != nil {
		if errors.Is(err, detect.ErrUnknownProject) {
			return errors.NewUserError(err,
				"supported markers: package.json, pyproject.toml, requirements.txt, go.mod")
		}
		return errors.NewUserError(err, "")
	}

	logger.Debug("detection complete", "dir", dir, "type", project.Type)

	out := cmd.OutOrStdout()
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", bold("Type:"), project.Type)
	fmt.Fprintf(out, "%s %s\n", bold("Name:"), project.Name)
	fmt.Fprintf(out, "%s %s %s\n", bold("Command:"),
		project.Spec.Command, validate.ShellJoin(project.Spec.Args))
	if project.NeedsBuild {
		fmt.Fprintf(out, "%s npm run build (before registration)\n", bold("Build:"))
	}
	return nil
}
