// Package commands implements the CLI commands for mcpadd.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcpadd/internal/config"
	"github.com/thoreinstein/mcpadd/internal/errors"
	"github.com/thoreinstein/mcpadd/internal/logging"
)

// version is set at build time via ldflags.
// Default to a development version for local builds.
const version = "0.1.0"

// Persistent flag variables.
var (
	useGemini   bool
	useOpenCode bool
	verbosity   int
	quiet       bool
	logFormat   string
	logFile     string
)

// toolConfig holds the loaded defaults file; configLoadErr any load failure.
var (
	toolConfig    *config.Config
	configLoadErr error
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVar(&useGemini, "gemini", false,
		"register with the Gemini CLI instead of Claude Code")
	rootCmd.PersistentFlags().BoolVar(&useOpenCode, "opencode", false,
		"register with OpenCode instead of Claude Code")
	rootCmd.PersistentFlags().BoolVar(&useOpenCode, "oc", false,
		"shorthand for --opencode")
	_ = rootCmd.PersistentFlags().MarkHidden("oc")

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("mcpadd version {{.Version}}\n")

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	toolConfig, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "mcpadd",
	Short: "Register MCP servers with AI assistant tools",
	Long: `mcpadd detects a local project's type, derives a runnable launch
command for it, and registers that command as an MCP server with Claude
Code, the Gemini CLI, or OpenCode.

Claude and Gemini registrations invoke the respective tool's own CLI;
OpenCode registrations edit its JSON config file directly. Input can come
from project auto-detection, a JSON string, a file, or the clipboard.`,
	Example: `  # Auto-detect the current project and register it with Claude Code
  mcpadd add

  # Register a JSON config with the Gemini CLI
  mcpadd add --gemini --json '{"command":"npx","args":["-y","tool"]}'

  # Preview what would happen
  mcpadd add --dry-run

  # Jump to a registered server in OpenCode's config file
  mcpadd edit github --oc`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		if configLoadErr != nil {
			return errors.NewUserError(configLoadErr, "check "+config.AppName+" config.yaml syntax")
		}
		if useGemini && useOpenCode {
			return errors.NewUserError(errors.New("cannot combine --gemini and --opencode"),
				"pick exactly one target")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		level = logging.LevelFromVerbosity(verbosity)
	}

	opts := &slog.HandlerOptions{Level: level}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(ctx)

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
