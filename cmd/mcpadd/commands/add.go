package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcpadd/internal/clip"
	"github.com/thoreinstein/mcpadd/internal/detect"
	"github.com/thoreinstein/mcpadd/internal/errors"
	"github.com/thoreinstein/mcpadd/internal/prompt"
	"github.com/thoreinstein/mcpadd/internal/render"
	"github.com/thoreinstein/mcpadd/internal/spec"
	"github.com/thoreinstein/mcpadd/internal/target"
	"github.com/thoreinstein/mcpadd/internal/validate"
)

// Flag variables for the add command.
var (
	addJSON      string
	addFile      string
	addClipboard bool
	addURL       string
	addName      string
	addScope     string
	addTransport string
	addEnv       []string
	addForce     bool
	addDryRun    bool
	addGenerate  bool
	addNoBuild   bool
	addCwd       string
)

func init() {
	addCmd.Flags().StringVar(&addJSON, "json", "",
		"server configuration as a JSON string")
	addCmd.Flags().StringVar(&addFile, "file", "",
		"read server configuration JSON from a file")
	addCmd.Flags().BoolVar(&addClipboard, "clipboard", false,
		"read server configuration JSON from the clipboard")
	addCmd.Flags().StringVar(&addURL, "url", "",
		"register a remote server at this endpoint")
	addCmd.Flags().StringVar(&addName, "name", "",
		"server name (defaults to a name derived from the input)")
	addCmd.Flags().StringVar(&addScope, "scope", "",
		"registration scope: user, local, project (target-dependent)")
	addCmd.Flags().StringVar(&addTransport, "transport", "",
		"remote transport: sse, http (default per target)")
	addCmd.Flags().StringSliceVar(&addEnv, "env", nil,
		"environment variables in KEY=VALUE format (repeatable)")
	addCmd.Flags().BoolVarP(&addForce, "force", "f", false,
		"skip prompts and overwrite existing entries")
	addCmd.Flags().BoolVar(&addDryRun, "dry-run", false,
		"show what would happen without doing it")
	addCmd.Flags().BoolVar(&addGenerate, "generate-command", false,
		"print the registration artifact and copy it to the clipboard")
	addCmd.Flags().BoolVar(&addNoBuild, "no-build", false,
		"skip the project build step before registration")
	addCmd.Flags().StringVar(&addCwd, "cwd", "",
		"working directory recorded for a local server")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Register an MCP server with the selected target",
	Long: `Register an MCP server with Claude Code (default), the Gemini CLI
(--gemini), or OpenCode (--opencode).

The server configuration comes from one input source:

  --json        a JSON string (bare object or {"name": {...}} wrapper)
  --file        a file containing that JSON
  --clipboard   the system clipboard
  --url         a remote endpoint, no JSON needed
  (default)     auto-detection of the project in the working directory

Claude and Gemini registrations invoke the tool's own CLI with a discrete
argument vector. OpenCode registrations read-merge-write its config file.`,
	Example: `  mcpadd add
  mcpadd add my-tool --json '{"command":"npx","args":["-y","tool"]}'
  mcpadd add docs --url https://gitmcp.io/docs --gemini
  mcpadd add --clipboard --oc --scope project
  mcpadd add --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	logger := slog.Default()

	t, err := newTarget(resolveTargetName(), logger)
	if err != nil {
		return errors.NewUserError(err, "valid targets: claude (default), --gemini, --opencode")
	}

	sp, err := resolveSpec(cmd, logger)
	if err != nil {
		return err
	}

	envMap, err := parseKeyValueSlice(addEnv, "--env")
	if err != nil {
		return errors.NewUserError(err, "use --env KEY=VALUE")
	}
	for k, v := range envMap {
		if sp.Env == nil {
			sp.Env = map[string]string{}
		}
		sp.Env[k] = v
	}
	if addTransport != "" {
		sp.Transport = addTransport
	}
	if addCwd != "" {
		sp.WorkingDir = addCwd
	}

	root, err := projectRoot()
	if err != nil {
		return errors.NewSystemError(err, "")
	}

	p := prompt.New()
	if addForce || addDryRun || addGenerate {
		p.Interactive = false
	}

	name := addName
	if name == "" && len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		name = sp.SuggestedName
	}
	if name, err = p.ServerName(name); err != nil {
		return errors.NewUserError(err, "")
	}

	scope := addScope
	if scope == "" && toolConfig != nil {
		scope = toolConfig.DefaultScope
	}
	if p.Interactive && addScope == "" {
		if scope, err = p.Scope(t.DisplayName(), t.AllowedScopes(), scope); err != nil {
			return errors.NewUserError(err, "")
		}
	}

	req := &target.Request{
		Spec:        sp,
		Name:        name,
		Scope:       scope,
		ProjectRoot: root,
		Force:       addForce,
		Confirm:     p.Confirm,
	}

	d := target.NewDispatcher(t, logger)

	if addDryRun {
		artifact, err := d.Plan(req)
		if err != nil {
			return errors.NewUserError(err, "")
		}
		fmt.Fprintln(cmd.OutOrStdout(), render.Describe(artifact))
		return nil
	}

	if addGenerate {
		artifact, err := d.Plan(req)
		if err != nil {
			return errors.NewUserError(err, "")
		}
		snippet := render.Snippet(artifact)
		fmt.Fprintln(cmd.OutOrStdout(), snippet)
		if err := clip.Write(snippet); err != nil {
			logger.Warn("could not copy to clipboard", "error", err)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Copied to clipboard."))
		}
		return nil
	}

	res := d.Register(cmd.Context(), req)
	if !res.OK() {
		if errors.Is(res.Err, target.ErrAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted; existing entry left unchanged.")
			return nil
		}
		for _, hint := range res.Hints {
			fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", hint)
		}
		return exitErrorFor(res.Err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Registered %q with %s (scope: %s)\n",
		color.GreenString("✓"), req.Name, t.DisplayName(), req.Scope)
	return nil
}

// resolveSpec obtains the server spec from the chosen input source.
func resolveSpec(cmd *cobra.Command, logger *slog.Logger) (*spec.ServerSpec, error) {
	sources := 0
	for _, set := range []bool{addJSON != "", addFile != "", addClipboard, addURL != ""} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return nil, errors.NewUserError(
			errors.New("multiple input sources given"),
			"use exactly one of --json, --file, --clipboard, --url")
	}

	if addURL != "" {
		if _, err := validate.URL(addURL); err != nil {
			return nil, errors.NewUserError(err, "URLs must start with http:// or https://")
		}
		return &spec.ServerSpec{
			Kind:        spec.KindRemote,
			URL:         addURL,
			Description: "URL-based MCP server: " + addURL,
		}, nil
	}

	var raw string
	switch {
	case addJSON != "":
		raw = addJSON
	case addFile != "":
		data, err := os.ReadFile(addFile)
		if err != nil {
			return nil, errors.NewUserError(err, "check the --file path")
		}
		raw = string(data)
	case addClipboard:
		text, err := clip.Read()
		if err != nil {
			return nil, errors.NewUserError(err, "copy the server JSON first")
		}
		raw = text
	default:
		return detectSpec(cmd, logger)
	}

	sp, err := spec.Normalize(raw, "")
	if err != nil {
		return nil, errors.NewUserError(err, "input must be a JSON object with a command or url")
	}
	return sp, nil
}

// detectSpec derives the spec from the project in the working directory,
// building it first when the project needs that.
func detectSpec(cmd *cobra.Command, logger *slog.Logger) (*spec.ServerSpec, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.NewSystemError(err, "")
	}

	project, err := detect.Detect(cwd)
	if err != nil {
		return nil, errors.NewUserError(err,
			"run inside a project directory, or pass --json/--file/--clipboard/--url")
	}

	logger.Info("detected project", "type", project.Type, "name", project.Name)

	if project.NeedsBuild && !addNoBuild && !addDryRun && !addGenerate {
		if err := detect.Build(cmd.Context(), logger, project); err != nil {
			return nil, errors.NewSystemError(err, "fix the build or pass --no-build")
		}
	}

	return project.Spec, nil
}

// exitErrorFor maps adapter failures to exit codes: validation and parse
// problems are user errors, tool and file failures are system errors.
func exitErrorFor(err error) error {
	var vErr *validate.ValidationError
	var pErr *spec.ParseError
	if errors.As(err, &vErr) || errors.As(err, &pErr) {
		return errors.NewExitError(err, errors.ExitUser)
	}

	var notFound *target.ExecNotFoundError
	if errors.As(err, &notFound) {
		return errors.NewUserError(err, notFound.Install)
	}

	return errors.NewExitError(err, errors.ExitSystem)
}
