// Package gemini registers MCP servers with the Gemini CLI.
//
// The gemini dialect takes the server name followed directly by the command
// and its arguments as trailing positionals; there is no embedded JSON. The
// scope flag is long-form only and omitted entirely for the default user
// scope. Remote transport defaults to http rather than sse.
package gemini

import (
	"context"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/thoreinstein/mcpadd/internal/execx"
	"github.com/thoreinstein/mcpadd/internal/paths"
	"github.com/thoreinstein/mcpadd/internal/spec"
	"github.com/thoreinstein/mcpadd/internal/target"
)

const (
	toolName    = "gemini"
	installHint = "install the Gemini CLI: npm install -g @google/gemini-cli"
)

// Adapter implements target.Target for the Gemini CLI.
type Adapter struct {
	logger *slog.Logger
}

var _ target.Target = (*Adapter)(nil)

// New creates a Gemini adapter.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{logger: logger}
}

// Name returns the target identifier.
func (a *Adapter) Name() string { return paths.TargetGemini }

// DisplayName returns the human-readable target name.
func (a *Adapter) DisplayName() string { return "Gemini CLI" }

// AllowedScopes returns the scopes the gemini CLI accepts. There is no
// local scope.
func (a *Adapter) AllowedScopes() []string {
	return paths.AllowedScopes(paths.TargetGemini)
}

// DefaultRemoteTransport returns the transport assumed for remote servers.
func (a *Adapter) DefaultRemoteTransport() string { return spec.TransportHTTP }

// ConfigPath returns the settings file Gemini consults for a scope.
func (a *Adapter) ConfigPath(scope, projectRoot string) (string, error) {
	return paths.ConfigPath(paths.TargetGemini, scope, projectRoot)
}

// Plan returns the argument vector Register would invoke.
func (a *Adapter) Plan(req *target.Request) (*target.Artifact, error) {
	return &target.Artifact{Program: toolName, Args: a.buildArgs(req)}, nil
}

// buildArgs builds the argv for either operation. The --scope flag is
// omitted for user scope, which is the CLI's default.
func (a *Adapter) buildArgs(req *target.Request) []string {
	args := []string{"mcp", "add"}

	if req.Spec.IsRemote() {
		args = append(args, "--transport", req.Spec.Transport)
		args = appendScope(args, req.Scope)
		return append(args, req.Name, req.Spec.URL)
	}

	args = appendScope(args, req.Scope)

	// Env pairs are sorted so repeated runs plan identical vectors.
	keys := make([]string, 0, len(req.Spec.Env))
	for k := range req.Spec.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "-e", k+"="+req.Spec.Env[k])
	}

	args = append(args, req.Name, req.Spec.Command)
	return append(args, req.Spec.Args...)
}

func appendScope(args []string, scope string) []string {
	if scope == paths.ScopeUser {
		return args
	}
	return append(args, "--scope", scope)
}

// Register invokes the gemini CLI with the planned argument vector.
func (a *Adapter) Register(ctx context.Context, req *target.Request) error {
	args := a.buildArgs(req)

	path, err := execx.Discover(toolName, conventionalDirs())
	if err != nil {
		return &target.ExecNotFoundError{Tool: toolName, Install: installHint}
	}
	if !execx.Probe(path) {
		return &target.ExecNotFoundError{Tool: toolName, Install: installHint}
	}

	a.logger.Debug("invoking gemini CLI", "path", path, "args", args)

	res, err := execx.Run(ctx, path, args...)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 || execx.HasErrorIndicator(res.Output) {
		return &target.ToolError{Tool: toolName, ExitCode: res.ExitCode, Output: res.Output}
	}

	return nil
}

// conventionalDirs lists install locations searched after PATH, including
// nvm-style versioned node directories.
func conventionalDirs() []string {
	home := paths.Home()
	dirs := []string{
		"/usr/local/bin",
		"/opt/homebrew/bin",
	}
	if home != "" {
		dirs = append(dirs, filepath.Join(home, ".local", "bin"))
		dirs = append(dirs, execx.NVMBinDirs(home)...)
	}
	return dirs
}
