// Package claude registers MCP servers with Claude Code by invoking the
// claude CLI.
//
// Local servers use the add-json dialect: the full server configuration is
// serialized to a single JSON argument. Remote servers use the add-with-
// transport dialect. Both pass every value as a discrete argument vector
// element; no shell is involved.
package claude

import (
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"

	"github.com/thoreinstein/mcpadd/internal/errors"
	"github.com/thoreinstein/mcpadd/internal/execx"
	"github.com/thoreinstein/mcpadd/internal/paths"
	"github.com/thoreinstein/mcpadd/internal/spec"
	"github.com/thoreinstein/mcpadd/internal/target"
)

const (
	toolName    = "claude"
	installHint = "install the Claude Code CLI: npm install -g @anthropic-ai/claude-code"
)

// Adapter implements target.Target for Claude Code.
type Adapter struct {
	logger *slog.Logger
}

var _ target.Target = (*Adapter)(nil)

// New creates a Claude adapter.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{logger: logger}
}

// Name returns the target identifier.
func (a *Adapter) Name() string { return paths.TargetClaude }

// DisplayName returns the human-readable target name.
func (a *Adapter) DisplayName() string { return "Claude Code" }

// AllowedScopes returns the scopes the claude CLI accepts.
func (a *Adapter) AllowedScopes() []string {
	return paths.AllowedScopes(paths.TargetClaude)
}

// DefaultRemoteTransport returns the transport assumed for remote servers.
func (a *Adapter) DefaultRemoteTransport() string { return spec.TransportSSE }

// ConfigPath returns the config file Claude Code consults for a scope.
func (a *Adapter) ConfigPath(scope, projectRoot string) (string, error) {
	return paths.ConfigPath(paths.TargetClaude, scope, projectRoot)
}

// jsonPayload is the add-json argument shape. Field order is fixed so the
// rendered command is stable.
type jsonPayload struct {
	Command     string            `json:"command"`
	Args        []string          `json:"args"`
	Env         map[string]string `json:"env,omitempty"`
	Cwd         string            `json:"cwd,omitempty"`
	Description string            `json:"description,omitempty"`
}

// Plan returns the argument vector Register would invoke.
func (a *Adapter) Plan(req *target.Request) (*target.Artifact, error) {
	args, err := a.buildArgs(req)
	if err != nil {
		return nil, err
	}
	return &target.Artifact{Program: toolName, Args: args}, nil
}

// buildArgs builds the argv for either dialect. Every value is one discrete
// element; nothing is concatenated into shell-interpreted text.
func (a *Adapter) buildArgs(req *target.Request) ([]string, error) {
	if req.Spec.IsRemote() {
		return []string{"mcp", "add", "--transport", req.Spec.Transport, req.Name, req.Spec.URL}, nil
	}

	payload := jsonPayload{
		Command:     req.Spec.Command,
		Args:        req.Spec.Args,
		Env:         req.Spec.Env,
		Cwd:         req.Spec.WorkingDir,
		Description: req.Spec.Description,
	}
	if payload.Args == nil {
		payload.Args = []string{}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling server JSON")
	}

	return []string{"mcp", "add-json", req.Name, string(data), "-s", req.Scope}, nil
}

// Register invokes the claude CLI with the planned argument vector.
func (a *Adapter) Register(ctx context.Context, req *target.Request) error {
	args, err := a.buildArgs(req)
	if err != nil {
		return err
	}

	path, err := execx.Discover(toolName, conventionalDirs())
	if err != nil {
		return &target.ExecNotFoundError{Tool: toolName, Install: installHint}
	}
	if !execx.Probe(path) {
		return &target.ExecNotFoundError{Tool: toolName, Install: installHint}
	}

	a.logger.Debug("invoking claude CLI", "path", path, "args", args)

	res, err := execx.Run(ctx, path, args...)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 || execx.HasErrorIndicator(res.Output) {
		return &target.ToolError{Tool: toolName, ExitCode: res.ExitCode, Output: res.Output}
	}

	return nil
}

// conventionalDirs lists install locations searched after PATH.
func conventionalDirs() []string {
	home := paths.Home()
	dirs := []string{
		"/usr/local/bin",
		"/opt/homebrew/bin",
	}
	if home != "" {
		dirs = append(dirs,
			filepath.Join(home, ".claude", "local"),
			filepath.Join(home, ".local", "bin"),
		)
	}
	return dirs
}
