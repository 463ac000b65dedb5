// Package opencode registers MCP servers by editing OpenCode's JSON config
// file directly. No external executable is involved.
//
// The write cycle is read, merge one entry, write back whole. A config file
// that fails to parse is renamed to a timestamped backup and replaced with a
// fresh document rather than surfaced as a fatal error. Concurrent writers
// are unguarded; the last writer wins.
package opencode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/thoreinstein/mcpadd/internal/errors"
	"github.com/thoreinstein/mcpadd/internal/paths"
	"github.com/thoreinstein/mcpadd/internal/spec"
	"github.com/thoreinstein/mcpadd/internal/target"
	"github.com/thoreinstein/mcpadd/pkg/fileutil"
)

// Adapter implements target.Target for OpenCode.
type Adapter struct {
	logger *slog.Logger
}

var _ target.Target = (*Adapter)(nil)

// New creates an OpenCode adapter.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{logger: logger}
}

// Name returns the target identifier.
func (a *Adapter) Name() string { return paths.TargetOpenCode }

// DisplayName returns the human-readable target name.
func (a *Adapter) DisplayName() string { return "OpenCode" }

// AllowedScopes returns the scopes OpenCode supports. There is no local scope.
func (a *Adapter) AllowedScopes() []string {
	return paths.AllowedScopes(paths.TargetOpenCode)
}

// DefaultRemoteTransport is informational only: OpenCode stores a type tag,
// not a transport.
func (a *Adapter) DefaultRemoteTransport() string { return spec.TransportHTTP }

// ConfigPath returns the config file OpenCode consults for a scope.
func (a *Adapter) ConfigPath(scope, projectRoot string) (string, error) {
	return paths.ConfigPath(paths.TargetOpenCode, scope, projectRoot)
}

// entryFor translates a canonical spec into OpenCode's entry shape.
func entryFor(sp *spec.ServerSpec) *ServerEntry {
	if sp.IsRemote() {
		return &ServerEntry{
			Type:    TypeRemote,
			Enabled: true,
			URL:     sp.URL,
		}
	}

	entry := &ServerEntry{
		Type:    TypeLocal,
		Enabled: true,
		Command: append([]string{sp.Command}, sp.Args...),
	}
	if len(sp.Env) > 0 {
		entry.Environment = sp.Env
	}
	return entry
}

// Plan returns the file path and JSON fragment Register would write.
func (a *Adapter) Plan(req *target.Request) (*target.Artifact, error) {
	path, err := a.ConfigPath(req.Scope, req.ProjectRoot)
	if err != nil {
		return nil, err
	}

	fragment, err := json.MarshalIndent(map[string]*ServerEntry{req.Name: entryFor(req.Spec)}, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshaling server entry")
	}

	return &target.Artifact{Path: path, Fragment: fragment}, nil
}

// Register inserts or overwrites the entry in OpenCode's config file.
// Overwriting an existing entry requires Force or a confirmed prompt.
func (a *Adapter) Register(_ context.Context, req *target.Request) error {
	path, err := a.ConfigPath(req.Scope, req.ProjectRoot)
	if err != nil {
		return err
	}

	cfg, err := a.load(path)
	if err != nil {
		return err
	}

	if _, exists := cfg.MCP[req.Name]; exists && !req.Force {
		ok := false
		if req.Confirm != nil {
			ok, err = req.Confirm(fmt.Sprintf("Server %q already exists in %s. Overwrite?", req.Name, path))
			if err != nil {
				return err
			}
		}
		if !ok {
			return target.ErrAborted
		}
	}

	cfg.MCP[req.Name] = entryFor(req.Spec)

	return a.save(path, cfg)
}

// load reads the config, tolerating absence and recovering from corrupt
// JSON by renaming the bad file to a timestamped backup.
func (a *Adapter) load(path string) (*ConfigFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewConfigFile(), nil
		}
		return nil, &target.ConfigFileError{Path: path, Err: err}
	}

	var cfg ConfigFile
	if err := json.Unmarshal(data, &cfg); err != nil {
		backup, backupErr := fileutil.BackupFile(path)
		if backupErr != nil {
			return nil, &target.ConfigFileError{Path: path, Err: backupErr}
		}
		a.logger.Warn("config file is not valid JSON; starting fresh",
			"path", path, "backup", backup, "parse_error", err)
		return NewConfigFile(), nil
	}

	if cfg.Schema == "" {
		cfg.Schema = SchemaURL
	}
	if cfg.MCP == nil {
		cfg.MCP = make(map[string]*ServerEntry)
	}

	return &cfg, nil
}

// save writes the whole document back with stable 2-space indentation.
func (a *Adapter) save(path string, cfg *ConfigFile) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &target.ConfigFileError{Path: path, Err: errors.Wrap(err, "creating directory")}
	}

	if err := fileutil.AtomicWriteJSON(path, cfg); err != nil {
		return &target.ConfigFileError{Path: path, Err: err}
	}

	return nil
}
