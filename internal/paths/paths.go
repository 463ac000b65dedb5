package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/mcpadd/internal/errors"
)

// Target identifiers for the supported AI assistant tools.
const (
	TargetClaude   = "claude"
	TargetGemini   = "gemini"
	TargetOpenCode = "opencode"
)

// Scope identifiers for registered server visibility.
const (
	// ScopeUser registers the server for the current user across all projects.
	ScopeUser = "user"

	// ScopeLocal registers the server for this project, unshared (Claude only).
	ScopeLocal = "local"

	// ScopeProject registers the server in a file shared with the project.
	ScopeProject = "project"
)

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrUnknownTarget indicates the target name is not recognized.
	ErrUnknownTarget = errors.New("unknown target")

	// ErrUnsupportedScope indicates the scope is not valid for the target.
	ErrUnsupportedScope = errors.New("unsupported scope for target")
)

// targetScopes maps each target to the scopes it accepts.
var targetScopes = map[string][]string{
	TargetClaude:   {ScopeUser, ScopeLocal, ScopeProject},
	TargetGemini:   {ScopeUser, ScopeProject},
	TargetOpenCode: {ScopeUser, ScopeProject},
}

// Targets returns all supported target identifiers in deterministic order.
func Targets() []string {
	return []string{TargetClaude, TargetGemini, TargetOpenCode}
}

// ValidTarget returns true if the target name is recognized.
func ValidTarget(target string) bool {
	_, ok := targetScopes[target]
	return ok
}

// AllowedScopes returns the scopes valid for the given target.
// Returns nil for unknown targets.
func AllowedScopes(target string) []string {
	return targetScopes[target]
}

// Home returns the user's home directory, or an empty string if it cannot
// be determined. Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
func ConfigHome() string {
	return xdg.ConfigHome
}

// ToolConfigDir returns the directory holding mcpadd's own configuration.
// Returns: <ConfigHome>/mcpadd/
func ToolConfigDir() string {
	return filepath.Join(ConfigHome(), "mcpadd")
}

// ConfigPath resolves the configuration file a target consults for the given
// scope. projectRoot is required for project and local scopes; pass the
// working directory for tools run from a project checkout.
//
// Conventions:
//   - claude/user:      ~/.claude.json
//   - claude/local:     <projectRoot>/.claude/settings.local.json
//   - claude/project:   <projectRoot>/.mcp.json
//   - gemini/user:      ~/.gemini/settings.json
//   - gemini/project:   <projectRoot>/.gemini/settings.json
//   - opencode/user:    <ConfigHome>/opencode/opencode.json
//   - opencode/project: <projectRoot>/opencode.json
func ConfigPath(target, scope, projectRoot string) (string, error) {
	if !ValidTarget(target) {
		return "", errors.Wrapf(ErrUnknownTarget, "%q", target)
	}

	switch target {
	case TargetClaude:
		switch scope {
		case ScopeUser:
			home, err := ResolveHome()
			if err != nil {
				return "", err
			}
			return filepath.Join(home, ".claude.json"), nil
		case ScopeLocal:
			return filepath.Join(projectRoot, ".claude", "settings.local.json"), nil
		case ScopeProject:
			return filepath.Join(projectRoot, ".mcp.json"), nil
		}

	case TargetGemini:
		switch scope {
		case ScopeUser:
			home, err := ResolveHome()
			if err != nil {
				return "", err
			}
			return filepath.Join(home, ".gemini", "settings.json"), nil
		case ScopeProject:
			return filepath.Join(projectRoot, ".gemini", "settings.json"), nil
		}

	case TargetOpenCode:
		switch scope {
		case ScopeUser:
			return filepath.Join(ConfigHome(), "opencode", "opencode.json"), nil
		case ScopeProject:
			return filepath.Join(projectRoot, "opencode.json"), nil
		}
	}

	return "", errors.Wrapf(ErrUnsupportedScope, "%s/%s", target, scope)
}

// ServerContainerKey returns the JSON key under which a target's config file
// stores its server map. Used by the read-only listing and the line-locating
// editor, which share the config-path convention but not the adapters.
func ServerContainerKey(target string) string {
	switch target {
	case TargetOpenCode:
		return "mcp"
	default:
		return "mcpServers"
	}
}
