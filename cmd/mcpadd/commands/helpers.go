package commands

import (
	"encoding/json"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/thoreinstein/mcpadd/internal/errors"
	"github.com/thoreinstein/mcpadd/internal/paths"
	"github.com/thoreinstein/mcpadd/internal/target"
	"github.com/thoreinstein/mcpadd/internal/target/claude"
	"github.com/thoreinstein/mcpadd/internal/target/gemini"
	"github.com/thoreinstein/mcpadd/internal/target/opencode"
)

// resolveTargetName maps the target flags (and the config default) to a
// target identifier.
func resolveTargetName() string {
	switch {
	case useGemini:
		return paths.TargetGemini
	case useOpenCode:
		return paths.TargetOpenCode
	}
	if toolConfig != nil && toolConfig.DefaultTarget != "" {
		return toolConfig.DefaultTarget
	}
	return paths.TargetClaude
}

// newTarget constructs the adapter for a target identifier. The adapter is
// injected into the Dispatcher explicitly; there is no ambient target state.
func newTarget(name string, logger *slog.Logger) (target.Target, error) {
	switch name {
	case paths.TargetClaude:
		return claude.New(logger), nil
	case paths.TargetGemini:
		return gemini.New(logger), nil
	case paths.TargetOpenCode:
		return opencode.New(logger), nil
	}
	return nil, errors.Wrapf(paths.ErrUnknownTarget, "%q (valid: %s)",
		name, strings.Join(paths.Targets(), ", "))
}

// projectRoot returns the directory project and local scopes anchor to.
func projectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "getting working directory")
	}
	return cwd, nil
}

// parseKeyValueSlice parses a slice of KEY=VALUE strings into a map.
// Returns an error if any entry is malformed.
func parseKeyValueSlice(entries []string, flagName string) (map[string]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	result := make(map[string]string, len(entries))
	for _, entry := range entries {
		key, value, found := strings.Cut(entry, "=")
		if !found || key == "" {
			return nil, errors.Newf("invalid %s format %q: expected KEY=VALUE", flagName, entry)
		}
		result[key] = value
	}
	return result, nil
}

// registeredServers reads the server names present in a target's config
// file for a scope. A missing or unparsable file yields no names; this is a
// read-only convenience shared by list and edit.
func registeredServers(t target.Target, scope, root string) ([]string, string, error) {
	path, err := t.ConfigPath(scope, root)
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, path, nil
		}
		return nil, path, errors.Wrapf(err, "reading %s", path)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, path, nil
	}

	container, ok := doc[paths.ServerContainerKey(t.Name())]
	if !ok {
		return nil, path, nil
	}

	var servers map[string]json.RawMessage
	if err := json.Unmarshal(container, &servers); err != nil {
		return nil, path, nil
	}

	names := make([]string, 0, len(servers))
	for name := range servers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, path, nil
}
