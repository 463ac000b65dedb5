// Package detect derives a runnable launch configuration from the files a
// project directory contains. Detection is file-existence based and fully
// deterministic; it produces a ready-made local server spec for the add
// workflow to register.
package detect

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/mcpadd/internal/errors"
	"github.com/thoreinstein/mcpadd/internal/spec"
)

// Project types recognized by detection.
const (
	TypeNode       = "node"
	TypeTypeScript = "typescript"
	TypePython     = "python"
	TypeGo         = "go"
)

// ErrUnknownProject indicates no recognized project marker file was found.
var ErrUnknownProject = errors.New("unable to detect project type")

// Project describes a detected project and the launch spec derived from it.
type Project struct {
	// Type is one of the Type* constants.
	Type string

	// Name is the project name, taken from its manifest where available and
	// otherwise from the directory name.
	Name string

	// Dir is the project root that was inspected.
	Dir string

	// NeedsBuild is true when a build step must succeed before the derived
	// command can run (TypeScript projects with a build script).
	NeedsBuild bool

	// Spec is the derived local launch configuration.
	Spec *spec.ServerSpec
}

// packageJSON is the subset of package.json detection consumes.
type packageJSON struct {
	Name    string            `json:"name"`
	Main    string            `json:"main"`
	Scripts map[string]string `json:"scripts"`
}

// Detect inspects dir and derives a launch configuration.
// Marker precedence: package.json, pyproject.toml/requirements.txt, go.mod.
func Detect(dir string) (*Project, error) {
	if fileExists(filepath.Join(dir, "package.json")) {
		return detectNode(dir)
	}
	if fileExists(filepath.Join(dir, "pyproject.toml")) || fileExists(filepath.Join(dir, "requirements.txt")) {
		return detectPython(dir)
	}
	if fileExists(filepath.Join(dir, "go.mod")) {
		return detectGo(dir)
	}
	return nil, errors.Wrapf(ErrUnknownProject, "no project marker found in %s", dir)
}

func detectNode(dir string) (*Project, error) {
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return nil, errors.Wrap(err, "reading package.json")
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, errors.Wrap(err, "parsing package.json")
	}

	name := pkg.Name
	if name == "" {
		name = filepath.Base(dir)
	}

	typ := TypeNode
	entry := pkg.Main
	needsBuild := false
	if fileExists(filepath.Join(dir, "tsconfig.json")) {
		typ = TypeTypeScript
		_, needsBuild = pkg.Scripts["build"]
		// Compiled output is the runnable artifact for TypeScript projects.
		if entry == "" || strings.HasSuffix(entry, ".ts") {
			entry = "dist/index.js"
		}
	}
	if entry == "" {
		entry = "index.js"
	}

	return &Project{
		Type:       typ,
		Name:       name,
		Dir:        dir,
		NeedsBuild: needsBuild,
		Spec: &spec.ServerSpec{
			Kind:          spec.KindLocal,
			Command:       "node",
			Args:          []string{filepath.Join(dir, entry)},
			Env:           map[string]string{},
			Description:   name + " MCP server (detected " + typ + " project)",
			SuggestedName: suggestName(name),
		},
	}, nil
}

func detectPython(dir string) (*Project, error) {
	name := filepath.Base(dir)

	var args []string
	for _, entry := range []string{"server.py", "main.py", "__main__.py"} {
		if fileExists(filepath.Join(dir, entry)) {
			args = []string{filepath.Join(dir, entry)}
			break
		}
	}
	if args == nil {
		// Fall back to running the directory's module.
		args = []string{"-m", strings.ReplaceAll(name, "-", "_")}
	}

	return &Project{
		Type: TypePython,
		Name: name,
		Dir:  dir,
		Spec: &spec.ServerSpec{
			Kind:          spec.KindLocal,
			Command:       "python3",
			Args:          args,
			Env:           map[string]string{},
			WorkingDir:    dir,
			Description:   name + " MCP server (detected python project)",
			SuggestedName: suggestName(name),
		},
	}, nil
}

func detectGo(dir string) (*Project, error) {
	name := filepath.Base(dir)

	return &Project{
		Type: TypeGo,
		Name: name,
		Dir:  dir,
		Spec: &spec.ServerSpec{
			Kind:          spec.KindLocal,
			Command:       "go",
			Args:          []string{"run", "."},
			Env:           map[string]string{},
			WorkingDir:    dir,
			Description:   name + " MCP server (detected go project)",
			SuggestedName: suggestName(name),
		},
	}, nil
}

// suggestName reduces a project name to the legal server-name alphabet.
// Scoped npm names like @org/server-foo become server-foo.
func suggestName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	s := strings.Trim(b.String(), "-")
	if len(s) > 64 {
		s = s[:64]
	}
	return s
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
