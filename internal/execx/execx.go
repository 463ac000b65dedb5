// Package execx runs external tools with argument vectors.
//
// Commands are always launched through the process-exec primitive with
// discrete argument strings; no shell is ever involved, so argument content
// cannot be reinterpreted as shell syntax.
package execx

import (
	"context"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/thoreinstein/mcpadd/internal/errors"
)

// ProbeTimeout bounds the capability probe run before a real invocation.
const ProbeTimeout = 5 * time.Second

// Result captures the outcome of a subprocess run.
type Result struct {
	// Output is the combined stdout and stderr.
	Output string

	// ExitCode is the process exit status; 0 on success.
	ExitCode int
}

// Run executes program with the given argument vector and captures combined
// output. A non-zero exit is not an error here; callers inspect ExitCode.
// Other failures (program missing, signal) are returned as errors.
func Run(ctx context.Context, program string, args ...string) (*Result, error) {
	return RunIn(ctx, "", program, args...)
}

// RunIn is Run with an explicit working directory. An empty dir inherits
// the caller's working directory.
func RunIn(ctx context.Context, dir, program string, args ...string) (*Result, error) {
	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	res := &Result{Output: string(out)}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return nil, errors.Wrapf(err, "running %s", program)
	}

	return res, nil
}

// Probe checks that the executable at path responds to --version within
// ProbeTimeout. A tool that hangs or fails the probe is treated as absent.
func Probe(path string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), ProbeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, "--version")
	return cmd.Run() == nil
}

// Discover locates an executable by name. PATH is searched first, then the
// provided conventional install directories in order. Returns the resolved
// path or an error naming everywhere that was searched.
func Discover(name string, extraDirs []string) (string, error) {
	if p, err := exec.LookPath(name); err == nil {
		return p, nil
	}

	for _, dir := range extraDirs {
		candidate := filepath.Join(dir, name)
		if p, err := exec.LookPath(candidate); err == nil {
			return p, nil
		}
	}

	searched := append([]string{"$PATH"}, extraDirs...)
	return "", errors.Newf("executable %q not found (searched %s)", name, strings.Join(searched, ", "))
}

// NVMBinDirs returns nvm-style versioned node bin directories under home,
// newest version last. Used by tools installed via npm under nvm.
func NVMBinDirs(home string) []string {
	pattern := filepath.Join(home, ".nvm", "versions", "node", "*", "bin")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil
	}
	sort.Strings(matches)
	return matches
}

// HasErrorIndicator reports whether combined tool output contains a
// case-insensitive error marker. Some CLIs exit zero while printing failures.
func HasErrorIndicator(output string) bool {
	lower := strings.ToLower(output)
	return strings.Contains(lower, "error") || strings.Contains(lower, "failed")
}
