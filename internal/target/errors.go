package target

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/mcpadd/internal/errors"
)

// ErrAborted indicates the user declined to overwrite an existing entry.
var ErrAborted = errors.New("registration aborted")

// ExecNotFoundError indicates a CLI target's executable could not be located.
type ExecNotFoundError struct {
	// Tool is the executable name that was searched for.
	Tool string

	// Install is a short installation instruction for the user.
	Install string
}

func (e *ExecNotFoundError) Error() string {
	return fmt.Sprintf("%s executable not found", e.Tool)
}

// ToolError indicates the external tool ran but reported failure, either via
// a non-zero exit or an error indicator in its output.
type ToolError struct {
	// Tool is the executable that was invoked.
	Tool string

	// ExitCode is the subprocess exit status.
	ExitCode int

	// Output is the captured combined stdout/stderr.
	Output string
}

func (e *ToolError) Error() string {
	out := strings.TrimSpace(e.Output)
	if out == "" {
		return fmt.Sprintf("%s exited with code %d", e.Tool, e.ExitCode)
	}
	return fmt.Sprintf("%s failed (exit %d): %s", e.Tool, e.ExitCode, out)
}

// ConfigFileError indicates the file-writing target could not create or
// write its configuration file. Corrupt JSON is not reported through this
// type; that case is recovered locally by backing up the bad file.
type ConfigFileError struct {
	// Path is the config file involved.
	Path string

	// Err is the underlying failure.
	Err error
}

func (e *ConfigFileError) Error() string {
	return fmt.Sprintf("config file %s: %v", e.Path, e.Err)
}

func (e *ConfigFileError) Unwrap() error {
	return e.Err
}
