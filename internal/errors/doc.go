// Package errors provides error handling conventions for the mcpadd CLI.
//
// This package re-exports the cockroachdb/errors constructors used throughout
// the codebase and defines an ExitError type that carries the process exit
// code and an optional user-facing suggestion.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, subprocess, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports error unwrapping via [errors.Unwrap] and [errors.As]:
//
//	err := mcperrors.NewUserError(err, "Run 'mcpadd add --help' for valid flags")
//	var exitErr *mcperrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
