// Package logging provides slog-based logging for the mcpadd CLI.
//
// It offers a TTY-aware colorized text handler for interactive use, a JSON
// handler for machine consumption, and a multi-handler for simultaneous
// console and file output.
package logging
