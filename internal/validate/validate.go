// Package validate provides pure validation helpers for server names,
// scopes, transports, and URLs, plus shell quoting for display strings.
package validate

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

// ValidationError reports an illegal value along with the allowed set when
// one exists. Validation always runs before any subprocess or file operation.
type ValidationError struct {
	// Field names what was validated (name, scope, transport, url).
	Field string

	// Value is the offending input.
	Value string

	// Allowed lists legal values when the domain is enumerable.
	Allowed []string

	// Reason explains failures with non-enumerable domains.
	Reason string
}

func (e *ValidationError) Error() string {
	if len(e.Allowed) > 0 {
		return fmt.Sprintf("invalid %s %q (allowed: %s)", e.Field, e.Value, strings.Join(e.Allowed, ", "))
	}
	if e.Reason != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

// serverNamePattern is the full legal server name alphabet.
var serverNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ServerName validates a server name and returns it trimmed.
// Names are 1-64 characters from [A-Za-z0-9_-].
func ServerName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if !serverNamePattern.MatchString(trimmed) {
		reason := "must be 1-64 characters of letters, digits, hyphen, or underscore"
		if trimmed == "" {
			reason = "must not be empty"
		}
		return "", &ValidationError{Field: "name", Value: name, Reason: reason}
	}
	return trimmed, nil
}

// Scope validates scope against the target's allowed set.
// An empty scope resolves to "user".
func Scope(scope string, allowed []string) (string, error) {
	if scope == "" {
		return "user", nil
	}
	if !slices.Contains(allowed, scope) {
		return "", &ValidationError{Field: "scope", Value: scope, Allowed: allowed}
	}
	return scope, nil
}

// Transport validates transport against the target's allowed set.
// An empty transport resolves to def.
func Transport(transport string, allowed []string, def string) (string, error) {
	if transport == "" {
		return def, nil
	}
	if !slices.Contains(allowed, transport) {
		return "", &ValidationError{Field: "transport", Value: transport, Allowed: allowed}
	}
	return transport, nil
}

// URL validates a remote server endpoint. Only well-formed http and https
// URLs are accepted.
func URL(raw string) (string, error) {
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return "", &ValidationError{Field: "url", Value: raw, Reason: "must start with http:// or https://"}
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", &ValidationError{Field: "url", Value: raw, Reason: err.Error()}
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", &ValidationError{Field: "url", Value: raw, Reason: "must be a well-formed http or https URL"}
	}
	return raw, nil
}

// shellSafe matches tokens that need no quoting in a displayed command line.
var shellSafe = regexp.MustCompile(`^[A-Za-z0-9_@%+=:,./-]+$`)

// ShellQuote quotes s for inclusion in a human-readable command string using
// POSIX single-quote escaping. It exists ONLY for display and clipboard
// output; argument vectors passed to subprocesses are never built from the
// quoted form.
func ShellQuote(s string) string {
	if s != "" && shellSafe.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// ShellJoin renders an argument vector as a display string, quoting each
// token that needs it.
func ShellJoin(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = ShellQuote(a)
	}
	return strings.Join(quoted, " ")
}
