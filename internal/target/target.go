package target

import (
	"context"

	"github.com/thoreinstein/mcpadd/internal/spec"
)

// Request carries everything an adapter needs to register one server.
// It is constructed per invocation and owned by the calling workflow.
type Request struct {
	// Spec is the normalized server configuration.
	Spec *spec.ServerSpec

	// Name is the validated server name.
	Name string

	// Scope is the validated visibility tier (user, local, project).
	Scope string

	// ProjectRoot anchors project and local scope paths.
	ProjectRoot string

	// Force skips the overwrite confirmation for file-writing targets.
	Force bool

	// Confirm asks the user to approve overwriting an existing entry.
	// Ignored when Force is set; a nil Confirm declines.
	Confirm func(prompt string) (bool, error)
}

// Artifact is the external effect an adapter would produce, captured without
// performing it. CLI targets populate Program and Args; the file-writing
// target populates Path and Fragment.
type Artifact struct {
	// Program is the external executable name (not resolved to a path).
	Program string

	// Args is the exact argument vector, one discrete string per argument.
	Args []string

	// Path is the config file that would be modified.
	Path string

	// Fragment is the pretty-printed JSON entry that would be inserted.
	Fragment []byte
}

// Target is the adapter contract. One implementation exists per external
// assistant tool; the active one is chosen by the caller and injected into
// the Dispatcher.
type Target interface {
	// Name returns the target identifier (claude, gemini, opencode).
	Name() string

	// DisplayName returns a human-readable target name.
	DisplayName() string

	// AllowedScopes returns the scopes this target accepts.
	AllowedScopes() []string

	// DefaultRemoteTransport returns the transport assumed for remote
	// servers when the input specifies none.
	DefaultRemoteTransport() string

	// ConfigPath returns the config file consulted for a scope.
	ConfigPath(scope, projectRoot string) (string, error)

	// Plan returns the artifact Register would produce, without side effects.
	Plan(req *Request) (*Artifact, error)

	// Register performs the registration: a subprocess invocation for CLI
	// targets, a read-merge-write for the file target.
	Register(ctx context.Context, req *Request) error
}

// RemoteTransports is the transport set accepted for remote servers.
var RemoteTransports = []string{spec.TransportSSE, spec.TransportHTTP}
