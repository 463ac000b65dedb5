package target

import (
	"context"
	"log/slog"

	"github.com/thoreinstein/mcpadd/internal/errors"
	"github.com/thoreinstein/mcpadd/internal/validate"
)

// Result is the uniform outcome the Dispatcher reports to the CLI layer,
// normalizing the adapters' heterogeneous failure shapes.
type Result struct {
	// Err is nil on success.
	Err error

	// Hints lists likely causes or next steps for a failure.
	Hints []string
}

// OK returns true when the registration succeeded.
func (r *Result) OK() bool {
	return r.Err == nil
}

// Dispatcher validates a request against the injected target and delegates
// to it. The target is an explicit value, not ambient state, so each adapter
// stays independently testable.
type Dispatcher struct {
	target Target
	logger *slog.Logger
}

// NewDispatcher creates a Dispatcher for the given target.
// A nil logger falls back to slog.Default().
func NewDispatcher(t Target, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{target: t, logger: logger}
}

// Target returns the injected target.
func (d *Dispatcher) Target() Target {
	return d.target
}

// Prepare validates the request in place: server name, scope legality for
// the active target, and for remote specs the URL and transport (defaulting
// the transport per target). Validation failures occur before any side
// effect is attempted.
func (d *Dispatcher) Prepare(req *Request) error {
	name, err := validate.ServerName(req.Name)
	if err != nil {
		return err
	}
	req.Name = name

	scope, err := validate.Scope(req.Scope, d.target.AllowedScopes())
	if err != nil {
		return err
	}
	req.Scope = scope

	if req.Spec.IsRemote() {
		if _, err := validate.URL(req.Spec.URL); err != nil {
			return err
		}
		transport, err := validate.Transport(req.Spec.Transport, RemoteTransports, d.target.DefaultRemoteTransport())
		if err != nil {
			return err
		}
		req.Spec.Transport = transport
	}

	return nil
}

// Register validates the request and performs the registration, folding any
// failure into a Result with troubleshooting hints.
func (d *Dispatcher) Register(ctx context.Context, req *Request) *Result {
	if err := d.Prepare(req); err != nil {
		return &Result{Err: err}
	}

	d.logger.Debug("dispatching registration",
		"target", d.target.Name(),
		"server", req.Name,
		"scope", req.Scope,
		"kind", req.Spec.Kind.String())

	if err := d.target.Register(ctx, req); err != nil {
		return &Result{Err: err, Hints: hintsFor(err)}
	}

	return &Result{}
}

// Plan validates the request and returns the artifact the registration
// would produce, without side effects. Used by dry-run and generate modes.
func (d *Dispatcher) Plan(req *Request) (*Artifact, error) {
	if err := d.Prepare(req); err != nil {
		return nil, err
	}
	return d.target.Plan(req)
}

// hintsFor maps failure types to short lists of likely causes.
func hintsFor(err error) []string {
	var notFound *ExecNotFoundError
	if errors.As(err, &notFound) {
		return []string{notFound.Install}
	}

	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return []string{
			"a server with this name may already be registered",
			"the chosen scope may not be writable from this directory",
			"check file permissions on the tool's config directory",
		}
	}

	var cfgErr *ConfigFileError
	if errors.As(err, &cfgErr) {
		return []string{
			"check permissions on " + cfgErr.Path,
			"ensure the parent directory can be created",
		}
	}

	return nil
}
