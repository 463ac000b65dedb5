package spec

import (
	"encoding/json"
)

// Kind distinguishes the two server variants.
type Kind int

const (
	// KindLocal is a server launched as a local subprocess over stdio.
	KindLocal Kind = iota

	// KindRemote is a server reachable over an HTTP or SSE endpoint.
	KindRemote
)

// String returns the lowercase variant name.
func (k Kind) String() string {
	if k == KindRemote {
		return "remote"
	}
	return "local"
}

// Transport values for remote servers. Local servers always use stdio.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
	TransportHTTP  = "http"
)

// ServerSpec is the canonical in-memory representation of a server
// configuration, normalized from heterogeneous JSON input shapes.
// It is immutable once constructed; exactly one of Command or URL is set.
type ServerSpec struct {
	// Kind tags the variant: KindLocal (Command set) or KindRemote (URL set).
	Kind Kind

	// Command is the executable path or name for local servers.
	Command string

	// Args are the command-line arguments for local servers.
	// Always non-nil for local specs, possibly empty.
	Args []string

	// Env contains environment variables for the local server process.
	Env map[string]string

	// WorkingDir is an optional working directory for local servers.
	WorkingDir string

	// URL is the endpoint for remote servers (http or https).
	URL string

	// Transport is the remote transport ("sse" or "http").
	// Empty means the target's default applies at dispatch time.
	Transport string

	// Description is a human-readable summary.
	Description string

	// SuggestedName is a non-authoritative default name, derived from a
	// wrapper key or an explicit name field in the input.
	SuggestedName string
}

// IsLocal returns true for the local/stdio variant.
func (s *ServerSpec) IsLocal() bool {
	return s.Kind == KindLocal
}

// IsRemote returns true for the remote/URL variant.
func (s *ServerSpec) IsRemote() bool {
	return s.Kind == KindRemote
}

// jsonSpec is the serialized shape shared by ToJSON and the normalizer.
type jsonSpec struct {
	Command     string            `json:"command,omitempty"`
	Args        []string          `json:"args,omitempty"`
	Env         map[string]string `json:"env,omitempty"`
	Cwd         string            `json:"cwd,omitempty"`
	URL         string            `json:"url,omitempty"`
	Transport   string            `json:"transport,omitempty"`
	Description string            `json:"description,omitempty"`
	Name        string            `json:"name,omitempty"`
}

// ToJSON serializes the spec back to its canonical JSON input form.
// Normalize(ToJSON()) yields an equivalent spec.
func (s *ServerSpec) ToJSON() ([]byte, error) {
	out := jsonSpec{
		Command:     s.Command,
		Env:         s.Env,
		Cwd:         s.WorkingDir,
		URL:         s.URL,
		Transport:   s.Transport,
		Description: s.Description,
		Name:        s.SuggestedName,
	}
	if s.IsLocal() && len(s.Args) > 0 {
		out.Args = s.Args
	}
	return json.Marshal(out)
}
