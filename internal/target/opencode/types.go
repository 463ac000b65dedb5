package opencode

import (
	"encoding/json"
)

// SchemaURL is the schema marker OpenCode expects at the top of its config.
const SchemaURL = "https://opencode.ai/config.json"

// Server entry type tags.
const (
	TypeLocal  = "local"
	TypeRemote = "remote"
)

// ServerEntry is one entry under the "mcp" container. OpenCode stores the
// launch command as a single [command, args...] array rather than split
// fields, and uses a type tag instead of a transport.
type ServerEntry struct {
	// Type is "local" or "remote".
	Type string `json:"type"`

	// Enabled is always written as true for new registrations.
	Enabled bool `json:"enabled"`

	// Command is [executable, arg1, ...] for local entries.
	Command []string `json:"command,omitempty"`

	// URL is the endpoint for remote entries.
	URL string `json:"url,omitempty"`

	// Environment holds env vars for local entries, omitted when empty.
	Environment map[string]string `json:"environment,omitempty"`
}

// ConfigFile is OpenCode's on-disk document. Unknown top-level fields are
// preserved across a read-merge-write cycle so this tool never destroys
// configuration it does not understand.
type ConfigFile struct {
	// Schema is the "$schema" marker, ensured on every write.
	Schema string `json:"$schema"`

	// MCP maps server names to their entries.
	MCP map[string]*ServerEntry `json:"mcp"`

	// unknownFields stores any JSON fields not explicitly defined here.
	unknownFields map[string]json.RawMessage
}

// NewConfigFile returns an empty document with the schema marker and an
// initialized server container.
func NewConfigFile() *ConfigFile {
	return &ConfigFile{
		Schema: SchemaURL,
		MCP:    make(map[string]*ServerEntry),
	}
}

// MarshalJSON implements json.Marshaler to include unknown fields in output.
func (c *ConfigFile) MarshalJSON() ([]byte, error) {
	result := make(map[string]any)

	// Copy unknown fields first so known fields take precedence.
	for k, v := range c.unknownFields {
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return nil, err
		}
		result[k] = val
	}

	result["$schema"] = c.Schema
	result["mcp"] = c.MCP

	return json.Marshal(result)
}

// UnmarshalJSON implements json.Unmarshaler to capture unknown fields.
func (c *ConfigFile) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["$schema"]; ok {
		if err := json.Unmarshal(v, &c.Schema); err != nil {
			return err
		}
		delete(raw, "$schema")
	}
	if v, ok := raw["mcp"]; ok {
		if err := json.Unmarshal(v, &c.MCP); err != nil {
			return err
		}
		delete(raw, "mcp")
	}

	if len(raw) > 0 {
		c.unknownFields = raw
	}

	return nil
}
