// Package target defines the adapter contract for registering MCP servers
// with external AI assistant tools, and the Dispatcher that validates
// requests and normalizes adapter failures into one result shape.
//
// Three adapters exist: claude and gemini invoke their tool's CLI with an
// argument vector, opencode edits its JSON config file directly. The active
// adapter is chosen by the caller and injected explicitly; no global target
// state exists.
package target
