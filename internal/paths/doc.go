// Package paths resolves configuration file locations for the supported
// AI assistant targets.
//
// Each target stores registered MCP servers in a different file depending on
// the chosen scope. This package centralizes that convention so the adapters,
// the read-only listing, and the line-locating editor agree on locations.
package paths
