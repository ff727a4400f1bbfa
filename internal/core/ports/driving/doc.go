// Package driving defines the interfaces through which external actors
// drive the core: the CLI, the MCP server and the preview TUI.
//
// Core services implement these interfaces; driving adapters consume
// them.
package driving
