package mcp

import (
	"github.com/Erotemic/ahoy/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Init generates and inspects package aggregator files.
	Init driving.InitService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Init == nil {
		return ErrMissingInitService
	}
	return nil
}
