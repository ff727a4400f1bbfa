// Package mcp provides an MCP (Model Context Protocol) server adapter for ahoy.
// It lets AI assistants generate and inspect Python package aggregator files.
package mcp

import "errors"

// ErrMissingInitService is returned when the generation service is not provided.
var ErrMissingInitService = errors.New("mcp: init service is required")
