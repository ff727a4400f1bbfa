package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Erotemic/ahoy/internal/core/domain"
)

const uriScheme = "ahoy://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the builtin denylist.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "builtins",
		Name:        "builtins",
		Description: "Builtin names excluded from discovered exports",
		MIMEType:    "application/json",
	}, s.handleBuiltinsResource)

	// Template for a package's generated aggregator text.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "init/{module}",
		Name:        "init-preview",
		Description: "Generated __init__.py text for a package",
		MIMEType:    "text/x-python",
	}, s.handleInitResource)
}

// handleBuiltinsResource returns the builtin denylist.
func (s *Server) handleBuiltinsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(domain.BuiltinNames(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling builtins: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleInitResource returns the generated aggregator text for a package.
func (s *Server) handleInitResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract the module from a URI like ahoy://init/{module}.
	module := extractModule(req.Params.URI)
	if module == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	text, err := s.ports.Init.StaticInit(ctx, module, domain.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", module, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/x-python",
			Text:     text,
		}},
	}, nil
}

// extractModule extracts the module name from a URI like ahoy://init/{module}.
func extractModule(uri string) string {
	const prefix = uriScheme + "init/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
