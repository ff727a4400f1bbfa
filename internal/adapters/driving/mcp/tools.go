package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Erotemic/ahoy/internal/core/domain"
)

// GenerateInput is the input schema for the generate_init tool.
type GenerateInput struct {
	Module   string   `json:"module" jsonschema:"package directory path or dotted module name"`
	Imports  []string `json:"imports,omitempty" jsonschema:"explicit submodule names, overrides discovery"`
	NoAll    bool     `json:"noall,omitempty" jsonschema:"ignore explicit __all__ declarations in submodules"`
	Relative bool     `json:"relative,omitempty" jsonschema:"render relative imports (from . import x)"`
	Write    bool     `json:"write,omitempty" jsonschema:"write the updated file to disk instead of only returning it"`
}

// GenerateOutput is the output schema for the generate_init tool.
type GenerateOutput struct {
	Path    string `json:"path"`
	Text    string `json:"text"`
	Written bool   `json:"written"`
}

// ExportsInput is the input schema for the list_exports tool.
type ExportsInput struct {
	Module string `json:"module" jsonschema:"package directory path or dotted module name"`
	NoAll  bool   `json:"noall,omitempty" jsonschema:"ignore explicit __all__ declarations in submodules"`
}

// ExportsOutput is the output schema for the list_exports tool.
type ExportsOutput struct {
	Package string         `json:"package"`
	Path    string         `json:"path"`
	Modules []ModuleOutput `json:"modules"`
}

// ModuleOutput pairs one submodule with its public exports.
type ModuleOutput struct {
	Module  string   `json:"module"`
	Exports []string `json:"exports"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_init",
		Description: "Generate a Python package's __init__.py from static analysis of its submodules",
	}, s.handleGenerate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_exports",
		Description: "List the public symbols each submodule of a Python package is guaranteed to define",
	}, s.handleExports)
}

// handleGenerate handles the generate_init tool invocation.
func (s *Server) handleGenerate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateInput,
) (*mcp.CallToolResult, GenerateOutput, error) {
	opts := domain.DefaultOptions()
	opts.Imports = input.Imports
	opts.UseAll = !input.NoAll
	opts.Dry = !input.Write
	opts.Format.Relative = input.Relative

	update, err := s.ports.Init.AutogenInit(ctx, input.Module, opts)
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	return nil, GenerateOutput{
		Path:    update.Path,
		Text:    update.Text,
		Written: input.Write,
	}, nil
}

// handleExports handles the list_exports tool invocation.
func (s *Server) handleExports(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExportsInput,
) (*mcp.CallToolResult, ExportsOutput, error) {
	opts := domain.DefaultOptions()
	opts.UseAll = !input.NoAll

	manifest, err := s.ports.Init.Manifest(ctx, input.Module, opts)
	if err != nil {
		return nil, ExportsOutput{}, err
	}

	output := ExportsOutput{
		Package: manifest.Package,
		Path:    manifest.Path,
		Modules: make([]ModuleOutput, len(manifest.Entries)),
	}
	for i, entry := range manifest.Entries {
		output.Modules[i] = ModuleOutput{
			Module:  entry.Module,
			Exports: entry.Exports,
		}
	}

	return nil, output, nil
}
