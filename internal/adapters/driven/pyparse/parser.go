package pyparse

import (
	"fmt"

	"github.com/go-python/gpython/ast"
	"github.com/go-python/gpython/parser"
	"github.com/go-python/gpython/py"

	"github.com/Erotemic/ahoy/internal/core/domain"
	"github.com/Erotemic/ahoy/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.SyntaxParser = (*Parser)(nil)

// Parser parses Python source with gpython and lowers the result.
type Parser struct{}

// New creates a gpython-backed syntax parser.
func New() *Parser {
	return &Parser{}
}

// Parse turns source text into the lowered analysis tree. Malformed
// source fails the call; the analyzer never sees partial trees.
func (*Parser) Parse(source string) (*domain.Module, error) {
	tree, err := parser.ParseString(source, py.ExecMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}
	mod, ok := tree.(*ast.Module)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected top-level node %T", domain.ErrParse, tree)
	}
	return &domain.Module{Body: lowerBlock(mod.Body)}, nil
}
