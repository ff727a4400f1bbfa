package driven

import "github.com/Erotemic/ahoy/internal/core/domain"

// SyntaxParser is the trusted upstream parsing service. It turns raw
// source text into the lowered analysis syntax tree. Malformed source
// yields an error wrapping domain.ErrParse; the core never attempts
// recovery.
type SyntaxParser interface {
	Parse(source string) (*domain.Module, error)
}
