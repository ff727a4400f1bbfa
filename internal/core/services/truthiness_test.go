package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Erotemic/ahoy/internal/core/domain"
)

func TestEvalTruth_Literals(t *testing.T) {
	tests := []struct {
		name string
		expr domain.Expr
		want truth
	}{
		{"true literal", domain.BoolLit{Value: true}, truthTrue},
		{"false literal", domain.BoolLit{Value: false}, truthFalse},
		{"none literal", domain.NoneLit{}, truthFalse},
		{"nonzero int", domain.IntLit{Value: 3}, truthTrue},
		{"zero int", domain.IntLit{Value: 0}, truthFalse},
		{"nonempty string", domain.StrLit{Value: "x"}, truthTrue},
		{"empty string", domain.StrLit{Value: ""}, truthFalse},
		{"empty sequence", domain.SeqLit{}, truthFalse},
		{"nonempty sequence of opaque elements", domain.SeqLit{Elems: []domain.Expr{domain.Opaque{}}}, truthTrue},
		{"opaque expression", domain.Opaque{}, truthUnknown},
		{"unproven name", domain.NameRef{Name: "flag"}, truthUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evalTruth(tt.expr, make(scope)))
		})
	}
}

func TestEvalTruth_NameResolution(t *testing.T) {
	sc := scope{"flag": domain.BoolLit{Value: false}}

	assert.Equal(t, truthFalse, evalTruth(domain.NameRef{Name: "flag"}, sc))
	assert.Equal(t, truthTrue, evalTruth(domain.Negate{Operand: domain.NameRef{Name: "flag"}}, sc))
}

func TestEvalTruth_Compare(t *testing.T) {
	tests := []struct {
		name string
		expr domain.Expr
		want truth
	}{
		{
			"equal ints",
			domain.Compare{Left: domain.IntLit{Value: 1}, Op: domain.CmpEq, Right: domain.IntLit{Value: 1}},
			truthTrue,
		},
		{
			"int ordering",
			domain.Compare{Left: domain.IntLit{Value: 2}, Op: domain.CmpLt, Right: domain.IntLit{Value: 5}},
			truthTrue,
		},
		{
			"string ordering",
			domain.Compare{Left: domain.StrLit{Value: "a"}, Op: domain.CmpGt, Right: domain.StrLit{Value: "b"}},
			truthFalse,
		},
		{
			"bool compared as int",
			domain.Compare{Left: domain.BoolLit{Value: true}, Op: domain.CmpEq, Right: domain.IntLit{Value: 1}},
			truthTrue,
		},
		{
			"none is none",
			domain.Compare{Left: domain.NoneLit{}, Op: domain.CmpIs, Right: domain.NoneLit{}},
			truthTrue,
		},
		{
			"literal is not none",
			domain.Compare{Left: domain.IntLit{Value: 0}, Op: domain.CmpIsNot, Right: domain.NoneLit{}},
			truthTrue,
		},
		{
			"cross type equality",
			domain.Compare{Left: domain.IntLit{Value: 1}, Op: domain.CmpEq, Right: domain.StrLit{Value: "1"}},
			truthFalse,
		},
		{
			"cross type ordering stays unknown",
			domain.Compare{Left: domain.IntLit{Value: 1}, Op: domain.CmpLt, Right: domain.StrLit{Value: "1"}},
			truthUnknown,
		},
		{
			"identity between equal ints stays unknown",
			domain.Compare{Left: domain.IntLit{Value: 7}, Op: domain.CmpIs, Right: domain.IntLit{Value: 7}},
			truthUnknown,
		},
		{
			"opaque operand stays unknown",
			domain.Compare{Left: domain.Opaque{}, Op: domain.CmpEq, Right: domain.IntLit{Value: 1}},
			truthUnknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evalTruth(tt.expr, make(scope)))
		})
	}
}

func TestEvalTruth_BoolCombo(t *testing.T) {
	trueLit := domain.BoolLit{Value: true}
	falseLit := domain.BoolLit{Value: false}
	unknown := domain.Opaque{}

	tests := []struct {
		name string
		expr domain.Expr
		want truth
	}{
		{"and all true", domain.BoolCombo{Op: domain.BoolAnd, Operands: []domain.Expr{trueLit, trueLit}}, truthTrue},
		{"and short circuits on false", domain.BoolCombo{Op: domain.BoolAnd, Operands: []domain.Expr{unknown, falseLit}}, truthFalse},
		{"and with unknown", domain.BoolCombo{Op: domain.BoolAnd, Operands: []domain.Expr{trueLit, unknown}}, truthUnknown},
		{"or short circuits on true", domain.BoolCombo{Op: domain.BoolOr, Operands: []domain.Expr{unknown, trueLit}}, truthTrue},
		{"or all false", domain.BoolCombo{Op: domain.BoolOr, Operands: []domain.Expr{falseLit, falseLit}}, truthFalse},
		{"or with unknown", domain.BoolCombo{Op: domain.BoolOr, Operands: []domain.Expr{falseLit, unknown}}, truthUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evalTruth(tt.expr, make(scope)))
		})
	}
}

func TestIsEntryPointGuard(t *testing.T) {
	guard := domain.Compare{
		Left:  domain.NameRef{Name: "__name__"},
		Op:    domain.CmpEq,
		Right: domain.StrLit{Value: "__main__"},
	}
	assert.True(t, isEntryPointGuard(guard))

	flipped := domain.Compare{
		Left:  domain.StrLit{Value: "__main__"},
		Op:    domain.CmpEq,
		Right: domain.NameRef{Name: "__name__"},
	}
	assert.True(t, isEntryPointGuard(flipped))

	plain := domain.Compare{
		Left:  domain.NameRef{Name: "name"},
		Op:    domain.CmpEq,
		Right: domain.StrLit{Value: "__main__"},
	}
	assert.False(t, isEntryPointGuard(plain))
}
