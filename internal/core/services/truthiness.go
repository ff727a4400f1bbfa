package services

import "github.com/Erotemic/ahoy/internal/core/domain"

// Three-valued truthiness over the literal expression mini-language.
// truthUnknown is the conservative answer for anything the static subset
// cannot decide; no branch guarded by it is ever promoted on its own.
type truth int

const (
	truthUnknown truth = iota
	truthTrue
	truthFalse
)

func (t truth) negate() truth {
	switch t {
	case truthTrue:
		return truthFalse
	case truthFalse:
		return truthTrue
	}
	return truthUnknown
}

// scope maps names to the literal values they are proven to hold at the
// current point of the module's top level. A name assigned anything
// non-literal, or reassigned inside any branch, is absent.
type scope map[string]domain.Expr

func (s scope) clone() scope {
	child := make(scope, len(s))
	for name, lit := range s {
		child[name] = lit
	}
	return child
}

// resolveLiteral reduces e to a literal of the mini-language, following
// name references into the scope. Returns false for anything opaque.
func resolveLiteral(e domain.Expr, sc scope) (domain.Expr, bool) {
	switch v := e.(type) {
	case domain.NoneLit, domain.BoolLit, domain.IntLit, domain.StrLit, domain.SeqLit:
		return v, true
	case domain.NameRef:
		lit, ok := sc[v.Name]
		return lit, ok
	}
	return nil, false
}

// evalTruth decides the truth value of a branch condition using only
// statically determinable facts.
func evalTruth(e domain.Expr, sc scope) truth {
	switch v := e.(type) {
	case domain.NoneLit:
		return truthFalse
	case domain.BoolLit:
		if v.Value {
			return truthTrue
		}
		return truthFalse
	case domain.IntLit:
		if v.Value != 0 {
			return truthTrue
		}
		return truthFalse
	case domain.StrLit:
		if v.Value != "" {
			return truthTrue
		}
		return truthFalse
	case domain.SeqLit:
		// Length alone decides; the elements may be opaque.
		if len(v.Elems) > 0 {
			return truthTrue
		}
		return truthFalse
	case domain.NameRef:
		if lit, ok := sc[v.Name]; ok {
			return evalTruth(lit, sc)
		}
		return truthUnknown
	case domain.Compare:
		return evalCompare(v, sc)
	case domain.BoolCombo:
		return evalCombo(v, sc)
	case domain.Negate:
		return evalTruth(v.Operand, sc).negate()
	}
	return truthUnknown
}

func evalCompare(cmp domain.Compare, sc scope) truth {
	left, ok := resolveLiteral(cmp.Left, sc)
	if !ok {
		return truthUnknown
	}
	right, ok := resolveLiteral(cmp.Right, sc)
	if !ok {
		return truthUnknown
	}
	return compareLiterals(cmp.Op, left, right)
}

// compareLiterals compares two resolved literals. Mixed-type orderings
// and sequence comparisons stay unknown; equality between clearly
// distinct types is decidable.
func compareLiterals(op domain.CmpOp, left, right domain.Expr) truth {
	if op == domain.CmpUnknown {
		return truthUnknown
	}

	// Identity on None follows equality; None is a singleton.
	_, leftNone := left.(domain.NoneLit)
	_, rightNone := right.(domain.NoneLit)
	if leftNone || rightNone {
		same := leftNone && rightNone
		switch op {
		case domain.CmpEq, domain.CmpIs:
			return truthFromBool(same)
		case domain.CmpNotEq, domain.CmpIsNot:
			return truthFromBool(!same)
		}
		return truthUnknown
	}

	if li, lok := intValue(left); lok {
		if ri, rok := intValue(right); rok {
			return orderedTruth(op, compareInt(li, ri))
		}
		// int compared with a string or sequence literal: never equal.
		return equalityOnly(op, false)
	}

	if ls, lok := left.(domain.StrLit); lok {
		if rs, rok := right.(domain.StrLit); rok {
			return orderedTruth(op, compareStr(ls.Value, rs.Value))
		}
		return equalityOnly(op, false)
	}

	return truthUnknown
}

func evalCombo(combo domain.BoolCombo, sc scope) truth {
	// Short-circuit combination: "and" is false if any operand is false
	// and true only when all are; "or" mirrors that.
	sawUnknown := false
	for _, operand := range combo.Operands {
		switch evalTruth(operand, sc) {
		case truthFalse:
			if combo.Op == domain.BoolAnd {
				return truthFalse
			}
		case truthTrue:
			if combo.Op == domain.BoolOr {
				return truthTrue
			}
		default:
			sawUnknown = true
		}
	}
	if sawUnknown {
		return truthUnknown
	}
	if combo.Op == domain.BoolAnd {
		return truthTrue
	}
	return truthFalse
}

// isEntryPointGuard recognises the module-identity self-check, e.g.
// if __name__ == '__main__'. Export generation assumes the module is
// imported rather than executed, so such a branch is never taken. This
// is a named policy rule, not a consequence of truthiness evaluation.
func isEntryPointGuard(e domain.Expr) bool {
	cmp, ok := e.(domain.Compare)
	if !ok {
		return false
	}
	return refersToModuleName(cmp.Left) || refersToModuleName(cmp.Right)
}

func refersToModuleName(e domain.Expr) bool {
	ref, ok := e.(domain.NameRef)
	return ok && ref.Name == "__name__"
}

func truthFromBool(b bool) truth {
	if b {
		return truthTrue
	}
	return truthFalse
}

// equalityOnly answers Eq/NotEq for a known equality outcome and leaves
// every ordering operator unknown.
func equalityOnly(op domain.CmpOp, equal bool) truth {
	switch op {
	case domain.CmpEq, domain.CmpIs:
		return truthFromBool(equal)
	case domain.CmpNotEq, domain.CmpIsNot:
		return truthFromBool(!equal)
	}
	return truthUnknown
}

func intValue(e domain.Expr) (int64, bool) {
	switch v := e.(type) {
	case domain.IntLit:
		return v.Value, true
	case domain.BoolLit:
		// True == 1 and False == 0 in the analyzed language.
		if v.Value {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareStr(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func orderedTruth(op domain.CmpOp, ord int) truth {
	switch op {
	case domain.CmpEq:
		return truthFromBool(ord == 0)
	case domain.CmpNotEq:
		return truthFromBool(ord != 0)
	case domain.CmpLt:
		return truthFromBool(ord < 0)
	case domain.CmpLtE:
		return truthFromBool(ord <= 0)
	case domain.CmpGt:
		return truthFromBool(ord > 0)
	case domain.CmpGtE:
		return truthFromBool(ord >= 0)
	case domain.CmpIs, domain.CmpIsNot:
		// Identity between equal-valued literals is interpreter
		// dependent; only equality is safe to decide.
		return truthUnknown
	}
	return truthUnknown
}
