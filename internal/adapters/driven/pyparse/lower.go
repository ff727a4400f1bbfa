package pyparse

import (
	"sort"
	"strings"

	"github.com/go-python/gpython/ast"
	"github.com/go-python/gpython/py"

	"github.com/Erotemic/ahoy/internal/core/domain"
)

func lowerBlock(stmts []ast.Stmt) domain.Block {
	block := make(domain.Block, 0, len(stmts))
	for _, stmt := range stmts {
		block = append(block, lowerStmt(stmt))
	}
	return block
}

func lowerStmt(stmt ast.Stmt) domain.Stmt {
	switch s := stmt.(type) {
	case *ast.Assign:
		names := targetNames(s.Targets)
		if len(names) == 0 {
			return domain.Skipped{}
		}
		return domain.Assign{Names: names, Value: lowerExpr(s.Value)}
	case *ast.AugAssign:
		// x += v rebinds x; an unbound target would abort the load, so
		// on completing paths the name exists. The value is opaque.
		if name, ok := s.Target.(*ast.Name); ok {
			return domain.Assign{Names: []string{string(name.Id)}, Value: domain.Opaque{}}
		}
		return domain.Skipped{}
	case *ast.FunctionDef:
		return domain.Define{Name: string(s.Name)}
	case *ast.ClassDef:
		return domain.Define{Name: string(s.Name)}
	case *ast.Import:
		names := make([]string, 0, len(s.Names))
		for _, alias := range s.Names {
			if alias.AsName != "" {
				names = append(names, string(alias.AsName))
				continue
			}
			// "import a.b" binds the top-level package name.
			names = append(names, strings.SplitN(string(alias.Name), ".", 2)[0])
		}
		return domain.ImportBind{Names: names}
	case *ast.ImportFrom:
		names := make([]string, 0, len(s.Names))
		for _, alias := range s.Names {
			if alias.Name == "*" {
				// Star imports bind an unknowable set.
				continue
			}
			if alias.AsName != "" {
				names = append(names, string(alias.AsName))
				continue
			}
			names = append(names, string(alias.Name))
		}
		return domain.ImportBind{Names: names}
	case *ast.If:
		return lowerIf(s)
	case *ast.Try:
		return lowerTry(s)
	case *ast.Raise:
		return domain.Raise{}
	}
	return lowerSkipped(stmt)
}

// lowerSkipped keeps the one fact about an out-of-subset statement the
// analyzer still needs: which names it may rebind. A loop can run zero
// times, so these names are never bindings, but a stale proven-literal
// value for any of them would decide later guards wrongly.
func lowerSkipped(stmt ast.Stmt) domain.Stmt {
	names := make(map[string]struct{})
	collectRebinds([]ast.Stmt{stmt}, names)
	if len(names) == 0 {
		return domain.Skipped{}
	}
	rebinds := make([]string, 0, len(names))
	for name := range names {
		rebinds = append(rebinds, name)
	}
	sort.Strings(rebinds)
	return domain.Skipped{Rebinds: rebinds}
}

// collectRebinds gathers every name the statements could assign or
// delete, including targets and bindings nested inside loop and with
// bodies.
func collectRebinds(stmts []ast.Stmt, names map[string]struct{}) {
	addAll := func(targets []ast.Expr) {
		for _, name := range targetNames(targets) {
			names[name] = struct{}{}
		}
	}
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.Assign:
			addAll(s.Targets)
		case *ast.AugAssign:
			addAll([]ast.Expr{s.Target})
		case *ast.FunctionDef:
			names[string(s.Name)] = struct{}{}
		case *ast.ClassDef:
			names[string(s.Name)] = struct{}{}
		case *ast.Import:
			for _, alias := range s.Names {
				if alias.AsName != "" {
					names[string(alias.AsName)] = struct{}{}
					continue
				}
				names[strings.SplitN(string(alias.Name), ".", 2)[0]] = struct{}{}
			}
		case *ast.ImportFrom:
			for _, alias := range s.Names {
				if alias.Name == "*" {
					continue
				}
				if alias.AsName != "" {
					names[string(alias.AsName)] = struct{}{}
					continue
				}
				names[string(alias.Name)] = struct{}{}
			}
		case *ast.For:
			addAll([]ast.Expr{s.Target})
			collectRebinds(s.Body, names)
			collectRebinds(s.Orelse, names)
		case *ast.While:
			collectRebinds(s.Body, names)
			collectRebinds(s.Orelse, names)
		case *ast.With:
			for _, item := range s.Items {
				if item.OptionalVars != nil {
					addAll([]ast.Expr{item.OptionalVars})
				}
			}
			collectRebinds(s.Body, names)
		case *ast.If:
			collectRebinds(s.Body, names)
			collectRebinds(s.Orelse, names)
		case *ast.Try:
			collectRebinds(s.Body, names)
			for _, handler := range s.Handlers {
				collectRebinds(handler.Body, names)
			}
			collectRebinds(s.Orelse, names)
			collectRebinds(s.Finalbody, names)
		case *ast.Delete:
			addAll(s.Targets)
		}
	}
}

// lowerIf flattens an if/elif/else ladder into a single Conditional.
func lowerIf(stmt *ast.If) domain.Stmt {
	cond := domain.Conditional{}
	current := stmt
	for {
		cond.Branches = append(cond.Branches, domain.CondBranch{
			Test: lowerExpr(current.Test),
			Body: lowerBlock(current.Body),
		})
		if len(current.Orelse) == 1 {
			if next, ok := current.Orelse[0].(*ast.If); ok {
				current = next
				continue
			}
		}
		if len(current.Orelse) > 0 {
			cond.Else = lowerBlock(current.Orelse)
		}
		return cond
	}
}

func lowerTry(stmt *ast.Try) domain.Stmt {
	prot := domain.Protected{
		Body:  lowerBlock(stmt.Body),
		Else:  lowerBlock(stmt.Orelse),
		Final: lowerBlock(stmt.Finalbody),
	}
	if len(stmt.Orelse) == 0 {
		prot.Else = nil
	}
	if len(stmt.Finalbody) == 0 {
		prot.Final = nil
	}
	for _, handler := range stmt.Handlers {
		prot.Handlers = append(prot.Handlers, domain.Handler{
			Body:     lowerBlock(handler.Body),
			Reraises: reraises(handler.Body),
		})
	}
	return prot
}

// reraises reports whether a handler body unconditionally re-raises.
func reraises(body []ast.Stmt) bool {
	for _, stmt := range body {
		if _, ok := stmt.(*ast.Raise); ok {
			return true
		}
	}
	return false
}

func targetNames(targets []ast.Expr) []string {
	var names []string
	for _, target := range targets {
		switch t := target.(type) {
		case *ast.Name:
			names = append(names, string(t.Id))
		case *ast.Tuple:
			names = append(names, targetNames(t.Elts)...)
		case *ast.List:
			names = append(names, targetNames(t.Elts)...)
		case *ast.Starred:
			names = append(names, targetNames([]ast.Expr{t.Value})...)
		}
	}
	return names
}

func lowerExpr(expr ast.Expr) domain.Expr {
	switch e := expr.(type) {
	case *ast.NameConstant:
		switch e.Value {
		case py.True:
			return domain.BoolLit{Value: true}
		case py.False:
			return domain.BoolLit{Value: false}
		case py.None:
			return domain.NoneLit{}
		}
		return domain.Opaque{}
	case *ast.Num:
		if n, ok := e.N.(py.Int); ok {
			return domain.IntLit{Value: int64(n)}
		}
		return domain.Opaque{}
	case *ast.Str:
		return domain.StrLit{Value: string(e.S)}
	case *ast.Tuple:
		return lowerSeq(e.Elts)
	case *ast.List:
		return lowerSeq(e.Elts)
	case *ast.Name:
		return domain.NameRef{Name: string(e.Id)}
	case *ast.Compare:
		return lowerCompare(e)
	case *ast.BoolOp:
		combo := domain.BoolCombo{Op: domain.BoolAnd}
		if e.Op == ast.Or {
			combo.Op = domain.BoolOr
		}
		for _, operand := range e.Values {
			combo.Operands = append(combo.Operands, lowerExpr(operand))
		}
		return combo
	case *ast.UnaryOp:
		if e.Op == ast.Not {
			return domain.Negate{Operand: lowerExpr(e.Operand)}
		}
		return domain.Opaque{}
	}
	return domain.Opaque{}
}

func lowerSeq(elts []ast.Expr) domain.Expr {
	seq := domain.SeqLit{Elems: make([]domain.Expr, 0, len(elts))}
	for _, elt := range elts {
		seq.Elems = append(seq.Elems, lowerExpr(elt))
	}
	return seq
}

// lowerCompare turns a (possibly chained) comparison into the domain's
// binary form; a < b < c becomes (a < b) and (b < c).
func lowerCompare(cmp *ast.Compare) domain.Expr {
	left := lowerExpr(cmp.Left)
	var pairs []domain.Expr
	for i, op := range cmp.Ops {
		right := lowerExpr(cmp.Comparators[i])
		pairs = append(pairs, domain.Compare{Left: left, Op: lowerCmpOp(op), Right: right})
		left = right
	}
	if len(pairs) == 1 {
		return pairs[0]
	}
	return domain.BoolCombo{Op: domain.BoolAnd, Operands: pairs}
}

func lowerCmpOp(op ast.CmpOp) domain.CmpOp {
	switch op {
	case ast.Eq:
		return domain.CmpEq
	case ast.NotEq:
		return domain.CmpNotEq
	case ast.Lt:
		return domain.CmpLt
	case ast.LtE:
		return domain.CmpLtE
	case ast.Gt:
		return domain.CmpGt
	case ast.GtE:
		return domain.CmpGtE
	case ast.Is:
		return domain.CmpIs
	case ast.IsNot:
		return domain.CmpIsNot
	}
	return domain.CmpUnknown
}
