package services

import (
	"sort"

	"github.com/Erotemic/ahoy/internal/core/domain"
)

// Analyzer decides, from syntax alone, which top-level names are bound on
// every execution path that reaches the end of a module's load. It may
// only err in the exclude direction: a name it reports is guaranteed to
// exist at import time, while genuinely indeterminate bindings are left
// out.
type Analyzer struct{}

// NewAnalyzer creates a reachability analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// AlwaysBound returns the sorted set of names unconditionally bound by
// the time the module finishes loading.
func (a *Analyzer) AlwaysBound(mod *domain.Module) []string {
	res := analyzeBlock(mod.Body, make(scope))
	names := make([]string, 0, len(res.bound))
	for name := range res.bound {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// nameSet is a set of identifier strings.
type nameSet map[string]struct{}

func (s nameSet) add(name string) { s[name] = struct{}{} }

func (s nameSet) merge(other nameSet) {
	for name := range other {
		s[name] = struct{}{}
	}
}

func (s nameSet) contains(name string) bool {
	_, ok := s[name]
	return ok
}

func intersect(sets []nameSet) nameSet {
	out := make(nameSet)
	if len(sets) == 0 {
		return out
	}
	for name := range sets[0] {
		in := true
		for _, other := range sets[1:] {
			if !other.contains(name) {
				in = false
				break
			}
		}
		if in {
			out.add(name)
		}
	}
	return out
}

// flow is the result of analyzing one block: the names bound on every
// completing path through it, every name the block could possibly touch,
// and whether control can reach the end of the block at all.
type flow struct {
	bound     nameSet
	touched   nameSet
	completes bool
}

func newFlow() flow {
	return flow{bound: make(nameSet), touched: make(nameSet), completes: true}
}

// analyzeBlock walks a statement sequence. The scope carries names proven
// to hold literal values; assignments inside the block update it, and
// nested constructs invalidate any name they might rebind.
func analyzeBlock(block domain.Block, sc scope) flow {
	res := newFlow()
	for _, stmt := range block {
		switch s := stmt.(type) {
		case domain.Assign:
			for _, name := range s.Names {
				res.bound.add(name)
				res.touched.add(name)
			}
			updateScope(sc, s)
		case domain.Define:
			res.bound.add(s.Name)
			res.touched.add(s.Name)
			delete(sc, s.Name)
		case domain.ImportBind:
			for _, name := range s.Names {
				res.bound.add(name)
				res.touched.add(name)
				delete(sc, name)
			}
		case domain.Raise:
			// Control never completes this path; bindings made before
			// the raise are unreachable for importers too.
			res.bound = make(nameSet)
			res.completes = false
			return res
		case domain.Conditional:
			sub := analyzeConditional(s, sc)
			res.bound.merge(sub.bound)
			res.touched.merge(sub.touched)
			invalidate(sc, sub.touched)
			if !sub.completes {
				res.completes = false
				return res
			}
		case domain.Protected:
			sub := analyzeProtected(s, sc)
			res.bound.merge(sub.bound)
			res.touched.merge(sub.touched)
			invalidate(sc, sub.touched)
			if !sub.completes {
				res.completes = false
				return res
			}
		case domain.Skipped:
			// Outside the analysis subset; contributes no bindings, but
			// any name it may rebind can no longer be trusted to hold
			// its proven literal value.
			for _, name := range s.Rebinds {
				res.touched.add(name)
				delete(sc, name)
			}
		}
	}
	return res
}

// analyzeConditional applies the branch policy. Exactly one arm of a
// chain executes, so:
//
//   - a branch whose guard is statically false is never taken;
//   - a branch whose guard is statically true before any indeterminate
//     sibling is definitely taken, and later siblings never run;
//   - a statically true guard after indeterminate siblings executes
//     exactly when none of them did, which closes the chain the same way
//     a trailing else would;
//   - with no closing arm the chain may fall through, so nothing is
//     promoted; with one, a name bound on every completing arm is
//     guaranteed regardless of which arm ran.
func analyzeConditional(cond domain.Conditional, sc scope) flow {
	res := newFlow()
	var candidates []flow
	exhaustive := false

	for _, branch := range cond.Branches {
		verdict := evalTruth(branch.Test, sc)
		if isEntryPointGuard(branch.Test) {
			verdict = truthFalse
		}
		switch verdict {
		case truthFalse:
			continue
		case truthTrue:
			taken := analyzeBlock(branch.Body, sc.clone())
			if len(candidates) == 0 {
				taken.touched.merge(taken.bound)
				return taken
			}
			candidates = append(candidates, taken)
			exhaustive = true
		default:
			candidates = append(candidates, analyzeBlock(branch.Body, sc.clone()))
		}
		if exhaustive {
			break
		}
	}

	if !exhaustive && cond.Else != nil {
		candidates = append(candidates, analyzeBlock(cond.Else, sc.clone()))
		exhaustive = true
	}

	for _, cand := range candidates {
		res.touched.merge(cand.touched)
		res.touched.merge(cand.bound)
	}

	if !exhaustive {
		// Some run may take none of the arms; no binding is guaranteed.
		return res
	}

	var completing []nameSet
	for _, cand := range candidates {
		if cand.completes {
			completing = append(completing, cand.bound)
		}
	}
	if len(completing) == 0 {
		res.completes = false
		return res
	}
	res.bound = intersect(completing)
	return res
}

// analyzeProtected applies the handler fallthrough rule: a name is
// guaranteed only when every path that can complete the statement binds
// it. The success path binds the protected block's names (extended by the
// else block); each handler path conservatively binds only its own names,
// since the exception may have fired before any protected binding; a
// handler that re-raises never completes. Finally-block bindings join
// every completing path.
func analyzeProtected(prot domain.Protected, sc scope) flow {
	res := newFlow()
	var paths []nameSet

	body := analyzeBlock(prot.Body, sc.clone())
	res.touched.merge(body.touched)
	res.touched.merge(body.bound)

	if body.completes {
		success := body.bound
		completes := true
		if len(prot.Else) > 0 {
			orelse := analyzeBlock(prot.Else, sc.clone())
			res.touched.merge(orelse.touched)
			res.touched.merge(orelse.bound)
			success.merge(orelse.bound)
			completes = orelse.completes
		}
		if completes {
			paths = append(paths, success)
		}
	}

	for _, handler := range prot.Handlers {
		hf := analyzeBlock(handler.Body, sc.clone())
		res.touched.merge(hf.touched)
		res.touched.merge(hf.bound)
		if handler.Reraises || !hf.completes {
			continue
		}
		paths = append(paths, hf.bound)
	}

	if len(paths) == 0 {
		res.completes = false
		return res
	}
	res.bound = intersect(paths)

	if len(prot.Final) > 0 {
		final := analyzeBlock(prot.Final, sc.clone())
		res.touched.merge(final.touched)
		res.touched.merge(final.bound)
		if !final.completes {
			res.bound = make(nameSet)
			res.completes = false
			return res
		}
		res.bound.merge(final.bound)
	}
	return res
}

// updateScope records literal assignments so later guards can compare
// against names already proven to hold literal values. Any other
// assignment forgets the name.
func updateScope(sc scope, assign domain.Assign) {
	lit, ok := resolveLiteral(assign.Value, sc)
	if ok && len(assign.Names) == 1 {
		sc[assign.Names[0]] = lit
		return
	}
	for _, name := range assign.Names {
		delete(sc, name)
	}
}

func invalidate(sc scope, touched nameSet) {
	for name := range touched {
		delete(sc, name)
	}
}
