package domain

// The analysis subset of Python's top-level grammar. The upstream parser
// lowers a full syntax tree into these tagged variants; anything outside
// the subset becomes Skipped (or Opaque for expressions) and contributes
// no bindings, keeping the analysis conservative.

// Module is one submodule's lowered syntax tree.
type Module struct {
	Body Block
}

// Block is an ordered sequence of statements sharing one scope.
type Block []Stmt

// Stmt is a statement in the analysis subset.
type Stmt interface{ stmtNode() }

// Assign binds one or more names to the value of an expression.
// Tuple unpacking contributes every target name.
type Assign struct {
	Names []string
	Value Expr
}

// Define binds a name through a function or class definition.
type Define struct {
	Name string
}

// ImportBind binds names through an import statement. Star imports
// contribute no names.
type ImportBind struct {
	Names []string
}

// CondBranch is one guarded arm of a Conditional.
type CondBranch struct {
	Test Expr
	Body Block
}

// Conditional is an if/elif/else chain. Exactly one arm executes at
// runtime; an absent Else means the chain may fall through unbound.
type Conditional struct {
	Branches []CondBranch
	Else     Block
}

// Handler is one except clause of a Protected statement. Reraises marks
// handlers that unconditionally re-raise, so their path never completes.
type Handler struct {
	Body     Block
	Reraises bool
}

// Protected is a try/except/else/finally statement.
type Protected struct {
	Body     Block
	Handlers []Handler
	Else     Block
	Final    Block
}

// Raise aborts the current path. Bindings made on a path that raises are
// never counted, since control never completes that path.
type Raise struct{}

// Skipped is any statement kind outside the analysis subset. It binds
// nothing, but Rebinds lists the names it may assign (loop targets, del
// targets, bindings buried in loop bodies) so that proven literal values
// for those names can be discarded.
type Skipped struct {
	Rebinds []string
}

func (Assign) stmtNode()      {}
func (Define) stmtNode()      {}
func (ImportBind) stmtNode()  {}
func (Conditional) stmtNode() {}
func (Protected) stmtNode()   {}
func (Raise) stmtNode()       {}
func (Skipped) stmtNode()     {}

// Expr is an expression in the literal mini-language used for static
// truthiness evaluation.
type Expr interface{ exprNode() }

// NoneLit is the None literal.
type NoneLit struct{}

// BoolLit is a True or False literal.
type BoolLit struct {
	Value bool
}

// IntLit is an integer literal.
type IntLit struct {
	Value int64
}

// StrLit is a string literal.
type StrLit struct {
	Value string
}

// SeqLit is a list or tuple display. Its truthiness depends only on its
// length, so the elements may themselves be opaque.
type SeqLit struct {
	Elems []Expr
}

// NameRef references a name. It evaluates statically only when the name
// is already proven to hold a literal value.
type NameRef struct {
	Name string
}

// CmpOp is a comparison operator.
type CmpOp int

const (
	CmpEq CmpOp = iota
	CmpNotEq
	CmpLt
	CmpLtE
	CmpGt
	CmpGtE
	CmpIs
	CmpIsNot
	CmpUnknown
)

// Compare is a single binary comparison. Chained comparisons are lowered
// to a BoolCombo of pairwise Compares.
type Compare struct {
	Left  Expr
	Op    CmpOp
	Right Expr
}

// BoolOpKind selects between "and" and "or" combination semantics.
type BoolOpKind int

const (
	BoolAnd BoolOpKind = iota
	BoolOr
)

// BoolCombo is a short-circuit boolean combination of operands.
type BoolCombo struct {
	Op       BoolOpKind
	Operands []Expr
}

// Negate is a "not" expression.
type Negate struct {
	Operand Expr
}

// Opaque is any expression whose value cannot be determined statically:
// calls, attribute access, arithmetic, comprehensions and so on.
type Opaque struct{}

func (NoneLit) exprNode()   {}
func (BoolLit) exprNode()   {}
func (IntLit) exprNode()    {}
func (StrLit) exprNode()    {}
func (SeqLit) exprNode()    {}
func (NameRef) exprNode()   {}
func (Compare) exprNode()   {}
func (BoolCombo) exprNode() {}
func (Negate) exprNode()    {}
func (Opaque) exprNode()    {}

// IsLiteral reports whether e is a literal of the mini-language (not a
// name reference or combination).
func IsLiteral(e Expr) bool {
	switch e.(type) {
	case NoneLit, BoolLit, IntLit, StrLit, SeqLit:
		return true
	}
	return false
}

// StaticStringList extracts a top-level assignment of a literal list (or
// tuple) of strings to the given name, e.g. __all__ = ['x', 'y']. The
// last unconditional top-level assignment wins, matching runtime
// semantics. Returns false when the name is never assigned or its final
// value is not a literal string sequence; callers degrade to analysis in
// that case rather than failing.
func (m *Module) StaticStringList(name string) ([]string, bool) {
	var value Expr
	assigned := false
	for _, stmt := range m.Body {
		assign, ok := stmt.(Assign)
		if !ok {
			continue
		}
		for _, n := range assign.Names {
			if n == name {
				value = assign.Value
				assigned = true
			}
		}
	}
	if !assigned {
		return nil, false
	}
	seq, ok := value.(SeqLit)
	if !ok {
		return nil, false
	}
	names := make([]string, 0, len(seq.Elems))
	for _, elem := range seq.Elems {
		str, ok := elem.(StrLit)
		if !ok {
			return nil, false
		}
		names = append(names, str.Value)
	}
	return names, true
}
