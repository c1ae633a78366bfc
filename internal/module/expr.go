package module

import (
	"c3c/internal/arena"
	"c3c/internal/intern"
)

// ExprKind tags the variant held by an Expr.
type ExprKind uint8

const (
	ExprIntLit ExprKind = iota
	ExprBoolLit
	ExprIdent
	ExprBinary
	ExprCall
)

// Expr is a tagged-union expression node. Subexpressions are referenced by
// arena.Index, never by owning pointer, so the expression arena can grow
// without invalidating already-built trees.
type Expr struct {
	Kind ExprKind

	// ExprIntLit
	IntValue int64
	// ExprBoolLit
	BoolValue bool
	// ExprIdent
	Name intern.ID
	// ExprBinary
	Op    string
	Left  arena.Index
	Right arena.Index
	// ExprCall
	Callee arena.Index
	Args   []arena.Index
}
