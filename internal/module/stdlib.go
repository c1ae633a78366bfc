package module

import "c3c/internal/intern"

// EnsureStdModule materializes the synthetic std_module the first time it
// is needed, pre-elevated to Last so the pipeline never re-analyzes it
// (spec.md §4.4's bootstrap built-ins). Safe to call more than once.
func (c *Compiler) EnsureStdModule() *Module {
	if c.StdModule != nil {
		return c.StdModule
	}
	name := c.Interner.Intern("std")
	m := c.FindOrCreateModule(name, nil)
	m.Stage = Last
	c.StdModule = m
	return m
}

// AddGlobalDefine inserts an already-resolved public constant into
// std_module, registering it in both symbol tables. name must already be
// interned; initExpr is the constant's resolved initializer, copied into
// the Expr arena.
func (c *Compiler) AddGlobalDefine(name intern.ID, initExpr *Expr) *Decl {
	std := c.EnsureStdModule()
	idx := c.Pool.Expr.Alloc(*initExpr)
	decl := &Decl{
		Name:          name,
		ModuleName:    std.Name,
		Visibility:    Public,
		Kind:          DeclVar,
		ResolveStatus: Done,
		Payload:       &VarPayload{Init: idx},
	}
	declIdx := c.Pool.Decl.Alloc(*decl)
	stored := c.Pool.Decl.Get(declIdx)
	std.Symbols.Set(name, stored)
	std.PublicSymbols.Set(name, stored)
	c.RegisterPublicSymbol(stored)
	return stored
}

// AddGlobalDefineInt is a convenience wrapper for the common case of a
// resolved integer-literal constant (e.g. platform size/version constants).
func (c *Compiler) AddGlobalDefineInt(name intern.ID, value int64) *Decl {
	return c.AddGlobalDefine(name, &Expr{Kind: ExprIntLit, IntValue: value})
}
