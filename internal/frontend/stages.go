package frontend

import (
	"c3c/internal/arena"
	"c3c/internal/diag"
	"c3c/internal/intern"
	"c3c/internal/module"
	"c3c/internal/source"
)

// ImportsStage resolves every import path recorded in a module's contexts
// against the compiler's module table, reporting an unresolved-import
// diagnostic for anything that was never loaded as a source file.
type ImportsStage struct{}

func (ImportsStage) Stage() module.AnalysisStage { return module.Imports }

func (ImportsStage) Run(c *module.Compiler, m *module.Module) {
	r := c.Reporter()
	for _, ctx := range m.Contexts {
		for _, imp := range ctx.Imports {
			if _, ok := c.Modules.Get(imp.Name); !ok {
				diag.ReportError(r, diag.SemaUnresolvedImport, imp.Span,
					"unresolved import: "+c.Interner.MustLookup(imp.Name)).Emit()
			}
		}
	}
}

// RegisterGlobalsStage walks every declaration a module's contexts parsed
// and inserts it into the module's symbol table, additionally registering
// public declarations in the compiler-wide global/qualified tables (spec.md
// §4.5's poison-on-collision semantics, implemented by
// module.Compiler.RegisterPublicSymbol).
type RegisterGlobalsStage struct{}

func (RegisterGlobalsStage) Stage() module.AnalysisStage { return module.RegisterGlobals }

func (RegisterGlobalsStage) Run(c *module.Compiler, m *module.Module) {
	r := c.Reporter()
	for _, ctx := range m.Contexts {
		for _, declIdx := range ctx.Declarations {
			decl := c.Pool.Decl.Get(declIdx)
			if decl == nil || decl.Name == intern.NoID {
				continue
			}
			if _, had := m.Symbols.Get(decl.Name); had {
				diag.ReportError(r, diag.SemaDuplicateSymbol, decl.Span,
					"duplicate symbol: "+c.Interner.MustLookup(decl.Name)).Emit()
				continue
			}
			m.Symbols.Set(decl.Name, decl)
			if decl.Visibility == module.Public {
				m.PublicSymbols.Set(decl.Name, decl)
				c.RegisterPublicSymbol(decl)
			}
		}
	}
}

// ConditionalCompilationStage is a pass-through: the reference front end's
// grammar subset carries no $if/$else directives, so nothing needs pruning
// before DECLS runs. The stage still exists so the pipeline's six-stage
// contract stays uniform across every module.
type ConditionalCompilationStage struct{}

func (ConditionalCompilationStage) Stage() module.AnalysisStage {
	return module.ConditionalCompilation
}

func (ConditionalCompilationStage) Run(c *module.Compiler, m *module.Module) {}

// DeclsStage resolves each declaration's named-type references: primitive
// kinds are already canonical at parse time, TypeNamed references are
// looked up against the module's own symbols and then the global table,
// poisoning the declaration on an unresolved or ambiguous name.
type DeclsStage struct{}

func (DeclsStage) Stage() module.AnalysisStage { return module.Decls }

func (DeclsStage) Run(c *module.Compiler, m *module.Module) {
	r := c.Reporter()
	for _, ctx := range m.Contexts {
		for _, declIdx := range ctx.Declarations {
			decl := c.Pool.Decl.Get(declIdx)
			if decl == nil {
				continue
			}
			resolveDeclType(c, m, r, decl)
		}
	}
}

func resolveDeclType(c *module.Compiler, m *module.Module, r diag.Reporter, decl *module.Decl) {
	var typeIdx arena.Index
	switch decl.Kind {
	case module.DeclFunc:
		typeIdx = decl.Func().ReturnType
	case module.DeclVar:
		typeIdx = decl.Var().Type
	default:
		decl.ResolveStatus = module.Done
		return
	}
	if !typeIdx.IsValid() {
		decl.ResolveStatus = module.Done
		return
	}
	ti := c.Pool.Type.Get(typeIdx)
	if ti == nil || ti.Kind != module.TypeNamed {
		decl.ResolveStatus = module.Done
		return
	}
	if _, ok := m.Symbols.Get(ti.Name); ok {
		decl.ResolveStatus = module.Done
		return
	}
	if _, status := c.LookupGlobal(ti.Name); status == module.LookupUnique {
		decl.ResolveStatus = module.Done
		return
	}
	decl.ResolveStatus = module.Poisoned
	diag.ReportError(r, diag.SemaUnresolvedSymbol, decl.Span,
		"unresolved type: "+c.Interner.MustLookup(ti.Name)).Emit()
}

// CtAssertStage evaluates every compile-time assertion's condition against
// the constant subset the reference front end supports (integer and
// boolean literals combined with ==, !=, <, <=, >, >=, &&, ||) and reports
// a diagnostic when the condition is false or not foldable to a constant.
type CtAssertStage struct{}

func (CtAssertStage) Stage() module.AnalysisStage { return module.CtAssert }

func (CtAssertStage) Run(c *module.Compiler, m *module.Module) {
	r := c.Reporter()
	for _, ctx := range m.Contexts {
		for _, declIdx := range ctx.Declarations {
			decl := c.Pool.Decl.Get(declIdx)
			if decl == nil || decl.Kind != module.DeclCtAssert {
				continue
			}
			data := decl.CtAssertData()
			val, ok := evalConstBool(c, data.Condition)
			if !ok {
				decl.ResolveStatus = module.Poisoned
				diag.ReportError(r, diag.SemaCtAssertNotConstant, decl.Span,
					"ctassert condition is not a compile-time constant").Emit()
				continue
			}
			if !val {
				decl.ResolveStatus = module.Poisoned
				msg := data.Message
				if msg == "" {
					msg = "compile-time assertion failed"
				}
				diag.ReportError(r, diag.SemaCtAssertFailed, decl.Span, msg).Emit()
				continue
			}
			decl.ResolveStatus = module.Done
		}
	}
}

// evalConstBool folds the constant-expression subset a ctassert condition
// is allowed to use down to a bool, returning ok=false when the expression
// isn't a literal or a comparison/logical combination of literals.
func evalConstBool(c *module.Compiler, idx arena.Index) (bool, bool) {
	e := c.Pool.Expr.Get(idx)
	if e == nil {
		return false, false
	}
	switch e.Kind {
	case module.ExprBoolLit:
		return e.BoolValue, true
	case module.ExprIntLit:
		return e.IntValue != 0, true
	case module.ExprBinary:
		return evalConstBinary(c, e)
	default:
		return false, false
	}
}

func evalConstInt(c *module.Compiler, idx arena.Index) (int64, bool) {
	e := c.Pool.Expr.Get(idx)
	if e == nil || e.Kind != module.ExprIntLit {
		return 0, false
	}
	return e.IntValue, true
}

func evalConstBinary(c *module.Compiler, e *module.Expr) (bool, bool) {
	switch e.Op {
	case "&&", "||":
		l, lok := evalConstBool(c, e.Left)
		rgt, rok := evalConstBool(c, e.Right)
		if !lok || !rok {
			return false, false
		}
		if e.Op == "&&" {
			return l && rgt, true
		}
		return l || rgt, true
	case "==", "!=", "<", "<=", ">", ">=":
		l, lok := evalConstInt(c, e.Left)
		rgt, rok := evalConstInt(c, e.Right)
		if !lok || !rok {
			return false, false
		}
		switch e.Op {
		case "==":
			return l == rgt, true
		case "!=":
			return l != rgt, true
		case "<":
			return l < rgt, true
		case "<=":
			return l <= rgt, true
		case ">":
			return l > rgt, true
		case ">=":
			return l >= rgt, true
		}
	}
	return false, false
}

// FunctionsStage resolves identifier references inside function bodies
// against a simple lexical scope stack (locals, then module symbols, then
// the compiler-wide global table), reporting unresolved names. It is the
// last stage, so every module reaching it already has a fully registered
// symbol table to resolve against.
type FunctionsStage struct{}

func (FunctionsStage) Stage() module.AnalysisStage { return module.Functions }

func (FunctionsStage) Run(c *module.Compiler, m *module.Module) {
	r := c.Reporter()
	for _, ctx := range m.Contexts {
		for _, declIdx := range ctx.Declarations {
			decl := c.Pool.Decl.Get(declIdx)
			if decl == nil || decl.Kind != module.DeclFunc {
				continue
			}
			body := decl.Func().Body
			if !body.IsValid() {
				continue
			}
			scope := newScope(nil)
			for _, p := range decl.Func().Params {
				scope.define(p.Name)
			}
			checkStmt(c, m, r, scope, body)
		}
	}
}

// scope is a chained set of names visible in the current lexical block.
type scope struct {
	parent *scope
	names  map[intern.ID]struct{}
}

func newScope(parent *scope) *scope {
	return &scope{parent: parent, names: make(map[intern.ID]struct{})}
}

func (s *scope) define(name intern.ID) { s.names[name] = struct{}{} }

func (s *scope) resolves(name intern.ID) bool {
	for cur := s; cur != nil; cur = cur.parent {
		if _, ok := cur.names[name]; ok {
			return true
		}
	}
	return false
}

func checkStmt(c *module.Compiler, m *module.Module, r diag.Reporter, sc *scope, idx arena.Index) {
	n := c.Pool.Ast.Get(idx)
	if n == nil {
		return
	}
	switch n.Kind {
	case module.AstBlock:
		inner := newScope(sc)
		for _, s := range n.Stmts {
			checkStmt(c, m, r, inner, s)
		}
	case module.AstReturn, module.AstExprStmt:
		if n.Value.IsValid() {
			checkExpr(c, m, r, sc, n.Value)
		}
	case module.AstVarDecl:
		decl := c.Pool.Decl.Get(n.DeclIndex)
		if decl != nil {
			if init := decl.Var().Init; init.IsValid() {
				checkExpr(c, m, r, sc, init)
			}
			sc.define(decl.Name)
		}
	case module.AstIf:
		checkExpr(c, m, r, sc, n.Cond)
		checkStmt(c, m, r, sc, n.Then)
		if n.Else.IsValid() {
			checkStmt(c, m, r, sc, n.Else)
		}
	case module.AstWhile:
		checkExpr(c, m, r, sc, n.Cond)
		checkStmt(c, m, r, sc, n.Then)
	}
}

func checkExpr(c *module.Compiler, m *module.Module, r diag.Reporter, sc *scope, idx arena.Index) {
	e := c.Pool.Expr.Get(idx)
	if e == nil {
		return
	}
	switch e.Kind {
	case module.ExprIdent:
		if sc.resolves(e.Name) {
			return
		}
		if _, ok := m.Symbols.Get(e.Name); ok {
			return
		}
		if _, status := c.LookupGlobal(e.Name); status == module.LookupUnique {
			return
		}
		diag.ReportError(r, diag.SemaUnresolvedSymbol, source.Span{},
			"unresolved symbol: "+c.Interner.MustLookup(e.Name)).Emit()
	case module.ExprBinary:
		checkExpr(c, m, r, sc, e.Left)
		checkExpr(c, m, r, sc, e.Right)
	case module.ExprCall:
		checkExpr(c, m, r, sc, e.Callee)
		for _, a := range e.Args {
			checkExpr(c, m, r, sc, a)
		}
	}
}
