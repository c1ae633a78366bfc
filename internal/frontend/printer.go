package frontend

import (
	"fmt"
	"strings"

	"c3c/internal/arena"
	"c3c/internal/intern"
	"c3c/internal/module"
)

// PrintTokens renders a token stream one per line as KIND "text", ending
// in EOF, reproducing the lex_only worked example (spec.md §8 S4).
func PrintTokens(toks []Token) string {
	var b strings.Builder
	for _, t := range toks {
		if t.Kind == module.TokEOF {
			b.WriteString("EOF\n")
			continue
		}
		fmt.Fprintf(&b, "%s %q\n", t.Kind, t.Text)
	}
	return b.String()
}

// PrintAst renders a module.Context's declarations as an indented
// S-expression tree, reproducing the parse_only worked example (spec.md §8
// S3). It reads directly from the shared pool so printing never mutates
// compiler state.
func PrintAst(in *intern.Interner, pool *module.Pool, ctx *module.Context) string {
	var b strings.Builder
	fmt.Fprintf(&b, "(module %s\n", in.MustLookup(ctx.CurrentModule.Name))
	for _, imp := range ctx.Imports {
		fmt.Fprintf(&b, "  (import %s)\n", in.MustLookup(imp.Name))
	}
	p := &printer{in: in, pool: pool, b: &b}
	for _, d := range ctx.Declarations {
		p.decl(d, 1)
	}
	b.WriteString(")\n")
	return b.String()
}

type printer struct {
	in   *intern.Interner
	pool *module.Pool
	b    *strings.Builder
}

func (p *printer) indent(depth int) {
	p.b.WriteString(strings.Repeat("  ", depth))
}

func (p *printer) name(id intern.ID) string {
	if id == intern.NoID {
		return "_"
	}
	return p.in.MustLookup(id)
}

func (p *printer) decl(idx arena.Index, depth int) {
	d := p.pool.Decl.Get(idx)
	if d == nil {
		return
	}
	p.indent(depth)
	switch d.Kind {
	case module.DeclFunc:
		fp := d.Func()
		fmt.Fprintf(p.b, "(fn %s (", p.name(d.Name))
		for i, param := range fp.Params {
			if i > 0 {
				p.b.WriteString(" ")
			}
			p.b.WriteString(p.name(param.Name))
		}
		p.b.WriteString(")\n")
		if fp.Body.IsValid() {
			p.ast(fp.Body, depth+1)
		}
		p.indent(depth)
		p.b.WriteString(")\n")

	case module.DeclVar:
		vp := d.Var()
		fmt.Fprintf(p.b, "(var %s", p.name(d.Name))
		if vp.Init.IsValid() {
			p.b.WriteString(" ")
			p.expr(vp.Init)
		}
		p.b.WriteString(")\n")

	case module.DeclCtAssert:
		cp := d.CtAssertData()
		p.b.WriteString("(ctassert ")
		p.expr(cp.Condition)
		if cp.Message != "" {
			fmt.Fprintf(p.b, " %q", cp.Message)
		}
		p.b.WriteString(")\n")

	default:
		fmt.Fprintf(p.b, "(%s %s)\n", d.Kind, p.name(d.Name))
	}
}

func (p *printer) ast(idx arena.Index, depth int) {
	n := p.pool.Ast.Get(idx)
	if n == nil {
		return
	}
	switch n.Kind {
	case module.AstBlock:
		p.indent(depth)
		p.b.WriteString("(block\n")
		for _, s := range n.Stmts {
			p.ast(s, depth+1)
		}
		p.indent(depth)
		p.b.WriteString(")\n")

	case module.AstReturn:
		p.indent(depth)
		p.b.WriteString("(return")
		if n.Value.IsValid() {
			p.b.WriteString(" ")
			p.expr(n.Value)
		}
		p.b.WriteString(")\n")

	case module.AstExprStmt:
		p.indent(depth)
		p.expr(n.Value)
		p.b.WriteString("\n")

	case module.AstVarDecl:
		p.decl(n.DeclIndex, depth)

	case module.AstIf:
		p.indent(depth)
		p.b.WriteString("(if ")
		p.expr(n.Cond)
		p.b.WriteString("\n")
		p.ast(n.Then, depth+1)
		if n.Else.IsValid() {
			p.ast(n.Else, depth+1)
		}
		p.indent(depth)
		p.b.WriteString(")\n")

	case module.AstWhile:
		p.indent(depth)
		p.b.WriteString("(while ")
		p.expr(n.Cond)
		p.b.WriteString("\n")
		p.ast(n.Then, depth+1)
		p.indent(depth)
		p.b.WriteString(")\n")
	}
}

func (p *printer) expr(idx arena.Index) {
	e := p.pool.Expr.Get(idx)
	if e == nil {
		p.b.WriteString("_")
		return
	}
	switch e.Kind {
	case module.ExprIntLit:
		fmt.Fprintf(p.b, "%d", e.IntValue)
	case module.ExprBoolLit:
		fmt.Fprintf(p.b, "%t", e.BoolValue)
	case module.ExprIdent:
		p.b.WriteString(p.name(e.Name))
	case module.ExprBinary:
		p.b.WriteString("(")
		p.b.WriteString(e.Op)
		p.b.WriteString(" ")
		p.expr(e.Left)
		p.b.WriteString(" ")
		p.expr(e.Right)
		p.b.WriteString(")")
	case module.ExprCall:
		p.b.WriteString("(call ")
		p.expr(e.Callee)
		for _, a := range e.Args {
			p.b.WriteString(" ")
			p.expr(a)
		}
		p.b.WriteString(")")
	}
}
