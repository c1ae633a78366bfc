package frontend

import (
	"fmt"

	"c3c/internal/arena"
	"c3c/internal/intern"
	"c3c/internal/module"
	"c3c/internal/source"
)

// Parser builds a module.Context (imports + top-level declarations) from a
// token stream, allocating every node into the shared module.Pool so
// indices stay valid for the rest of the compile.
type Parser struct {
	toks []Token
	pos  int
	pool *module.Pool
	in   *intern.Interner
	file source.FileID
}

// NewParser creates a Parser over toks, allocating nodes into pool.
func NewParser(toks []Token, pool *module.Pool, in *intern.Interner, file source.FileID) *Parser {
	return &Parser{toks: toks, pool: pool, in: in, file: file}
}

func (p *Parser) peek() Token  { return p.toks[p.pos] }
func (p *Parser) advance() Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) span(start, end uint32) source.Span {
	return source.Span{File: p.file, Start: start, End: end}
}

func (p *Parser) expectPunct(text string) (Token, error) {
	t := p.peek()
	if t.Kind != module.TokPunct || t.Text != text {
		return t, fmt.Errorf("frontend: expected %q, got %q at offset %d", text, t.Text, t.Offset)
	}
	return p.advance(), nil
}

func (p *Parser) expectKeyword(text string) (Token, error) {
	t := p.peek()
	if t.Kind != module.TokKeyword || t.Text != text {
		return t, fmt.Errorf("frontend: expected keyword %q, got %q at offset %d", text, t.Text, t.Offset)
	}
	return p.advance(), nil
}

func (p *Parser) expectIdent() (Token, error) {
	t := p.peek()
	if t.Kind != module.TokIdent && t.Kind != module.TokTypeIdent && t.Kind != module.TokConstIdent {
		return t, fmt.Errorf("frontend: expected identifier, got %q at offset %d", t.Text, t.Offset)
	}
	return p.advance(), nil
}

// Parse consumes the whole token stream and returns the resulting Context.
func (p *Parser) Parse() (*module.Context, error) {
	if _, err := p.expectKeyword("module"); err != nil {
		return nil, err
	}
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunct(";"); err != nil {
		return nil, err
	}

	ctx := &module.Context{
		File: p.file,
		CurrentModule: module.Path{
			Name: nameTok.Ident,
			Span: p.span(nameTok.Offset, nameTok.Offset+uint32(len(nameTok.Text))),
		},
	}

	for p.peek().Kind == module.TokKeyword && p.peek().Text == "import" {
		imp, err := p.parseImport()
		if err != nil {
			return nil, err
		}
		ctx.Imports = append(ctx.Imports, imp)
	}

	for p.peek().Kind != module.TokEOF {
		declIdx, err := p.parseTopLevelDecl(ctx.CurrentModule.Name)
		if err != nil {
			return nil, err
		}
		ctx.Declarations = append(ctx.Declarations, declIdx)
	}

	return ctx, nil
}

func (p *Parser) parseImport() (module.Path, error) {
	start, err := p.expectKeyword("import")
	if err != nil {
		return module.Path{}, err
	}
	nameTok, err := p.expectIdent()
	if err != nil {
		return module.Path{}, err
	}
	if _, err := p.expectPunct(";"); err != nil {
		return module.Path{}, err
	}
	return module.Path{Name: nameTok.Ident, Span: p.span(start.Offset, nameTok.Offset+uint32(len(nameTok.Text)))}, nil
}

func (p *Parser) parseTopLevelDecl(moduleName intern.ID) (arena.Index, error) {
	vis := module.ModuleVisible
	if p.peek().Kind == module.TokKeyword && p.peek().Text == "pub" {
		p.advance()
		vis = module.Public
	}

	switch {
	case p.peek().Kind == module.TokKeyword && p.peek().Text == "fn":
		return p.parseFuncDecl(moduleName, vis)
	case p.peek().Kind == module.TokKeyword && p.peek().Text == "ctassert":
		return p.parseCtAssert(moduleName)
	case p.peek().Kind == module.TokIdent:
		return p.parseVarDecl(moduleName, vis)
	default:
		t := p.peek()
		return arena.None, fmt.Errorf("frontend: unexpected token %q at offset %d", t.Text, t.Offset)
	}
}

func (p *Parser) parseType() (arena.Index, error) {
	t := p.peek()
	var kind module.TypeKind
	switch {
	case t.Kind == module.TokKeyword && t.Text == "int":
		kind = module.TypeInt
	case t.Kind == module.TokKeyword && t.Text == "bool":
		kind = module.TypeBool
	case t.Kind == module.TokKeyword && t.Text == "void":
		kind = module.TypeVoid
	case t.Kind == module.TokTypeIdent:
		p.advance()
		return p.pool.Type.Alloc(module.TypeInfo{Kind: module.TypeNamed, Name: t.Ident}), nil
	default:
		return arena.None, fmt.Errorf("frontend: expected type, got %q at offset %d", t.Text, t.Offset)
	}
	p.advance()
	return p.pool.Type.Alloc(module.TypeInfo{Kind: kind}), nil
}

func (p *Parser) parseFuncDecl(moduleName intern.ID, vis module.Visibility) (arena.Index, error) {
	start, err := p.expectKeyword("fn")
	if err != nil {
		return arena.None, err
	}
	retType, err := p.parseType()
	if err != nil {
		return arena.None, err
	}
	nameTok, err := p.expectIdent()
	if err != nil {
		return arena.None, err
	}
	if _, err := p.expectPunct("("); err != nil {
		return arena.None, err
	}
	var params []module.Param
	for p.peek().Text != ")" {
		pt, err := p.parseType()
		if err != nil {
			return arena.None, err
		}
		pn, err := p.expectIdent()
		if err != nil {
			return arena.None, err
		}
		params = append(params, module.Param{Name: pn.Ident, Type: pt})
		if p.peek().Text == "," {
			p.advance()
		}
	}
	if _, err := p.expectPunct(")"); err != nil {
		return arena.None, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return arena.None, err
	}

	decl := module.Decl{
		Name:          nameTok.Ident,
		ModuleName:    moduleName,
		Visibility:    vis,
		Kind:          module.DeclFunc,
		ResolveStatus: module.Pending,
		Span:          p.span(start.Offset, nameTok.Offset+uint32(len(nameTok.Text))),
		Payload:       &module.FuncPayload{ReturnType: retType, Params: params, Body: body},
	}
	return p.pool.Decl.Alloc(decl), nil
}

func (p *Parser) parseBlock() (arena.Index, error) {
	if _, err := p.expectPunct("{"); err != nil {
		return arena.None, err
	}
	var stmts []arena.Index
	for p.peek().Text != "}" {
		s, err := p.parseStmt()
		if err != nil {
			return arena.None, err
		}
		stmts = append(stmts, s)
	}
	if _, err := p.expectPunct("}"); err != nil {
		return arena.None, err
	}
	return p.pool.Ast.Alloc(module.Ast{Kind: module.AstBlock, Stmts: stmts}), nil
}

func (p *Parser) parseStmt() (arena.Index, error) {
	t := p.peek()
	switch {
	case t.Kind == module.TokKeyword && t.Text == "return":
		p.advance()
		var val arena.Index
		if p.peek().Text != ";" {
			v, err := p.parseExpr()
			if err != nil {
				return arena.None, err
			}
			val = v
		}
		if _, err := p.expectPunct(";"); err != nil {
			return arena.None, err
		}
		return p.pool.Ast.Alloc(module.Ast{Kind: module.AstReturn, Value: val}), nil

	case t.Kind == module.TokIdent && p.pos+1 < len(p.toks) && p.toks[p.pos+1].Text == ":=":
		return p.parseLocalVarDecl()

	default:
		e, err := p.parseExpr()
		if err != nil {
			return arena.None, err
		}
		if _, err := p.expectPunct(";"); err != nil {
			return arena.None, err
		}
		return p.pool.Ast.Alloc(module.Ast{Kind: module.AstExprStmt, Value: e}), nil
	}
}

func (p *Parser) parseLocalVarDecl() (arena.Index, error) {
	nameTok, err := p.expectIdent()
	if err != nil {
		return arena.None, err
	}
	if _, err := p.expectPunct(":="); err != nil {
		return arena.None, err
	}
	initExpr, err := p.parseExpr()
	if err != nil {
		return arena.None, err
	}
	if _, err := p.expectPunct(";"); err != nil {
		return arena.None, err
	}
	decl := module.Decl{
		Name:          nameTok.Ident,
		Visibility:    module.Local,
		Kind:          module.DeclVar,
		ResolveStatus: module.Pending,
		Span:          p.span(nameTok.Offset, nameTok.Offset+uint32(len(nameTok.Text))),
		Payload:       &module.VarPayload{Init: initExpr, Mutable: true},
	}
	declIdx := p.pool.Decl.Alloc(decl)
	return p.pool.Ast.Alloc(module.Ast{Kind: module.AstVarDecl, DeclIndex: declIdx}), nil
}

func (p *Parser) parseVarDecl(moduleName intern.ID, vis module.Visibility) (arena.Index, error) {
	nameTok, err := p.expectIdent()
	if err != nil {
		return arena.None, err
	}
	if _, err := p.expectPunct(":="); err != nil {
		return arena.None, err
	}
	initExpr, err := p.parseExpr()
	if err != nil {
		return arena.None, err
	}
	if _, err := p.expectPunct(";"); err != nil {
		return arena.None, err
	}
	decl := module.Decl{
		Name:          nameTok.Ident,
		ModuleName:    moduleName,
		Visibility:    vis,
		Kind:          module.DeclVar,
		ResolveStatus: module.Pending,
		Span:          p.span(nameTok.Offset, nameTok.Offset+uint32(len(nameTok.Text))),
		Payload:       &module.VarPayload{Init: initExpr, Mutable: true},
	}
	return p.pool.Decl.Alloc(decl), nil
}

func (p *Parser) parseCtAssert(moduleName intern.ID) (arena.Index, error) {
	start, err := p.expectKeyword("ctassert")
	if err != nil {
		return arena.None, err
	}
	if _, err := p.expectPunct("("); err != nil {
		return arena.None, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return arena.None, err
	}
	msg := ""
	if p.peek().Text == "," {
		p.advance()
		msgTok := p.peek()
		if msgTok.Kind == module.TokString {
			msg = msgTok.Text
			p.advance()
		}
	}
	if _, err := p.expectPunct(")"); err != nil {
		return arena.None, err
	}
	if _, err := p.expectPunct(";"); err != nil {
		return arena.None, err
	}
	decl := module.Decl{
		ModuleName:    moduleName,
		Visibility:    module.Local,
		Kind:          module.DeclCtAssert,
		ResolveStatus: module.Pending,
		Span:          p.span(start.Offset, start.Offset+uint32(len("ctassert"))),
		Payload:       &module.CtAssertPayload{Condition: cond, Message: msg},
	}
	return p.pool.Decl.Alloc(decl), nil
}

// parseExpr parses a minimal expression grammar: literals, identifiers,
// and left-associative binary operators, enough to drive the DECLS and
// CT_ASSERT stages' worked examples.
func (p *Parser) parseExpr() (arena.Index, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return arena.None, err
	}
	for isBinaryOp(p.peek().Text) && p.peek().Kind == module.TokPunct {
		op := p.advance().Text
		right, err := p.parsePrimary()
		if err != nil {
			return arena.None, err
		}
		left = p.pool.Expr.Alloc(module.Expr{Kind: module.ExprBinary, Op: op, Left: left, Right: right})
	}
	return left, nil
}

func isBinaryOp(text string) bool {
	switch text {
	case "==", "!=", "<=", ">=", "<", ">", "+", "-", "*", "/", "&&", "||":
		return true
	default:
		return false
	}
}

func (p *Parser) parsePrimary() (arena.Index, error) {
	t := p.peek()
	switch {
	case t.Kind == module.TokIntLit:
		p.advance()
		return p.pool.Expr.Alloc(module.Expr{Kind: module.ExprIntLit, IntValue: t.Int}), nil

	case t.Kind == module.TokKeyword && (t.Text == "true" || t.Text == "false"):
		p.advance()
		return p.pool.Expr.Alloc(module.Expr{Kind: module.ExprBoolLit, BoolValue: t.Text == "true"}), nil

	case t.Kind == module.TokIdent || t.Kind == module.TokConstIdent || t.Kind == module.TokTypeIdent:
		p.advance()
		ident := p.pool.Expr.Alloc(module.Expr{Kind: module.ExprIdent, Name: t.Ident})
		if p.peek().Text == "(" {
			return p.parseCallArgs(ident)
		}
		return ident, nil

	case t.Text == "(":
		p.advance()
		e, err := p.parseExpr()
		if err != nil {
			return arena.None, err
		}
		if _, err := p.expectPunct(")"); err != nil {
			return arena.None, err
		}
		return e, nil

	default:
		return arena.None, fmt.Errorf("frontend: expected expression, got %q at offset %d", t.Text, t.Offset)
	}
}

func (p *Parser) parseCallArgs(callee arena.Index) (arena.Index, error) {
	if _, err := p.expectPunct("("); err != nil {
		return arena.None, err
	}
	var args []arena.Index
	for p.peek().Text != ")" {
		a, err := p.parseExpr()
		if err != nil {
			return arena.None, err
		}
		args = append(args, a)
		if p.peek().Text == "," {
			p.advance()
		}
	}
	if _, err := p.expectPunct(")"); err != nil {
		return arena.None, err
	}
	return p.pool.Expr.Alloc(module.Expr{Kind: module.ExprCall, Callee: callee, Args: args}), nil
}
