package module

import (
	"c3c/internal/arena"
	"c3c/internal/intern"
)

// TokenKind classifies a single lexed token; the token-type and
// token-data arenas store these as parallel streams per file.
type TokenKind uint8

const (
	TokEOF TokenKind = iota
	TokIdent
	TokConstIdent
	TokTypeIdent
	TokKeyword
	TokIntLit
	TokString
	TokPunct
)

func (k TokenKind) String() string {
	switch k {
	case TokEOF:
		return "EOF"
	case TokIdent:
		return "IDENT"
	case TokConstIdent:
		return "CONST_IDENT"
	case TokTypeIdent:
		return "TYPE_IDENT"
	case TokKeyword:
		return "KEYWORD"
	case TokIntLit:
		return "INT_LIT"
	case TokString:
		return "STRING"
	case TokPunct:
		return "PUNCT"
	default:
		return "UNKNOWN"
	}
}

// TokenData is the payload half of a lexed token, stored in the
// token-data arena parallel to the token-type arena.
type TokenData struct {
	Text  string
	Ident intern.ID // valid for TokIdent/TokConstIdent/TokTypeIdent/TokKeyword
	Int   int64      // valid for TokIntLit
}

// Pool bundles the seven arenas every compilation owns: AST statements,
// expressions, declarations, type info, source locations, and the
// parallel token-type/token-data streams produced by the lexer.
//
// Pool is freed wholesale (by dropping the reference) at end-of-compile;
// there is no per-item release.
type Pool struct {
	Ast       *arena.Arena[Ast]
	Expr      *arena.Arena[Expr]
	Decl      *arena.Arena[Decl]
	Type      *arena.Arena[TypeInfo]
	SourceLoc *arena.Arena[uint32]
	TokKind   *arena.Arena[TokenKind]
	TokData   *arena.Arena[TokenData]
}

// NewPool allocates a fresh, empty Pool.
func NewPool() *Pool {
	return &Pool{
		Ast:       arena.New[Ast](256),
		Expr:      arena.New[Expr](256),
		Decl:      arena.New[Decl](64),
		Type:      arena.New[TypeInfo](64),
		SourceLoc: arena.New[uint32](256),
		TokKind:   arena.New[TokenKind](1024),
		TokData:   arena.New[TokenData](1024),
	}
}

// AllocatedBytes sums the estimated footprint of every arena in the pool,
// used for the post-codegen memory-usage summary.
func (p *Pool) AllocatedBytes() uint64 {
	return p.Ast.AllocatedBytes() +
		p.Expr.AllocatedBytes() +
		p.Decl.AllocatedBytes() +
		p.Type.AllocatedBytes() +
		p.SourceLoc.AllocatedBytes() +
		p.TokKind.AllocatedBytes() +
		p.TokData.AllocatedBytes()
}

// Stats is a point-in-time snapshot of a Pool's per-arena footprint, used
// to print the post-codegen memory-usage summary (spec.md §4.6's "prints
// a memory-usage summary" note, made concrete per SPEC_FULL's
// supplemented-features section).
type Stats struct {
	AstBytes       uint64
	ExprBytes      uint64
	DeclBytes      uint64
	TypeBytes      uint64
	SourceLocBytes uint64
	TokKindBytes   uint64
	TokDataBytes   uint64
}

// Total sums every arena's footprint; equal to AllocatedBytes().
func (s Stats) Total() uint64 {
	return s.AstBytes + s.ExprBytes + s.DeclBytes + s.TypeBytes +
		s.SourceLocBytes + s.TokKindBytes + s.TokDataBytes
}

// Stats snapshots the current footprint of every arena in the pool.
func (p *Pool) Stats() Stats {
	return Stats{
		AstBytes:       p.Ast.AllocatedBytes(),
		ExprBytes:      p.Expr.AllocatedBytes(),
		DeclBytes:      p.Decl.AllocatedBytes(),
		TypeBytes:      p.Type.AllocatedBytes(),
		SourceLocBytes: p.SourceLoc.AllocatedBytes(),
		TokKindBytes:   p.TokKind.AllocatedBytes(),
		TokDataBytes:   p.TokData.AllocatedBytes(),
	}
}

// FreeAstFamily drops the AST-family arenas (Ast, Expr, SourceLoc, token
// streams) after code generation has copied out whatever it needs, while
// keeping Decl and Type alive since the linker-facing name data (external
// names, resolved types) still references them.
func (p *Pool) FreeAstFamily() {
	p.Ast = arena.New[Ast](1)
	p.Expr = arena.New[Expr](1)
	p.SourceLoc = arena.New[uint32](1)
	p.TokKind = arena.New[TokenKind](1)
	p.TokData = arena.New[TokenData](1)
}
