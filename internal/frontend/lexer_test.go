package frontend

import (
	"testing"

	"c3c/internal/intern"
	"c3c/internal/module"
)

func TestTokenizeSimpleAssignment(t *testing.T) {
	in := intern.New()
	lx := NewLexer(in, []byte("x := 1;"))
	toks, err := lx.Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []module.TokenKind{
		module.TokIdent, module.TokPunct, module.TokIntLit, module.TokPunct, module.TokEOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %+v", len(want), len(toks), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Fatalf("token %d: expected %v, got %v", i, k, toks[i].Kind)
		}
	}
	if toks[2].Int != 1 {
		t.Fatalf("expected int literal 1, got %d", toks[2].Int)
	}
	if toks[len(toks)-1].Kind != module.TokEOF {
		t.Fatal("expected token stream to end in EOF")
	}
}

func TestTokenizeClassifiesIdentKinds(t *testing.T) {
	in := intern.New()
	lx := NewLexer(in, []byte("module fn MAX_SIZE Point x"))
	toks, err := lx.Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []module.TokenKind{
		module.TokKeyword, module.TokKeyword, module.TokConstIdent, module.TokTypeIdent, module.TokIdent, module.TokEOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %+v", len(want), len(toks), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Fatalf("token %d (%q): expected %v, got %v", i, toks[i].Text, k, toks[i].Kind)
		}
	}
}

func TestTokenizeLineComment(t *testing.T) {
	in := intern.New()
	lx := NewLexer(in, []byte("x := 1; // trailing comment\n"))
	toks, err := lx.Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[len(toks)-1].Kind != module.TokEOF {
		t.Fatal("expected stream to end in EOF past the comment")
	}
}

func TestTokenizeUnterminatedStringErrors(t *testing.T) {
	in := intern.New()
	lx := NewLexer(in, []byte(`"unterminated`))
	if _, err := lx.Tokenize(); err == nil {
		t.Fatal("expected an error for an unterminated string")
	}
}

func TestTokenizeUnknownCharErrors(t *testing.T) {
	in := intern.New()
	lx := NewLexer(in, []byte("x := @;"))
	if _, err := lx.Tokenize(); err == nil {
		t.Fatal("expected an error for an unknown character")
	}
}
