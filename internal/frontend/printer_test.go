package frontend

import (
	"strings"
	"testing"

	"c3c/internal/intern"
	"c3c/internal/module"
)

func TestPrintTokensEndsInEOF(t *testing.T) {
	in := intern.New()
	lx := NewLexer(in, []byte("x := 1;"))
	toks, err := lx.Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := PrintTokens(toks)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[len(lines)-1] != "EOF" {
		t.Fatalf("expected printed token stream to end in EOF, got %q", lines[len(lines)-1])
	}
}

func TestPrintAstRendersFuncAndReturn(t *testing.T) {
	in := intern.New()
	lx := NewLexer(in, []byte(`module app; pub fn int main() { return 0; }`))
	toks, err := lx.Tokenize()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	pool := module.NewPool()
	p := NewParser(toks, pool, in, 0)
	ctx, err := p.Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	out := PrintAst(in, pool, ctx)
	for _, want := range []string{"(module app", "(fn main", "(return 0)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected printed AST to contain %q, got:\n%s", want, out)
		}
	}
}
