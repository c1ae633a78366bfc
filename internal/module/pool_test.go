package module

import "testing"

func TestStatsTotalsMatchAllocatedBytes(t *testing.T) {
	p := NewPool()
	p.Ast.Alloc(Ast{})
	p.Expr.Alloc(Expr{})
	p.Decl.Alloc(Decl{})

	stats := p.Stats()
	if stats.Total() != p.AllocatedBytes() {
		t.Fatalf("Stats().Total() = %d, want %d", stats.Total(), p.AllocatedBytes())
	}
	if stats.DeclBytes == 0 {
		t.Fatal("expected non-zero DeclBytes after pushing a Decl")
	}
}

func TestFreeAstFamilyDropsOnlyAstFamilyArenas(t *testing.T) {
	p := NewPool()
	p.Ast.Alloc(Ast{})
	p.Decl.Alloc(Decl{})
	declBytesBefore := p.Stats().DeclBytes

	p.FreeAstFamily()

	stats := p.Stats()
	if stats.AstBytes != 0 {
		t.Fatalf("expected Ast arena reset, got %d bytes", stats.AstBytes)
	}
	if stats.DeclBytes != declBytesBefore {
		t.Fatalf("expected Decl arena untouched, got %d want %d", stats.DeclBytes, declBytesBefore)
	}
}
