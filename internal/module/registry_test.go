package module

import "testing"

func TestRegisterPublicSymbolUniqueThenPoisoned(t *testing.T) {
	c := New("", 100)
	m1 := c.FindOrCreateModule(c.Interner.Intern("m1"), nil)
	m2 := c.FindOrCreateModule(c.Interner.Intern("m2"), nil)
	piName := c.Interner.Intern("PI")

	d1 := &Decl{Name: piName, ModuleName: m1.Name, Visibility: Public, Kind: DeclVar, ResolveStatus: Done}
	c.RegisterPublicSymbol(d1)

	got, status := c.LookupGlobal(piName)
	if status != LookupUnique || got != d1 {
		t.Fatalf("expected unique lookup of d1, got %v, %v", got, status)
	}

	d2 := &Decl{Name: piName, ModuleName: m2.Name, Visibility: Public, Kind: DeclVar, ResolveStatus: Done}
	c.RegisterPublicSymbol(d2)

	_, status = c.LookupGlobal(piName)
	if status != LookupAmbiguous {
		t.Fatalf("expected ambiguous lookup after collision, got %v", status)
	}

	// Qualified lookup still resolves each module's own declaration.
	gotQ1, st1 := c.LookupQualified(m1.Name, piName)
	if st1 != LookupUnique || gotQ1 != d1 {
		t.Fatalf("expected m1::PI to resolve uniquely to d1, got %v, %v", gotQ1, st1)
	}
	gotQ2, st2 := c.LookupQualified(m2.Name, piName)
	if st2 != LookupUnique || gotQ2 != d2 {
		t.Fatalf("expected m2::PI to resolve uniquely to d2, got %v, %v", gotQ2, st2)
	}
}

func TestRegisterPublicSymbolPoisonsQualifiedOnSameModuleCollision(t *testing.T) {
	c := New("", 100)
	m1 := c.FindOrCreateModule(c.Interner.Intern("m1"), nil)
	fooName := c.Interner.Intern("foo")

	c.RegisterPublicSymbol(&Decl{Name: fooName, ModuleName: m1.Name, Visibility: Public, Kind: DeclFunc, ResolveStatus: Done})
	c.RegisterPublicSymbol(&Decl{Name: fooName, ModuleName: m1.Name, Visibility: Public, Kind: DeclFunc, ResolveStatus: Done})

	_, status := c.LookupQualified(m1.Name, fooName)
	if status != LookupAmbiguous {
		t.Fatalf("expected m1::foo to be poisoned, got %v", status)
	}
}

func TestLookupNotFound(t *testing.T) {
	c := New("", 100)
	_, status := c.LookupGlobal(c.Interner.Intern("nope"))
	if status != LookupNotFound {
		t.Fatalf("expected not found, got %v", status)
	}
}
