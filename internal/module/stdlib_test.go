package module

import "testing"

func TestAddGlobalDefineIntIsResolvedAndPublic(t *testing.T) {
	c := New("", 100)
	name := c.Interner.Intern("PLATFORM_BITS")

	decl := c.AddGlobalDefineInt(name, 64)
	if decl.ResolveStatus != Done {
		t.Fatalf("expected bootstrap define to be Done, got %v", decl.ResolveStatus)
	}
	if decl.Visibility != Public {
		t.Fatalf("expected bootstrap define to be Public, got %v", decl.Visibility)
	}

	got, status := c.LookupGlobal(name)
	if status != LookupUnique || got.Var().Init == 0 {
		t.Fatalf("expected PLATFORM_BITS to resolve uniquely with an initializer, got %v, %v", got, status)
	}
}

func TestEnsureStdModuleFrozenAtLast(t *testing.T) {
	c := New("", 100)
	std := c.EnsureStdModule()
	if std.Stage != Last {
		t.Fatalf("expected std_module frozen at Last, got %v", std.Stage)
	}
	// calling again must return the same module without resetting stage
	std.Stage = Last
	again := c.EnsureStdModule()
	if again != std {
		t.Fatal("expected EnsureStdModule to be idempotent")
	}
}
