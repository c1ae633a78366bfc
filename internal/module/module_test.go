package module

import (
	"testing"

	"c3c/internal/intern"
)

func TestAdvanceStageMonotonic(t *testing.T) {
	in := intern.New()
	m := NewModule(in.Intern("hello"), nil)

	m.AdvanceStage(Imports)
	m.AdvanceStage(RegisterGlobals)
	if m.Stage != RegisterGlobals {
		t.Fatalf("expected RegisterGlobals, got %v", m.Stage)
	}
}

func TestAdvanceStagePanicsOnRegression(t *testing.T) {
	in := intern.New()
	m := NewModule(in.Intern("hello"), nil)
	m.AdvanceStage(Decls)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on stage regression")
		}
	}()
	m.AdvanceStage(Imports)
}

func TestGenericReflectsParameters(t *testing.T) {
	in := intern.New()
	plain := NewModule(in.Intern("plain"), nil)
	if plain.Generic() {
		t.Fatal("expected non-generic module")
	}
	generic := NewModule(in.Intern("box"), []intern.ID{in.Intern("T")})
	if !generic.Generic() {
		t.Fatal("expected generic module")
	}
}
