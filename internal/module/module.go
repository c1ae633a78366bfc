package module

import (
	"c3c/internal/intern"
	"c3c/internal/symtab"
)

// Module is the unit of semantic analysis: it aggregates declarations from
// every translation Context that shares its name.
//
// Invariants (see AdvanceStage):
//   - Stage is monotonically non-decreasing; it never regresses.
//   - Symbols contains every declaration visible inside the module;
//     PublicSymbols is the subset exported outside it.
//   - A module lives in exactly one of Compiler.ModuleList or
//     Compiler.GenericModuleList, based on whether Parameters is non-empty.
type Module struct {
	Name          intern.ID
	Stage         AnalysisStage
	Parameters    []intern.ID // generic type parameters, nil if not generic
	Symbols       *symtab.Table
	PublicSymbols *symtab.Table
	Contexts      []*Context
}

// NewModule creates an empty Module at NotBegun.
func NewModule(name intern.ID, parameters []intern.ID) *Module {
	return &Module{
		Name:          name,
		Stage:         NotBegun,
		Parameters:    parameters,
		Symbols:       symtab.New(8),
		PublicSymbols: symtab.New(4),
	}
}

// Generic reports whether the module was declared with type parameters.
func (m *Module) Generic() bool {
	return len(m.Parameters) > 0
}

// AdvanceStage sets Stage to s. It panics if s would regress the stage,
// preserving the monotonicity invariant (spec.md §3, §8 invariant 1).
func (m *Module) AdvanceStage(s AnalysisStage) {
	if s < m.Stage {
		panic("module: stage cannot regress")
	}
	m.Stage = s
}
