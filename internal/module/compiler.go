package module

import (
	"c3c/internal/diag"
	"c3c/internal/intern"
	"c3c/internal/scratch"
	"c3c/internal/source"
	"c3c/internal/symtab"
)

// Compiler bundles every piece of state a compile action touches, in place
// of the process-wide singletons (global context, active target, seven
// arenas, scratch buffer) the design this pipeline is modeled on relies on
// (spec.md §9). One Compiler is constructed per invocation by New (called
// from internal/compiler.CompileFileList) and threaded explicitly through loading, the
// analysis pipeline, code generation, and linking.
type Compiler struct {
	Interner *intern.Interner
	Sources  *source.FileSet
	Pool     *Pool

	Modules            *symtab.Table // name -> *Module
	ModuleList         []*Module
	GenericModuleList  []*Module
	GlobalSymbols      *symtab.Table // name -> *Decl | poisoned
	QualifiedSymbols   *symtab.Table // module name -> *symtab.Table (name -> *Decl | poisoned)
	StdModule          *Module

	LibDir string

	Diagnostics    *diag.Bag
	ErrorsFound    int
	WarningsFound  int
	InPanicMode    bool

	Scratch *scratch.Buffer
}

// New constructs a Compiler with all tables and arenas freshly allocated,
// ready for one compile action. Per spec.md §5's lifecycle note, a Compiler
// is meant for a single top-level compile; it is not reused across builds.
func New(libDir string, maxDiagnostics int) *Compiler {
	return &Compiler{
		Interner:         intern.New(),
		Sources:          source.NewFileSet(),
		Pool:             NewPool(),
		Modules:          symtab.New(16),
		GlobalSymbols:    symtab.New(64),
		QualifiedSymbols: symtab.New(16),
		LibDir:           libDir,
		Diagnostics:      diag.NewBag(maxDiagnostics),
		Scratch:          scratch.New(),
	}
}

// FindOrCreateModule returns the existing module named by id, or creates
// and registers a new one at NotBegun. Creation is idempotent on the
// module's interned name (spec.md §4.5).
func (c *Compiler) FindOrCreateModule(id intern.ID, parameters []intern.ID) *Module {
	if existing, ok := c.Modules.Get(id); ok {
		return existing.(*Module)
	}
	m := NewModule(id, parameters)
	c.Modules.Set(id, m)
	if m.Generic() {
		c.GenericModuleList = append(c.GenericModuleList, m)
	} else {
		c.ModuleList = append(c.ModuleList, m)
	}
	return m
}

// Reporter returns a diag.Reporter that accumulates into Diagnostics and
// keeps ErrorsFound/WarningsFound in sync, the way stage passes expect to
// report through a single counter-backed sink.
func (c *Compiler) Reporter() diag.Reporter {
	return &countingReporter{c: c}
}

type countingReporter struct{ c *Compiler }

func (r *countingReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.c.Diagnostics.Add(&diag.Diagnostic{
		Severity: sev, Code: code, Message: msg, Primary: primary, Notes: notes,
	})
	switch sev {
	case diag.SevError:
		r.c.ErrorsFound++
	case diag.SevWarning:
		r.c.WarningsFound++
	}
}
