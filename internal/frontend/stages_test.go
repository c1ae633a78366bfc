package frontend

import (
	"testing"

	"c3c/internal/module"
	"c3c/internal/pipeline"
)

func runPipelineOn(t *testing.T, sources map[string]string) *module.Compiler {
	t.Helper()
	c := module.New("", 100)
	runners := pipeline.NewRunners(
		ImportsStage{}, RegisterGlobalsStage{}, ConditionalCompilationStage{},
		DeclsStage{}, CtAssertStage{}, FunctionsStage{},
	)

	for name, src := range sources {
		id := c.Sources.AddVirtual(name, []byte(src))
		if _, ok := LoadAndParse(c, id); !ok {
			t.Fatalf("failed to parse %s", name)
		}
	}

	all := append(append([]*module.Module{}, c.ModuleList...), c.GenericModuleList...)
	pipeline.Run(c, all, module.Last, runners)
	return c
}

func TestPipelineResolvesSimpleProgram(t *testing.T) {
	c := runPipelineOn(t, map[string]string{
		"main.c3": `module app; pub fn int main() { return 0; }`,
	})
	if c.ErrorsFound != 0 {
		t.Fatalf("expected no errors, got %d", c.ErrorsFound)
	}
}

func TestPipelineReportsUnresolvedImport(t *testing.T) {
	c := runPipelineOn(t, map[string]string{
		"main.c3": `module app; import nonexistent; x := 1;`,
	})
	if c.ErrorsFound == 0 {
		t.Fatal("expected an unresolved-import error")
	}
}

func TestPipelineReportsDuplicateSymbol(t *testing.T) {
	c := runPipelineOn(t, map[string]string{
		"a.c3": `module app; x := 1;`,
		"b.c3": `module app; x := 2;`,
	})
	if c.ErrorsFound == 0 {
		t.Fatal("expected a duplicate-symbol error across files sharing a module")
	}
}

func TestPipelineCtAssertFailureIsReported(t *testing.T) {
	c := runPipelineOn(t, map[string]string{
		"main.c3": `module app; ctassert(1 == 2, "never true");`,
	})
	if c.ErrorsFound == 0 {
		t.Fatal("expected a ctassert failure to be reported")
	}
}

func TestPipelineCtAssertNonConstantIsReported(t *testing.T) {
	c := runPipelineOn(t, map[string]string{
		"main.c3": `module app; fn int f() { return 0; } ctassert(f() == 1, "needs constant");`,
	})
	if c.ErrorsFound == 0 {
		t.Fatal("expected a non-constant ctassert condition to be reported")
	}
}

func TestPipelineResolvesCrossModuleImport(t *testing.T) {
	c := runPipelineOn(t, map[string]string{
		"lib.c3": `module lib; pub fn int helper() { return 1; }`,
		"app.c3": `module app; import lib; fn int main() { return helper(); }`,
	})
	if c.ErrorsFound != 0 {
		t.Fatalf("expected cross-module helper() call to resolve, got %d errors", c.ErrorsFound)
	}
}
