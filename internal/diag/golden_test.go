package diag

import (
	"strings"
	"testing"

	"c3c/internal/source"
)

func TestFormatGoldenDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	userFile := fs.Add("/workspace/testdata/golden/sample.c3", []byte("a\nb\n"), 0)
	internalFile := fs.Add("/workspace/internal/helper.c3", []byte("x\n"), 0)

	diags := []*Diagnostic{
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: userFile, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: internalFile, Start: 0, End: 0}, Msg: "skip me"},
				{Span: source.Span{File: userFile, Start: 2, End: 3}, Msg: "note line"},
			},
		},
		{
			Severity: SevWarning,
			Code:     SemaError,
			Message:  "another",
			Primary:  source.Span{File: userFile, Start: 2, End: 3},
		},
	}

	expected := "error SYN2001 testdata/golden/sample.c3:1:1 first line second\n" +
		"note SYN2001 testdata/golden/sample.c3:2:1 note line\n" +
		"warning SEM3001 testdata/golden/sample.c3:2:1 another"

	if got := FormatGoldenDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestFormatGoldenDiagnosticsSkipsStdlibModules(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	userFile := fs.Add("/workspace/main.c3", []byte("a\n"), 0)
	stdFile := fs.Add("/workspace/lib/std/runtime.c3", []byte("b\n"), 0)

	diags := []*Diagnostic{
		{
			Severity: SevWarning,
			Code:     SemaError,
			Message:  "stdlib-originated note should be dropped",
			Primary:  source.Span{File: stdFile, Start: 0, End: 0},
		},
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "user error",
			Primary:  source.Span{File: userFile, Start: 0, End: 0},
		},
	}

	expected := "error SYN2001 main.c3:1:1 user error"
	if got := FormatGoldenDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}

	// FormatShortDiagnostics keeps std/ paths, unlike the golden variant.
	got := FormatShortDiagnostics(diags, fs, false)
	if !strings.Contains(got, "lib/std/runtime.c3") {
		t.Fatalf("expected short output to retain stdlib path, got:\n%s", got)
	}
}
