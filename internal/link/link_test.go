package link

import (
	"runtime"
	"testing"
)

func TestLinkRejectsEmptyObjectPaths(t *testing.T) {
	_, err := Link(Request{TargetName: "app", OutDir: t.TempDir()})
	if err == nil {
		t.Fatal("expected error for empty object paths")
	}
}

func TestLinkRejectsMissingTargetName(t *testing.T) {
	_, err := Link(Request{ObjectPaths: []string{"a.o"}, OutDir: t.TempDir()})
	if err == nil {
		t.Fatal("expected error for missing target name")
	}
}

func TestLinkUnsupportedFormatDisablesRun(t *testing.T) {
	if runtime.GOOS == "darwin" {
		t.Skip("MachO is supported on darwin; unsupported-format path not exercised here")
	}
	res, err := Link(Request{
		ObjectPaths:     []string{"a.o"},
		TargetName:      "app",
		OutDir:          t.TempDir(),
		Format:          MachO,
		RunAfterCompile: true,
	})
	if err != nil {
		t.Fatalf("unsupported format should not be a hard error: %v", err)
	}
	if res.Linked {
		t.Fatal("expected Linked=false for unsupported format")
	}
	if res.Notice == "" {
		t.Fatal("expected a notice explaining why linking was skipped")
	}
}
