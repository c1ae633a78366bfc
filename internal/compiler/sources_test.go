package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"c3c/internal/project"
	"c3c/internal/source"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveSourcesRejectsNonC3Extension(t *testing.T) {
	_, err := ResolveSources([]string{"main.txt"})
	if err == nil {
		t.Fatal("expected rejection of non-.c3 source name")
	}
}

func TestResolveSourcesRejectsEmptyInput(t *testing.T) {
	_, err := ResolveSources(nil)
	if err == nil {
		t.Fatal("expected error for zero sources")
	}
}

func TestResolveSourcesExpandsSingleStarNonRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.c3"), "")
	writeFile(t, filepath.Join(dir, "b.txt"), "")
	writeFile(t, filepath.Join(dir, "sub", "c.c3"), "")

	got, err := ResolveSources([]string{dir + "/*"})
	if err != nil {
		t.Fatalf("ResolveSources: %v", err)
	}
	if len(got) != 1 || filepath.Base(got[0]) != "a.c3" {
		t.Fatalf("expected only a.c3 from non-recursive glob, got %v", got)
	}
}

func TestResolveSourcesExpandsDoubleStarRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.c3"), "")
	writeFile(t, filepath.Join(dir, "sub", "c.c3"), "")

	got, err := ResolveSources([]string{dir + "/**"})
	if err != nil {
		t.Fatalf("ResolveSources: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 files from recursive glob, got %v", got)
	}
}

func TestLoadSourcesHashesOncePerDistinctPath(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.c3")
	writeFile(t, a, "module a;")

	fs := source.NewFileSet()
	memo := project.NewMemo()

	if _, _, dup, err := LoadSources(fs, []string{a}, memo); err != nil || dup != 0 {
		t.Fatalf("LoadSources: dup=%d err=%v, want dup=0 err=nil", dup, err)
	}
	if memo.Len() != 1 {
		t.Fatalf("memo.Len() = %d, want 1", memo.Len())
	}
}

func TestLoadSourcesDetectsContentDuplicateAcrossPaths(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.c3")
	b := filepath.Join(dir, "b.c3")
	writeFile(t, a, "module shared;")
	writeFile(t, b, "module shared;") // byte-identical to a.c3 under a different path

	fs := source.NewFileSet()
	memo := project.NewMemo()

	_, _, dup, err := LoadSources(fs, []string{a, b}, memo)
	if err != nil {
		t.Fatalf("LoadSources: %v", err)
	}
	if dup != 1 {
		t.Fatalf("contentDuplicates = %d, want 1", dup)
	}
	if memo.Len() != 2 {
		t.Fatalf("memo.Len() = %d, want 2 (both paths hashed, even though content matched)", memo.Len())
	}
}

func TestStdlibSourcesOrderedSixFiles(t *testing.T) {
	got := StdlibSources("/lib")
	want := []string{"runtime", "builtin", "io", "mem", "array", "math"}
	if len(got) != 6 {
		t.Fatalf("expected 6 stdlib sources, got %d", len(got))
	}
	for i, name := range want {
		expected := filepath.Join("/lib", "std", name+".c3")
		if got[i] != expected {
			t.Fatalf("stdlib[%d] = %q, want %q", i, got[i], expected)
		}
	}
}
