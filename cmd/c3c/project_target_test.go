package main

import "testing"

func TestTargetNameFromPathStripsDirAndExtension(t *testing.T) {
	got := targetNameFromPath("/a/b/main.c3")
	if got != "main" {
		t.Fatalf("targetNameFromPath = %q, want %q", got, "main")
	}
}

func TestResolveAgainstRootJoinsRelativeEntries(t *testing.T) {
	got := resolveAgainstRoot("/proj", []string{"src/main.c3", "/abs/other.c3"})
	if got[0] != "/proj/src/main.c3" {
		t.Fatalf("resolveAgainstRoot[0] = %q", got[0])
	}
	if got[1] != "/abs/other.c3" {
		t.Fatalf("resolveAgainstRoot[1] should stay absolute, got %q", got[1])
	}
}

func TestResolveLibDirEmptyStaysEmpty(t *testing.T) {
	if got := resolveLibDir("/proj", ""); got != "" {
		t.Fatalf("resolveLibDir(\"\") = %q, want empty", got)
	}
}

func TestResolveLibDirJoinsRelativeToRoot(t *testing.T) {
	got := resolveLibDir("/proj", "lib")
	if got != "/proj/lib" {
		t.Fatalf("resolveLibDir = %q, want %q", got, "/proj/lib")
	}
}

func TestReadUIModeRejectsUnknownValue(t *testing.T) {
	if _, err := readUIMode("bogus"); err == nil {
		t.Fatal("expected an error for an unrecognized --ui value")
	}
}

func TestReadUIModeDefaultsToAuto(t *testing.T) {
	mode, err := readUIMode("")
	if err != nil {
		t.Fatalf("readUIMode: %v", err)
	}
	if mode != uiModeAuto {
		t.Fatalf("readUIMode(\"\") = %v, want %v", mode, uiModeAuto)
	}
}
