package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHashOnceIsStableAndMemoized(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.c3")
	if err := os.WriteFile(path, []byte("module a;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewMemo()
	d1, err := m.HashOnce(path)
	if err != nil {
		t.Fatalf("HashOnce: %v", err)
	}
	d2, err := m.HashOnce(path)
	if err != nil {
		t.Fatalf("HashOnce (second call): %v", err)
	}
	if d1 != d2 {
		t.Fatal("expected identical digest across repeated HashOnce calls")
	}
	if m.Len() != 1 {
		t.Fatalf("expected 1 memoized path, got %d", m.Len())
	}
}

func TestHashOnceDiffersForDifferentContent(t *testing.T) {
	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.c3")
	p2 := filepath.Join(dir, "b.c3")
	if err := os.WriteFile(p1, []byte("module a;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p2, []byte("module b;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewMemo()
	d1, err := m.HashOnce(p1)
	if err != nil {
		t.Fatal(err)
	}
	d2, err := m.HashOnce(p2)
	if err != nil {
		t.Fatal(err)
	}
	if d1 == d2 {
		t.Fatal("expected different digests for different content")
	}
}

func TestSnapshotEncodesDeterministically(t *testing.T) {
	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.c3")
	p2 := filepath.Join(dir, "b.c3")
	if err := os.WriteFile(p1, []byte("module a;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p2, []byte("module b;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewMemo()
	if _, err := m.HashOnce(p2); err != nil {
		t.Fatal(err)
	}
	if _, err := m.HashOnce(p1); err != nil {
		t.Fatal(err)
	}

	snap1, err := m.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	snap2, err := m.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot (second call): %v", err)
	}
	if len(snap1) == 0 || string(snap1) != string(snap2) {
		t.Fatal("expected Snapshot to be deterministic across calls")
	}
}
