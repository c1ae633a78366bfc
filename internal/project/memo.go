package project

import (
	"bytes"
	"crypto/sha256"
	"os"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Digest is a fixed SHA-256 content hash.
type Digest [32]byte

// HashFile reads path and returns its content digest.
func HashFile(path string) (Digest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Digest{}, err
	}
	return Digest(sha256.Sum256(data)), nil
}

// entry is what Memo keeps per hashed file, msgpack-encoded when a Memo is
// snapshotted: not a cross-invocation cache (spec's Non-goals exclude
// that), just the wire format used to round-trip the in-process memo in
// tests.
type entry struct {
	Path   string
	Digest Digest
}

// Memo records module content hashes for the lifetime of a single compile
// invocation, so a standard-library file imported by many modules is
// hashed once. It is explicitly not a cross-invocation cache: a fresh
// Memo is created per Compiler, per spec.md's Non-goals around
// incremental/watch compilation.
type Memo struct {
	mu      sync.Mutex
	byPath  map[string]Digest
}

// NewMemo returns an empty, ready-to-use Memo.
func NewMemo() *Memo {
	return &Memo{byPath: make(map[string]Digest)}
}

// HashOnce returns path's content digest, hashing it only the first time
// it's requested during this Memo's lifetime.
func (m *Memo) HashOnce(path string) (Digest, error) {
	m.mu.Lock()
	if d, ok := m.byPath[path]; ok {
		m.mu.Unlock()
		return d, nil
	}
	m.mu.Unlock()

	d, err := HashFile(path)
	if err != nil {
		return Digest{}, err
	}

	m.mu.Lock()
	m.byPath[path] = d
	m.mu.Unlock()
	return d, nil
}

// Len reports how many distinct paths have been hashed so far.
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byPath)
}

// Snapshot encodes the memo's current contents with msgpack, in
// deterministic path order. The --timings output does not use it; it
// reports only the memo's counts.
func (m *Memo) Snapshot() ([]byte, error) {
	m.mu.Lock()
	entries := make([]entry, 0, len(m.byPath))
	for p, d := range m.byPath {
		entries = append(entries, entry{Path: p, Digest: d})
	}
	m.mu.Unlock()

	sortEntries(entries)

	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.Encode(entries); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sortEntries(entries []entry) {
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].Path < entries[j-1].Path; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
}
