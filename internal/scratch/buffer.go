// Package scratch implements the compiler's single transient string-building
// buffer, owned by a Compiler value rather than held as a package global.
package scratch

import "fmt"

// MaxSize bounds the buffer's capacity. An append that would push the
// buffer's length strictly past MaxSize-1 is a fatal overflow; a payload
// that lands exactly on the remaining capacity is accepted.
const MaxSize = 1 << 16

// Buffer is a single growable byte buffer for transient string construction
// during lexing, diagnostic formatting, and name mangling. It is not
// re-entrant: one piece of text is built at a time, and Clear discards it.
type Buffer struct {
	data []byte
}

// New creates an empty Buffer.
func New() *Buffer {
	return &Buffer{data: make([]byte, 0, 256)}
}

// Clear resets the buffer to empty without releasing its backing array.
func (b *Buffer) Clear() {
	b.data = b.data[:0]
}

// Len returns the number of bytes currently held.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Append adds p to the buffer. It panics with a fatal overflow error if the
// resulting length would exceed MaxSize-1 — the scratch buffer overflow is
// defined as unrecoverable, not a normal error return.
func (b *Buffer) Append(p []byte) {
	if len(b.data)+len(p) > MaxSize-1 {
		panic(fmt.Errorf("scratch: buffer overflow: %d + %d > %d", len(b.data), len(p), MaxSize-1))
	}
	b.data = append(b.data, p...)
}

// AppendString is a convenience wrapper around Append.
func (b *Buffer) AppendString(s string) {
	b.Append([]byte(s))
}

// AppendChar appends a single byte.
func (b *Buffer) AppendChar(c byte) {
	b.Append([]byte{c})
}

// ToString returns the buffer's current contents as a string. The string is
// a copy and is not affected by a later Clear or Append.
func (b *Buffer) ToString() string {
	return string(b.data)
}
