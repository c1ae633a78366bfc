// Package arena implements the bump-allocation regions that back the
// compiler's AST, expression, declaration, type, and source-location
// storage. Every arena hands out a dense, stable index rather than an
// owning pointer; index 0 is reserved in every indexed arena so it can
// double as the "none" value.
package arena

import (
	"fmt"

	"fortio.org/safecast"
)

// Index is a 1-based handle into an indexed arena. Zero means "no node".
type Index uint32

// None is the sentinel "invalid/absent" index, pre-reserved by every arena.
const None Index = 0

// IsValid reports whether idx refers to an allocated element.
func (idx Index) IsValid() bool { return idx != None }

// Arena is a generic growable region of T, addressed by Index.
//
// Capacity hints only size the initial backing slice; an arena always
// grows to accommodate further allocations and never fails on overflow.
type Arena[T any] struct {
	data []T
}

// New creates an Arena[T] with index 0 pre-reserved as the sentinel.
func New[T any](capacityHint uint32) *Arena[T] {
	data := make([]T, 1, capacityHint+1)
	return &Arena[T]{data: data}
}

// Alloc appends value and returns its stable index.
func (a *Arena[T]) Alloc(value T) Index {
	a.data = append(a.data, value)
	idx, err := safecast.Conv[uint32](len(a.data) - 1)
	if err != nil {
		panic(fmt.Errorf("arena: index overflow: %w", err))
	}
	return Index(idx)
}

// Get returns a pointer to the element at idx, or nil for None / out of range.
func (a *Arena[T]) Get(idx Index) *T {
	if !idx.IsValid() || int(idx) >= len(a.data) {
		return nil
	}
	return &a.data[idx]
}

// Len reports the number of allocated elements, excluding the sentinel.
func (a *Arena[T]) Len() int {
	return len(a.data) - 1
}

// AllocatedBytes estimates the arena's live footprint, used for the
// memory-usage summary printed after code generation.
func (a *Arena[T]) AllocatedBytes() uint64 {
	var zero T
	return uint64(len(a.data)) * uint64(sizeofApprox(zero))
}

func sizeofApprox[T any](v T) uintptr {
	return uintptrSizeOf(v)
}
