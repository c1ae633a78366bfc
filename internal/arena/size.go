package arena

import "unsafe"

// uintptrSizeOf returns the static size of T's zero value, used only for
// the arena memory-usage summary — never for layout-sensitive decisions.
func uintptrSizeOf[T any](v T) uintptr {
	return unsafe.Sizeof(v)
}
