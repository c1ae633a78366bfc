package module

import "c3c/internal/intern"

// TypeKind tags the variant held by a TypeInfo.
type TypeKind uint8

const (
	TypeUnresolved TypeKind = iota
	TypeVoid
	TypeBool
	TypeInt
	TypeNamed
)

// TypeInfo is a tagged-union type reference. Named references carry the
// interned name to resolve later in the DECLS stage; primitive kinds are
// already canonical on construction.
type TypeInfo struct {
	Kind TypeKind
	Name intern.ID // only meaningful for TypeNamed
}
