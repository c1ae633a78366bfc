package module

import (
	"c3c/internal/arena"
	"c3c/internal/intern"
	"c3c/internal/source"
)

// Visibility is the export level of a declaration.
type Visibility uint8

const (
	Public Visibility = iota
	ModuleVisible
	Local
)

func (v Visibility) String() string {
	switch v {
	case Public:
		return "PUBLIC"
	case ModuleVisible:
		return "MODULE"
	case Local:
		return "LOCAL"
	default:
		return "UNKNOWN_VISIBILITY"
	}
}

// ResolveStatus tracks where a declaration sits in the DECLS stage.
type ResolveStatus uint8

const (
	Pending ResolveStatus = iota
	Resolving
	Done
	Poisoned
)

func (s ResolveStatus) String() string {
	switch s {
	case Pending:
		return "PENDING"
	case Resolving:
		return "RESOLVING"
	case Done:
		return "DONE"
	case Poisoned:
		return "POISONED"
	default:
		return "UNKNOWN_STATUS"
	}
}

// DeclKind tags the variant held by a Decl.
type DeclKind uint8

const (
	DeclVar DeclKind = iota
	DeclFunc
	DeclType
	DeclMacro
	DeclEnum
	DeclStruct
	DeclUnion
	DeclCtAssert
)

func (k DeclKind) String() string {
	switch k {
	case DeclVar:
		return "var"
	case DeclFunc:
		return "func"
	case DeclType:
		return "type"
	case DeclMacro:
		return "macro"
	case DeclEnum:
		return "enum"
	case DeclStruct:
		return "struct"
	case DeclUnion:
		return "union"
	case DeclCtAssert:
		return "ctassert"
	default:
		return "unknown"
	}
}

// FuncPayload is the variant-specific data for DeclFunc.
type FuncPayload struct {
	ReturnType arena.Index // TypeInfo index
	Params     []Param
	Body       arena.Index // Ast index, None for intrinsics/declarations only
}

// Param is a single function parameter.
type Param struct {
	Name intern.ID
	Type arena.Index
}

// VarPayload is the variant-specific data for DeclVar.
type VarPayload struct {
	Type    arena.Index // TypeInfo index, None if inferred
	Init    arena.Index // Expr index, None if uninitialized
	Mutable bool
}

// CtAssertPayload is the variant-specific data for DeclCtAssert.
type CtAssertPayload struct {
	Condition arena.Index // Expr index
	Message   string
}

// Decl is a tagged-union declaration. The common header fields apply to
// every variant; Payload holds the variant-specific data (one of
// *FuncPayload, *VarPayload, *CtAssertPayload, or nil for variants with no
// extra state needed by the reference pipeline).
type Decl struct {
	Name          intern.ID
	ModuleName    intern.ID
	Visibility    Visibility
	Kind          DeclKind
	ResolveStatus ResolveStatus
	Type          arena.Index // resolved TypeInfo, None until DECLS completes
	ExternalName  string
	Span          source.Span
	Payload       any
}

// Func returns the Decl's FuncPayload, panicking if Kind != DeclFunc.
func (d *Decl) Func() *FuncPayload { return d.Payload.(*FuncPayload) }

// Var returns the Decl's VarPayload, panicking if Kind != DeclVar.
func (d *Decl) Var() *VarPayload { return d.Payload.(*VarPayload) }

// CtAssertData returns the Decl's CtAssertPayload, panicking if Kind != DeclCtAssert.
func (d *Decl) CtAssertData() *CtAssertPayload { return d.Payload.(*CtAssertPayload) }
