// Package backend defines the black-box interface the code generator
// dispatches to. LLVM IR generation internals are explicitly out of scope
// (spec.md §1); this package is the thin seam a real LLVM-backed backend
// would plug into, plus a reference implementation that writes placeholder
// artifact files, exercised by the rest of the module's tests.
package backend

import (
	"fmt"

	"c3c/internal/module"
)

// IRContext is the per-module unit of work a Backend lowers. It carries
// just enough from the analyzed module to stand in for a real LLVM module
// builder context.
type IRContext struct {
	ModuleName string
	Decls      []*module.Decl
}

// ObjectResult is what a single lowered module produces: the path to its
// object file (or header, in emit-header mode).
type ObjectResult struct {
	ModuleName string
	Path       string
}

// Backend is the interface internal/codegen drives, split into the three
// phases a dispatcher distinguishes: a one-time global setup, a sequential
// per-module IR-build step that may skip a module with no emittable
// content, and a parallel lowering step over whatever wasn't skipped. A
// real implementation would wrap the LLVM C API; this one emits
// placeholder text files so the rest of the pipeline (link driver, CLI)
// has real paths to operate on.
type Backend interface {
	// LLVMSetup initializes backend-global state (target triple, data
	// layout) exactly once per dispatch run, before any module's IR is
	// built. Never called concurrently with itself or with LLVMGen.
	LLVMSetup() error

	// LLVMGen builds ctx's IR sequentially, one module at a time. built
	// is false for a module with no emittable content — a forward
	// declaration-only module, say — and the caller skips lowering it.
	// A malformed ctx (e.g. a missing module name) is always an error,
	// never a skip.
	LLVMGen(ctx *IRContext) (built bool, err error)

	// Lower writes ctx's already-built IR to an object file in outDir,
	// returning its path. Called in parallel, once per module LLVMGen
	// reported built.
	Lower(ctx *IRContext, outDir string) (ObjectResult, error)

	// HeaderGen emits only a public-API header for ctx without lowering
	// function bodies, used by --emit-header mode. It bypasses the
	// nullable-skip IR-build step entirely: a header is always produced.
	HeaderGen(ctx *IRContext, outDir string) (ObjectResult, error)
}

// New returns the reference Backend, which writes placeholder .o/.h files.
func New() Backend { return &refBackend{} }

type refBackend struct{}

func (r *refBackend) LLVMSetup() error { return nil }

func (r *refBackend) LLVMGen(ctx *IRContext) (bool, error) {
	if ctx.ModuleName == "" {
		return false, fmt.Errorf("backend: IRContext missing module name")
	}
	if len(ctx.Decls) == 0 {
		return false, nil
	}
	return true, nil
}

func (r *refBackend) Lower(ctx *IRContext, outDir string) (ObjectResult, error) {
	return writePlaceholder(ctx, outDir, ".o", "object")
}

func (r *refBackend) HeaderGen(ctx *IRContext, outDir string) (ObjectResult, error) {
	return writePlaceholder(ctx, outDir, ".h", "header")
}
