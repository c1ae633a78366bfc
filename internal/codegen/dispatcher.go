// Package codegen fans out per-module code generation across a worker
// pool, adapting the teacher's internal/driver/parallel.go fork-join shape
// (errgroup.WithContext + SetLimit) from "parse N files concurrently" to
// "lower N per-module IR contexts concurrently, collect object paths in
// input order" (spec.md §4.6/§5).
package codegen

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"c3c/internal/backend"
	"c3c/internal/intern"
	"c3c/internal/module"
)

// Options controls a Dispatch run.
type Options struct {
	OutDir     string
	Jobs       int  // <= 0 means runtime.GOMAXPROCS(0)
	EmitHeader bool // short-circuit to HeaderGen only, per --emit-header
}

// Dispatch lowers one IRContext per module in modules and returns their
// ObjectResults in the same order modules were given in (input order, not
// completion order). Header-only builds (opts.EmitHeader) skip straight to
// the parallel lowering step — HeaderGen always produces output, so there
// is nothing to build or skip. A full build instead runs two phases in
// sequence:
//
//  1. Sequential: be.LLVMSetup initializes backend-global state once, then
//     be.LLVMGen builds each module's IR in turn. A module with no
//     emittable content is reported as not built and is skipped by the
//     lowering phase below, never as an error.
//  2. Parallel: every module LLVMGen reported built is lowered to an
//     object file on its own worker — workers only touch their own
//     IRContext, no arena or scratch-buffer access happens from a worker
//     goroutine.
//
// Every Dispatch caller today drives an executable/test target (there is
// no library-target kind yet); a module skipped during a full build is
// therefore always an internal invariant violation, not a legitimate
// partial result, and Dispatch panics rather than silently dropping an
// object the link step will need.
func Dispatch(ctx context.Context, c *module.Compiler, be backend.Backend, modules []*module.Module, opts Options) ([]backend.ObjectResult, error) {
	if len(modules) == 0 {
		return nil, nil
	}

	irCtxs := make([]*backend.IRContext, len(modules))
	for i, m := range modules {
		irCtxs[i] = buildIRContext(c.Interner, m)
	}

	if opts.EmitHeader {
		return lowerParallel(ctx, opts, irCtxs, be.HeaderGen)
	}

	if err := be.LLVMSetup(); err != nil {
		return nil, fmt.Errorf("codegen: setup: %w", err)
	}

	var skipped []string
	for _, irc := range irCtxs {
		built, err := be.LLVMGen(irc)
		if err != nil {
			return nil, fmt.Errorf("codegen: build IR for %s: %w", irc.ModuleName, err)
		}
		if !built {
			skipped = append(skipped, irc.ModuleName)
		}
	}
	if len(skipped) > 0 {
		panic(fmt.Sprintf("codegen: internal invariant violation: module(s) %v produced no IR for an executable/test target", skipped))
	}

	return lowerParallel(ctx, opts, irCtxs, be.Lower)
}

// lowerParallel runs lower over every entry in irCtxs concurrently,
// bounded by opts.Jobs workers, collecting results in input order.
func lowerParallel(ctx context.Context, opts Options, irCtxs []*backend.IRContext, lower func(*backend.IRContext, string) (backend.ObjectResult, error)) ([]backend.ObjectResult, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]backend.ObjectResult, len(irCtxs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(irCtxs)))

	for i, irc := range irCtxs {
		g.Go(func(i int, irc *backend.IRContext) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				res, err := lower(irc, opts.OutDir)
				if err != nil {
					return fmt.Errorf("codegen: lower %s: %w", irc.ModuleName, err)
				}
				results[i] = res
				return nil
			}
		}(i, irc))
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// buildIRContext snapshots the declarations a module's symbol table holds
// into a read-only IRContext; workers never touch the module's Pool or
// symbol tables directly, only the snapshot built here before Dispatch
// fans out.
func buildIRContext(in *intern.Interner, m *module.Module) *backend.IRContext {
	return &backend.IRContext{
		ModuleName: in.MustLookup(m.Name),
		Decls:      collectResolvedDecls(m),
	}
}

func collectResolvedDecls(m *module.Module) []*module.Decl {
	var out []*module.Decl
	m.Symbols.Range(func(_ intern.ID, v any) {
		if d, ok := v.(*module.Decl); ok {
			out = append(out, d)
		}
	})
	return out
}
