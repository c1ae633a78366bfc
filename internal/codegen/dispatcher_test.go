package codegen

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"c3c/internal/backend"
	"c3c/internal/module"
)

func newTestCompiler() *module.Compiler {
	return module.New("", 32)
}

func moduleWithDecl(c *module.Compiler, name string) *module.Module {
	id := c.Interner.Intern(name)
	m := c.FindOrCreateModule(id, nil)
	declName := c.Interner.Intern(name + "_main")
	m.Symbols.Set(declName, &module.Decl{Name: declName, ModuleName: id, Kind: module.DeclFunc})
	return m
}

func TestDispatchPreservesInputOrder(t *testing.T) {
	c := newTestCompiler()
	a := moduleWithDecl(c, "alpha")
	b := moduleWithDecl(c, "beta")
	dir := t.TempDir()

	results, err := Dispatch(context.Background(), c, backend.New(), []*module.Module{a, b}, Options{OutDir: dir})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].ModuleName != "alpha" || results[1].ModuleName != "beta" {
		t.Fatalf("results out of order: %+v", results)
	}
	if results[0].Path != filepath.Join(dir, "alpha.o") {
		t.Fatalf("unexpected path %q", results[0].Path)
	}
}

func TestDispatchEmitHeaderUsesHeaderGen(t *testing.T) {
	c := newTestCompiler()
	a := moduleWithDecl(c, "alpha")
	dir := t.TempDir()

	results, err := Dispatch(context.Background(), c, backend.New(), []*module.Module{a}, Options{OutDir: dir, EmitHeader: true})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if results[0].Path != filepath.Join(dir, "alpha.h") {
		t.Fatalf("expected header path, got %q", results[0].Path)
	}
}

func TestDispatchEmptyModulesReturnsNil(t *testing.T) {
	c := newTestCompiler()
	results, err := Dispatch(context.Background(), c, backend.New(), nil, Options{})
	if err != nil || results != nil {
		t.Fatalf("expected nil, nil for no modules; got %v, %v", results, err)
	}
}

type failingBackend struct{}

func (failingBackend) LLVMSetup() error { return nil }
func (failingBackend) LLVMGen(ctx *backend.IRContext) (bool, error) {
	return true, nil
}
func (failingBackend) Lower(ctx *backend.IRContext, outDir string) (backend.ObjectResult, error) {
	if ctx.ModuleName == "beta" {
		return backend.ObjectResult{}, errors.New("boom")
	}
	return backend.ObjectResult{ModuleName: ctx.ModuleName}, nil
}
func (failingBackend) HeaderGen(ctx *backend.IRContext, outDir string) (backend.ObjectResult, error) {
	return backend.ObjectResult{}, nil
}

func TestDispatchPropagatesBackendError(t *testing.T) {
	c := newTestCompiler()
	a := moduleWithDecl(c, "alpha")
	b := moduleWithDecl(c, "beta")

	_, err := Dispatch(context.Background(), c, failingBackend{}, []*module.Module{a, b}, Options{OutDir: t.TempDir()})
	if err == nil {
		t.Fatal("expected error from failing backend to propagate")
	}
}

// setupFailingBackend fails the one-time global setup step before any
// module's IR is built.
type setupFailingBackend struct{ failingBackend }

func (setupFailingBackend) LLVMSetup() error { return errors.New("setup boom") }

func TestDispatchPropagatesSetupError(t *testing.T) {
	c := newTestCompiler()
	a := moduleWithDecl(c, "alpha")

	_, err := Dispatch(context.Background(), c, setupFailingBackend{}, []*module.Module{a}, Options{OutDir: t.TempDir()})
	if err == nil {
		t.Fatal("expected LLVMSetup error to propagate")
	}
}

// skippingBackend reports one module as producing no IR, simulating a
// module with no emittable content.
type skippingBackend struct{ failingBackend }

func (skippingBackend) LLVMGen(ctx *backend.IRContext) (bool, error) {
	return ctx.ModuleName != "beta", nil
}

func TestDispatchPanicsOnSkippedModuleForExecutableTarget(t *testing.T) {
	c := newTestCompiler()
	a := moduleWithDecl(c, "alpha")
	b := moduleWithDecl(c, "beta")

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected Dispatch to panic on a skipped module")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "beta") {
			t.Fatalf("panic message %q does not name the skipped module", msg)
		}
	}()

	_, _ = Dispatch(context.Background(), c, skippingBackend{}, []*module.Module{a, b}, Options{OutDir: t.TempDir()})
}

func TestDispatchEmitHeaderBypassesSkipInvariant(t *testing.T) {
	c := newTestCompiler()
	// A module built via moduleWithDecl always has a decl, but HeaderGen
	// never consults LLVMGen at all, so even a backend that would skip
	// everything in a full build must not panic in header mode.
	a := moduleWithDecl(c, "alpha")

	results, err := Dispatch(context.Background(), c, skippingBackend{}, []*module.Module{a}, Options{OutDir: t.TempDir(), EmitHeader: true})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
}
