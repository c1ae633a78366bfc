package backend

import (
	"fmt"
	"os"
	"path/filepath"
)

// writePlaceholder stands in for the real LLVM emission path: it writes a
// small text artifact under outDir named after the module so the rest of
// the pipeline (link driver, CLI reporting) has a real file to point at.
func writePlaceholder(ctx *IRContext, outDir, ext, kind string) (ObjectResult, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return ObjectResult{}, fmt.Errorf("backend: creating output dir: %w", err)
	}
	path := filepath.Join(outDir, ctx.ModuleName+ext)
	contents := fmt.Sprintf("; %s for module %s (%d declarations)\n", kind, ctx.ModuleName, len(ctx.Decls))
	// #nosec G306 -- generated build artifact, world-readable is fine
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return ObjectResult{}, fmt.Errorf("backend: writing %s: %w", kind, err)
	}
	return ObjectResult{ModuleName: ctx.ModuleName, Path: path}, nil
}
