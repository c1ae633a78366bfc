package frontend

import (
	"fmt"

	"c3c/internal/diag"
	"c3c/internal/module"
	"c3c/internal/source"
)

// LoadAndParse lexes and parses a single already-loaded file, registering
// the resulting Context against its declared module (creating the module
// on first sight). It reports a syntax diagnostic and returns ok=false
// instead of returning a Go error, matching the rest of the front end's
// diagnostics-first error model.
func LoadAndParse(c *module.Compiler, file source.FileID) (ctx *module.Context, ok bool) {
	f := c.Sources.Get(file)

	lx := NewLexer(c.Interner, f.Content)
	toks, err := lx.Tokenize()
	if err != nil {
		diag.ReportError(c.Reporter(), diag.LexUnknownChar, source.Span{File: file}, err.Error()).Emit()
		return nil, false
	}

	p := NewParser(toks, c.Pool, c.Interner, file)
	ctx, err = p.Parse()
	if err != nil {
		diag.ReportError(c.Reporter(), diag.SynUnexpectedToken, source.Span{File: file}, err.Error()).Emit()
		return nil, false
	}

	m := c.FindOrCreateModule(ctx.CurrentModule.Name, nil)
	m.Contexts = append(m.Contexts, ctx)
	return ctx, true
}

// LoadAndParseAll runs LoadAndParse across every file id in files, in
// order, stopping at the first parse failure (spec.md §6's "exit after
// first newly-loaded file" behavior applies only to lex_only/parse_only
// driving code, not to this shared helper).
func LoadAndParseAll(c *module.Compiler, files []source.FileID) ([]*module.Context, error) {
	contexts := make([]*module.Context, 0, len(files))
	for _, f := range files {
		ctx, ok := LoadAndParse(c, f)
		if !ok {
			return contexts, fmt.Errorf("frontend: failed to parse %s", c.Sources.Get(f).Path)
		}
		contexts = append(contexts, ctx)
	}
	return contexts, nil
}
