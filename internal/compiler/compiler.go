// Package compiler wires the source loader, front end, semantic pipeline,
// code generator, and link driver into the two top-level compile actions
// spec.md §5 describes: compile_target and compile_file_list. It owns
// nothing a Compiler value doesn't already own (spec.md §9's design
// note) — this package just sequences the other packages against one
// freshly constructed module.Compiler per call.
package compiler

import (
	"context"
	"fmt"
	"strings"

	"c3c/internal/backend"
	"c3c/internal/codegen"
	"c3c/internal/diagprint"
	"c3c/internal/frontend"
	"c3c/internal/link"
	"c3c/internal/module"
	"c3c/internal/observ"
	"c3c/internal/pipeline"
	"c3c/internal/project"
	"c3c/internal/source"
	"c3c/internal/trace"
)

// Mode selects how far a compile action goes.
type Mode uint8

const (
	// ModeBuild runs the full pipeline through codegen and link.
	ModeBuild Mode = iota
	// ModeLexOnly tokenizes the first newly-loaded file and stops.
	ModeLexOnly
	// ModeParseOnly parses the first newly-loaded file, prints its AST,
	// and stops before any semantic pass.
	ModeParseOnly
)

// String names a Mode for trace details; not used for parsing.
func (m Mode) String() string {
	switch m {
	case ModeLexOnly:
		return "lex-only"
	case ModeParseOnly:
		return "parse-only"
	default:
		return "build"
	}
}

// Options configures one compile action.
type Options struct {
	Sources         []string // pre-expansion entries; see ResolveSources
	LibDir          string   // empty disables stdlib prepend
	TargetName      string
	OutDir          string
	Mode            Mode
	EmitHeader      bool
	RunAfterCompile bool
	PrintCommands   bool
	MaxDiagnostics  int
	Events          chan<- Event  // optional; nil disables progress reporting
	Timer           *observ.Timer // optional; nil disables --timings phase reporting
}

// Result is what a completed compile action produced.
type Result struct {
	Compiler   *module.Compiler
	Objects    []backend.ObjectResult
	LinkResult link.Result
	PrintedAst string // set in ModeParseOnly
	Tokens     string // set in ModeLexOnly
	Stats      module.Stats

	// HashedSources and ContentDuplicates report LoadSources' content-memo
	// pass: how many distinct source paths were hashed, and how many of
	// those hashes had already been seen under a different path in this
	// same compile (see LoadSources).
	HashedSources     int
	ContentDuplicates int
}

func emit(events chan<- Event, file string, stage Stage, status Status) {
	if events == nil {
		return
	}
	events <- Event{File: file, Stage: stage, Status: status}
}

// CompileFileList runs a full compile over an explicit list of source
// paths (after wildcard expansion and stdlib prepend), per spec.md §6.
func CompileFileList(ctx context.Context, opts Options) (Result, error) {
	if opts.MaxDiagnostics <= 0 {
		opts.MaxDiagnostics = 256
	}

	t := trace.FromContext(ctx)
	driverSpan := trace.Begin(t, trace.ScopeDriver, "compile", trace.CurrentSpan(ctx).SpanID)
	ctx = trace.WithSpanContext(ctx, trace.SpanContext{SpanID: driverSpan.ID()})

	paths, err := ResolveSources(opts.Sources)
	if err != nil {
		driverSpan.End("resolve-sources failed")
		return Result{}, err
	}
	if opts.LibDir != "" {
		paths = append(StdlibSources(opts.LibDir), paths...)
	}

	c := module.New(opts.LibDir, opts.MaxDiagnostics)

	memo := project.NewMemo()
	ids, newlyLoaded, contentDuplicates, err := LoadSources(c.Sources, paths, memo)
	if err != nil {
		driverSpan.End("load-sources failed")
		return Result{}, err
	}

	if opts.Mode == ModeLexOnly || opts.Mode == ModeParseOnly {
		res, err := runLexOrParseOnly(ctx, c, opts, ids, newlyLoaded)
		res.HashedSources, res.ContentDuplicates = memo.Len(), contentDuplicates
		driverSpan.End(opts.Mode.String())
		return res, err
	}

	res, err := runFullBuild(ctx, c, opts, ids)
	res.HashedSources, res.ContentDuplicates = memo.Len(), contentDuplicates
	if err != nil {
		driverSpan.End("build failed")
	} else {
		driverSpan.End("build ok")
	}
	return res, err
}

// CompileTarget compiles the single source file mainFile: it replaces
// opts.Sources with mainFile and delegates to CompileFileList. It does not
// read a project manifest; callers that already have an explicit file list
// should call CompileFileList directly.
func CompileTarget(ctx context.Context, mainFile string, opts Options) (Result, error) {
	opts.Sources = []string{mainFile}
	return CompileFileList(ctx, opts)
}

func runLexOrParseOnly(ctx context.Context, c *module.Compiler, opts Options, ids []source.FileID, newlyLoaded []bool) (Result, error) {
	t := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx).SpanID
	for i, id := range ids {
		if !newlyLoaded[i] {
			continue
		}
		f := c.Sources.Get(id)
		emit(opts.Events, f.Path, StageParse, StatusWorking)

		lexSpan := trace.Begin(t, trace.ScopePass, "lex", parent)
		lx := frontend.NewLexer(c.Interner, f.Content)
		toks, err := lx.Tokenize()
		if err != nil {
			emit(opts.Events, f.Path, StageParse, StatusError)
			lexSpan.WithExtra("file", f.Path).End("error")
			return Result{Compiler: c}, fmt.Errorf("compiler: lexing %s: %w", f.Path, err)
		}
		lexSpan.WithExtra("file", f.Path).End("ok")
		if opts.Mode == ModeLexOnly {
			emit(opts.Events, f.Path, StageParse, StatusDone)
			return Result{Compiler: c, Tokens: frontend.PrintTokens(toks)}, nil
		}

		parseSpan := trace.Begin(t, trace.ScopePass, "parse", parent)
		p := frontend.NewParser(toks, c.Pool, c.Interner, id)
		astCtx, err := p.Parse()
		if err != nil {
			emit(opts.Events, f.Path, StageParse, StatusError)
			parseSpan.WithExtra("file", f.Path).End("error")
			return Result{Compiler: c}, fmt.Errorf("compiler: parsing %s: %w", f.Path, err)
		}
		parseSpan.WithExtra("file", f.Path).End("ok")
		emit(opts.Events, f.Path, StageParse, StatusDone)
		return Result{Compiler: c, PrintedAst: frontend.PrintAst(c.Interner, c.Pool, astCtx)}, nil
	}
	// Every referenced file was already cached (spec.md §9's Open Question:
	// the driver exits after the first newly-loaded file, or not at all if
	// there wasn't one).
	return Result{Compiler: c}, nil
}

func runFullBuild(ctx context.Context, c *module.Compiler, opts Options, ids []source.FileID) (Result, error) {
	t := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx).SpanID

	if opts.LibDir != "" {
		c.EnsureStdModule()
	}

	parseTimer := opts.Timer.Begin("parse")
	parseSpan := trace.Begin(t, trace.ScopePass, "parse", parent)
	for _, id := range ids {
		f := c.Sources.Get(id)
		emit(opts.Events, f.Path, StageParse, StatusWorking)
		fileSpan := trace.Begin(t, trace.ScopeModule, f.Path, parseSpan.ID())
		if _, ok := frontend.LoadAndParse(c, id); !ok {
			emit(opts.Events, f.Path, StageParse, StatusError)
			fileSpan.End("error")
			parseSpan.End("error")
			opts.Timer.End(parseTimer, "error")
			return Result{Compiler: c}, fmt.Errorf("compiler: parsing %s failed", f.Path)
		}
		fileSpan.End("ok")
		emit(opts.Events, f.Path, StageParse, StatusDone)
	}
	parseSpan.End("ok")
	opts.Timer.End(parseTimer, fmt.Sprintf("%d file(s)", len(ids)))

	runners := pipeline.NewRunners(
		frontend.ImportsStage{},
		frontend.RegisterGlobalsStage{},
		frontend.ConditionalCompilationStage{},
		frontend.DeclsStage{},
		frontend.CtAssertStage{},
		frontend.FunctionsStage{},
	)
	emit(opts.Events, "", StageDiagnose, StatusWorking)
	semaTimer := opts.Timer.Begin("sema")
	semaSpan := trace.Begin(t, trace.ScopePass, "sema", parent)
	all := append(append([]*module.Module{}, c.ModuleList...), c.GenericModuleList...)
	pipeline.Run(c, all, module.Last, runners)
	if c.ErrorsFound > 0 {
		emit(opts.Events, "", StageDiagnose, StatusError)
		semaSpan.WithExtra("errors", fmt.Sprintf("%d", c.ErrorsFound)).End("error")
		opts.Timer.End(semaTimer, fmt.Sprintf("%d error(s)", c.ErrorsFound))
		return Result{Compiler: c}, fmt.Errorf("compiler: %d error(s) found", c.ErrorsFound)
	}
	semaSpan.End("ok")
	opts.Timer.End(semaTimer, "ok")
	emit(opts.Events, "", StageDiagnose, StatusDone)

	emit(opts.Events, "", StageLower, StatusWorking)
	codegenTimer := opts.Timer.Begin("codegen")
	codegenSpan := trace.Begin(t, trace.ScopePass, "codegen", parent)
	be := backend.New()
	dispatchOpts := codegen.Options{OutDir: opts.OutDir, EmitHeader: opts.EmitHeader}
	objects, err := codegen.Dispatch(ctx, c, be, c.ModuleList, dispatchOpts)
	if err != nil {
		emit(opts.Events, "", StageLower, StatusError)
		codegenSpan.End("error")
		opts.Timer.End(codegenTimer, "error")
		return Result{Compiler: c}, fmt.Errorf("compiler: %w", err)
	}
	codegenSpan.End("ok")
	opts.Timer.End(codegenTimer, fmt.Sprintf("%d object(s)", len(objects)))
	emit(opts.Events, "", StageLower, StatusDone)

	stats := c.Pool.Stats()
	c.Pool.FreeAstFamily()

	result := Result{Compiler: c, Objects: objects, Stats: stats}
	if opts.EmitHeader {
		return result, nil
	}

	objPaths := make([]string, len(objects))
	for i, o := range objects {
		objPaths[i] = o.Path
	}

	emit(opts.Events, "", StageLink, StatusWorking)
	linkTimer := opts.Timer.Begin("link")
	linkSpan := trace.Begin(t, trace.ScopePass, "link", parent)
	linkRes, err := link.Link(link.Request{
		ObjectPaths:     objPaths,
		TargetName:      opts.TargetName,
		OutDir:          opts.OutDir,
		RunAfterCompile: opts.RunAfterCompile,
		PrintCommands:   opts.PrintCommands,
	})
	if err != nil {
		emit(opts.Events, "", StageLink, StatusError)
		linkSpan.End("error")
		opts.Timer.End(linkTimer, "error")
		return result, fmt.Errorf("compiler: %w", err)
	}
	linkSpan.End("ok")
	opts.Timer.End(linkTimer, "ok")
	emit(opts.Events, "", StageLink, StatusDone)
	result.LinkResult = linkRes
	return result, nil
}

// PrintTimings renders a Pool.Stats memory-usage summary the way
// --timings mode prints it: after codegen, before the AST-family arenas
// are dropped by runFullBuild (spec.md §4.6's memory-usage summary,
// made concrete per the supplemented-features note in SPEC_FULL.md).
func PrintTimings(stats module.Stats) string {
	return fmt.Sprintf(
		"memory: ast=%d expr=%d decl=%d type=%d srcloc=%d tokkind=%d tokdata=%d total=%d bytes",
		stats.AstBytes, stats.ExprBytes, stats.DeclBytes, stats.TypeBytes,
		stats.SourceLocBytes, stats.TokKindBytes, stats.TokDataBytes, stats.Total(),
	)
}

// PrintPhaseTimings renders timer's per-stage durations the way --timings
// mode prints them alongside the Pool.Stats memory summary. Passing a nil
// timer (Options.Timer was left unset) yields an empty string.
func PrintPhaseTimings(timer *observ.Timer) string {
	if timer == nil {
		return ""
	}
	return timer.Summary()
}

// PrintMemoSummary renders the content-hash memo's findings for --timings:
// how many distinct source paths were hashed this compile, and how many
// turned out to share content with an earlier path (see LoadSources).
func PrintMemoSummary(res Result) string {
	if res.HashedSources == 0 {
		return ""
	}
	return fmt.Sprintf("memo: %d source(s) hashed, %d content-duplicate(s)\n", res.HashedSources, res.ContentDuplicates)
}

// PrintDiagnostics renders c's accumulated diagnostics with diagprint.
func PrintDiagnostics(c *module.Compiler, opts diagprint.Options) string {
	c.Diagnostics.Sort()
	var b strings.Builder
	diagprint.Pretty(&b, c.Diagnostics, c.Sources, opts)
	return b.String()
}
