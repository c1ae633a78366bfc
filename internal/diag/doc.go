// Package diag defines the core diagnostic model shared by every stage of
// the compilation pipeline.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     findings produced by the source loader, the frontend, and each
//     semantic analysis stage.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag performs no IO, CLI integration, or interactive behaviour.
// Rendering for CLI output lives in golden.go's formatting helpers; the
// driver in internal/compiler owns deciding when to stop on accumulated
// diagnostics between stages.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// Notes should be used sparingly: each note must add new context (e.g.
// "symbol first declared here") rather than repeating the diagnostic message.
//
// # Emitting diagnostics
//
// Phases should use a diag.Reporter to decouple emission from storage. A
// stage constructs a ReportBuilder via NewReportBuilder (or the helper
// functions ReportError/ReportWarning/ReportInfo) and chains WithNote before
// calling Emit.
//
// When no additional metadata is needed, phases may call Reporter.Report(...)
// directly. diag.BagReporter aggregates diagnostics into a Bag, which
// supports sorting, deduplication, filtering, and transformation. A Bag has
// a bounded capacity: once full, Add reports failure and the caller is
// expected to treat that as a fatal condition between stages.
package diag
