// Package pipeline drives the six-stage lockstep semantic analysis
// pipeline: it advances every module to a target stage, running each
// intermediate stage across all modules before any module proceeds to the
// next one (spec.md §4.4).
package pipeline

import "c3c/internal/module"

// StageRunner is the external-collaborator contract a concrete lexer /
// parser / semantic-analysis implementation satisfies. Only the stage
// contract is specified here — each Run implementation owns its own
// algorithm, data structures, and diagnostics.
type StageRunner interface {
	// Stage identifies which AnalysisStage this runner advances modules
	// into. Run is only ever invoked on a module whose current stage is
	// Stage-1.
	Stage() module.AnalysisStage

	// Run advances m from Stage-1 to Stage. It reports diagnostics through
	// c.Reporter() and must not advance m.Stage itself — the driver does
	// that once Run returns, preserving the monotonicity invariant in one
	// place.
	Run(c *module.Compiler, m *module.Module)
}

// Runners is the ordered list of stage runners the driver executes, one
// per AnalysisStage from Imports through Functions.
type Runners [int(module.Last)]StageRunner

// NewRunners builds a Runners table from six stage runners, indexed by
// the stage each one advances modules into.
func NewRunners(runners ...StageRunner) Runners {
	var table Runners
	for _, r := range runners {
		table[int(r.Stage())-1] = r
	}
	return table
}

// Run advances every module in modules to target, interleaved at stage
// granularity: stage k runs on every module before any module begins
// stage k+1. Early-abort: Run checks the compiler's ErrorsFound counter
// after each module's pass and returns as soon as it is nonzero, so the
// remaining modules are not run through that stage and no later stage
// starts (spec.md §4.4, §7).
func Run(c *module.Compiler, modules []*module.Module, target module.AnalysisStage, runners Runners) {
	for stage := module.Imports; stage <= target; stage++ {
		for _, m := range modules {
			for m.Stage < stage {
				next := m.Stage + 1
				runner := runners[int(next)-1]
				if runner == nil {
					m.AdvanceStage(next)
					continue
				}
				runner.Run(c, m)
				m.AdvanceStage(next)
				if c.ErrorsFound > 0 {
					return
				}
			}
		}
		if c.ErrorsFound > 0 {
			return
		}
	}
}
