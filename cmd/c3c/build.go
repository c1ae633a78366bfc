package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	c3compiler "c3c/internal/compiler"
	"c3c/internal/observ"
	"c3c/internal/ui"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] [path]",
	Short: "Build a c3 program",
	Long:  "Build a c3 program using c3c.toml as the entrypoint definition, or an explicit file.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  buildExecution,
}

func init() {
	buildCmd.Flags().String("out-dir", "target", "output directory for objects and the linked binary")
	buildCmd.Flags().Bool("emit-header", false, "emit only public-API headers, skip linking")
	buildCmd.Flags().Bool("print-commands", false, "print linker commands before running them")
	buildCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
}

func buildExecution(cmd *cobra.Command, args []string) error {
	target, err := resolveTarget(args)
	if err != nil {
		return err
	}

	outDir, err := cmd.Flags().GetString("out-dir")
	if err != nil {
		return err
	}
	emitHeader, err := cmd.Flags().GetBool("emit-header")
	if err != nil {
		return err
	}
	printCommands, err := cmd.Flags().GetBool("print-commands")
	if err != nil {
		return err
	}
	uiMode, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}

	var timer *observ.Timer
	if showTimings {
		timer = observ.NewTimer()
	}

	opts := c3compiler.Options{
		Sources:        target.sources,
		LibDir:         target.libDir,
		TargetName:     target.targetName,
		OutDir:         outDir,
		EmitHeader:     emitHeader,
		PrintCommands:  printCommands,
		MaxDiagnostics: maxDiagnostics,
		Timer:          timer,
	}

	res, err := runCompileWithOptionalUI(cmd, "c3c build", target.sources, &opts, uiMode)
	printCompilerDiagnostics(cmd, res)
	if err != nil {
		return err
	}

	if showTimings {
		fmt.Fprintln(os.Stdout, c3compiler.PrintTimings(res.Stats))
		fmt.Fprint(os.Stdout, c3compiler.PrintPhaseTimings(timer))
		fmt.Fprint(os.Stdout, c3compiler.PrintMemoSummary(res))
	}
	if emitHeader {
		fmt.Fprintf(os.Stdout, "wrote %d header(s) to %s\n", len(res.Objects), outDir)
		return nil
	}
	if res.LinkResult.Linked {
		fmt.Fprintf(os.Stdout, "built %s\n", res.LinkResult.BinaryPath)
	} else if res.LinkResult.Notice != "" {
		fmt.Fprintln(os.Stdout, res.LinkResult.Notice)
	}
	return nil
}

func runCompileWithOptionalUI(cmd *cobra.Command, title string, files []string, opts *c3compiler.Options, uiMode string) (c3compiler.Result, error) {
	mode, err := readUIMode(uiMode)
	if err != nil {
		return c3compiler.Result{}, err
	}
	if !shouldUseTUI(mode) || len(files) == 0 {
		return c3compiler.CompileFileList(cmd.Context(), *opts)
	}

	events := make(chan c3compiler.Event, 256)
	type outcome struct {
		res c3compiler.Result
		err error
	}
	outcomeCh := make(chan outcome, 1)

	go func() {
		o := *opts
		o.Events = events
		res, err := c3compiler.CompileFileList(cmd.Context(), o)
		outcomeCh <- outcome{res: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	out := <-outcomeCh
	if uiErr != nil {
		return out.res, uiErr
	}
	return out.res, out.err
}
