package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	c3compiler "c3c/internal/compiler"
	"c3c/internal/observ"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [file.c3]",
	Short: "Build and execute a c3 program",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExecution,
}

func init() {
	runCmd.Flags().String("out-dir", "target", "output directory for objects and the linked binary")
	runCmd.Flags().String("ui", "off", "progress UI (auto|on|off)")
}

func runExecution(cmd *cobra.Command, args []string) error {
	target, err := resolveTarget(args)
	if err != nil {
		return err
	}

	outDir, err := cmd.Flags().GetString("out-dir")
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
		Sources:         target.sources,
		LibDir:          target.libDir,
		TargetName:      target.targetName,
		OutDir:          outDir,
		RunAfterCompile: true,
		MaxDiagnostics:  maxDiagnostics,
		Timer:           timer,
	}

	res, err := runCompileWithOptionalUI(cmd, "c3c run", target.sources, &opts, uiMode)
	printCompilerDiagnostics(cmd, res)
	if showTimings {
		fmt.Fprintln(os.Stdout, c3compiler.PrintTimings(res.Stats))
		fmt.Fprint(os.Stdout, c3compiler.PrintPhaseTimings(timer))
		fmt.Fprint(os.Stdout, c3compiler.PrintMemoSummary(res))
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		return err
	}
	if !res.LinkResult.Linked && res.LinkResult.Notice != "" {
		return errors.New(res.LinkResult.Notice)
	}
	return nil
}
