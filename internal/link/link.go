// Package link drives the final stage of a build: invoking the platform
// linker over the object paths codegen produced, and optionally executing
// the resulting binary. It mirrors the teacher's buildpipeline.runCommand
// shape — shell out, capture stderr, wrap with context — generalized from
// "link and run one VM/LLVM output" to "link and run against whatever
// object format the target requests" (spec.md §4.7).
package link

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// ObjectFormat names the target object/executable format a Request links
// for. Host is the platform's own default; the others are the
// cross-linking formats obj_format_linking_supported gates on.
type ObjectFormat string

const (
	Host ObjectFormat = "host"
	ELF  ObjectFormat = "elf"
	MachO ObjectFormat = "macho"
	PE    ObjectFormat = "pe"
)

// supportedGenericFormats lists the non-host formats the generic linker
// (the host "cc"/"ld" front end) can actually produce. Anything else gets
// a notice and has run-after-compile disabled, per spec.md §4.7.
var supportedGenericFormats = map[ObjectFormat]bool{
	ELF:   true,
	MachO: runtime.GOOS == "darwin",
	PE:    true,
}

// Request configures one link action.
type Request struct {
	ObjectPaths     []string
	TargetName      string
	OutDir          string
	Format          ObjectFormat // "" means Host
	RunAfterCompile bool
	PrintCommands   bool
}

// Result reports what Link produced.
type Result struct {
	BinaryPath string
	Linked     bool
	Notice     string // set when linking was skipped or run-after-compile was disabled
}

// Link links req.ObjectPaths by invoking the C compiler driver (clang when
// found on PATH, else cc); the host format and every supported generic
// format use that same command, and no format-specific linker or flags are
// selected. It then optionally runs the
// resulting binary. A linker failure leaves Result.Linked false and
// returns the error; an unsupported non-host format leaves Linked false
// with a Notice and no error (run-after-compile is disabled, not fatal).
func Link(req Request) (Result, error) {
	if len(req.ObjectPaths) == 0 {
		return Result{}, fmt.Errorf("link: no object paths to link")
	}
	if req.TargetName == "" {
		return Result{}, fmt.Errorf("link: missing target name")
	}

	format := req.Format
	if format == "" {
		format = Host
	}

	if err := os.MkdirAll(req.OutDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("link: creating output dir: %w", err)
	}
	binPath := filepath.Join(req.OutDir, req.TargetName)

	if format != Host && !supportedGenericFormats[format] {
		return Result{
			Linked: false,
			Notice: fmt.Sprintf("object format %q not supported by the generic linker on %s; run-after-compile disabled", format, runtime.GOOS),
		}, nil
	}

	if err := invokeLinker(req.PrintCommands, format, req.ObjectPaths, binPath); err != nil {
		return Result{}, fmt.Errorf("link: %w", err)
	}

	result := Result{BinaryPath: binPath, Linked: true}
	if !req.RunAfterCompile {
		return result, nil
	}
	if err := runBinary(req.PrintCommands, binPath); err != nil {
		// Both a failure to start the process and a non-zero exit status
		// (an *exec.ExitError) are returned, so callers can forward the
		// binary's exit code.
		return result, fmt.Errorf("link: running %s: %w", binPath, err)
	}
	return result, nil
}

func invokeLinker(printCommands bool, format ObjectFormat, objectPaths []string, binPath string) error {
	cc := "cc"
	if path, err := exec.LookPath("clang"); err == nil {
		cc = path
	}
	args := append(append([]string{}, objectPaths...), "-o", binPath)
	if runtime.GOOS != "windows" {
		args = append(args, "-pthread")
	}
	return runCommand(printCommands, cc, args...)
}

func runBinary(printCommands bool, binPath string) error {
	rel := binPath
	if !strings.HasPrefix(rel, "./") && !filepath.IsAbs(rel) {
		rel = "./" + rel
	}
	if printCommands {
		if _, err := fmt.Fprintln(os.Stdout, rel); err != nil {
			return err
		}
	}
	cmd := exec.Command(rel)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	return cmd.Run()
}

func runCommand(printCommands bool, name string, args ...string) error {
	if printCommands {
		if _, err := fmt.Fprintf(os.Stdout, "%s %s\n", name, strings.Join(args, " ")); err != nil {
			return err
		}
	}
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	var stderr strings.Builder
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return err
		}
		return fmt.Errorf("%s: %s", name, msg)
	}
	return nil
}
