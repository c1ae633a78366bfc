package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	c3compiler "c3c/internal/compiler"
	"c3c/internal/diagprint"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file.c3>",
	Short: "Tokenize a source file and print its tokens",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func runLex(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	res, err := c3compiler.CompileFileList(cmd.Context(), c3compiler.Options{
		Sources:        []string{args[0]},
		Mode:           c3compiler.ModeLexOnly,
		MaxDiagnostics: maxDiagnostics,
	})
	if err != nil {
		return err
	}
	printCompilerDiagnostics(cmd, res)
	if res.Tokens != "" {
		fmt.Fprint(os.Stdout, res.Tokens)
	}
	return nil
}

func printCompilerDiagnostics(cmd *cobra.Command, res c3compiler.Result) {
	if res.Compiler == nil || res.Compiler.Diagnostics.Len() == 0 {
		return
	}
	opts := diagprint.Options{
		Color:     useColor(cmd, os.Stderr),
		Context:   2,
		ShowNotes: true,
	}
	fmt.Fprint(os.Stderr, c3compiler.PrintDiagnostics(res.Compiler, opts))
}
