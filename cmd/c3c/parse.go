package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	c3compiler "c3c/internal/compiler"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.c3>",
	Short: "Parse a source file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	res, err := c3compiler.CompileFileList(cmd.Context(), c3compiler.Options{
		Sources:        []string{args[0]},
		Mode:           c3compiler.ModeParseOnly,
		MaxDiagnostics: maxDiagnostics,
	})
	if err != nil {
		return err
	}
	printCompilerDiagnostics(cmd, res)
	if res.PrintedAst != "" {
		fmt.Fprint(os.Stdout, res.PrintedAst)
	}
	return nil
}
