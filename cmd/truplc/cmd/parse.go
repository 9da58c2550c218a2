package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hieule22/trupl-go/internal/diagnostics"
	"github.com/hieule22/trupl-go/internal/lexer"
	"github.com/hieule22/trupl-go/internal/parser"
	"github.com/hieule22/trupl-go/internal/sourcefile"
	"github.com/hieule22/trupl-go/internal/symboltable"
)

var dumpSymbols bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse and semantically check a TruPL program",
	Long: `Parse a TruPL program, running the scanner and the declaration-before-
use, duplicate-identifier, and type-checking semantic actions as it goes.

Exits non-zero on a syntax error or a fatal semantic error (duplicate
declaration, undeclared identifier, or type mismatch).`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&dumpSymbols, "dump-symbols", false, "print the symbol table after a successful parse")
}

func runParse(cmd *cobra.Command, args []string) error {
	logger := verboseLogger(cmd)
	path := args[0]

	buf, err := sourcefile.Load(path)
	if err != nil {
		return err
	}
	logger.Debugf("loaded %s", path)

	ok := false
	func() {
		defer diagnostics.Recover(os.Stderr)

		table := symboltable.New()
		scanner := lexer.New(buf)
		p := parser.New(scanner, table)

		if !p.ParseProgram(os.Stderr) {
			return
		}
		ok = true
		logger.Debug("parse succeeded")
		if dumpSymbols {
			fmt.Print(p.Dump())
		}
	}()

	if !ok {
		os.Exit(1)
	}
	return nil
}
