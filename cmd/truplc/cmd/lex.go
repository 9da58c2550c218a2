package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hieule22/trupl-go/internal/diagnostics"
	"github.com/hieule22/trupl-go/internal/lexer"
	"github.com/hieule22/trupl-go/internal/sourcefile"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a TruPL source file and print its tokens",
	Long: `Tokenize a TruPL program and print one KIND:Attribute line per token,
in the order the scanner produces them, stopping at end of file.`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	logger := verboseLogger(cmd)
	path := args[0]

	buf, err := sourcefile.Load(path)
	if err != nil {
		return err
	}
	logger.Debugf("loaded %s", path)

	count := 0
	finished := false
	func() {
		defer diagnostics.Recover(os.Stderr)

		scanner := lexer.New(buf)
		for {
			tok := scanner.NextToken()
			fmt.Println(tok.DebugString())
			count++
			if tok.Kind == lexer.KindEOF {
				break
			}
		}
		finished = true
	}()
	if !finished {
		os.Exit(1)
	}
	logger.Debugf("emitted %d tokens", count)
	return nil
}
