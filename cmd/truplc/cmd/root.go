// Package cmd implements the truplc command-line driver: the external
// collaborator spec.md §1 places out of scope for the core pipeline
// (reads a filename, constructs a file-backed buffer, runs the scanner
// or parser, exits with a process status).
//
// Grounded on the teacher's cmd/dwscript/cmd package
// (root.go/lex.go/parse.go), persistent --verbose flag included.
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "truplc",
	Short: "TruPL compiler front end",
	Long: `truplc is a scanner and parser for TruPL, a small imperative
teaching language: one program, flat procedures, int/bool variables,
and the usual arithmetic, relational, and control-flow constructs.`,
}

// Execute runs the root command, returning any error for main to report.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log pipeline trace messages")
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}

// verboseLogger returns log at Debug level when --verbose was passed, or
// silenced otherwise. Trace output is purely diagnostic: it never
// substitutes for the pinned diagnostic strings the compiler itself
// prints.
func verboseLogger(cmd *cobra.Command) *logrus.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

func exitWithError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
