// Package diagnostics formats the compiler's observable error messages and
// carries fatal errors from deep inside the buffer/scanner/parser out to the
// command that started the pipeline.
//
// Syntax errors are not fatal: the parser prints them (see
// FormatSyntaxError) and reports failure with a false return.
// Buffer, scanner, and semantic errors are fatal per spec: they are raised
// with Raise and must be recovered exactly once, at the edge, with Recover.
package diagnostics

import (
	"fmt"
	"io"
)

// Kind identifies which of the three fatal-error taxonomies raised a Fatal.
type Kind int

const (
	// Buffer marks an invalid byte or internal underflow in the character buffer.
	Buffer Kind = iota
	// Scanner marks an illegal character that slipped past buffer validation.
	Scanner
	// Semantic marks a duplicate declaration, undeclared use, or type mismatch.
	Semantic
)

// Fatal is panicked by the buffer, scanner, and parser on unrecoverable
// errors. The driver recovers it with Recover and converts it to a process
// exit, preserving the exact message text pinned by the external interface.
type Fatal struct {
	Kind    Kind
	Message string
}

func (f *Fatal) Error() string {
	return f.Message
}

// Raise panics with a Fatal error of the given kind and formatted message.
func Raise(kind Kind, format string, args ...any) {
	panic(&Fatal{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// RaiseBuffer panics a Fatal of Kind Buffer.
func RaiseBuffer(format string, args ...any) {
	Raise(Buffer, format, args...)
}

// RaiseScanner panics a Fatal of Kind Scanner.
func RaiseScanner(format string, args ...any) {
	Raise(Scanner, format, args...)
}

// RaiseSemantic panics a Fatal of Kind Semantic.
func RaiseSemantic(format string, args ...any) {
	Raise(Semantic, format, args...)
}

// Recover must be deferred by any caller that drives the pipeline to
// completion (a CLI command, a test harness). It writes the exact message
// format pinned by spec §6/§7 to w and reports whether a Fatal was caught.
//
// recover only takes effect when Recover itself is the deferred call
// (defer diagnostics.Recover(w)); called from inside another deferred
// function it catches nothing and returns false. In the deferred form its
// result is discarded, so callers that need to know whether a Fatal was
// caught track that themselves, e.g. with a flag set once the guarded work
// completes.
func Recover(w io.Writer) bool {
	r := recover()
	if r == nil {
		return false
	}
	f, ok := r.(*Fatal)
	if !ok {
		// Not one of ours: a genuine programming bug. Let it keep propagating
		// so it surfaces as a stack trace instead of being swallowed silently.
		panic(r)
	}
	switch f.Kind {
	case Buffer:
		fmt.Fprintln(w, f.Message)
		fmt.Fprintln(w, "EXITING on BUFFER FATAL ERROR")
	case Scanner:
		fmt.Fprintf(w, "Exiting on Scanner Fatal Error: %s\n", f.Message)
	case Semantic:
		fmt.Fprintln(w, f.Message)
	}
	return true
}

// FormatSyntaxError renders the non-fatal syntax-error diagnostic.
func FormatSyntaxError(expected, actualDebugString string) string {
	return fmt.Sprintf("Syntax error: Expected: %s Actual: %s.", expected, actualDebugString)
}

// FormatDuplicateIdentifier renders the fatal duplicate-declaration message.
func FormatDuplicateIdentifier(identifier string) string {
	return fmt.Sprintf("Semantic error: The identifier '%s' has been declared.", identifier)
}

// FormatUndeclaredIdentifier renders the fatal undeclared-use message.
//
// The wording is inherited verbatim from the original compiler: it reads
// "has already been declared" even though it fires on an undeclared
// identifier. See SPEC_FULL.md / DESIGN.md for the Open Question this
// resolves — the contradictory wording is preserved on purpose because the
// external interface and seed scenarios are pinned to it.
func FormatUndeclaredIdentifier(identifier string) string {
	return fmt.Sprintf("Semantic error: The identifier '%s' has already been declared.", identifier)
}

// FormatTypeError renders the fatal type-mismatch message for a single
// expected type.
func FormatTypeError(expected, actual fmt.Stringer) string {
	return fmt.Sprintf("Type error: Expected: %s Actual: %s.", expected, actual)
}

// FormatTypeErrorEither renders the fatal type-mismatch message for an
// expression that may legally have been one of two expected types.
func FormatTypeErrorEither(expected0, expected1, actual fmt.Stringer) string {
	return fmt.Sprintf("Type error: Expected: %s or %s Actual: %s.", expected0, expected1, actual)
}
