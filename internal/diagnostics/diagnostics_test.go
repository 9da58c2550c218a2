package diagnostics

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecover_CatchesFatalAndFormatsByKind(t *testing.T) {
	cases := []struct {
		name string
		kind Kind
		want string
	}{
		{"buffer", Buffer, "boom\nEXITING on BUFFER FATAL ERROR\n"},
		{"scanner", Scanner, "Exiting on Scanner Fatal Error: boom\n"},
		{"semantic", Semantic, "boom\n"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			caught := true
			func() {
				defer Recover(&buf)
				Raise(tt.kind, "boom")
				caught = false
			}()
			require.True(t, caught)
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRecover_ReturnsFalseWithoutPanic(t *testing.T) {
	var buf bytes.Buffer
	require.False(t, Recover(&buf))
	require.Empty(t, buf.String())
}

func TestRecover_RepanicsNonFatalValues(t *testing.T) {
	require.Panics(t, func() {
		defer Recover(nil)
		panic("not a Fatal")
	})
}

func TestFormatSyntaxError(t *testing.T) {
	require.Equal(t, "Syntax error: Expected: ';' Actual: kEOF:EndOfFile.",
		FormatSyntaxError("';'", "kEOF:EndOfFile"))
}

func TestFormatDuplicateIdentifier(t *testing.T) {
	require.Equal(t, "Semantic error: The identifier 'a' has been declared.",
		FormatDuplicateIdentifier("a"))
}

func TestFormatUndeclaredIdentifier(t *testing.T) {
	require.Equal(t, "Semantic error: The identifier 'a' has already been declared.",
		FormatUndeclaredIdentifier("a"))
}

type stringerType string

func (s stringerType) String() string { return string(s) }

func TestFormatTypeError(t *testing.T) {
	require.Equal(t, "Type error: Expected: kBool Actual: kInt.",
		FormatTypeError(stringerType("kBool"), stringerType("kInt")))
}

func TestFormatTypeErrorEither(t *testing.T) {
	require.Equal(t, "Type error: Expected: kInt or kBool Actual: kGarbage.",
		FormatTypeErrorEither(stringerType("kInt"), stringerType("kBool"), stringerType("kGarbage")))
}
