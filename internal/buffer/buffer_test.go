package buffer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, input string) []byte {
	t.Helper()
	b := New(strings.NewReader(input))
	var out []byte
	for {
		c := b.NextChar()
		out = append(out, c)
		if c == EOFMarker {
			return out
		}
		if len(out) > len(input)+10 {
			t.Fatalf("NextChar did not reach EOF for input %q", input)
		}
	}
}

func TestNextChar_CollapsesWhitespaceRunsToOneSpace(t *testing.T) {
	got := drain(t, "a   \t\n  b")
	require.Equal(t, []byte{'a', ' ', 'b', EOFMarker}, got)
}

func TestNextChar_CommentRunsToEndOfLine(t *testing.T) {
	got := drain(t, "a # this is a comment\nb")
	require.Equal(t, []byte{'a', ' ', 'b', EOFMarker}, got)
}

func TestNextChar_TrailingWhitespaceBeforeEOFProducesNoDelimiter(t *testing.T) {
	got := drain(t, "a \n\t ")
	require.Equal(t, []byte{'a', EOFMarker}, got)
}

func TestNextChar_CommentAtEndOfFileProducesNoDelimiter(t *testing.T) {
	got := drain(t, "a # trailing comment, no newline")
	require.Equal(t, []byte{'a', EOFMarker}, got)
}

func TestNextChar_IsIdempotentAtEOF(t *testing.T) {
	b := New(strings.NewReader("a"))
	require.Equal(t, byte('a'), b.NextChar())
	require.Equal(t, EOFMarker, b.NextChar())
	require.Equal(t, EOFMarker, b.NextChar())
	require.Equal(t, EOFMarker, b.NextChar())
}

func TestUnreadChar_RoundTrips(t *testing.T) {
	b := New(strings.NewReader("ab"))
	first := b.NextChar()
	require.Equal(t, byte('a'), first)
	b.UnreadChar(first)
	require.Equal(t, byte('a'), b.NextChar())
	require.Equal(t, byte('b'), b.NextChar())
}

func TestUnreadChar_OfEOFMarkerIsNoOp(t *testing.T) {
	b := New(strings.NewReader(""))
	require.Equal(t, EOFMarker, b.NextChar())
	b.UnreadChar(EOFMarker)
	require.Equal(t, EOFMarker, b.NextChar())
}

func TestNextChar_PanicsOnInvalidCharacter(t *testing.T) {
	b := New(strings.NewReader("@"))
	require.Panics(t, func() { b.NextChar() })
}

func TestNextChar_CrossesRefillBoundary(t *testing.T) {
	input := strings.Repeat("a", refillSize+5)
	b := New(strings.NewReader(input))
	for i := 0; i < refillSize+5; i++ {
		require.Equal(t, byte('a'), b.NextChar(), "position %d", i)
	}
	require.Equal(t, EOFMarker, b.NextChar())
}
