// Package buffer implements the character-buffer stage of the TruPL
// pipeline: it turns a raw byte source into a validated, normalized stream
// of TruPL alphabet characters, collapsing whitespace and line comments
// into a single delimiter space.
//
// It is grounded on the teacher's refill-then-decode shape
// (internal/lexer.Lexer.readChar/peekChar in the reference DWScript
// lexer), adapted from rune-at-a-time UTF-8 decoding to byte-at-a-time
// ASCII validation, since TruPL's alphabet is ASCII-only (spec §3).
package buffer

import (
	"bufio"
	"io"

	"github.com/hieule22/trupl-go/internal/diagnostics"
)

const (
	// EOFMarker is the sentinel byte returned once the input is exhausted.
	EOFMarker byte = '$'
	// CommentMarker starts a line comment that runs to the next newline.
	CommentMarker byte = '#'

	space   byte = ' '
	tab     byte = '\t'
	newline byte = '\n'
)

// refillSize is the block size used to top up the internal read-ahead
// queue from the underlying source. The only externally observable
// behavior is the normalized character stream; refill granularity is a
// private implementation detail (spec §4.1, "Implementation freedom").
const refillSize = 1024

// Buffer is a byte-source abstraction that exposes NextChar/UnreadChar per
// spec §4.1. A zero-value Buffer is not usable; construct one with New.
type Buffer struct {
	r         *bufio.Reader
	pending   []byte // small FIFO of bytes read ahead of the last char returned
	unread    []byte // at most one pushed-back char, per the one-unread contract
	exhausted bool
}

// New constructs a Buffer that reads and normalizes bytes from r.
func New(r io.Reader) *Buffer {
	return &Buffer{r: bufio.NewReaderSize(r, refillSize)}
}

// NextChar returns the next character of the normalized stream. After
// input is exhausted it returns EOFMarker forever.
//
// A run of whitespace/comment that precedes a further token collapses to
// one delimiter space; a run that runs straight into EOF produces no
// delimiter at all, so trailing whitespace stays invisible (spec §4.1).
func (b *Buffer) NextChar() byte {
	if b.removeSpaceAndComment() {
		c := b.next()
		if c == EOFMarker {
			return EOFMarker
		}
		b.unread = append(b.unread, c)
		return space
	}

	c := b.next()
	if c == EOFMarker {
		return EOFMarker
	}
	if !validate(c) {
		diagnostics.RaiseBuffer("Invalid character: %c", c)
	}
	return c
}

// UnreadChar pushes one character back. At most one unread may occur
// between two NextChar calls; unreading EOFMarker is a no-op.
func (b *Buffer) UnreadChar(c byte) {
	if c == EOFMarker {
		return
	}
	b.exhausted = false
	b.unread = append(b.unread, c)
}

// next removes and returns the single next raw byte, refilling the
// read-ahead queue from the underlying reader in blocks as needed.
func (b *Buffer) next() byte {
	if len(b.unread) > 0 {
		c := b.unread[len(b.unread)-1]
		b.unread = b.unread[:len(b.unread)-1]
		return c
	}
	if len(b.pending) == 0 {
		b.fill()
	}
	if len(b.pending) == 0 {
		b.exhausted = true
		return EOFMarker
	}
	c := b.pending[0]
	b.pending = b.pending[1:]
	return c
}

func (b *Buffer) fill() {
	buf := make([]byte, refillSize)
	n, _ := io.ReadFull(b.r, buf)
	if n > 0 {
		b.pending = append(b.pending, buf[:n]...)
	}
}

// skipLine discards characters up to and including the next newline, or
// until input is exhausted.
func (b *Buffer) skipLine() {
	c := b.next()
	for c != newline && !b.exhausted {
		c = b.next()
	}
}

// removeSpaceAndComment discards a contiguous run of whitespace and/or
// line comments, leaving the first character of the next token (if any)
// ready to be read back. It reports whether anything was removed, mirroring
// the teacher's boolean-returning normalization helpers.
func (b *Buffer) removeSpaceAndComment() bool {
	c := b.next()
	removed := false
	for isWhitespace(c) || c == CommentMarker {
		removed = true
		for isWhitespace(c) {
			c = b.next()
		}
		if c == CommentMarker {
			b.skipLine()
			c = b.next()
		}
	}
	if !b.exhausted {
		b.unread = append(b.unread, c)
	}
	return removed
}

func isWhitespace(c byte) bool {
	return c == space || c == tab || c == newline
}

// validate reports whether c belongs to the TruPL alphabet (spec §3):
// lowercase letters, digits, the listed punctuation, or EOFMarker.
func validate(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == EOFMarker:
		return true
	}
	switch c {
	case ';', ':', '(', ')', ',', '=', '>', '<', '+', '-', '*', '/', '#':
		return true
	}
	return false
}
