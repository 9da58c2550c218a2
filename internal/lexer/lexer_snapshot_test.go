package lexer

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestNextToken_GoldenTokenDump snapshots the full DebugString sequence for
// a representative program, the way a scanner dump tool would render it
// for a human to eyeball.
func TestNextToken_GoldenTokenDump(t *testing.T) {
	const program = `program foo;
  a, b: int;
  c: bool;

  procedure add(x: int; y: int)
  begin
    print(x + y);
  end;

begin
  a := 1;
  b := a + 2;
  c := a = b;
  if c then
    print a;
  else
    print b;
  while a < 10 loop
    a := a + 1;
  end;
  add(a, b);
end;`

	s := NewFromReader(strings.NewReader(program))
	var sb strings.Builder
	for {
		tok := s.NextToken()
		sb.WriteString(tok.DebugString())
		sb.WriteByte('\n')
		if tok.Kind == KindEOF {
			break
		}
	}

	snaps.MatchSnapshot(t, sb.String())
}
