package parser

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hieule22/trupl-go/internal/diagnostics"
	"github.com/hieule22/trupl-go/internal/lexer"
	"github.com/hieule22/trupl-go/internal/symboltable"
)

// result captures the outcome of running ParseProgram to completion,
// including a fatal semantic error recovered at this test's own edge.
type result struct {
	ok     bool
	fatal  *diagnostics.Fatal
	stderr string
	parser *Parser
}

func run(t *testing.T, input string) result {
	t.Helper()
	var r result
	var buf bytes.Buffer

	func() {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			f, ok := rec.(*diagnostics.Fatal)
			require.True(t, ok, "unexpected panic: %v", rec)
			r.fatal = f
		}()

		scanner := lexer.NewFromReader(strings.NewReader(input))
		table := symboltable.New()
		p := New(scanner, table)
		r.parser = p
		r.ok = p.ParseProgram(&buf)
	}()

	r.stderr = buf.String()
	return r
}

func TestParseProgram_SeedScenario4_ValidProgramAccepted(t *testing.T) {
	r := run(t, "program foo0; begin print 10; end;")
	require.Nil(t, r.fatal)
	require.True(t, r.ok)
}

func TestParseProgram_SeedScenario5_DuplicateDeclarationIsFatal(t *testing.T) {
	r := run(t, "program foo; a: int; a: bool; begin print(a); end;")
	require.NotNil(t, r.fatal)
	require.Equal(t, diagnostics.Semantic, r.fatal.Kind)
	require.Contains(t, r.fatal.Message, "'a'")
	require.Equal(t, diagnostics.FormatDuplicateIdentifier("a"), r.fatal.Message)
}

func TestParseProgram_SeedScenario6_UndeclaredIdentifierIsFatal(t *testing.T) {
	r := run(t, "program foo; begin print(a); end;")
	require.NotNil(t, r.fatal)
	require.Equal(t, diagnostics.Semantic, r.fatal.Kind)
	require.Equal(t, diagnostics.FormatUndeclaredIdentifier("a"), r.fatal.Message)
}

func TestParseProgram_SeedScenario7_MixedTypeArithmeticIsFatal(t *testing.T) {
	r := run(t, "program foo; a: int; b: bool; begin a := (a + 1) * (a - 1) + b; end;")
	require.NotNil(t, r.fatal)
	require.Equal(t, diagnostics.FormatTypeError(symboltable.Int, symboltable.Bool), r.fatal.Message)
}

func TestParseProgram_SeedScenario8_NonBoolConditionIsFatal(t *testing.T) {
	r := run(t, "program foo; begin if 1 then begin print(1); end; end;")
	require.NotNil(t, r.fatal)
	require.Equal(t, diagnostics.FormatTypeError(symboltable.Bool, symboltable.Int), r.fatal.Message)
}

func TestParseProgram_ProcedureCallWithMatchingArgTypesAccepted(t *testing.T) {
	r := run(t, "program foo2; procedure add(a: int; b: int) begin print(a + b); end; begin add(1, 2); end;")
	require.Nil(t, r.fatal)
	require.True(t, r.ok)
}

func TestParseProgram_ProcedureCallWithWrongArgTypeIsFatal(t *testing.T) {
	r := run(t, "program foo; procedure add(a: int; b: int) begin print(a + b); end; begin add(1, 1 = 1); end;")
	require.NotNil(t, r.fatal)
	require.Equal(t, diagnostics.Semantic, r.fatal.Kind)
}

func TestParseProgram_ProcedureCallToNonProcedureIsFatal(t *testing.T) {
	r := run(t, "program foo; bar: int; begin bar(10); end;")
	require.NotNil(t, r.fatal)
}

func TestParseProgram_MultiVariableDeclarationAccepted(t *testing.T) {
	r := run(t, "program foo; a, b, c, d: int; begin print(a + b + c + d); end;")
	require.Nil(t, r.fatal)
	require.True(t, r.ok)
}

func TestParseProgram_SyntaxErrorIsNotFatal(t *testing.T) {
	r := run(t, "program foo begin print 1; end;")
	require.Nil(t, r.fatal)
	require.False(t, r.ok)
	require.Contains(t, r.stderr, "Syntax error")
}

func TestParseProgram_MissingTrailingSemicolonIsSyntaxError(t *testing.T) {
	r := run(t, "program foo; begin print 1; end")
	require.Nil(t, r.fatal)
	require.False(t, r.ok)
}

func TestParseProgram_FormalParametersGetSequentialPositions(t *testing.T) {
	r := run(t, "program foo; procedure add(a: int; b: int; c: int) begin print(a + b + c); end; begin add(1, 2, 3); end;")
	require.Nil(t, r.fatal)
	require.True(t, r.ok)

	dump := r.parser.Dump()
	require.Contains(t, dump, "a\tadd\tkInt\t0")
	require.Contains(t, dump, "b\tadd\tkInt\t1")
	require.Contains(t, dump, "c\tadd\tkInt\t2")
}

func TestParseProgram_BoolVariableAssignment(t *testing.T) {
	r := run(t, "program foo; a, b: bool; begin a := not b; end;")
	require.Nil(t, r.fatal)
	require.True(t, r.ok)
}

func TestParseProgram_RelationalExpressionProducesBool(t *testing.T) {
	r := run(t, "program foo; a: int; b: bool; begin b := a = 1; end;")
	require.Nil(t, r.fatal)
	require.True(t, r.ok)
}

func TestParseProgram_SiblingProcedureScopesDoNotClash(t *testing.T) {
	r := run(t, "program foo; procedure bar(a: int) begin print a; end; procedure quoz(a: int) begin print a; end; begin bar(10); quoz(20); end;")
	require.Nil(t, r.fatal)
	require.True(t, r.ok)
}
