// Package parser implements the TruPL parser: an LL(1) recursive-descent
// grammar walk with inline semantic actions, following the pattern of a
// single grammar-shaped method per non-terminal.
//
// Grounded on the teacher's recursive-descent Parser
// (internal/parser/parser.go in the reference DWScript compiler) — the
// overall shape (a Parser struct wrapping a lexer and a one-token
// lookahead, methods named after grammar productions, boolean/error
// returns instead of AST construction) carries over directly. TruPL has
// no AST: its grammar's only job is to drive the semantic actions in
// spec §4.3/§4.4 against the symbol table as it goes, so these methods
// return only success/failure and (where the grammar threads one) the
// expression type synthesized for that production.
package parser

import (
	"fmt"
	"io"

	"github.com/hieule22/trupl-go/internal/diagnostics"
	"github.com/hieule22/trupl-go/internal/lexer"
	"github.com/hieule22/trupl-go/internal/symboltable"
)

// externalEnv is the environment a program's own name is installed under,
// mirroring the original compiler's "_EXTERNAL" pseudo-environment for the
// one declaration that has no enclosing scope of its own.
const externalEnv = "_EXTERNAL"

// undefinedEnv seeds currentEnv/mainEnv/procedureName before the program
// header has been parsed. It is never looked up against; ParseProgram
// always replaces it with the program's identifier before any declaration
// can occur.
const undefinedEnv = "__UNDEFINED"

// Parser drives a single top-down parse of a TruPL program, applying
// semantic actions to Table as it consumes tokens from Scanner.
//
// currentEnv/mainEnv/procedureName/parsingFormalParmList/
// formalParmPosition/actualParmPosition are exactly the pieces of state
// the grammar's semantic actions thread through nested productions; they
// are fields rather than parameters because the grammar in spec §4.4 does
// not pass them explicitly either — they are closed over, not argued.
type Parser struct {
	scanner *lexer.Scanner
	table   *symboltable.Table
	word    lexer.Token

	// currentEnv is the environment new declarations and lookups resolve
	// against: the program's own name everywhere outside a procedure
	// body, and that procedure's name while parsing its body.
	currentEnv string
	// mainEnv is the program's own environment, restored as currentEnv
	// once a procedure's declaration and body have both been parsed.
	mainEnv string
	// procedureName names the procedure an ADHOC_AS_PC_TAIL call is
	// invoking, set the moment STMT recognizes a call-or-assignment
	// identifier.
	procedureName string
	// parsingFormalParmList is true only while walking a
	// PROCEDURE_ARGS/FORMAL_PARM_LIST production, so the shared
	// identifier-list tail production knows whether to record a
	// parameter position.
	parsingFormalParmList bool
	// formalParmPosition is the next 0-based slot a formal parameter
	// will be installed at; reset to 0 when a procedure name is
	// installed.
	formalParmPosition int
	// actualParmPosition is the next 0-based slot an actual parameter
	// occupies in a call's argument list; reset to 0 when a call's
	// open bracket is consumed.
	actualParmPosition int
}

// New constructs a Parser reading tokens from scanner and recording
// declarations in table. The first token is primed immediately, matching
// the original compiler's constructor-time lookahead fetch.
func New(scanner *lexer.Scanner, table *symboltable.Table) *Parser {
	p := &Parser{
		scanner:       scanner,
		table:         table,
		currentEnv:    undefinedEnv,
		mainEnv:       undefinedEnv,
		procedureName: undefinedEnv,
	}
	p.word = p.scanner.NextToken()
	return p
}

// ParseProgram parses an entire TruPL program and reports whether it is
// syntactically and semantically well-formed. Semantic errors are fatal
// and propagate as a panicked *diagnostics.Fatal (see diagnostics.Recover);
// a false return always means a non-fatal syntax error, already printed to
// w, was found.
//
//	PROGRAM -> program identifier ; DECL_LIST BLOCK ;
func (p *Parser) ParseProgram(w io.Writer) bool {
	if !p.isKeyword(lexer.KeywordProgram) {
		p.reportSyntaxError(w, "keyword 'program'")
		return false
	}
	p.advance()

	if !p.isIdentifier() {
		p.reportSyntaxError(w, "identifier")
		return false
	}
	name := p.word.Text
	p.table.Install(name, externalEnv, symboltable.Program)
	p.currentEnv = name
	p.mainEnv = name
	p.advance()

	if !p.expectPunctuation(w, lexer.PunctSemicolon) {
		return false
	}

	if !p.ParseDeclList(w) {
		return false
	}
	if !p.ParseBlock(w) {
		return false
	}
	return p.expectPunctuation(w, lexer.PunctSemicolon)
}

// Dump renders the symbol table accumulated by the parse so far, in the
// insertion order declarations were installed.
func (p *Parser) Dump() string {
	return p.table.Dump()
}

// advance fetches the next lookahead token from the scanner.
func (p *Parser) advance() {
	p.word = p.scanner.NextToken()
}

func (p *Parser) isIdentifier() bool {
	return p.word.Kind == lexer.KindIdentifier
}

func (p *Parser) isNumber() bool {
	return p.word.Kind == lexer.KindNumber
}

func (p *Parser) isKeyword(k lexer.Keyword) bool {
	return p.word.Kind == lexer.KindKeyword && p.word.Keyword == k
}

func (p *Parser) isPunctuation(pu lexer.Punctuation) bool {
	return p.word.Kind == lexer.KindPunctuation && p.word.Punctuation == pu
}

func (p *Parser) isAddop() bool {
	return p.word.Kind == lexer.KindAddOperator
}

func (p *Parser) isAddopAttr(a lexer.AddOperator) bool {
	return p.isAddop() && p.word.AddOperator == a
}

func (p *Parser) isMulop() bool {
	return p.word.Kind == lexer.KindMulOperator
}

func (p *Parser) isRelop() bool {
	return p.word.Kind == lexer.KindRelOperator
}

// expectPunctuation consumes the current token if it is pu, reporting a
// syntax error and returning false otherwise.
func (p *Parser) expectPunctuation(w io.Writer, pu lexer.Punctuation) bool {
	if !p.isPunctuation(pu) {
		p.reportSyntaxError(w, "'"+punctuationSpelling(pu)+"'")
		return false
	}
	p.advance()
	return true
}

func punctuationSpelling(pu lexer.Punctuation) string {
	switch pu {
	case lexer.PunctSemicolon:
		return ";"
	case lexer.PunctColon:
		return ":"
	case lexer.PunctComma:
		return ","
	case lexer.PunctAssign:
		return ":="
	case lexer.PunctOpenBracket:
		return "("
	case lexer.PunctCloseBracket:
		return ")"
	default:
		return "?"
	}
}

// reportSyntaxError prints the non-fatal "Syntax error" diagnostic for the
// current lookahead token.
func (p *Parser) reportSyntaxError(w io.Writer, expected string) {
	fmt.Fprintln(w, diagnostics.FormatSyntaxError(expected, p.word.DebugString()))
}

// reportDuplicateIdentifier raises the fatal duplicate-declaration error.
func (p *Parser) reportDuplicateIdentifier(identifier string) {
	diagnostics.RaiseSemantic(diagnostics.FormatDuplicateIdentifier(identifier))
}

// reportUndeclaredIdentifier raises the fatal undeclared-use error, under
// the wording preserved from the original compiler (see
// diagnostics.FormatUndeclaredIdentifier).
func (p *Parser) reportUndeclaredIdentifier(identifier string) {
	diagnostics.RaiseSemantic(diagnostics.FormatUndeclaredIdentifier(identifier))
}

// reportTypeError raises the fatal single-expected-type mismatch error.
func (p *Parser) reportTypeError(expected, actual symboltable.ExpressionType) {
	diagnostics.RaiseSemantic(diagnostics.FormatTypeError(expected, actual))
}

// reportTypeErrorEither raises the fatal two-expected-types mismatch error.
func (p *Parser) reportTypeErrorEither(expected0, expected1, actual symboltable.ExpressionType) {
	diagnostics.RaiseSemantic(diagnostics.FormatTypeErrorEither(expected0, expected1, actual))
}

// declareIdentifier installs the current lookahead identifier into
// currentEnv, reporting a duplicate instead if it is already declared
// there. Whether a formal-parameter position is recorded depends solely
// on parsingFormalParmList, which collapses the original grammar's
// separate head/tail installation call sites (VARIABLE_DECL's
// IDENTIFIER_LIST head, the shared IDENTIFIER_LIST_PRM tail, and
// FORMAL_PARM_LIST's own head) into the one rule that actually governs
// all three: record a position exactly when a formal parameter list is
// being parsed.
func (p *Parser) declareIdentifier(identifier string, typ symboltable.ExpressionType) {
	if p.table.IsDeclared(identifier, p.currentEnv) {
		p.reportDuplicateIdentifier(identifier)
		return
	}
	if p.parsingFormalParmList {
		p.table.InstallParam(identifier, p.currentEnv, typ, p.formalParmPosition)
		p.formalParmPosition++
		return
	}
	p.table.Install(identifier, p.currentEnv, typ)
}
