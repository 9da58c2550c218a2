package parser

import (
	"io"

	"github.com/hieule22/trupl-go/internal/lexer"
	"github.com/hieule22/trupl-go/internal/symboltable"
)

// ParseDeclList parses the variable declarations followed by the
// procedure declarations at the head of a program. A procedure's own
// declarations are parsed by parseVariableDeclList alone.
//
//	DECL_LIST -> VARIABLE_DECL_LIST PROCEDURE_DECL_LIST
func (p *Parser) ParseDeclList(w io.Writer) bool {
	return p.parseVariableDeclList(w) && p.parseProcedureDeclList(w)
}

// parseVariableDeclList parses zero or more semicolon-terminated variable
// declarations.
//
//	VARIABLE_DECL_LIST -> VARIABLE_DECL ; VARIABLE_DECL_LIST | lambda
func (p *Parser) parseVariableDeclList(w io.Writer) bool {
	if !p.isIdentifier() {
		return true
	}
	if !p.parseVariableDecl(w) {
		return false
	}
	if !p.expectPunctuation(w, lexer.PunctSemicolon) {
		return false
	}
	return p.parseVariableDeclList(w)
}

// parseVariableDecl parses one comma-separated identifier list and its
// shared type, promoting every identifier just installed from Unknown to
// that type.
//
//	VARIABLE_DECL -> IDENTIFIER_LIST : STANDARD_TYPE
func (p *Parser) parseVariableDecl(w io.Writer) bool {
	if !p.isIdentifier() {
		p.reportSyntaxError(w, "identifier")
		return false
	}
	if !p.parseIdentifierList(w) {
		return false
	}
	if !p.expectPunctuation(w, lexer.PunctColon) {
		return false
	}
	typ, ok := p.parseStandardType(w)
	if !ok {
		return false
	}
	p.table.UpdateType(typ)
	return true
}

// parseProcedureDeclList parses zero or more semicolon-terminated
// procedure declarations.
//
//	PROCEDURE_DECL_LIST -> PROCEDURE_DECL ; PROCEDURE_DECL_LIST | lambda
func (p *Parser) parseProcedureDeclList(w io.Writer) bool {
	if !p.isKeyword(lexer.KeywordProcedure) {
		return true
	}
	if !p.parseProcedureDecl(w) {
		return false
	}
	if !p.expectPunctuation(w, lexer.PunctSemicolon) {
		return false
	}
	return p.parseProcedureDeclList(w)
}

// parseIdentifierList parses a comma-separated run of identifiers,
// installing each as Unknown in currentEnv.
//
//	IDENTIFIER_LIST -> identifier IDENTIFIER_LIST_PRM
func (p *Parser) parseIdentifierList(w io.Writer) bool {
	if !p.isIdentifier() {
		p.reportSyntaxError(w, "identifier")
		return false
	}
	p.declareIdentifier(p.word.Text, symboltable.Unknown)
	p.advance()
	return p.parseIdentifierListPrm(w)
}

// parseIdentifierListPrm parses the ", identifier" tail shared by both a
// plain VARIABLE_DECL identifier list and a FORMAL_PARM_LIST.
//
//	IDENTIFIER_LIST_PRM -> , identifier IDENTIFIER_LIST_PRM | lambda
func (p *Parser) parseIdentifierListPrm(w io.Writer) bool {
	if !p.isPunctuation(lexer.PunctComma) {
		return true
	}
	p.advance()
	if !p.isIdentifier() {
		p.reportSyntaxError(w, "identifier")
		return false
	}
	p.declareIdentifier(p.word.Text, symboltable.Unknown)
	p.advance()
	return p.parseIdentifierListPrm(w)
}

// parseStandardType parses the one-token TruPL type names.
//
//	STANDARD_TYPE -> int | bool
func (p *Parser) parseStandardType(w io.Writer) (symboltable.ExpressionType, bool) {
	switch {
	case p.isKeyword(lexer.KeywordInt):
		p.advance()
		return symboltable.Int, true
	case p.isKeyword(lexer.KeywordBool):
		p.advance()
		return symboltable.Bool, true
	default:
		p.reportSyntaxError(w, "standard type")
		return symboltable.Garbage, false
	}
}

// parseProcedureDecl parses a full procedure declaration, switching
// currentEnv to the procedure's own name for its argument list, local
// declarations, and body, and restoring mainEnv afterward.
//
//	PROCEDURE_DECL ->
//	  procedure identifier ( PROCEDURE_ARGS ) VARIABLE_DECL_LIST BLOCK
func (p *Parser) parseProcedureDecl(w io.Writer) bool {
	if !p.isKeyword(lexer.KeywordProcedure) {
		p.reportSyntaxError(w, "keyword 'procedure'")
		return false
	}
	p.advance()

	if !p.isIdentifier() {
		p.reportSyntaxError(w, "identifier")
		return false
	}
	name := p.word.Text
	if p.table.IsDeclared(name, p.currentEnv) {
		p.reportDuplicateIdentifier(name)
	} else {
		p.table.Install(name, p.currentEnv, symboltable.Procedure)
		p.currentEnv = name
		p.formalParmPosition = 0
	}
	p.advance()

	if !p.expectPunctuation(w, lexer.PunctOpenBracket) {
		return false
	}
	if !p.parseProcedureArgs(w) {
		return false
	}
	if !p.expectPunctuation(w, lexer.PunctCloseBracket) {
		return false
	}
	if !p.parseVariableDeclList(w) {
		return false
	}
	if !p.ParseBlock(w) {
		return false
	}
	p.currentEnv = p.mainEnv
	return true
}

// parseProcedureArgs parses the optional formal parameter list between a
// procedure's parentheses.
//
//	PROCEDURE_ARGS -> FORMAL_PARM_LIST | lambda
func (p *Parser) parseProcedureArgs(w io.Writer) bool {
	if !p.isIdentifier() {
		return true
	}
	p.parsingFormalParmList = true
	ok := p.parseFormalParmList(w)
	p.parsingFormalParmList = false
	return ok
}

// parseFormalParmList parses one semicolon-separated group of the
// procedure's formal parameters: a comma-separated identifier list and a
// shared type, recording each identifier's ordinal position.
//
//	FORMAL_PARM_LIST ->
//	  identifier IDENTIFIER_LIST_PRM : STANDARD_TYPE FORMAL_PARM_LIST_HAT
func (p *Parser) parseFormalParmList(w io.Writer) bool {
	if !p.isIdentifier() {
		p.reportSyntaxError(w, "identifier")
		return false
	}
	p.declareIdentifier(p.word.Text, symboltable.Unknown)
	p.advance()

	if !p.parseIdentifierListPrm(w) {
		return false
	}
	if !p.expectPunctuation(w, lexer.PunctColon) {
		return false
	}
	typ, ok := p.parseStandardType(w)
	if !ok {
		return false
	}
	p.table.UpdateType(typ)
	return p.parseFormalParmListHat(w)
}

// parseFormalParmListHat parses the ";" tail chaining further parameter
// groups within the same argument list.
//
//	FORMAL_PARM_LIST_HAT -> ; FORMAL_PARM_LIST | lambda
func (p *Parser) parseFormalParmListHat(w io.Writer) bool {
	if !p.isPunctuation(lexer.PunctSemicolon) {
		return true
	}
	p.advance()
	return p.parseFormalParmList(w)
}
