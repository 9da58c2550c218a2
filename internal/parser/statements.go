package parser

import (
	"io"

	"github.com/hieule22/trupl-go/internal/lexer"
	"github.com/hieule22/trupl-go/internal/symboltable"
)

// ParseBlock parses a begin/end-delimited statement list.
//
//	BLOCK -> begin STMT_LIST end
func (p *Parser) ParseBlock(w io.Writer) bool {
	if !p.isKeyword(lexer.KeywordBegin) {
		p.reportSyntaxError(w, "keyword 'begin'")
		return false
	}
	p.advance()
	if !p.parseStmtList(w) {
		return false
	}
	if !p.isKeyword(lexer.KeywordEnd) {
		p.reportSyntaxError(w, "keyword 'end'")
		return false
	}
	p.advance()
	return true
}

// stmtListStarts reports whether the lookahead can begin a STMT.
func (p *Parser) stmtListStarts() bool {
	return p.isIdentifier() ||
		p.isKeyword(lexer.KeywordIf) ||
		p.isKeyword(lexer.KeywordWhile) ||
		p.isKeyword(lexer.KeywordPrint)
}

// parseStmtList parses the first statement of a block, tolerating a
// block that opens with a stray leading semicolon the way the grammar's
// STMT_LIST production does.
//
//	STMT_LIST -> STMT ; STMT_LIST_PRM | ; STMT_LIST_PRM
func (p *Parser) parseStmtList(w io.Writer) bool {
	if p.stmtListStarts() {
		if !p.ParseStmt(w) {
			return false
		}
		if !p.expectPunctuation(w, lexer.PunctSemicolon) {
			return false
		}
		return p.parseStmtListPrm(w)
	}
	if p.isPunctuation(lexer.PunctSemicolon) {
		p.advance()
		return p.parseStmtListPrm(w)
	}
	p.reportSyntaxError(w, "statement")
	return false
}

// parseStmtListPrm parses the remaining statements of a block.
//
//	STMT_LIST_PRM -> STMT ; STMT_LIST_PRM | lambda
func (p *Parser) parseStmtListPrm(w io.Writer) bool {
	if !p.stmtListStarts() {
		return true
	}
	if !p.ParseStmt(w) {
		return false
	}
	if !p.expectPunctuation(w, lexer.PunctSemicolon) {
		return false
	}
	return p.parseStmtListPrm(w)
}

// ParseStmt parses a single statement.
//
//	STMT -> IF_STMT | WHILE_STMT | PRINT_STMT | identifier ADHOC_AS_PC_TAIL
func (p *Parser) ParseStmt(w io.Writer) bool {
	switch {
	case p.isKeyword(lexer.KeywordIf):
		return p.parseIfStmt(w)
	case p.isKeyword(lexer.KeywordWhile):
		return p.parseWhileStmt(w)
	case p.isKeyword(lexer.KeywordPrint):
		return p.parsePrintStmt(w)
	case p.isIdentifier():
		identifier := p.word.Text
		if !p.table.IsDeclared(identifier, p.currentEnv) {
			p.reportUndeclaredIdentifier(identifier)
		} else {
			p.procedureName = identifier
		}
		p.advance()

		tailType, ok := p.parseAdhocAsPcTail(w)
		if !ok {
			return false
		}
		identifierType := p.table.GetType(identifier, p.currentEnv)
		if tailType != identifierType {
			p.reportTypeError(identifierType, tailType)
		}
		return true
	default:
		p.reportSyntaxError(w, "statement")
		return false
	}
}

// parseAdhocAsPcTail parses the part of a STMT that comes after its
// leading identifier, disambiguating an assignment from a procedure call
// by the punctuation that follows.
//
//	ADHOC_AS_PC_TAIL -> := EXPR | ( EXPR_LIST )
func (p *Parser) parseAdhocAsPcTail(w io.Writer) (symboltable.ExpressionType, bool) {
	switch {
	case p.isPunctuation(lexer.PunctAssign):
		p.advance()
		return p.parseExpr(w)
	case p.isPunctuation(lexer.PunctOpenBracket):
		procedureType := p.table.GetType(p.procedureName, p.mainEnv)
		if procedureType != symboltable.Procedure {
			p.reportTypeError(symboltable.Procedure, procedureType)
		}
		p.actualParmPosition = 0
		p.advance()
		if !p.parseExprList(w) {
			return symboltable.Garbage, false
		}
		if !p.isPunctuation(lexer.PunctCloseBracket) {
			p.reportSyntaxError(w, "')'")
			return symboltable.Garbage, false
		}
		p.advance()
		return symboltable.Procedure, true
	default:
		p.reportSyntaxError(w, "':=' or '('")
		return symboltable.Garbage, false
	}
}

// parseIfStmt parses an if/then statement with an optional else branch.
//
//	IF_STMT -> if EXPR then BLOCK IF_STMT_HAT
func (p *Parser) parseIfStmt(w io.Writer) bool {
	p.advance()
	condType, ok := p.parseExpr(w)
	if !ok {
		return false
	}
	if condType != symboltable.Bool {
		p.reportTypeError(symboltable.Bool, condType)
	}
	if !p.isKeyword(lexer.KeywordThen) {
		p.reportSyntaxError(w, "keyword 'then'")
		return false
	}
	p.advance()
	return p.ParseBlock(w) && p.parseIfStmtHat(w)
}

// parseIfStmtHat parses the optional else branch of an if statement.
//
//	IF_STMT_HAT -> else BLOCK | lambda
func (p *Parser) parseIfStmtHat(w io.Writer) bool {
	if !p.isKeyword(lexer.KeywordElse) {
		return true
	}
	p.advance()
	return p.ParseBlock(w)
}

// parseWhileStmt parses a while/loop statement.
//
//	WHILE_STMT -> while EXPR loop BLOCK
func (p *Parser) parseWhileStmt(w io.Writer) bool {
	p.advance()
	condType, ok := p.parseExpr(w)
	if !ok {
		return false
	}
	if condType != symboltable.Bool {
		p.reportTypeError(symboltable.Bool, condType)
	}
	if !p.isKeyword(lexer.KeywordLoop) {
		p.reportSyntaxError(w, "keyword 'loop'")
		return false
	}
	p.advance()
	return p.ParseBlock(w)
}

// parsePrintStmt parses a print statement, which accepts either of
// TruPL's two expression types.
//
//	PRINT_STMT -> print EXPR
func (p *Parser) parsePrintStmt(w io.Writer) bool {
	p.advance()
	exprType, ok := p.parseExpr(w)
	if !ok {
		return false
	}
	if exprType != symboltable.Int && exprType != symboltable.Bool {
		p.reportTypeErrorEither(symboltable.Int, symboltable.Bool, exprType)
	}
	return true
}
