package parser

import (
	"io"

	"github.com/hieule22/trupl-go/internal/lexer"
	"github.com/hieule22/trupl-go/internal/symboltable"
)

// exprStarts reports whether the lookahead can begin an EXPR.
func (p *Parser) exprStarts() bool {
	return p.isIdentifier() ||
		p.isNumber() ||
		p.isPunctuation(lexer.PunctOpenBracket) ||
		p.isAddopAttr(lexer.AddPlus) ||
		p.isAddopAttr(lexer.AddMinus) ||
		p.isKeyword(lexer.KeywordNot)
}

// parseExprList parses a call's actual parameter list, which may be empty.
//
//	EXPR_LIST -> ACTUAL_PARM_LIST | lambda
func (p *Parser) parseExprList(w io.Writer) bool {
	if !p.exprStarts() {
		return true
	}
	return p.parseActualParmList(w)
}

// parseActualParmList parses one actual argument and checks its type
// against the formal parameter at the same ordinal position.
//
//	ACTUAL_PARM_LIST -> EXPR ACTUAL_PARM_LIST_HAT
func (p *Parser) parseActualParmList(w io.Writer) bool {
	exprType, ok := p.parseExpr(w)
	if !ok {
		return false
	}
	expectedType := p.table.GetParamType(p.procedureName, p.actualParmPosition)
	if exprType != expectedType {
		p.reportTypeError(expectedType, exprType)
	}
	p.actualParmPosition++
	return p.parseActualParmListHat(w)
}

// parseActualParmListHat parses the comma-separated tail of an actual
// parameter list.
//
//	ACTUAL_PARM_LIST_HAT -> , ACTUAL_PARM_LIST | lambda
func (p *Parser) parseActualParmListHat(w io.Writer) bool {
	if !p.isPunctuation(lexer.PunctComma) {
		return true
	}
	p.advance()
	return p.parseActualParmList(w)
}

// parseExpr parses a relational expression: a SIMPLE_EXPR optionally
// compared against another SIMPLE_EXPR, in which case the whole
// expression is itself typed kBool.
//
//	EXPR -> SIMPLE_EXPR EXPR_HAT
func (p *Parser) parseExpr(w io.Writer) (symboltable.ExpressionType, bool) {
	simpleType, ok := p.parseSimpleExpr(w)
	if !ok {
		return symboltable.Garbage, false
	}
	hatType, ok := p.parseExprHat(w)
	if !ok {
		return symboltable.Garbage, false
	}

	switch {
	case hatType == symboltable.No:
		return simpleType, true
	case simpleType == symboltable.Int && hatType == symboltable.Int:
		return symboltable.Bool, true
	default:
		p.reportTypeErrorEither(symboltable.Int, simpleType, hatType)
		return symboltable.Garbage, true
	}
}

// parseExprHat parses the optional relational-operator tail of an EXPR.
//
//	EXPR_HAT -> relop SIMPLE_EXPR | lambda
func (p *Parser) parseExprHat(w io.Writer) (symboltable.ExpressionType, bool) {
	if !p.isRelop() {
		return symboltable.No, true
	}
	p.advance()
	simpleType, ok := p.parseSimpleExpr(w)
	if !ok {
		return symboltable.Garbage, false
	}
	if simpleType != symboltable.Int {
		p.reportTypeError(symboltable.Int, simpleType)
	}
	return symboltable.Int, true
}

// parseSimpleExpr parses a sum of TERMs, which must all agree in type.
//
//	SIMPLE_EXPR -> TERM SIMPLE_EXPR_PRM
func (p *Parser) parseSimpleExpr(w io.Writer) (symboltable.ExpressionType, bool) {
	termType, ok := p.parseTerm(w)
	if !ok {
		return symboltable.Garbage, false
	}
	tailType, ok := p.parseSimpleExprPrm(w)
	if !ok {
		return symboltable.Garbage, false
	}

	switch {
	case tailType == symboltable.No:
		return termType, true
	case termType == tailType:
		return termType, true
	default:
		p.reportTypeError(termType, tailType)
		return symboltable.Garbage, true
	}
}

// parseSimpleExprPrm parses the addop-chained tail of a SIMPLE_EXPR. The
// operator itself carries a type (+/- are kInt, or is kBool), which must
// agree with both the TERM that follows it and the recursive tail.
//
//	SIMPLE_EXPR_PRM -> addop TERM SIMPLE_EXPR_PRM | lambda
func (p *Parser) parseSimpleExprPrm(w io.Writer) (symboltable.ExpressionType, bool) {
	if !p.isAddop() {
		return symboltable.No, true
	}
	addopType := symboltable.Int
	if p.word.AddOperator == lexer.AddOr {
		addopType = symboltable.Bool
	}
	p.advance()

	termType, ok := p.parseTerm(w)
	if !ok {
		return symboltable.Garbage, false
	}
	tailType, ok := p.parseSimpleExprPrm(w)
	if !ok {
		return symboltable.Garbage, false
	}

	switch {
	case tailType == symboltable.No:
		if addopType == termType {
			return addopType, true
		}
		p.reportTypeError(addopType, termType)
		return symboltable.Garbage, true
	case addopType == termType && termType == tailType:
		return addopType, true
	default:
		p.reportTypeErrorEither(addopType, termType, tailType)
		return symboltable.Garbage, true
	}
}

// parseTerm parses a product of FACTORs, which must all agree in type.
//
//	TERM -> FACTOR TERM_PRM
func (p *Parser) parseTerm(w io.Writer) (symboltable.ExpressionType, bool) {
	factorType, ok := p.parseFactor(w)
	if !ok {
		return symboltable.Garbage, false
	}
	tailType, ok := p.parseTermPrm(w)
	if !ok {
		return symboltable.Garbage, false
	}

	switch {
	case tailType == symboltable.No:
		return factorType, true
	case factorType == tailType:
		return factorType, true
	default:
		p.reportTypeError(factorType, tailType)
		return symboltable.Garbage, true
	}
}

// parseTermPrm parses the mulop-chained tail of a TERM. The operator
// itself carries a type (* and / are kInt, and is kBool), which must
// agree with both the FACTOR that follows it and the recursive tail.
//
//	TERM_PRM -> mulop FACTOR TERM_PRM | lambda
func (p *Parser) parseTermPrm(w io.Writer) (symboltable.ExpressionType, bool) {
	if !p.isMulop() {
		return symboltable.No, true
	}
	mulopType := symboltable.Int
	if p.word.MulOperator == lexer.MulAnd {
		mulopType = symboltable.Bool
	}
	p.advance()

	factorType, ok := p.parseFactor(w)
	if !ok {
		return symboltable.Garbage, false
	}
	tailType, ok := p.parseTermPrm(w)
	if !ok {
		return symboltable.Garbage, false
	}

	switch {
	case tailType == symboltable.No && mulopType == factorType:
		return mulopType, true
	case mulopType == factorType && factorType == tailType:
		return mulopType, true
	case tailType == symboltable.No:
		p.reportTypeError(mulopType, factorType)
		return symboltable.Garbage, true
	default:
		p.reportTypeErrorEither(mulopType, factorType, tailType)
		return symboltable.Garbage, true
	}
}

// parseFactor parses the atoms of TruPL expressions: identifiers,
// numbers, parenthesized expressions, and signed factors.
//
//	FACTOR -> identifier | num | ( EXPR ) | SIGN FACTOR
func (p *Parser) parseFactor(w io.Writer) (symboltable.ExpressionType, bool) {
	switch {
	case p.isIdentifier():
		identifier := p.word.Text
		var typ symboltable.ExpressionType
		if !p.table.IsDeclared(identifier, p.currentEnv) {
			p.reportUndeclaredIdentifier(identifier)
			typ = symboltable.Garbage
		} else {
			typ = p.table.GetType(identifier, p.currentEnv)
		}
		p.advance()
		return typ, true

	case p.isNumber():
		p.advance()
		return symboltable.Int, true

	case p.isPunctuation(lexer.PunctOpenBracket):
		p.advance()
		exprType, ok := p.parseExpr(w)
		if !ok {
			return symboltable.Garbage, false
		}
		if !p.isPunctuation(lexer.PunctCloseBracket) {
			p.reportSyntaxError(w, "')'")
			return symboltable.Garbage, false
		}
		p.advance()
		return exprType, true

	case p.isAddopAttr(lexer.AddPlus), p.isAddopAttr(lexer.AddMinus), p.isKeyword(lexer.KeywordNot):
		signType, ok := p.parseSign(w)
		if !ok {
			return symboltable.Garbage, false
		}
		factorType, ok := p.parseFactor(w)
		if !ok {
			return symboltable.Garbage, false
		}
		if signType != factorType {
			p.reportTypeError(signType, factorType)
			return symboltable.Garbage, true
		}
		return factorType, true

	default:
		p.reportSyntaxError(w, "expression")
		return symboltable.Garbage, false
	}
}

// parseSign parses a FACTOR's unary prefix operator.
//
//	SIGN -> + | - | not
func (p *Parser) parseSign(w io.Writer) (symboltable.ExpressionType, bool) {
	switch {
	case p.isAddopAttr(lexer.AddPlus), p.isAddopAttr(lexer.AddMinus):
		p.advance()
		return symboltable.Int, true
	case p.isKeyword(lexer.KeywordNot):
		p.advance()
		return symboltable.Bool, true
	default:
		p.reportSyntaxError(w, "'+', '-', or 'not'")
		return symboltable.Garbage, false
	}
}
