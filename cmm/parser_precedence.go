package cmm

import "strconv"

const (
	lowestPrec = iota
	precOr
	precAnd
	precEquality
	precComparison
	precSum
	precProduct
)

var precedences = map[TokenType]int{
	tokenOr:       precOr,
	tokenAnd:      precAnd,
	tokenEQ:       precEquality,
	tokenNotEQ:    precEquality,
	tokenLT:       precComparison,
	tokenLTE:      precComparison,
	tokenGT:       precComparison,
	tokenGTE:      precComparison,
	tokenPlus:     precSum,
	tokenMinus:    precSum,
	tokenAsterisk: precProduct,
	tokenSlash:    precProduct,
	tokenPercent:  precProduct,
}

// parseExpression climbs operators whose precedence is strictly greater
// than precedence, so equal-precedence operators associate to the left.
func (p *parser) parseExpression(precedence int, inPrint bool) Expression {
	left := p.parsePrimary(inPrint)
	if left == nil {
		return nil
	}

	if p.missingOperator(inPrint) {
		p.errorUnexpected(p.peekToken)
		return nil
	}

	for precedence < p.peekPrecedence() {
		p.nextToken()
		left = p.parseInfixExpression(left, inPrint)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *parser) parsePrimary(inPrint bool) Expression {
	switch p.curToken.Type {
	case tokenIdent:
		return NewIdentifier(p.curToken)
	case tokenInt:
		return p.parseIntegerLiteral()
	case tokenLParen:
		return p.parseGroupedExpression(inPrint)
	default:
		p.errorUnexpected(p.curToken)
		return nil
	}
}

// missingOperator catches two operands with nothing between them, as in
// `3 4`. A following identifier at statement level starts the next
// statement, and inside print arguments it is never an error.
func (p *parser) missingOperator(inPrint bool) bool {
	switch p.peekToken.Type {
	case tokenInt:
		return true
	case tokenIdent:
		return !inPrint && p.groupDepth > 0
	default:
		return false
	}
}

func (p *parser) parseIntegerLiteral() Expression {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.errorUnexpected(p.curToken)
		return nil
	}
	return NewIntegerLiteral(p.curToken, value)
}

func (p *parser) parseGroupedExpression(inPrint bool) Expression {
	p.groupDepth++
	defer func() {
		p.groupDepth--
	}()

	p.nextToken()
	expr := p.parseExpression(lowestPrec, inPrint)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(tokenRParen) {
		return nil
	}
	return expr
}

func (p *parser) parseInfixExpression(left Expression, inPrint bool) Expression {
	tok := p.curToken
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence, inPrint)
	if right == nil {
		return nil
	}
	return NewInfixExpression(tok, left, right)
}

func (p *parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return lowestPrec
}

func (p *parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return lowestPrec
}
