package cmm

type parser struct {
	l *lexer

	curToken  Token
	peekToken Token

	errors []*SyntaxError
	lexErr error

	// blockDepth counts the braces opened by the blocks currently being
	// parsed; groupDepth counts open parentheses.
	blockDepth int
	groupDepth int
}

func newParser(input string) *parser {
	p := &parser{l: newLexer(input)}
	p.nextToken()
	p.nextToken()
	return p
}

// nextToken shifts the two-token window. After a lexical fault the window
// fills with EOF so every parse loop unwinds; ParseProgram then reports the
// fault instead of any diagnostics.
func (p *parser) nextToken() {
	p.curToken = p.peekToken
	if p.lexErr != nil {
		p.peekToken = Token{Type: tokenEOF}
		return
	}
	tok, err := p.l.NextToken()
	if err != nil {
		p.lexErr = err
		tok = Token{Type: tokenEOF}
	}
	p.peekToken = tok
}

// ParseProgram parses statements until end of input. Syntax errors are
// collected rather than returned as the error; the error is reserved for a
// lexical fault, in which case nothing else is returned.
func (p *parser) ParseProgram() (*Program, []*SyntaxError, error) {
	stmts := []Statement{}

	for !p.curToken.IsEOF() {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		p.nextToken()
	}

	if p.lexErr != nil {
		return nil, nil, p.lexErr
	}
	return NewProgram(stmts), p.errors, nil
}

func (p *parser) parseStatement() Statement {
	switch p.curToken.Type {
	case tokenIdent:
		if p.blockDepth > 0 && p.peekToken.Type != tokenAssign {
			return p.parseExpressionStatement()
		}
		return p.parseVariableDecl()
	case tokenIf:
		return p.parseIfStatement()
	case tokenWhile:
		return p.parseWhileStatement()
	case tokenPrint:
		return p.parsePrintStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *parser) parseVariableDecl() Statement {
	tok := p.curToken
	name := NewIdentifier(tok)
	if !p.expectPeek(tokenAssign) {
		return nil
	}
	p.nextToken()
	value := p.parseExpression(lowestPrec, false)
	if value == nil {
		return nil
	}
	return NewVariableDecl(tok, name, value)
}

func (p *parser) parseExpressionStatement() Statement {
	tok := p.curToken
	expr := p.parseExpression(lowestPrec, false)
	if expr == nil {
		return nil
	}
	return NewExpressionStatement(tok, expr)
}

func (p *parser) parseIfStatement() Statement {
	tok := p.curToken
	condition := p.parseCondition()
	if condition == nil {
		return nil
	}
	if !p.expectPeek(tokenLBrace) {
		return nil
	}
	consequence := p.parseBlock()
	if consequence == nil {
		return nil
	}

	var alternative *BlockStatement
	if p.peekToken.Type == tokenElse {
		p.nextToken()
		if !p.expectPeek(tokenLBrace) {
			return nil
		}
		alternative = p.parseBlock()
		if alternative == nil {
			return nil
		}
	}

	return NewIfStatement(tok, condition, consequence, alternative)
}

func (p *parser) parseWhileStatement() Statement {
	tok := p.curToken
	condition := p.parseCondition()
	if condition == nil {
		return nil
	}
	if !p.expectPeek(tokenLBrace) {
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}
	return NewWhileStatement(tok, condition, body)
}

// parseCondition parses the parenthesized condition that follows `if` and
// `while`, leaving the closing parenthesis as the current token.
func (p *parser) parseCondition() Expression {
	if !p.expectPeek(tokenLParen) {
		return nil
	}
	p.nextToken()
	condition := p.parseExpression(lowestPrec, false)
	if condition == nil {
		return nil
	}
	if !p.expectPeek(tokenRParen) {
		return nil
	}
	return condition
}

func (p *parser) parsePrintStatement() Statement {
	tok := p.curToken
	p.nextToken()
	first := p.parseExpression(lowestPrec, true)
	if first == nil {
		return nil
	}
	args := []Expression{first}

	for p.peekToken.Type == tokenComma {
		p.nextToken()
		p.nextToken()
		arg := p.parseExpression(lowestPrec, true)
		if arg == nil {
			return nil
		}
		args = append(args, arg)
	}

	return NewPrintStatement(tok, args)
}

// parseBlock expects the opening brace as the current token and returns
// with the matching closing brace current.
func (p *parser) parseBlock() *BlockStatement {
	tok := p.curToken
	p.blockDepth++
	depth := p.blockDepth
	defer func() {
		p.blockDepth--
	}()

	stmts := []Statement{}
	p.nextToken()
	for p.curToken.Type != tokenRBrace {
		if p.curToken.IsEOF() {
			p.errorUnexpected(p.curToken)
			return nil
		}
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		} else if p.curToken.Type == tokenRBrace && p.blockDepth == depth {
			// A failed statement stopped on this block's closing brace.
			continue
		}
		p.nextToken()
	}

	return NewBlockStatement(tok, stmts)
}

func (p *parser) expectPeek(tt TokenType) bool {
	if p.peekToken.Type == tt {
		p.nextToken()
		return true
	}
	p.errorUnexpected(p.peekToken)
	return false
}

func (p *parser) errorUnexpected(tok Token) {
	p.errors = append(p.errors, newSyntaxError(tok))
}
