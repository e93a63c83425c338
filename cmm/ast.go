package cmm

// Node is implemented by every AST node. The token is the one that
// introduced the node and is only used for diagnostics.
type Node interface {
	Token() Token
}

// Statement is the closed set of statement nodes.
type Statement interface {
	Node
	stmtNode()
}

// Expression is the closed set of expression nodes.
type Expression interface {
	Node
	exprNode()
}

type Program struct {
	Statements []Statement
}

func NewProgram(stmts []Statement) *Program {
	return &Program{Statements: stmts}
}

func (p *Program) Token() Token {
	if len(p.Statements) == 0 {
		return Token{Type: tokenEOF}
	}
	return p.Statements[0].Token()
}

type ExpressionStatement struct {
	Expr  Expression
	token Token
}

func NewExpressionStatement(tok Token, expr Expression) *ExpressionStatement {
	return &ExpressionStatement{Expr: expr, token: tok}
}

func (s *ExpressionStatement) stmtNode()    {}
func (s *ExpressionStatement) Token() Token { return s.token }

type VariableDecl struct {
	Name  *Identifier
	Value Expression
	token Token
}

func NewVariableDecl(tok Token, name *Identifier, value Expression) *VariableDecl {
	return &VariableDecl{Name: name, Value: value, token: tok}
}

func (s *VariableDecl) stmtNode()    {}
func (s *VariableDecl) Token() Token { return s.token }

type BlockStatement struct {
	Statements []Statement
	token      Token
}

func NewBlockStatement(tok Token, stmts []Statement) *BlockStatement {
	return &BlockStatement{Statements: stmts, token: tok}
}

func (s *BlockStatement) stmtNode()    {}
func (s *BlockStatement) Token() Token { return s.token }

// IfStatement leaves Alternative nil when there is no else branch.
type IfStatement struct {
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement
	token       Token
}

func NewIfStatement(tok Token, cond Expression, consequence, alternative *BlockStatement) *IfStatement {
	return &IfStatement{Condition: cond, Consequence: consequence, Alternative: alternative, token: tok}
}

func (s *IfStatement) stmtNode()    {}
func (s *IfStatement) Token() Token { return s.token }

type WhileStatement struct {
	Condition Expression
	Body      *BlockStatement
	token     Token
}

func NewWhileStatement(tok Token, cond Expression, body *BlockStatement) *WhileStatement {
	return &WhileStatement{Condition: cond, Body: body, token: tok}
}

func (s *WhileStatement) stmtNode()    {}
func (s *WhileStatement) Token() Token { return s.token }

type PrintStatement struct {
	Args  []Expression
	token Token
}

func NewPrintStatement(tok Token, args []Expression) *PrintStatement {
	return &PrintStatement{Args: args, token: tok}
}

func (s *PrintStatement) stmtNode()    {}
func (s *PrintStatement) Token() Token { return s.token }

type Identifier struct {
	Name  string
	token Token
}

func NewIdentifier(tok Token) *Identifier {
	return &Identifier{Name: tok.Literal, token: tok}
}

func (e *Identifier) exprNode()    {}
func (e *Identifier) Token() Token { return e.token }

type IntegerLiteral struct {
	Value int64
	token Token
}

func NewIntegerLiteral(tok Token, value int64) *IntegerLiteral {
	return &IntegerLiteral{Value: value, token: tok}
}

func (e *IntegerLiteral) exprNode()    {}
func (e *IntegerLiteral) Token() Token { return e.token }

// InfixExpression holds a binary operator in its source spelling.
type InfixExpression struct {
	Left     Expression
	Operator string
	Right    Expression
	token    Token
}

func NewInfixExpression(tok Token, left Expression, right Expression) *InfixExpression {
	return &InfixExpression{Left: left, Operator: tok.Literal, Right: right, token: tok}
}

func (e *InfixExpression) exprNode()    {}
func (e *InfixExpression) Token() Token { return e.token }
