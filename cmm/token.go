package cmm

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	tokenEOF TokenType = "EOF"

	tokenIdent TokenType = "IDENT"
	tokenInt   TokenType = "INT"

	tokenAssign   TokenType = "="
	tokenPlus     TokenType = "+"
	tokenMinus    TokenType = "-"
	tokenAsterisk TokenType = "*"
	tokenSlash    TokenType = "/"
	tokenPercent  TokenType = "%"
	tokenLT       TokenType = "<"
	tokenGT       TokenType = ">"
	tokenLTE      TokenType = "<="
	tokenGTE      TokenType = ">="
	tokenEQ       TokenType = "=="
	tokenNotEQ    TokenType = "!="
	tokenAnd      TokenType = "&&"
	tokenOr       TokenType = "||"

	tokenComma  TokenType = ","
	tokenLParen TokenType = "("
	tokenRParen TokenType = ")"
	tokenLBrace TokenType = "{"
	tokenRBrace TokenType = "}"

	tokenWhile TokenType = "WHILE"
	tokenIf    TokenType = "IF"
	tokenElse  TokenType = "ELSE"
	tokenPrint TokenType = "PRINT"
)

// Token captures lexical information for the parser. Tokens carry no
// position; diagnostics reference the literal only.
type Token struct {
	Type    TokenType
	Literal string
}

// IsEOF reports whether the token is the end-of-input sentinel.
func (t Token) IsEOF() bool {
	return t.Type == tokenEOF
}

// Keywords lists the reserved words of the language in source spelling.
var Keywords = []string{"while", "if", "else", "print"}

func lookupIdent(ident string) TokenType {
	switch ident {
	case "while":
		return tokenWhile
	case "if":
		return tokenIf
	case "else":
		return tokenElse
	case "print":
		return tokenPrint
	}
	return tokenIdent
}
