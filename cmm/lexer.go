package cmm

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexer struct {
	input string

	offset int
	width  int

	ch rune
}

var whitespaceNormalizer = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

func newLexer(input string) *lexer {
	l := &lexer{input: whitespaceNormalizer.Replace(input)}
	l.readRune()
	return l
}

func (l *lexer) readRune() {
	if l.offset >= len(l.input) {
		l.width = 0
		l.ch = 0
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.offset:])
	l.width = w
	l.offset += w
	l.ch = r
}

func (l *lexer) peekRune() rune {
	if l.offset >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.offset:])
	return r
}

// NextToken returns the next token in the stream. Once the input is
// exhausted it keeps returning the EOF sentinel. An unrecognized character
// yields a *LexicalError and no token.
func (l *lexer) NextToken() (Token, error) {
	l.skipSpaces()

	var tok Token

	switch l.ch {
	case 0:
		if l.width == 0 {
			return Token{Type: tokenEOF}, nil
		}
		return Token{}, &LexicalError{Char: l.ch}
	case '+':
		tok = l.single(tokenPlus)
	case '-':
		tok = l.single(tokenMinus)
	case '*':
		tok = l.single(tokenAsterisk)
	case '/':
		tok = l.single(tokenSlash)
	case '%':
		tok = l.single(tokenPercent)
	case ',':
		tok = l.single(tokenComma)
	case '(':
		tok = l.single(tokenLParen)
	case ')':
		tok = l.single(tokenRParen)
	case '{':
		tok = l.single(tokenLBrace)
	case '}':
		tok = l.single(tokenRBrace)
	case '=':
		tok = l.pair('=', tokenEQ, tokenAssign)
	case '<':
		tok = l.pair('=', tokenLTE, tokenLT)
	case '>':
		tok = l.pair('=', tokenGTE, tokenGT)
	case '!':
		if l.peekRune() != '=' {
			return Token{}, &LexicalError{Char: l.ch}
		}
		tok = l.pair('=', tokenNotEQ, "")
	case '&':
		if l.peekRune() != '&' {
			return Token{}, &LexicalError{Char: l.ch}
		}
		tok = l.pair('&', tokenAnd, "")
	case '|':
		if l.peekRune() != '|' {
			return Token{}, &LexicalError{Char: l.ch}
		}
		tok = l.pair('|', tokenOr, "")
	default:
		switch {
		case unicode.IsLetter(l.ch):
			literal := l.readRun(unicode.IsLetter)
			return Token{Type: lookupIdent(literal), Literal: literal}, nil
		case isDigit(l.ch):
			literal := l.readRun(isDigit)
			return Token{Type: tokenInt, Literal: literal}, nil
		default:
			return Token{}, &LexicalError{Char: l.ch}
		}
	}

	return tok, nil
}

func (l *lexer) single(tt TokenType) Token {
	tok := Token{Type: tt, Literal: string(l.ch)}
	l.readRune()
	return tok
}

// pair consumes a two-character operator when the next rune is second and
// falls back to the one-character kind otherwise.
func (l *lexer) pair(second rune, double, single TokenType) Token {
	if l.peekRune() == second {
		first := l.ch
		l.readRune()
		tok := Token{Type: double, Literal: string(first) + string(l.ch)}
		l.readRune()
		return tok
	}
	return l.single(single)
}

func (l *lexer) currentOffset() int {
	return l.offset - l.width
}

func (l *lexer) skipSpaces() {
	for l.ch == ' ' {
		l.readRune()
	}
}

func (l *lexer) readRun(accept func(rune) bool) string {
	start := l.currentOffset()
	for accept(l.peekRune()) {
		l.readRune()
	}
	literal := l.input[start:l.offset]
	l.readRune()
	return literal
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Tokenize lexes the whole source and returns every token up to and
// including the EOF sentinel.
func Tokenize(source string) ([]Token, error) {
	l := newLexer(source)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.IsEOF() {
			return tokens, nil
		}
	}
}
