package cmm

import (
	"errors"
	"testing"
)

func TestTokenizeRecognizesEveryTokenKind(t *testing.T) {
	source := "while (count >= 10) {\n\tprint count, total\n}\nif else a != b && c || d = 3 % 2 <= 1 < 2 > 0 == 1 - 4 * 5 / 6 + 7"

	want := []Token{
		{Type: tokenWhile, Literal: "while"},
		{Type: tokenLParen, Literal: "("},
		{Type: tokenIdent, Literal: "count"},
		{Type: tokenGTE, Literal: ">="},
		{Type: tokenInt, Literal: "10"},
		{Type: tokenRParen, Literal: ")"},
		{Type: tokenLBrace, Literal: "{"},
		{Type: tokenPrint, Literal: "print"},
		{Type: tokenIdent, Literal: "count"},
		{Type: tokenComma, Literal: ","},
		{Type: tokenIdent, Literal: "total"},
		{Type: tokenRBrace, Literal: "}"},
		{Type: tokenIf, Literal: "if"},
		{Type: tokenElse, Literal: "else"},
		{Type: tokenIdent, Literal: "a"},
		{Type: tokenNotEQ, Literal: "!="},
		{Type: tokenIdent, Literal: "b"},
		{Type: tokenAnd, Literal: "&&"},
		{Type: tokenIdent, Literal: "c"},
		{Type: tokenOr, Literal: "||"},
		{Type: tokenIdent, Literal: "d"},
		{Type: tokenAssign, Literal: "="},
		{Type: tokenInt, Literal: "3"},
		{Type: tokenPercent, Literal: "%"},
		{Type: tokenInt, Literal: "2"},
		{Type: tokenLTE, Literal: "<="},
		{Type: tokenInt, Literal: "1"},
		{Type: tokenLT, Literal: "<"},
		{Type: tokenInt, Literal: "2"},
		{Type: tokenGT, Literal: ">"},
		{Type: tokenInt, Literal: "0"},
		{Type: tokenEQ, Literal: "=="},
		{Type: tokenInt, Literal: "1"},
		{Type: tokenMinus, Literal: "-"},
		{Type: tokenInt, Literal: "4"},
		{Type: tokenAsterisk, Literal: "*"},
		{Type: tokenInt, Literal: "5"},
		{Type: tokenSlash, Literal: "/"},
		{Type: tokenInt, Literal: "6"},
		{Type: tokenPlus, Literal: "+"},
		{Type: tokenInt, Literal: "7"},
		{Type: tokenEOF},
	}

	got, err := Tokenize(source)
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestTokenizeMaximalRuns(t *testing.T) {
	got, err := Tokenize("printx 12ab whilewhile")
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	want := []Token{
		{Type: tokenIdent, Literal: "printx"},
		{Type: tokenInt, Literal: "12"},
		{Type: tokenIdent, Literal: "ab"},
		{Type: tokenIdent, Literal: "whilewhile"},
		{Type: tokenEOF},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestLexerKeepsReturningEOF(t *testing.T) {
	l := newLexer("   ")
	for range 3 {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !tok.IsEOF() {
			t.Fatalf("expected EOF, got %+v", tok)
		}
	}
}

func TestTokenizeRejectsUnrecognizedCharacters(t *testing.T) {
	cases := []struct {
		name   string
		source string
		char   rune
	}{
		{name: "lone_bang", source: "x = !y", char: '!'},
		{name: "lone_ampersand", source: "a & b", char: '&'},
		{name: "lone_pipe", source: "a | b", char: '|'},
		{name: "underscore", source: "my_var = 1", char: '_'},
		{name: "semicolon", source: "x = 1;", char: ';'},
		{name: "string_quote", source: `print "hi"`, char: '"'},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Tokenize(tc.source)
			var lexErr *LexicalError
			if !errors.As(err, &lexErr) {
				t.Fatalf("expected lexical error, got %v", err)
			}
			if lexErr.Char != tc.char {
				t.Fatalf("expected fault on %q, got %q", tc.char, lexErr.Char)
			}
		})
	}
}
