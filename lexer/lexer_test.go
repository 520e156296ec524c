/*
File   : mica/lexer/lexer_test.go
Author : The Mica Authors
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTokenizeCase represents a test case for Tokenize: a source string and
// the expected token kinds/literals in order (position metadata ignored).
type TestTokenizeCase struct {
	Name           string
	Input          string
	ExpectedTokens []Token
}

// stripMetadata reduces a token stream to kind+literal pairs for comparison.
func stripMetadata(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, NewToken(tok.Type, tok.Literal))
	}
	return out
}

// TestLexer_Tokenize_Basics covers operators, literals, keywords, and
// identifiers on single lines.
func TestLexer_Tokenize_Basics(t *testing.T) {
	tests := []TestTokenizeCase{
		{
			Name:  "arithmetic operators and numbers",
			Input: "1 + 2.5 * 30 - 4 / 5",
			ExpectedTokens: []Token{
				NewToken(NUMBER, "1"),
				NewToken(PLUS, "+"),
				NewToken(NUMBER, "2.5"),
				NewToken(MULTIPLY, "*"),
				NewToken(NUMBER, "30"),
				NewToken(MINUS, "-"),
				NewToken(NUMBER, "4"),
				NewToken(DIVIDE, "/"),
				NewToken(NUMBER, "5"),
				NewToken(END_OF_FILE, ""),
			},
		},
		{
			Name:  "comparison operators use longest match",
			Input: "a == b != c <= d >= e < f > g",
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER, "a"),
				NewToken(EQUAL, "=="),
				NewToken(IDENTIFIER, "b"),
				NewToken(NOT_EQUAL, "!="),
				NewToken(IDENTIFIER, "c"),
				NewToken(LESS_EQUAL, "<="),
				NewToken(IDENTIFIER, "d"),
				NewToken(GREATER_EQUAL, ">="),
				NewToken(IDENTIFIER, "e"),
				NewToken(LESS_THAN, "<"),
				NewToken(IDENTIFIER, "f"),
				NewToken(GREATER_THAN, ">"),
				NewToken(IDENTIFIER, "g"),
				NewToken(END_OF_FILE, ""),
			},
		},
		{
			Name:  "keywords are distinct from identifiers",
			Input: "If Elif Else While For To Func Return End And Or Not True False Print printx",
			ExpectedTokens: []Token{
				NewToken(IF, "If"),
				NewToken(ELIF, "Elif"),
				NewToken(ELSE, "Else"),
				NewToken(WHILE, "While"),
				NewToken(FOR, "For"),
				NewToken(TO, "To"),
				NewToken(FUNC, "Func"),
				NewToken(RETURN, "Return"),
				NewToken(END, "End"),
				NewToken(AND, "And"),
				NewToken(OR, "Or"),
				NewToken(NOT, "Not"),
				NewToken(TRUE, "True"),
				NewToken(FALSE, "False"),
				NewToken(PRINT, "Print"),
				NewToken(IDENTIFIER, "printx"),
				NewToken(END_OF_FILE, ""),
			},
		},
		{
			Name:  "punctuation",
			Input: "f(a, b[0])",
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER, "f"),
				NewToken(LPAREN, "("),
				NewToken(IDENTIFIER, "a"),
				NewToken(COMMA, ","),
				NewToken(IDENTIFIER, "b"),
				NewToken(LBRACKET, "["),
				NewToken(NUMBER, "0"),
				NewToken(RBRACKET, "]"),
				NewToken(RPAREN, ")"),
				NewToken(END_OF_FILE, ""),
			},
		},
		{
			Name:  "decimal literals keep a single dot",
			Input: "3.14 10",
			ExpectedTokens: []Token{
				NewToken(NUMBER, "3.14"),
				NewToken(NUMBER, "10"),
				NewToken(END_OF_FILE, ""),
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.Name, func(t *testing.T) {
			tokens, err := NewLexer(tc.Input).Tokenize()
			assert.NoError(t, err)
			assert.Equal(t, tc.ExpectedTokens, stripMetadata(tokens))
		})
	}
}

// TestLexer_Tokenize_Strings covers escape decoding and unterminated
// string errors.
func TestLexer_Tokenize_Strings(t *testing.T) {
	tokens, err := NewLexer(`s = "a\tb\n\"c\"\\d\q"`).Tokenize()
	assert.NoError(t, err)
	assert.Equal(t, []Token{
		NewToken(IDENTIFIER, "s"),
		NewToken(ASSIGN, "="),
		NewToken(STRING, "a\tb\n\"c\"\\dq"),
		NewToken(END_OF_FILE, ""),
	}, stripMetadata(tokens))

	_, err = NewLexer("x = \"no closing quote").Tokenize()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Unterminated string")
	assert.Contains(t, err.Error(), "line 1")
}

// TestLexer_Tokenize_Indentation verifies INDENT/DEDENT synthesis: two
// spaces make one level, every INDENT is balanced, and end of file closes
// all open levels.
func TestLexer_Tokenize_Indentation(t *testing.T) {
	src := "While a\n  Print b\n  If c\n    Print d\nPrint e\n"
	tokens, err := NewLexer(src).Tokenize()
	assert.NoError(t, err)
	assert.Equal(t, []Token{
		NewToken(WHILE, "While"),
		NewToken(IDENTIFIER, "a"),
		NewToken(NEWLINE, "\\n"),
		NewToken(INDENT, ""),
		NewToken(PRINT, "Print"),
		NewToken(IDENTIFIER, "b"),
		NewToken(NEWLINE, "\\n"),
		NewToken(IF, "If"),
		NewToken(IDENTIFIER, "c"),
		NewToken(NEWLINE, "\\n"),
		NewToken(INDENT, ""),
		NewToken(PRINT, "Print"),
		NewToken(IDENTIFIER, "d"),
		NewToken(NEWLINE, "\\n"),
		NewToken(DEDENT, ""),
		NewToken(DEDENT, ""),
		NewToken(PRINT, "Print"),
		NewToken(IDENTIFIER, "e"),
		NewToken(NEWLINE, "\\n"),
		NewToken(END_OF_FILE, ""),
	}, stripMetadata(tokens))
}

// TestLexer_Tokenize_IndentBalance checks the balance invariant on a
// program that ends while still indented: every INDENT has a matching
// DEDENT before END_OF_FILE.
func TestLexer_Tokenize_IndentBalance(t *testing.T) {
	src := "If a\n  If b\n    If c\n      Print d"
	tokens, err := NewLexer(src).Tokenize()
	assert.NoError(t, err)

	indents, dedents := 0, 0
	for _, tok := range tokens {
		switch tok.Type {
		case INDENT:
			indents++
		case DEDENT:
			dedents++
		}
	}
	assert.Equal(t, 3, indents)
	assert.Equal(t, indents, dedents)
	assert.Equal(t, END_OF_FILE, tokens[len(tokens)-1].Type)
}

// TestLexer_Tokenize_BlankLines verifies that blank and whitespace-only
// lines produce only NEWLINE tokens, never indent changes.
func TestLexer_Tokenize_BlankLines(t *testing.T) {
	src := "If a\n  Print b\n\n      \n  Print c\n"
	tokens, err := NewLexer(src).Tokenize()
	assert.NoError(t, err)

	kinds := make([]TokenType, 0, len(tokens))
	for _, tok := range tokens {
		kinds = append(kinds, tok.Type)
	}
	assert.Equal(t, []TokenType{
		IF, IDENTIFIER, NEWLINE,
		INDENT, PRINT, IDENTIFIER, NEWLINE,
		NEWLINE,
		NEWLINE,
		PRINT, IDENTIFIER, NEWLINE,
		DEDENT,
		END_OF_FILE,
	}, kinds)
}

// TestLexer_Tokenize_Comments exercises the '#' toggle: same-line pairs,
// comment-only lines, and comments spanning lines. Newlines inside a
// comment still produce NEWLINE and advance the line counter.
func TestLexer_Tokenize_Comments(t *testing.T) {
	t.Run("same-line pair", func(t *testing.T) {
		tokens, err := NewLexer("x = # the answer # 42\n").Tokenize()
		assert.NoError(t, err)
		assert.Equal(t, []Token{
			NewToken(IDENTIFIER, "x"),
			NewToken(ASSIGN, "="),
			NewToken(NUMBER, "42"),
			NewToken(NEWLINE, "\\n"),
			NewToken(END_OF_FILE, ""),
		}, stripMetadata(tokens))
	})

	t.Run("comment-only line produces only a newline", func(t *testing.T) {
		tokens, err := NewLexer("If a\n  # note #\n  Print b\n").Tokenize()
		assert.NoError(t, err)
		kinds := make([]TokenType, 0, len(tokens))
		for _, tok := range tokens {
			kinds = append(kinds, tok.Type)
		}
		assert.Equal(t, []TokenType{
			IF, IDENTIFIER, NEWLINE,
			NEWLINE,
			INDENT, PRINT, IDENTIFIER, NEWLINE,
			DEDENT,
			END_OF_FILE,
		}, kinds)
	})

	t.Run("toggle spans lines and keeps counting them", func(t *testing.T) {
		tokens, err := NewLexer("# first\nsecond # x = 1\n").Tokenize()
		assert.NoError(t, err)
		assert.Equal(t, []Token{
			NewToken(NEWLINE, "\\n"),
			NewToken(IDENTIFIER, "x"),
			NewToken(ASSIGN, "="),
			NewToken(NUMBER, "1"),
			NewToken(NEWLINE, "\\n"),
			NewToken(END_OF_FILE, ""),
		}, stripMetadata(tokens))
		// the code after the comment is on line 2
		assert.Equal(t, 2, tokens[1].Line)
	})
}

// TestLexer_Tokenize_Errors covers the fatal lex errors.
func TestLexer_Tokenize_Errors(t *testing.T) {
	_, err := NewLexer("x = 1\ny = 5 ! 3\n").Tokenize()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Unexpected character: !")
	assert.Contains(t, err.Error(), "line 2")

	_, err = NewLexer("x = 1 @ 2").Tokenize()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown character: @")
}

// TestLexer_Tokenize_LineNumbers verifies 1-based line stamping across
// newlines.
func TestLexer_Tokenize_LineNumbers(t *testing.T) {
	tokens, err := NewLexer("a = 1\nb = 2\n\nc = 3\n").Tokenize()
	assert.NoError(t, err)

	lines := make(map[string]int)
	for _, tok := range tokens {
		if tok.Type == IDENTIFIER {
			lines[tok.Literal] = tok.Line
		}
	}
	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 4}, lines)
}

// TestLexer_Tokenize_Empty verifies the empty program tokenizes to a single
// END_OF_FILE token.
func TestLexer_Tokenize_Empty(t *testing.T) {
	tokens, err := NewLexer("").Tokenize()
	assert.NoError(t, err)
	assert.Equal(t, []Token{NewTokenWithMetadata(END_OF_FILE, "", 1, 0)}, tokens)
}
