/*
File   : mica/parser/parser.go
Author : The Mica Authors
*/

/*
Package parser implements a recursive-descent parser for the Mica language.

The parser converts the token stream produced by the lexer into an Abstract
Syntax Tree. It handles:
- Expressions (arithmetic, comparisons, logical combinators, literals, arrays)
- Statements (assignments, Print, control flow, function definitions)
- Block structure via the lexer's synthetic INDENT/DEDENT/NEWLINE tokens
- Lowering of builtin calls (Length, Upper, Lower, Contains, Substring,
  Push, Pop) into StringOp nodes at expression position

Parsing follows the grammar's precedence ladder directly: logical combinators
bind loosest, then a single non-associative comparison, then additive and
multiplicative arithmetic, then prefix Not, then primaries. There is no error
recovery: the first grammar violation aborts the parse with an error citing
the offending token's line.
*/
package parser

import (
	"fmt"

	"github.com/micalang/mica/lexer"
)

// builtinOps is the closed set of callee names the parser lowers into
// StringOp nodes at expression position.
var builtinOps = map[string]bool{
	"Length":    true,
	"Upper":     true,
	"Lower":     true,
	"Contains":  true,
	"Substring": true,
	"Push":      true,
	"Pop":       true,
}

// Parser holds the token stream and the cursor state needed to parse Mica
// source code into an AST.
type Parser struct {
	Src     string        // The source text being parsed
	Tokens  []lexer.Token // The full token stream, terminated by END_OF_FILE
	Pos     int           // Index of the current token
	Current lexer.Token   // The token being examined
}

// NewParser creates a Parser for the given source text. Call Parse to run
// the lexer and build the AST.
func NewParser(src string) *Parser {
	return &Parser{Src: src}
}

// Parse tokenizes the source and parses it into the ordered sequence of
// top-level statements. The first lex or grammar error aborts with a nil
// statement list.
func (p *Parser) Parse() ([]StatementNode, error) {
	tokens, err := lexer.NewLexer(p.Src).Tokenize()
	if err != nil {
		return nil, err
	}
	p.Tokens = tokens
	p.Pos = 0
	p.Current = tokens[0]

	statements := make([]StatementNode, 0)

	p.consumeNewlines()
	for p.Current.Type != lexer.END_OF_FILE {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)

		if p.Current.Type == lexer.NEWLINE {
			p.advance()
			p.consumeNewlines()
		} else if p.Current.Type != lexer.END_OF_FILE && !isCompound(stmt) {
			return nil, fmt.Errorf("Expected newline after statement at line %d", p.Current.Line)
		}
	}

	return statements, nil
}

// isCompound reports whether a statement carries its own indented block.
// A compound statement's closing DEDENT already consumed the line boundary,
// so the separating NEWLINE requirement is waived after one.
func isCompound(stmt StatementNode) bool {
	switch stmt.(type) {
	case *IfNode, *WhileNode, *ForNode, *FuncDefNode:
		return true
	}
	return false
}

// advance moves the cursor to the next token. The END_OF_FILE token is
// sticky: advancing past it keeps returning it.
func (p *Parser) advance() {
	p.Pos++
	if p.Pos < len(p.Tokens) {
		p.Current = p.Tokens[p.Pos]
	}
}

// expect consumes and returns the current token if it has the wanted type,
// or fails with a parse error naming what was expected.
func (p *Parser) expect(tokenType lexer.TokenType, what string) (lexer.Token, error) {
	if p.Current.Type != tokenType {
		return lexer.Token{}, fmt.Errorf("Expected %s at line %d", what, p.Current.Line)
	}
	tok := p.Current
	p.advance()
	return tok, nil
}

// consumeNewlines skips any run of NEWLINE tokens; blank and comment-only
// lines reduce to these.
func (p *Parser) consumeNewlines() {
	for p.Current.Type == lexer.NEWLINE {
		p.advance()
	}
}

// unexpected builds the standard parse error for a token that fits no rule.
func (p *Parser) unexpected() error {
	return fmt.Errorf("Unexpected token '%s' at line %d", p.Current.Literal, p.Current.Line)
}
