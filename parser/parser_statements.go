/*
File   : mica/parser/parser_statements.go
Author : The Mica Authors
*/
package parser

import (
	"fmt"

	"github.com/micalang/mica/lexer"
)

// statement parses one statement starting at the current token. Which rule
// applies is decided by the leading token alone; identifiers need one more
// token of lookahead to split assignment, indexed assignment, and call.
func (p *Parser) statement() (StatementNode, error) {
	switch p.Current.Type {
	case lexer.PRINT:
		p.advance()
		expr, err := p.logical()
		if err != nil {
			return nil, err
		}
		return &PrintNode{Expr: expr}, nil

	case lexer.IF:
		return p.ifStatement()

	case lexer.WHILE:
		return p.whileStatement()

	case lexer.FOR:
		return p.forStatement()

	case lexer.FUNC:
		return p.funcStatement()

	case lexer.RETURN:
		p.advance()
		value, err := p.logical()
		if err != nil {
			return nil, err
		}
		return &ReturnNode{Value: value}, nil

	case lexer.IDENTIFIER:
		return p.identifierStatement()

	default:
		return nil, p.unexpected()
	}
}

// identifierStatement parses the three statement forms that begin with an
// identifier: plain assignment, indexed array assignment, and a call.
func (p *Parser) identifierStatement() (StatementNode, error) {
	nameTok := p.Current
	p.advance()

	switch p.Current.Type {
	case lexer.ASSIGN:
		p.advance()
		value, err := p.logical()
		if err != nil {
			return nil, err
		}
		return &AssignmentNode{Token: nameTok, Name: nameTok.Literal, Value: value}, nil

	case lexer.LBRACKET:
		p.advance()
		index, err := p.logical()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RBRACKET, "']'"); err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.ASSIGN, "'='"); err != nil {
			return nil, err
		}
		value, err := p.logical()
		if err != nil {
			return nil, err
		}
		return &ArrayAssignNode{Token: nameTok, Name: nameTok.Literal, Index: index, Value: value}, nil

	case lexer.LPAREN:
		args, err := p.callArgs()
		if err != nil {
			return nil, err
		}
		return &FuncCallNode{Token: nameTok, Name: nameTok.Literal, Args: args}, nil

	default:
		return nil, fmt.Errorf("Expected '=', '[' or '(' after '%s' at line %d", nameTok.Literal, p.Current.Line)
	}
}

// ifStatement parses an If statement with its optional Elif chain, optional
// Else body, and optional trailing End.
func (p *Parser) ifStatement() (StatementNode, error) {
	p.advance()

	condition, err := p.logical()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}

	node := &IfNode{
		Condition:   condition,
		Body:        body,
		ElifClauses: make([]ElifClause, 0),
		ElseBody:    make([]StatementNode, 0),
	}

	for p.Current.Type == lexer.ELIF {
		p.advance()
		clauseCond, err := p.logical()
		if err != nil {
			return nil, err
		}
		clauseBody, err := p.block()
		if err != nil {
			return nil, err
		}
		node.ElifClauses = append(node.ElifClauses, ElifClause{Condition: clauseCond, Body: clauseBody})
	}

	if p.Current.Type == lexer.ELSE {
		p.advance()
		elseBody, err := p.block()
		if err != nil {
			return nil, err
		}
		node.ElseBody = elseBody
	}

	p.consumeEnd()
	return node, nil
}

// whileStatement parses a While loop with an optional trailing End.
func (p *Parser) whileStatement() (StatementNode, error) {
	p.advance()

	condition, err := p.logical()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}

	p.consumeEnd()
	return &WhileNode{Condition: condition, Body: body}, nil
}

// forStatement parses a For loop: For IDENT = expression To expression,
// a body, and an optional trailing End.
func (p *Parser) forStatement() (StatementNode, error) {
	p.advance()

	nameTok, err := p.expect(lexer.IDENTIFIER, "loop variable name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.ASSIGN, "'='"); err != nil {
		return nil, err
	}
	start, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TO, "'To'"); err != nil {
		return nil, err
	}
	end, err := p.expression()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}

	p.consumeEnd()
	return &ForNode{Var: nameTok.Literal, Start: start, End: end, Body: body}, nil
}

// funcStatement parses a function definition: Func IDENT ( params ), a body,
// and an optional trailing End.
func (p *Parser) funcStatement() (StatementNode, error) {
	p.advance()

	nameTok, err := p.expect(lexer.IDENTIFIER, "function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}

	params := make([]string, 0)
	if p.Current.Type != lexer.RPAREN {
		for {
			paramTok, err := p.expect(lexer.IDENTIFIER, "parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, paramTok.Literal)
			if p.Current.Type != lexer.COMMA {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}

	p.consumeEnd()
	return &FuncDefNode{Name: nameTok.Literal, Params: params, Body: body}, nil
}

// block parses an indented statement block: the header line's NEWLINE, a
// leading INDENT, then statements until the matching DEDENT (consumed) or a
// closer token (End, Else, Elif, end of file; those are left for the caller).
func (p *Parser) block() ([]StatementNode, error) {
	if _, err := p.expect(lexer.NEWLINE, "newline"); err != nil {
		return nil, err
	}
	p.consumeNewlines()
	if _, err := p.expect(lexer.INDENT, "indented block"); err != nil {
		return nil, err
	}

	statements := make([]StatementNode, 0)
	for {
		p.consumeNewlines()

		if p.Current.Type == lexer.DEDENT {
			p.advance()
			break
		}
		if p.Current.Type == lexer.END || p.Current.Type == lexer.ELSE ||
			p.Current.Type == lexer.ELIF || p.Current.Type == lexer.END_OF_FILE {
			break
		}

		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)

		if p.Current.Type == lexer.NEWLINE {
			p.advance()
		} else if p.Current.Type != lexer.DEDENT && p.Current.Type != lexer.END_OF_FILE && !isCompound(stmt) {
			return nil, fmt.Errorf("Expected newline after statement at line %d", p.Current.Line)
		}
	}

	return statements, nil
}

// consumeEnd discards an optional trailing End keyword; DEDENT already closed
// the block, so End is tolerated sugar.
func (p *Parser) consumeEnd() {
	if p.Current.Type == lexer.END {
		p.advance()
	}
}
