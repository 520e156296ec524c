/*
File   : mica/eval/eval_expressions.go
Author : The Mica Authors
*/
package eval

import (
	"fmt"

	"github.com/micalang/mica/lexer"
	"github.com/micalang/mica/objects"
	"github.com/micalang/mica/parser"
)

// evalExpression evaluates an expression node to a runtime value.
func (e *Evaluator) evalExpression(expr parser.ExpressionNode) (objects.MicaObject, error) {
	switch n := expr.(type) {
	case *parser.NumberNode:
		return &objects.Number{Value: n.Value}, nil

	case *parser.StringNode:
		return &objects.String{Value: n.Value}, nil

	case *parser.BooleanNode:
		return &objects.Boolean{Value: n.Value}, nil

	case *parser.ArrayNode:
		elements := make([]objects.MicaObject, 0, len(n.Elements))
		for _, elemExpr := range n.Elements {
			elem, err := e.evalExpression(elemExpr)
			if err != nil {
				return nil, err
			}
			elements = append(elements, elem)
		}
		return &objects.Array{Elements: elements}, nil

	case *parser.VariableNode:
		value, ok := e.Scp.LookUp(n.Name)
		if !ok {
			return nil, fmt.Errorf("Undefined variable: %s", n.Name)
		}
		return value, nil

	case *parser.ArrayAccessNode:
		return e.evalArrayAccess(n)

	case *parser.BinaryOpNode:
		return e.evalBinaryOp(n)

	case *parser.LogicalOpNode:
		return e.evalLogicalOp(n)

	case *parser.NotOpNode:
		truth, err := e.evalCondition(n.Operand)
		if err != nil {
			return nil, err
		}
		return &objects.Boolean{Value: !truth}, nil

	case *parser.ComparisonNode:
		return e.evalComparison(n)

	case *parser.FuncCallNode:
		return e.evalFuncCall(n)

	case *parser.StringOpNode:
		return e.evalStringOp(n)

	default:
		return nil, fmt.Errorf("Invalid node type in expression")
	}
}

// evalArrayAccess reads one element of a named array binding. The index is
// evaluated as a number and truncated toward zero.
func (e *Evaluator) evalArrayAccess(n *parser.ArrayAccessNode) (objects.MicaObject, error) {
	binding, ok := e.Scp.LookUp(n.Name)
	if !ok {
		return nil, fmt.Errorf("Undefined variable: %s", n.Name)
	}
	arr, ok := binding.(*objects.Array)
	if !ok {
		return nil, fmt.Errorf("%s is not an array", n.Name)
	}

	index, err := e.evalIndex(n.Index)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(arr.Elements) {
		return nil, fmt.Errorf("Array index out of bounds")
	}
	return arr.Elements[index], nil
}

// evalBinaryOp evaluates arithmetic. The + operator is overloaded: when
// either operand is a string both sides are rendered with their Print form
// and concatenated; otherwise both operands must be numbers. Division by
// zero is a runtime error.
func (e *Evaluator) evalBinaryOp(n *parser.BinaryOpNode) (objects.MicaObject, error) {
	left, err := e.evalExpression(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpression(n.Right)
	if err != nil {
		return nil, err
	}

	if n.Op.Type == lexer.PLUS {
		if left.GetType() == objects.StringType || right.GetType() == objects.StringType {
			return &objects.String{Value: left.ToString() + right.ToString()}, nil
		}
	}

	leftNum, leftOk := left.(*objects.Number)
	rightNum, rightOk := right.(*objects.Number)
	if !leftOk || !rightOk {
		return nil, fmt.Errorf("Arithmetic requires numbers")
	}

	switch n.Op.Type {
	case lexer.PLUS:
		return &objects.Number{Value: leftNum.Value + rightNum.Value}, nil
	case lexer.MINUS:
		return &objects.Number{Value: leftNum.Value - rightNum.Value}, nil
	case lexer.MULTIPLY:
		return &objects.Number{Value: leftNum.Value * rightNum.Value}, nil
	case lexer.DIVIDE:
		if rightNum.Value == 0 {
			return nil, fmt.Errorf("Division by zero")
		}
		return &objects.Number{Value: leftNum.Value / rightNum.Value}, nil
	default:
		return nil, fmt.Errorf("Unknown operator")
	}
}

// evalLogicalOp combines two conditions with And/Or and yields a Boolean.
// The left operand decides whether the right one is evaluated at all.
func (e *Evaluator) evalLogicalOp(n *parser.LogicalOpNode) (objects.MicaObject, error) {
	left, err := e.evalCondition(n.Left)
	if err != nil {
		return nil, err
	}

	switch n.Op.Type {
	case lexer.AND:
		if !left {
			return &objects.Boolean{Value: false}, nil
		}
	case lexer.OR:
		if left {
			return &objects.Boolean{Value: true}, nil
		}
	default:
		return nil, fmt.Errorf("Unknown logical operator")
	}

	right, err := e.evalCondition(n.Right)
	if err != nil {
		return nil, err
	}
	return &objects.Boolean{Value: right}, nil
}

// evalComparison evaluates a relational comparison. Two strings compare
// byte-wise with == and != only; two numbers support all six operators;
// any other pairing is an error.
func (e *Evaluator) evalComparison(n *parser.ComparisonNode) (objects.MicaObject, error) {
	left, err := e.evalExpression(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpression(n.Right)
	if err != nil {
		return nil, err
	}

	if left.GetType() == objects.StringType && right.GetType() == objects.StringType {
		leftStr := left.(*objects.String).Value
		rightStr := right.(*objects.String).Value
		switch n.Op.Type {
		case lexer.EQUAL:
			return &objects.Boolean{Value: leftStr == rightStr}, nil
		case lexer.NOT_EQUAL:
			return &objects.Boolean{Value: leftStr != rightStr}, nil
		default:
			return nil, fmt.Errorf("Only == and != supported for string comparison")
		}
	}

	leftNum, leftOk := left.(*objects.Number)
	rightNum, rightOk := right.(*objects.Number)
	if !leftOk || !rightOk {
		return nil, fmt.Errorf("Comparison requires matching types")
	}

	switch n.Op.Type {
	case lexer.EQUAL:
		return &objects.Boolean{Value: leftNum.Value == rightNum.Value}, nil
	case lexer.NOT_EQUAL:
		return &objects.Boolean{Value: leftNum.Value != rightNum.Value}, nil
	case lexer.LESS_THAN:
		return &objects.Boolean{Value: leftNum.Value < rightNum.Value}, nil
	case lexer.GREATER_THAN:
		return &objects.Boolean{Value: leftNum.Value > rightNum.Value}, nil
	case lexer.LESS_EQUAL:
		return &objects.Boolean{Value: leftNum.Value <= rightNum.Value}, nil
	case lexer.GREATER_EQUAL:
		return &objects.Boolean{Value: leftNum.Value >= rightNum.Value}, nil
	default:
		return nil, fmt.Errorf("Unknown comparison operator")
	}
}

// evalCondition evaluates an expression and applies the truthiness rule:
// booleans count as themselves, numbers as non-zero, strings and arrays as
// non-empty.
func (e *Evaluator) evalCondition(expr parser.ExpressionNode) (bool, error) {
	value, err := e.evalExpression(expr)
	if err != nil {
		return false, err
	}
	return value.Truthy(), nil
}

// evalNumber evaluates an expression that must yield a number.
func (e *Evaluator) evalNumber(expr parser.ExpressionNode) (float64, error) {
	value, err := e.evalExpression(expr)
	if err != nil {
		return 0, err
	}
	num, ok := value.(*objects.Number)
	if !ok {
		return 0, fmt.Errorf("Arithmetic requires numbers")
	}
	return num.Value, nil
}

// evalIndex evaluates an index expression as a number truncated toward zero.
func (e *Evaluator) evalIndex(expr parser.ExpressionNode) (int, error) {
	value, err := e.evalExpression(expr)
	if err != nil {
		return 0, err
	}
	num, ok := value.(*objects.Number)
	if !ok {
		return 0, fmt.Errorf("Array index must be a number")
	}
	return int(num.Value), nil
}
