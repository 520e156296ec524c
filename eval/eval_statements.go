/*
File   : mica/eval/eval_statements.go
Author : The Mica Authors
*/
package eval

import (
	"fmt"

	"github.com/micalang/mica/objects"
	"github.com/micalang/mica/parser"
)

// execStatement executes one statement. The returned object is nil for
// ordinary completion and a *objects.ReturnValue when a Return fired inside
// this statement; errors abort the run.
func (e *Evaluator) execStatement(stmt parser.StatementNode) (objects.MicaObject, error) {
	switch n := stmt.(type) {
	case *parser.AssignmentNode:
		value, err := e.evalExpression(n.Value)
		if err != nil {
			return nil, err
		}
		e.Scp.Bind(n.Name, value)
		return nil, nil

	case *parser.ArrayAssignNode:
		return nil, e.execArrayAssign(n)

	case *parser.PrintNode:
		value, err := e.evalExpression(n.Expr)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(e.Writer, value.ToString())
		return nil, nil

	case *parser.IfNode:
		return e.execIf(n)

	case *parser.WhileNode:
		return e.execWhile(n)

	case *parser.ForNode:
		return e.execFor(n)

	case *parser.FuncDefNode:
		e.Funcs[n.Name] = n
		return nil, nil

	case *parser.FuncCallNode:
		return e.execCallStatement(n)

	case *parser.ReturnNode:
		value, err := e.evalExpression(n.Value)
		if err != nil {
			return nil, err
		}
		return &objects.ReturnValue{Value: value}, nil

	default:
		return nil, fmt.Errorf("Unknown statement type")
	}
}

// execArrayAssign stores a value at an index of a named array binding.
// The binding must exist, must be an array, and the index must be in range;
// nothing is mutated when any check fails.
func (e *Evaluator) execArrayAssign(n *parser.ArrayAssignNode) error {
	binding, ok := e.Scp.LookUp(n.Name)
	if !ok {
		return fmt.Errorf("Undefined variable: %s", n.Name)
	}
	arr, ok := binding.(*objects.Array)
	if !ok {
		return fmt.Errorf("%s is not an array", n.Name)
	}

	index, err := e.evalIndex(n.Index)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(arr.Elements) {
		return fmt.Errorf("Array index out of bounds")
	}

	value, err := e.evalExpression(n.Value)
	if err != nil {
		return err
	}
	arr.Elements[index] = value
	return nil
}

// execIf evaluates the If condition, then the Elif clauses in order, and
// falls through to the Else body when nothing matched.
func (e *Evaluator) execIf(n *parser.IfNode) (objects.MicaObject, error) {
	matched, err := e.evalCondition(n.Condition)
	if err != nil {
		return nil, err
	}
	if matched {
		return e.execBlock(n.Body)
	}

	for _, clause := range n.ElifClauses {
		matched, err := e.evalCondition(clause.Condition)
		if err != nil {
			return nil, err
		}
		if matched {
			return e.execBlock(clause.Body)
		}
	}

	return e.execBlock(n.ElseBody)
}

// execWhile runs a pre-test loop until the condition turns false. A Return
// inside the body unwinds through the loop.
func (e *Evaluator) execWhile(n *parser.WhileNode) (objects.MicaObject, error) {
	for {
		keepGoing, err := e.evalCondition(n.Condition)
		if err != nil {
			return nil, err
		}
		if !keepGoing {
			return nil, nil
		}

		result, err := e.execBlock(n.Body)
		if err != nil {
			return nil, err
		}
		if result != nil {
			return result, nil
		}
	}
}

// execFor runs the inclusive counting loop. Start and end are evaluated once
// as numbers before the first iteration; the loop variable is rebound in the
// current scope on every pass and stays bound after the loop.
func (e *Evaluator) execFor(n *parser.ForNode) (objects.MicaObject, error) {
	start, err := e.evalNumber(n.Start)
	if err != nil {
		return nil, err
	}
	end, err := e.evalNumber(n.End)
	if err != nil {
		return nil, err
	}

	for i := start; i <= end; i++ {
		e.Scp.Bind(n.Var, &objects.Number{Value: i})

		result, err := e.execBlock(n.Body)
		if err != nil {
			return nil, err
		}
		if result != nil {
			return result, nil
		}
	}
	return nil, nil
}

// execCallStatement handles a call at statement position. Push and Pop are
// intercepted here and mutate the named array binding in place; every other
// name dispatches to a user-defined function whose result is discarded.
func (e *Evaluator) execCallStatement(n *parser.FuncCallNode) (objects.MicaObject, error) {
	switch n.Name {
	case "Push":
		return nil, e.execPushStatement(n)
	case "Pop":
		return nil, e.execPopStatement(n)
	}

	_, err := e.evalFuncCall(n)
	return nil, err
}
