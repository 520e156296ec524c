/*
File   : mica/eval/eval_builtins.go
Author : The Mica Authors
*/

// This file implements the builtin operations on strings and arrays: Length,
// Upper, Lower, Contains, Substring, Push, and Pop. The parser lowers
// expression-position calls to these names into StringOp nodes; Push and Pop
// additionally appear as statement-position calls, and both surfaces resolve
// their first argument through the same arrayBinding lookup.
package eval

import (
	"fmt"
	"strings"

	"github.com/micalang/mica/objects"
	"github.com/micalang/mica/parser"
)

// evalStringOp dispatches one builtin operation at expression position.
func (e *Evaluator) evalStringOp(n *parser.StringOpNode) (objects.MicaObject, error) {
	switch n.Op {
	case "Length":
		return e.evalLength(n)
	case "Upper":
		return e.evalCaseChange(n, asciiCase('a', 'z'))
	case "Lower":
		return e.evalCaseChange(n, asciiCase('A', 'Z'))
	case "Contains":
		return e.evalContains(n)
	case "Substring":
		return e.evalSubstring(n)
	case "Push":
		return e.evalPush(n)
	case "Pop":
		return e.evalPop(n)
	default:
		return nil, fmt.Errorf("Unknown operation: %s", n.Op)
	}
}

// evalLength returns the length of a string or array as a number.
func (e *Evaluator) evalLength(n *parser.StringOpNode) (objects.MicaObject, error) {
	target, err := e.evalExpression(n.Target)
	if err != nil {
		return nil, err
	}
	switch t := target.(type) {
	case *objects.String:
		return &objects.Number{Value: float64(len(t.Value))}, nil
	case *objects.Array:
		return &objects.Number{Value: float64(len(t.Elements))}, nil
	default:
		return nil, fmt.Errorf("Length requires a string or array")
	}
}

// evalCaseChange implements Upper and Lower over ASCII strings.
func (e *Evaluator) evalCaseChange(n *parser.StringOpNode, convert func(string) string) (objects.MicaObject, error) {
	target, err := e.evalExpression(n.Target)
	if err != nil {
		return nil, err
	}
	str, ok := target.(*objects.String)
	if !ok {
		return nil, fmt.Errorf("%s requires a string", n.Op)
	}
	return &objects.String{Value: convert(str.Value)}, nil
}

// asciiCase returns a converter that flips the case of the ASCII letters in
// [lo, hi]; every other byte is left unchanged.
func asciiCase(lo, hi byte) func(string) string {
	return func(s string) string {
		b := []byte(s)
		for i, c := range b {
			if c >= lo && c <= hi {
				b[i] = c ^ 0x20
			}
		}
		return string(b)
	}
}

// evalContains reports whether the rendered search value occurs as a
// substring of the target, as Number 1 or 0.
func (e *Evaluator) evalContains(n *parser.StringOpNode) (objects.MicaObject, error) {
	target, err := e.evalExpression(n.Target)
	if err != nil {
		return nil, err
	}
	str, ok := target.(*objects.String)
	if !ok {
		return nil, fmt.Errorf("Contains requires a string")
	}
	if len(n.Args) != 1 {
		return nil, fmt.Errorf("Contains requires 2 arguments")
	}

	search, err := e.evalExpression(n.Args[0])
	if err != nil {
		return nil, err
	}
	if strings.Contains(str.Value, search.ToString()) {
		return &objects.Number{Value: 1}, nil
	}
	return &objects.Number{Value: 0}, nil
}

// evalSubstring extracts up to len bytes of the target starting at the given
// byte offset, stopping early at end of string.
func (e *Evaluator) evalSubstring(n *parser.StringOpNode) (objects.MicaObject, error) {
	target, err := e.evalExpression(n.Target)
	if err != nil {
		return nil, err
	}
	str, ok := target.(*objects.String)
	if !ok {
		return nil, fmt.Errorf("Substring requires a string")
	}
	if len(n.Args) != 2 {
		return nil, fmt.Errorf("Substring requires 3 arguments")
	}

	start, err := e.evalIndex(n.Args[0])
	if err != nil {
		return nil, err
	}
	length, err := e.evalIndex(n.Args[1])
	if err != nil {
		return nil, err
	}

	if start < 0 || start > len(str.Value) {
		return nil, fmt.Errorf("Substring start out of range")
	}
	if length < 0 {
		return nil, fmt.Errorf("Substring length must be non-negative")
	}

	end := start + length
	if end > len(str.Value) {
		end = len(str.Value)
	}
	return &objects.String{Value: str.Value[start:end]}, nil
}

// evalPush appends a value to a named array binding and returns the array.
// The target must be a variable naming an array; both the expression and the
// statement surface of Push share this requirement.
func (e *Evaluator) evalPush(n *parser.StringOpNode) (objects.MicaObject, error) {
	if len(n.Args) != 1 {
		return nil, fmt.Errorf("Push requires 2 arguments")
	}
	arr, err := e.arrayBinding(n.Target, "Push")
	if err != nil {
		return nil, err
	}

	value, err := e.evalExpression(n.Args[0])
	if err != nil {
		return nil, err
	}
	arr.Elements = append(arr.Elements, value)
	return arr, nil
}

// evalPop removes and returns the last element of a named array binding.
func (e *Evaluator) evalPop(n *parser.StringOpNode) (objects.MicaObject, error) {
	if len(n.Args) != 0 {
		return nil, fmt.Errorf("Pop requires 1 argument")
	}
	arr, err := e.arrayBinding(n.Target, "Pop")
	if err != nil {
		return nil, err
	}
	if len(arr.Elements) == 0 {
		return nil, fmt.Errorf("Cannot Pop from empty array")
	}

	last := arr.Elements[len(arr.Elements)-1]
	arr.Elements = arr.Elements[:len(arr.Elements)-1]
	return last, nil
}

// execPushStatement handles Push at statement position, mutating the named
// array binding in place.
func (e *Evaluator) execPushStatement(n *parser.FuncCallNode) error {
	if len(n.Args) != 2 {
		return fmt.Errorf("Push requires 2 arguments")
	}
	arr, err := e.arrayBinding(n.Args[0], "Push")
	if err != nil {
		return err
	}

	value, err := e.evalExpression(n.Args[1])
	if err != nil {
		return err
	}
	arr.Elements = append(arr.Elements, value)
	return nil
}

// execPopStatement handles Pop at statement position, discarding the popped
// element.
func (e *Evaluator) execPopStatement(n *parser.FuncCallNode) error {
	if len(n.Args) != 1 {
		return fmt.Errorf("Pop requires 1 argument")
	}
	arr, err := e.arrayBinding(n.Args[0], "Pop")
	if err != nil {
		return err
	}
	if len(arr.Elements) == 0 {
		return fmt.Errorf("Cannot Pop from empty array")
	}

	arr.Elements = arr.Elements[:len(arr.Elements)-1]
	return nil
}

// arrayBinding resolves the first argument of Push/Pop: it must be a
// variable node whose binding is an array. Non-variable arguments are
// rejected uniformly on both the expression and statement surfaces.
func (e *Evaluator) arrayBinding(expr parser.ExpressionNode, op string) (*objects.Array, error) {
	variable, ok := expr.(*parser.VariableNode)
	if !ok {
		return nil, fmt.Errorf("%s first argument must be a variable", op)
	}

	binding, found := e.Scp.LookUp(variable.Name)
	if !found {
		return nil, fmt.Errorf("Undefined variable: %s", variable.Name)
	}
	arr, ok := binding.(*objects.Array)
	if !ok {
		return nil, fmt.Errorf("%s requires an array", op)
	}
	return arr, nil
}
