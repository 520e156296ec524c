/*
File   : mica/objects/objects.go
Author : The Mica Authors
*/

// Package objects defines the runtime value model of the Mica language.
// A Mica value is one of Number, String, Boolean, or Array. Numbers, strings,
// and booleans have value semantics; arrays are shared by reference, so two
// bindings to the same array observe each other's mutations. The package also
// defines ReturnValue, the wrapper the evaluator uses to carry a value out of
// a function body without exception machinery.
package objects

import (
	"fmt"
	"strings"
)

// MicaType identifies the type of a Mica object as a string constant.
// It is used for type checking inside the evaluator and for diagnostics.
type MicaType string

const (
	// NumberType represents IEEE-754 double values
	NumberType MicaType = "number"
	// StringType represents byte-string values
	StringType MicaType = "string"
	// BooleanType represents true/false values
	BooleanType MicaType = "boolean"
	// ArrayType represents shared, mutable sequences of values
	ArrayType MicaType = "array"
	// ReturnType marks the evaluator's non-local return signal
	ReturnType MicaType = "return"
)

// MicaObject is the interface every runtime value implements.
// ToString renders the value the way Print shows it; ToObject is a
// type-annotated form for debugging.
type MicaObject interface {
	// GetType returns the MicaType of the object
	GetType() MicaType
	// ToString returns the Print rendering of the value
	ToString() string
	// ToObject returns a detailed representation including type information
	ToObject() string
	// Truthy reports how the value behaves as a condition
	Truthy() bool
}

// Number represents an IEEE-754 double value in Mica.
// All numeric literals and arithmetic results are Numbers; there is no
// separate integer type.
type Number struct {
	Value float64 // The underlying floating-point value
}

// GetType returns the type of the Number object
func (n *Number) GetType() MicaType {
	return NumberType
}

// ToString renders the number the way Print shows it: values equal to their
// 64-bit integer truncation print as integers, everything else prints in the
// default %f form.
func (n *Number) ToString() string {
	if n.Value == float64(int64(n.Value)) {
		return fmt.Sprintf("%d", int64(n.Value))
	}
	return fmt.Sprintf("%f", n.Value)
}

// ToObject returns a detailed representation including type info (e.g. "<number(42)>")
func (n *Number) ToObject() string {
	return fmt.Sprintf("<number(%s)>", n.ToString())
}

// Truthy reports true for any non-zero number
func (n *Number) Truthy() bool {
	return n.Value != 0
}

// String represents a byte-string value in Mica.
type String struct {
	Value string // The underlying string value
}

// GetType returns the type of the String object
func (s *String) GetType() MicaType {
	return StringType
}

// ToString returns the bytes verbatim, no quotes
func (s *String) ToString() string {
	return s.Value
}

// ToObject returns a detailed representation including type info (e.g. "<string(hi)>")
func (s *String) ToObject() string {
	return fmt.Sprintf("<string(%s)>", s.Value)
}

// Truthy reports true for any non-empty string
func (s *String) Truthy() bool {
	return s.Value != ""
}

// Boolean represents a true/false value in Mica.
type Boolean struct {
	Value bool // The underlying boolean value
}

// GetType returns the type of the Boolean object
func (b *Boolean) GetType() MicaType {
	return BooleanType
}

// ToString renders the boolean with the language's literal spelling
func (b *Boolean) ToString() string {
	if b.Value {
		return "True"
	}
	return "False"
}

// ToObject returns a detailed representation including type info (e.g. "<boolean(True)>")
func (b *Boolean) ToObject() string {
	return fmt.Sprintf("<boolean(%s)>", b.ToString())
}

// Truthy reports the boolean itself
func (b *Boolean) Truthy() bool {
	return b.Value
}

// Array represents a shared ordered sequence of values.
// Bindings hold *Array handles, so assignment and argument passing alias the
// same element storage: a Push through one binding is visible through every
// other binding of the same array.
type Array struct {
	Elements []MicaObject // The underlying element storage
}

// GetType returns the type of the Array object
func (a *Array) GetType() MicaType {
	return ArrayType
}

// ToString renders the array as "[e0, e1, ...]" using element renderings
func (a *Array) ToString() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, elem := range a.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(elem.ToString())
	}
	sb.WriteString("]")
	return sb.String()
}

// ToObject returns a detailed representation including type info (e.g. "<array([1, 2])>")
func (a *Array) ToObject() string {
	return fmt.Sprintf("<array(%s)>", a.ToString())
}

// Truthy reports true for any non-empty array
func (a *Array) Truthy() bool {
	return len(a.Elements) > 0
}

// ReturnValue wraps a value travelling out of a function body.
// The evaluator's statement walker hands it upward through enclosing blocks
// until the nearest call boundary unwraps it; it never reaches user code.
type ReturnValue struct {
	Value MicaObject // The wrapped value returned from a function
}

// GetType returns ReturnType so the wrapper is never mistaken for a value
func (r *ReturnValue) GetType() MicaType {
	return ReturnType
}

// ToString returns the string representation of the wrapped value
func (r *ReturnValue) ToString() string {
	return r.Value.ToString()
}

// ToObject returns a detailed representation of the wrapped value
func (r *ReturnValue) ToObject() string {
	return fmt.Sprintf("<return(%s)>", r.Value.ToObject())
}

// Truthy delegates to the wrapped value
func (r *ReturnValue) Truthy() bool {
	return r.Value.Truthy()
}
