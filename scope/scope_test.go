/*
File   : mica/scope/scope_test.go
Author : The Mica Authors
*/
package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/micalang/mica/objects"
)

// TestScope_LookUpWalksChain verifies lookups fall through to parent scopes.
func TestScope_LookUpWalksChain(t *testing.T) {
	global := NewScope(nil)
	global.Bind("x", &objects.Number{Value: 10})

	child := NewScope(global)
	obj, ok := child.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, "10", obj.ToString())

	_, ok = child.LookUp("missing")
	assert.False(t, ok)
}

// TestScope_BindShadowsWithoutMutatingParent verifies that binding in a
// child scope shadows the parent binding without touching it. This is the
// snapshot/restore contract function calls rely on.
func TestScope_BindShadowsWithoutMutatingParent(t *testing.T) {
	global := NewScope(nil)
	global.Bind("x", &objects.Number{Value: 1})

	child := NewScope(global)
	child.Bind("x", &objects.Number{Value: 2})
	child.Bind("y", &objects.Number{Value: 3})

	obj, _ := child.LookUp("x")
	assert.Equal(t, "2", obj.ToString())

	// the parent still sees its own binding, and never sees y
	obj, _ = global.LookUp("x")
	assert.Equal(t, "1", obj.ToString())
	_, ok := global.LookUp("y")
	assert.False(t, ok)
}

// TestScope_SharedArrayHandle verifies that an array handle visible through
// two scopes observes the same mutations.
func TestScope_SharedArrayHandle(t *testing.T) {
	global := NewScope(nil)
	arr := &objects.Array{Elements: []objects.MicaObject{&objects.Number{Value: 1}}}
	global.Bind("a", arr)

	child := NewScope(global)
	obj, _ := child.LookUp("a")
	shared := obj.(*objects.Array)
	shared.Elements = append(shared.Elements, &objects.Number{Value: 2})

	obj, _ = global.LookUp("a")
	assert.Equal(t, "[1, 2]", obj.ToString())
}
