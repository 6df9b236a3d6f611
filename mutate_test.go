package jsondom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treewrite/jsondom"
)

func TestArrayPushPrimitives(t *testing.T) {
	arr := jsondom.NewArray()

	require.True(t, arr.ArrayPushInt(1))
	require.True(t, arr.ArrayPushDouble(2.5))
	require.True(t, arr.ArrayPushBool(true))
	require.True(t, arr.ArrayPushNull())
	require.True(t, arr.ArrayPushString("s"))
	require.True(t, arr.ArrayPushRef([]byte("r")))

	require.Equal(t, 6, arr.ArrayLen())

	wantKinds := []jsondom.Kind{
		jsondom.Integer, jsondom.Double, jsondom.Bool,
		jsondom.Null, jsondom.String, jsondom.Reference,
	}
	for i, want := range wantKinds {
		child := arr.ArrayIndex(i)
		assert.Equal(t, want, child.Type(), "element %d", i)
		assert.True(t, child.HasParent())
		assert.Equal(t, jsondom.Array, child.ParentKind())
	}

	out, err := jsondom.Serialize(&arr)
	require.NoError(t, err)
	assert.Equal(t, `[1,2.5,true,null,"s","r"]`, string(out))
}

func TestArrayMutationIsTypeGuarded(t *testing.T) {
	n := jsondom.NewInteger(3)

	assert.False(t, n.ArrayPushInt(1))
	assert.False(t, n.ArrayPushNull())
	assert.False(t, n.ArrayRemove(0))
	assert.False(t, n.ArrayClear())
	assert.Equal(t, 0, n.ArrayLen())
	assert.Nil(t, n.ArrayIndex(0))
	assert.Nil(t, n.ArrayFront())
	assert.Nil(t, n.ArrayBack())

	_, ok := n.ArrayPop()
	assert.False(t, ok)

	// The guard leaves the node untouched.
	got, ok := n.IntValue()
	require.True(t, ok)
	assert.Equal(t, int64(3), got)
}

func TestArrayInsertShifts(t *testing.T) {
	arr := jsondom.NewArray()
	require.True(t, arr.ArrayPushInt(1))
	require.True(t, arr.ArrayPushInt(3))

	require.True(t, arr.ArrayInsertInt(2, 1))
	require.True(t, arr.ArrayInsertInt(0, 0))
	// Insertion at index == len appends.
	require.True(t, arr.ArrayInsertInt(4, 4))
	// Out of bounds fails.
	assert.False(t, arr.ArrayInsertInt(9, 9))

	out, err := jsondom.Serialize(&arr)
	require.NoError(t, err)
	assert.Equal(t, `[0,1,2,3,4]`, string(out))
}

func TestArrayPushElement(t *testing.T) {
	arr := jsondom.NewArray()
	inner := jsondom.NewObject()
	require.True(t, inner.ObjectPushInt("n", 1))

	require.True(t, arr.ArrayPushElement(&inner))

	// The caller's handle now reports its new parent.
	assert.True(t, inner.HasParent())
	assert.Equal(t, jsondom.Array, inner.ParentKind())

	// A parented element cannot be inserted again.
	assert.False(t, arr.ArrayPushElement(&inner))

	other := jsondom.NewArray()
	assert.False(t, other.ArrayPushElement(&inner))

	stored := arr.ArrayIndex(0)
	require.Equal(t, jsondom.Object, stored.Type())
	assert.Equal(t, 1, stored.ObjectLen())
}

func TestArrayPopClearsParent(t *testing.T) {
	arr := jsondom.NewArray()
	require.True(t, arr.ArrayPushInt(1))
	require.True(t, arr.ArrayPushInt(2))

	child, ok := arr.ArrayPop()
	require.True(t, ok)
	assert.Equal(t, 1, arr.ArrayLen())
	assert.False(t, child.HasParent())
	got, _ := child.IntValue()
	assert.Equal(t, int64(2), got)

	// The popped orphan can be reinserted.
	assert.True(t, arr.ArrayPushElement(&child))
	assert.Equal(t, 2, arr.ArrayLen())
}

func TestArrayRemoveAndClear(t *testing.T) {
	arr := jsondom.NewArray()
	for i := int64(0); i < 4; i++ {
		require.True(t, arr.ArrayPushInt(i))
	}

	require.True(t, arr.ArrayRemove(1))
	assert.Equal(t, 3, arr.ArrayLen())
	got, _ := arr.ArrayIndex(1).IntValue()
	assert.Equal(t, int64(2), got)

	assert.False(t, arr.ArrayRemove(7))

	require.True(t, arr.ArrayClear())
	assert.Equal(t, 0, arr.ArrayLen())

	out, err := jsondom.Serialize(&arr)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(out))
}

func TestArrayFrontBack(t *testing.T) {
	arr := jsondom.NewArray()
	require.True(t, arr.ArrayPushInt(10))
	require.True(t, arr.ArrayPushInt(20))
	require.True(t, arr.ArrayPushInt(30))

	front, _ := arr.ArrayFront().IntValue()
	back, _ := arr.ArrayBack().IntValue()
	assert.Equal(t, int64(10), front)
	assert.Equal(t, int64(30), back)
}

func TestArrayFromBulkConstructors(t *testing.T) {
	arr := jsondom.ArrayFromStrings([]string{"a", "b"})
	require.Equal(t, jsondom.Array, arr.Type())
	assert.Equal(t, 2, arr.ArrayLen())

	arr = jsondom.ArrayFromStrings([]string{"ok", "bad \x02"})
	assert.Equal(t, jsondom.Error, arr.Type())

	arr = jsondom.ArrayFromInts([]int64{1, 2, 3})
	out, err := jsondom.Serialize(&arr)
	require.NoError(t, err)
	assert.Equal(t, `[1,2,3]`, string(out))

	arr = jsondom.ArrayFromDoubles([]float64{0.5})
	out, err = jsondom.Serialize(&arr)
	require.NoError(t, err)
	assert.Equal(t, `[0.5]`, string(out))

	arr = jsondom.ArrayFromBools([]bool{true, false})
	assert.Equal(t, 2, arr.ArrayLen())

	arr = jsondom.ArrayFromNulls(3)
	out, err = jsondom.Serialize(&arr)
	require.NoError(t, err)
	assert.Equal(t, `[null,null,null]`, string(out))

	a, b := jsondom.NewInteger(1), jsondom.NewBool(true)
	arr = jsondom.ArrayFromElements([]*jsondom.Node{&a, &b})
	require.Equal(t, jsondom.Array, arr.Type())
	assert.Equal(t, 2, arr.ArrayLen())
	assert.True(t, a.HasParent())

	// An already parented element aborts the build.
	c := jsondom.NewInteger(2)
	bad := jsondom.ArrayFromElements([]*jsondom.Node{&a, &c})
	assert.Equal(t, jsondom.Error, bad.Type())
}

func TestObjectPushAndLookup(t *testing.T) {
	obj := jsondom.NewObject()

	require.True(t, obj.ObjectPushInt("count", 2))
	require.True(t, obj.ObjectPushString("name", "zig"))
	require.True(t, obj.ObjectPushBool("on", true))
	require.True(t, obj.ObjectPushDouble("ratio", 0.5))
	require.True(t, obj.ObjectPushNull("gap"))
	require.True(t, obj.ObjectPushRef("tag", []byte("v1")))

	require.Equal(t, 6, obj.ObjectLen())
	assert.True(t, obj.ObjectContains("ratio", false))
	assert.False(t, obj.ObjectContains("missing", false))

	tuple := obj.ObjectIndexByKey("name", false)
	require.NotNil(t, tuple)
	s, _ := tuple.Value().StringValue()
	assert.Equal(t, "zig", s)
	assert.Equal(t, jsondom.Object, tuple.Value().ParentKind())

	assert.Nil(t, obj.ObjectIndexByKey("missing", false))

	out, err := jsondom.Serialize(&obj)
	require.NoError(t, err)
	assert.Equal(t, `{"count":2,"name":"zig","on":true,"ratio":0.5,"gap":null,"tag":"v1"}`, string(out))
}

func TestObjectMutationIsTypeGuarded(t *testing.T) {
	n := jsondom.NewArray()

	assert.False(t, n.ObjectPushInt("k", 1))
	assert.False(t, n.ObjectRemove(0))
	assert.False(t, n.ObjectClear())
	assert.False(t, n.ObjectSort())
	assert.Equal(t, 0, n.ObjectLen())
	assert.Nil(t, n.ObjectIndex(0))

	_, ok := n.ObjectPop()
	assert.False(t, ok)
}

func TestObjectRejectsInvalidKey(t *testing.T) {
	obj := jsondom.NewObject()
	assert.False(t, obj.ObjectPushInt("bad \x03", 1))
	assert.Equal(t, 0, obj.ObjectLen())
}

func TestObjectInsertAtIndex(t *testing.T) {
	obj := jsondom.NewObject()
	require.True(t, obj.ObjectPushInt("a", 1))
	require.True(t, obj.ObjectPushInt("c", 3))

	require.True(t, obj.ObjectInsertInt("b", 2, 1))
	// Insertion at index == len appends.
	require.True(t, obj.ObjectInsertInt("d", 4, 3))
	assert.False(t, obj.ObjectInsertInt("x", 9, 9))

	keys := make([]string, 0, obj.ObjectLen())
	for i := 0; i < obj.ObjectLen(); i++ {
		keys = append(keys, obj.ObjectIndex(i).Key())
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, keys)
}

func TestObjectPushElement(t *testing.T) {
	obj := jsondom.NewObject()
	child := jsondom.ArrayFromInts([]int64{1, 2})

	require.True(t, obj.ObjectPushElement("xs", &child))
	assert.True(t, child.HasParent())
	assert.Equal(t, jsondom.Object, child.ParentKind())
	assert.False(t, obj.ObjectPushElement("again", &child))

	stored := obj.ObjectIndexByKey("xs", false)
	require.NotNil(t, stored)
	assert.Equal(t, 2, stored.Value().ArrayLen())
}

func TestObjectPopReturnsTuple(t *testing.T) {
	obj := jsondom.NewObject()
	require.True(t, obj.ObjectPushInt("a", 1))
	require.True(t, obj.ObjectPushInt("b", 2))

	tuple, ok := obj.ObjectPop()
	require.True(t, ok)
	assert.Equal(t, "b", tuple.Key())
	assert.False(t, tuple.Value().HasParent())
	assert.Equal(t, 1, obj.ObjectLen())
}

func TestObjectRemove(t *testing.T) {
	obj := jsondom.NewObject()
	require.True(t, obj.ObjectPushInt("a", 1))
	require.True(t, obj.ObjectPushInt("b", 2))
	require.True(t, obj.ObjectPushInt("c", 3))

	require.True(t, obj.ObjectRemove(1))
	assert.Equal(t, 2, obj.ObjectLen())
	assert.Equal(t, "c", obj.ObjectIndex(1).Key())

	require.True(t, obj.ObjectRemoveByKey("a", false))
	assert.Equal(t, 1, obj.ObjectLen())
	assert.False(t, obj.ObjectRemoveByKey("zz", false))

	require.True(t, obj.ObjectClear())
	assert.Equal(t, 0, obj.ObjectLen())
}

func TestTransformPreservesParent(t *testing.T) {
	arr := jsondom.NewArray()
	require.True(t, arr.ArrayPushInt(1))

	child := arr.ArrayIndex(0)
	require.True(t, child.TransformIntoDouble(3.14))

	assert.Equal(t, jsondom.Double, child.Type())
	got, ok := child.DoubleValue()
	require.True(t, ok)
	assert.Equal(t, 3.14, got)
	assert.True(t, child.HasParent())
	assert.Equal(t, jsondom.Array, child.ParentKind())
}

func TestTransformVariants(t *testing.T) {
	n := jsondom.NewNull()

	require.True(t, n.TransformIntoInt(5))
	assert.Equal(t, jsondom.Integer, n.Type())

	require.True(t, n.TransformIntoBool(true))
	assert.Equal(t, jsondom.Bool, n.Type())

	require.True(t, n.TransformIntoString("text"))
	assert.Equal(t, jsondom.String, n.Type())

	require.True(t, n.TransformIntoRef([]byte("ref")))
	assert.Equal(t, jsondom.Reference, n.Type())

	require.True(t, n.TransformIntoEmptyArray())
	assert.Equal(t, jsondom.Array, n.Type())
	assert.Equal(t, 0, n.ArrayLen())

	require.True(t, n.TransformIntoEmptyObject())
	assert.Equal(t, jsondom.Object, n.Type())
	assert.Equal(t, 0, n.ObjectLen())

	require.True(t, n.TransformIntoNull())
	assert.Equal(t, jsondom.Null, n.Type())
}

func TestTransformRejectsInvalidString(t *testing.T) {
	n := jsondom.NewInteger(1)
	assert.False(t, n.TransformIntoString("bad \x04"))
	// Failed transform leaves the node unchanged.
	assert.Equal(t, jsondom.Integer, n.Type())
	got, _ := n.IntValue()
	assert.Equal(t, int64(1), got)
}

func TestTransformContainerChildDiscardSubtree(t *testing.T) {
	doc := jsondom.Parse([]byte(`{"a":{"deep":[1,2,3]}}`))
	inner := doc.ObjectIndex(0).Value()
	require.Equal(t, jsondom.Object, inner.Type())

	require.True(t, inner.TransformIntoInt(9))
	out, err := jsondom.Serialize(&doc)
	require.NoError(t, err)
	assert.Equal(t, `{"a":9}`, string(out))
}

func TestTransformDroppedFails(t *testing.T) {
	n := jsondom.NewInteger(1)
	n.Drop()
	require.Equal(t, jsondom.Dropped, n.Type())
	assert.False(t, n.TransformIntoInt(2))
}
