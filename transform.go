package jsondom

import "github.com/treewrite/jsondom/internal/vec"

// Transform-in-place operations. The old variant's owned payload is
// dropped and the node is rewritten to the new kind while the parent
// link is preserved, so a parented child can change kind without being
// removed from its container.

// transform rewrites n to next, keeping the parent link. next must not
// carry a parent of its own.
func (n *Node) transform(next Node) bool {
	if n == nil || n.kind == Dropped {
		return false
	}
	next.parent = n.parent
	n.release()
	*n = next
	return true
}

// TransformIntoInt rewrites the node as Integer(v).
func (n *Node) TransformIntoInt(v int64) bool {
	return n.transform(NewInteger(v))
}

// TransformIntoDouble rewrites the node as Double(v).
func (n *Node) TransformIntoDouble(v float64) bool {
	return n.transform(NewDouble(v))
}

// TransformIntoBool rewrites the node as Bool(v).
func (n *Node) TransformIntoBool(v bool) bool {
	return n.transform(NewBool(v))
}

// TransformIntoNull rewrites the node as Null.
func (n *Node) TransformIntoNull() bool {
	return n.transform(NewNull())
}

// TransformIntoString rewrites the node as a String owning a copy of s.
// An invalid string leaves the node unchanged.
func (n *Node) TransformIntoString(s string) bool {
	next := NewString(s)
	if next.kind == Error {
		return false
	}
	return n.transform(next)
}

// TransformIntoRef rewrites the node as a Reference aliasing b. An
// invalid string leaves the node unchanged.
func (n *Node) TransformIntoRef(b []byte) bool {
	next := NewRef(b)
	if next.kind == Error {
		return false
	}
	return n.transform(next)
}

// TransformIntoEmptyArray rewrites the node as an empty Array.
func (n *Node) TransformIntoEmptyArray() bool {
	return n.transform(Node{kind: Array, arr: vec.New[Node]()})
}

// TransformIntoEmptyObject rewrites the node as an empty Object.
func (n *Node) TransformIntoEmptyObject() bool {
	return n.transform(Node{kind: Object, obj: vec.New[Tuple]()})
}
