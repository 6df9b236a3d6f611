// Package jsondom is a JSON parser, mutable document model and
// serializer.
//
// Parse builds a tree of Node values from a byte buffer; the mutation
// API grows, shrinks and rewrites the tree in place; Serialize renders
// any subtree back to JSON text. Every child node carries a back
// reference to its container, so nodes obtained from lookups can be
// inspected and transformed without walking down from the root.
package jsondom

import (
	"strings"

	"github.com/treewrite/jsondom/internal/vec"
)

// Kind identifies the variant a Node holds.
type Kind int8

const (
	None Kind = iota // uninitialized
	Error
	Object
	Array
	String    // owned bytes
	Reference // caller-owned bytes
	Integer
	Double
	Bool
	Null
	Dropped // root released by Drop
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Error:
		return "error"
	case Object:
		return "object"
	case Array:
		return "array"
	case String:
		return "string"
	case Reference:
		return "reference"
	case Integer:
		return "integer"
	case Double:
		return "double"
	case Bool:
		return "bool"
	case Null:
		return "null"
	case Dropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// parentRef links a child to the vector of the container that holds it.
// The pointer identifies the container's child storage (which survives
// growth); kind disambiguates the interpretation.
type parentRef struct {
	arr  *vec.Vector[Node]
	obj  *vec.Vector[Tuple]
	kind Kind
}

func (p parentRef) some() bool {
	return p.arr != nil || p.obj != nil
}

// Node is one tagged value in a document tree. The zero value is a None
// node. Nodes are created by Parse or by the New* constructors, both of
// which return orphans; they acquire a parent only through container
// insertion.
type Node struct {
	kind   Kind
	msg    string // Error: static message
	bs     []byte // String: owned copy; Reference: caller-owned alias
	i      int64
	f      float64
	b      bool
	arr    *vec.Vector[Node]
	obj    *vec.Vector[Tuple]
	parent parentRef
}

// Tuple is one (key, value) entry of an object. The key is an owned
// string; the value's parent link, when set, points at the enclosing
// tuple vector.
type Tuple struct {
	key   string
	value Node
}

// Key returns the tuple key.
func (t *Tuple) Key() string {
	if t == nil {
		return ""
	}
	return t.key
}

// Value returns the stored node.
func (t *Tuple) Value() *Node {
	if t == nil {
		return nil
	}
	return &t.value
}

func errorNode(msg string) Node {
	return Node{kind: Error, msg: msg}
}

// NewInteger returns an orphan integer node.
func NewInteger(n int64) Node {
	return Node{kind: Integer, i: n}
}

// NewDouble returns an orphan double node.
func NewDouble(f float64) Node {
	return Node{kind: Double, f: f}
}

// NewBool returns an orphan boolean node.
func NewBool(b bool) Node {
	return Node{kind: Bool, b: b}
}

// NewNull returns an orphan null node.
func NewNull() Node {
	return Node{kind: Null}
}

// NewString returns an orphan string node owning a copy of s. When s is
// not a valid JSON string body an Error node is returned instead.
func NewString(s string) Node {
	if !validString([]byte(s)) {
		return errorNode(msgInvalidString)
	}
	return Node{kind: String, bs: []byte(s)}
}

// NewRef returns an orphan reference node aliasing b. The caller must
// keep b alive and unchanged for the node's lifetime. When b is not a
// valid JSON string body an Error node is returned instead.
func NewRef(b []byte) Node {
	if !validString(b) {
		return errorNode(msgInvalidString)
	}
	return Node{kind: Reference, bs: b}
}

// NewArray returns an orphan empty array node.
func NewArray() Node {
	return Node{kind: Array, arr: vec.New[Node]()}
}

// NewObject returns an orphan empty object node.
func NewObject() Node {
	return Node{kind: Object, obj: vec.New[Tuple]()}
}

// Type returns the node's kind, or None for a nil node.
func (n *Node) Type() Kind {
	if n == nil {
		return None
	}
	return n.kind
}

// HasParent reports whether the node is held by a container.
func (n *Node) HasParent() bool {
	return n != nil && n.parent.some()
}

// ParentKind returns the kind of the containing node, or None for a
// root.
func (n *Node) ParentKind() Kind {
	if n == nil || !n.parent.some() {
		return None
	}
	return n.parent.kind
}

// ErrorMessage returns the message of an Error node.
func (n *Node) ErrorMessage() (string, bool) {
	if n == nil || n.kind != Error {
		return "", false
	}
	return n.msg, true
}

// IntValue returns the payload of an Integer node.
func (n *Node) IntValue() (int64, bool) {
	if n == nil || n.kind != Integer {
		return 0, false
	}
	return n.i, true
}

// DoubleValue returns the payload of a Double node.
func (n *Node) DoubleValue() (float64, bool) {
	if n == nil || n.kind != Double {
		return 0, false
	}
	return n.f, true
}

// BoolValue returns the payload of a Bool node.
func (n *Node) BoolValue() (bool, bool) {
	if n == nil || n.kind != Bool {
		return false, false
	}
	return n.b, true
}

// StringValue returns a copy of the text of a String or Reference node.
func (n *Node) StringValue() (string, bool) {
	if n == nil || (n.kind != String && n.kind != Reference) {
		return "", false
	}
	return string(n.bs), true
}

// StringRef returns the payload bytes of a String or Reference node
// without copying. Mutating the result of a String node corrupts the
// document.
func (n *Node) StringRef() ([]byte, bool) {
	if n == nil || (n.kind != String && n.kind != Reference) {
		return nil, false
	}
	return n.bs, true
}

// SetInt replaces the payload of an Integer node.
func (n *Node) SetInt(v int64) bool {
	if n == nil || n.kind != Integer {
		return false
	}
	n.i = v
	return true
}

// SetDouble replaces the payload of a Double node.
func (n *Node) SetDouble(v float64) bool {
	if n == nil || n.kind != Double {
		return false
	}
	n.f = v
	return true
}

// SetBool replaces the payload of a Bool node.
func (n *Node) SetBool(v bool) bool {
	if n == nil || n.kind != Bool {
		return false
	}
	n.b = v
	return true
}

// SetString replaces the payload of a String node with a validated copy
// of s.
func (n *Node) SetString(s string) bool {
	if n == nil || n.kind != String || !validString([]byte(s)) {
		return false
	}
	n.bs = []byte(s)
	return true
}

// SetRef replaces the payload of a Reference node with an alias of b.
func (n *Node) SetRef(b []byte) bool {
	if n == nil || n.kind != Reference || !validString(b) {
		return false
	}
	n.bs = b
	return true
}

// Drop releases the node. A root node's subtree is released and the
// handle becomes Dropped. A parented node is replaced in place by a
// Null node so the container's length is preserved; use the container's
// remove or pop operations to actually shrink it.
func (n *Node) Drop() {
	if n == nil || n.kind == Dropped {
		return
	}
	if n.parent.some() {
		p := n.parent
		n.release()
		*n = Node{kind: Null, parent: p}
		return
	}
	n.release()
	*n = Node{kind: Dropped}
}

// release drops owned payload and, for containers, the whole subtree.
// Reference bytes are caller-owned and left untouched.
func (n *Node) release() {
	switch n.kind {
	case String:
		n.bs = nil
	case Array:
		if n.arr != nil {
			n.arr.Clear(func(c *Node) { c.release() })
			n.arr = nil
		}
	case Object:
		if n.obj != nil {
			n.obj.Clear(func(t *Tuple) {
				t.key = ""
				t.value.release()
			})
			n.obj = nil
		}
	}
}

func cmpTupleKeys(a, b *Tuple) int {
	return strings.Compare(a.key, b.key)
}
