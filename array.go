package jsondom

// Array operations. Every operation is type-guarded: called on a node
// that is not an Array it returns false (or nil / zero) and leaves all
// state unchanged.

func (n *Node) isArray() bool {
	return n != nil && n.kind == Array && n.arr != nil
}

// arrayInsertValue links and stores a freshly constructed child. On
// storage failure the child is fully released before reporting failure.
func (n *Node) arrayInsertValue(child Node, index int, push bool) bool {
	if child.kind == Error {
		return false
	}
	child.parent = parentRef{arr: n.arr, kind: Array}

	var err error
	if push {
		err = n.arr.Push(child)
	} else {
		err = n.arr.Insert(index, child)
	}
	if err != nil {
		child.parent = parentRef{}
		child.release()
		return false
	}
	return true
}

// ArrayPushString appends a string node owning a copy of s.
func (n *Node) ArrayPushString(s string) bool {
	return n.isArray() && n.arrayInsertValue(NewString(s), 0, true)
}

// ArrayInsertString inserts a string node at index.
func (n *Node) ArrayInsertString(s string, index int) bool {
	return n.isArray() && n.arrayInsertValue(NewString(s), index, false)
}

// ArrayPushRef appends a reference node aliasing b.
func (n *Node) ArrayPushRef(b []byte) bool {
	return n.isArray() && n.arrayInsertValue(NewRef(b), 0, true)
}

// ArrayInsertRef inserts a reference node at index.
func (n *Node) ArrayInsertRef(b []byte, index int) bool {
	return n.isArray() && n.arrayInsertValue(NewRef(b), index, false)
}

// ArrayPushInt appends an integer node.
func (n *Node) ArrayPushInt(v int64) bool {
	return n.isArray() && n.arrayInsertValue(NewInteger(v), 0, true)
}

// ArrayInsertInt inserts an integer node at index.
func (n *Node) ArrayInsertInt(v int64, index int) bool {
	return n.isArray() && n.arrayInsertValue(NewInteger(v), index, false)
}

// ArrayPushDouble appends a double node.
func (n *Node) ArrayPushDouble(v float64) bool {
	return n.isArray() && n.arrayInsertValue(NewDouble(v), 0, true)
}

// ArrayInsertDouble inserts a double node at index.
func (n *Node) ArrayInsertDouble(v float64, index int) bool {
	return n.isArray() && n.arrayInsertValue(NewDouble(v), index, false)
}

// ArrayPushBool appends a boolean node.
func (n *Node) ArrayPushBool(v bool) bool {
	return n.isArray() && n.arrayInsertValue(NewBool(v), 0, true)
}

// ArrayInsertBool inserts a boolean node at index.
func (n *Node) ArrayInsertBool(v bool, index int) bool {
	return n.isArray() && n.arrayInsertValue(NewBool(v), index, false)
}

// ArrayPushNull appends a null node.
func (n *Node) ArrayPushNull() bool {
	return n.isArray() && n.arrayInsertValue(NewNull(), 0, true)
}

// ArrayInsertNull inserts a null node at index.
func (n *Node) ArrayInsertNull(index int) bool {
	return n.isArray() && n.arrayInsertValue(NewNull(), index, false)
}

// arrayInsertElement adopts an existing orphan. The parent link is set
// on the caller's handle before storage so the stored copy carries it;
// on failure the link is rolled back and the orphan is untouched.
func (n *Node) arrayInsertElement(el *Node, index int, push bool) bool {
	if !n.isArray() || el == nil || el.HasParent() {
		return false
	}
	el.parent = parentRef{arr: n.arr, kind: Array}

	var err error
	if push {
		err = n.arr.Push(*el)
	} else {
		err = n.arr.Insert(index, *el)
	}
	if err != nil {
		el.parent = parentRef{}
		return false
	}
	return true
}

// ArrayPushElement appends an existing orphan node, taking ownership.
// Fails when the element already has a parent.
func (n *Node) ArrayPushElement(el *Node) bool {
	return n.arrayInsertElement(el, 0, true)
}

// ArrayInsertElement inserts an existing orphan node at index, taking
// ownership.
func (n *Node) ArrayInsertElement(el *Node, index int) bool {
	return n.arrayInsertElement(el, index, false)
}

// ArrayPop removes the last element and returns it to the caller with
// its parent link cleared.
func (n *Node) ArrayPop() (Node, bool) {
	if !n.isArray() {
		return Node{}, false
	}
	child, ok := n.arr.Pop()
	if !ok {
		return Node{}, false
	}
	child.parent = parentRef{}
	return child, true
}

// ArrayRemove drops the subtree at index and shifts the tail left.
func (n *Node) ArrayRemove(index int) bool {
	if !n.isArray() {
		return false
	}
	return n.arr.Remove(index, func(c *Node) { c.release() })
}

// ArrayClear drops every element.
func (n *Node) ArrayClear() bool {
	if !n.isArray() {
		return false
	}
	n.arr.Clear(func(c *Node) { c.release() })
	return true
}

// ArrayLen returns the element count, zero for non-arrays.
func (n *Node) ArrayLen() int {
	if !n.isArray() {
		return 0
	}
	return n.arr.Len()
}

// ArrayIndex returns the element at index, or nil.
func (n *Node) ArrayIndex(index int) *Node {
	if !n.isArray() {
		return nil
	}
	return n.arr.Index(index)
}

// ArrayFront returns the first element, or nil.
func (n *Node) ArrayFront() *Node {
	if !n.isArray() {
		return nil
	}
	return n.arr.Front()
}

// ArrayBack returns the last element, or nil.
func (n *Node) ArrayBack() *Node {
	if !n.isArray() {
		return nil
	}
	return n.arr.Back()
}

// ArrayFromStrings builds an array of string nodes. Any invalid string
// aborts the build and an Error node is returned.
func ArrayFromStrings(ss []string) Node {
	arr := NewArray()
	for _, s := range ss {
		if !arr.ArrayPushString(s) {
			arr.release()
			return errorNode("failed to build array")
		}
	}
	return arr
}

// ArrayFromRefs builds an array of reference nodes aliasing the given
// slices.
func ArrayFromRefs(bs [][]byte) Node {
	arr := NewArray()
	for _, b := range bs {
		if !arr.ArrayPushRef(b) {
			arr.release()
			return errorNode("failed to build array")
		}
	}
	return arr
}

// ArrayFromInts builds an array of integer nodes.
func ArrayFromInts(vs []int64) Node {
	arr := NewArray()
	for _, v := range vs {
		if !arr.ArrayPushInt(v) {
			arr.release()
			return errorNode("failed to build array")
		}
	}
	return arr
}

// ArrayFromDoubles builds an array of double nodes.
func ArrayFromDoubles(vs []float64) Node {
	arr := NewArray()
	for _, v := range vs {
		if !arr.ArrayPushDouble(v) {
			arr.release()
			return errorNode("failed to build array")
		}
	}
	return arr
}

// ArrayFromBools builds an array of boolean nodes.
func ArrayFromBools(vs []bool) Node {
	arr := NewArray()
	for _, v := range vs {
		if !arr.ArrayPushBool(v) {
			arr.release()
			return errorNode("failed to build array")
		}
	}
	return arr
}

// ArrayFromNulls builds an array of count null nodes.
func ArrayFromNulls(count int) Node {
	arr := NewArray()
	for ; count > 0; count-- {
		if !arr.ArrayPushNull() {
			arr.release()
			return errorNode("failed to build array")
		}
	}
	return arr
}

// ArrayFromElements builds an array adopting the given orphan nodes.
// A nil or already-parented element aborts the build.
func ArrayFromElements(elems []*Node) Node {
	arr := NewArray()
	for _, el := range elems {
		if el == nil || !arr.ArrayPushElement(el) {
			arr.release()
			return errorNode("failed to build array")
		}
	}
	return arr
}
