package jsondom

// Object operations. Objects are ordered (key, value) tuple sequences;
// insertion order is canonical until a sort reorders it. Duplicate keys
// are permitted. Lookups take a sorted flag: pass true only after
// ObjectSort (or an ObjectSortBy with the same ordering the lookup
// assumes) to get the binary-search fast path.

func (n *Node) isObject() bool {
	return n != nil && n.kind == Object && n.obj != nil
}

// objectInsertValue validates the key, links the freshly constructed
// child and stores the tuple. On storage failure the child is released
// before reporting failure.
func (n *Node) objectInsertValue(key string, child Node, index int, push bool) bool {
	if child.kind == Error || !validString([]byte(key)) {
		child.release()
		return false
	}
	child.parent = parentRef{obj: n.obj, kind: Object}
	tuple := Tuple{key: key, value: child}

	var err error
	if push {
		err = n.obj.Push(tuple)
	} else {
		err = n.obj.Insert(index, tuple)
	}
	if err != nil {
		child.release()
		return false
	}
	return true
}

// ObjectPushString appends a (key, string) tuple.
func (n *Node) ObjectPushString(key, s string) bool {
	return n.isObject() && n.objectInsertValue(key, NewString(s), 0, true)
}

// ObjectInsertString inserts a (key, string) tuple at index.
func (n *Node) ObjectInsertString(key, s string, index int) bool {
	return n.isObject() && n.objectInsertValue(key, NewString(s), index, false)
}

// ObjectPushRef appends a (key, reference) tuple aliasing b.
func (n *Node) ObjectPushRef(key string, b []byte) bool {
	return n.isObject() && n.objectInsertValue(key, NewRef(b), 0, true)
}

// ObjectInsertRef inserts a (key, reference) tuple at index.
func (n *Node) ObjectInsertRef(key string, b []byte, index int) bool {
	return n.isObject() && n.objectInsertValue(key, NewRef(b), index, false)
}

// ObjectPushInt appends a (key, integer) tuple.
func (n *Node) ObjectPushInt(key string, v int64) bool {
	return n.isObject() && n.objectInsertValue(key, NewInteger(v), 0, true)
}

// ObjectInsertInt inserts a (key, integer) tuple at index.
func (n *Node) ObjectInsertInt(key string, v int64, index int) bool {
	return n.isObject() && n.objectInsertValue(key, NewInteger(v), index, false)
}

// ObjectPushDouble appends a (key, double) tuple.
func (n *Node) ObjectPushDouble(key string, v float64) bool {
	return n.isObject() && n.objectInsertValue(key, NewDouble(v), 0, true)
}

// ObjectInsertDouble inserts a (key, double) tuple at index.
func (n *Node) ObjectInsertDouble(key string, v float64, index int) bool {
	return n.isObject() && n.objectInsertValue(key, NewDouble(v), index, false)
}

// ObjectPushBool appends a (key, boolean) tuple.
func (n *Node) ObjectPushBool(key string, v bool) bool {
	return n.isObject() && n.objectInsertValue(key, NewBool(v), 0, true)
}

// ObjectInsertBool inserts a (key, boolean) tuple at index.
func (n *Node) ObjectInsertBool(key string, v bool, index int) bool {
	return n.isObject() && n.objectInsertValue(key, NewBool(v), index, false)
}

// ObjectPushNull appends a (key, null) tuple.
func (n *Node) ObjectPushNull(key string) bool {
	return n.isObject() && n.objectInsertValue(key, NewNull(), 0, true)
}

// ObjectInsertNull inserts a (key, null) tuple at index.
func (n *Node) ObjectInsertNull(key string, index int) bool {
	return n.isObject() && n.objectInsertValue(key, NewNull(), index, false)
}

// objectInsertElement adopts an existing orphan under key. The parent
// link is set on the caller's handle before storage; on failure it is
// rolled back and the orphan is untouched.
func (n *Node) objectInsertElement(key string, el *Node, index int, push bool) bool {
	if !n.isObject() || el == nil || el.HasParent() || !validString([]byte(key)) {
		return false
	}
	el.parent = parentRef{obj: n.obj, kind: Object}
	tuple := Tuple{key: key, value: *el}

	var err error
	if push {
		err = n.obj.Push(tuple)
	} else {
		err = n.obj.Insert(index, tuple)
	}
	if err != nil {
		el.parent = parentRef{}
		return false
	}
	return true
}

// ObjectPushElement appends an existing orphan node under key, taking
// ownership. Fails when the element already has a parent.
func (n *Node) ObjectPushElement(key string, el *Node) bool {
	return n.objectInsertElement(key, el, 0, true)
}

// ObjectInsertElement inserts an existing orphan node under key at
// index, taking ownership.
func (n *Node) ObjectInsertElement(key string, el *Node, index int) bool {
	return n.objectInsertElement(key, el, index, false)
}

// ObjectPop removes the last tuple and returns it to the caller with
// the value's parent link cleared.
func (n *Node) ObjectPop() (Tuple, bool) {
	if !n.isObject() {
		return Tuple{}, false
	}
	tuple, ok := n.obj.Pop()
	if !ok {
		return Tuple{}, false
	}
	tuple.value.parent = parentRef{}
	return tuple, true
}

// ObjectRemove drops the tuple at index and shifts the tail left.
func (n *Node) ObjectRemove(index int) bool {
	if !n.isObject() {
		return false
	}
	return n.obj.Remove(index, dropTuple)
}

// ObjectRemoveByKey drops the first tuple whose key equals key.
func (n *Node) ObjectRemoveByKey(key string, sorted bool) bool {
	if !n.isObject() {
		return false
	}
	probe := Tuple{key: key}
	return n.obj.RemoveByKey(&probe, cmpTupleKeys, dropTuple, sorted)
}

func dropTuple(t *Tuple) {
	t.key = ""
	t.value.release()
}

// ObjectIndex returns the tuple at index, or nil.
func (n *Node) ObjectIndex(index int) *Tuple {
	if !n.isObject() {
		return nil
	}
	return n.obj.Index(index)
}

// ObjectIndexByKey returns the first tuple whose key equals key, or
// nil.
func (n *Node) ObjectIndexByKey(key string, sorted bool) *Tuple {
	if !n.isObject() {
		return nil
	}
	probe := Tuple{key: key}
	return n.obj.GetByKey(&probe, cmpTupleKeys, sorted)
}

// ObjectContains reports whether a tuple with the given key exists.
func (n *Node) ObjectContains(key string, sorted bool) bool {
	if !n.isObject() {
		return false
	}
	probe := Tuple{key: key}
	return n.obj.Contains(&probe, cmpTupleKeys, sorted)
}

// ObjectLen returns the tuple count, zero for non-objects.
func (n *Node) ObjectLen() int {
	if !n.isObject() {
		return 0
	}
	return n.obj.Len()
}

// ObjectClear drops every tuple.
func (n *Node) ObjectClear() bool {
	if !n.isObject() {
		return false
	}
	n.obj.Clear(dropTuple)
	return true
}

// ObjectSort reorders tuples by key, lexicographically ascending.
// Values travel with their keys.
func (n *Node) ObjectSort() bool {
	return n.ObjectSortBy(cmpTupleKeys)
}

// ObjectSortBy reorders tuples with the caller's comparator.
func (n *Node) ObjectSortBy(cmp func(a, b *Tuple) int) bool {
	if !n.isObject() || cmp == nil {
		return false
	}
	n.obj.Sort(cmp)
	return true
}

// ObjectIsSorted reports whether the tuples are in ascending key order.
func (n *Node) ObjectIsSorted() bool {
	return n.ObjectIsSortedBy(cmpTupleKeys)
}

// ObjectIsSortedBy reports whether the tuples match the comparator's
// ordering.
func (n *Node) ObjectIsSortedBy(cmp func(a, b *Tuple) int) bool {
	if !n.isObject() || cmp == nil {
		return false
	}
	return n.obj.IsSorted(cmp)
}
