package jsondom

import "bytes"

// Equal reports structural equality of two subtrees. Children are
// compared in container order, Integer and Double never compare equal
// to each other, and String and Reference nodes compare by content
// regardless of ownership.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}

	ka, kb := a.kind, b.kind
	if ka == Reference {
		ka = String
	}
	if kb == Reference {
		kb = String
	}
	if ka != kb {
		return false
	}

	switch ka {
	case String:
		return bytes.Equal(a.bs, b.bs)
	case Integer:
		return a.i == b.i
	case Double:
		return a.f == b.f
	case Bool:
		return a.b == b.b
	case Null, None, Dropped:
		return true
	case Error:
		return a.msg == b.msg
	case Array:
		if a.arr.Len() != b.arr.Len() {
			return false
		}
		for i := 0; i < a.arr.Len(); i++ {
			if !Equal(a.arr.Index(i), b.arr.Index(i)) {
				return false
			}
		}
		return true
	case Object:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		for i := 0; i < a.obj.Len(); i++ {
			ta, tb := a.obj.Index(i), b.obj.Index(i)
			if ta.key != tb.key || !Equal(&ta.value, &tb.value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
