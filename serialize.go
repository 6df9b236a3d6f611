package jsondom

import (
	"bytes"
	"errors"
	"math"
	"strconv"
)

var (
	// ErrNotSerializable reports an Error, None or Dropped node.
	ErrNotSerializable = errors.New("jsondom: node is not serializable")
	// ErrBufferFull reports a fixed buffer too small for the output.
	ErrBufferFull = errors.New("jsondom: buffer full")
	// ErrBufferTooBig reports output past the allocation ceiling.
	ErrBufferTooBig = errors.New("jsondom: buffer too big")
	// ErrNumberNotFinite reports a NaN or infinite Double; JSON has no
	// rendering for them.
	ErrNumberNotFinite = errors.New("jsondom: number is not finite")
)

const defaultBufSize = 512

// serializer emits JSON text into a growable byte buffer. One byte of
// headroom past the written region is always reserved.
type serializer struct {
	buf          []byte
	offset       int
	depth        int
	expand       bool
	userProvided bool
}

// Serialize renders the subtree rooted at n into a library-owned
// buffer, growing it as needed.
func Serialize(n *Node) ([]byte, error) {
	return SerializeWithSize(n, defaultBufSize, true)
}

// SerializeWithSize renders n into a library-owned buffer of the given
// initial size. With expand unset, output longer than size-1 bytes fails
// with ErrBufferFull (one byte of headroom is reserved).
func SerializeWithSize(n *Node, size int, expand bool) ([]byte, error) {
	if size <= 0 {
		size = defaultBufSize
	}
	s := &serializer{buf: make([]byte, size), expand: expand}
	return s.root(n)
}

// SerializeWithBuffer renders n into the caller's buffer. With expand
// unset the output must fit in len(buf)-1 bytes, one byte of headroom
// being reserved; with expand set a larger
// buffer is allocated when needed and returned in its place — the
// original is then left untouched. The returned slice must not alias
// the parse input of any Reference node in the subtree.
func SerializeWithBuffer(n *Node, buf []byte, expand bool) ([]byte, error) {
	if len(buf) == 0 {
		return nil, ErrBufferFull
	}
	s := &serializer{buf: buf, expand: expand, userProvided: true}
	return s.root(n)
}

func (s *serializer) root(n *Node) ([]byte, error) {
	switch n.Type() {
	case Error, None, Dropped:
		return nil, ErrNotSerializable
	}
	if err := s.node(n); err != nil {
		// A library-owned buffer is discarded on failure; a caller
		// provided one is never touched beyond what was written.
		if !s.userProvided {
			s.buf = nil
		}
		return nil, err
	}
	return s.buf[:s.offset], nil
}

// ensure guarantees room for needed bytes plus one byte of headroom at
// the current offset, growing the buffer when allowed.
func (s *serializer) ensure(needed int) error {
	if needed > math.MaxInt32 {
		return ErrBufferTooBig
	}
	total := s.offset + needed + 1
	if total <= len(s.buf) {
		return nil
	}
	if !s.expand {
		return ErrBufferFull
	}

	var size int
	switch {
	case total > math.MaxInt32:
		return ErrBufferTooBig
	case total > math.MaxInt32/2:
		size = math.MaxInt32
	default:
		size = total * 2
	}

	grown := make([]byte, size)
	copy(grown, s.buf[:s.offset])
	s.buf = grown
	return nil
}

func (s *serializer) write(b []byte) error {
	if err := s.ensure(len(b)); err != nil {
		return err
	}
	s.offset += copy(s.buf[s.offset:], b)
	return nil
}

func (s *serializer) writeByte(c byte) error {
	if err := s.ensure(1); err != nil {
		return err
	}
	s.buf[s.offset] = c
	s.offset++
	return nil
}

func (s *serializer) node(n *Node) error {
	switch n.kind {
	case String, Reference:
		return s.text(n.bs)
	case Integer:
		var tmp [20]byte
		return s.write(strconv.AppendInt(tmp[:0], n.i, 10))
	case Double:
		return s.double(n.f)
	case Bool:
		if n.b {
			return s.write([]byte("true"))
		}
		return s.write([]byte("false"))
	case Null:
		return s.write([]byte("null"))
	case Array:
		return s.array(n)
	case Object:
		return s.object(n)
	default:
		return ErrNotSerializable
	}
}

// text emits a quoted string. The bytes are written verbatim: they were
// validated at parse time or by the constructing operation.
func (s *serializer) text(b []byte) error {
	if err := s.writeByte('"'); err != nil {
		return err
	}
	if err := s.write(b); err != nil {
		return err
	}
	return s.writeByte('"')
}

// double emits the shortest representation that re-parses to the same
// value and kind: a fraction or a signed exponent is always present so
// the text never reads back as an integer.
func (s *serializer) double(f float64) error {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return ErrNumberNotFinite
	}
	var tmp [32]byte
	out := strconv.AppendFloat(tmp[:0], f, 'g', -1, 64)
	if i := bytes.IndexByte(out, 'e'); i >= 0 {
		if !bytes.Contains(out[:i], []byte(".")) {
			mantissa := append([]byte{}, out[:i]...)
			mantissa = append(mantissa, '.', '0')
			out = append(mantissa, out[i:]...)
		}
	} else if !bytes.Contains(out, []byte(".")) {
		out = append(out, '.', '0')
	}
	return s.write(out)
}

func (s *serializer) array(n *Node) error {
	if err := s.writeByte('['); err != nil {
		return err
	}
	s.depth++
	count := n.arr.Len()
	for i := 0; i < count; i++ {
		if err := s.node(n.arr.Index(i)); err != nil {
			return err
		}
		if i+1 < count {
			if err := s.writeByte(','); err != nil {
				return err
			}
		}
	}
	s.depth--
	return s.writeByte(']')
}

func (s *serializer) object(n *Node) error {
	if err := s.writeByte('{'); err != nil {
		return err
	}
	s.depth++
	count := n.obj.Len()
	for i := 0; i < count; i++ {
		tuple := n.obj.Index(i)
		if err := s.text([]byte(tuple.key)); err != nil {
			return err
		}
		if err := s.writeByte(':'); err != nil {
			return err
		}
		if err := s.node(&tuple.value); err != nil {
			return err
		}
		if i+1 < count {
			if err := s.writeByte(','); err != nil {
				return err
			}
		}
	}
	s.depth--
	return s.writeByte('}')
}
