package lexer

// eof is returned by Peek and Next once the input is exhausted.
const eof = -1

// State is the positional bookkeeping a ByteIter maintains while the
// cursor advances. Depth counts brace/bracket nesting, starting at 1 for
// the top level. InString suspends depth and line accounting while the
// lexer scans a string literal, so that structural bytes inside the
// literal do not perturb the counters.
type State struct {
	Line     int
	Column   int
	Depth    int
	InString bool
}

// ByteIter is a positioned cursor over a caller-owned byte slice. It owns
// no bytes; the input must outlive the iterator and every lexeme sliced
// from it.
type ByteIter struct {
	input []byte
	pos   int
	state State
}

// NewByteIter returns an iterator positioned at the first byte of input.
func NewByteIter(input []byte) *ByteIter {
	return &ByteIter{
		input: input,
		state: State{Line: 1, Column: 1, Depth: 1},
	}
}

// Peek returns the byte under the cursor without consuming it, or -1 at
// the end of input.
func (it *ByteIter) Peek() int {
	if it.pos >= len(it.input) {
		return eof
	}
	return int(it.input[it.pos])
}

// Next consumes and returns the byte under the cursor, updating the
// iterator state, or returns -1 at the end of input.
func (it *ByteIter) Next() int {
	if it.pos >= len(it.input) {
		return eof
	}
	c := it.input[it.pos]
	it.pos++
	it.update(c)
	return int(c)
}

// Advance consumes up to n bytes and returns the last byte consumed, or
// -1 if the input ran out first.
func (it *ByteIter) Advance(n int) int {
	c := it.Peek()
	for ; n > 0; n-- {
		if c = it.Next(); c == eof {
			break
		}
	}
	return c
}

// Offset is the byte offset of the cursor: the index the next call to
// Next would consume. At the end of input it equals len(input).
func (it *ByteIter) Offset() int {
	return it.pos
}

// Input returns the underlying byte slice.
func (it *ByteIter) Input() []byte {
	return it.input
}

// State returns a copy of the current iterator state.
func (it *ByteIter) State() State {
	return it.state
}

// Drain positions the iterator at the end of input.
func (it *ByteIter) Drain() {
	it.pos = len(it.input)
}

// DepthAbove advances the cursor until the nesting depth decreases by
// one, draining the input when already at the top level. Used to resume
// scanning after a malformed value inside a composite.
func (it *ByteIter) DepthAbove() {
	if it.state.Depth < 2 {
		it.Drain()
		return
	}
	target := it.state.Depth - 1
	for it.state.Depth != target {
		if it.Next() == eof {
			return
		}
	}
}

func (it *ByteIter) update(c byte) {
	switch c {
	case '{', '[':
		if !it.state.InString {
			it.state.Depth++
		}
		it.state.Column++
	case '}', ']':
		if !it.state.InString {
			it.state.Depth--
		}
		it.state.Column++
	case '\n':
		if !it.state.InString {
			it.state.Line++
			it.state.Column = 1
		} else {
			it.state.Column++
		}
	default:
		it.state.Column++
	}
}
