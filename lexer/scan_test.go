package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteIterNextAndPeek(t *testing.T) {
	it := NewByteIter([]byte("ab"))

	assert.Equal(t, int('a'), it.Peek())
	assert.Equal(t, 0, it.Offset())

	assert.Equal(t, int('a'), it.Next())
	assert.Equal(t, int('b'), it.Peek())
	assert.Equal(t, 1, it.Offset())

	assert.Equal(t, int('b'), it.Next())
	assert.Equal(t, -1, it.Peek())
	assert.Equal(t, -1, it.Next())
	assert.Equal(t, 2, it.Offset())
}

func TestByteIterStateTracking(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  State
	}{
		{
			name:  "columns advance",
			input: "abc",
			want:  State{Line: 1, Column: 4, Depth: 1},
		},
		{
			name:  "newline resets column",
			input: "ab\ncd",
			want:  State{Line: 2, Column: 3, Depth: 1},
		},
		{
			name:  "braces and brackets nest",
			input: "{[{",
			want:  State{Line: 1, Column: 4, Depth: 4},
		},
		{
			name:  "closers unwind",
			input: "{[]}",
			want:  State{Line: 1, Column: 5, Depth: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := NewByteIter([]byte(tt.input))
			for it.Next() != -1 {
			}
			assert.Equal(t, tt.want, it.State())
		})
	}
}

func TestByteIterInStringSuspendsTracking(t *testing.T) {
	it := NewByteIter([]byte("{\n["))
	it.state.InString = true
	for it.Next() != -1 {
	}

	st := it.State()
	assert.Equal(t, 1, st.Line)
	assert.Equal(t, 1, st.Depth)
	assert.Equal(t, 4, st.Column)
}

func TestByteIterAdvance(t *testing.T) {
	it := NewByteIter([]byte("abcdef"))

	assert.Equal(t, int('c'), it.Advance(3))
	assert.Equal(t, 3, it.Offset())

	// Advancing past the end stops at EOF.
	assert.Equal(t, -1, it.Advance(10))
	assert.Equal(t, 6, it.Offset())
}

func TestByteIterDrain(t *testing.T) {
	it := NewByteIter([]byte("abc"))
	it.Drain()
	assert.Equal(t, -1, it.Next())
	assert.Equal(t, 3, it.Offset())
}

func TestByteIterDepthAbove(t *testing.T) {
	t.Run("resumes after the enclosing composite", func(t *testing.T) {
		input := []byte(`[xx],1`)
		it := NewByteIter(input)
		require.Equal(t, int('['), it.Next()) // depth now 2

		it.DepthAbove()
		assert.Equal(t, int(','), it.Peek())
	})

	t.Run("drains at top level", func(t *testing.T) {
		it := NewByteIter([]byte("abc"))
		it.DepthAbove()
		assert.Equal(t, -1, it.Peek())
	})
}
