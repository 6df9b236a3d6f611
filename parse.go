package jsondom

import (
	"errors"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/treewrite/jsondom/lexer"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Parse builds a document tree from buf. The input is borrowed for the
// duration of the call and may be discarded afterwards: every string in
// the tree is an owned copy. A malformed document yields an Error node;
// inspect it with ErrorMessage.
//
// The accepted grammar is RFC 8259 with these deviations: an exponent
// marker must be followed by an explicit '+' or '-' sign; whitespace is
// space, tab and newline only (a carriage return is rejected); and any
// text after the root value is ignored.
func Parse(buf []byte) Node {
	if len(buf) == 0 {
		return errorNode("empty input")
	}
	p := &parser{lx: lexer.New(buf), input: buf}
	p.lx.Next() // prime the look-ahead
	p.lx.Skip(lexer.WS, lexer.NL)
	return p.node()
}

type parser struct {
	lx    *lexer.Lexer
	input []byte
}

// node dispatches on the look-ahead token.
func (p *parser) node() Node {
	switch p.lx.Peek().Type {
	case lexer.LCURLY:
		return p.object()
	case lexer.LBRACK:
		return p.array()
	case lexer.STRING:
		return p.string()
	case lexer.HYPHEN, lexer.ZERO, lexer.DIGIT:
		return p.number()
	case lexer.TRUE, lexer.FALSE:
		return p.boolean()
	case lexer.NULL:
		return p.null()
	default:
		return errorNode("invalid token")
	}
}

func (p *parser) object() Node {
	objNode := NewObject()
	table := objNode.obj

	p.lx.Next() // consume '{'
	p.lx.Skip(lexer.WS, lexer.NL)

	if p.lx.Peek().Type == lexer.RCURLY {
		p.lx.Next()
		return objNode
	}

	fail := func() Node {
		objNode.release()
		return errorNode("failed to parse json object")
	}

	start := true
	for {
		if !start {
			p.lx.Next() // consume ','
			p.lx.Skip(lexer.WS, lexer.NL)
		}
		start = false

		tok := p.lx.Peek()
		if tok.Type != lexer.STRING || !validString(tok.Lex) {
			return fail()
		}
		key := string(tok.Lex)
		p.lx.Next()
		p.lx.Skip(lexer.WS)

		if p.lx.Peek().Type != lexer.COLON {
			return fail()
		}
		p.lx.Next()
		p.lx.Skip(lexer.WS)

		value := p.node()
		if value.kind == Error {
			return fail()
		}

		value.parent = parentRef{obj: table, kind: Object}
		if err := table.Push(Tuple{key: key, value: value}); err != nil {
			value.release()
			return fail()
		}

		p.lx.Skip(lexer.WS, lexer.NL)
		if p.lx.Peek().Type != lexer.COMMA {
			break
		}
	}

	if p.lx.Peek().Type != lexer.RCURLY {
		return fail()
	}
	p.lx.Next()
	return objNode
}

func (p *parser) array() Node {
	arrNode := NewArray()
	elems := arrNode.arr

	p.lx.Next() // consume '['
	p.lx.Skip(lexer.WS, lexer.NL)

	if p.lx.Peek().Type == lexer.RBRACK {
		p.lx.Next()
		return arrNode
	}

	fail := func() Node {
		arrNode.release()
		return errorNode("failed to parse json array")
	}

	start := true
	for {
		if !start {
			p.lx.Next() // consume ','
			p.lx.Skip(lexer.WS, lexer.NL)
		}
		start = false

		elem := p.node()
		if elem.kind == Error {
			return fail()
		}

		elem.parent = parentRef{arr: elems, kind: Array}
		if err := elems.Push(elem); err != nil {
			elem.release()
			return fail()
		}

		p.lx.Skip(lexer.WS, lexer.NL)
		if p.lx.Peek().Type != lexer.COMMA {
			break
		}
	}

	if p.lx.Peek().Type != lexer.RBRACK {
		return fail()
	}
	p.lx.Next()
	return arrNode
}

func (p *parser) string() Node {
	tok := p.lx.Peek()
	if !validString(tok.Lex) {
		p.lx.Iter().DepthAbove()
		return errorNode("failed to parse json string")
	}
	p.lx.Next()
	return Node{kind: String, bs: copyString(tok.Lex)}
}

// number assembles a numeric value from the run of single-byte tokens
// under the cursor. Grammar: optional '-', then either a lone '0' or a
// nonzero digit followed by any digits, optional '.' fraction with at
// least one digit, optional exponent with a mandatory sign and at least
// one digit. A fraction makes the value a Double, otherwise the parsed
// double is truncated to an Integer.
func (p *parser) number() Node {
	tok := p.lx.Peek()
	begin := tok.Off

	fail := func() Node {
		p.lx.Iter().DepthAbove()
		return errorNode("failed to parse json number")
	}

	negative := false
	integer := false
	fraction := false

	if tok.Type == lexer.HYPHEN {
		negative = true
		tok = p.lx.Next()
	}

	switch tok.Type {
	case lexer.ZERO:
		integer = true
		tok = p.lx.Next()
		if tok.Type == lexer.DIGIT || tok.Type == lexer.ZERO {
			return fail()
		}
	case lexer.DIGIT:
		integer = true
		p.lx.Next()
		p.lx.Skip(lexer.DIGIT, lexer.ZERO)
	default:
		if negative {
			return fail()
		}
	}

	if p.lx.Peek().Type == lexer.DOT {
		if !integer {
			return fail()
		}
		p.lx.Next()
		if tok = p.lx.Peek(); tok.Type == lexer.DIGIT || tok.Type == lexer.ZERO {
			fraction = true
			p.lx.Skip(lexer.DIGIT, lexer.ZERO)
		}
		if !fraction {
			return fail()
		}
	}

	if p.lx.Peek().Type == lexer.EXP {
		if tok = p.lx.Next(); tok.Type != lexer.HYPHEN && tok.Type != lexer.PLUS {
			return fail() // sign is mandatory after the exponent marker
		}
		if tok = p.lx.Next(); tok.Type != lexer.DIGIT && tok.Type != lexer.ZERO {
			return fail()
		}
		p.lx.Skip(lexer.DIGIT, lexer.ZERO)
	}

	end := p.lx.Peek().Off
	text := string(p.input[begin:end])

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) {
			return fail()
		}
		// Overflow is non-fatal: keep the clamped result and warn.
		logger.Warn("json number overflow", "number", text)
	}

	if fraction {
		return NewDouble(value)
	}
	return NewInteger(truncateToInt(value))
}

// truncateToInt converts a fraction-less numeric value, clamping at the
// int64 range so an overflowed conversion stays defined.
func truncateToInt(f float64) int64 {
	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}

func (p *parser) boolean() Node {
	tok := p.lx.Peek()
	p.lx.Next()
	return NewBool(tok.Type == lexer.TRUE)
}

func (p *parser) null() Node {
	p.lx.Next()
	return NewNull()
}
