package ako

import (
	"github.com/zalgonoise/ako/lexer"
	"github.com/zalgonoise/ako/token"
)

// parser walks a token stream, buffering one or two tokens of lookahead.
// The peek/consume shape is grounded on _examples/zalgonoise-parse's
// Tree.Peek/Tree.Next, specialized away from its generic backup-slot
// buffer since ako's grammar never needs more than two-token lookahead.
type parser struct {
	tokens []token.Token
	pos    int
}

func (p *parser) peek(offset int) *token.Token {
	i := p.pos + offset
	if i >= len(p.tokens) {
		return nil
	}
	return &p.tokens[i]
}

func (p *parser) consume() *token.Token {
	t := p.peek(0)
	if t != nil {
		p.pos++
	}
	return t
}

func isKind(t *token.Token, k token.Kind) bool {
	return t != nil && t.Kind == k
}

// Parse tokenizes and parses source, always returning a root Value: on
// success a Table or Array; on failure an Error value carrying a
// diagnostic (spec.md §4.C, §6, §7).
func Parse(source []byte) *Value {
	tokens, err := lexer.Lex(source)
	if err != nil {
		return NewError(err.Error())
	}

	p := &parser{tokens: tokens}
	return p.parseRoot()
}

// parseRoot implements ako_parse_tokens: an array literal as the root
// when the stream opens with "[[", a table otherwise. A table rooted by
// a single "[" requires its matching "]"; an implicit (bracket-less)
// root table runs to end of stream.
func (p *parser) parseRoot() *Value {
	first := p.peek(0)
	if first == nil {
		// An empty source is an empty implicit root table, not an error:
		// the glossary's "implicit root table" is exactly the table
		// produced by a source with no "[[" prefix, and a source with no
		// tokens at all is the degenerate case of that (no entries).
		return New(Table)
	}

	if first.Kind == token.OpenDoubleBrace {
		return p.parseArray()
	}

	ignoreBraces := first.Kind != token.OpenBrace
	return p.parseTable(ignoreBraces)
}

// parseValue dispatches on the next token's kind (spec.md's "value"
// production, grammar §6).
func (p *parser) parseValue() *Value {
	peeked := p.peek(0)
	if peeked == nil {
		return NewError("Unexpected end of value.")
	}

	switch peeked.Kind {
	case token.OpenDoubleBrace:
		return p.parseArray()
	case token.OpenBrace:
		return p.parseTable(false)
	case token.Semicolon:
		p.consume()
		return New(Null)
	case token.Bool:
		p.consume()
		return NewBool(peeked.Int != 0)
	case token.Int, token.Float:
		return p.parseNumberOrVector()
	case token.String:
		p.consume()
		return NewString(peeked.Str)
	case token.And:
		return p.parseShortType()
	default:
		return NewErrorf("Unsupported type at %s -> %s", peeked.Start, peeked.End)
	}
}

// parseNumberOrVector consumes a leading Int/Float token. If it is
// followed by VectorCross, it keeps consuming "x"-joined numbers into an
// Array (2 to 4 elements); otherwise it returns the lone scalar.
func (p *parser) parseNumberOrVector() *Value {
	start := p.peek(0).Start

	if !isKind(p.peek(1), token.VectorCross) {
		tok := p.consume()
		return numberToken(tok)
	}

	array := New(Array)
	for {
		peeked := p.peek(0)
		if peeked == nil {
			return NewErrorf("Trying to use non vector type in vector at %s", start)
		}
		if peeked.Kind != token.Int && peeked.Kind != token.Float {
			return NewErrorf("Trying to use non vector type in vector at %s", start)
		}

		tok := p.consume()
		array.ArrayAdd(numberToken(tok))

		if isKind(p.peek(0), token.VectorCross) {
			p.consume()
			continue
		}

		if array.ArrayLen() > 4 {
			return NewErrorf("Vector size is greater than 4 at %s", start)
		}
		return array
	}
}

func numberToken(tok *token.Token) *Value {
	if tok.Kind == token.Int {
		return NewInt(tok.Int)
	}
	return NewFloat(tok.Float)
}

// parseShortType implements "&" ident ("." ident)*, concatenating the
// identifiers with "." into a single ShortType payload.
func (p *parser) parseShortType() *Value {
	and := p.consume() // "&"
	if !isKind(p.peek(0), token.Ident) {
		return NewErrorf("ShortType needs to start with an Identifier, error at %s", and.Start)
	}

	var out []byte
	for isKind(p.peek(0), token.Ident) {
		out = append(out, p.consume().Str...)
		if !isKind(p.peek(0), token.Dot) {
			break
		}
		p.consume() // "."
		out = append(out, '.')
	}

	return NewShortType(string(out))
}

// parseTable implements the table_body/table_literal productions. When
// ignoreBraces is false, a leading "[" was already observed by the
// caller and a matching "]" is required to close the table.
func (p *parser) parseTable(ignoreBraces bool) *Value {
	if !ignoreBraces {
		if !isKind(p.peek(0), token.OpenBrace) {
			return NewError("Expected an opening brace.")
		}
		p.consume()
	}

	table := New(Table)
	for p.peek(0) != nil && p.peek(0).Kind != token.CloseBrace {
		peeked := p.peek(0)
		if p.peek(1) == nil {
			return NewError("Expected two tokens, got zero/one.")
		}

		validFirst := peeked.Kind == token.Ident || peeked.Kind == token.String ||
			peeked.Kind == token.Plus || peeked.Kind == token.Minus || peeked.Kind == token.Semicolon
		if !validFirst {
			return NewErrorf("Expected an identifier, bool or null but got: %s", peeked.Kind)
		}

		if errVal := p.parseTableElement(table); errVal != nil {
			return errVal
		}
	}

	if !ignoreBraces {
		if !isKind(p.peek(0), token.CloseBrace) {
			return NewError("Expected a closing brace.")
		}
		p.consume()
	} else if closer := p.peek(0); closer != nil {
		return NewErrorf("Unmatched closing brace at %s", closer.Start)
	}
	return table
}

// parseTableElement parses one table entry (value-first or key-first)
// and inserts it into table, descending through (and creating, where
// needed) intermediate tables for a dotted key path. Returns a non-nil
// Error Value on failure, nil on success.
func (p *parser) parseTableElement(table *Value) *Value {
	peeked := p.peek(0)
	if peeked == nil {
		return NewError("Unexpected end of table element.")
	}

	var valueFirst *token.Token
	if peeked.Kind == token.Minus || peeked.Kind == token.Plus || peeked.Kind == token.Semicolon {
		valueFirst = p.consume()
	}

	peeked = p.peek(0)
	if peeked == nil || (peeked.Kind != token.Ident && peeked.Kind != token.String) {
		return NewError("Expected an identifier or string.")
	}

	current := table
	var key string
	haveKey := false

	for p.peek(0) != nil && (p.peek(0).Kind == token.Ident || p.peek(0).Kind == token.String) {
		id := p.consume().Str
		more := isKind(p.peek(0), token.Dot)

		if !more {
			key = id
			haveKey = true
			break
		}

		existing := current.TableGet(id)
		if existing == nil {
			existing = current.TableAdd(id, New(Table))
		} else if existing.Kind() != Table {
			return NewError("dotted key traverses non-table")
		}
		current = existing

		if isKind(p.peek(0), token.Dot) {
			p.consume()
		}
	}

	if !haveKey {
		return NewError("Failed to get table id.")
	}

	if valueFirst != nil {
		switch valueFirst.Kind {
		case token.Plus, token.Minus:
			current.TableAdd(key, NewBool(valueFirst.Kind == token.Plus))
		case token.Semicolon:
			current.TableAdd(key, New(Null))
		default:
			return NewError("Unknown value type.")
		}
		return nil
	}

	value := p.parseValue()
	if value.IsError() {
		return value
	}
	current.TableAdd(key, value)
	return nil
}

// parseArray implements the array_literal production: "[[" value* "]]".
func (p *parser) parseArray() *Value {
	peeked := p.peek(0)
	if !isKind(peeked, token.OpenDoubleBrace) {
		if peeked == nil {
			return NewError("Unexpected end of array.")
		}
		return NewErrorf("Open double brace expected at %s -> %s", peeked.Start, peeked.End)
	}
	p.consume()

	array := New(Array)
	for p.peek(0) != nil && p.peek(0).Kind != token.CloseDoubleBrace {
		elem := p.parseValue()
		if elem.IsError() {
			return elem
		}
		array.ArrayAdd(elem)
	}

	if !isKind(p.peek(0), token.CloseDoubleBrace) {
		return NewError("Expected a closing double brace.")
	}
	p.consume()
	return array
}
