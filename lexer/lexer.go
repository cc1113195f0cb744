// Package lexer turns format source bytes into a token stream.
//
// The scanning rules are ported function-for-function from the original
// implementation's tokenizer (consume/peek/count_id/count_number/
// count_string become the methods below), with one behavior change
// called out in spec.md §9: the line counter only advances on '\n', not
// on '\t' (the original bumps it on both, which inflates reported line
// numbers).
package lexer

import (
	"fmt"
	"strconv"

	"github.com/zalgonoise/ako/token"
)

// Lex tokenizes source, returning the token stream or a lex error. On
// error the returned slice is always empty/nil, matching the "entire
// token sequence is discarded" contract in spec.md §4.B.
func Lex(source []byte) ([]token.Token, error) {
	l := &lexer{
		source: source,
		loc:    token.Location{Line: 1, Column: 1},
	}
	return l.run()
}

type lexer struct {
	source []byte
	index  int

	loc  token.Location // current position, after the last consumed byte
	meta token.Location // start position of the token being built

	tokens []token.Token
}

func (l *lexer) hasValue(offset int) bool {
	return l.index+offset < len(l.source)
}

func (l *lexer) peek(offset int) byte {
	return l.source[l.index+offset]
}

func (l *lexer) consume() byte {
	if l.index >= len(l.source) {
		return 0
	}
	c := l.source[l.index]
	l.index++
	if c == '\n' {
		l.loc.Line++
		l.loc.Column = 0
	}
	l.loc.Column++
	l.loc.Index = l.index
	return c
}

func (l *lexer) startMeta() {
	l.meta = l.loc
}

func (l *lexer) addToken(tok token.Token) {
	tok.Start = l.meta
	tok.End = l.loc
	l.tokens = append(l.tokens, tok)
}

func isValidIDStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIDByte(c byte) bool {
	return isValidIDStart(c) || (c >= '0' && c <= '9')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (l *lexer) countID() int {
	n := 0
	for l.hasValue(n) && isIDByte(l.peek(n)) {
		n++
	}
	return n
}

func (l *lexer) countNumber() int {
	n := 0
	for l.hasValue(n) {
		c := l.peek(n)
		if isDigit(c) || c == '.' {
			n++
			continue
		}
		break
	}
	return n
}

// parseDigit attempts to consume a number literal at the current
// position. ok is false (with no bytes consumed) when the current byte
// doesn't start a number; err is set when a number run was found but
// failed to parse as int/float.
func (l *lexer) parseDigit() (tok token.Token, ok bool, err error) {
	size := l.countNumber()
	if size == 0 {
		return token.Token{}, false, nil
	}

	start := l.meta
	buf := make([]byte, size)
	isFloat := false
	for i := 0; i < size; i++ {
		buf[i] = l.consume()
		if buf[i] == '.' {
			isFloat = true
		}
	}
	text := string(buf)

	if isFloat {
		f, perr := strconv.ParseFloat(text, 64)
		if perr != nil {
			return token.Token{}, true, fmt.Errorf("Failed to parse number at %s", start)
		}
		tok.Kind = token.Float
		tok.Float = f
		return tok, true, nil
	}

	i, perr := strconv.ParseInt(text, 0, 64)
	if perr != nil {
		return token.Token{}, true, fmt.Errorf("Failed to parse number at %s", start)
	}
	tok.Kind = token.Int
	tok.Int = i
	return tok, true, nil
}

// scanString consumes the closing-quote-terminated body of a string
// literal. The opening quote must already have been consumed.
func (l *lexer) scanString() (string, error) {
	start := l.meta
	var out []byte
	for {
		if !l.hasValue(0) {
			return "", fmt.Errorf("Failed to parse string at %s", start)
		}
		c := l.consume()
		if c == '\\' {
			if !l.hasValue(0) {
				return "", fmt.Errorf("Failed to parse string at %s", start)
			}
			esc := l.consume()
			switch esc {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			default:
				out = append(out, esc)
			}
			continue
		}
		if c == '"' {
			return string(out), nil
		}
		out = append(out, c)
	}
}

func (l *lexer) run() ([]token.Token, error) {
	for l.hasValue(0) {
		c := l.peek(0)

		if c == ' ' || c == '\n' || c == '\t' {
			l.consume()
			continue
		}

		if c == '#' {
			l.consume()
			commentLine := l.loc.Line
			for l.loc.Line == commentLine {
				if !l.hasValue(0) {
					break
				}
				l.consume()
			}
			continue
		}

		l.startMeta()

		switch c {
		case '+':
			l.consume()
			l.addToken(token.Token{Kind: token.Plus})
			continue
		case '-':
			l.consume()
			l.addToken(token.Token{Kind: token.Minus})
			continue
		case ';':
			l.consume()
			l.addToken(token.Token{Kind: token.Semicolon})
			continue
		case '.':
			l.consume()
			l.addToken(token.Token{Kind: token.Dot})
			continue
		case '&':
			l.consume()
			l.addToken(token.Token{Kind: token.And})
			continue
		case '[':
			l.consume()
			if l.hasValue(0) && l.peek(0) == '[' {
				l.consume()
				l.addToken(token.Token{Kind: token.OpenDoubleBrace})
			} else {
				l.addToken(token.Token{Kind: token.OpenBrace})
			}
			continue
		case ']':
			l.consume()
			if l.hasValue(0) && l.peek(0) == ']' {
				l.consume()
				l.addToken(token.Token{Kind: token.CloseDoubleBrace})
			} else {
				l.addToken(token.Token{Kind: token.CloseBrace})
			}
			continue
		}

		if isValidIDStart(c) {
			size := l.countID()
			buf := make([]byte, size)
			for i := 0; i < size; i++ {
				buf[i] = l.consume()
			}
			l.addToken(token.Token{Kind: token.Ident, Str: string(buf)})
			continue
		}

		if isDigit(c) {
			tok, ok, err := l.parseDigit()
			if err != nil {
				return nil, err
			}
			if ok {
				l.addToken(tok)

				for l.hasValue(0) && l.peek(0) == 'x' {
					delim := l.loc
					l.consume()
					l.addToken(token.Token{Kind: token.VectorCross})

					l.startMeta()
					next, ok, err := l.parseDigit()
					if err != nil {
						return nil, err
					}
					if !ok {
						return nil, fmt.Errorf("Failed to parse vector at %s", delim)
					}
					l.addToken(next)
				}
				continue
			}
		}

		if c == '"' {
			l.consume()
			str, err := l.scanString()
			if err != nil {
				return nil, err
			}
			l.addToken(token.Token{Kind: token.String, Str: str})
			continue
		}

		return nil, fmt.Errorf("Failed to parse token at %s", l.loc)
	}

	return l.tokens, nil
}
