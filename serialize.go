package ako

import (
	"errors"
	"strconv"
	"strings"
)

// Flags controls Serialize's output form (spec.md §4.D, §6).
type Flags uint8

const (
	// FormatPretty enables newline-and-indent pretty printing. Without
	// it, entries are separated by a single space and never indented.
	FormatPretty Flags = 1 << iota
	// UseSpaces selects four-space indentation instead of a tab.
	// Only meaningful together with FormatPretty.
	UseSpaces
)

// ErrUnknownKind is returned by Serialize when a Value carries a kind
// the serializer doesn't know how to render (spec.md §7).
var ErrUnknownKind = errors.New("Unknown type for serialisation")

// Serialize renders root to text. Grounded on ako_serialize/_serialise in
// original_source/src/ako.c, with three corrections noted in spec.md §9
// and DESIGN.md: String bodies are re-escaped so the round-trip property
// holds for any byte sequence; ShortType renders through its "&" literal
// syntax rather than as a quoted string, so the round-trip property holds
// on kind too, not just value; and the vector-shorthand eligibility check
// matches spec.md exactly (the original's equivalent check is dead code
// that never actually excludes non-numeric elements).
func Serialize(root *Value, flags Flags) (string, error) {
	indent := ""
	if flags&FormatPretty != 0 {
		indent = "\t"
		if flags&UseSpaces != 0 {
			indent = "    "
		}
	}

	s := &serializer{indent: indent}
	var buf strings.Builder
	if err := s.write(&buf, root, 0, true); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type serializer struct {
	indent string
}

func (s *serializer) sep() string {
	if s.indent != "" {
		return "\n"
	}
	return " "
}

func (s *serializer) writeIndent(buf *strings.Builder, level int) {
	for i := 0; i < level; i++ {
		buf.WriteString(s.indent)
	}
}

func (s *serializer) write(buf *strings.Builder, v *Value, level int, isRoot bool) error {
	switch v.Kind() {
	case Bool:
		if v.Bool() {
			buf.WriteByte('+')
		} else {
			buf.WriteByte('-')
		}
		return nil
	case Null:
		buf.WriteByte(';')
		return nil
	case Int:
		buf.WriteString(strconv.FormatInt(v.Int(), 10))
		return nil
	case Float:
		buf.WriteString(formatFloat(v.Float()))
		return nil
	case String:
		buf.WriteByte('"')
		buf.WriteString(escapeString(v.Str()))
		buf.WriteByte('"')
		return nil
	case ShortType:
		// Rendered with its literal "&" sigil, not as a quoted string: a
		// short-type's payload is an identifier sequence (never contains
		// a quote or backslash), and writing it back through the same
		// syntax that produced it is what lets Parse(Serialize(v))
		// reproduce a ShortType instead of downgrading it to a String.
		buf.WriteByte('&')
		buf.WriteString(v.ShortType())
		return nil
	case Array:
		return s.writeArray(buf, v, level, isRoot)
	case Table:
		return s.writeTable(buf, v, level, isRoot)
	default:
		return ErrUnknownKind
	}
}

func (s *serializer) writeArray(buf *strings.Builder, v *Value, level int, isRoot bool) error {
	n := v.ArrayLen()
	if n == 0 {
		buf.WriteString("[[]]")
		return nil
	}

	if vec, ok := asVector(v, isRoot); ok {
		for i, elem := range vec {
			if i > 0 {
				buf.WriteByte('x')
			}
			if elem.Kind() == Int {
				buf.WriteString(strconv.FormatInt(elem.Int(), 10))
			} else {
				buf.WriteString(formatFloat(elem.Float()))
			}
		}
		return nil
	}

	sep := s.sep()
	buf.WriteString("[[")
	buf.WriteString(sep)
	for i := 0; i < n; i++ {
		s.writeIndent(buf, level+1)
		if err := s.write(buf, v.ArrayGet(i), level+1, false); err != nil {
			return err
		}
		buf.WriteString(sep)
	}
	s.writeIndent(buf, level)
	buf.WriteString("]]")
	return nil
}

// asVector reports whether v qualifies for the vector shorthand: up to
// four elements, all Int or Float, and not the document root.
func asVector(v *Value, isRoot bool) ([]*Value, bool) {
	n := v.ArrayLen()
	if isRoot || n == 0 || n > 4 {
		return nil, false
	}
	out := make([]*Value, n)
	for i := 0; i < n; i++ {
		elem := v.ArrayGet(i)
		if elem.Kind() != Int && elem.Kind() != Float {
			return nil, false
		}
		out[i] = elem
	}
	return out, true
}

func (s *serializer) writeTable(buf *strings.Builder, v *Value, level int, isRoot bool) error {
	n := v.TableLen()
	sep := s.sep()

	if !isRoot {
		buf.WriteByte('[')
		if n == 0 {
			buf.WriteByte(']')
			return nil
		}
		buf.WriteString(sep)
	}

	indenting := level
	if !isRoot {
		indenting = level + 1
	}

	for i := 0; i < n; i++ {
		key := v.TableKeyAt(i)
		val := v.TableValueAt(i)

		s.writeIndent(buf, indenting)

		var scratch strings.Builder
		if err := s.write(&scratch, val, indenting, false); err != nil {
			return err
		}
		text := scratch.String()

		if text == "+" || text == "-" || text == ";" {
			buf.WriteString(text)
			buf.WriteString(key)
		} else {
			buf.WriteString(key)
			buf.WriteByte(' ')
			buf.WriteString(text)
		}
		buf.WriteString(sep)
	}

	if !isRoot {
		s.writeIndent(buf, level)
		buf.WriteByte(']')
	}
	return nil
}

// formatFloat renders f in fixed-point decimal (the format's grammar has
// no exponent notation) while guaranteeing the output always contains a
// decimal point, so re-lexing it always yields a Float, never an Int —
// required for the round-trip (same-kind) property.
func formatFloat(f float64) string {
	out := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(out, '.') {
		out += ".0"
	}
	return out
}

// escapeString re-escapes backslashes and double quotes so the rendered
// literal re-lexes back to the same byte sequence.
func escapeString(s string) string {
	if !strings.ContainsAny(s, `\"`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' || c == '"' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}
