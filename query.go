package ako

import (
	"github.com/zalgonoise/ako/lexer"
	"github.com/zalgonoise/ako/token"
)

// Query resolves path (e.g. "window.size", "items.0", `a."b.c"`) against
// root, returning the borrowed sub-node and true, or (nil, false) if the
// path is malformed or doesn't resolve (spec.md §4.E).
//
// Query never allocates new nodes: the returned Value, when non-nil, is
// a node already owned by root.
func Query(root *Value, path string) (*Value, bool) {
	tokens, err := lexer.Lex([]byte(path))
	if err != nil {
		return nil, false
	}
	if len(tokens) == 0 {
		return nil, false
	}

	cur := root
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		switch cur.Kind() {
		case Array:
			if tok.Kind != token.Int {
				return nil, false
			}
			idx := int(tok.Int)
			if idx < 0 || idx >= cur.ArrayLen() {
				return nil, false
			}
			cur = cur.ArrayGet(idx)
		case Table:
			if tok.Kind != token.Ident && tok.Kind != token.String {
				return nil, false
			}
			next := cur.TableGet(tok.Str)
			if next == nil {
				return nil, false
			}
			cur = next
		default:
			return nil, false
		}

		last := i == len(tokens)-1
		if last {
			return cur, true
		}

		i++
		if tokens[i].Kind != token.Dot {
			return nil, false
		}
	}

	return nil, false
}
