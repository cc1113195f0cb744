package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zalgonoise/ako/lexer"
	"github.com/zalgonoise/ako/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexSingleCharTokens(t *testing.T) {
	toks, err := lexer.Lex([]byte(`+ - ; . & [ ] [[ ]]`))
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.Plus, token.Minus, token.Semicolon, token.Dot, token.And,
		token.OpenBrace, token.CloseBrace, token.OpenDoubleBrace, token.CloseDoubleBrace,
	}, kinds(toks))
}

func TestLexIdentifier(t *testing.T) {
	toks, err := lexer.Lex([]byte("window_1 _x"))
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, "window_1", toks[0].Str)
	assert.Equal(t, "_x", toks[1].Str)
}

func TestLexIntAndFloat(t *testing.T) {
	toks, err := lexer.Lex([]byte("180 1.0"))
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.Int, toks[0].Kind)
	assert.EqualValues(t, 180, toks[0].Int)
	assert.Equal(t, token.Float, toks[1].Kind)
	assert.InDelta(t, 1.0, toks[1].Float, 0.0001)
}

func TestLexVector(t *testing.T) {
	toks, err := lexer.Lex([]byte("180x190"))
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, []token.Kind{token.Int, token.VectorCross, token.Int}, kinds(toks))
	assert.EqualValues(t, 180, toks[0].Int)
	assert.EqualValues(t, 190, toks[2].Int)
}

func TestLexVectorFloat(t *testing.T) {
	toks, err := lexer.Lex([]byte("1.0x2.0x3.0"))
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.Float, token.VectorCross, token.Float, token.VectorCross, token.Float,
	}, kinds(toks))
}

func TestLexVectorMissingNumberIsFatal(t *testing.T) {
	_, err := lexer.Lex([]byte("1x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to parse vector")
}

func TestLexStringEscapes(t *testing.T) {
	toks, err := lexer.Lex([]byte(`"viva \"happy\""`))
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, token.String, toks[0].Kind)
	assert.Equal(t, `viva "happy"`, toks[0].Str)
}

func TestLexStringNewlineAndTabEscapes(t *testing.T) {
	toks, err := lexer.Lex([]byte(`"a\nb\tc"`))
	require.NoError(t, err)
	assert.Equal(t, "a\nb\tc", toks[0].Str)
}

func TestLexUnterminatedStringIsFatal(t *testing.T) {
	_, err := lexer.Lex([]byte(`"no closing quote`))
	require.Error(t, err)
}

func TestLexCommentsAreSkipped(t *testing.T) {
	toks, err := lexer.Lex([]byte("a 1 # this is a comment\nb 2"))
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{token.Ident, token.Int, token.Ident, token.Int}, kinds(toks))
}

func TestLexLineCounting(t *testing.T) {
	// Regression for the REDESIGN FLAGS fix: only '\n' advances the line
	// counter (the original tokenizer also bumps it on '\t').
	toks, err := lexer.Lex([]byte("a\n\nb"))
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, 1, toks[0].Start.Line)
	assert.Equal(t, 3, toks[1].Start.Line)
}

func TestLexBareTabIsWhitespace(t *testing.T) {
	// A tab outside a string is skipped like a space: pretty-printed
	// output indents with tabs and must lex back.
	toks, err := lexer.Lex([]byte("a\tb"))
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{token.Ident, token.Ident}, kinds(toks))
}

func TestLexMalformedNumberIsFatal(t *testing.T) {
	// Two decimal points in one run is not a valid float.
	_, err := lexer.Lex([]byte("1.2.3"))
	require.Error(t, err)
}
