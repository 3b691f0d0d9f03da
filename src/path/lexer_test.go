package path

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexerTokens(t *testing.T) {
	t.Parallel()
	cases := []struct {
		src      string
		expected []token
	}{
		{"object", []token{{Kind: tokenIdentifier, Ident: "object"}}},
		{"object.property", []token{
			{Kind: tokenIdentifier, Ident: "object"},
			{Kind: tokenPeriod},
			{Kind: tokenIdentifier, Ident: "property"},
		}},
		{"items[0]", []token{
			{Kind: tokenIdentifier, Ident: "items"},
			{Kind: tokenOpenBracket},
			{Kind: tokenInteger, IntVal: 0},
			{Kind: tokenCloseBracket},
		}},
		{`doc["weird key"]`, []token{
			{Kind: tokenIdentifier, Ident: "doc"},
			{Kind: tokenOpenBracket},
			{Kind: tokenString, StringVal: "weird key"},
			{Kind: tokenCloseBracket},
		}},
		{`'quoted'`, []token{{Kind: tokenString, StringVal: "quoted"}}},
		{"a[-1]", []token{
			{Kind: tokenIdentifier, Ident: "a"},
			{Kind: tokenOpenBracket},
			{Kind: tokenInteger, IntVal: -1},
			{Kind: tokenCloseBracket},
		}},
		{"content-type", []token{{Kind: tokenIdentifier, Ident: "content-type"}}},
		{"_private.$meta", []token{
			{Kind: tokenIdentifier, Ident: "_private"},
			{Kind: tokenPeriod},
			{Kind: tokenIdentifier, Ident: "$meta"},
		}},
	}
	for i, tc := range cases {
		lex := newLexer(tc.src)
		for j, expected := range tc.expected {
			tk, err := lex.Next()
			require.NoError(t, err, "[%v:%v] %q", i, j, tc.src)
			assert.Equal(t, expected.Kind, tk.Kind, "[%v:%v] %q", i, j, tc.src)
			assert.Equal(t, expected.Ident, tk.Ident, "[%v:%v] %q", i, j, tc.src)
			assert.Equal(t, expected.StringVal, tk.StringVal, "[%v:%v] %q", i, j, tc.src)
			assert.Equal(t, expected.IntVal, tk.IntVal, "[%v:%v] %q", i, j, tc.src)
		}
		_, err := lex.Next()
		assert.True(t, errors.Is(err, io.EOF), "[%v] %q expected EOF", i, tc.src)
	}
}

func TestLexerPeek(t *testing.T) {
	t.Parallel()
	lex := newLexer("a.b")
	tk, err := lex.Peek()
	require.NoError(t, err)
	assert.Equal(t, tokenIdentifier, tk.Kind)

	tk, err = lex.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", tk.Ident)

	tk, err = lex.Next()
	require.NoError(t, err)
	assert.Equal(t, tokenPeriod, tk.Kind)

	// Peek at the end surfaces EOS, not an error.
	lex = newLexer("")
	tk, err = lex.Peek()
	require.NoError(t, err)
	assert.Equal(t, tokenEOS, tk.Kind)
}

func TestLexerErrors(t *testing.T) {
	t.Parallel()
	cases := []string{
		`"unterminated`,
		`a.#`,
		`a b!`,
	}
	for i, src := range cases {
		lex := newLexer(src)
		var err error
		for n := 0; n < len(src)+1; n++ {
			if _, err = lex.Next(); err != nil {
				break
			}
		}
		require.Error(t, err, "[%v] %q", i, src)
		assert.False(t, errors.Is(err, io.EOF), "[%v] %q should be a lex error", i, src)
	}
}
