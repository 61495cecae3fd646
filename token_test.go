package relq

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordFromString(t *testing.T) {
	for _, input := range []string{"select", "SELECT", "SeLeCt"} {
		kw, ok := KeywordFromString(input)
		require.True(t, ok, "input %q", input)
		assert.Equal(t, SELECT, kw, "input %q", input)
	}

	_, ok := KeywordFromString("selection")
	assert.False(t, ok)
	_, ok = KeywordFromString("")
	assert.False(t, ok)
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Type: EOF}, "EOF"},
		{Token{Type: KEYWORD, Keyword: WHERE}, "WHERE"},
		{Token{Type: IDENT, Text: "price"}, "price"},
		{Token{Type: STRING, Text: "hello"}, "hello"},
		{Token{Type: NUMBER, Number: 123}, "123"},
		{Token{Type: GTE}, ">="},
		{Token{Type: NEQ}, "!="},
		{Token{Type: LPAREN}, "("},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.tok.String())
	}
}

func TestTokenMarshalJSON(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Type: NUMBER, Number: 42}, `{"type":"NUMBER","number":42}`},
		{Token{Type: KEYWORD, Keyword: FROM}, `{"type":"KEYWORD","keyword":"FROM"}`},
		{Token{Type: IDENT, Text: "users"}, `{"type":"IDENT","text":"users"}`},
		{Token{Type: PLUS}, `{"type":"PLUS"}`},
		{Token{Type: EOF}, `{"type":"EOF"}`},
	}

	for _, tt := range tests {
		b, err := json.Marshal(tt.tok)
		require.NoError(t, err)
		assert.JSONEq(t, tt.want, string(b))
	}
}

func TestBinaryOperatorString(t *testing.T) {
	assert.Equal(t, "+", Plus.String())
	assert.Equal(t, "-", Minus.String())
	assert.Equal(t, "*", Multiply.String())
	assert.Equal(t, "/", Divide.String())
}
