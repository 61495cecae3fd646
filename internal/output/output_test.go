package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relq/relq"
)

func TestWriteTokenTable(t *testing.T) {
	lex := relq.NewLexer("price * 2")
	require.NoError(t, lex.Err())

	var buf bytes.Buffer
	WriteTokenTable(&buf, lex.Tokens())

	out := buf.String()
	assert.Contains(t, out, "IDENT")
	assert.Contains(t, out, "price")
	assert.Contains(t, out, "ASTERISK")
	assert.Contains(t, out, "NUMBER")
	assert.Contains(t, out, "EOF")
}

func TestWriteExpressionJSON(t *testing.T) {
	expr, err := relq.NewParser("1+2*3").Parse()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteExpressionJSON(&buf, expr))

	var tree map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &tree))
	assert.Equal(t, "+", tree["operator"])

	right, ok := tree["right"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "*", right["operator"])
}
