package relq

import (
	"fmt"
	"strconv"
	"strings"
)

// TokenType categorizes a lexical token.
type TokenType int

const (
	// Special tokens. ILLEGAL is reserved for callers that want to carry an
	// unclassifiable character as a token; the lexer itself reports such
	// characters as errors instead.
	ILLEGAL TokenType = iota
	EOF

	// Literals and names
	KEYWORD
	IDENT
	STRING
	NUMBER

	// Symbols
	LPAREN    // (
	RPAREN    // )
	COMMA     // ,
	SEMICOLON // ;
	EQ        // =
	NEQ       // !=
	LT        // <
	LTE       // <=
	GT        // >
	GTE       // >=
	PLUS      // +
	MINUS     // -
	ASTERISK  // *
	SLASH     // /
)

var tokenTypeNames = map[TokenType]string{
	ILLEGAL:   "ILLEGAL",
	EOF:       "EOF",
	KEYWORD:   "KEYWORD",
	IDENT:     "IDENT",
	STRING:    "STRING",
	NUMBER:    "NUMBER",
	LPAREN:    "LPAREN",
	RPAREN:    "RPAREN",
	COMMA:     "COMMA",
	SEMICOLON: "SEMICOLON",
	EQ:        "EQ",
	NEQ:       "NEQ",
	LT:        "LT",
	LTE:       "LTE",
	GT:        "GT",
	GTE:       "GTE",
	PLUS:      "PLUS",
	MINUS:     "MINUS",
	ASTERISK:  "ASTERISK",
	SLASH:     "SLASH",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

func (t TokenType) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

// Keyword is one of the reserved words recognized by the lexer. Keywords are
// tokenized but never consumed by the expression grammar; they exist for a
// future statement parser.
type Keyword int

const (
	SELECT Keyword = iota
	CREATE
	TABLE
	WHERE
	FROM
	ORDER
	BY
	AND
	OR
	NOT
)

var keywordNames = map[Keyword]string{
	SELECT: "SELECT",
	CREATE: "CREATE",
	TABLE:  "TABLE",
	WHERE:  "WHERE",
	FROM:   "FROM",
	ORDER:  "ORDER",
	BY:     "BY",
	AND:    "AND",
	OR:     "OR",
	NOT:    "NOT",
}

func (k Keyword) String() string {
	if name, ok := keywordNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Keyword(%d)", int(k))
}

// KeywordFromString classifies a lexeme as a keyword. The comparison is
// case-insensitive.
func KeywordFromString(s string) (Keyword, bool) {
	upper := strings.ToUpper(s)
	for k, name := range keywordNames {
		if upper == name {
			return k, true
		}
	}
	return 0, false
}

// Token is a single lexical unit. Exactly one payload field is meaningful,
// selected by Type: Keyword for KEYWORD, Text for IDENT and STRING (and the
// offending character for ILLEGAL), Number for NUMBER. Tokens are immutable
// values and cheap to copy.
type Token struct {
	Type    TokenType
	Keyword Keyword
	Text    string
	Number  uint64
}

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "EOF"
	case KEYWORD:
		return t.Keyword.String()
	case IDENT, STRING, ILLEGAL:
		return t.Text
	case NUMBER:
		return strconv.FormatUint(t.Number, 10)
	default:
		if lit, ok := symbolLiterals[t.Type]; ok {
			return lit
		}
		return t.Type.String()
	}
}

func (t Token) MarshalJSON() ([]byte, error) {
	s := `{"type":` + fmt.Sprintf("%q", t.Type.String())
	switch t.Type {
	case KEYWORD:
		s += `,"keyword":` + fmt.Sprintf("%q", t.Keyword.String())
	case IDENT, STRING, ILLEGAL:
		s += `,"text":` + fmt.Sprintf("%q", t.Text)
	case NUMBER:
		s += `,"number":` + strconv.FormatUint(t.Number, 10)
	}
	return []byte(s + `}`), nil
}

// symbolLiterals maps symbol token types back to their source form.
var symbolLiterals = map[TokenType]string{
	LPAREN:    "(",
	RPAREN:    ")",
	COMMA:     ",",
	SEMICOLON: ";",
	EQ:        "=",
	NEQ:       "!=",
	LT:        "<",
	LTE:       "<=",
	GT:        ">",
	GTE:       ">=",
	PLUS:      "+",
	MINUS:     "-",
	ASTERISK:  "*",
	SLASH:     "/",
}
