package relq

import "strconv"

// eof represents a marker byte for the end of the input.
const eof = byte(0)

// Lexer tokenizes an entire input string eagerly at construction, then
// serves the recorded sequence through a forward-only cursor. The sequence
// always ends with exactly one EOF token.
//
// On the first lexical error the scan stops, an EOF token is appended, and
// the remainder of the input is discarded. The error is recorded and
// retrievable via Err, but it is never forwarded through the token stream.
type Lexer struct {
	input  string
	offset int // scan position in input

	tokens []Token
	err    *ParseError
	cursor int // read position in tokens
}

// NewLexer returns a new instance of Lexer with the input fully tokenized.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.tokenize()
	return l
}

// PeekToken returns the token at the cursor without consuming it.
func (l *Lexer) PeekToken() Token {
	if l.cursor >= len(l.tokens) {
		return Token{Type: EOF}
	}
	return l.tokens[l.cursor]
}

// NextToken returns the token at the cursor and advances past it. Once the
// recorded sequence is exhausted it keeps returning the EOF token.
func (l *Lexer) NextToken() Token {
	if l.cursor >= len(l.tokens) {
		return Token{Type: EOF}
	}
	t := l.tokens[l.cursor]
	l.cursor++
	return t
}

// Tokens returns the recorded token sequence. Tokenization happens once at
// construction, so repeated calls return the identical sequence.
func (l *Lexer) Tokens() []Token {
	return l.tokens
}

// Err returns the lexical error that truncated the scan, or nil if the whole
// input tokenized cleanly.
func (l *Lexer) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

func (l *Lexer) tokenize() {
	for {
		t, err := l.scan()
		if err != nil {
			l.err = err
			break
		}
		l.tokens = append(l.tokens, *t)
		if t.Type == EOF {
			return
		}
	}

	// Error path: terminate the truncated stream with a single EOF token.
	if len(l.tokens) == 0 || l.tokens[len(l.tokens)-1].Type != EOF {
		l.tokens = append(l.tokens, Token{Type: EOF})
	}
}

// scan returns the next token. Each scan func either claims the input at the
// current offset or returns nil to let the next one try.
func (l *Lexer) scan() (*Token, *ParseError) {
	l.skipWS()

	for _, scan := range []func() (*Token, *ParseError){
		l.scanEOF,
		l.scanString,
		l.scanNumber,
		l.scanIdentOrKeyword,
		l.scanSymbol,
	} {
		t, err := scan()
		if err != nil {
			return nil, err
		}
		if t != nil {
			return t, nil
		}
	}

	return l.scanIllegal()
}

func (l *Lexer) skipWS() {
	for isWS(l.peek()) {
		l.read()
	}
}

func (l *Lexer) scanEOF() (*Token, *ParseError) {
	if l.offset < len(l.input) {
		return nil, nil
	}
	return &Token{Type: EOF}, nil
}

// scanString scans a double-quoted string literal. The contents are taken
// verbatim; there are no escape sequences.
func (l *Lexer) scanString() (*Token, *ParseError) {
	if l.peek() != '"' {
		return nil, nil
	}
	l.read() // opening quote

	var text []byte
	for {
		ch := l.read()
		switch ch {
		case eof:
			return nil, parseErrorf(UnexpectedEndOfInput, "unterminated string literal")
		case '"':
			return &Token{Type: STRING, Text: string(text)}, nil
		default:
			text = append(text, ch)
		}
	}
}

// scanNumber scans a maximal run of ASCII digits as an unsigned 64-bit
// integer. A run that does not fit is an error, not a truncation.
func (l *Lexer) scanNumber() (*Token, *ParseError) {
	if !isDigit(l.peek()) {
		return nil, nil
	}

	var i int
	for isDigit(l.peekAfter(i)) {
		i++
	}
	raw := l.readN(i)

	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, parseErrorf(ExpectedNumber, "invalid number: %s", raw)
	}
	return &Token{Type: NUMBER, Number: n}, nil
}

// scanIdentOrKeyword scans a maximal identifier lexeme and then classifies
// it. Keyword lookup happens only after the full lexeme is captured, so a
// reserved-word prefix never splits an identifier.
func (l *Lexer) scanIdentOrKeyword() (*Token, *ParseError) {
	if ch := l.peek(); !isLetter(ch) && ch != '_' {
		return nil, nil
	}

	var i int
	for isIdent(l.peekAfter(i)) {
		i++
	}
	raw := l.readN(i)

	if kw, ok := KeywordFromString(raw); ok {
		return &Token{Type: KEYWORD, Keyword: kw}, nil
	}
	return &Token{Type: IDENT, Text: raw}, nil
}

func (l *Lexer) scanSymbol() (*Token, *ParseError) {
	for _, sym := range symbols {
		n := len(sym.str)
		if l.peeksAt(sym.str) {
			l.readN(n)
			return &Token{Type: sym.typ}, nil
		}
	}
	return nil, nil
}

// scanIllegal consumes one unclassifiable character and reports it. The scan
// stops here: there is no recovery.
func (l *Lexer) scanIllegal() (*Token, *ParseError) {
	ch := l.read()
	if ch == '!' {
		return nil, parseErrorf(UnexpectedToken, "unexpected '!' without '='")
	}
	return nil, parseErrorf(UnexpectedToken, "unexpected character %q", ch)
}

// read returns the byte at the scan position and advances past it, or eof.
func (l *Lexer) read() byte {
	ch := l.peek()
	if ch != eof {
		l.offset++
	}
	return ch
}

func (l *Lexer) readN(n int) string {
	end := l.offset + n
	if end > len(l.input) {
		end = len(l.input)
	}
	raw := l.input[l.offset:end]
	l.offset = end
	return raw
}

func (l *Lexer) peek() byte {
	return l.peekAfter(0)
}

func (l *Lexer) peekAfter(n int) byte {
	if l.offset+n >= len(l.input) {
		return eof
	}
	return l.input[l.offset+n]
}

func (l *Lexer) peeksAt(s string) bool {
	if l.offset+len(s) > len(l.input) {
		return false
	}
	return l.input[l.offset:l.offset+len(s)] == s
}

func in(ch byte, list ...byte) bool {
	for _, r := range list {
		if ch == r {
			return true
		}
	}
	return false
}

func isWS(ch byte) bool {
	return in(ch, ' ', '\t', '\n', '\r')
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isIdent(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || in(ch, '_')
}

type symbolEntry struct {
	typ TokenType
	str string
}

// Ordered longest-first so multi-char symbols match before single-char
// prefixes. "==" maps to EQ: a doubled equals lexes the same as "=".
var symbols = []symbolEntry{
	{NEQ, "!="},
	{LTE, "<="},
	{GTE, ">="},
	{EQ, "=="},
	{EQ, "="},
	{LT, "<"},
	{GT, ">"},
	{LPAREN, "("},
	{RPAREN, ")"},
	{COMMA, ","},
	{SEMICOLON, ";"},
	{PLUS, "+"},
	{MINUS, "-"},
	{ASTERISK, "*"},
	{SLASH, "/"},
}
