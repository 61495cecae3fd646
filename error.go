package relq

import "fmt"

// ErrorKind classifies front-end errors. The lexer reports the specific
// kinds; the expression parser reports every grammar violation as
// InvalidInput.
type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota
	ExpectedToken
	ExpectedIdentifier
	ExpectedType
	ExpectedKeyword
	ExpectedNumber
	UnexpectedEndOfInput
	InvalidInput
)

var errorKindNames = map[ErrorKind]string{
	UnexpectedToken:      "unexpected token",
	ExpectedToken:        "expected token",
	ExpectedIdentifier:   "expected identifier",
	ExpectedType:         "expected type",
	ExpectedKeyword:      "expected keyword",
	ExpectedNumber:       "expected number",
	UnexpectedEndOfInput: "unexpected end of input",
	InvalidInput:         "invalid input",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError is an error produced by the lexer or parser. It carries a kind
// for callers that dispatch on the class of failure and a human-readable
// message. No position metadata is attached.
type ParseError struct {
	Kind ErrorKind
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func parseErrorf(kind ErrorKind, format string, args ...interface{}) *ParseError {
	return &ParseError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
