package relq

// Parser builds expression trees from a lexer's token stream. It holds a
// forward-only cursor: the current token, with the lexer positioned just
// past it. There is no backtracking.
type Parser struct {
	lex     *Lexer
	current Token
}

// NewParser tokenizes the input and positions the parser at the first token.
func NewParser(input string) *Parser {
	return NewParserFromLexer(NewLexer(input))
}

// NewParserFromLexer wraps an existing lexer. The parser consumes tokens
// from the lexer's cursor position onward.
func NewParserFromLexer(lex *Lexer) *Parser {
	return &Parser{lex: lex, current: lex.NextToken()}
}

// Parse returns the expression tree for a prefix of the token stream. It
// never returns an empty tree: the result is a complete Expression or an
// error. Tokens after a complete expression are left unconsumed.
func (p *Parser) Parse() (Expression, error) {
	return p.parsePrecedence(0)
}

func (p *Parser) advance() {
	p.current = p.lex.NextToken()
}
