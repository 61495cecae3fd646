package relq

// Binding powers for infix operators. Zero means the token cannot continue
// an expression and acts as a terminator for the climb loop.
const (
	precedenceNone   = 0
	precedenceAddSub = 1
	precedenceMulDiv = 2
)

func infixPrecedence(t TokenType) int {
	switch t {
	case PLUS, MINUS:
		return precedenceAddSub
	case ASTERISK, SLASH:
		return precedenceMulDiv
	default:
		return precedenceNone
	}
}

// parsePrecedence implements precedence climbing. It parses a primary as the
// initial left operand, then keeps consuming operators that bind strictly
// tighter than minPrec. The right operand is parsed with the consumed
// operator's precedence as the new floor, so equal-precedence chains group
// left-to-right.
func (p *Parser) parsePrecedence(minPrec int) (Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		op := p.current
		prec := infixPrecedence(op.Type)
		if prec <= minPrec {
			return left, nil
		}

		p.advance()
		right, err := p.parsePrecedence(prec)
		if err != nil {
			return nil, err
		}

		binop, ok := binaryOperatorFor(op.Type)
		if !ok {
			return nil, parseErrorf(InvalidInput, "unexpected operator %s", op)
		}
		left = &BinaryExpr{Op: binop, Left: left, Right: right}
	}
}

// parsePrimary parses a number, an identifier, or a parenthesized
// sub-expression.
func (p *Parser) parsePrimary() (Expression, error) {
	t := p.current
	switch t.Type {
	case NUMBER:
		p.advance()
		return &NumberExpr{Value: t.Number}, nil

	case IDENT:
		p.advance()
		return &IdentExpr{Name: t.Text}, nil

	case LPAREN:
		p.advance()
		expr, err := p.parsePrecedence(0)
		if err != nil {
			return nil, err
		}
		if p.current.Type != RPAREN {
			return nil, parseErrorf(InvalidInput, "expected closing parenthesis")
		}
		p.advance()
		return expr, nil

	case EOF:
		return nil, parseErrorf(InvalidInput, "unexpected end of input")

	default:
		return nil, parseErrorf(InvalidInput, "unexpected token %s", t)
	}
}

func binaryOperatorFor(t TokenType) (BinaryOperator, bool) {
	switch t {
	case PLUS:
		return Plus, true
	case MINUS:
		return Minus, true
	case ASTERISK:
		return Multiply, true
	case SLASH:
		return Divide, true
	default:
		return 0, false
	}
}
