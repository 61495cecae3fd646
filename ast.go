package relq

import (
	"fmt"
	"strconv"
)

// BinaryOperator is an arithmetic operator in an expression tree.
type BinaryOperator int

const (
	Plus BinaryOperator = iota
	Minus
	Multiply
	Divide
)

func (op BinaryOperator) String() string {
	switch op {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	default:
		return fmt.Sprintf("BinaryOperator(%d)", int(op))
	}
}

func (op BinaryOperator) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", op.String())), nil
}

// Expression is a node in an expression tree. String renders the node fully
// parenthesized, which makes grouping explicit in tests and REPL output.
type Expression interface {
	exprNode()
	String() string
}

// BinaryExpr is a binary arithmetic operation. Each node owns its operands
// exclusively; the tree has no sharing and no cycles.
type BinaryExpr struct {
	Op    BinaryOperator `json:"operator"`
	Left  Expression     `json:"left"`
	Right Expression     `json:"right"`
}

func (*BinaryExpr) exprNode() {}

func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right)
}

// NumberExpr is an unsigned integer literal.
type NumberExpr struct {
	Value uint64 `json:"number"`
}

func (*NumberExpr) exprNode() {}

func (e *NumberExpr) String() string {
	return strconv.FormatUint(e.Value, 10)
}

// IdentExpr is a reference to a named value, such as a column.
type IdentExpr struct {
	Name string `json:"identifier"`
}

func (*IdentExpr) exprNode() {}

func (e *IdentExpr) String() string {
	return e.Name
}
