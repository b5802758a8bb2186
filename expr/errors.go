package expr

import "errors"

var (
	ErrEmptyExpression    = errors.New("empty expression")
	ErrUnknownToken       = errors.New("unknown token")
	ErrUnterminatedSet    = errors.New("unterminated set literal")
	ErrBadElement         = errors.New("bad set element")
	ErrStackUnderflow     = errors.New("operator needs two operands")
	ErrTrailingOperands   = errors.New("operands left after evaluation")
	ErrComparisonNotFinal = errors.New("comparison must be the last operator")
)
