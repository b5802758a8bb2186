package expr

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/tuannh982/intset/utils/collections"
)

type Kind int

const (
	KindSet Kind = iota
	KindOperator
)

type Operator string

const (
	OpUnion        Operator = "+"
	OpIntersection Operator = "*"
	OpDifference   Operator = "-"
	OpCompare      Operator = "<=>"
	OpEqual        Operator = "=="
)

var operators = []Operator{OpCompare, OpEqual, OpUnion, OpIntersection, OpDifference}

func (op Operator) isComparison() bool {
	return op == OpCompare || op == OpEqual
}

type Token struct {
	Kind     Kind
	Pos      int
	Operator Operator
	// Values of a set literal, ascending and without repeats.
	Values []int
}

// Tokenize splits input into set literals and operators. Literal elements may
// be given in any order and are separated by commas or blanks.
func Tokenize(input string) (collections.Queue[Token], error) {
	tokens := collections.NewQueue[Token]()
	pos := 0
	for pos < len(input) {
		c := input[pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			pos++
		case c == '{':
			end := strings.IndexByte(input[pos:], '}')
			if end < 0 {
				return nil, errors.Wrapf(ErrUnterminatedSet, "at %d", pos)
			}
			values, err := parseElements(input[pos+1:pos+end], pos+1)
			if err != nil {
				return nil, err
			}
			tokens.Push(Token{Kind: KindSet, Pos: pos, Values: values})
			pos += end + 1
		default:
			op, ok := matchOperator(input[pos:])
			if !ok {
				return nil, errors.Wrapf(ErrUnknownToken, "%q at %d", input[pos:pos+1], pos)
			}
			tokens.Push(Token{Kind: KindOperator, Pos: pos, Operator: op})
			pos += len(op)
		}
	}
	if tokens.IsEmpty() {
		return nil, ErrEmptyExpression
	}
	return tokens, nil
}

func matchOperator(s string) (Operator, bool) {
	for _, op := range operators {
		if strings.HasPrefix(s, string(op)) {
			return op, true
		}
	}
	return "", false
}

func parseElements(body string, offset int) ([]int, error) {
	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(ErrBadElement, "%q in set at %d", f, offset-1)
		}
		values = append(values, v)
	}
	slices.Sort(values)
	return slices.Compact(values), nil
}
