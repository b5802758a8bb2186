package expr

import (
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/tuannh982/intset/intset"
	"github.com/tuannh982/intset/utils/collections"
)

type ResultKind int

const (
	ResultSet ResultKind = iota
	ResultOrdering
	ResultEqual
)

type Result struct {
	Kind     ResultKind
	Set      *intset.Set
	Ordering intset.Ordering
	Equal    bool
}

func (r *Result) String() string {
	switch r.Kind {
	case ResultOrdering:
		return r.Ordering.String()
	case ResultEqual:
		return strconv.FormatBool(r.Equal)
	default:
		return r.Set.String()
	}
}

type Option func(e *Evaluator)

func WithLogger(l *log.Entry) Option {
	return func(e *Evaluator) {
		e.log = l
	}
}

// WithCounter makes every set built by the evaluator report its node
// allocations to c.
func WithCounter(c intset.Counter) Option {
	return func(e *Evaluator) {
		e.setOpts = append(e.setOpts, intset.WithCounter(c))
	}
}

// Evaluator computes set expressions written in reverse Polish notation,
// e.g. "{1,3,5} {3,5,7} +" or "{1,2} {1,2,3} <=>".
type Evaluator struct {
	log     *log.Entry
	setOpts []intset.Option
}

func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		log: log.WithFields(log.Fields{"component": "expr"}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Evaluator) Eval(input string) (*Result, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	return e.EvalTokens(tokens)
}

func (e *Evaluator) EvalTokens(tokens collections.Queue[Token]) (*Result, error) {
	operands := collections.NewStack[*intset.Set]()
	for !tokens.IsEmpty() {
		tok, err := tokens.Pop()
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindSet {
			s, err := intset.FromSorted(tok.Values, e.setOpts...)
			if err != nil {
				return nil, errors.Wrapf(err, "set at %d", tok.Pos)
			}
			operands.Push(s)
			continue
		}
		a, b, err := popPair(operands)
		if err != nil {
			return nil, errors.Wrapf(err, "%s at %d", tok.Operator, tok.Pos)
		}
		if tok.Operator.isComparison() {
			if !tokens.IsEmpty() {
				return nil, errors.Wrapf(ErrComparisonNotFinal, "%s at %d", tok.Operator, tok.Pos)
			}
			if !operands.IsEmpty() {
				return nil, errors.Wrapf(ErrTrailingOperands, "%d left", operands.Size())
			}
			return e.compare(tok.Operator, a, b), nil
		}
		operands.Push(e.apply(tok.Operator, a, b))
	}
	if operands.Size() != 1 {
		return nil, errors.Wrapf(ErrTrailingOperands, "%d left", operands.Size())
	}
	s, err := operands.Pop()
	if err != nil {
		return nil, err
	}
	return &Result{Kind: ResultSet, Set: s}, nil
}

// popPair pops the right operand first.
func popPair(operands collections.Stack[*intset.Set]) (a, b *intset.Set, err error) {
	if operands.Size() < 2 {
		return nil, nil, ErrStackUnderflow
	}
	if b, err = operands.Pop(); err != nil {
		return nil, nil, err
	}
	if a, err = operands.Pop(); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func (e *Evaluator) apply(op Operator, a, b *intset.Set) *intset.Set {
	before := a.String()
	switch op {
	case OpUnion:
		a.Union(b)
	case OpIntersection:
		a.Intersect(b)
	case OpDifference:
		a.Subtract(b)
	}
	e.log.WithFields(log.Fields{"op": string(op), "left": before, "right": b.String()}).Debug("reduce ", a.String())
	b.Release()
	return a
}

func (e *Evaluator) compare(op Operator, a, b *intset.Set) *Result {
	if op == OpEqual {
		eq := a.Equal(b)
		e.log.WithFields(log.Fields{"left": a.String(), "right": b.String()}).Debug("equal ", eq)
		return &Result{Kind: ResultEqual, Equal: eq}
	}
	o := a.Compare(b)
	e.log.WithFields(log.Fields{"left": a.String(), "right": b.String()}).Debug("compare ", o)
	return &Result{Kind: ResultOrdering, Ordering: o}
}
