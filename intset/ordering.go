package intset

// Ordering is the result of comparing two sets by inclusion. Inclusion is a
// partial order, so two sets may be Unordered.
type Ordering int

const (
	Unordered Ordering = iota
	Equivalent
	Less
	Greater
)

func (o Ordering) String() string {
	switch o {
	case Equivalent:
		return "equivalent"
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "unordered"
	}
}

// Reverse returns the ordering seen from the other operand.
func (o Ordering) Reverse() Ordering {
	switch o {
	case Less:
		return Greater
	case Greater:
		return Less
	default:
		return o
	}
}
