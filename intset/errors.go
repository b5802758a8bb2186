package intset

import "errors"

var (
	ErrUnsorted = errors.New("values are not strictly increasing")
)
