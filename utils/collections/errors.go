package collections

import "errors"

var (
	ErrEmpty = errors.New("collection is empty")
)
