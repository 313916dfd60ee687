package treemap

import (
	"errors"
)

var ErrInvalidKey = errors.New("key is nil")

var ErrInvalidEntry = errors.New("invalid tree map entry")

var ErrIncomparable = errors.New("keys can not be ordered")

var ErrInvalidTree = errors.New("invalid tree map structure")
