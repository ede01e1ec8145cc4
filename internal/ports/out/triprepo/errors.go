package triprepo

import "errors"

var (
	ErrNotFound = errors.New("trip not found")
)
