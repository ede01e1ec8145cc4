package clientrepo

import "errors"

var (
	ErrNotFound = errors.New("client not found")
)
