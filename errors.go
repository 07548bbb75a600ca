package vterm

import "errors"

var (
	errInvalidSize = errors.New("vterm: width and height must be positive")
)
