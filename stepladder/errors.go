package stepladder

import "errors"

var (
	ErrMalformedHeader = errors.New("stepladder: malformed header line")
	ErrMalformedWord   = errors.New("stepladder: malformed word line")
)
