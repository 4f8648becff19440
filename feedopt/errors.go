package feedopt

import "errors"

// Sentinel errors returned by the feedopt package.
var (
	// ErrMalformedHeader indicates the "N W H" header line could not be parsed.
	ErrMalformedHeader = errors.New("feedopt: malformed header line")

	// ErrMalformedEvent indicates an event line was neither a well-formed
	// "S t s h" nor a well-formed "R t".
	ErrMalformedEvent = errors.New("feedopt: malformed event line")

	// ErrNegativeCapacity indicates H <= 0, which can never admit any story.
	ErrNegativeCapacity = errors.New("feedopt: page height H must be positive")
)
