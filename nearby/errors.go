package nearby

import "errors"

var (
	ErrMalformedHeader   = errors.New("nearby: malformed header line")
	ErrMalformedTopic    = errors.New("nearby: malformed topic line")
	ErrMalformedQuestion = errors.New("nearby: malformed question line")
	ErrMalformedQuery    = errors.New("nearby: malformed query line")
	ErrUnknownQueryType  = errors.New("nearby: unknown query type")
)
