package common

import "github.com/cockroachdb/errors"

var (
	ErrorInvalidValue = errors.New("invalid value")
	ErrorEmptySample  = errors.New("empty sample")

	// ErrorDepthExceeded is returned when the decomposition recurses deeper
	// than the configured bound.
	ErrorDepthExceeded = errors.New("decomposition depth exceeded")
)
