package data

import "errors"

// Failure classes shared across the cache, the upstream client and the
// navigator. Wrapped with fmt.Errorf("%w: ...") so callers can test
// them with errors.Is.
var (
	// ErrNotFound means a requested local artifact does not exist.
	ErrNotFound = errors.New("not in cache")
	// ErrFetch means a network request failed or returned a non-success status.
	ErrFetch = errors.New("fetch failed")
	// ErrParse means a response body was not valid JSON or missed required fields.
	ErrParse = errors.New("malformed response")
	// ErrInvalidInput means the caller passed something unusable, like a URL
	// with no comic number in it.
	ErrInvalidInput = errors.New("invalid input")
)
