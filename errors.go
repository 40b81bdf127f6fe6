package cablelock

import "errors"

// Sentinel errors for the cipher and certificate APIs.
// Callers should use errors.Is to test for these rather than comparing
// error strings.
var (
	// ErrInvalidArgument is returned for a nil buffer where one is required,
	// a zero-length input, a mis-sized key or IV, or an input length that is
	// not a multiple of the block size when padding was not requested.
	ErrInvalidArgument = errors.New("cablelock: invalid argument")

	// ErrAllocationFailure names the internal-allocation-failure error kind.
	// Go's allocator panics rather than returning an error on exhaustion, so
	// no function in this module returns it.
	ErrAllocationFailure = errors.New("cablelock: allocation failure")

	// ErrNegativeResult names the error kind for a big-integer subtraction
	// whose minuend is smaller than the subtrahend. internal/bigint.Subtract
	// reports that case with its own bigint.ErrNegativeResult; no function
	// in this package returns this sentinel.
	ErrNegativeResult = errors.New("cablelock: subtraction would produce a negative result")

	// ErrMalformedData is returned for ASN.1 lengths that run past the end
	// of the buffer, truncated PEM armor, or Base64 decode failures.
	ErrMalformedData = errors.New("cablelock: malformed data")

	// ErrNotImplemented is reserved for operations a caller can detect as
	// unsupported at the facade boundary; every operation spec.md names is
	// implemented in this module, so no function returns this sentinel.
	ErrNotImplemented = errors.New("cablelock: not implemented")
)
