package capi

import (
	"errors"

	"github.com/sage-x-project/sage-crypto-go/pkg/crypto"
)

// Status is the integer result of every fallible operation. Zero means
// success; the nonzero values form a closed set and their numeric values
// are part of the external contract.
type Status int32

const (
	// StatusSuccess indicates the call completed. For VerifyMessage this
	// includes a signature that does not match: the call succeeded, the
	// boolean result is false.
	StatusSuccess Status = 0
	// StatusInvalidArgument indicates a null, malformed, or wrong-length
	// input, including unknown algorithm tags and unknown handles.
	StatusInvalidArgument Status = 1
	// StatusAlgorithmMismatch indicates a signature whose algorithm tag
	// differs from the key it was verified against.
	StatusAlgorithmMismatch Status = 2
	// StatusCryptoFailure indicates a backend-level failure such as a
	// malformed curve point or an entropy source error.
	StatusCryptoFailure Status = 3
	// StatusAllocationFailure indicates resource exhaustion, such as a
	// registry that reached its configured handle capacity.
	StatusAllocationFailure Status = 4
	// StatusUseAfterFree indicates the handle was already released.
	StatusUseAfterFree Status = 5
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusInvalidArgument:
		return "InvalidArgument"
	case StatusAlgorithmMismatch:
		return "AlgorithmMismatch"
	case StatusCryptoFailure:
		return "CryptoFailure"
	case StatusAllocationFailure:
		return "AllocationFailure"
	case StatusUseAfterFree:
		return "UseAfterFree"
	default:
		return "Unknown"
	}
}

// OK reports whether the status is StatusSuccess.
func (s Status) OK() bool { return s == StatusSuccess }

// statusFromError maps core errors onto the closed status set.
func statusFromError(err error) Status {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, crypto.ErrAlgorithmMismatch):
		return StatusAlgorithmMismatch
	case errors.Is(err, crypto.ErrUnsupportedAlgorithm),
		errors.Is(err, crypto.ErrInvalidKeyLength),
		errors.Is(err, crypto.ErrInvalidSignatureLength),
		errors.Is(err, crypto.ErrMalformedHex):
		return StatusInvalidArgument
	case errors.Is(err, errUnknownHandle), errors.Is(err, errKindMismatch):
		return StatusInvalidArgument
	case errors.Is(err, errHandleFreed):
		return StatusUseAfterFree
	case errors.Is(err, errRegistryFull):
		return StatusAllocationFailure
	default:
		return StatusCryptoFailure
	}
}
