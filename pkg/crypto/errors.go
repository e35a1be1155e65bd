package crypto

import "errors"

var (
	// ErrUnsupportedAlgorithm is returned when an algorithm tag is not part
	// of the closed set of supported algorithms.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrInvalidKeyLength is returned when raw key material does not match
	// the fixed length the algorithm expects.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidSignatureLength is returned when raw signature bytes do not
	// match the fixed length the algorithm expects.
	ErrInvalidSignatureLength = errors.New("invalid signature length")

	// ErrInvalidPublicKey is returned when public key bytes have the right
	// length but do not decode to a valid key, such as a compressed point
	// that is not on the curve.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidPrivateKey is returned when private key bytes have the right
	// length but do not form a valid scalar for the curve.
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrMalformedHex is returned when a hex signature string contains
	// non-hexadecimal characters or has odd length.
	ErrMalformedHex = errors.New("malformed hex signature")

	// ErrAlgorithmMismatch is returned when a signature's algorithm tag
	// differs from the key it is being verified against. This is reported
	// instead of a silent false so callers can distinguish a wiring bug
	// from a cryptographic mismatch.
	ErrAlgorithmMismatch = errors.New("signature algorithm does not match key algorithm")

	// ErrEntropyFailure is returned when the system entropy source fails
	// during key generation. It is never retried internally.
	ErrEntropyFailure = errors.New("entropy source failure")
)
