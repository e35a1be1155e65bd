package crypto

import "fmt"

// Algorithm identifies a supported signature algorithm. The numeric values
// are part of the external contract (0 = Ed25519, 1 = Secp256k1) and must
// not be reordered.
type Algorithm int

const (
	// Ed25519 is the RFC 8032 signature algorithm over edwards25519.
	Ed25519 Algorithm = iota
	// Secp256k1 is ECDSA over the secp256k1 curve with SHA-256 message
	// hashing and 64-byte compact signatures.
	Secp256k1
)

// Algorithms lists every supported algorithm.
var Algorithms = []Algorithm{Ed25519, Secp256k1}

// AlgorithmFromTag validates an external integer tag and returns the
// corresponding Algorithm. Unknown tags are rejected here, before any key
// or signature is constructed.
func AlgorithmFromTag(tag int) (Algorithm, error) {
	switch Algorithm(tag) {
	case Ed25519, Secp256k1:
		return Algorithm(tag), nil
	default:
		return 0, fmt.Errorf("%w: tag %d", ErrUnsupportedAlgorithm, tag)
	}
}

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Ed25519:
		return "Ed25519"
	case Secp256k1:
		return "Secp256k1"
	default:
		return "Unknown"
	}
}

// Valid reports whether a is part of the closed algorithm set.
func (a Algorithm) Valid() bool {
	switch a {
	case Ed25519, Secp256k1:
		return true
	default:
		return false
	}
}

// PrivateKeySize returns the fixed private key length in bytes.
func (a Algorithm) PrivateKeySize() int {
	switch a {
	case Ed25519:
		return 32 // seed form
	case Secp256k1:
		return 32 // curve scalar
	default:
		return 0
	}
}

// PublicKeySize returns the fixed public key length in bytes.
func (a Algorithm) PublicKeySize() int {
	switch a {
	case Ed25519:
		return 32
	case Secp256k1:
		return 33 // compressed SEC1 point
	default:
		return 0
	}
}

// SignatureSize returns the fixed signature length in bytes.
func (a Algorithm) SignatureSize() int {
	switch a {
	case Ed25519:
		return 64
	case Secp256k1:
		return 64 // compact r||s
	default:
		return 0
	}
}
