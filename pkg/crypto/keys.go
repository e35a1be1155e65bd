package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
)

// PublicKey is an algorithm-agnostic verifying key.
type PublicKey interface {
	// Algorithm returns the key's algorithm tag.
	Algorithm() Algorithm
	// Bytes returns the fixed-size raw encoding of the key.
	Bytes() []byte
	// KeyID returns a short stable identifier derived from the key bytes.
	KeyID() string
	// Verify reports whether sig is a valid signature over message.
	// A cryptographic mismatch yields (false, nil); an error is returned
	// only for malformed inputs, including a signature whose algorithm
	// tag differs from the key's.
	Verify(message []byte, sig *Signature) (bool, error)
}

// PrivateKey is an algorithm-agnostic signing key.
type PrivateKey interface {
	// Algorithm returns the key's algorithm tag.
	Algorithm() Algorithm
	// Bytes returns the fixed-size raw encoding of the key. The returned
	// slice contains secret material; callers should wipe it when done.
	Bytes() []byte
	// Public returns the corresponding public key.
	Public() PublicKey
	// Sign produces a signature over message.
	Sign(message []byte) (*Signature, error)
	// Zero wipes the key material in place. The key must not be used
	// afterwards.
	Zero()
}

// KeyPair owns a private/public key tuple bound to one algorithm. The
// public key is always the deterministic image of the private key; it is
// derived on construction and never independently settable.
type KeyPair struct {
	priv PrivateKey
	pub  PublicKey
	id   string
}

// Generate creates a new key pair for the given algorithm using the system
// entropy source.
func Generate(alg Algorithm) (*KeyPair, error) {
	return GenerateWithReader(alg, rand.Reader)
}

// GenerateWithReader creates a new key pair reading randomness from r.
// Deterministic readers are useful in tests.
func GenerateWithReader(alg Algorithm, r io.Reader) (*KeyPair, error) {
	var (
		priv PrivateKey
		err  error
	)
	switch alg {
	case Ed25519:
		priv, err = generateEd25519Key(r)
	case Secp256k1:
		priv, err = generateSecp256k1Key(r)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, int(alg))
	}
	if err != nil {
		return nil, err
	}
	return newKeyPair(priv), nil
}

// FromPrivateKeyBytes reconstructs a key pair from raw private key bytes.
// The public key is re-derived, so imported pairs can never carry a
// mismatched public half.
func FromPrivateKeyBytes(alg Algorithm, data []byte) (*KeyPair, error) {
	priv, err := UnmarshalPrivateKey(alg, data)
	if err != nil {
		return nil, err
	}
	return newKeyPair(priv), nil
}

func newKeyPair(priv PrivateKey) *KeyPair {
	pub := priv.Public()
	return &KeyPair{priv: priv, pub: pub, id: pub.KeyID()}
}

// Algorithm returns the pair's algorithm tag.
func (kp *KeyPair) Algorithm() Algorithm { return kp.priv.Algorithm() }

// ID returns the key identifier derived from the public key.
func (kp *KeyPair) ID() string { return kp.id }

// PublicKey returns the public half of the pair.
func (kp *KeyPair) PublicKey() PublicKey { return kp.pub }

// PrivateKey returns the private half of the pair.
func (kp *KeyPair) PrivateKey() PrivateKey { return kp.priv }

// Sign produces a signature over message with the pair's private key.
func (kp *KeyPair) Sign(message []byte) (*Signature, error) {
	return kp.priv.Sign(message)
}

// Verify reports whether sig is a valid signature over message under the
// pair's public key. See PublicKey.Verify for the mismatch semantics.
func (kp *KeyPair) Verify(message []byte, sig *Signature) (bool, error) {
	return kp.pub.Verify(message, sig)
}

// Zero wipes the private key material. The pair must not sign afterwards.
func (kp *KeyPair) Zero() {
	kp.priv.Zero()
}

// UnmarshalPublicKey decodes raw public key bytes for the given algorithm,
// validating length and curve membership.
func UnmarshalPublicKey(alg Algorithm, data []byte) (PublicKey, error) {
	switch alg {
	case Ed25519:
		return unmarshalEd25519PublicKey(data)
	case Secp256k1:
		return unmarshalSecp256k1PublicKey(data)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, int(alg))
	}
}

// UnmarshalPrivateKey decodes raw private key bytes for the given algorithm.
func UnmarshalPrivateKey(alg Algorithm, data []byte) (PrivateKey, error) {
	switch alg {
	case Ed25519:
		return unmarshalEd25519PrivateKey(data)
	case Secp256k1:
		return unmarshalSecp256k1PrivateKey(data)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, int(alg))
	}
}

// keyID derives the short key identifier: the hex encoding of the first
// eight bytes of the SHA-256 digest of the public key bytes.
func keyID(pub []byte) string {
	sum := sha256.Sum256(pub)
	return hex.EncodeToString(sum[:8])
}
