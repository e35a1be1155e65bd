package crypto

import (
	"crypto/ed25519"
	"fmt"
	"io"
)

// Ensure the Ed25519 types implement the key interfaces at compile time.
var _ PrivateKey = (*ed25519PrivateKey)(nil)
var _ PublicKey = (*ed25519PublicKey)(nil)

type ed25519PrivateKey struct {
	key ed25519.PrivateKey
}

type ed25519PublicKey struct {
	key ed25519.PublicKey
}

func generateEd25519Key(r io.Reader) (PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyFailure, err)
	}
	return &ed25519PrivateKey{key: priv}, nil
}

func unmarshalEd25519PrivateKey(data []byte) (PrivateKey, error) {
	if len(data) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: Ed25519 private key must be %d bytes, got %d",
			ErrInvalidKeyLength, ed25519.SeedSize, len(data))
	}
	return &ed25519PrivateKey{key: ed25519.NewKeyFromSeed(data)}, nil
}

func unmarshalEd25519PublicKey(data []byte) (PublicKey, error) {
	if len(data) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: Ed25519 public key must be %d bytes, got %d",
			ErrInvalidKeyLength, ed25519.PublicKeySize, len(data))
	}
	pub := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(pub, data)
	return &ed25519PublicKey{key: pub}, nil
}

func (k *ed25519PrivateKey) Algorithm() Algorithm { return Ed25519 }

// Bytes returns the 32-byte seed form of the private key.
func (k *ed25519PrivateKey) Bytes() []byte {
	seed := make([]byte, ed25519.SeedSize)
	copy(seed, k.key.Seed())
	return seed
}

func (k *ed25519PrivateKey) Public() PublicKey {
	pub := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(pub, k.key.Public().(ed25519.PublicKey))
	return &ed25519PublicKey{key: pub}
}

// Sign is deterministic: the same key and message always produce the same
// signature (RFC 8032).
func (k *ed25519PrivateKey) Sign(message []byte) (*Signature, error) {
	return NewSignature(Ed25519, ed25519.Sign(k.key, message))
}

func (k *ed25519PrivateKey) Zero() {
	Zeroize(k.key)
}

func (k *ed25519PublicKey) Algorithm() Algorithm { return Ed25519 }

func (k *ed25519PublicKey) Bytes() []byte {
	buf := make([]byte, ed25519.PublicKeySize)
	copy(buf, k.key)
	return buf
}

func (k *ed25519PublicKey) KeyID() string { return keyID(k.key) }

func (k *ed25519PublicKey) Verify(message []byte, sig *Signature) (bool, error) {
	if sig == nil {
		return false, fmt.Errorf("%w: nil signature", ErrInvalidSignatureLength)
	}
	if sig.Algorithm() != Ed25519 {
		return false, fmt.Errorf("%w: %s signature, Ed25519 key",
			ErrAlgorithmMismatch, sig.Algorithm())
	}
	return ed25519.Verify(k.key, message, sig.data), nil
}
