package crypto

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"fmt"
	"io"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// Ensure the Secp256k1 types implement the key interfaces at compile time.
var _ PrivateKey = (*secp256k1PrivateKey)(nil)
var _ PublicKey = (*secp256k1PublicKey)(nil)

type secp256k1PrivateKey struct {
	key *ecdsa.PrivateKey
}

type secp256k1PublicKey struct {
	key *ecdsa.PublicKey
}

func generateSecp256k1Key(r io.Reader) (PrivateKey, error) {
	key, err := ecdsa.GenerateKey(ethcrypto.S256(), r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyFailure, err)
	}
	return &secp256k1PrivateKey{key: key}, nil
}

func unmarshalSecp256k1PrivateKey(data []byte) (PrivateKey, error) {
	if len(data) != Secp256k1.PrivateKeySize() {
		return nil, fmt.Errorf("%w: Secp256k1 private key must be %d bytes, got %d",
			ErrInvalidKeyLength, Secp256k1.PrivateKeySize(), len(data))
	}
	key, err := ethcrypto.ToECDSA(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	return &secp256k1PrivateKey{key: key}, nil
}

func unmarshalSecp256k1PublicKey(data []byte) (PublicKey, error) {
	if len(data) != Secp256k1.PublicKeySize() {
		return nil, fmt.Errorf("%w: Secp256k1 public key must be %d bytes (compressed), got %d",
			ErrInvalidKeyLength, Secp256k1.PublicKeySize(), len(data))
	}
	key, err := ethcrypto.DecompressPubkey(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return &secp256k1PublicKey{key: key}, nil
}

func (k *secp256k1PrivateKey) Algorithm() Algorithm { return Secp256k1 }

// Bytes returns the 32-byte big-endian scalar.
func (k *secp256k1PrivateKey) Bytes() []byte {
	return ethcrypto.FromECDSA(k.key)
}

func (k *secp256k1PrivateKey) Public() PublicKey {
	return &secp256k1PublicKey{key: &k.key.PublicKey}
}

// Sign hashes the message with SHA-256 and signs the digest. Nonces are
// deterministic (RFC 6979), so identical inputs always yield the same
// 64-byte compact r||s signature.
func (k *secp256k1PrivateKey) Sign(message []byte) (*Signature, error) {
	digest := sha256.Sum256(message)
	sig, err := ethcrypto.Sign(digest[:], k.key)
	if err != nil {
		return nil, fmt.Errorf("secp256k1 signing failed: %w", err)
	}
	// Drop the recovery id; the external form is compact r||s.
	return NewSignature(Secp256k1, sig[:64])
}

func (k *secp256k1PrivateKey) Zero() {
	// Overwrite the scalar limbs in place before dropping the value.
	k.key.D.SetBytes(make([]byte, Secp256k1.PrivateKeySize()))
}

func (k *secp256k1PublicKey) Algorithm() Algorithm { return Secp256k1 }

// Bytes returns the 33-byte compressed SEC1 encoding.
func (k *secp256k1PublicKey) Bytes() []byte {
	return ethcrypto.CompressPubkey(k.key)
}

func (k *secp256k1PublicKey) KeyID() string { return keyID(k.Bytes()) }

func (k *secp256k1PublicKey) Verify(message []byte, sig *Signature) (bool, error) {
	if sig == nil {
		return false, fmt.Errorf("%w: nil signature", ErrInvalidSignatureLength)
	}
	if sig.Algorithm() != Secp256k1 {
		return false, fmt.Errorf("%w: %s signature, Secp256k1 key",
			ErrAlgorithmMismatch, sig.Algorithm())
	}
	digest := sha256.Sum256(message)
	return ethcrypto.VerifySignature(k.Bytes(), digest[:], sig.data), nil
}
