package formats

import (
	"encoding/pem"
	"fmt"

	"github.com/sage-x-project/sage-crypto-go/pkg/crypto"
)

const (
	pemTypePublic           = "PUBLIC KEY"
	pemTypeEd25519Private   = "PRIVATE KEY"
	pemTypeSecp256k1Private = "EC PRIVATE KEY"
)

// ExportPublicKeyPEM wraps the raw public key bytes in a PUBLIC KEY block.
// The algorithm is recoverable from the fixed key length (32 bytes
// Ed25519, 33 bytes compressed secp256k1).
func ExportPublicKeyPEM(pub crypto.PublicKey) ([]byte, error) {
	return pem.EncodeToMemory(&pem.Block{
		Type:  pemTypePublic,
		Bytes: pub.Bytes(),
	}), nil
}

// ExportKeyPairPEM wraps the raw private key bytes in a PEM block whose
// type identifies the algorithm. The output contains secret material.
func ExportKeyPairPEM(kp *crypto.KeyPair) ([]byte, error) {
	var blockType string
	switch kp.Algorithm() {
	case crypto.Ed25519:
		blockType = pemTypeEd25519Private
	case crypto.Secp256k1:
		blockType = pemTypeSecp256k1Private
	default:
		return nil, fmt.Errorf("%w: %s", crypto.ErrUnsupportedAlgorithm, kp.Algorithm())
	}
	return pem.EncodeToMemory(&pem.Block{
		Type:  blockType,
		Bytes: kp.PrivateKey().Bytes(),
	}), nil
}

// ImportPublicKeyPEM decodes a PUBLIC KEY block, inferring the algorithm
// from the key length.
func ImportPublicKeyPEM(data []byte) (crypto.PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("no PEM block found")
	}
	if block.Type != pemTypePublic {
		return nil, fmt.Errorf("unexpected PEM block type %q", block.Type)
	}

	switch len(block.Bytes) {
	case crypto.Ed25519.PublicKeySize():
		return crypto.UnmarshalPublicKey(crypto.Ed25519, block.Bytes)
	case crypto.Secp256k1.PublicKeySize():
		return crypto.UnmarshalPublicKey(crypto.Secp256k1, block.Bytes)
	default:
		return nil, fmt.Errorf("%w: %d bytes matches no supported algorithm",
			crypto.ErrInvalidKeyLength, len(block.Bytes))
	}
}

// ImportKeyPairPEM decodes a private key block into a key pair. The block
// type selects the algorithm; the public key is re-derived.
func ImportKeyPairPEM(data []byte) (*crypto.KeyPair, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("no PEM block found")
	}

	var alg crypto.Algorithm
	switch block.Type {
	case pemTypeEd25519Private:
		alg = crypto.Ed25519
	case pemTypeSecp256k1Private:
		alg = crypto.Secp256k1
	default:
		return nil, fmt.Errorf("unexpected PEM block type %q", block.Type)
	}

	defer crypto.Zeroize(block.Bytes)
	return crypto.FromPrivateKeyBytes(alg, block.Bytes)
}
