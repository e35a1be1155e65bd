package formats

import (
	"fmt"

	"github.com/sage-x-project/sage-crypto-go/pkg/crypto"
)

// KeyFormat identifies a key interchange format.
type KeyFormat int

const (
	// JWK is the JSON Web Key format.
	JWK KeyFormat = iota
	// PEM wraps raw key bytes in a PEM block.
	PEM
	// Raw is the fixed-size byte encoding from pkg/crypto.
	Raw
)

// String returns the format name.
func (f KeyFormat) String() string {
	switch f {
	case JWK:
		return "JWK"
	case PEM:
		return "PEM"
	case Raw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// ExportPublicKey encodes a public key in the given format.
func ExportPublicKey(pub crypto.PublicKey, format KeyFormat) ([]byte, error) {
	switch format {
	case JWK:
		return ExportPublicKeyJWK(pub)
	case PEM:
		return ExportPublicKeyPEM(pub)
	case Raw:
		return pub.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown key format %d", int(format))
	}
}

// ExportKeyPair encodes the private half of a key pair in the given
// format. The output contains secret material.
func ExportKeyPair(kp *crypto.KeyPair, format KeyFormat) ([]byte, error) {
	switch format {
	case JWK:
		return ExportKeyPairJWK(kp)
	case PEM:
		return ExportKeyPairPEM(kp)
	case Raw:
		return kp.PrivateKey().Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown key format %d", int(format))
	}
}

// ImportPublicKey decodes a public key. JWK and PEM are self-describing;
// alg is consulted only for Raw input.
func ImportPublicKey(data []byte, format KeyFormat, alg crypto.Algorithm) (crypto.PublicKey, error) {
	switch format {
	case JWK:
		return ImportPublicKeyJWK(data)
	case PEM:
		return ImportPublicKeyPEM(data)
	case Raw:
		return crypto.UnmarshalPublicKey(alg, data)
	default:
		return nil, fmt.Errorf("unknown key format %d", int(format))
	}
}

// ImportKeyPair decodes private material into a key pair, re-deriving the
// public key. alg is consulted only for Raw input.
func ImportKeyPair(data []byte, format KeyFormat, alg crypto.Algorithm) (*crypto.KeyPair, error) {
	switch format {
	case JWK:
		return ImportKeyPairJWK(data)
	case PEM:
		return ImportKeyPairPEM(data)
	case Raw:
		return crypto.FromPrivateKeyBytes(alg, data)
	default:
		return nil, fmt.Errorf("unknown key format %d", int(format))
	}
}
