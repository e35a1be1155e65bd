package formats

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/go-playground/validator/v10"

	"github.com/sage-x-project/sage-crypto-go/pkg/crypto"
)

var validate = validator.New()

// ed25519JWK is the OKP representation from RFC 8037.
type ed25519JWK struct {
	Kty string `json:"kty" validate:"required,eq=OKP"`
	Crv string `json:"crv" validate:"required,eq=Ed25519"`
	X   string `json:"x" validate:"required,base64rawurl"`
	D   string `json:"d,omitempty" validate:"omitempty,base64rawurl"`
	Kid string `json:"kid,omitempty"`
}

// secp256k1JWK is the EC representation with explicit coordinates.
type secp256k1JWK struct {
	Kty string `json:"kty" validate:"required,eq=EC"`
	Crv string `json:"crv" validate:"required,eq=secp256k1"`
	X   string `json:"x" validate:"required,base64rawurl"`
	Y   string `json:"y" validate:"required,base64rawurl"`
	D   string `json:"d,omitempty" validate:"omitempty,base64rawurl"`
	Kid string `json:"kid,omitempty"`
}

// jwkHeader is the minimal shape needed to dispatch on key type.
type jwkHeader struct {
	Kty string `json:"kty"`
	Crv string `json:"crv"`
}

var b64url = base64.RawURLEncoding

// ExportPublicKeyJWK encodes a public key as a JWK document.
func ExportPublicKeyJWK(pub crypto.PublicKey) ([]byte, error) {
	switch pub.Algorithm() {
	case crypto.Ed25519:
		return json.Marshal(ed25519JWK{
			Kty: "OKP",
			Crv: "Ed25519",
			X:   b64url.EncodeToString(pub.Bytes()),
			Kid: pub.KeyID(),
		})
	case crypto.Secp256k1:
		x, y, err := secp256k1Coordinates(pub.Bytes())
		if err != nil {
			return nil, err
		}
		return json.Marshal(secp256k1JWK{
			Kty: "EC",
			Crv: "secp256k1",
			X:   x,
			Y:   y,
			Kid: pub.KeyID(),
		})
	default:
		return nil, fmt.Errorf("%w: %s", crypto.ErrUnsupportedAlgorithm, pub.Algorithm())
	}
}

// ExportKeyPairJWK encodes a key pair as a JWK document including the
// private "d" parameter. The output contains secret material.
func ExportKeyPairJWK(kp *crypto.KeyPair) ([]byte, error) {
	switch kp.Algorithm() {
	case crypto.Ed25519:
		return json.Marshal(ed25519JWK{
			Kty: "OKP",
			Crv: "Ed25519",
			X:   b64url.EncodeToString(kp.PublicKey().Bytes()),
			D:   b64url.EncodeToString(kp.PrivateKey().Bytes()),
			Kid: kp.ID(),
		})
	case crypto.Secp256k1:
		x, y, err := secp256k1Coordinates(kp.PublicKey().Bytes())
		if err != nil {
			return nil, err
		}
		return json.Marshal(secp256k1JWK{
			Kty: "EC",
			Crv: "secp256k1",
			X:   x,
			Y:   y,
			D:   b64url.EncodeToString(kp.PrivateKey().Bytes()),
			Kid: kp.ID(),
		})
	default:
		return nil, fmt.Errorf("%w: %s", crypto.ErrUnsupportedAlgorithm, kp.Algorithm())
	}
}

// ImportPublicKeyJWK decodes a JWK document into a public key.
func ImportPublicKeyJWK(data []byte) (crypto.PublicKey, error) {
	var header jwkHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("malformed JWK: %w", err)
	}

	switch {
	case header.Kty == "OKP" && header.Crv == "Ed25519":
		var jwk ed25519JWK
		if err := json.Unmarshal(data, &jwk); err != nil {
			return nil, fmt.Errorf("malformed Ed25519 JWK: %w", err)
		}
		if err := validate.Struct(jwk); err != nil {
			return nil, fmt.Errorf("invalid Ed25519 JWK: %w", err)
		}
		raw, err := b64url.DecodeString(jwk.X)
		if err != nil {
			return nil, fmt.Errorf("invalid JWK x parameter: %w", err)
		}
		return crypto.UnmarshalPublicKey(crypto.Ed25519, raw)

	case header.Kty == "EC" && header.Crv == "secp256k1":
		var jwk secp256k1JWK
		if err := json.Unmarshal(data, &jwk); err != nil {
			return nil, fmt.Errorf("malformed secp256k1 JWK: %w", err)
		}
		if err := validate.Struct(jwk); err != nil {
			return nil, fmt.Errorf("invalid secp256k1 JWK: %w", err)
		}
		compressed, err := compressCoordinates(jwk.X, jwk.Y)
		if err != nil {
			return nil, err
		}
		return crypto.UnmarshalPublicKey(crypto.Secp256k1, compressed)

	default:
		return nil, fmt.Errorf("%w: kty=%q crv=%q", crypto.ErrUnsupportedAlgorithm, header.Kty, header.Crv)
	}
}

// ImportKeyPairJWK decodes a JWK document carrying a private "d" parameter
// into a key pair. The public key is re-derived from d.
func ImportKeyPairJWK(data []byte) (*crypto.KeyPair, error) {
	var header jwkHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("malformed JWK: %w", err)
	}

	var (
		alg crypto.Algorithm
		d   string
	)
	switch {
	case header.Kty == "OKP" && header.Crv == "Ed25519":
		var jwk ed25519JWK
		if err := json.Unmarshal(data, &jwk); err != nil {
			return nil, fmt.Errorf("malformed Ed25519 JWK: %w", err)
		}
		if err := validate.Struct(jwk); err != nil {
			return nil, fmt.Errorf("invalid Ed25519 JWK: %w", err)
		}
		alg, d = crypto.Ed25519, jwk.D
	case header.Kty == "EC" && header.Crv == "secp256k1":
		var jwk secp256k1JWK
		if err := json.Unmarshal(data, &jwk); err != nil {
			return nil, fmt.Errorf("malformed secp256k1 JWK: %w", err)
		}
		if err := validate.Struct(jwk); err != nil {
			return nil, fmt.Errorf("invalid secp256k1 JWK: %w", err)
		}
		alg, d = crypto.Secp256k1, jwk.D
	default:
		return nil, fmt.Errorf("%w: kty=%q crv=%q", crypto.ErrUnsupportedAlgorithm, header.Kty, header.Crv)
	}

	if d == "" {
		return nil, fmt.Errorf("JWK carries no private key parameter")
	}
	raw, err := b64url.DecodeString(d)
	if err != nil {
		return nil, fmt.Errorf("invalid JWK d parameter: %w", err)
	}
	defer crypto.Zeroize(raw)
	return crypto.FromPrivateKeyBytes(alg, raw)
}

// secp256k1Coordinates expands a compressed public key into base64url x/y.
func secp256k1Coordinates(compressed []byte) (x, y string, err error) {
	pub, err := ethcrypto.DecompressPubkey(compressed)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", crypto.ErrInvalidPublicKey, err)
	}
	return b64url.EncodeToString(pub.X.FillBytes(make([]byte, 32))),
		b64url.EncodeToString(pub.Y.FillBytes(make([]byte, 32))), nil
}

// compressCoordinates rebuilds the compressed SEC1 form from base64url x/y,
// rejecting points that are not on the curve.
func compressCoordinates(xStr, yStr string) ([]byte, error) {
	x, err := b64url.DecodeString(xStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWK x parameter: %w", err)
	}
	y, err := b64url.DecodeString(yStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWK y parameter: %w", err)
	}
	if len(x) != 32 || len(y) != 32 {
		return nil, fmt.Errorf("%w: coordinates must be 32 bytes", crypto.ErrInvalidPublicKey)
	}

	// SEC1 uncompressed: 0x04 || X || Y. UnmarshalPubkey checks curve
	// membership.
	uncompressed := make([]byte, 0, 65)
	uncompressed = append(uncompressed, 0x04)
	uncompressed = append(uncompressed, x...)
	uncompressed = append(uncompressed, y...)

	pub, err := ethcrypto.UnmarshalPubkey(uncompressed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", crypto.ErrInvalidPublicKey, err)
	}
	return ethcrypto.CompressPubkey(pub), nil
}
