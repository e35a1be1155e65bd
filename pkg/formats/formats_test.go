package formats

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sage-x-project/sage-crypto-go/pkg/crypto"
)

func TestJWKPublicKeyRoundTrip(t *testing.T) {
	for _, alg := range crypto.Algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			kp, err := crypto.Generate(alg)
			require.NoError(t, err)

			data, err := ExportPublicKeyJWK(kp.PublicKey())
			require.NoError(t, err)

			pub, err := ImportPublicKeyJWK(data)
			require.NoError(t, err)
			assert.Equal(t, kp.PublicKey().Bytes(), pub.Bytes())
			assert.Equal(t, alg, pub.Algorithm())
		})
	}
}

func TestJWKKeyPairRoundTrip(t *testing.T) {
	for _, alg := range crypto.Algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			kp, err := crypto.Generate(alg)
			require.NoError(t, err)

			data, err := ExportKeyPairJWK(kp)
			require.NoError(t, err)

			restored, err := ImportKeyPairJWK(data)
			require.NoError(t, err)
			assert.Equal(t, kp.PublicKey().Bytes(), restored.PublicKey().Bytes())
			assert.Equal(t, kp.ID(), restored.ID())

			// The restored pair signs verifiably.
			sig, err := restored.Sign([]byte("jwk round trip"))
			require.NoError(t, err)
			ok, err := kp.Verify([]byte("jwk round trip"), sig)
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestJWKShape(t *testing.T) {
	t.Run("Ed25519 OKP", func(t *testing.T) {
		kp, err := crypto.Generate(crypto.Ed25519)
		require.NoError(t, err)

		data, err := ExportPublicKeyJWK(kp.PublicKey())
		require.NoError(t, err)

		var doc map[string]any
		require.NoError(t, json.Unmarshal(data, &doc))
		assert.Equal(t, "OKP", doc["kty"])
		assert.Equal(t, "Ed25519", doc["crv"])
		assert.Equal(t, kp.ID(), doc["kid"])
		assert.NotContains(t, doc, "d")
	})

	t.Run("secp256k1 EC with coordinates", func(t *testing.T) {
		kp, err := crypto.Generate(crypto.Secp256k1)
		require.NoError(t, err)

		data, err := ExportKeyPairJWK(kp)
		require.NoError(t, err)

		var doc map[string]any
		require.NoError(t, json.Unmarshal(data, &doc))
		assert.Equal(t, "EC", doc["kty"])
		assert.Equal(t, "secp256k1", doc["crv"])
		assert.NotEmpty(t, doc["x"])
		assert.NotEmpty(t, doc["y"])
		assert.NotEmpty(t, doc["d"])
	})
}

func TestJWKImportErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{"},
		{"unknown kty", `{"kty":"RSA","n":"abc"}`},
		{"unknown curve", `{"kty":"EC","crv":"P-256","x":"AA","y":"AA"}`},
		{"missing x", `{"kty":"OKP","crv":"Ed25519"}`},
		{"padded base64", `{"kty":"OKP","crv":"Ed25519","x":"AAA="}`},
		{"wrong key length", `{"kty":"OKP","crv":"Ed25519","x":"AAAA"}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ImportPublicKeyJWK([]byte(test.data))
			assert.Error(t, err)
		})
	}

	t.Run("public-only document has no private key", func(t *testing.T) {
		kp, err := crypto.Generate(crypto.Ed25519)
		require.NoError(t, err)
		data, err := ExportPublicKeyJWK(kp.PublicKey())
		require.NoError(t, err)

		_, err = ImportKeyPairJWK(data)
		assert.ErrorContains(t, err, "no private key")
	})

	t.Run("coordinates off curve", func(t *testing.T) {
		x := base64.RawURLEncoding.EncodeToString(bytes.Repeat([]byte{0xff}, 32))
		doc := `{"kty":"EC","crv":"secp256k1","x":"` + x + `","y":"` + x + `"}`
		_, err := ImportPublicKeyJWK([]byte(doc))
		assert.ErrorIs(t, err, crypto.ErrInvalidPublicKey)
	})
}

func TestPEMRoundTrip(t *testing.T) {
	for _, alg := range crypto.Algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			kp, err := crypto.Generate(alg)
			require.NoError(t, err)

			pubPEM, err := ExportPublicKeyPEM(kp.PublicKey())
			require.NoError(t, err)
			assert.Contains(t, string(pubPEM), "PUBLIC KEY")

			pub, err := ImportPublicKeyPEM(pubPEM)
			require.NoError(t, err)
			assert.Equal(t, kp.PublicKey().Bytes(), pub.Bytes())
			assert.Equal(t, alg, pub.Algorithm())

			privPEM, err := ExportKeyPairPEM(kp)
			require.NoError(t, err)

			restored, err := ImportKeyPairPEM(privPEM)
			require.NoError(t, err)
			assert.Equal(t, kp.PublicKey().Bytes(), restored.PublicKey().Bytes())
		})
	}
}

func TestPEMBlockTypes(t *testing.T) {
	edKey, err := crypto.Generate(crypto.Ed25519)
	require.NoError(t, err)
	secpKey, err := crypto.Generate(crypto.Secp256k1)
	require.NoError(t, err)

	edPEM, err := ExportKeyPairPEM(edKey)
	require.NoError(t, err)
	assert.Contains(t, string(edPEM), "BEGIN PRIVATE KEY")

	secpPEM, err := ExportKeyPairPEM(secpKey)
	require.NoError(t, err)
	assert.Contains(t, string(secpPEM), "BEGIN EC PRIVATE KEY")
}

func TestPEMImportErrors(t *testing.T) {
	t.Run("no block", func(t *testing.T) {
		_, err := ImportPublicKeyPEM([]byte("not pem at all"))
		assert.Error(t, err)
	})

	t.Run("wrong block type for public import", func(t *testing.T) {
		kp, err := crypto.Generate(crypto.Ed25519)
		require.NoError(t, err)
		privPEM, err := ExportKeyPairPEM(kp)
		require.NoError(t, err)

		_, err = ImportPublicKeyPEM(privPEM)
		assert.ErrorContains(t, err, "block type")
	})

	t.Run("unknown block type for private import", func(t *testing.T) {
		pemData := "-----BEGIN CERTIFICATE-----\nAAAA\n-----END CERTIFICATE-----\n"
		_, err := ImportKeyPairPEM([]byte(pemData))
		assert.ErrorContains(t, err, "block type")
	})
}

func TestFormatDispatch(t *testing.T) {
	kp, err := crypto.Generate(crypto.Secp256k1)
	require.NoError(t, err)

	for _, format := range []KeyFormat{JWK, PEM, Raw} {
		t.Run(format.String(), func(t *testing.T) {
			pubData, err := ExportPublicKey(kp.PublicKey(), format)
			require.NoError(t, err)
			pub, err := ImportPublicKey(pubData, format, crypto.Secp256k1)
			require.NoError(t, err)
			assert.Equal(t, kp.PublicKey().Bytes(), pub.Bytes())

			privData, err := ExportKeyPair(kp, format)
			require.NoError(t, err)
			restored, err := ImportKeyPair(privData, format, crypto.Secp256k1)
			require.NoError(t, err)
			assert.Equal(t, kp.ID(), restored.ID())
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		_, err := ExportPublicKey(kp.PublicKey(), KeyFormat(9))
		assert.Error(t, err)
		assert.Equal(t, "Unknown", KeyFormat(9).String())
	})
}
