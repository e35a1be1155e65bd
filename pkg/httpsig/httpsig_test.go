package httpsig

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sage-x-project/sage-crypto-go/pkg/crypto"
)

func newTestRequest(t *testing.T) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "https://api.example.com/agents/message?v=1", strings.NewReader(`{"msg":"hi"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSignVerifyRequest(t *testing.T) {
	for _, alg := range crypto.Algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			kp, err := crypto.Generate(alg)
			require.NoError(t, err)

			req := newTestRequest(t)
			require.NoError(t, NewSigner(kp).SignRequest(req))

			input := req.Header.Get("Signature-Input")
			assert.True(t, strings.HasPrefix(input, `sig1=("@method" "@path" "@authority");`))
			assert.Contains(t, input, `keyid="`+kp.ID()+`"`)
			assert.Contains(t, input, `alg="`+AlgorithmIdentifier(alg)+`"`)

			sig := req.Header.Get("Signature")
			assert.True(t, strings.HasPrefix(sig, "sig1=:"))
			assert.True(t, strings.HasSuffix(sig, ":"))

			require.NoError(t, NewVerifier(kp.PublicKey()).VerifyRequest(req))
		})
	}
}

func TestSignVerifyResponse(t *testing.T) {
	kp, err := crypto.Generate(crypto.Ed25519)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	rec.Header().Set("Content-Type", "application/json")
	rec.WriteHeader(http.StatusOK)
	resp := rec.Result()
	resp.Header.Set("Content-Type", "application/json")

	require.NoError(t, NewSigner(kp).SignResponse(resp))
	assert.True(t, strings.HasPrefix(resp.Header.Get("Signature-Input"), `sig1=("@status" "content-type");`))

	require.NoError(t, NewVerifier(kp.PublicKey()).VerifyResponse(resp))
}

func TestVerifyRequestTampered(t *testing.T) {
	kp, err := crypto.Generate(crypto.Ed25519)
	require.NoError(t, err)

	t.Run("method changed", func(t *testing.T) {
		req := newTestRequest(t)
		require.NoError(t, NewSigner(kp).SignRequest(req))
		req.Method = http.MethodDelete
		assert.ErrorIs(t, NewVerifier(kp.PublicKey()).VerifyRequest(req), ErrSignatureInvalid)
	})

	t.Run("path changed", func(t *testing.T) {
		req := newTestRequest(t)
		require.NoError(t, NewSigner(kp).SignRequest(req))
		req.URL.Path = "/agents/other"
		assert.ErrorIs(t, NewVerifier(kp.PublicKey()).VerifyRequest(req), ErrSignatureInvalid)
	})

	t.Run("signed header changed", func(t *testing.T) {
		req := newTestRequest(t)
		signer := NewSigner(kp).WithComponents(Method, Path, Authority, Header("Content-Type"))
		require.NoError(t, signer.SignRequest(req))
		req.Header.Set("Content-Type", "text/plain")
		assert.ErrorIs(t, NewVerifier(kp.PublicKey()).VerifyRequest(req), ErrSignatureInvalid)
	})

	t.Run("signature swapped", func(t *testing.T) {
		req := newTestRequest(t)
		require.NoError(t, NewSigner(kp).SignRequest(req))

		other := newTestRequest(t)
		other.URL.Path = "/different"
		require.NoError(t, NewSigner(kp).SignRequest(other))

		req.Header.Set("Signature", other.Header.Get("Signature"))
		assert.ErrorIs(t, NewVerifier(kp.PublicKey()).VerifyRequest(req), ErrSignatureInvalid)
	})
}

func TestVerifyRequestWrongKey(t *testing.T) {
	kp, err := crypto.Generate(crypto.Secp256k1)
	require.NoError(t, err)
	other, err := crypto.Generate(crypto.Secp256k1)
	require.NoError(t, err)

	req := newTestRequest(t)
	require.NoError(t, NewSigner(kp).SignRequest(req))

	err = NewVerifier(other.PublicKey()).VerifyRequest(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match verification key")
}

func TestVerifyRequestExpired(t *testing.T) {
	kp, err := crypto.Generate(crypto.Ed25519)
	require.NoError(t, err)

	signedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	signer := NewSigner(kp)
	signer.now = func() time.Time { return signedAt }

	req := newTestRequest(t)
	require.NoError(t, signer.SignRequest(req))

	t.Run("within lifetime", func(t *testing.T) {
		v := NewVerifier(kp.PublicKey())
		v.now = func() time.Time { return signedAt.Add(time.Minute) }
		assert.NoError(t, v.VerifyRequest(req))
	})

	t.Run("past expiry", func(t *testing.T) {
		v := NewVerifier(kp.PublicKey())
		v.now = func() time.Time { return signedAt.Add(signatureLifetime + time.Second) }
		err := v.VerifyRequest(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expired")
	})

	t.Run("created in the future", func(t *testing.T) {
		v := NewVerifier(kp.PublicKey())
		v.now = func() time.Time { return signedAt.Add(-maxClockSkew - time.Minute) }
		err := v.VerifyRequest(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "created in the future")
	})
}

func TestVerifyRequestMissingHeaders(t *testing.T) {
	kp, err := crypto.Generate(crypto.Ed25519)
	require.NoError(t, err)
	v := NewVerifier(kp.PublicKey())

	t.Run("no signature input", func(t *testing.T) {
		req := newTestRequest(t)
		err := v.VerifyRequest(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing Signature-Input")
	})

	t.Run("no signature", func(t *testing.T) {
		req := newTestRequest(t)
		req.Header.Set("Signature-Input", `sig1=("@method");created=1`)
		err := v.VerifyRequest(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing Signature")
	})

	t.Run("wrong label", func(t *testing.T) {
		req := newTestRequest(t)
		req.Header.Set("Signature-Input", `sig9=("@method");created=1`)
		req.Header.Set("Signature", "sig9=:AAAA:")
		err := v.VerifyRequest(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `no "sig1" entry`)
	})

	t.Run("unfenced signature bytes", func(t *testing.T) {
		req := newTestRequest(t)
		req.Header.Set("Signature-Input", `sig1=("@method");created=1`)
		req.Header.Set("Signature", "sig1=:AAAA")
		err := v.VerifyRequest(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a byte sequence")
	})
}

func TestParseSignatureInput(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		components, params, err := parseSignatureInput(`("@method" "@path" "content-type");keyid="abc";alg="ed25519";created=100;expires=400`)
		require.NoError(t, err)
		assert.Equal(t, []Component{Method, Path, Header("content-type")}, components)
		assert.Equal(t, "abc", params.KeyID)
		assert.Equal(t, "ed25519", params.Alg)
		assert.Equal(t, int64(100), params.Created)
		assert.Equal(t, int64(400), params.Expires)
	})

	t.Run("empty component list", func(t *testing.T) {
		components, params, err := parseSignatureInput(`();created=100`)
		require.NoError(t, err)
		assert.Empty(t, components)
		assert.Equal(t, int64(100), params.Created)
	})

	t.Run("unknown derived component", func(t *testing.T) {
		_, _, err := parseSignatureInput(`("@frobnicate");created=100`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported derived component")
	})

	t.Run("malformed", func(t *testing.T) {
		for _, input := range []string{"", "no parens", `("@method"`} {
			_, _, err := parseSignatureInput(input)
			assert.Error(t, err, "input %q", input)
		}
	})
}

func TestSignatureBaseShape(t *testing.T) {
	kp, err := crypto.Generate(crypto.Ed25519)
	require.NoError(t, err)

	req := newTestRequest(t)
	require.NoError(t, NewSigner(kp).SignRequest(req))

	input, _, err := extractSignatureHeaders(req.Header)
	require.NoError(t, err)

	values, err := canonicalizeRequest(req, []Component{Method, Path, Authority})
	require.NoError(t, err)

	base := signatureBase(values, input)
	lines := strings.Split(base, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, `"@method": POST`, lines[0])
	assert.Equal(t, `"@path": /agents/message`, lines[1])
	assert.Equal(t, `"@authority": api.example.com`, lines[2])
	assert.True(t, strings.HasPrefix(lines[3], `"@signature-params": ("@method" "@path" "@authority");`))
}

func TestCanonicalizeRequestComponents(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "https://example.com/a/b?x=1", nil)
	require.NoError(t, err)

	tests := []struct {
		component Component
		want      string
	}{
		{Method, "GET"},
		{TargetURI, "https://example.com/a/b?x=1"},
		{Authority, "example.com"},
		{Scheme, "https"},
		{RequestTarget, "/a/b?x=1"},
		{Path, "/a/b"},
		{Query, "?x=1"},
	}
	for _, tc := range tests {
		t.Run(string(tc.component), func(t *testing.T) {
			values, err := canonicalizeRequest(req, []Component{tc.component})
			require.NoError(t, err)
			require.Len(t, values, 1)
			assert.Equal(t, tc.want, values[0].value)
		})
	}

	t.Run("status invalid for requests", func(t *testing.T) {
		_, err := canonicalizeRequest(req, []Component{StatusCode})
		assert.Error(t, err)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := canonicalizeRequest(req, []Component{Header("X-Absent")})
		assert.Error(t, err)
	})
}
