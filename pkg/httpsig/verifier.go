package httpsig

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sage-x-project/sage-crypto-go/pkg/crypto"
)

// maxClockSkew tolerates created timestamps slightly in the future of the
// verifier's clock.
const maxClockSkew = 5 * time.Minute

// ErrSignatureInvalid is returned when the signature does not verify over
// the reconstructed base.
var ErrSignatureInvalid = fmt.Errorf("httpsig: signature does not match message")

// Verifier checks RFC 9421 signatures on HTTP messages against a known
// public key.
type Verifier struct {
	publicKey crypto.PublicKey
	now       func() time.Time
}

// NewVerifier creates a verifier for the given public key.
func NewVerifier(pub crypto.PublicKey) *Verifier {
	return &Verifier{publicKey: pub, now: time.Now}
}

// VerifyRequest reconstructs the signature base from the request and
// checks both the signature parameters and the signature itself.
func (v *Verifier) VerifyRequest(req *http.Request) error {
	input, sig, err := extractSignatureHeaders(req.Header)
	if err != nil {
		return err
	}
	components, params, err := parseSignatureInput(input)
	if err != nil {
		return err
	}
	if err := v.checkParams(params); err != nil {
		return err
	}
	values, err := canonicalizeRequest(req, components)
	if err != nil {
		return fmt.Errorf("canonicalize request: %w", err)
	}
	return v.verify(values, input, sig)
}

// VerifyResponse reconstructs the signature base from the response and
// checks both the signature parameters and the signature itself.
func (v *Verifier) VerifyResponse(resp *http.Response) error {
	input, sig, err := extractSignatureHeaders(resp.Header)
	if err != nil {
		return err
	}
	components, params, err := parseSignatureInput(input)
	if err != nil {
		return err
	}
	if err := v.checkParams(params); err != nil {
		return err
	}
	values, err := canonicalizeResponse(resp, components)
	if err != nil {
		return fmt.Errorf("canonicalize response: %w", err)
	}
	return v.verify(values, input, sig)
}

func (v *Verifier) verify(values []componentValue, input string, sig []byte) error {
	base := signatureBase(values, input)
	signature, err := crypto.NewSignature(v.publicKey.Algorithm(), sig)
	if err != nil {
		return fmt.Errorf("decode signature: %w", err)
	}
	ok, err := v.publicKey.Verify([]byte(base), signature)
	if err != nil {
		return fmt.Errorf("verify signature: %w", err)
	}
	if !ok {
		return ErrSignatureInvalid
	}
	return nil
}

// checkParams validates the signature window and key binding.
func (v *Verifier) checkParams(params Params) error {
	now := v.now().Unix()
	if params.Created != 0 && params.Created > now+int64(maxClockSkew.Seconds()) {
		return fmt.Errorf("signature created in the future (created=%d)", params.Created)
	}
	if params.Expires != 0 && params.Expires < now {
		return fmt.Errorf("signature expired at %d", params.Expires)
	}
	if params.KeyID != "" && params.KeyID != v.publicKey.KeyID() {
		return fmt.Errorf("signature key %q does not match verification key %q", params.KeyID, v.publicKey.KeyID())
	}
	return nil
}

// extractSignatureHeaders pulls the sig1 signature input and raw signature
// bytes from the Signature-Input and Signature headers.
func extractSignatureHeaders(h http.Header) (input string, sig []byte, err error) {
	rawInput := h.Get("Signature-Input")
	if rawInput == "" {
		return "", nil, fmt.Errorf("missing Signature-Input header")
	}
	input, ok := strings.CutPrefix(rawInput, signatureLabel+"=")
	if !ok {
		return "", nil, fmt.Errorf("Signature-Input has no %q entry", signatureLabel)
	}

	rawSig := h.Get("Signature")
	if rawSig == "" {
		return "", nil, fmt.Errorf("missing Signature header")
	}
	encoded, ok := strings.CutPrefix(rawSig, signatureLabel+"=:")
	if !ok {
		return "", nil, fmt.Errorf("Signature has no %q entry", signatureLabel)
	}
	encoded, ok = strings.CutSuffix(encoded, ":")
	if !ok {
		return "", nil, fmt.Errorf("Signature entry is not a byte sequence")
	}
	sig, err = base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, fmt.Errorf("decode signature: %w", err)
	}
	return input, sig, nil
}

// parseSignatureInput splits a signature input value into its component
// list and parameters.
func parseSignatureInput(input string) ([]Component, Params, error) {
	if !strings.HasPrefix(input, "(") {
		return nil, Params{}, fmt.Errorf("malformed signature input %q", input)
	}
	end := strings.Index(input, ")")
	if end < 0 {
		return nil, Params{}, fmt.Errorf("malformed signature input %q", input)
	}

	var components []Component
	list := input[1:end]
	if list != "" {
		for _, field := range strings.Fields(list) {
			id := strings.Trim(field, `"`)
			c, err := parseComponent(id)
			if err != nil {
				return nil, Params{}, err
			}
			components = append(components, c)
		}
	}

	rest := strings.TrimPrefix(input[end+1:], ";")
	return components, parseParams(rest), nil
}
