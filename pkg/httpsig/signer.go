package httpsig

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sage-x-project/sage-crypto-go/pkg/crypto"
)

// signatureLabel is the label this package uses for its signature. Only a
// single signature per message is supported.
const signatureLabel = "sig1"

// signatureLifetime is how long an emitted signature stays valid.
const signatureLifetime = 5 * time.Minute

// Signer attaches RFC 9421 signatures to HTTP messages using a SAGE key
// pair.
type Signer struct {
	keyPair    *crypto.KeyPair
	components []Component
	now        func() time.Time
}

// NewSigner creates a signer covering @method, @path, and @authority on
// requests. Responses are always signed over @status and content-type.
func NewSigner(kp *crypto.KeyPair) *Signer {
	return &Signer{
		keyPair:    kp,
		components: []Component{Method, Path, Authority},
		now:        time.Now,
	}
}

// WithComponents replaces the request components to sign.
func (s *Signer) WithComponents(components ...Component) *Signer {
	s.components = components
	return s
}

// SignRequest canonicalizes the request, signs the base, and sets the
// Signature-Input and Signature headers in place.
func (s *Signer) SignRequest(req *http.Request) error {
	values, err := canonicalizeRequest(req, s.components)
	if err != nil {
		return fmt.Errorf("canonicalize request: %w", err)
	}
	return s.attach(req.Header, s.components, values)
}

// SignResponse signs @status and content-type, setting the signature
// headers on the response in place.
func (s *Signer) SignResponse(resp *http.Response) error {
	components := []Component{StatusCode, Header("content-type")}
	values, err := canonicalizeResponse(resp, components)
	if err != nil {
		return fmt.Errorf("canonicalize response: %w", err)
	}
	return s.attach(resp.Header, components, values)
}

func (s *Signer) attach(h http.Header, components []Component, values []componentValue) error {
	now := s.now().Unix()
	params := Params{
		KeyID:   s.keyPair.ID(),
		Alg:     AlgorithmIdentifier(s.keyPair.Algorithm()),
		Created: now,
		Expires: now + int64(signatureLifetime.Seconds()),
	}

	input := signatureInput(components, params)
	base := signatureBase(values, input)

	sig, err := s.keyPair.Sign([]byte(base))
	if err != nil {
		return fmt.Errorf("sign message base: %w", err)
	}

	h.Set("Signature-Input", fmt.Sprintf("%s=%s", signatureLabel, input))
	h.Set("Signature", fmt.Sprintf("%s=:%s:", signatureLabel, base64.StdEncoding.EncodeToString(sig.Bytes())))
	return nil
}

// signatureInput builds the value shared by the Signature-Input header
// and the @signature-params base line: the quoted component list followed
// by the parameters.
func signatureInput(components []Component, params Params) string {
	ids := make([]string, len(components))
	for i, c := range components {
		ids[i] = fmt.Sprintf("%q", c.Identifier())
	}
	return fmt.Sprintf("(%s);%s", strings.Join(ids, " "), params)
}
