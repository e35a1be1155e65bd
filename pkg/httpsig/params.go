package httpsig

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sage-x-project/sage-crypto-go/pkg/crypto"
)

// Params are the signature parameters carried alongside the component
// list in the Signature-Input header.
type Params struct {
	KeyID   string
	Alg     string
	Created int64
	Expires int64
	Nonce   string
	Tag     string
}

// String serializes the parameters in their canonical order. Zero-valued
// fields are omitted.
func (p Params) String() string {
	var parts []string
	if p.KeyID != "" {
		parts = append(parts, fmt.Sprintf("keyid=%q", p.KeyID))
	}
	if p.Alg != "" {
		parts = append(parts, fmt.Sprintf("alg=%q", p.Alg))
	}
	if p.Created != 0 {
		parts = append(parts, fmt.Sprintf("created=%d", p.Created))
	}
	if p.Expires != 0 {
		parts = append(parts, fmt.Sprintf("expires=%d", p.Expires))
	}
	if p.Nonce != "" {
		parts = append(parts, fmt.Sprintf("nonce=%q", p.Nonce))
	}
	if p.Tag != "" {
		parts = append(parts, fmt.Sprintf("tag=%q", p.Tag))
	}
	return strings.Join(parts, ";")
}

func parseParams(s string) Params {
	var p Params
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		switch key {
		case "keyid":
			p.KeyID = strings.Trim(value, `"`)
		case "alg":
			p.Alg = strings.Trim(value, `"`)
		case "created":
			p.Created, _ = strconv.ParseInt(value, 10, 64)
		case "expires":
			p.Expires, _ = strconv.ParseInt(value, 10, 64)
		case "nonce":
			p.Nonce = strings.Trim(value, `"`)
		case "tag":
			p.Tag = strings.Trim(value, `"`)
		}
	}
	return p
}

// AlgorithmIdentifier returns the RFC 9421 registry name for a SAGE
// algorithm.
func AlgorithmIdentifier(alg crypto.Algorithm) string {
	switch alg {
	case crypto.Ed25519:
		return "ed25519"
	case crypto.Secp256k1:
		return "ecdsa-secp256k1-sha256"
	default:
		return ""
	}
}
