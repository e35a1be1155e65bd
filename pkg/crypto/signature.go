package crypto

import (
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// Signature is an algorithm-tagged signature. The tag is required to verify
// the signature later; it is deliberately not embedded in the hex form, so
// callers must track the algorithm out of band, mirroring how verification
// always requires the original key.
type Signature struct {
	alg  Algorithm
	data []byte
}

// NewSignature wraps raw signature bytes, validating their length against
// the algorithm's fixed signature size. The bytes are copied.
func NewSignature(alg Algorithm, data []byte) (*Signature, error) {
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, int(alg))
	}
	if len(data) != alg.SignatureSize() {
		return nil, fmt.Errorf("%w: %s signature must be %d bytes, got %d",
			ErrInvalidSignatureLength, alg, alg.SignatureSize(), len(data))
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return &Signature{alg: alg, data: buf}, nil
}

// ParseHex decodes a lowercase (or uppercase) unprefixed hex string and
// validates the decoded length against the algorithm's signature size.
func ParseHex(s string, alg Algorithm) (*Signature, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHex, err)
	}
	return NewSignature(alg, raw)
}

// Algorithm returns the algorithm tag the signature was produced with.
func (s *Signature) Algorithm() Algorithm { return s.alg }

// Bytes returns a copy of the raw signature bytes.
func (s *Signature) Bytes() []byte {
	buf := make([]byte, len(s.data))
	copy(buf, s.data)
	return buf
}

// Hex returns the lowercase, unprefixed hexadecimal encoding of the raw
// signature bytes. Its length is exactly twice the byte length.
func (s *Signature) Hex() string {
	return hex.EncodeToString(s.data)
}

// Base64 returns the standard base64 encoding of the raw signature bytes.
func (s *Signature) Base64() string {
	return base64.StdEncoding.EncodeToString(s.data)
}

// Equal reports whether two signatures carry the same algorithm tag and
// byte-identical contents. The comparison is constant time.
func (s *Signature) Equal(other *Signature) bool {
	if other == nil {
		return false
	}
	if s.alg != other.alg {
		return false
	}
	return subtle.ConstantTimeCompare(s.data, other.data) == 1
}

// String implements fmt.Stringer without exposing signature bytes in full.
func (s *Signature) String() string {
	return fmt.Sprintf("%s signature (%d bytes)", s.alg, len(s.data))
}
