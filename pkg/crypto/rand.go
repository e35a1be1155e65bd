package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"runtime"
)

// RandomBytes returns n cryptographically secure random bytes from the
// system entropy source.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyFailure, err)
	}
	return b, nil
}

// GenerateNonce returns a 32-byte random nonce.
func GenerateNonce() ([]byte, error) {
	return RandomBytes(32)
}

// Zeroize wipes the buffer. Best effort: the noinline directive and the
// KeepAlive reduce the chance the compiler elides the writes.
//
//go:noinline
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
