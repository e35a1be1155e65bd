package capi

import (
	"github.com/sage-x-project/sage-crypto-go/pkg/crypto"
)

// GenerateKeyPair creates a key pair for the given algorithm tag
// (0 = Ed25519, 1 = Secp256k1) and returns its handle.
func (c *Context) GenerateKeyPair(tag int) (Handle, Status) {
	alg, err := crypto.AlgorithmFromTag(tag)
	if err != nil {
		return "", c.fail(err)
	}
	kp, err := crypto.Generate(alg)
	if err != nil {
		return "", c.fail(err)
	}
	h, err := c.registry.addKeyPair(kp)
	if err != nil {
		kp.Zero()
		return "", c.fail(err)
	}
	c.registry.metrics.KeyPairsGenerated.WithLabelValues(alg.String()).Inc()
	return h, c.succeed()
}

// SignMessage signs message with the key pair behind kpHandle and returns
// a handle to the new signature.
func (c *Context) SignMessage(kpHandle Handle, message []byte) (Handle, Status) {
	kp, err := c.registry.keyPair(kpHandle)
	if err != nil {
		return "", c.fail(err)
	}
	sig, err := kp.Sign(message)
	if err != nil {
		return "", c.fail(err)
	}
	h, err := c.registry.addSignature(sig)
	if err != nil {
		return "", c.fail(err)
	}
	c.registry.metrics.SignOperations.WithLabelValues(kp.Algorithm().String()).Inc()
	return h, c.succeed()
}

// VerifyMessage checks the signature behind sigHandle against message and
// the key pair behind kpHandle. The boolean result is meaningful only when
// the status is StatusSuccess: a signature that simply does not match
// reports (false, StatusSuccess), while a signature whose algorithm differs
// from the key's reports StatusAlgorithmMismatch.
func (c *Context) VerifyMessage(kpHandle Handle, message []byte, sigHandle Handle) (bool, Status) {
	kp, err := c.registry.keyPair(kpHandle)
	if err != nil {
		return false, c.fail(err)
	}
	sig, err := c.registry.signature(sigHandle)
	if err != nil {
		return false, c.fail(err)
	}
	ok, err := kp.Verify(message, sig)
	if err != nil {
		return false, c.fail(err)
	}
	result := "mismatch"
	if ok {
		result = "valid"
	}
	c.registry.metrics.VerifyOperations.WithLabelValues(kp.Algorithm().String(), result).Inc()
	return ok, c.succeed()
}

// SignatureToHex returns the lowercase, unprefixed hex encoding of the
// signature behind sigHandle.
func (c *Context) SignatureToHex(sigHandle Handle) (string, Status) {
	sig, err := c.registry.signature(sigHandle)
	if err != nil {
		return "", c.fail(err)
	}
	return sig.Hex(), c.succeed()
}

// SignatureFromHex parses a hex string into a new signature handle. The
// decoded length must match the algorithm's fixed signature size.
func (c *Context) SignatureFromHex(hexStr string, tag int) (Handle, Status) {
	alg, err := crypto.AlgorithmFromTag(tag)
	if err != nil {
		return "", c.fail(err)
	}
	sig, err := crypto.ParseHex(hexStr, alg)
	if err != nil {
		return "", c.fail(err)
	}
	h, err := c.registry.addSignature(sig)
	if err != nil {
		return "", c.fail(err)
	}
	return h, c.succeed()
}

// FreeKeyPair wipes the private key material behind the handle and
// invalidates it. A second call on the same handle reports
// StatusUseAfterFree and leaves unrelated handles untouched.
func (c *Context) FreeKeyPair(h Handle) Status {
	if err := c.registry.free(h, kindKeyPair); err != nil {
		return c.fail(err)
	}
	return c.succeed()
}

// FreeSignature releases the signature behind the handle and invalidates
// it, with the same double-free semantics as FreeKeyPair.
func (c *Context) FreeSignature(h Handle) Status {
	if err := c.registry.free(h, kindSignature); err != nil {
		return c.fail(err)
	}
	return c.succeed()
}

// KeyPairPublicKeyBytes returns the fixed-size raw public key behind the
// handle (32 bytes Ed25519, 33 bytes compressed Secp256k1).
func (c *Context) KeyPairPublicKeyBytes(h Handle) ([]byte, Status) {
	kp, err := c.registry.keyPair(h)
	if err != nil {
		return nil, c.fail(err)
	}
	return kp.PublicKey().Bytes(), c.succeed()
}

// KeyPairID returns the short key identifier derived from the public key.
func (c *Context) KeyPairID(h Handle) (string, Status) {
	kp, err := c.registry.keyPair(h)
	if err != nil {
		return "", c.fail(err)
	}
	return kp.ID(), c.succeed()
}

// KeyPairAlgorithm returns the algorithm tag of the key pair behind the
// handle.
func (c *Context) KeyPairAlgorithm(h Handle) (int, Status) {
	kp, err := c.registry.keyPair(h)
	if err != nil {
		return 0, c.fail(err)
	}
	return int(kp.Algorithm()), c.succeed()
}
