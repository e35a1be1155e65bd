// Package crypto implements the SAGE signing core: key pair generation,
// digital signatures, and verification across the supported algorithm
// families.
//
// Two algorithms are supported:
//
//   - Ed25519: RFC 8032 deterministic signatures over edwards25519.
//     Private keys are 32-byte seeds, public keys 32 bytes, signatures
//     64 bytes.
//   - Secp256k1: ECDSA over the secp256k1 curve with RFC 6979
//     deterministic nonces. The message is hashed with SHA-256 before
//     signing. Private keys are 32-byte scalars, public keys 33-byte
//     compressed SEC1 points, signatures 64-byte compact r||s.
//
// Both algorithms therefore produce the same signature for the same
// (key, message) input on every call.
//
// The primary types are:
//
//   - KeyPair: an algorithm-tagged private/public key tuple
//   - PublicKey / PrivateKey: algorithm-agnostic key interfaces
//   - Signature: algorithm-tagged signature bytes with hex round-tripping
//
// A failed verification is not an error: Verify returns (false, nil) for
// any cryptographic mismatch and reserves its error return for malformed
// inputs, such as a signature whose algorithm tag differs from the key's.
//
// Usage
//
//	kp, err := crypto.Generate(crypto.Ed25519)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer kp.Zero()
//
//	sig, err := kp.Sign([]byte("hello world"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ok, err := kp.Verify([]byte("hello world"), sig)
//	fmt.Println(ok, err) // true <nil>
package crypto
