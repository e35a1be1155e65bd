// Package httpsig signs and verifies HTTP messages following RFC 9421
// (HTTP Message Signatures), using the SAGE key types from pkg/crypto.
//
// A Signer canonicalizes a chosen set of message components into a
// signature base, signs the base with a key pair, and attaches the
// Signature-Input and Signature headers (label "sig1"). A Verifier
// reverses the process: it reconstructs the base from the received
// message and the declared components, checks the timestamps and key
// identifier carried in the signature parameters, and verifies the
// signature against a public key.
//
// The package only computes and checks headers; it performs no network
// I/O.
package httpsig
