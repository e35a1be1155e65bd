// Package formats imports and exports SAGE keys in interchange formats.
//
// Supported formats:
//
//   - JWK (RFC 7517): Ed25519 keys as OKP, secp256k1 keys as EC with
//     explicit x/y coordinates; private halves carried in "d" using
//     unpadded base64url throughout.
//   - PEM: raw key bytes in a single block. Public keys use the
//     "PUBLIC KEY" block type, Ed25519 private keys "PRIVATE KEY", and
//     secp256k1 private keys "EC PRIVATE KEY".
//   - Raw: the fixed-size byte encodings defined by pkg/crypto.
//
// Importing private material always re-derives the public key, so a
// tampered or inconsistent public half in the input can never survive the
// round trip. Imported JWK documents are structurally validated before
// any decoding happens.
package formats
