// Package capi models the C-callable surface of the SAGE crypto core:
// opaque handles, integer status codes, and a per-context last-error
// message, layered over pkg/crypto.
//
// In Go the natural contract is explicit error returns, and pkg/crypto
// provides exactly that. This package exists for callers that need the
// ABI-shaped contract (status code in, handle out, message on demand)
// for bit-compatible interop with the existing bindings.
//
// # Handles
//
// Every key pair and signature is owned by a Registry and referred to by
// an opaque Handle. A handle moves through exactly one lifecycle:
//
//	Created → InUse (any number of operations) → Freed (terminal)
//
// Freeing a key pair wipes its private key material before the handle is
// invalidated. Handles are never reused, so a double free or any use of a
// freed handle is detected and reported as StatusUseAfterFree rather than
// corrupting unrelated state.
//
// # Error reporting
//
// Each Context keeps the message of the most recent failure observed
// through it. Contexts are independent: concurrent callers using separate
// contexts never observe each other's errors. Successful calls clear the
// message; reading it when no error is pending yields the NoError
// sentinel.
//
// Callers must treat the boolean result of VerifyMessage as meaningful
// only when the status is StatusSuccess. A verification that simply does
// not match reports StatusSuccess with a false result, never an error
// status.
package capi
