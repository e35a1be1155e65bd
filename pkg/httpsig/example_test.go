package httpsig_test

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/sage-x-project/sage-crypto-go/pkg/crypto"
	"github.com/sage-x-project/sage-crypto-go/pkg/httpsig"
)

// Example signs an outgoing agent request and verifies it with the
// agent's public key, as a receiving peer would.
func Example() {
	kp, err := crypto.Generate(crypto.Ed25519)
	if err != nil {
		panic(err)
	}

	req, err := http.NewRequest(http.MethodPost, "https://agent.example.com/v1/message", strings.NewReader(`{"task":"ping"}`))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")

	signer := httpsig.NewSigner(kp).WithComponents(
		httpsig.Method, httpsig.Path, httpsig.Authority, httpsig.Header("Content-Type"),
	)
	if err := signer.SignRequest(req); err != nil {
		panic(err)
	}

	verifier := httpsig.NewVerifier(kp.PublicKey())
	fmt.Println("verified:", verifier.VerifyRequest(req) == nil)

	req.Header.Set("Content-Type", "text/plain")
	fmt.Println("tampered:", verifier.VerifyRequest(req) == nil)

	// Output:
	// verified: true
	// tampered: false
}
