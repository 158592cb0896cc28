// Package verify orchestrates DSA signature verification: it loads the
// verifying key, decodes the DER signature, runs the verification engine,
// and assembles a detailed result.
//
// # Verification Flow
//
// Call Verify with the key location and the signed material:
//
//	result, err := service.Verify(&verify.VerifyRequest{
//		KeyPath:      "signer.pem",
//		Message:      payload,
//		SignatureDER: sigBytes,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !result.Valid {
//		log.Println("signature does not verify")
//	}
//
// A request carries either the raw message (hashed with SHA-256) or a
// precomputed digest in DigestHex, never both.
package verify

import "github.com/aumetra/signatures/dsa"

// VerifyRequest represents the parameters for verification
type VerifyRequest struct {
	KeyPath      string
	Message      []byte
	DigestHex    string
	SignatureDER []byte
}

// VerifyResult represents the result of verification
type VerifyResult struct {
	Valid          bool   `json:"valid"`
	ModulusBits    int    `json:"modulusBits"`
	SubgroupBits   int    `json:"subgroupBits"`
	PublicValueHex string `json:"publicValue"`
	RHex           string `json:"r"`
	SHex           string `json:"s"`
	DigestHex      string `json:"digest,omitempty"`

	Key       *dsa.VerifyingKey `json:"-"`
	Signature *dsa.Signature    `json:"-"`
}
