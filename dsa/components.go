// Package dsa implements verification of classical DSA signatures.
//
// This package provides:
//   - Domain parameter and verifying key types with algebraic validation
//   - Signature verification over messages, precomputed digests, and
//     running hash states
//   - DER encoding/decoding of the SubjectPublicKeyInfo key container
//   - DER encoding/decoding of the conventional two-integer signature
//
// # Verification
//
// Verify a signature over a raw message:
//
//	valid := key.Verify(message, signature)
//
// Or over a digest computed by the caller:
//
//	valid := key.VerifyPrehash(digest, signature)
//
// # Key decoding
//
// Parse a DER-encoded public key container:
//
//	key, err := dsa.ParsePublicKey(der)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Domain parameters and verifying keys are immutable after construction
// and safe for concurrent use by any number of verification calls.
package dsa

import (
	"errors"
	"math/big"
)

var one = big.NewInt(1)

// Components holds the DSA domain parameters (p, q, g): the prime modulus,
// the prime order of the subgroup, and the subgroup generator. One
// Components value is shared by reference across every key of a parameter
// set and is never mutated after construction.
type Components struct {
	p *big.Int
	q *big.Int
	g *big.Int
}

// NewComponents builds a domain parameter set. It enforces the structural
// bounds 0 < q < p and 1 < g < p; the subgroup invariant g^q mod p == 1 is
// checked once at key construction.
func NewComponents(p, q, g *big.Int) (*Components, error) {
	if p == nil || q == nil || g == nil {
		return nil, errors.New("dsa: domain parameters must not be nil")
	}
	if p.Sign() <= 0 || q.Sign() <= 0 {
		return nil, errors.New("dsa: domain parameters must be positive")
	}
	if q.Cmp(p) >= 0 {
		return nil, errors.New("dsa: subgroup order must be smaller than the modulus")
	}
	if g.Cmp(one) <= 0 || g.Cmp(p) >= 0 {
		return nil, errors.New("dsa: generator out of range")
	}

	return &Components{p: p, q: q, g: g}, nil
}

// P returns the prime modulus. The returned value is shared and must be
// treated as read-only.
func (c *Components) P() *big.Int { return c.p }

// Q returns the prime subgroup order. The returned value is shared and
// must be treated as read-only.
func (c *Components) Q() *big.Int { return c.q }

// G returns the subgroup generator. The returned value is shared and must
// be treated as read-only.
func (c *Components) G() *big.Int { return c.g }
