package dsa

import (
	"encoding/asn1"
	"errors"
	"fmt"
	"math/big"
)

// Signature is an immutable DSA signature value (r, s). Construction only
// requires both components to be positive; the range check against q
// happens during verification, since an attacker-supplied signature must
// be checked rather than trusted.
type Signature struct {
	r *big.Int
	s *big.Int
}

// NewSignature builds a signature value from its two components. The
// inputs are copied so later mutation by the caller cannot reach the pair.
func NewSignature(r, s *big.Int) (*Signature, error) {
	if r == nil || s == nil || r.Sign() <= 0 || s.Sign() <= 0 {
		return nil, errors.New("dsa: signature components must be positive")
	}

	return &Signature{
		r: new(big.Int).Set(r),
		s: new(big.Int).Set(s),
	}, nil
}

// R returns the first signature component. Read-only.
func (sig *Signature) R() *big.Int { return sig.r }

// S returns the second signature component. Read-only.
func (sig *Signature) S() *big.Int { return sig.s }

// dsaSignature mirrors the conventional ASN.1 layout of a DSA signature,
// a SEQUENCE of the two unsigned integers.
type dsaSignature struct {
	R, S *big.Int
}

// MarshalSignatureDER converts a signature to the conventional
// two-integer DER sequence.
func MarshalSignatureDER(sig *Signature) ([]byte, error) {
	if sig == nil {
		return nil, errors.New("dsa: nil signature")
	}
	return asn1.Marshal(dsaSignature{R: sig.r, S: sig.s})
}

// ParseSignatureDER decodes a two-integer DER sequence into a signature.
func ParseSignatureDER(der []byte) (*Signature, error) {
	var raw dsaSignature
	rest, err := asn1.Unmarshal(der, &raw)
	if err != nil {
		return nil, fmt.Errorf("dsa: failed to decode signature: %w", err)
	}
	if len(rest) != 0 {
		return nil, errors.New("dsa: trailing data after signature")
	}

	return NewSignature(raw.R, raw.S)
}
