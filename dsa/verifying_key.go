package dsa

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidKey is returned when a candidate public value fails the
// lower-bound or subgroup-membership check. No partial key is ever
// returned alongside it.
var ErrInvalidKey = errors.New("dsa: invalid verifying key")

var two = big.NewInt(2)

// VerifyingKey is a DSA public key: a shared domain parameter set plus the
// public value y. Immutable after construction.
type VerifyingKey struct {
	components *Components
	y          *big.Int
}

// NewVerifyingKey validates the public value against the domain parameters
// and returns the key. The subgroup-membership check (y^q mod p == 1) is
// mandatory: a public value outside the order-q subgroup would let forged
// signatures pass a naive verification.
func NewVerifyingKey(components *Components, y *big.Int) (*VerifyingKey, error) {
	if components == nil {
		return nil, fmt.Errorf("%w: missing domain parameters", ErrInvalidKey)
	}
	if y == nil || y.Cmp(two) < 0 || y.Cmp(components.p) >= 0 {
		return nil, fmt.Errorf("%w: public value out of range", ErrInvalidKey)
	}
	if arith.Exp(components.g, components.q, components.p).Cmp(one) != 0 {
		return nil, fmt.Errorf("%w: generator outside the order-q subgroup", ErrInvalidKey)
	}
	if arith.Exp(y, components.q, components.p).Cmp(one) != 0 {
		return nil, fmt.Errorf("%w: public value outside the order-q subgroup", ErrInvalidKey)
	}

	return &VerifyingKey{components: components, y: y}, nil
}

// Components returns the shared domain parameters of this key.
func (k *VerifyingKey) Components() *Components { return k.components }

// Y returns the public value. The returned value is shared and must be
// treated as read-only.
func (k *VerifyingKey) Y() *big.Int { return k.y }
