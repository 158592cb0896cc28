package dsa

import "math/big"

// modArith is the big-integer capability the verification engine runs on.
// Implementations must return nil from ModInverse when a has no inverse
// modulo m.
type modArith interface {
	Exp(base, exp, mod *big.Int) *big.Int
	ModInverse(a, mod *big.Int) *big.Int
}

// bigArith backs the engine with math/big. Exp uses whatever internal
// representation math/big picks for the modulus; the engine only relies on
// the result being correct.
type bigArith struct{}

func (bigArith) Exp(base, exp, mod *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, mod)
}

func (bigArith) ModInverse(a, mod *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, mod)
}

var arith modArith = bigArith{}
