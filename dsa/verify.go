package dsa

import (
	"crypto/sha256"
	"hash"
	"math/big"
)

// Verify reports whether signature is a valid DSA signature over message.
// The message is hashed with SHA-256, the scheme default for this module.
func (k *VerifyingKey) Verify(message []byte, signature *Signature) bool {
	digest := sha256.Sum256(message)
	return k.VerifyPrehash(digest[:], signature)
}

// VerifyDigest finalizes the running hash h and verifies the signature
// over the resulting digest. h is not reset.
func (k *VerifyingKey) VerifyDigest(h hash.Hash, signature *Signature) bool {
	return k.VerifyPrehash(h.Sum(nil), signature)
}

// VerifyPrehash reports whether signature is a valid DSA signature over a
// digest computed by the caller. Malformed inputs report an invalid
// signature, never a panic.
//
// Only the leftmost min(bitlen(q)/8, len(digest)) bytes of the digest
// enter the computation. DSA defines the exponent input as the leftmost
// min(N, outlen) bits of the hash; truncating to whole bytes is the
// established interoperable behavior and is kept exactly.
func (k *VerifyingKey) VerifyPrehash(digest []byte, signature *Signature) bool {
	if signature == nil {
		return false
	}

	p, q, g := k.components.p, k.components.q, k.components.g
	r, s := signature.r, signature.s

	// Required fast-reject path for attacker-supplied signatures. There is
	// no secret material in verification, so the early exit leaks nothing.
	if r.Sign() <= 0 || s.Sign() <= 0 || r.Cmp(q) >= 0 || s.Cmp(q) >= 0 {
		return false
	}

	w := arith.ModInverse(s, q)
	if w == nil {
		return false
	}

	n := q.BitLen() / 8
	if n > len(digest) {
		n = len(digest)
	}
	z := new(big.Int).SetBytes(digest[:n])

	u1 := new(big.Int).Mul(z, w)
	u1.Mod(u1, q)
	u2 := new(big.Int).Mul(r, w)
	u2.Mod(u2, q)

	v := new(big.Int).Mul(arith.Exp(g, u1, p), arith.Exp(k.y, u2, p))
	v.Mod(v, p)
	v.Mod(v, q)

	return v.Cmp(r) == 0
}
