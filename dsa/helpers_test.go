package dsa

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aumetra/signatures/testdata"
)

func mustHexInt(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 16)
	require.True(t, ok, "bad hex integer fixture")
	return v
}

func mustHexBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func fixtureComponents(t *testing.T) *Components {
	t.Helper()
	components, err := NewComponents(
		mustHexInt(t, testdata.ParamPHex),
		mustHexInt(t, testdata.ParamQHex),
		mustHexInt(t, testdata.ParamGHex),
	)
	require.NoError(t, err)
	return components
}

func fixtureKey(t *testing.T) *VerifyingKey {
	t.Helper()
	key, err := NewVerifyingKey(fixtureComponents(t), mustHexInt(t, testdata.PublicYHex))
	require.NoError(t, err)
	return key
}

func fixtureSignature(t *testing.T) *Signature {
	t.Helper()
	sig, err := NewSignature(
		mustHexInt(t, testdata.SignatureRHex),
		mustHexInt(t, testdata.SignatureSHex),
	)
	require.NoError(t, err)
	return sig
}

func tinyComponents(t *testing.T) *Components {
	t.Helper()
	components, err := NewComponents(
		big.NewInt(testdata.TinyP),
		big.NewInt(testdata.TinyQ),
		big.NewInt(testdata.TinyG),
	)
	require.NoError(t, err)
	return components
}

// tinyKey derives the public key for secret x over the tiny parameter set.
func tinyKey(t *testing.T, x int64) *VerifyingKey {
	t.Helper()
	c := tinyComponents(t)
	y := new(big.Int).Exp(c.G(), big.NewInt(x), c.P())
	key, err := NewVerifyingKey(c, y)
	require.NoError(t, err)
	return key
}

// tinySign produces a valid signature over digest for secret x, using the
// first nonce at or after kStart that yields nonzero components. The tiny
// subgroup order is 9 bits wide, so exactly one digest byte enters z.
func tinySign(t *testing.T, x, kStart int64, digest []byte) *Signature {
	t.Helper()
	c := tinyComponents(t)
	p, q, g := c.P(), c.Q(), c.G()

	z := new(big.Int)
	if len(digest) > 0 {
		z.SetBytes(digest[:1])
	}

	for k := kStart; k < kStart+int64(testdata.TinyQ); k++ {
		kInt := big.NewInt(k % int64(testdata.TinyQ))
		if kInt.Sign() == 0 {
			continue
		}

		r := new(big.Int).Exp(g, kInt, p)
		r.Mod(r, q)
		if r.Sign() == 0 {
			continue
		}

		kInv := new(big.Int).ModInverse(kInt, q)
		s := new(big.Int).Mul(big.NewInt(x), r)
		s.Add(s, z)
		s.Mul(s, kInv)
		s.Mod(s, q)
		if s.Sign() == 0 {
			continue
		}

		sig, err := NewSignature(r, s)
		require.NoError(t, err)
		return sig
	}

	t.Fatal("no usable nonce found")
	return nil
}
