// Package testdata provides shared DSA test fixtures used across all test
// packages.
//
// The 1024/160 fixture set is mutually consistent: PublicYHex lies in the
// order-q subgroup of the parameters, and (SignatureRHex, SignatureSHex)
// is a valid signature over the SHA-256 digest of Message under that key.
// PublicKeyDERHex is the exact SubjectPublicKeyInfo encoding of the key.
package testdata

const (
	// ParamPHex is a 1024-bit prime modulus.
	ParamPHex = "93d7e2853ff54762676f6a884e36a633ceac1a1d46e8ace0a5bde09b2ed906847e894e2d497a21265397bd091f03e0145655d0112f479805b37223f61996ca783f6c726aa7b904f575b7e7133df4553ded12e04ea1fab77c2523454639858c00980fe661f012c26d7a4c2af01a756ab8f8915a72789f5283956b3f7ccd57d4cb"

	// ParamQHex is the 160-bit prime order of the subgroup.
	ParamQHex = "9b2c16da0dc04141652bf03b7bb67d93611e4f09"

	// ParamGHex generates the order-q subgroup mod p.
	ParamGHex = "143acd0e6d76028572ec67f170b6eb44021210dea9208932aeba93b88a1a47bc6f4828f001c812ce6c41c9aad72407d69a0dbbf5e0bd994b7fa996e37ed37495e01d4aebfbd1a7cb8016c873e54cf5770cb9de1db7495296ae06f84a6ba61f8a93214faeb8978c718c897ed7e6bb9bc0eab413c90467a827416e0425a27ea7fd"

	// PublicYHex is the public value of the fixture key.
	PublicYHex = "2b5078319e5bcc2d19255d999f6c464cb6c57a922f94b01052f5d12e6ada157ec70f03249101a8e876e8e2b38b219e54adbed0e44c57ec286b0b23004c240b926afa7705723a89dad62f8f86096523ba6bdc2fc7bee8b727850e81684a540203027757890a1dc16a3da7556bc56f9e6eca8ba0d4f037e28054e4ac393f3d49dc"

	// Message is the signed message.
	Message = "sample message for dsa verification"

	// MessageSHA256Hex is the SHA-256 digest of Message.
	MessageSHA256Hex = "e2f386b88f1c985173c6cd2d1b633b24cb3ae2aa3e83eddb94d100801b9c9325"

	// SignatureRHex and SignatureSHex form a valid signature over Message.
	SignatureRHex = "81b1616e18fd7a41904af66a79c194394dc4c017"
	SignatureSHex = "1ab0ef23b37406928632532087a24b215a7d9335"

	// PublicKeyDERHex is the SubjectPublicKeyInfo container holding the
	// parameters and public value above.
	PublicKeyDERHex = "308201b63082012b06072a8648ce3804013082011e0281810093d7e2853ff54762676f6a884e36a633ceac1a1d46e8ace0a5bde09b2ed906847e894e2d497a21265397bd091f03e0145655d0112f479805b37223f61996ca783f6c726aa7b904f575b7e7133df4553ded12e04ea1fab77c2523454639858c00980fe661f012c26d7a4c2af01a756ab8f8915a72789f5283956b3f7ccd57d4cb0215009b2c16da0dc04141652bf03b7bb67d93611e4f09028180143acd0e6d76028572ec67f170b6eb44021210dea9208932aeba93b88a1a47bc6f4828f001c812ce6c41c9aad72407d69a0dbbf5e0bd994b7fa996e37ed37495e01d4aebfbd1a7cb8016c873e54cf5770cb9de1db7495296ae06f84a6ba61f8a93214faeb8978c718c897ed7e6bb9bc0eab413c90467a827416e0425a27ea7fd038184000281802b5078319e5bcc2d19255d999f6c464cb6c57a922f94b01052f5d12e6ada157ec70f03249101a8e876e8e2b38b219e54adbed0e44c57ec286b0b23004c240b926afa7705723a89dad62f8f86096523ba6bdc2fc7bee8b727850e81684a540203027757890a1dc16a3da7556bc56f9e6eca8ba0d4f037e28054e4ac393f3d49dc"
)

// Small hand-checkable parameter set: p = 1543, q = 257, g = 2^6 mod 1543.
// q divides p-1 (1542 = 2 * 3 * 257) and g = 64 has order exactly 257.
// With a 9-bit q the verification engine consumes exactly one digest byte.
const (
	TinyP = 1543
	TinyQ = 257
	TinyG = 64
)
