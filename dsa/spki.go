package dsa

import (
	"encoding/asn1"
	"errors"
	"fmt"
	"math/big"
)

// ErrMalformedContainer is returned when a public key container cannot be
// decoded. Structural failures (wrong algorithm identifier, undecodable
// integers, wrong bit-string framing) and algebraic failures of the
// decoded key are reported identically, so a remote caller probing key
// material cannot tell which check failed.
var ErrMalformedContainer = errors.New("dsa: malformed public key container")

// oidDSA is id-dsa from RFC 3279, section 2.3.2.
var oidDSA = asn1.ObjectIdentifier{1, 2, 840, 10040, 4, 1}

// domainParameters is the Dss-Parms SEQUENCE nested inside the algorithm
// identifier.
type domainParameters struct {
	P, Q, G *big.Int
}

type algorithmIdentifier struct {
	Algorithm  asn1.ObjectIdentifier
	Parameters asn1.RawValue `asn1:"optional"`
}

// publicKeyInfo is the SubjectPublicKeyInfo container: the algorithm
// identifier carrying (p, q, g), and the DER integer y wrapped in a bit
// string with zero unused bits.
type publicKeyInfo struct {
	Algorithm algorithmIdentifier
	PublicKey asn1.BitString
}

// MarshalPublicKey encodes a verifying key into the standardized
// SubjectPublicKeyInfo container.
func MarshalPublicKey(key *VerifyingKey) ([]byte, error) {
	if key == nil {
		return nil, errors.New("dsa: nil verifying key")
	}

	params, err := asn1.Marshal(domainParameters{
		P: key.components.p,
		Q: key.components.q,
		G: key.components.g,
	})
	if err != nil {
		return nil, fmt.Errorf("dsa: failed to encode domain parameters: %w", err)
	}

	blob, err := asn1.Marshal(key.y)
	if err != nil {
		return nil, fmt.Errorf("dsa: failed to encode public value: %w", err)
	}

	return asn1.Marshal(publicKeyInfo{
		Algorithm: algorithmIdentifier{
			Algorithm:  oidDSA,
			Parameters: asn1.RawValue{FullBytes: params},
		},
		PublicKey: asn1.BitString{Bytes: blob, BitLength: len(blob) * 8},
	})
}

// ParsePublicKey decodes a SubjectPublicKeyInfo container into a verifying
// key, running the full key validation of NewVerifyingKey on the decoded
// values. Every failure, including a decoded key that fails validation, is
// reported as ErrMalformedContainer.
func ParsePublicKey(der []byte) (*VerifyingKey, error) {
	var info publicKeyInfo
	rest, err := asn1.Unmarshal(der, &info)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedContainer, err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: trailing data", ErrMalformedContainer)
	}
	if !info.Algorithm.Algorithm.Equal(oidDSA) {
		return nil, fmt.Errorf("%w: unexpected algorithm %v", ErrMalformedContainer, info.Algorithm.Algorithm)
	}

	var params domainParameters
	rest, err = asn1.Unmarshal(info.Algorithm.Parameters.FullBytes, &params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedContainer, err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: trailing data after domain parameters", ErrMalformedContainer)
	}

	if info.PublicKey.BitLength%8 != 0 {
		return nil, fmt.Errorf("%w: public key bit string is not byte aligned", ErrMalformedContainer)
	}

	var y *big.Int
	rest, err = asn1.Unmarshal(info.PublicKey.Bytes, &y)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedContainer, err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: trailing data after public value", ErrMalformedContainer)
	}

	components, err := NewComponents(params.P, params.Q, params.G)
	if err != nil {
		return nil, fmt.Errorf("%w: unusable key material", ErrMalformedContainer)
	}

	key, err := NewVerifyingKey(components, y)
	if err != nil {
		return nil, fmt.Errorf("%w: unusable key material", ErrMalformedContainer)
	}

	return key, nil
}
