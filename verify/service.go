package verify

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/aumetra/signatures/dsa"
)

var log = logrus.WithField("component", "verify")

// KeyLoader loads the verifying key referenced by a request
type KeyLoader interface {
	LoadPublicKey(path string) (*dsa.VerifyingKey, error)
}

// Service handles verification logic
type Service struct {
	keys KeyLoader
}

// NewService creates a new verification service
func NewService(keys KeyLoader) *Service {
	return &Service{keys: keys}
}

// Verify loads the key, decodes the signature, and runs DSA verification.
// A signature that does not verify is a normal negative result carried in
// VerifyResult.Valid; errors are reserved for unusable keys, undecodable
// signatures, and bad requests.
func (s *Service) Verify(req *VerifyRequest) (*VerifyResult, error) {
	if req == nil {
		return nil, errors.New("nil verify request")
	}
	if len(req.Message) == 0 && req.DigestHex == "" {
		return nil, errors.New("either a message or a digest must be provided")
	}
	if len(req.Message) > 0 && req.DigestHex != "" {
		return nil, errors.New("only one of message or digest should be provided")
	}

	key, err := s.keys.LoadPublicKey(req.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load verifying key: %w", err)
	}

	sig, err := dsa.ParseSignatureDER(req.SignatureDER)
	if err != nil {
		return nil, fmt.Errorf("failed to decode signature: %w", err)
	}

	result := &VerifyResult{
		ModulusBits:    key.Components().P().BitLen(),
		SubgroupBits:   key.Components().Q().BitLen(),
		PublicValueHex: key.Y().Text(16),
		RHex:           sig.R().Text(16),
		SHex:           sig.S().Text(16),
		Key:            key,
		Signature:      sig,
	}

	if req.DigestHex != "" {
		digest, err := hex.DecodeString(req.DigestHex)
		if err != nil {
			return nil, fmt.Errorf("failed to decode digest hex: %w", err)
		}
		result.DigestHex = req.DigestHex
		result.Valid = key.VerifyPrehash(digest, sig)
	} else {
		result.Valid = key.Verify(req.Message, sig)
	}

	if result.Valid {
		log.WithField("key", req.KeyPath).Debug("DSA signature verified")
	} else {
		log.WithField("key", req.KeyPath).Warn("DSA signature rejected")
	}

	return result, nil
}
