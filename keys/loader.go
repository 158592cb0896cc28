// Package keys provides DSA public key loading from files.
//
// Keys are accepted either as a PEM "PUBLIC KEY" block or as raw DER, both
// carrying the standard SubjectPublicKeyInfo container.
//
// # Loading Keys
//
// Load a verifying key directly from a file:
//
//	key, err := keys.LoadPublicKeyFromFile("signer.pem")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Or behind the verify.KeyLoader interface:
//
//	service := verify.NewService(keys.FileLoader{})
package keys

import (
	"encoding/pem"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/aumetra/signatures/dsa"
)

var log = logrus.WithField("component", "keys")

// FileLoader implements verify.KeyLoader by reading key files from disk.
type FileLoader struct{}

// LoadPublicKey loads the verifying key stored at path.
func (FileLoader) LoadPublicKey(path string) (*dsa.VerifyingKey, error) {
	return LoadPublicKeyFromFile(path)
}

// LoadPublicKeyFromFile reads a DSA public key from a PEM "PUBLIC KEY"
// block, or from raw DER when the file carries no PEM framing.
func LoadPublicKeyFromFile(path string) (*dsa.VerifyingKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read public key file: %w", err)
	}

	der := raw
	if block, _ := pem.Decode(raw); block != nil {
		if block.Type != "PUBLIC KEY" {
			return nil, fmt.Errorf("unexpected PEM block type %q, expected 'PUBLIC KEY'", block.Type)
		}
		der = block.Bytes
	}

	key, err := dsa.ParsePublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	log.WithFields(logrus.Fields{
		"path":   path,
		"p_bits": key.Components().P().BitLen(),
		"q_bits": key.Components().Q().BitLen(),
	}).Debug("Loaded DSA public key")

	return key, nil
}
