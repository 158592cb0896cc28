package cmd

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/aumetra/signatures/keys"
	"github.com/aumetra/signatures/verify"
)

// VerifyCommand creates the verify command
func VerifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "Verify a DSA signature against a public key",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "key",
				Usage:    "Path to the DSA public key (PEM or DER)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "message",
				Usage: "Message that was signed (literal string)",
			},
			&cli.StringFlag{
				Name:  "message-file",
				Usage: "Path to a file holding the signed message",
			},
			&cli.StringFlag{
				Name:  "digest-hex",
				Usage: "Precomputed digest (hex) to verify instead of a message",
			},
			&cli.StringFlag{
				Name:  "signature-hex",
				Usage: "DER-encoded signature (hex)",
			},
			&cli.StringFlag{
				Name:  "signature-file",
				Usage: "Path to a DER-encoded signature file",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output in JSON format",
			},
		},
		Action: runVerifyCommand,
	}
}

func runVerifyCommand(ctx context.Context, cmd *cli.Command) error {
	req := &verify.VerifyRequest{
		KeyPath:   cmd.String("key"),
		DigestHex: cmd.String("digest-hex"),
	}

	message := cmd.String("message")
	messageFile := cmd.String("message-file")
	sources := 0
	for _, set := range []bool{message != "", messageFile != "", req.DigestHex != ""} {
		if set {
			sources++
		}
	}
	if sources == 0 {
		return fmt.Errorf("one of --message, --message-file or --digest-hex must be provided")
	}
	if sources > 1 {
		return fmt.Errorf("only one of --message, --message-file or --digest-hex should be provided")
	}

	switch {
	case message != "":
		req.Message = []byte(message)
	case messageFile != "":
		contents, err := os.ReadFile(messageFile)
		if err != nil {
			return fmt.Errorf("failed to read message file: %w", err)
		}
		req.Message = contents
	}

	sigHex := cmd.String("signature-hex")
	sigFile := cmd.String("signature-file")
	if sigHex == "" && sigFile == "" {
		return fmt.Errorf("either --signature-hex or --signature-file must be provided")
	}
	if sigHex != "" && sigFile != "" {
		return fmt.Errorf("only one of --signature-hex or --signature-file should be provided")
	}

	if sigHex != "" {
		der, err := hex.DecodeString(sigHex)
		if err != nil {
			return fmt.Errorf("failed to decode signature hex: %w", err)
		}
		req.SignatureDER = der
	} else {
		der, err := os.ReadFile(sigFile)
		if err != nil {
			return fmt.Errorf("failed to read signature file: %w", err)
		}
		req.SignatureDER = der
	}

	service := verify.NewService(keys.FileLoader{})
	result, err := service.Verify(req)
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	if cmd.Bool("json") {
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(encoded))
	} else {
		fmt.Print(verify.NewFormatter().FormatResult(result))
	}

	if !result.Valid {
		return fmt.Errorf("signature does not verify")
	}
	return nil
}
