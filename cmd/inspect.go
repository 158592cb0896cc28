package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/aumetra/signatures/keys"
)

// InspectCommand creates the inspect command
func InspectCommand() *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "Decode a DSA public key container and print its fields",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "key",
				Usage:    "Path to the DSA public key (PEM or DER)",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output in JSON format",
			},
		},
		Action: runInspectCommand,
	}
}

type keyInfo struct {
	ModulusBits  int    `json:"modulusBits"`
	SubgroupBits int    `json:"subgroupBits"`
	P            string `json:"p"`
	Q            string `json:"q"`
	G            string `json:"g"`
	Y            string `json:"y"`
}

func runInspectCommand(ctx context.Context, cmd *cli.Command) error {
	key, err := keys.LoadPublicKeyFromFile(cmd.String("key"))
	if err != nil {
		return fmt.Errorf("failed to load key: %w", err)
	}

	c := key.Components()
	info := keyInfo{
		ModulusBits:  c.P().BitLen(),
		SubgroupBits: c.Q().BitLen(),
		P:            c.P().Text(16),
		Q:            c.Q().Text(16),
		G:            c.G().Text(16),
		Y:            key.Y().Text(16),
	}

	if cmd.Bool("json") {
		encoded, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode key info: %w", err)
		}
		fmt.Println(string(encoded))
		return nil
	}

	fmt.Println("DSA public key:")
	fmt.Printf("    Modulus size:  %d bits\n", info.ModulusBits)
	fmt.Printf("    Subgroup size: %d bits\n", info.SubgroupBits)
	fmt.Printf("    p: %s\n", info.P)
	fmt.Printf("    q: %s\n", info.Q)
	fmt.Printf("    g: %s\n", info.G)
	fmt.Printf("    y: %s\n", info.Y)
	return nil
}
