package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/aumetra/signatures/cmd"
)

func main() {
	app := &cli.Command{
		Name:  "dsa-verify",
		Usage: "DSA signature verification",
		Commands: []*cli.Command{
			cmd.VerifyCommand(),
			cmd.InspectCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
