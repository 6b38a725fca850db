// Command casefetch looks up court case data behind a CAPTCHA.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/casefetch/internal/adapters/driving/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// A .env file is optional.
	_ = godotenv.Load()

	cli.SetBootstrap(bootstrap)
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
