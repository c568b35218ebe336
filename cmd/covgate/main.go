package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container
)

func main() {
	// A .env file is a local-development convenience; absence is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}
