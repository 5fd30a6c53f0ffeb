// Package main is the entry point for the orcamento CLI.
package main

import (
	"os"

	"orcamentos_arq/cmd/orcamento/cmd"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
