// Package main is the entry point for the upsell engine server.
package main

import (
	"os"

	"github.com/donaldgifford/rental-upsell/cmd/upsell-engine/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
