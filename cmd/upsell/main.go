// Package main is the entry point for the upsell CLI client.
package main

import (
	"github.com/donaldgifford/rental-upsell/cmd/upsell/cmd"
)

func main() {
	cmd.Execute()
}
