// Package cmd implements the CLI commands for upsell-engine.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "upsell-engine",
	Short: "Recommend rental car upgrades and protection packages",
	Long: "An API-first service that reads rental bookings, infers the customer's persona,\n" +
		"scores the available vehicles and protection packages against it, and returns\n" +
		"the single best upsell offer with sales copy.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd())
	rootCmd.AddCommand(versionCommand())
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
