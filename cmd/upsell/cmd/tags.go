package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

func tagsCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tags",
		Short: "Derive tags for vehicles and protection packages",
		Long: "Reads a vehicle or protection package as JSON and prints the tags the\n" +
			"engine derives for it. Use - to read from stdin.",
	}

	root.AddCommand(tagsVehicleCmd(), tagsProtectionCmd())

	return root
}

func tagsVehicleCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "vehicle <file>",
		Short:   "Derive car tags for a vehicle",
		Example: `  upsell tags vehicle testdata/audi_q7.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var v domain.Vehicle
			if err := readJSON(args[0], &v); err != nil {
				return err
			}
			tags, err := newClient().VehicleTags(context.Background(), &v)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), tags)
			}
			return printTags(cmd.OutOrStdout(), tags)
		},
	}
}

func tagsProtectionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "protection <file>",
		Short:   "Derive protection tags for a protection package",
		Example: `  cat package.json | upsell tags protection -`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p domain.ProtectionPackage
			if err := readJSON(args[0], &p); err != nil {
				return err
			}
			tags, err := newClient().ProtectionTags(context.Background(), &p)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), tags)
			}
			return printTags(cmd.OutOrStdout(), tags)
		},
	}
}

func readJSON(path string, dst any) error {
	f := os.Stdin
	if path != "-" {
		var err error
		f, err = os.Open(path) //nolint:gosec // path from CLI argument
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close() //nolint:errcheck // read-only
	}
	if err := json.NewDecoder(f).Decode(dst); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}
