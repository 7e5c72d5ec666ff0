package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/rental-upsell/internal/config"
	"github.com/donaldgifford/rental-upsell/internal/engine"
	"github.com/donaldgifford/rental-upsell/pkg/logger"
)

func simulateCmd() *cobra.Command {
	var (
		bookingID string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Rank the vehicle catalog for every persona without starting the server",
		Long: "Loads the configured data source, ranks the available vehicles for each\n" +
			"catalog persona and reports the upgrade each persona would be offered from\n" +
			"the lowest-ranked vehicle. A new booking is created when --booking is empty.",
		Example: `  upsell-engine simulate --config config.yaml
  upsell-engine simulate --booking 5f2c... --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			log := logger.New(cfg.Logging.Level, cfg.Logging.Format, slog.String("service", "upsell-engine"))

			comps, err := buildComponents(cfg, log)
			if err != nil {
				return fmt.Errorf("building components: %w", err)
			}
			defer comps.Close() //nolint:errcheck // best effort on exit

			sim, err := comps.engine.Simulate(context.Background(), bookingID)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(sim)
			}
			return printSimulation(cmd.OutOrStdout(), sim)
		},
	}

	cmd.Flags().StringVar(&bookingID, "booking", "", "booking ID (default: create a new booking)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the simulation as JSON")

	return cmd
}

func printSimulation(w io.Writer, sim *engine.Simulation) error {
	if _, err := fmt.Fprintf(w, "Booking: %s\n\n", sim.BookingID); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PERSONA\tBEST\tWORST\tUPGRADE\tPRICE DIFF/DAY")
	for i := range sim.Outcomes {
		o := &sim.Outcomes[i]
		upgrade := "-"
		if o.Upgrade != nil {
			upgrade = o.Upgrade.Vehicle.DisplayName()
		}
		fmt.Fprintf(tw, "%s\t%s (%.2f)\t%s (%.2f)\t%s\t%.2f\n",
			o.PersonaLabel,
			o.Best.Vehicle.DisplayName(), o.Best.TotalScore,
			o.Worst.Vehicle.DisplayName(), o.Worst.TotalScore,
			upgrade,
			o.PriceDifference,
		)
	}
	return tw.Flush()
}
