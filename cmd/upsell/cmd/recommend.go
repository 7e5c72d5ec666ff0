package cmd

import (
	"context"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/rental-upsell/internal/api/client"
)

func recommendCmd() *cobra.Command {
	var params apiclient.RecommendationParams

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Get the upsell recommendation for a booking",
		Long: "Ask the engine for the best offer on a booking. When --booking is empty\n" +
			"the server creates a fresh booking first. --persona forces a catalog persona\n" +
			"and --vehicle forces the vehicle the customer is assumed to have.",
		Example: `  upsell recommend
  upsell recommend --booking 5f2c... --persona luxury_enthusiast
  upsell recommend --booking 5f2c... --vehicle v-12 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().GetRecommendations(context.Background(), params)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			return printRecommendation(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVar(&params.BookingID, "booking", "", "booking ID (default: create a new booking)")
	cmd.Flags().StringVar(&params.PersonaID, "persona", "", "force a catalog persona by ID")
	cmd.Flags().StringVar(&params.VehicleID, "vehicle", "", "vehicle the customer currently has")

	return cmd
}

func simulateCmd() *cobra.Command {
	var bookingID string

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Show which upgrade every catalog persona would get",
		Example: `  upsell simulate
  upsell simulate --booking 5f2c... --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sim, err := newClient().Simulate(context.Background(), bookingID)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), sim)
			}
			return printSimulation(cmd.OutOrStdout(), sim)
		},
	}

	cmd.Flags().StringVar(&bookingID, "booking", "", "booking ID (default: create a new booking)")

	return cmd
}
