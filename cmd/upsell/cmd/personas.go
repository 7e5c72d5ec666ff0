package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func personasCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "personas",
		Short: "Browse and generate customer personas",
	}

	root.AddCommand(
		personasListCmd(),
		personasGetCmd(),
		personasGenerateCmd(),
	)

	return root
}

func personasListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the persona catalog",
		Example: `  upsell personas list
  upsell personas list --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			personas, err := newClient().ListPersonas(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), personas)
			}
			if len(personas) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No personas found.")
				return nil
			}
			return printPersonasTable(cmd.OutOrStdout(), personas)
		},
	}
}

func personasGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show persona details",
		Example: `  upsell personas get family_holiday_planner`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newClient().GetPersona(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), p)
			}
			return printPersonaDetail(cmd.OutOrStdout(), p)
		},
	}
}

func personasGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <description>",
		Short: "Generate a persona from a free-text description",
		Long: "Sends the description to the server's LLM backend, which returns a\n" +
			"validated persona. Requires the server to run with an llm.backend.",
		Example: `  upsell personas generate "two parents, three kids, two weeks in the alps"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newClient().GeneratePersona(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), p)
			}
			return printPersonaDetail(cmd.OutOrStdout(), p)
		},
	}
}
