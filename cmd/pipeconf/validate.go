package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/framewright/pipeconf/internal/cli"
)

// createValidateCommand creates the validate command.
func createValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the environment configuration",
		Long: "Load the environment, resolve every include and reference, " +
			"and check hook expressions, locations and entity views.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			envPath, err := cmd.Flags().GetString("env")
			if err != nil {
				return fmt.Errorf("env flag error: %w", err)
			}

			app := cli.NewApp(envPath)
			result, err := app.ValidateConfig()
			if err != nil {
				return fmt.Errorf("validation error: %w", err)
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), color.GreenString("OK")+" "+result)
			return nil
		},
	}
}
