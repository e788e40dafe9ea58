package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framewright/pipeconf/internal/cli"
)

// createPathsCommand creates the paths command.
func createPathsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "List every dotted path in the merged namespace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			envPath, err := cmd.Flags().GetString("env")
			if err != nil {
				return fmt.Errorf("env flag error: %w", err)
			}

			app := cli.NewApp(envPath)
			listing, err := app.Paths()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), listing)
			return nil
		},
	}
}
