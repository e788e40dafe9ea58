package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framewright/pipeconf/internal/cli"
)

// createCacheAppsCommand creates the cache-apps command: the
// administrative surface that refreshes the on-disk cache of every
// external app/engine location the environment references.
func createCacheAppsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache-apps",
		Short: "Resolve and cache every referenced app/engine location",
		RunE: func(cmd *cobra.Command, _ []string) error {
			envPath, err := cmd.Flags().GetString("env")
			if err != nil {
				return fmt.Errorf("env flag error: %w", err)
			}
			dbPath, err := cmd.Flags().GetString("db")
			if err != nil {
				return fmt.Errorf("db flag error: %w", err)
			}

			app := cli.NewApp(envPath)
			result, err := app.CacheLocations(cmd.Context(), dbPath)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().String("db", "", "Cache database path (defaults to the XDG data dir)")
	return cmd
}
