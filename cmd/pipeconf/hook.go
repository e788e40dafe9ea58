package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framewright/pipeconf/internal/cli"
)

// createResolveHookCommand creates the resolve-hook command.
func createResolveHookCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve-hook <path> <field>",
		Short: "Resolve a record's hook chain to the first existing candidate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			envPath, err := cmd.Flags().GetString("env")
			if err != nil {
				return fmt.Errorf("env flag error: %w", err)
			}
			selfDir, err := cmd.Flags().GetString("self-dir")
			if err != nil {
				return fmt.Errorf("self-dir flag error: %w", err)
			}
			engineDir, err := cmd.Flags().GetString("engine-dir")
			if err != nil {
				return fmt.Errorf("engine-dir flag error: %w", err)
			}

			app := cli.NewApp(envPath)
			resolved, err := app.ResolveHook(args[0], args[1], selfDir, engineDir)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), resolved)
			return nil
		},
	}

	cmd.Flags().String("self-dir", "hooks", "This configuration's hook directory ({self})")
	cmd.Flags().String("engine-dir", "", "The referenced engine's hook directory ({engine})")
	return cmd
}
