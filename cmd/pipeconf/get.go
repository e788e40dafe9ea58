package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framewright/pipeconf/internal/cli"
	"github.com/framewright/pipeconf/internal/prompt"
)

// createGetCommand creates the get command.
func createGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [path]",
		Short: "Print one resolved setting record as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			envPath, err := cmd.Flags().GetString("env")
			if err != nil {
				return fmt.Errorf("env flag error: %w", err)
			}

			app := cli.NewApp(envPath)

			var path string
			if len(args) == 1 {
				path = args[0]
			} else {
				interactive, _ := cmd.Flags().GetBool("interactive")
				if !interactive {
					return errors.New("a setting path is required (or use --interactive)")
				}
				paths, err := app.KnownPaths()
				if err != nil {
					return err
				}
				path, err = prompt.PathInput("Setting path:", paths)
				if err != nil {
					return err
				}
			}

			record, err := app.GetRecord(path)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), record)
			return nil
		},
	}

	cmd.Flags().BoolP("interactive", "i", false, "Prompt for the path with completion")
	return cmd
}
