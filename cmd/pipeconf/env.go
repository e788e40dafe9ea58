package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framewright/pipeconf/internal/cli"
	"github.com/framewright/pipeconf/internal/launch"
)

// createLaunchEnvCommand creates the launch-env command, printing the
// environment contract the host launcher injects.
func createLaunchEnvCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "launch-env",
		Short: "Print the launcher environment variable assignments",
		RunE: func(cmd *cobra.Command, _ []string) error {
			envPath, err := cmd.Flags().GetString("env")
			if err != nil {
				return fmt.Errorf("env flag error: %w", err)
			}

			opts := launch.Options{}
			opts.Engine, _ = cmd.Flags().GetString("engine")
			opts.Context, _ = cmd.Flags().GetString("context")
			opts.FileToOpen, _ = cmd.Flags().GetString("file-to-open")
			opts.ConfigRoot, _ = cmd.Flags().GetString("config-root")
			opts.PythonHome, _ = cmd.Flags().GetString("python-home")
			opts.PythonPath, _ = cmd.Flags().GetStringSlice("python-path")
			opts.LibraryPath, _ = cmd.Flags().GetStringSlice("library-path")

			app := cli.NewApp(envPath)
			result, err := app.LaunchEnv(opts)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().String("engine", "tk-clarisse", "Engine instance name")
	cmd.Flags().String("context", "", "Serialized context (required)")
	cmd.Flags().String("file-to-open", "", "Scene file to open after startup")
	cmd.Flags().String("config-root", "", "Configuration install root")
	cmd.Flags().String("python-home", "", "Scripting runtime home bundled with the host")
	cmd.Flags().StringSlice("python-path", nil, "Module search path entries")
	cmd.Flags().StringSlice("library-path", nil, "Shared library search path entries")
	return cmd
}
