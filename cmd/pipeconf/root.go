package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/framewright/pipeconf/internal/logging"
)

// createNewRootCommand creates the main root command that shows help
// by default.
func createNewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pipeconf",
		Short: "Pipeline engine configuration registry",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			debug, _ := cmd.Flags().GetBool("debug")
			// File logging is best effort; commands work without it.
			_ = logging.Init(afero.NewOsFs(), debug)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Show help when run without subcommands
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP("env", "e", "config/env/project.yml", "Path to environment file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		createValidateCommand(),
		createGetCommand(),
		createPathsCommand(),
		createResolveHookCommand(),
		createCacheAppsCommand(),
		createLaunchEnvCommand(),
	)

	return rootCmd
}
