package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var flags globalFlags

	ctx := newCommandContext(&flags)

	rootCmd := &cobra.Command{
		Use:           "ridersettings",
		Short:         "Manage the Rider solution name override of a Unity project",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&flags.project, "project", "p", "", "Unity project root (defaults to config or current directory)")
	rootCmd.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "Unity project Assets directory; its parent is the project root")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override log level (debug, info, warn, error)")
	rootCmd.MarkFlagsMutuallyExclusive("project", "data-dir")

	rootCmd.AddCommand(newGetCommand(ctx))
	rootCmd.AddCommand(newSetCommand(ctx))
	rootCmd.AddCommand(newSanitizeCommand())
	rootCmd.AddCommand(newPathCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
