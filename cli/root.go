// Package cli implements the command line interface for running cab
// driver experiments
package cli

import (
	"github.com/samuelfneumann/cabdriver/environment/envconfig"
	"github.com/spf13/cobra"
)

var (
	configFile string
	seed       uint64
)

// GetRootCommand returns the root command, with every subcommand
// attached
func GetRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cabdriver",
		Short: "Simulate a cab driver choosing between ride requests",
	}
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"JSON environment configuration, defaults are used if empty")
	cmd.PersistentFlags().Uint64VarP(&seed, "seed", "s", 192382,
		"Seed for the environment and policy")

	cmd.AddCommand(RolloutCommand())
	cmd.AddCommand(SpacesCommand())
	cmd.AddCommand(ConfigCommand())
	return cmd
}

func loadConfig() (envconfig.Config, error) {
	if configFile == "" {
		return envconfig.Default(), nil
	}
	return envconfig.Load(configFile)
}

// ConfigCommand returns the command which writes the default
// environment configuration to a file
func ConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config [output]",
		Short: "Write the default environment configuration as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return envconfig.Default().Save(args[0])
		},
	}
}
