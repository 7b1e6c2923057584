package cmd

import (
	"context"
	"fmt"

	"github.com/AnTengye/contractdash/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	envFile    string
)

// Execute runs the contractdash command line.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "contractdash",
		Short:         "Contract management dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the YAML config file")
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file with CONTRACTDASH_* overrides (default .env)")

	root.AddCommand(serveCmd(), dashboardCmd(), versionCmd())
	return root
}

// loadConfig loads the env file, then the config file, falling back to defaults.
func loadConfig() (*config.Config, error) {
	if err := config.LoadEnvFile(envFile); err != nil {
		return nil, err
	}
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
	}
	return cfg, nil
}
