package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mercator-hq/ganymede/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long: `Load a configuration file, apply defaults and environment variable
overrides, and report whether the result is valid.

Examples:
  # Validate the default configuration file
  ganymede validate

  # Validate a specific file
  ganymede validate --config /etc/ganymede/ganymede.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
		if err != nil {
			return err
		}

		fmt.Printf("%s: OK\n", cfgFile)
		fmt.Printf("  enforcement: enabled=%t mode=%s\n",
			cfg.Enforcement.Enabled, cfg.Enforcement.Mode)
		fmt.Printf("  audit:       enabled=%t\n", cfg.Audit.Enabled)
		fmt.Printf("  metrics:     enabled=%t\n", cfg.Metrics.Enabled)
		fmt.Printf("  reload:      enabled=%t\n", cfg.Reload.Enabled)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
