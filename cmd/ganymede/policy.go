package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mercator-hq/ganymede/pkg/config"
	"mercator-hq/ganymede/pkg/policy"
)

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Show the enforcement policy a configuration resolves to",
	Long: `Load a configuration file and print the enforcement policy snapshot
its enforcement section would install, without modifying anything.

Examples:
  ganymede policy --config ganymede.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
		if err != nil {
			return err
		}

		config.Apply(cfg)
		p := policy.Current()

		fmt.Printf("enabled:   %t\n", p.Enabled)
		switch {
		case p.NewError != nil:
			fmt.Println("mode:      raise (generic violation error)")
		case p.LogLevel != nil:
			fmt.Printf("mode:      log (level %s)\n", *p.LogLevel)
		default:
			fmt.Println("mode:      silent (observers only)")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(policyCmd)
}
