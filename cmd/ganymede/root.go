package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "ganymede",
	Short: "Ganymede - runtime type contracts for dynamic Go values",
	Long: `Ganymede attaches declarative type contracts to callables and enforces
them at call time. This command validates configuration files, shows the
enforcement policy a configuration resolves to, and inspects the
violation audit trail.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "ganymede.yaml", "configuration file path")
}
