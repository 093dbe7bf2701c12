package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mercator-hq/ganymede/pkg/audit/storage"
	"mercator-hq/ganymede/pkg/config"
)

var auditFlags struct {
	limit int
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show recent violation audit records",
	Long: `Open the audit database named by the configuration and print the most
recent contract violations, newest first.

Examples:
  ganymede audit --config ganymede.yaml --limit 20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
		if err != nil {
			return err
		}

		store, err := storage.NewSQLiteStorage(&storage.SQLiteConfig{
			Path: cfg.Audit.DatabasePath,
		})
		if err != nil {
			return err
		}
		defer store.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		records, err := store.Recent(ctx, auditFlags.limit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("no violations recorded")
			return nil
		}

		for _, r := range records {
			fmt.Printf("%s  %s(%s): got %s, want %s\n",
				r.ObservedAt.Format(time.RFC3339),
				r.Callable, r.Param, r.ValueType, r.Expected)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(auditCmd)

	auditCmd.Flags().IntVar(&auditFlags.limit, "limit", 20, "maximum records to show")
}
