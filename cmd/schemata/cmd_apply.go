package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schemata-dev/schemata/internal/db"
	"github.com/schemata-dev/schemata/internal/schemafile"
	"github.com/schemata-dev/schemata/internal/ui"
)

// applyCmd applies the generated DDL to the configured database.
func applyCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply generated DDL to the database",
		Long:  `Apply runs the full statement plan (tables, enum constraints, foreign keys) against the database in a single transaction. Every statement is idempotent, so apply is safe to re-run.`,
		Example: `  schemata apply -f schema.yaml
  schemata apply -f schema.yaml --dry-run
  schemata apply -d postgres://localhost:5432/app`,
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptors, err := schemafile.Load(schemaFile)
			if err != nil {
				return err
			}
			statements := db.Statements(descriptors)

			if dryRun {
				for _, stmt := range statements {
					fmt.Fprintln(cmd.OutOrStdout(), stmt)
				}
				ui.Infof("dry run: %d statements, nothing applied", len(statements))
				return nil
			}

			cfg, err := db.LoadConfig()
			if err != nil {
				return err
			}
			if databaseURL != "" {
				cfg.DatabaseURL = databaseURL
			}

			conn, err := db.Open(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := db.Apply(cmd.Context(), conn, statements); err != nil {
				return err
			}
			ui.Successf("applied %d statements for %d tables", len(statements), len(descriptors))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the statement plan without executing it")
	return cmd
}
