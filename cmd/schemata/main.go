// Package main provides the CLI for the schemata SQL generator.
// Schemata turns declarative table descriptors into Postgres DDL and
// DML text: idempotent create/constraint statements, documentation,
// and named-placeholder query templates.
//
// Usage:
//
//	schemata init                  # Create a starter schema file
//	schemata render -f schema.yaml # Print generated DDL
//	schemata docs -f schema.yaml   # Print markdown documentation
//	schemata apply -f schema.yaml  # Apply DDL to the database
//	schemata watch -f schema.yaml  # Re-render on schema file changes
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	_ "github.com/lib/pq"

	"github.com/schemata-dev/schemata/internal/ui"
)

// version is set via ldflags during build: -ldflags="-X main.version=v1.0.0"
var version = "dev"

// Global flags
var (
	schemaFile  string
	databaseURL string
	noColor     bool
)

// globalFlags registers the flags shared by every subcommand.
func globalFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&schemaFile, "file", "f", "schema.yaml", "Path to schema file")
	fs.StringVarP(&databaseURL, "database-url", "d", "", "Database connection URL (overrides DATABASE_URL)")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func main() {
	rootCmd := &cobra.Command{
		Use:     "schemata",
		Short:   "Generate Postgres DDL and DML from declarative table schemas",
		Long:    `Schemata generates Postgres statement text from declarative table descriptors: idempotent DDL, enum and foreign-key constraints, documentation, and named-placeholder query templates.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				ui.SetDefault(&ui.Config{Mode: ui.ModePlain, Writer: os.Stdout})
			}
		},
	}

	globalFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		initCmd(),
		renderCmd(),
		docsCmd(),
		applyCmd(),
		watchCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error("error:")+" "+err.Error())
		os.Exit(1)
	}
}
