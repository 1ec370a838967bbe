package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schemata-dev/schemata/internal/db"
	"github.com/schemata-dev/schemata/internal/schemafile"
)

// renderCmd prints the generated statements for a schema file.
func renderCmd() *cobra.Command {
	var drop bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print generated DDL for a schema file",
		Example: `  schemata render -f schema.yaml
  schemata render -f schema.yaml --drop`,
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptors, err := schemafile.Load(schemaFile)
			if err != nil {
				return err
			}

			if drop {
				// Drop in reverse order so referencing tables go first.
				for i := len(descriptors) - 1; i >= 0; i-- {
					fmt.Fprintln(cmd.OutOrStdout(), descriptors[i].DropTableSQL())
				}
				return nil
			}

			for _, stmt := range db.Statements(descriptors) {
				fmt.Fprintln(cmd.OutOrStdout(), stmt)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&drop, "drop", false, "Print DROP TABLE statements instead")
	return cmd
}
