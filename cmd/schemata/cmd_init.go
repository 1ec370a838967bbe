package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/schemata-dev/schemata/internal/ui"
)

// starterSchema is the scaffold written by `schemata init`.
const starterSchema = `# schemata schema file
tables:
  - table: Users
    alias: u
    columns:
      - name: id
        type: uuid
        primary_key: true
      - name: email
        type: text
      - name: status
        type: integer
        default: 0
        enum:
          - value: 0
            label: Inactive
          - value: 1
            label: Active

  - table: Posts
    alias: p
    columns:
      - name: id
        type: uuid
        primary_key: true
      - name: user_id
        type: uuid
      - name: body
        type: text
        nullable: true
    foreign_keys:
      - column: user_id
        ref_table: Users
        ref_column: id
        on_delete: CASCADE
`

// initCmd scaffolds a starter schema file.
func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "init",
		Short:   "Create a starter schema file",
		Example: `  schemata init -f schema.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(schemaFile); err == nil {
				return fmt.Errorf("%s already exists", schemaFile)
			}
			if err := os.WriteFile(schemaFile, []byte(starterSchema), 0o644); err != nil {
				return err
			}
			ui.Successf("created %s", schemaFile)
			return nil
		},
	}
}
