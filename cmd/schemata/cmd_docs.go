package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/schemata-dev/schemata/internal/docgen"
	"github.com/schemata-dev/schemata/internal/schemafile"
	"github.com/schemata-dev/schemata/internal/ui"
)

// docsCmd renders markdown documentation for a schema file.
func docsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Render markdown documentation for a schema file",
		Example: `  schemata docs -f schema.yaml
  schemata docs -f schema.yaml -o SCHEMA.md`,
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptors, err := schemafile.Load(schemaFile)
			if err != nil {
				return err
			}

			if output == "" {
				return docgen.NewMarkdownFormatter(cmd.OutOrStdout()).Format(descriptors)
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := docgen.NewMarkdownFormatter(f).Format(descriptors); err != nil {
				return err
			}
			ui.Successf("wrote %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write documentation to a file instead of stdout")
	return cmd
}
