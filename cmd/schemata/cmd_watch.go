package main

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/schemata-dev/schemata/internal/db"
	"github.com/schemata-dev/schemata/internal/schemafile"
	"github.com/schemata-dev/schemata/internal/ui"
)

// watchCmd re-renders the statement plan whenever the schema file changes.
func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "watch",
		Short:   "Re-render DDL whenever the schema file changes",
		Example: `  schemata watch -f schema.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer watcher.Close()

			// Watch the containing directory: editors replace files on
			// save, which drops a watch on the file itself.
			dir := filepath.Dir(schemaFile)
			if err := watcher.Add(dir); err != nil {
				return err
			}

			render := func() {
				descriptors, err := schemafile.Load(schemaFile)
				if err != nil {
					ui.Errorf("%v", err)
					return
				}
				for _, stmt := range db.Statements(descriptors) {
					fmt.Fprintln(cmd.OutOrStdout(), stmt)
				}
				ui.Successf("rendered %d tables", len(descriptors))
			}

			ui.Infof("watching %s", schemaFile)
			render()

			target := filepath.Clean(schemaFile)
			for {
				select {
				case <-cmd.Context().Done():
					return nil
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if filepath.Clean(event.Name) != target {
						continue
					}
					if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
						render()
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					ui.Errorf("watch error: %v", err)
				}
			}
		},
	}
}
