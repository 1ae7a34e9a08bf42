// Show command renders the file_id.diz manifest of an entry.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id|path>",
	Short: "Render the manifest of an entry",
	Long: `Show renders the entry's file_id.diz manifest in the layout of its
inferred schema version. An entry whose fields are inconsistent cannot be
rendered and is reported as an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := attachCatalog()
		if err != nil {
			fail("show", err)
		}
		defer cat.Detach()

		e, err := findEntry(cat, args[0])
		if err != nil {
			fail("show", err)
		}
		manifest, err := cat.RenderManifest(e.EntryID)
		if err != nil {
			fail("show", err)
		}

		fmt.Print(manifest)
		return nil
	},
}
