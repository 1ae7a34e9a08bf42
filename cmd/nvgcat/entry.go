// Entry commands for the nvgcat CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/nvgcat/pkg/types"
)

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Manage catalog entries",
}

func init() {
	entryCmd.AddCommand(entryAddCmd)
	entryCmd.AddCommand(entryGetCmd)
	entryCmd.AddCommand(entryUpdateCmd)
	entryCmd.AddCommand(entryDeleteCmd)
	entryCmd.AddCommand(entryVersionCmd)
}

var entryAddCmd = &cobra.Command{
	Use:   "add <json>",
	Short: "Add an entry from a JSON payload",
	Long: `Add inserts a new entry described by a JSON object. The filepath must be
unique within the catalog and is immutable afterwards.

Example:
  nvgcat entry add '{"filepath": "games/arcade/rolanrop.zip", "file_size": 51200, "title": "Roland On The Ropes"}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var e types.Entry
		if err := json.Unmarshal([]byte(args[0]), &e); err != nil {
			fmt.Fprintf(os.Stderr, "parse JSON: %s\n", err)
			os.Exit(exitUserError)
		}

		cat, err := attachCatalog()
		if err != nil {
			fail("entry add", err)
		}
		defer cat.Detach()

		id, err := cat.InsertEntry(&e)
		if err != nil {
			fail("entry add", err)
		}

		saved, err := cat.GetEntry(id)
		if err != nil {
			fail("entry add", err)
		}
		return printJSON(saved)
	},
}

var entryGetCmd = &cobra.Command{
	Use:   "get <id|path>",
	Short: "Get an entry by id or archive path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := attachCatalog()
		if err != nil {
			fail("entry get", err)
		}
		defer cat.Detach()

		e, err := findEntry(cat, args[0])
		if err != nil {
			fail("entry get", err)
		}
		return printJSON(e)
	},
}

var entryUpdateCmd = &cobra.Command{
	Use:   "update <id|path> <json>",
	Short: "Update an entry from a JSON payload",
	Long: `Update replaces the stored fields of an entry with the given JSON object.
Fields omitted from the payload are cleared; the filepath cannot change.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := attachCatalog()
		if err != nil {
			fail("entry update", err)
		}
		defer cat.Detach()

		current, err := findEntry(cat, args[0])
		if err != nil {
			fail("entry update", err)
		}

		e := types.Entry{EntryID: current.EntryID, Filepath: current.Filepath}
		if err := json.Unmarshal([]byte(args[1]), &e); err != nil {
			fmt.Fprintf(os.Stderr, "parse JSON: %s\n", err)
			os.Exit(exitUserError)
		}
		e.EntryID = current.EntryID

		if err := cat.UpdateEntry(&e); err != nil {
			fail("entry update", err)
		}

		saved, err := cat.GetEntry(e.EntryID)
		if err != nil {
			fail("entry update", err)
		}
		return printJSON(saved)
	},
}

var entryDeleteCmd = &cobra.Command{
	Use:   "delete <id|path>",
	Short: "Delete an entry and its dependent records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := attachCatalog()
		if err != nil {
			fail("entry delete", err)
		}
		defer cat.Detach()

		e, err := findEntry(cat, args[0])
		if err != nil {
			fail("entry delete", err)
		}
		if err := cat.DeleteEntry(e.EntryID); err != nil {
			fail("entry delete", err)
		}

		fmt.Printf("deleted entry %d (%s)\n", e.EntryID, e.Filepath)
		return nil
	},
}

var entryVersionCmd = &cobra.Command{
	Use:   "schema-version <id|path>",
	Short: "Print the inferred manifest schema version of an entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := attachCatalog()
		if err != nil {
			fail("entry schema-version", err)
		}
		defer cat.Detach()

		e, err := findEntry(cat, args[0])
		if err != nil {
			fail("entry schema-version", err)
		}
		v, err := cat.EntryVersion(e.EntryID)
		if err != nil {
			fail("entry schema-version", err)
		}

		fmt.Println(v)
		return nil
	},
}
