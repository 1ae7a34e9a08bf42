// Title alias commands for the nvgcat CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var titleCmd = &cobra.Command{
	Use:   "title",
	Short: "Manage alternate titles of entries",
}

func init() {
	titleCmd.AddCommand(titleAddCmd)
	titleCmd.AddCommand(titleListCmd)
	titleCmd.AddCommand(titleDeleteCmd)
}

var titleAddCmd = &cobra.Command{
	Use:   "add <entry-id|path> <title>",
	Short: "Add an alternate title to an entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := attachCatalog()
		if err != nil {
			fail("title add", err)
		}
		defer cat.Detach()

		e, err := findEntry(cat, args[0])
		if err != nil {
			fail("title add", err)
		}
		if err := cat.AddTitleAlias(e.EntryID, args[1]); err != nil {
			fail("title add", err)
		}

		fmt.Printf("added title %q to entry %d\n", args[1], e.EntryID)
		return nil
	},
}

var titleListCmd = &cobra.Command{
	Use:   "list <entry-id|path>",
	Short: "List an entry's alternate titles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := attachCatalog()
		if err != nil {
			fail("title list", err)
		}
		defer cat.Detach()

		e, err := findEntry(cat, args[0])
		if err != nil {
			fail("title list", err)
		}
		titles, err := cat.TitleAliases(e.EntryID)
		if err != nil {
			fail("title list", err)
		}
		return printJSON(titles)
	},
}

var titleDeleteCmd = &cobra.Command{
	Use:   "delete <entry-id|path>",
	Short: "Delete an entry's alternate titles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := attachCatalog()
		if err != nil {
			fail("title delete", err)
		}
		defer cat.Detach()

		e, err := findEntry(cat, args[0])
		if err != nil {
			fail("title delete", err)
		}
		n, err := cat.DeleteTitleAliases(e.EntryID)
		if err != nil {
			fail("title delete", err)
		}

		fmt.Printf("deleted %d title(s)\n", n)
		return nil
	},
}
