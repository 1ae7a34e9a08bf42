// Search commands for the nvgcat CLI.
package main

import (
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the catalog with _ and % wildcards",
	Long: `Search queries the catalog. Patterns use SQL LIKE wildcards: _ matches one
character, % matches any run of characters. A pattern with no wildcards
matches exactly.

Example:
  nvgcat search titles '%ghost%'
  nvgcat search paths 'games/arcade/%'
  nvgcat search identities 'Ocean%'`,
}

func init() {
	searchCmd.AddCommand(searchPathsCmd)
	searchCmd.AddCommand(searchTitlesCmd)
	searchCmd.AddCommand(searchIdentitiesCmd)
}

var searchPathsCmd = &cobra.Command{
	Use:   "paths <pattern>",
	Short: "Search entries by archive path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := attachCatalog()
		if err != nil {
			fail("search paths", err)
		}
		defer cat.Detach()

		matches, err := cat.SearchPaths(args[0])
		if err != nil {
			fail("search paths", err)
		}
		return printJSON(matches)
	},
}

var searchTitlesCmd = &cobra.Command{
	Use:   "titles <pattern>",
	Short: "Search entries by canonical and alternate titles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := attachCatalog()
		if err != nil {
			fail("search titles", err)
		}
		defer cat.Detach()

		matches, err := cat.SearchTitles(args[0])
		if err != nil {
			fail("search titles", err)
		}
		return printJSON(matches)
	},
}

var searchIdentitiesCmd = &cobra.Command{
	Use:   "identities <pattern>",
	Short: "Search identities by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := attachCatalog()
		if err != nil {
			fail("search identities", err)
		}
		defer cat.Detach()

		matches, err := cat.SearchIdentities(args[0])
		if err != nil {
			fail("search identities", err)
		}
		return printJSON(matches)
	},
}
