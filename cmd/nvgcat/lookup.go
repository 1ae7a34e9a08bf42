// Reference table commands for the nvgcat CLI: languages, type categories
// and publication categories.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var languageCmd = &cobra.Command{
	Use:   "language",
	Short: "Manage the language reference table",
}

var typeCmd = &cobra.Command{
	Use:   "type",
	Short: "Manage the type category reference table",
}

var publicationCmd = &cobra.Command{
	Use:   "publication",
	Short: "Manage the publication category reference table",
}

func init() {
	languageCmd.AddCommand(languageAddCmd)
	languageCmd.AddCommand(languageUpdateCmd)
	languageCmd.AddCommand(languageDeleteCmd)
	languageCmd.AddCommand(languageListCmd)

	typeCmd.AddCommand(typeAddCmd)
	typeCmd.AddCommand(typeListCmd)

	publicationCmd.AddCommand(publicationAddCmd)
	publicationCmd.AddCommand(publicationListCmd)
}

var languageAddCmd = &cobra.Command{
	Use:   "add <tag> <description>",
	Short: "Add a language",
	Long: `Add records a language under an IETF tag of the form xx or xx-YY
(e.g. "en", "pt-BR"). Tag casing is normalized before storage.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := attachCatalog()
		if err != nil {
			fail("language add", err)
		}
		defer cat.Detach()

		tag, err := cat.InsertLanguage(args[0], args[1])
		if err != nil {
			fail("language add", err)
		}

		fmt.Printf("added language %s (%s)\n", tag, args[1])
		return nil
	},
}

var languageUpdateCmd = &cobra.Command{
	Use:   "update <tag> <description>",
	Short: "Update a language description",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := attachCatalog()
		if err != nil {
			fail("language update", err)
		}
		defer cat.Detach()

		if err := cat.UpdateLanguage(args[0], args[1]); err != nil {
			fail("language update", err)
		}

		fmt.Printf("updated language %s\n", args[0])
		return nil
	},
}

var languageDeleteCmd = &cobra.Command{
	Use:   "delete <tag>",
	Short: "Delete a language not referenced by any entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := attachCatalog()
		if err != nil {
			fail("language delete", err)
		}
		defer cat.Detach()

		if err := cat.DeleteLanguage(args[0]); err != nil {
			fail("language delete", err)
		}

		fmt.Printf("deleted language %s\n", args[0])
		return nil
	},
}

var languageListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all languages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := attachCatalog()
		if err != nil {
			fail("language list", err)
		}
		defer cat.Detach()

		languages, err := cat.Languages()
		if err != nil {
			fail("language list", err)
		}
		return printJSON(languages)
	},
}

// parseCategoryID parses the optional explicit category id argument.
func parseCategoryID(args []string) (int64, error) {
	if len(args) < 2 {
		return 0, nil
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid category id %q", args[1])
	}
	return id, nil
}

var typeAddCmd = &cobra.Command{
	Use:   "add <description> [id]",
	Short: "Add a type category",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseCategoryID(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, "type add:", err)
			os.Exit(exitUserError)
		}

		cat, err := attachCatalog()
		if err != nil {
			fail("type add", err)
		}
		defer cat.Detach()

		saved, err := cat.InsertTypeCategory(args[0], id)
		if err != nil {
			fail("type add", err)
		}

		fmt.Printf("added type category %d (%s)\n", saved, args[0])
		return nil
	},
}

var typeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all type categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := attachCatalog()
		if err != nil {
			fail("type list", err)
		}
		defer cat.Detach()

		categories, err := cat.TypeCategories()
		if err != nil {
			fail("type list", err)
		}
		return printJSON(categories)
	},
}

var publicationAddCmd = &cobra.Command{
	Use:   "add <description> [id]",
	Short: "Add a publication category",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseCategoryID(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, "publication add:", err)
			os.Exit(exitUserError)
		}

		cat, err := attachCatalog()
		if err != nil {
			fail("publication add", err)
		}
		defer cat.Detach()

		saved, err := cat.InsertPublicationCategory(args[0], id)
		if err != nil {
			fail("publication add", err)
		}

		fmt.Printf("added publication category %d (%s)\n", saved, args[0])
		return nil
	},
}

var publicationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all publication categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := attachCatalog()
		if err != nil {
			fail("publication list", err)
		}
		defer cat.Detach()

		categories, err := cat.PublicationCategories()
		if err != nil {
			fail("publication list", err)
		}
		return printJSON(categories)
	},
}
