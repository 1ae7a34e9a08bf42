// Association commands for the nvgcat CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/nvgcat/pkg/types"
)

var assocCmd = &cobra.Command{
	Use:   "assoc",
	Short: "Manage role associations between entries and identities",
}

// Flag values for assoc subcommands.
var (
	flagAssocIndex    int
	flagAssocIdentity int64
	flagAssocRole     string
)

func init() {
	assocAddCmd.Flags().IntVar(&flagAssocIndex, "index", -1, "display position within the role group (default: append)")
	assocDeleteCmd.Flags().Int64Var(&flagAssocIdentity, "identity", 0, "limit deletion to one identity id")
	assocDeleteCmd.Flags().StringVar(&flagAssocRole, "role", "", "limit deletion to one role")

	assocCmd.AddCommand(assocAddCmd)
	assocCmd.AddCommand(assocListCmd)
	assocCmd.AddCommand(assocDeleteCmd)
}

var assocAddCmd = &cobra.Command{
	Use:   "add <entry-id|path> <role> <name>",
	Short: "Credit an identity on an entry under a role",
	Long: `Add credits a name on an entry under one of the recognized roles:
PUBLISHER, RE-RELEASED BY, CRACKER, DEVELOPER, AUTHOR, DESIGNER, ARTIST,
MUSICIAN. An identity with that exact name is reused if present and created
otherwise. Without --index the credit is appended after the role group's
highest position.

Example:
  nvgcat assoc add games/arcade/rolanrop.zip AUTHOR "Paco Suarez"`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		role := types.Role(args[1])
		if !role.Valid() {
			fmt.Fprintf(os.Stderr, "assoc add: unknown role %q\n", args[1])
			os.Exit(exitUserError)
		}

		var index *int
		if flagAssocIndex >= 0 {
			index = &flagAssocIndex
		}

		cat, err := attachCatalog()
		if err != nil {
			fail("assoc add", err)
		}
		defer cat.Detach()

		e, err := findEntry(cat, args[0])
		if err != nil {
			fail("assoc add", err)
		}
		assoc, err := cat.AddAssociation(e.EntryID, args[2], role, index)
		if err != nil {
			fail("assoc add", err)
		}
		return printJSON(assoc)
	},
}

var assocListCmd = &cobra.Command{
	Use:   "list <entry-id|path>",
	Short: "List an entry's associations in manifest order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := attachCatalog()
		if err != nil {
			fail("assoc list", err)
		}
		defer cat.Detach()

		e, err := findEntry(cat, args[0])
		if err != nil {
			fail("assoc list", err)
		}
		assocs, err := cat.OrderedAssociations(e.EntryID)
		if err != nil {
			fail("assoc list", err)
		}
		return printJSON(assocs)
	},
}

var assocDeleteCmd = &cobra.Command{
	Use:   "delete <entry-id|path>",
	Short: "Delete an entry's associations",
	Long: `Delete removes associations of an entry. With no flags every association
is removed; --identity and --role narrow the deletion.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		role := types.Role(flagAssocRole)
		if flagAssocRole != "" && !role.Valid() {
			fmt.Fprintf(os.Stderr, "assoc delete: unknown role %q\n", flagAssocRole)
			os.Exit(exitUserError)
		}

		cat, err := attachCatalog()
		if err != nil {
			fail("assoc delete", err)
		}
		defer cat.Detach()

		e, err := findEntry(cat, args[0])
		if err != nil {
			fail("assoc delete", err)
		}
		n, err := cat.DeleteAssociations(e.EntryID, flagAssocIdentity, role)
		if err != nil {
			fail("assoc delete", err)
		}

		fmt.Printf("deleted %d association(s)\n", n)
		return nil
	},
}
