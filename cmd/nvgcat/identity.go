// Identity commands for the nvgcat CLI.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var identityCmd = &cobra.Command{
	Use:   "identity",
	Short: "Manage identities and their alias links",
}

func init() {
	identityCmd.AddCommand(identityAddCmd)
	identityCmd.AddCommand(identityGetCmd)
	identityCmd.AddCommand(identityAliasCmd)
	identityCmd.AddCommand(identityRootCmd)
	identityCmd.AddCommand(identityAliasesCmd)
}

// parseIdentityID parses a numeric identity id argument.
func parseIdentityID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid identity id %q", arg)
	}
	return id, nil
}

var identityAddCmd = &cobra.Command{
	Use:   "add <name> [alias-of-id]",
	Short: "Add an identity, optionally as an alias of another",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var aliasOf *int64
		if len(args) == 2 {
			target, err := parseIdentityID(args[1])
			if err != nil {
				fmt.Fprintln(os.Stderr, "identity add:", err)
				os.Exit(exitUserError)
			}
			aliasOf = &target
		}

		cat, err := attachCatalog()
		if err != nil {
			fail("identity add", err)
		}
		defer cat.Detach()

		id, err := cat.InsertIdentity(args[0], aliasOf)
		if err != nil {
			fail("identity add", err)
		}

		saved, err := cat.GetIdentity(id)
		if err != nil {
			fail("identity add", err)
		}
		return printJSON(saved)
	},
}

var identityGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get an identity by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIdentityID(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "identity get:", err)
			os.Exit(exitUserError)
		}

		cat, err := attachCatalog()
		if err != nil {
			fail("identity get", err)
		}
		defer cat.Detach()

		identity, err := cat.GetIdentity(id)
		if err != nil {
			fail("identity get", err)
		}
		return printJSON(identity)
	},
}

var identityAliasCmd = &cobra.Command{
	Use:   "alias <id> <target-id|none>",
	Short: "Point an identity's alias link at another identity",
	Long: `Alias sets the alias-of link of one identity. The literal target "none"
detaches the identity, making it a root. A link that would close a cycle is
rejected and leaves the graph unchanged.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIdentityID(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "identity alias:", err)
			os.Exit(exitUserError)
		}

		var target *int64
		if args[1] != "none" {
			t, err := parseIdentityID(args[1])
			if err != nil {
				fmt.Fprintln(os.Stderr, "identity alias:", err)
				os.Exit(exitUserError)
			}
			target = &t
		}

		cat, err := attachCatalog()
		if err != nil {
			fail("identity alias", err)
		}
		defer cat.Detach()

		if err := cat.SetAliasOf(id, target); err != nil {
			fail("identity alias", err)
		}

		saved, err := cat.GetIdentity(id)
		if err != nil {
			fail("identity alias", err)
		}
		return printJSON(saved)
	},
}

var identityRootCmd = &cobra.Command{
	Use:   "root <id>",
	Short: "Resolve an identity to its root",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIdentityID(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "identity root:", err)
			os.Exit(exitUserError)
		}

		cat, err := attachCatalog()
		if err != nil {
			fail("identity root", err)
		}
		defer cat.Detach()

		root, err := cat.ResolveRoot(id)
		if err != nil {
			fail("identity root", err)
		}
		return printJSON(root)
	},
}

var identityAliasesCmd = &cobra.Command{
	Use:   "aliases <id>",
	Short: "List every identity in the same alias group",
	Long: `Aliases resolves the identity to its root and lists the whole group:
the root first, then each alias layer by layer.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIdentityID(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "identity aliases:", err)
			os.Exit(exitUserError)
		}

		cat, err := attachCatalog()
		if err != nil {
			fail("identity aliases", err)
		}
		defer cat.Detach()

		group, err := cat.AliasesOf(id)
		if err != nil {
			fail("identity aliases", err)
		}
		return printJSON(group)
	},
}
