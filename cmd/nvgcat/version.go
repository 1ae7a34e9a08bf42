// Version command for the nvgcat CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/nvgcat/pkg/nvgcat"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the nvgcat version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("nvgcat", nvgcat.Version)
	},
}
