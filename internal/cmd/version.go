package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the release name, set at build time with
// -ldflags "-X github.com/govalues/evmmath/internal/cmd.Version=v1.0.0".
var Version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "version",
		Short:        "show version name",
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}
