package cmd

import (
	"fmt"

	"github.com/bnema/estate-admin-cli/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := version.Version
			if long {
				out = version.String()
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&long, "long", false, "Include commit and build date")

	return cmd
}
