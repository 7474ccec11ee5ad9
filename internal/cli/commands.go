package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/autoheader/internal/version"
	"github.com/arthur-debert/autoheader/pkg/config"
	"github.com/arthur-debert/autoheader/pkg/filetype"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "autoheader %s (commit %s, built %s)\n",
				version.Version, version.Commit, version.Date)
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: "Print a default " + config.FileName + " to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := config.Generate()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func newListTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-types",
		Short: "List supported file types and their extensions",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range filetype.Names() {
				desc, err := filetype.Get(name)
				if err != nil {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %v\n", name, desc.Extensions)
			}
		},
	}
}
