package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/seqmine/pkg/seqmine"
)

const modulePath = "github.com/mesh-intelligence/seqmine"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the seqmine version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "seqmine v%s\nmodule: %s\n", seqmine.Version, modulePath)
			return nil
		},
	}
}
