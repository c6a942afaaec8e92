package cli

import (
	"fmt"

	"github.com/npillmayer/bintree/treefile"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Check tree files",
		Long:  "Load each tree file, verify the tree's shape and report its size.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int
			for _, name := range args {
				tree, err := treefile.Load(name)
				if err == nil {
					err = tree.Check()
				}
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", name, err)
					failed++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, %d nodes, height %d\n", name, tree.Len(), tree.Height())
			}
			if failed > 0 {
				return userError(cmd, fmt.Errorf("%d of %d files failed", failed, len(args)))
			}
			return nil
		},
	}
}
