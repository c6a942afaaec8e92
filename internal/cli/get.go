package cli

import (
	"fmt"

	"github.com/npillmayer/bintree"
	"github.com/npillmayer/bintree/treefile"
	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE [PATH]",
		Short: "Print the value of a node",
		Long: "Print the value of the node reached by following PATH from the root.\n" +
			"PATH is a sequence of L and R steps; an empty or missing PATH\n" +
			"denotes the root.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := treefile.Load(args[0])
			if err != nil {
				return userError(cmd, err)
			}
			var path bintree.Path
			if len(args) == 2 {
				if path, err = bintree.ParsePath(args[1]); err != nil {
					return userError(cmd, err)
				}
			}
			n, ok := tree.Root().At(path)
			if !ok {
				return userError(cmd, fmt.Errorf("no node at path %s", path))
			}
			fmt.Fprintln(cmd.OutOrStdout(), n.Value())
			return nil
		},
	}
}
