package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/bintree"
	"github.com/npillmayer/bintree/display"
	"github.com/npillmayer/bintree/html"
	"github.com/npillmayer/bintree/treefile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// Output formats.
const (
	formatText = "text"
	formatDot  = "dot"
	formatHTML = "html"
)

// Color modes.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

func newShowCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print a tree",
		Long: "Print the tree of a YAML tree file, either as an indented console\n" +
			"tree, as a Graphviz DOT graph or as an HTML fragment.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := treefile.Load(args[0])
			if err != nil {
				return userError(cmd, err)
			}
			if err := show(cmd.OutOrStdout(), tree, v); err != nil {
				return userError(cmd, err)
			}
			return nil
		},
	}
	cmd.Flags().String(cfgKeyFormat, formatText, "output format: text, dot or html")
	cmd.Flags().String(cfgKeyColor, colorAuto, "colorize text output: auto, always or never")
	cmd.Flags().Int(cfgKeyWidth, 0, "maximum label width for text output (0: unlimited)")
	cmd.Flags().Bool(cfgKeyPlaceholders, false, "print empty slots of inner nodes")
	return cmd
}

func show(w io.Writer, tree *bintree.BinaryTree[string], v *viper.Viper) error {
	switch format := v.GetString(cfgKeyFormat); format {
	case formatText:
		opts, err := displayOptions(w, v)
		if err != nil {
			return err
		}
		return display.Print(w, tree, opts)
	case formatDot:
		return bintree.ToDot(tree, w)
	case formatHTML:
		return html.Render(w, tree)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// displayOptions derives console options from the configuration. Colors in
// mode "auto" are enabled if w is a terminal.
func displayOptions(w io.Writer, v *viper.Viper) (*display.Options, error) {
	opts := &display.Options{
		Width:        v.GetInt(cfgKeyWidth),
		Placeholders: v.GetBool(cfgKeyPlaceholders),
	}
	switch mode := v.GetString(cfgKeyColor); mode {
	case colorAlways:
		opts.Color = true
	case colorNever:
	case colorAuto:
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			terminal := display.OptionsFromTerminal()
			opts.Color = true
			opts.Context = terminal.Context
			if opts.Width == 0 {
				opts.Width = terminal.Width
			}
		}
	default:
		return nil, fmt.Errorf("unknown color mode %q", mode)
	}
	return opts, nil
}
