// Package cli implements the bintree command-line interface.
//
// The CLI reads trees from YAML tree files and renders, queries and checks
// them. Settings come from flags, from environment variables prefixed with
// BINTREE_, and from an optional configuration file bintree.yaml.
package cli

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

// Version is the version of the bintree CLI.
const Version = "v0.1.0"

// NewRootCmd creates the top-level "bintree" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var configFile string
	root := &cobra.Command{
		Use:   "bintree",
		Short: "Inspect binary trees written as YAML tree files",
		Long: "bintree reads binary trees from YAML tree files and prints,\n" +
			"queries and checks them.",
		Version: Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(v, configFile, cmd); err != nil {
				return err
			}
			setupTracing(v.GetString(cfgKeyTrace), cmd)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ./bintree.yaml or $XDG_CONFIG_HOME/bintree/bintree.yaml)")
	root.PersistentFlags().String("trace", "", "trace level: debug, info or error (default: error)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newShowCmd(v))
	root.AddCommand(newGetCmd())
	root.AddCommand(newCheckCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}

// setupTracing installs a console tracer for all packages of this module.
// Tracing output goes to the command's error stream.
func setupTracing(level string, cmd *cobra.Command) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	trace := tracing.Select("bintree")
	trace.SetOutput(cmd.ErrOrStderr())
	trace.SetTraceLevel(tracing.TraceLevelFromString(level))
	trace.Debugf("tracing at level %s", trace.GetTraceLevel())
}

// userError prefixes an error with the name of the failing command.
func userError(cmd *cobra.Command, err error) error {
	return fmt.Errorf("%s: %w", cmd.Name(), err)
}
