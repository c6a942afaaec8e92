// Config loading for the bintree CLI.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configFileName = "bintree"
	configFileType = "yaml"
	envPrefix      = "BINTREE"

	// Config keys, each doubling as the name of a command-line flag.
	cfgKeyTrace        = "trace"
	cfgKeyFormat       = "format"
	cfgKeyColor        = "color"
	cfgKeyWidth        = "width"
	cfgKeyPlaceholders = "placeholders"
)

// loadConfig reads bintree.yaml using Viper and binds the flags of cmd to
// their config keys. A missing config file is not an error, unless it has
// been named explicitly.
func loadConfig(v *viper.Viper, configFile string, cmd *cobra.Command) error {
	v.SetDefault(cfgKeyTrace, "error")
	v.SetDefault(cfgKeyFormat, formatText)
	v.SetDefault(cfgKeyColor, colorAuto)
	v.SetDefault(cfgKeyWidth, 0)
	v.SetDefault(cfgKeyPlaceholders, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range []string{cfgKeyTrace, cfgKeyFormat, cfgKeyColor, cfgKeyWidth, cfgKeyPlaceholders} {
		if f := cmd.Flags().Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", key, err)
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, configFileName))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && configFile == "" {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}
