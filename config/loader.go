package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding config keys.
const EnvPrefix = "COVERALLS"

// LoadReporterConfig loads config from command instance to predefined config variables.
// An explicit --config file must exist; otherwise a .coveralls.{yml,yaml,json} file in
// the working or home directory is read when present.
func LoadReporterConfig(cmd *cobra.Command) (*ReporterConfig, error) {
	err := viper.BindPFlags(cmd.Flags())
	if err != nil {
		return nil, err
	}

	// default viper configs
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// set default configs
	setReporterDefaultConfig()

	if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		viper.SetConfigName(".coveralls")
		viper.AddConfigPath("./")
		viper.AddConfigPath("$HOME")
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	return populateReporterConfig(new(ReporterConfig))
}
