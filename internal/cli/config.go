// Config loading for the seqmine CLI.
package cli

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyMinSupport = "min_support"
	cfgKeyMaxK       = "max_k"
	cfgKeyWorkers    = "workers"
	cfgKeyPrefilter  = "prefilter"
	cfgKeyDataDir    = "data_dir"

	// Defaults matching the mine command's flag defaults.
	defaultMinSupport = 0.2
)

// envPrefilter toggles the presence prefilter when no flag is given.
// Accepted truthy values are "1" and "true" (case-insensitive).
const envPrefilter = "SEQMINE_PREFILTER"

// loadConfig reads config.yaml from the resolved config directory using Viper.
// A missing config.yaml is not an error; defaults apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyMinSupport, defaultMinSupport)
	v.SetDefault(cfgKeyMaxK, 0)
	v.SetDefault(cfgKeyWorkers, 0)
	v.SetDefault(cfgKeyPrefilter, false)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}
