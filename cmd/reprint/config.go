package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bjaus/reprint"
)

const (
	configFileName = ".reprint"
	configFileType = "yaml"
	envPrefix      = "REPRINT"

	cfgKeyStyle      = "style"
	cfgKeyMaxDepth   = "max_depth"
	cfgKeyMaxWidth   = "max_width"
	cfgKeyStylesFile = "styles_file"
)

// loadConfig layers flags over REPRINT_* env vars over the config file over
// defaults. An explicit --config file must exist; the default .reprint.yaml
// in the working or home directory is optional.
func loadConfig(cmd *cobra.Command, configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyStyle, reprint.StylePretty)
	v.SetDefault(cfgKeyMaxDepth, 0)
	v.SetDefault(cfgKeyMaxWidth, 0)
	v.SetDefault(cfgKeyStylesFile, "")

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	flagKeys := map[string]string{
		cfgKeyStyle:      "style",
		cfgKeyMaxDepth:   "max-depth",
		cfgKeyMaxWidth:   "max-width",
		cfgKeyStylesFile: "styles-file",
	}
	for key, name := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		return v, nil
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// loadStyles reads the custom styles file named in the config, if any.
func loadStyles(v *viper.Viper) (map[string]reprint.Printer, error) {
	path := v.GetString(cfgKeyStylesFile)
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open styles: %w", err)
	}
	defer f.Close()
	return reprint.ParseStyles(f)
}

// printerFor resolves the configured style and applies limit overrides.
func printerFor(v *viper.Viper) (reprint.Printer, error) {
	extra, err := loadStyles(v)
	if err != nil {
		return reprint.Printer{}, err
	}
	p, err := reprint.LookupStyle(v.GetString(cfgKeyStyle), extra)
	if err != nil {
		return reprint.Printer{}, err
	}
	if d := v.GetInt(cfgKeyMaxDepth); d > 0 {
		p.MaxDepth = d
	}
	if w := v.GetInt(cfgKeyMaxWidth); w > 0 {
		p.MaxWidth = w
	}
	return p, nil
}
