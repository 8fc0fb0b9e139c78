// Package config resolves wordhunt settings from defaults, an optional YAML
// file, WORDHUNT_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"git.sr.ht/~jakintosh/wordhunt/internal/core"
	"git.sr.ht/~jakintosh/wordhunt/internal/scoring"
)

const (
	configFileName = "wordhunt"
	configFileType = "yaml"
	envPrefix      = "WORDHUNT"

	KeyDictionary = "dictionary"
	KeyBoard      = "board"
	KeyTiles      = "tiles"
	KeyMinLength  = "min_length"
	KeyRule       = "rule"

	DefaultDictionary = "words.txt"
	DefaultMinLength  = 4
)

// FlagNames maps config keys to the command-line flags that override them.
var FlagNames = map[string]string{
	KeyDictionary: "dict",
	KeyBoard:      "board",
	KeyTiles:      "tiles",
	KeyMinLength:  "min",
	KeyRule:       "rule",
}

// Config holds resolved settings.
type Config struct {
	Dictionary string
	BoardFile  string
	Tiles      string
	MinLength  int
	Rule       string
}

// Load resolves settings. configFile may be empty, in which case
// ./wordhunt.yaml is read when present. flags may be nil.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyDictionary, DefaultDictionary)
	v.SetDefault(KeyMinLength, DefaultMinLength)
	v.SetDefault(KeyRule, scoring.DefaultExpression)
	v.SetDefault(KeyBoard, "")
	v.SetDefault(KeyTiles, "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range FlagNames {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Dictionary: v.GetString(KeyDictionary),
		BoardFile:  v.GetString(KeyBoard),
		Tiles:      v.GetString(KeyTiles),
		MinLength:  v.GetInt(KeyMinLength),
		Rule:       v.GetString(KeyRule),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that do not need the filesystem.
func (c *Config) Validate() error {
	if c.MinLength < 1 {
		return fmt.Errorf("%s must be at least 1, got %d: %w", KeyMinLength, c.MinLength, core.ErrInvalidArgument)
	}
	if c.BoardFile != "" && c.Tiles != "" {
		return fmt.Errorf("only one of %s and %s may be set: %w", KeyBoard, KeyTiles, core.ErrInvalidArgument)
	}
	if strings.TrimSpace(c.Dictionary) == "" {
		return fmt.Errorf("%s is required: %w", KeyDictionary, core.ErrInvalidArgument)
	}
	return nil
}
