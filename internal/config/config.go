package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/augprompt-labs/augprompt/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyLang       = "lang"
	KeyPromptsDir = "prompts_dir"
	KeyTargetDir  = "target_dir"
)

// Keys lists every key accepted by Set.
var Keys = []string{KeyLang, KeyPromptsDir, KeyTargetDir}

// Dir returns the path to the config directory (~/.augprompt/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.augprompt/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file. A missing file is not
// an error. A file that exists but fails schema validation is reported and
// its values are discarded.
func Load() error {
	viper.Reset()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)

	if _, err := os.Stat(FilePath()); err != nil {
		return nil
	}

	result, err := ValidateFile(FilePath())
	if err != nil {
		return err
	}
	if !result.Valid {
		return &InvalidError{Path: FilePath(), Issues: result.Issues}
	}

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set validates and writes a config key-value pair and saves the config file.
// Keys already in the file are kept. An existing file that fails validation
// is left alone and reported, since rewriting it would drop its other keys.
func Set(key, value string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("unknown config key %q (known: %v)", key, Keys)
	}

	result, err := validateValue(map[string]interface{}{key: value})
	if err != nil {
		return err
	}
	if !result.Valid {
		return &InvalidError{Path: key, Issues: result.Issues}
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()
	viper.Reset()
	viper.SetConfigFile(configFile)
	viper.SetConfigType(fileType)

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	} else {
		current, err := ValidateFile(configFile)
		if err != nil {
			return err
		}
		if !current.Valid {
			return &InvalidError{Path: configFile, Issues: current.Issues}
		}
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	viper.Set(key, value)

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
