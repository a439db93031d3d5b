package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile = "schemats.yaml"
	databaseURLEnv    = "SCHEMATS_DATABASE_URL"
)

// fileDatabaseURL is the database_url from the config file, used when neither
// a flag nor the environment names a database.
var fileDatabaseURL string

// Config represents the schemats.yaml configuration file.
type Config struct {
	DatabaseURL       string   `yaml:"database_url"`
	Schema            string   `yaml:"schema"`
	Prefix            string   `yaml:"prefix"`
	Tables            []string `yaml:"tables"`
	Exclude           []string `yaml:"exclude"`
	Output            string   `yaml:"output"`
	OutputDir         string   `yaml:"output_dir"`
	TinyIntAsBoolean  bool     `yaml:"tiny_int_as_boolean"`
	BinaryAsBuffer    bool     `yaml:"binary_as_buffer"`
	NullAsUndefined   bool     `yaml:"null_as_undefined"`
	NullPlusUndefined bool     `yaml:"null_plus_undefined"`
	OutputAsTypes     bool     `yaml:"output_as_types"`
}

// loadConfig applies the config file to every flag not set on the command line.
// Precedence: CLI flags > env vars > config file > defaults.
// A missing default config file is not an error; a missing explicit one is.
func loadConfig(cmd *cobra.Command) error {
	fileDatabaseURL = ""

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := parseConfig(data)
	if err != nil {
		return err
	}
	fileDatabaseURL = os.Expand(cfg.DatabaseURL, os.Getenv)

	return applyConfig(cmd.Flags(), cfg.flagValues())
}

func parseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// flagValues maps flag names to the values the config file sets for them.
func (c *Config) flagValues() map[string]string {
	values := make(map[string]string)
	setString := func(name, v string) {
		if v != "" {
			values[name] = v
		}
	}
	setBool := func(name string, v bool) {
		if v {
			values[name] = strconv.FormatBool(v)
		}
	}

	setString("schema", c.Schema)
	setString("prefix", c.Prefix)
	setString("tables", strings.Join(c.Tables, ","))
	setString("exclude", strings.Join(c.Exclude, ","))
	setString("output", c.Output)
	setString("output-dir", c.OutputDir)
	setBool("tiny-int-as-boolean", c.TinyIntAsBoolean)
	setBool("binary-as-buffer", c.BinaryAsBuffer)
	setBool("null-as-undefined", c.NullAsUndefined)
	setBool("null-plus-undefined", c.NullPlusUndefined)
	setBool("output-as-types", c.OutputAsTypes)

	return values
}

func applyConfig(flags *pflag.FlagSet, values map[string]string) error {
	var errs []error
	flags.VisitAll(func(f *pflag.Flag) {
		v, ok := values[f.Name]
		if !ok || f.Changed {
			return
		}
		if err := f.Value.Set(v); err != nil {
			errs = append(errs, fmt.Errorf("invalid config value for %s: %w", f.Name, err))
		}
	})
	return errors.Join(errs...)
}
