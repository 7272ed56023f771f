// Copyright (c) 2026, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

// Package config loads devrel configuration from defaults, an optional YAML file, DEVREL_*
// environment variables and command line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Tag sources.
const (
	TagSourceGoGit = "go-git"
	TagSourceExec  = "exec"
)

// DefaultFile is the name of the configuration file searched for in the working directory.
const DefaultFile = ".devrel.yaml"

// ErrInvalid is returned when a configuration value is not valid.
var ErrInvalid = errors.New("invalid configuration")

// Package describes the development distribution.
type Package struct {
	Name        string `mapstructure:"name" yaml:"name"`
	Repository  string `mapstructure:"repository" yaml:"repository"`
	Description string `mapstructure:"description" yaml:"description"`
}

// Log configures logging.
type Log struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Config is the complete devrel configuration.
type Config struct {
	RepositoryPath  string  `mapstructure:"repository_path" yaml:"repository_path"`
	TagSource       string  `mapstructure:"tag_source" yaml:"tag_source"`
	GitPath         string  `mapstructure:"git_path" yaml:"git_path"`
	VersionFile     string  `mapstructure:"version_file" yaml:"version_file"`
	VersionVariable string  `mapstructure:"version_variable" yaml:"version_variable"`
	SetupFile       string  `mapstructure:"setup_file" yaml:"setup_file"`
	AssumeUnchanged bool    `mapstructure:"assume_unchanged" yaml:"assume_unchanged"`
	Package         Package `mapstructure:"package" yaml:"package"`
	Log             Log     `mapstructure:"log" yaml:"log"`
}

// setDefaults registers the default value of every key with v.
func setDefaults(v *viper.Viper) {
	v.SetDefault("repository_path", ".")
	v.SetDefault("tag_source", TagSourceGoGit)
	v.SetDefault("git_path", "")
	v.SetDefault("version_file", "mypy/mypy/version.py")
	v.SetDefault("version_variable", "__version__")
	v.SetDefault("setup_file", "mypy/setup.py")
	v.SetDefault("assume_unchanged", true)
	v.SetDefault("package.name", "mypy-dev")
	v.SetDefault("package.repository", "https://github.com/cdce8p/mypy-dev")
	v.SetDefault("package.description", "Development releases for mypy.\n\nUse at your own risk!")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
}

// flagKeys maps flag names to the configuration keys they override.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
}

// loadOpts contains configured options.
type loadOpts struct {
	path  string
	flags *pflag.FlagSet
}

// LoadOpt are used to configure optional Load behavior.
type LoadOpt func(*loadOpts) error

// OptLoadFile specifies the configuration file to read. If the file does not exist, Load fails.
// Without this option, DefaultFile is read from the working directory if present.
func OptLoadFile(path string) LoadOpt {
	return func(o *loadOpts) error {
		o.path = path
		return nil
	}
}

// OptLoadFlags specifies a flag set whose "log-level" and "log-format" flags, when changed,
// override other sources.
func OptLoadFlags(fs *pflag.FlagSet) LoadOpt {
	return func(o *loadOpts) error {
		o.flags = fs
		return nil
	}
}

// Load returns the configuration, configured with opts.
func Load(opts ...LoadOpt) (*Config, error) {
	lo := loadOpts{}

	for _, opt := range opts {
		if err := opt(&lo); err != nil {
			return nil, err
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("DEVREL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if lo.path != "" {
		v.SetConfigFile(lo.path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("while reading config: %w", err)
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(DefaultFile, ".yaml"))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return nil, fmt.Errorf("while reading config: %w", err)
			}
		}
	}

	if lo.flags != nil {
		for name, key := range flagKeys {
			if f := lo.flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("while decoding config: %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// validate returns an error if c contains invalid values.
func (c *Config) validate() error {
	switch c.TagSource {
	case TagSourceGoGit, TagSourceExec:
	default:
		return fmt.Errorf("%w: tag_source %q must be %q or %q",
			ErrInvalid, c.TagSource, TagSourceGoGit, TagSourceExec)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q must be \"text\" or \"json\"", ErrInvalid, c.Log.Format)
	}

	if c.VersionVariable == "" {
		return fmt.Errorf("%w: version_variable must not be empty", ErrInvalid)
	}

	return nil
}

// Write writes c to w in YAML form.
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
