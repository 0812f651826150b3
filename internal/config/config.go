// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package config loads gatekeeper settings and the initial credential table.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"

	"github.com/holomush/gatekeeper/internal/auth"
	"github.com/holomush/gatekeeper/internal/xdg"
)

// Default values for settings not present in the file or on the command line.
const (
	DefaultLogFormat = "text"
	DefaultLogLevel  = "info"
)

// User is one entry of the credential table.
type User struct {
	Username string `koanf:"username" json:"username" jsonschema:"description=Exact case-sensitive username"`
	Password string `koanf:"password" json:"password" jsonschema:"description=Expected password compared byte for byte"`
}

// Config is the gatekeeper configuration.
type Config struct {
	LogFormat   string `koanf:"log_format" json:"log_format,omitempty" jsonschema:"enum=json,enum=text"`
	LogLevel    string `koanf:"log_level" json:"log_level,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
	MetricsFile string `koanf:"metrics_file" json:"metrics_file,omitempty" jsonschema:"description=Write Prometheus text metrics here after each command"`
	Users       []User `koanf:"users" json:"users,omitempty" jsonschema:"description=Initial credential table; usernames must be unique"`

	// Source is the file the config was read from, empty if none.
	Source string `koanf:"-" json:"-"`
}

// Credentials returns the credential table in file order.
func (c *Config) Credentials() []auth.Credential {
	creds := make([]auth.Credential, 0, len(c.Users))
	for _, u := range c.Users {
		creds = append(creds, auth.Credential{Username: u.Username, Password: u.Password})
	}
	return creds
}

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// Path is an explicit config file. When empty, the XDG default is used
	// if it exists.
	Path string

	// Flags are merged over the file. Flag names use dashes where config
	// keys use underscores. Unchanged flags only supply defaults.
	Flags *pflag.FlagSet
}

// Load reads configuration from file and flags.
// If the file has no users key, the built-in demo credentials are used.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	path := opts.Path
	required := path != ""
	if !required {
		path = xdg.ConfigFile()
	}

	source := ""
	if required || fileExists(path) {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, oops.Code("CONFIG_READ_FAILED").With("path", path).Wrap(err)
		}
		if err := validateRaw(k.Raw()); err != nil {
			return nil, oops.Code("CONFIG_INVALID").With("path", path).Wrap(err)
		}
		source = path
	}

	if opts.Flags != nil {
		provider := posflag.ProviderWithFlag(opts.Flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(opts.Flags, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return nil, oops.Code("CONFIG_INVALID").With("source", "flags").Wrap(err)
		}
	}

	cfg := &Config{
		LogFormat: DefaultLogFormat,
		LogLevel:  DefaultLogLevel,
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, oops.Code("CONFIG_INVALID").With("path", source).Wrap(err)
	}
	if !k.Exists("users") {
		for _, c := range auth.DefaultCredentials() {
			cfg.Users = append(cfg.Users, User{Username: c.Username, Password: c.Password})
		}
	}
	cfg.Source = source

	return cfg, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
