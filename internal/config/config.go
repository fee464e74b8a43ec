// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings shared by the fastats commands.
// Settings are unmarshalled from viper and may come from command line
// flags, FASTATS_ prefixed environment variables or a settings file.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "FASTATS"

// ErrMissingInput is returned by Load when no input file is configured.
var ErrMissingInput = errors.New("no input file specified")

// Config is the union of the command settings.
type Config struct {
	// path to the input FASTA file
	Infile string `mapstructure:"infile"`

	// path to the nt-stats report
	Outfile string `mapstructure:"outfile"`

	// ss-split destinations
	ProteinOut string `mapstructure:"protein-out"`
	SSOut      string `mapstructure:"ss-out"`

	// header substring identifying protein records
	Marker string `mapstructure:"marker"`

	// sequence line width for ss-split, 0 for no wrapping
	Width int `mapstructure:"width"`

	LogLevel string `mapstructure:"log-level"`
}

// Load returns the Config held by v after merging the settings file named
// by the "config" key, if any, and the environment.
func Load(v *viper.Viper) (Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		err := v.ReadInConfig()
		if err != nil {
			return Config{}, fmt.Errorf("failed to read settings file %q: %w", path, err)
		}
	}

	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode settings: %w", err)
	}
	if c.Infile == "" {
		return c, ErrMissingInput
	}
	if c.Width < 0 {
		return c, fmt.Errorf("invalid line width: %d", c.Width)
	}
	return c, nil
}

// NewLogger returns a logger writing to w at the named level.
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
	})
	return logger, nil
}
