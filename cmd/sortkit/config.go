// Copyright 2025 go-simplesort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

const (
	envLogLevel = "SORTKIT_LOG_LEVEL"
	envFormat   = "SORTKIT_FORMAT"
	envStats    = "SORTKIT_STATS"

	defaultLogLevel = "warn"
	defaultFormat   = formatText
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

// ErrUnknownFormat is returned for an unsupported --format value.
var ErrUnknownFormat = errors.New("unknown output format")

// options holds the flags shared by every sort subcommand.
type options struct {
	stats    bool
	float    bool
	format   string
	logLevel string
}

// defaultOptions seeds flag defaults from the environment.
func defaultOptions() options {
	return options{
		stats:    envBool(envStats),
		format:   envOr(envFormat, defaultFormat),
		logLevel: envOr(envLogLevel, defaultLogLevel),
	}
}

// envOr returns the trimmed value of key, or fallback when it is unset or blank.
func envOr(key, fallback string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	return val
}

// envBool reports whether key is set to a true value.
// Any non-empty value that does not parse as a bool counts as true.
func envBool(key string) bool {
	val := os.Getenv(key)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// bind registers the shared flags on fs, using the current values as defaults.
func (o *options) bind(fs *pflag.FlagSet) {
	fs.BoolVar(&o.stats, "stats", o.stats, "print comparison, swap and shift counts (env "+envStats+")")
	fs.BoolVar(&o.float, "float", o.float, "parse input as float64 instead of int64")
	fs.StringVar(&o.format, "format", o.format, "output format: text or json (env "+envFormat+")")
	fs.StringVar(&o.logLevel, "log-level", o.logLevel, "log level (env "+envLogLevel+")")
}

// validate normalizes o in place.
func (o *options) validate() error {
	o.format = strings.ToLower(strings.TrimSpace(o.format))
	switch o.format {
	case formatText, formatJSON:
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", o.format)
	}
	if _, err := parseLogLevel(o.logLevel); err != nil {
		return err
	}
	return nil
}

func parseLogLevel(s string) (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return zerolog.NoLevel, errors.Wrap(err, "log level")
	}
	if lvl == zerolog.NoLevel {
		return zerolog.WarnLevel, nil
	}
	return lvl, nil
}
