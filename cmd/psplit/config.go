package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/npillmayer/schuko"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a psplit run. It may be loaded from a YAML
// file; command line flags override its values.
type Config struct {
	Units      string `yaml:"units" validate:"oneof=words sentences graphemes fields lines fragments"`
	FragSize   int64  `yaml:"fragsize" validate:"gte=0"`
	At         []int  `yaml:"at" validate:"dive,gte=0"`
	Width      int    `yaml:"width" validate:"gte=0"`
	Snap       bool   `yaml:"snap"`
	Output     string `yaml:"output" validate:"oneof=listing console"`
	TraceLevel string `yaml:"tracelevel" validate:"omitempty,oneof=Debug Info Error"`
}

// Defaults returns the configuration used if neither a configuration file
// nor flags are given.
func Defaults() Config {
	return Config{
		Units:      "words",
		Output:     "listing",
		TraceLevel: "Error",
	}
}

// LoadConfig reads a YAML configuration file and merges it onto the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse %s: %w", path, err)
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks the configuration for illegal values.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ParsePoints parses a comma separated list of split points.
func ParsePoints(s string) ([]int, error) {
	points := []int{}
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		p, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("illegal split point %q: %w", f, err)
		}
		points = append(points, p)
	}
	return points, nil
}

// --- Tracing configuration -------------------------------------------------

// traceConf adapts a Config to schuko.Configuration, for setting up tracing.
type traceConf struct {
	values map[string]string
}

var _ schuko.Configuration = traceConf{}

func (c Config) tracingConfiguration() traceConf {
	return traceConf{values: map[string]string{
		"tracing.adapter":   "go",
		"tracelevel.root":   c.TraceLevel,
		"tracelevel.parray": c.TraceLevel,
	}}
}

func (tc traceConf) InitDefaults()               {}
func (tc traceConf) GetString(key string) string { return tc.values[key] }
func (tc traceConf) IsInteractive() bool         { return false }

func (tc traceConf) IsSet(key string) bool {
	_, ok := tc.values[key]
	return ok
}

func (tc traceConf) GetInt(key string) int {
	n, _ := strconv.Atoi(tc.values[key])
	return n
}

func (tc traceConf) GetBool(key string) bool {
	b, _ := strconv.ParseBool(tc.values[key])
	return b
}
