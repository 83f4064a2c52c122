// Package config manages application configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/tsky/watchgrass/model"
)

// Config holds the full application configuration. Unknown theme,
// week-start and filter values fall back to their documented defaults
// (dark, sunday, all); only a missing API client ID is fatal.
type Config struct {
	// Trakt application client ID, required for any fetch.
	ClientID string

	// Target username.
	Username string

	// Target years; empty means auto-detect the most active year.
	Years model.YearList

	Theme        string
	WeekStart    model.WeekStart
	Filter       model.ContentFilter
	Scheme       string // color scheme: "linear" (default) or "percentile"
	NameGradient bool

	// Output directory for one-shot mode.
	OutDir string

	// HTTP listen address for serve mode.
	Port string

	// Time zone for local-day bucketing; defaults to the process zone.
	Location *time.Location
}

// File is the optional YAML config file shape.
type File struct {
	Theme        string `yaml:"theme"`
	WeekStart    string `yaml:"week_start"`
	Filter       string `yaml:"filter"`
	Scheme       string `yaml:"scheme"`
	NameGradient bool   `yaml:"name_gradient"`
	Years        string `yaml:"years"`
	OutDir       string `yaml:"out_dir"`
	Timezone     string `yaml:"timezone"`
}

// Load reads configuration from the environment, merging in an optional
// YAML file (WATCHGRASS_CONFIG) and a .env file when present.
// Environment variables win over file values.
func Load(log *slog.Logger) (*Config, error) {
	// .env is a development convenience; absence is not an error
	_ = godotenv.Load()

	var file File
	if path := os.Getenv("WATCHGRASS_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg := &Config{
		ClientID: os.Getenv("TRAKT_CLIENT_ID"),
		Username: os.Getenv("TRAKT_USERNAME"),
		Theme:    pick(os.Getenv("WATCHGRASS_THEME"), file.Theme),
		Scheme:   pick(os.Getenv("WATCHGRASS_SCHEME"), file.Scheme),
		OutDir:   pick(os.Getenv("WATCHGRASS_OUT_DIR"), file.OutDir, "."),
		Port:     pick(os.Getenv("WATCHGRASS_PORT"), "8080"),
		Location: time.Local,
	}

	ws, ok := model.ParseWeekStart(pick(os.Getenv("WATCHGRASS_WEEK_START"), file.WeekStart))
	if !ok {
		log.Warn("unknown week start, using sunday")
	}
	cfg.WeekStart = ws

	filter, ok := model.ParseContentFilter(pick(os.Getenv("WATCHGRASS_FILTER"), file.Filter))
	if !ok {
		log.Warn("unknown content filter, using all")
	}
	cfg.Filter = filter

	years, err := model.ParseYearList(pick(os.Getenv("WATCHGRASS_YEARS"), file.Years))
	if err != nil {
		return nil, err
	}
	cfg.Years = years

	if g := os.Getenv("WATCHGRASS_NAME_GRADIENT"); g != "" {
		cfg.NameGradient = g == "1" || g == "true"
	} else {
		cfg.NameGradient = file.NameGradient
	}

	if tz := pick(os.Getenv("WATCHGRASS_TZ"), file.Timezone); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			log.Warn("unknown timezone, using local", "tz", tz)
		} else {
			cfg.Location = loc
		}
	}

	return cfg, nil
}

// Validate checks the fields required for fetching.
func (c *Config) Validate() error {
	if c.ClientID == "" {
		return model.NewValidationError("TRAKT_CLIENT_ID is required")
	}
	return nil
}

// pick returns the first non-empty string.
func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
