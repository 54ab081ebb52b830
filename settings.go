package cashcast

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cashcast/cashcast/date"
	"gopkg.in/yaml.v3"
)

// Settings holds the application configuration shared by all commands:
// where the book lives and how far ahead to project.
type Settings struct {
	Book     string `yaml:"book"`
	Tracking struct {
		Months int `yaml:"months"`
	} `yaml:"tracking"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// LoadSettings reads settings from a YAML file, then applies
// environment variable overrides and defaults. A missing file is not
// an error; defaults apply.
func LoadSettings(path string) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("parse settings: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("CASHCAST_BOOK"); v != "" {
		s.Book = v
	}
	if v := os.Getenv("CASHCAST_TRACKING_MONTHS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.Tracking.Months = n
		}
	}
	if v := os.Getenv("CASHCAST_LOG_LEVEL"); v != "" {
		s.Log.Level = v
	}

	// Defaults
	if s.Book == "" {
		s.Book = "book.jsonl"
	}
	if s.Tracking.Months == 0 {
		s.Tracking.Months = 12
	}
	if s.Log.Level == "" {
		s.Log.Level = "warn"
	}

	return s, nil
}

// Validate checks the loaded settings.
func (s *Settings) Validate() error {
	if s.Tracking.Months <= 0 {
		return fmt.Errorf("tracking.months must be positive")
	}
	return nil
}

// Horizon derives the projection horizon from the tracking window:
// the last day of the period starting today and spanning the
// configured number of months.
func (s *Settings) Horizon() date.Date {
	return date.Today().AddMonths(s.Tracking.Months).Add(-1)
}
