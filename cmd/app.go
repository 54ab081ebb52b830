// Package cmd implements the CLI application to project future
// account balances from a book of instrument records.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/cashcast/cashcast"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package calls Register(), then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&projectCmd{}, "projection")
	c.Register(&balanceCmd{}, "projection")
	c.Register(&historyCmd{}, "projection")
	c.Register(&datesCmd{}, "schedules")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var settingsFile = flag.String("settings", "cashcast.yaml", "Path to the settings file")
var bookFile = flag.String("book", "", "Path to the book file (JSONL); overrides settings")

// loadApp loads the settings and the book, and wires the diagnostics
// logger from the configured level.
func loadApp() (*cashcast.Settings, *cashcast.Projection, error) {
	settings, err := cashcast.LoadSettings(*settingsFile)
	if err != nil {
		return nil, nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, nil, err
	}
	if *bookFile != "" {
		settings.Book = *bookFile
	}

	f, err := os.Open(settings.Book)
	if err != nil {
		return nil, nil, fmt.Errorf("opening book %q: %w", settings.Book, err)
	}
	defer f.Close()

	p, err := cashcast.DecodeBook(f)
	if err != nil {
		return nil, nil, err
	}

	level, err := zerolog.ParseLevel(settings.Log.Level)
	if err != nil {
		level = zerolog.WarnLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	p.SetLogger(log)

	return settings, p, nil
}
