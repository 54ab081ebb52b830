package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cashcast/cashcast"
	"github.com/cashcast/cashcast/date"
	"github.com/google/subcommands"
)

type datesCmd struct {
	occurrence string
	horizon    string
	sample     int
}

func (*datesCmd) Name() string     { return "dates" }
func (*datesCmd) Synopsis() string { return "expand a recurrence into its concrete dates" }
func (*datesCmd) Usage() string {
	return `dates -o "<start;end;regularity[;param]>" [-horizon <date>] [-n <count>]

  Expands a recurrence (e.g. "2026-01-15;None;monthly;1") into the
  dates it covers up to the horizon. With -n only the first n dates
  are shown, in short month-day form.
`
}

func (c *datesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.occurrence, "o", "", "recurrence to expand")
	f.StringVar(&c.horizon, "horizon", "", "horizon (yyyy-mm-dd); defaults to the tracking window")
	f.IntVar(&c.sample, "n", 0, "show only the first n dates, short form")
}

func (c *datesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.occurrence == "" {
		fmt.Fprintln(os.Stderr, "-o is required")
		return subcommands.ExitUsageError
	}

	occ, err := cashcast.ParseOccurrence(c.occurrence)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	settings, err := cashcast.LoadSettings(*settingsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	horizon := settings.Horizon()
	if c.horizon != "" {
		horizon, err = date.Parse(c.horizon)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: bad horizon: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	if c.sample > 0 {
		fmt.Println(strings.Join(occ.SampleDates(horizon, c.sample), " "))
		return subcommands.ExitSuccess
	}
	for _, d := range occ.Dates(horizon) {
		fmt.Println(d)
	}
	return subcommands.ExitSuccess
}
