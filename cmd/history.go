package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cashcast/cashcast"
	"github.com/google/subcommands"
)

type historyCmd struct {
	account string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display an account's projected monthly balances" }
func (*historyCmd) Usage() string {
	return `history -a <account>

  Projects all instruments and prints the account's balance sampled
  monthly from its opening date to the tracking horizon.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "account to report on")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		fmt.Fprintln(os.Stderr, "-a is required")
		return subcommands.ExitUsageError
	}

	settings, p, err := loadApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	horizon := settings.Horizon()
	ledger, err := p.Run(horizon)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	reg, err := ledger.Register(c.account)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	monthly := cashcast.Occurrence{
		Start:         reg.OpeningDate(),
		End:           cashcast.NoEnd(),
		Regularity:    cashcast.RegMonthly,
		MonthInterval: 1,
	}
	dates := monthly.Dates(horizon)
	balances := reg.Series(dates)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Date\tBalance\n")
	for i, d := range dates {
		fmt.Fprintf(w, "%s\t%s\n", d, balances[i])
	}
	w.Flush()
	return subcommands.ExitSuccess
}
