package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cashcast/cashcast/date"
	"github.com/google/subcommands"
)

type balanceCmd struct {
	on string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display projected account balances on a date" }
func (*balanceCmd) Usage() string {
	return `balance [-on <date>]

  Projects all instruments and prints each account's balance at the
  end of the given day (today by default).
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.on, "on", "", "balance date (yyyy-mm-dd); defaults to today")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings, p, err := loadApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	on := date.Today()
	if c.on != "" {
		on, err = date.Parse(c.on)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: bad date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	horizon := date.Max(settings.Horizon(), on)
	ledger, err := p.Run(horizon)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for account := range ledger.Accounts() {
		bal, err := ledger.BalanceOn(account, on)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(w, "%s\t%s\n", account, bal)
	}
	w.Flush()
	return subcommands.ExitSuccess
}
