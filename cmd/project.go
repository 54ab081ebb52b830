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

type projectCmd struct {
	account string
	horizon string
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project balances and print account registers" }
func (*projectCmd) Usage() string {
	return `project [-a <account>] [-horizon <date>]

  Projects all instruments onto their accounts and prints each
  register: one line per posting with date, memo, amount and running
  balance.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "only print this account's register")
	f.StringVar(&c.horizon, "horizon", "", "projection horizon (yyyy-mm-dd); defaults to the tracking window")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings, p, err := loadApp()
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

	ledger, err := p.Run(horizon)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for account := range ledger.Accounts() {
		if c.account != "" && account != c.account {
			continue
		}
		reg, err := ledger.Register(account)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(w, "# %s\n", account)
		for _, posting := range reg.Postings() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				posting.Date, posting.Memo,
				posting.Amount.SignedString(), posting.Balance)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	return subcommands.ExitSuccess
}
