package cashcast

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cashcast/cashcast/date"
)

// Projection holds everything declared in a book: the cash accounts
// and the instruments posting against them. Run is the whole engine;
// the records themselves are plain data.
type Projection struct {
	CashAccounts []CashAccount `json:"cashAccounts"`
	Transfers    []Transfer    `json:"transfers"`
	Loans        []Loan        `json:"loans"`
	CDs          []CD          `json:"cds"`
	Bonds        []Bond        `json:"bonds"`
	Funds        []Fund        `json:"funds"`

	log zerolog.Logger
}

// NewProjection returns an empty projection with a no-op logger.
func NewProjection() *Projection {
	return &Projection{log: zerolog.Nop()}
}

// SetLogger installs a diagnostics logger for Run.
func (p *Projection) SetLogger(log zerolog.Logger) { p.log = log }

// Run projects all instruments onto a fresh ledger through the
// horizon. Processors run in a fixed order, interest last so it
// compounds on the fully posted balances. The run is all-or-nothing:
// any error aborts and no ledger is returned. Running twice with the
// same records yields identical registers.
func (p *Projection) Run(horizon date.Date) (*Ledger, error) {
	l := NewLedger()

	for _, c := range p.CashAccounts {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("opening %q: %w", c.Account, err)
		}
		if l.Has(c.Account) {
			return nil, fmt.Errorf("opening %q: duplicate account", c.Account)
		}
		l.Open(c.Account, c.Balance, c.OpeningDate)
	}
	p.log.Info().Int("accounts", len(p.CashAccounts)).Msg("accounts opened")

	for _, t := range p.Transfers {
		if err := t.Validate(l); err != nil {
			return nil, fmt.Errorf("transfer %s -> %s: %w", t.From, t.To, err)
		}
		if err := t.process(l, horizon); err != nil {
			return nil, fmt.Errorf("transfer %s -> %s: %w", t.From, t.To, err)
		}
	}
	p.log.Info().Int("transfers", len(p.Transfers)).Msg("transfers posted")

	for _, ln := range p.Loans {
		if err := ln.process(l, horizon); err != nil {
			return nil, fmt.Errorf("loan on %q: %w", ln.Account, err)
		}
	}
	p.log.Info().Int("loans", len(p.Loans)).Msg("loans posted")

	for _, c := range p.CDs {
		if err := c.process(l, horizon); err != nil {
			return nil, fmt.Errorf("cd on %q: %w", c.Account, err)
		}
	}
	p.log.Info().Int("cds", len(p.CDs)).Msg("cds posted")

	for _, b := range p.Bonds {
		if err := b.process(l, horizon); err != nil {
			return nil, fmt.Errorf("bond on %q: %w", b.Account, err)
		}
	}
	p.log.Info().Int("bonds", len(p.Bonds)).Msg("bonds posted")

	for _, f := range p.Funds {
		if err := f.process(l, horizon); err != nil {
			return nil, fmt.Errorf("fund on %q: %w", f.Account, err)
		}
	}
	p.log.Info().Int("funds", len(p.Funds)).Msg("funds posted")

	for _, c := range p.CashAccounts {
		if err := c.applyInterest(l, horizon); err != nil {
			return nil, fmt.Errorf("interest on %q: %w", c.Account, err)
		}
	}
	p.log.Info().Msg("interest applied")

	return l, nil
}
