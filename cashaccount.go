package cashcast

import "github.com/cashcast/cashcast/date"

// CashAccount declares a cash account: its opening balance and date,
// and the terms of its periodic interest. Interest runs after every
// other processor so it compounds on the fully projected balance.
type CashAccount struct {
	Account      string    `json:"account" validate:"required"`
	Balance      Money     `json:"balance"`
	Rate         Rate      `json:"rate"`
	OpeningDate  date.Date `json:"openingDate" validate:"required"`
	InterestDate date.Date `json:"interestDate" validate:"required"`
	Frequency    Period    `json:"frequency"`
	Note         string    `json:"note,omitempty"`
}

// Validate checks the account terms.
func (c CashAccount) Validate() error {
	if c.Account == "" {
		return &ValidationError{Kind: "cash account", Reason: "account name is missing"}
	}
	if !c.Rate.IsZero() {
		if _, err := c.Frequency.RateFactor(); err != nil {
			return &ValidationError{Kind: "cash account", Account: c.Account,
				Reason: "interest-bearing account needs a periodic frequency"}
		}
	}
	return nil
}

// applyInterest credits periodic interest on the account through the
// horizon. Interest dates fall on the declared interest day; any date
// before the opening is pushed forward in whole periods. A negative
// computed amount still posts, floored to zero, so the schedule stays
// visible in the register.
func (c CashAccount) applyInterest(l *Ledger, horizon date.Date) error {
	if c.Rate.IsZero() {
		return nil
	}
	months, err := c.Frequency.Months()
	if err != nil {
		return err
	}
	factor, err := c.Frequency.RateFactor()
	if err != nil {
		return err
	}
	periodic := c.Rate.Periodic(factor)

	start := c.InterestDate
	for c.OpeningDate.After(start) {
		start = start.AddMonths(months)
	}

	dates, err := periodicDates(start, c.Frequency, horizon)
	if err != nil {
		return err
	}
	for _, d := range dates {
		bal, err := l.BalanceOn(c.Account, d)
		if err != nil {
			return err
		}
		interest := periodic.Of(bal)
		if !interest.IsPositive() {
			// never negative interest
			interest = M(0)
		}
		if err := l.Credit(c.Account, interest, d, Interest, "Interest"); err != nil {
			return err
		}
	}
	return nil
}
