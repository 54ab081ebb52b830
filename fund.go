package cashcast

import "github.com/cashcast/cashcast/date"

// Fund declares a fund or brokerage position carried at a fixed value.
// The balance is established once and never grows: market appreciation
// is out of scope for a deterministic projection, so the position
// simply holds its declared value from its value date on.
type Fund struct {
	Account   string    `json:"account" validate:"required"`
	Value     Money     `json:"value"`
	ValueDate date.Date `json:"valueDate" validate:"required"`
	Symbol    string    `json:"symbol,omitempty"`
	Note      string    `json:"note,omitempty"`
}

func (f Fund) Validate() error {
	if f.Account == "" {
		return &ValidationError{Kind: "fund", Reason: "account is required"}
	}
	return nil
}

// process credits the declared value on the fund's account.
func (f Fund) process(l *Ledger, horizon date.Date) error {
	opening, err := l.OpeningDate(f.Account)
	if err != nil {
		return err
	}
	on := date.Max(f.ValueDate, opening)
	memo := "Fund value: " + f.Note
	if f.Note == "" {
		memo = "Fund value: " + f.Symbol
	}
	return l.Credit(f.Account, f.Value, on, Deposit, memo)
}
