package cashcast

import (
	"fmt"

	"github.com/cashcast/cashcast/date"
)

// Transfer declares a recurring movement of money between two
// accounts. The pseudo-accounts "income" and "expense" act as an
// unconditional source and sink respectively. A non-zero inflation
// rate escalates the amount once per new calendar year among the
// generated dates.
type Transfer struct {
	From      string     `json:"fromAccount" validate:"required"`
	To        string     `json:"toAccount" validate:"required"`
	Amount    Money      `json:"amount"`
	Schedule  Occurrence `json:"schedule"`
	Inflation Rate       `json:"inflation,omitempty"`
	Note      string     `json:"note,omitempty"`
}

// Validate enforces the endpoint rules: income can only be a source,
// expense only a destination, and any other endpoint must be an open
// account.
func (t Transfer) Validate(l *Ledger) error {
	if t.To == IncomeAccount {
		return &ValidationError{Kind: "transfer", Reason: "destination can't be 'income'"}
	}
	if t.To != ExpenseAccount && !l.Has(t.To) {
		return &ValidationError{Kind: "transfer", Reason: fmt.Sprintf("unknown destination: %q", t.To)}
	}
	if t.From == ExpenseAccount {
		return &ValidationError{Kind: "transfer", Reason: "source can't be 'expense'"}
	}
	if t.From != IncomeAccount && !l.Has(t.From) {
		return &ValidationError{Kind: "transfer", Reason: fmt.Sprintf("unknown source: %q", t.From)}
	}
	return t.Schedule.Validate()
}

// process posts a withdrawal on the source and a deposit on the
// destination for every occurrence date, each side gated by its own
// account's opening date.
func (t Transfer) process(l *Ledger, horizon date.Date) error {
	if err := t.Validate(l); err != nil {
		return err
	}

	dates := t.Schedule.Dates(horizon)
	if len(dates) == 0 {
		return nil
	}
	amounts := t.inflatedAmounts(dates)

	// The overall gate: transfers from income start with the
	// destination, transfers into expense with the source, account
	// to account with the earlier of the two openings.
	var gate date.Date
	switch {
	case t.From == IncomeAccount:
		gate, _ = l.OpeningDate(t.To)
	case t.To == ExpenseAccount:
		gate, _ = l.OpeningDate(t.From)
	default:
		fromOpen, _ := l.OpeningDate(t.From)
		toOpen, _ := l.OpeningDate(t.To)
		gate = date.Min(fromOpen, toOpen)
	}

	for i, d := range dates {
		if d.Before(gate) {
			continue
		}
		amount := amounts[i]
		if t.From != IncomeAccount {
			if open, _ := l.OpeningDate(t.From); !d.Before(open) {
				memo := fmt.Sprintf("Transfer to %s: %s", t.To, t.Note)
				if err := l.Debit(t.From, amount, d, memo); err != nil {
					return err
				}
			}
		}
		if t.To != ExpenseAccount {
			if open, _ := l.OpeningDate(t.To); !d.Before(open) {
				memo := fmt.Sprintf("Transfer from %s: %s", t.From, t.Note)
				if err := l.Credit(t.To, amount, d, Deposit, memo); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// inflatedAmounts returns the transfer amount for each date, grown by
// the inflation rate at every calendar-year boundary in the sequence.
func (t Transfer) inflatedAmounts(dates []date.Date) []Money {
	amounts := make([]Money, 0, len(dates))
	amount := t.Amount
	year := dates[0].Year()
	for _, d := range dates {
		if d.Year() != year {
			if !t.Inflation.IsZero() {
				amount = t.Inflation.Grow(amount)
			}
			year = d.Year()
		}
		amounts = append(amounts, amount)
	}
	return amounts
}
