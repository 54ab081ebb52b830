package cashcast

import "github.com/cashcast/cashcast/date"

// Loan declares money lent out of an account: a withdrawal of the
// principal at origination and a single repayment of principal plus
// accrued interest at payoff. Interest accrues as simple day-count
// (days/365) and compounds at each periodic date.
type Loan struct {
	Account    string    `json:"account" validate:"required"`
	Principal  Money     `json:"principal"`
	Rate       Rate      `json:"rate"`
	OrigDate   date.Date `json:"origDate" validate:"required"`
	PayoffDate date.Date `json:"payoffDate" validate:"required"`
	Frequency  Period    `json:"frequency"`
	Note       string    `json:"note,omitempty"`
}

// Validate checks the loan's date ordering.
func (n Loan) Validate() error {
	if !n.OrigDate.Before(n.PayoffDate) {
		return &ValidationError{Kind: "loan", Account: n.Account,
			Reason: "payoff date must follow origination date"}
	}
	return nil
}

// process posts the loan's cash flows on its account. A loan paid off
// before the account opened leaves no trace; accrual periods ending
// before the opening are skipped since the opening balance already
// accounts for them.
func (n Loan) process(l *Ledger, horizon date.Date) error {
	if err := n.Validate(); err != nil {
		return err
	}
	opening, err := l.OpeningDate(n.Account)
	if err != nil {
		return err
	}
	if !opening.Before(n.PayoffDate) {
		// already repaid before tracking starts
		return nil
	}

	if !n.OrigDate.Before(opening) {
		memo := "Loan origination: " + n.Note
		if err := l.Debit(n.Account, n.Principal, n.OrigDate, memo); err != nil {
			return err
		}
	}

	dates, err := periodicDates(n.OrigDate, n.Frequency, n.PayoffDate)
	if err != nil {
		return err
	}
	dates = append(dates, n.PayoffDate) // payoff is never on the periodic schedule

	bal := n.Principal
	earlier := n.OrigDate
	for _, d := range dates {
		if d.Before(opening) {
			continue
		}
		days := earlier.DaysUntil(d)
		bal = bal.Add(n.Rate.OverDays(days).Of(bal))
		earlier = d
	}

	memo := "Loan repayment: " + n.Note
	return l.Credit(n.Account, bal, n.PayoffDate, Sale, memo)
}
