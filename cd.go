package cashcast

import "github.com/cashcast/cashcast/date"

// CD declares a certificate of deposit: a withdrawal of the purchase
// price, periodic interest on the fixed principal, and the principal
// returned at maturity. Interest dates are anchored on the maturity
// date and generated backward to the later of purchase and opening.
type CD struct {
	Account       string    `json:"account" validate:"required"`
	PurchasePrice Money     `json:"purchasePrice"`
	Quantity      Quantity  `json:"quantity"`
	Rate          Rate      `json:"rate"`
	PurchaseDate  date.Date `json:"purchaseDate" validate:"required"`
	MaturityDate  date.Date `json:"maturityDate" validate:"required"`
	Frequency     Period    `json:"frequency"`
	CUSIP         string    `json:"cusip,omitempty"`
}

// Validate checks the CD's date ordering.
func (c CD) Validate() error {
	if !c.PurchaseDate.Before(c.MaturityDate) {
		return &ValidationError{Kind: "cd", Account: c.Account,
			Reason: "maturity date must follow purchase date"}
	}
	return nil
}

// process posts the CD's cash flows on its account. Interest before
// the account opening is ignored: the opening balance already reflects
// it.
func (c CD) process(l *Ledger, horizon date.Date) error {
	if err := c.Validate(); err != nil {
		return err
	}
	opening, err := l.OpeningDate(c.Account)
	if err != nil {
		return err
	}
	if !opening.Before(c.MaturityDate) {
		// matured before tracking starts
		return nil
	}

	earliest := date.Max(c.PurchaseDate, opening)
	dates, err := periodicDates(c.MaturityDate, c.Frequency, earliest)
	if err != nil {
		return err
	}

	principal := c.PurchasePrice.Mul(c.Quantity)
	if !c.PurchaseDate.Before(opening) {
		memo := "CD purchase, CUSIP: " + c.CUSIP
		if err := l.Debit(c.Account, principal, c.PurchaseDate, memo); err != nil {
			return err
		}
	}

	earlier := earliest
	for _, d := range dates {
		days := earlier.DaysUntil(d)
		interest := c.Rate.OverDays(days).Of(principal)
		memo := "CD interest, CUSIP: " + c.CUSIP
		if err := l.Credit(c.Account, interest, d, Interest, memo); err != nil {
			return err
		}
		earlier = d
	}

	memo := "CD sale, CUSIP: " + c.CUSIP
	return l.Credit(c.Account, principal, c.MaturityDate, Sale, memo)
}
