package cashcast

import "github.com/cashcast/cashcast/date"

// Bond declares a coupon bond position. Prices are quoted per 100 of
// face value (a price of 100 for quantity 1 costs 1000); par is 1000
// per unit. A zero call price means the bond is not called and the
// call date is ignored; a non-zero call price redeems the bond on the
// call date at call_price x 10 x quantity with a prorated final
// coupon.
type Bond struct {
	Account      string    `json:"account" validate:"required"`
	Price        Money     `json:"price"`
	Quantity     Quantity  `json:"quantity"`
	Coupon       Rate      `json:"coupon"`
	Fee          Money     `json:"fee"`
	PurchaseDate date.Date `json:"purchaseDate" validate:"required"`
	MaturityDate date.Date `json:"maturityDate" validate:"required"`
	Frequency    Period    `json:"frequency"`
	CUSIP        string    `json:"cusip,omitempty"`
	CallDate     date.Date `json:"callDate,omitempty"`
	CallPrice    Money     `json:"callPrice,omitempty"`
}

// Validate checks the bond's date ordering and call terms.
func (b Bond) Validate() error {
	if !b.PurchaseDate.Before(b.MaturityDate) {
		return &ValidationError{Kind: "bond", Account: b.Account,
			Reason: "maturity date must follow purchase date"}
	}
	if !b.CallPrice.IsZero() && b.CallDate.IsZero() {
		return &ValidationError{Kind: "bond", Account: b.Account,
			Reason: "called bond needs a call date"}
	}
	return nil
}

// bondEvent is one dated cash flow of a bond position.
type bondEvent struct {
	date   date.Date
	amount Money // signed: negative is a debit
	rank   Rank
	memo   string
}

// ten scales a per-100 quote to a per-unit cost.
var ten = Q(10)

// cashFlow expands the bond into its dated cash flows: the purchase
// (cost + accrued interest + fee as one withdrawal), every coupon up
// to the redemption date, and the redemption itself.
func (b Bond) cashFlow() ([]bondEvent, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	// The bond redeems on the call date when called, on maturity
	// otherwise; callDate stands for the redemption date in all cases.
	called := !b.CallPrice.IsZero()
	callDate := b.MaturityDate
	if called {
		callDate = b.CallDate
	}

	months, err := b.Frequency.Months()
	if err != nil {
		return nil, err
	}
	factor, err := b.Frequency.RateFactor()
	if err != nil {
		return nil, err
	}

	// Coupon dates are anchored on maturity, generated backward.
	coupons, err := periodicDates(b.MaturityDate, b.Frequency, b.PurchaseDate)
	if err != nil {
		return nil, err
	}

	par := M(1000).Mul(b.Quantity)
	cost := b.Price.Mul(ten).Mul(b.Quantity)

	// Accrued interest bought with the bond: from the coupon date
	// preceding the first coupon to the purchase date.
	prev := coupons[0].SubMonths(months)
	ratio, err := DayCount30360(prev, b.PurchaseDate)
	if err != nil {
		return nil, err
	}
	accrued := b.Coupon.Times(ratio).Of(par)

	var events []bondEvent
	events = append(events, bondEvent{
		date:   b.PurchaseDate,
		amount: cost.Add(accrued).Add(b.Fee).Neg(),
		rank:   Withdrawal,
		memo:   "Bond purchase, CUSIP: " + b.CUSIP,
	})

	coupon := b.Coupon.Periodic(factor).Of(par)
	var lastPaid date.Date
	for _, d := range coupons {
		if d.After(callDate) {
			// no coupons after the redemption date
			continue
		}
		events = append(events, bondEvent{date: d, amount: coupon, rank: Interest,
			memo: "Bond interest, CUSIP: " + b.CUSIP})
		lastPaid = d
	}

	if called {
		// A called bond pays a partial coupon through the call date.
		// When no coupon was paid since purchase the proration runs
		// from the purchase date, not the preceding coupon — a known
		// simplification kept as-is.
		from := lastPaid
		if from.IsZero() {
			from = b.PurchaseDate
		}
		ratio, err := DayCount30360(from, callDate)
		if err != nil {
			return nil, err
		}
		partial := b.Coupon.Times(ratio).Of(par)
		events = append(events, bondEvent{date: callDate, amount: partial, rank: Interest,
			memo: "Bond interest (call), CUSIP: " + b.CUSIP})

		redemption := b.CallPrice.Mul(ten).Mul(b.Quantity)
		events = append(events, bondEvent{date: callDate, amount: redemption, rank: Sale,
			memo: "Bond call, CUSIP: " + b.CUSIP})
	} else {
		events = append(events, bondEvent{date: b.MaturityDate, amount: par, rank: Sale,
			memo: "Bond sale, CUSIP: " + b.CUSIP})
	}
	return events, nil
}

// process posts the bond's cash flows on its account, skipping any
// flow dated before the account opening.
func (b Bond) process(l *Ledger, horizon date.Date) error {
	events, err := b.cashFlow()
	if err != nil {
		return err
	}
	opening, err := l.OpeningDate(b.Account)
	if err != nil {
		return err
	}
	for _, e := range events {
		if e.date.Before(opening) {
			continue
		}
		if e.amount.IsNegative() {
			if err := l.Debit(b.Account, e.amount.Neg(), e.date, e.memo); err != nil {
				return err
			}
			continue
		}
		if err := l.Credit(b.Account, e.amount, e.date, e.rank, e.memo); err != nil {
			return err
		}
	}
	return nil
}
