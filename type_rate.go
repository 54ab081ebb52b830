package cashcast

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// daysInYear is the divisor for simple day-count accrual.
var daysInYear = decimal.NewFromInt(365)

// Rate is an annual percentage rate (5.25 means 5.25% per year).
type Rate struct {
	value decimal.Decimal
}

func R[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Rate {
	return Rate{value: newDecimal(value)}
}

func (r Rate) Equal(s Rate) bool { return r.value.Equal(s.value) }
func (r Rate) IsZero() bool      { return r.value.IsZero() }

func (r Rate) String() string { return r.value.String() + "%" }

// Periodic converts the annual rate to the rate for one compounding
// period (quarterly at 8% is 2%).
func (r Rate) Periodic(factor int) Rate {
	return Rate{value: r.value.Div(decimal.NewFromInt(int64(factor)))}
}

// OverDays scales the annual rate down to a period of the given number
// of days, using a 365-day year.
func (r Rate) OverDays(days int) Rate {
	return Rate{value: r.value.Mul(decimal.NewFromInt(int64(days))).Div(daysInYear)}
}

// Times scales the annual rate by an arbitrary ratio, typically a
// 30/360 day-count fraction.
func (r Rate) Times(ratio decimal.Decimal) Rate {
	return Rate{value: r.value.Mul(ratio)}
}

// Of applies the percentage to an amount: R(12).Of(M(1000)) is M(120).
func (r Rate) Of(m Money) Money {
	return Money{value: m.value.Mul(r.value).Div(decimal.NewFromInt(100))}
}

// Grow returns the amount increased by the rate, for inflation
// escalation of recurring amounts.
func (r Rate) Grow(m Money) Money {
	return m.Add(r.Of(m))
}

func (r Rate) MarshalJSON() ([]byte, error) {
	return r.value.MarshalJSON()
}

func (r *Rate) UnmarshalJSON(decimalBytes []byte) error {
	return r.value.UnmarshalJSON(decimalBytes)
}

var _ fmt.Stringer = Rate{}
