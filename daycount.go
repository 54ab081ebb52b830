package cashcast

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cashcast/cashcast/date"
)

var days360 = decimal.NewFromInt(360)

// DayCount30360 computes the fraction of a year between d1 and d2
// under the 30/360 convention: every month counts 30 days and the year
// 360. The whole-month count is taken first; when d1's day-of-month
// exceeds d2's, one month is traded for its day remainder
// (30 - d1.Day + d2.Day). The result is the share of an annual rate
// due for the period, e.g. 2018-05-01 to 2018-09-28 is 147/360.
func DayCount30360(d1, d2 date.Date) (decimal.Decimal, error) {
	if d2.Before(d1) {
		return decimal.Zero, fmt.Errorf("day count requires %s on or after %s", d2, d1)
	}

	var months int
	if d2.Month() >= d1.Month() {
		months = int(d2.Month()-d1.Month()) + 12*(d2.Year()-d1.Year())
	} else {
		months = (12 - int(d1.Month()) + 1) + (int(d2.Month()) - 1) + 12*(d2.Year()-d1.Year()-1)
	}

	var days int
	if d1.Day() > d2.Day() {
		months--
		days = 30 - d1.Day() + d2.Day()
	} else {
		days = d2.Day() - d1.Day()
	}

	total := int64(30*months + days)
	return decimal.NewFromInt(total).Div(days360), nil
}
