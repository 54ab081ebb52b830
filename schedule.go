package cashcast

import (
	"slices"

	"github.com/cashcast/cashcast/date"
)

// periodicDates returns dates at fixed period multiples between start
// and end, boundaries included. When start precedes end the sequence
// runs forward from start; otherwise it is generated backward from
// start down to end and returned ascending — coupon and CD interest
// schedules are anchored on maturity, not purchase, so the backward
// direction is the one that matters for them.
func periodicDates(start date.Date, p Period, end date.Date) ([]date.Date, error) {
	months, err := p.Months()
	if err != nil {
		return nil, err
	}

	var dates []date.Date
	if !start.After(end) {
		for i := 0; ; i++ {
			next := start.AddMonths(i * months)
			if next.After(end) {
				break
			}
			dates = append(dates, next)
		}
	} else {
		for i := 0; ; i++ {
			prev := start.SubMonths(i * months)
			if prev.Before(end) {
				break
			}
			dates = append(dates, prev)
		}
		slices.Reverse(dates)
	}
	return dates, nil
}
