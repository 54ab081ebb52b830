package cashcast

import "strings"

// Period is a compounding or payment frequency declared on an
// instrument record.
type Period int

const (
	Once Period = iota
	Monthly
	Quarterly
	SemiAnnual
	Annual
)

// onceMonths is the sentinel month count for Once: large enough that a
// second periodic date always falls past any realistic horizon.
const onceMonths = 999

func (p Period) String() string {
	switch p {
	case Once:
		return "once"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case SemiAnnual:
		return "semi-annual"
	case Annual:
		return "annual"
	default:
		return "unknown"
	}
}

// ParsePeriod parses the persisted period token.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(s) {
	case "once":
		return Once, nil
	case "monthly":
		return Monthly, nil
	case "quarterly":
		return Quarterly, nil
	case "semi-annual":
		return SemiAnnual, nil
	case "annual":
		return Annual, nil
	default:
		return Once, &ParseError{Input: s, Reason: "unknown period"}
	}
}

// Months returns the number of months in one period. Once returns a
// sentinel that pushes the second occurrence past any horizon.
func (p Period) Months() (int, error) {
	switch p {
	case Once:
		return onceMonths, nil
	case Monthly:
		return 1, nil
	case Quarterly:
		return 3, nil
	case SemiAnnual:
		return 6, nil
	case Annual:
		return 12, nil
	default:
		return 0, &ParseError{Input: p.String(), Reason: "unsupported compounding frequency"}
	}
}

// RateFactor returns the divisor that converts an annual rate to the
// rate for one period. Once has no periodic rate.
func (p Period) RateFactor() (int, error) {
	switch p {
	case Monthly:
		return 12, nil
	case Quarterly:
		return 4, nil
	case SemiAnnual:
		return 2, nil
	case Annual:
		return 1, nil
	default:
		return 0, &ParseError{Input: p.String(), Reason: "unsupported compounding frequency"}
	}
}

func (p Period) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

func (p *Period) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	q, err := ParsePeriod(s)
	if err != nil {
		return err
	}
	*p = q
	return nil
}
