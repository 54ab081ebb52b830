package cashcast

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/cashcast/cashcast/date"
)

// Regularity is a typed token identifying a recurrence rule kind.
type Regularity string

const (
	RegOnce         Regularity = "once"
	RegWeekly       Regularity = "weekly"
	RegBiWeekly     Regularity = "bi-weekly"
	RegTwiceAMonth  Regularity = "twice-a-month"
	RegMonthly      Regularity = "monthly"
	RegQuarterly    Regularity = "quarterly"
	RegSemiAnnually Regularity = "semi-annually"
	RegAnnually     Regularity = "annually"
)

// known reports whether the token is one of the eight regularities.
func (r Regularity) known() bool {
	switch r {
	case RegOnce, RegWeekly, RegBiWeekly, RegTwiceAMonth,
		RegMonthly, RegQuarterly, RegSemiAnnually, RegAnnually:
		return true
	}
	return false
}

type endKind int

const (
	endNone endKind = iota // bounded by the tracking horizon only
	endOn
	endCount
)

// EndCondition says how a recurrence terminates: never (horizon-bounded),
// on an explicit date, or after a fixed number of occurrences.
type EndCondition struct {
	kind  endKind
	date  date.Date
	count int
}

// NoEnd returns the horizon-bounded end condition.
func NoEnd() EndCondition { return EndCondition{kind: endNone} }

// EndOn returns an end condition that stops after the given date.
func EndOn(d date.Date) EndCondition { return EndCondition{kind: endOn, date: d} }

// Count returns an end condition that stops after n occurrences.
func Count(n int) EndCondition { return EndCondition{kind: endCount, count: n} }

// Count returns the occurrence limit, when there is one.
func (e EndCondition) Count() (int, bool) { return e.count, e.kind == endCount }

// On returns the explicit end date, when there is one.
func (e EndCondition) On() (date.Date, bool) { return e.date, e.kind == endOn }

func (e EndCondition) String() string {
	switch e.kind {
	case endOn:
		return e.date.String()
	case endCount:
		return strconv.Itoa(e.count)
	default:
		return "None"
	}
}

// Occurrence describes a recurring date pattern: a start date, an end
// condition and a regularity with its parameters. It is a value object;
// its persisted form is the compact string "start;end;regularity[;param]".
type Occurrence struct {
	Start      date.Date
	End        EndCondition
	Regularity Regularity

	// Regularity parameters. Only weekly, monthly and twice-a-month
	// carry one; the others ignore them.
	WeekInterval  int // weeks between dates (weekly)
	MonthInterval int // months between dates (monthly)
	SecondDay     int // second day-of-month (twice-a-month)
}

// ParseOccurrence parses the compact serialized form
// "2018-03-01;None;monthly;1". The end field is either "None", an
// explicit date, or an occurrence count.
func ParseOccurrence(s string) (Occurrence, error) {
	fields := strings.Split(s, ";")
	if len(fields) < 3 {
		return Occurrence{}, &ParseError{Input: s, Reason: "want at least start;end;regularity"}
	}

	o := Occurrence{WeekInterval: 1, MonthInterval: 1, SecondDay: 1}

	start, err := date.Parse(fields[0])
	if err != nil {
		return Occurrence{}, &ParseError{Input: s, Reason: "bad start date: " + err.Error()}
	}
	o.Start = start

	switch ed := fields[1]; {
	case ed == "None":
		o.End = NoEnd()
	case strings.Contains(ed, "-"):
		d, err := date.Parse(ed)
		if err != nil {
			return Occurrence{}, &ParseError{Input: s, Reason: "bad end date: " + err.Error()}
		}
		o.End = EndOn(d)
	default:
		n, err := strconv.Atoi(ed)
		if err != nil {
			return Occurrence{}, &ParseError{Input: s, Reason: "bad occurrence count: " + err.Error()}
		}
		o.End = Count(n)
	}

	o.Regularity = Regularity(fields[2])
	if !o.Regularity.known() {
		return Occurrence{}, &ParseError{Input: s, Reason: "unknown regularity " + fields[2]}
	}

	// Regularity-dependent trailing parameter.
	if len(fields) > 3 && fields[3] != "" {
		n, err := strconv.Atoi(fields[3])
		if err != nil {
			return Occurrence{}, &ParseError{Input: s, Reason: "bad regularity parameter: " + err.Error()}
		}
		switch o.Regularity {
		case RegWeekly:
			o.WeekInterval = n
		case RegMonthly:
			o.MonthInterval = n
		case RegTwiceAMonth:
			o.SecondDay = n
		}
	}
	return o, nil
}

// String serializes the occurrence back to its compact form.
func (o Occurrence) String() string {
	var b strings.Builder
	b.WriteString(o.Start.String())
	b.WriteString(";")
	b.WriteString(o.End.String())
	b.WriteString(";")
	b.WriteString(string(o.Regularity))
	switch o.Regularity {
	case RegWeekly:
		b.WriteString(";" + strconv.Itoa(o.WeekInterval))
	case RegMonthly:
		b.WriteString(";" + strconv.Itoa(o.MonthInterval))
	case RegTwiceAMonth:
		b.WriteString(";" + strconv.Itoa(o.SecondDay))
	}
	return b.String()
}

// Validate checks the occurrence was built with a known regularity.
func (o Occurrence) Validate() error {
	if !o.Regularity.known() {
		return &ParseError{Input: string(o.Regularity), Reason: "unknown regularity"}
	}
	return nil
}

// Dates expands the occurrence into the concrete, ordered list of dates
// it covers, bounded by the tracking horizon. The list is computed
// eagerly; an occurrence whose start is past the horizon yields nothing.
func (o Occurrence) Dates(horizon date.Date) []date.Date {
	var dates []date.Date
	switch o.Regularity {
	case RegOnce:
		if !o.Start.After(horizon) {
			dates = append(dates, o.Start)
		}
	case RegWeekly:
		dates = o.byWeeks(o.Start, o.WeekInterval, horizon, dates)
	case RegBiWeekly:
		dates = o.byWeeks(o.Start, 2, horizon, dates)
	case RegTwiceAMonth:
		dates = o.byMonths(o.Start, 1, horizon, dates)
		second := date.New(o.Start.Year(), o.Start.Month(), o.SecondDay)
		if second.Before(o.Start) {
			second = second.AddMonths(1)
		}
		dates = o.byMonths(second, 1, horizon, dates)
		// interleave the two monthly sequences
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	case RegMonthly:
		dates = o.byMonths(o.Start, o.MonthInterval, horizon, dates)
	case RegQuarterly:
		dates = o.byMonths(o.Start, 3, horizon, dates)
	case RegSemiAnnually:
		dates = o.byMonths(o.Start, 6, horizon, dates)
	case RegAnnually:
		dates = o.byMonths(o.Start, 12, horizon, dates)
	}
	return dates
}

// byMonths emits dates at fixed month multiples from start. Every date
// is derived from start, not from the previous date, so a short-month
// clamp never sticks (Jan 31, Feb 28, Mar 31, ...).
func (o Occurrence) byMonths(start date.Date, interval int, horizon date.Date, dates []date.Date) []date.Date {
	if n, ok := o.End.Count(); ok {
		for i := 0; i < n; i++ {
			d := start.AddMonths(interval * i)
			if d.After(horizon) {
				break
			}
			dates = append(dates, d)
		}
		return dates
	}
	last := horizon
	if end, ok := o.End.On(); ok {
		last = date.Min(last, end)
	}
	for i := 0; ; i++ {
		d := start.AddMonths(interval * i)
		if d.After(last) {
			break
		}
		dates = append(dates, d)
	}
	return dates
}

// byWeeks emits dates at fixed multiples of 7*interval days from start.
func (o Occurrence) byWeeks(start date.Date, interval int, horizon date.Date, dates []date.Date) []date.Date {
	if n, ok := o.End.Count(); ok {
		for i := 0; i < n; i++ {
			d := start.Add(7 * interval * i)
			if d.After(horizon) {
				break
			}
			dates = append(dates, d)
		}
		return dates
	}
	last := horizon
	if end, ok := o.End.On(); ok {
		last = date.Min(last, end)
	}
	for i := 0; ; i++ {
		d := start.Add(7 * interval * i)
		if d.After(last) {
			break
		}
		dates = append(dates, d)
	}
	return dates
}

// SampleDates renders the first n occurrence dates in short month-day
// form for schedule previews, padding with "-" when fewer exist.
func (o Occurrence) SampleDates(horizon date.Date, n int) []string {
	dates := o.Dates(horizon)
	s := make([]string, n)
	for i := range s {
		if i < len(dates) {
			s[i] = dates[i].Short()
		} else {
			s[i] = "-"
		}
	}
	return s
}

// Latest returns the first occurrence on or after today, or the last
// occurrence when all are in the past. Display helper only; the
// projection path never calls it.
func (o Occurrence) Latest(horizon date.Date) date.Date {
	today := date.Today()
	best := o.Start
	for _, d := range o.Dates(horizon) {
		best = d
		if !d.Before(today) {
			break
		}
	}
	return best
}

// MarshalJSON persists the occurrence in its compact serialized form.
func (o Occurrence) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *Occurrence) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseOccurrence(s)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
