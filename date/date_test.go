package date

import (
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestAddMonths(t *testing.T) {
	testCases := []struct {
		name string
		in   Date
		n    int
		want Date
	}{
		{
			name: "Short month clamps",
			in:   New(2018, time.January, 31),
			n:    1,
			want: New(2018, time.February, 28),
		},
		{
			name: "Leap year clamps to 29",
			in:   New(2020, time.January, 31),
			n:    1,
			want: New(2020, time.February, 29),
		},
		{
			name: "Year rollover",
			in:   New(2018, time.November, 30),
			n:    3,
			want: New(2019, time.February, 28),
		},
		{
			name: "Plain month",
			in:   New(2018, time.March, 15),
			n:    1,
			want: New(2018, time.April, 15),
		},
		{
			name: "Twelve months",
			in:   New(2018, time.January, 20),
			n:    12,
			want: New(2019, time.January, 20),
		},
		{
			name: "Negative steps back",
			in:   New(2018, time.March, 31),
			n:    -1,
			want: New(2018, time.February, 28),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.AddMonths(tc.n); got != tc.want {
				t.Errorf("AddMonths(%d) = %v, want %v", tc.n, got, tc.want)
			}
		})
	}
}

func TestSubMonths(t *testing.T) {
	testCases := []struct {
		name string
		in   Date
		n    int
		want Date
	}{
		{
			name: "Short month clamps",
			in:   New(2018, time.March, 31),
			n:    1,
			want: New(2018, time.February, 28),
		},
		{
			name: "Year rollunder",
			in:   New(2018, time.January, 20),
			n:    2,
			want: New(2017, time.November, 20),
		},
		{
			name: "Six months back",
			in:   New(2018, time.May, 15),
			n:    6,
			want: New(2017, time.November, 15),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.SubMonths(tc.n); got != tc.want {
				t.Errorf("SubMonths(%d) = %v, want %v", tc.n, got, tc.want)
			}
		})
	}
}

func TestDaysUntil(t *testing.T) {
	from := New(2018, time.February, 16)
	to := New(2018, time.August, 15)
	if got := from.DaysUntil(to); got != 180 {
		t.Errorf("DaysUntil() = %d, want 180", got)
	}
	if got := to.DaysUntil(from); got != -180 {
		t.Errorf("reverse DaysUntil() = %d, want -180", got)
	}
}

func TestParseRoundTrip(t *testing.T) {
	d, err := Parse("2018-2-7")
	if err != nil {
		t.Fatalf("Parse() returned unexpected error: %v", err)
	}
	if d.String() != "2018-02-07" {
		t.Errorf("String() = %q, want %q", d.String(), "2018-02-07")
	}

	if _, err := Parse("garbage"); err == nil {
		t.Error("Parse() accepted garbage input")
	}
}
