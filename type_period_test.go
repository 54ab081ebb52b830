package cashcast

import "testing"

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Period
		wantErr bool
	}{
		{name: "once", in: "once", want: Once},
		{name: "monthly", in: "monthly", want: Monthly},
		{name: "quarterly", in: "quarterly", want: Quarterly},
		{name: "semi-annual", in: "semi-annual", want: SemiAnnual},
		{name: "annual", in: "annual", want: Annual},
		{name: "case insensitive", in: "Monthly", want: Monthly},
		{name: "unknown token", in: "fortnightly", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePeriod(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParsePeriod(%q) expected an error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePeriod(%q) error = %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParsePeriod(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestPeriodMonths(t *testing.T) {
	testCases := []struct {
		name string
		in   Period
		want int
	}{
		{name: "once uses the far-future sentinel", in: Once, want: 999},
		{name: "monthly", in: Monthly, want: 1},
		{name: "quarterly", in: Quarterly, want: 3},
		{name: "semi-annual", in: SemiAnnual, want: 6},
		{name: "annual", in: Annual, want: 12},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.in.Months()
			if err != nil {
				t.Fatalf("Months() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("Months() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPeriodRateFactor(t *testing.T) {
	testCases := []struct {
		name    string
		in      Period
		want    int
		wantErr bool
	}{
		{name: "monthly", in: Monthly, want: 12},
		{name: "quarterly", in: Quarterly, want: 4},
		{name: "semi-annual", in: SemiAnnual, want: 2},
		{name: "annual", in: Annual, want: 1},
		{name: "once has no periodic rate", in: Once, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.in.RateFactor()
			if tc.wantErr {
				if err == nil {
					t.Fatal("RateFactor() expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("RateFactor() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("RateFactor() = %d, want %d", got, tc.want)
			}
		})
	}
}
