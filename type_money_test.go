package cashcast

import "testing"

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		name string
		in   Money
		want string
	}{
		{name: "whole", in: M(1000), want: "$1,000.00"},
		{name: "cents", in: M(1020.10), want: "$1,020.10"},
		{name: "negative", in: M(-42.5), want: "-$42.50"},
		{name: "rounds to cents", in: M(41.9178), want: "$41.92"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := M(0).SignedString(); got != "-" {
		t.Errorf("SignedString() = %q, want %q", got, "-")
	}
	if got := M(10).SignedString(); got != "+$10.00" {
		t.Errorf("SignedString() = %q, want %q", got, "+$10.00")
	}
}

func TestRateMath(t *testing.T) {
	if got := R(12).Periodic(12).Of(M(1000)); !got.Equal(M(10)) {
		t.Errorf("monthly slice of 12%% on 1000 = %s, want %s", got, M(10))
	}
	if got := R(2).Grow(M(100)); !got.Equal(M(102)) {
		t.Errorf("Grow() = %s, want %s", got, M(102))
	}
	got := R(3).OverDays(365).Of(M(5000))
	if !got.Equal(M(150)) {
		t.Errorf("full year at 3%% on 5000 = %s, want %s", got, M(150))
	}
}
