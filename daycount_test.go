package cashcast

import (
	"testing"

	"github.com/cashcast/cashcast/date"
	"github.com/shopspring/decimal"
)

func TestDayCount30360(t *testing.T) {
	testCases := []struct {
		name string
		d1   string
		d2   string
		want decimal.Decimal
	}{
		{
			name: "four months and change",
			d1:   "2018-05-01",
			d2:   "2018-09-28",
			want: decimal.NewFromInt(147).Div(decimal.NewFromInt(360)),
		},
		{
			name: "day of month decreases",
			d1:   "2018-05-28",
			d2:   "2018-09-01",
			want: decimal.NewFromInt(93).Div(decimal.NewFromInt(360)),
		},
		{
			name: "same day",
			d1:   "2018-05-01",
			d2:   "2018-05-01",
			want: decimal.Zero,
		},
		{
			name: "exactly six months",
			d1:   "2018-03-15",
			d2:   "2018-09-15",
			want: decimal.NewFromInt(180).Div(decimal.NewFromInt(360)),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DayCount30360(date.MustParse(tc.d1), date.MustParse(tc.d2))
			if err != nil {
				t.Fatalf("DayCount30360(%s, %s) error = %v", tc.d1, tc.d2, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("DayCount30360(%s, %s) = %s, want %s", tc.d1, tc.d2, got, tc.want)
			}
		})
	}
}

func TestDayCount30360Reversed(t *testing.T) {
	_, err := DayCount30360(date.MustParse("2018-09-28"), date.MustParse("2018-05-01"))
	if err == nil {
		t.Fatal("DayCount30360() expected an error for reversed dates")
	}
}
