package cashcast

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cashcast/cashcast/date"
)

func TestBookRoundTrip(t *testing.T) {
	p := NewProjection()
	p.CashAccounts = []CashAccount{{
		Account: "checking", Balance: M(1500.25), Rate: R(4.5),
		OpeningDate:  date.MustParse("2026-01-01"),
		InterestDate: date.MustParse("2026-01-31"),
		Frequency:    Monthly, Note: "primary",
	}}
	p.Transfers = []Transfer{{
		From: "income", To: "checking", Amount: M(2000),
		Schedule: Occurrence{Start: date.MustParse("2026-01-15"), End: NoEnd(),
			Regularity: RegMonthly, MonthInterval: 1},
		Note: "salary",
	}}
	p.CDs = []CD{{
		Account: "checking", PurchasePrice: M(1000), Quantity: Q(3),
		Rate:         R(2.1),
		PurchaseDate: date.MustParse("2026-02-01"),
		MaturityDate: date.MustParse("2027-02-01"),
		Frequency:    Quarterly, CUSIP: "ABC123",
	}}
	p.Bonds = []Bond{{
		Account: "checking", Price: M(101.5), Quantity: Q(2),
		Coupon: R(5), Fee: M(8),
		PurchaseDate: date.MustParse("2026-03-01"),
		MaturityDate: date.MustParse("2028-09-01"),
		Frequency:    SemiAnnual, CUSIP: "XYZ789",
	}}
	p.Funds = []Fund{{
		Account: "checking", Value: M(10000),
		ValueDate: date.MustParse("2026-01-01"), Symbol: "VTSAX",
	}}

	var buf bytes.Buffer
	if err := EncodeBook(&buf, p); err != nil {
		t.Fatalf("EncodeBook() error = %v", err)
	}

	// every line leads with its discriminator
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if !strings.HasPrefix(line, `{"instrument":`) {
			t.Errorf("line does not lead with the instrument field: %s", line)
		}
	}

	got, err := DecodeBook(&buf)
	if err != nil {
		t.Fatalf("DecodeBook() error = %v", err)
	}

	if len(got.CashAccounts) != 1 || len(got.Transfers) != 1 ||
		len(got.CDs) != 1 || len(got.Bonds) != 1 || len(got.Funds) != 1 {
		t.Fatalf("DecodeBook() record counts = %d/%d/%d/%d/%d",
			len(got.CashAccounts), len(got.Transfers), len(got.CDs),
			len(got.Bonds), len(got.Funds))
	}
	if !got.CashAccounts[0].Balance.Equal(M(1500.25)) {
		t.Errorf("cash balance = %s, want %s", got.CashAccounts[0].Balance, M(1500.25))
	}
	if got.Transfers[0].Schedule.String() != p.Transfers[0].Schedule.String() {
		t.Errorf("schedule = %q, want %q",
			got.Transfers[0].Schedule.String(), p.Transfers[0].Schedule.String())
	}
	if got.CDs[0].MaturityDate != date.MustParse("2027-02-01") {
		t.Errorf("cd maturity = %s", got.CDs[0].MaturityDate)
	}
}

func TestDecodeBookErrors(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{
			name: "unknown instrument",
			in:   `{"instrument":"reverse-mortgage","account":"a"}`,
		},
		{
			name: "not json",
			in:   `account: checking`,
		},
		{
			name: "missing required field",
			in:   `{"instrument":"fund","value":100,"valueDate":"2026-01-01"}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeBook(strings.NewReader(tc.in)); err == nil {
				t.Errorf("DecodeBook(%q) expected an error", tc.in)
			}
		})
	}
}

func TestDecodeBookSkipsEmptyLines(t *testing.T) {
	in := `{"instrument":"fund","account":"ira","value":100,"valueDate":"2026-01-01"}

{"instrument":"fund","account":"ira","value":200,"valueDate":"2026-02-01"}
`
	p, err := DecodeBook(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeBook() error = %v", err)
	}
	if len(p.Funds) != 2 {
		t.Errorf("DecodeBook() funds = %d, want 2", len(p.Funds))
	}
}
