package cashcast

import (
	"testing"

	"github.com/cashcast/cashcast/date"
)

func TestRegisterInsertKeepsOrder(t *testing.T) {
	reg := OpenRegister("checking", M(1000), date.MustParse("2026-01-01"))

	// inserted out of chronological order on purpose
	reg = reg.Insert(date.MustParse("2026-03-01"), Withdrawal, M(-200), "rent")
	reg = reg.Insert(date.MustParse("2026-02-01"), Deposit, M(500), "salary")
	reg = reg.Insert(date.MustParse("2026-02-01"), Interest, M(10), "interest")

	wantDates := []string{"2026-01-01", "2026-02-01", "2026-02-01", "2026-03-01"}
	wantRanks := []Rank{Opening, Deposit, Interest, Withdrawal}
	wantBalances := []Money{M(1000), M(1500), M(1510), M(1310)}

	if reg.Len() != len(wantDates) {
		t.Fatalf("Len() = %d, want %d", reg.Len(), len(wantDates))
	}
	for i, p := range reg.Postings() {
		if p.Date.String() != wantDates[i] {
			t.Errorf("posting %d date = %s, want %s", i, p.Date, wantDates[i])
		}
		if p.Rank != wantRanks[i] {
			t.Errorf("posting %d rank = %s, want %s", i, p.Rank, wantRanks[i])
		}
		if !p.Balance.Equal(wantBalances[i]) {
			t.Errorf("posting %d balance = %s, want %s", i, p.Balance, wantBalances[i])
		}
	}
}

func TestRegisterSameDayRankOrder(t *testing.T) {
	on := date.MustParse("2026-06-15")
	reg := OpenRegister("checking", M(0), date.MustParse("2026-01-01"))

	// same day, inserted in reverse rank order
	reg = reg.Insert(on, Withdrawal, M(-30), "w")
	reg = reg.Insert(on, Sale, M(20), "s")
	reg = reg.Insert(on, Interest, M(5), "i")
	reg = reg.Insert(on, Deposit, M(100), "d")

	wantRanks := []Rank{Opening, Deposit, Interest, Sale, Withdrawal}
	for i, p := range reg.Postings() {
		if p.Rank != wantRanks[i] {
			t.Errorf("posting %d rank = %s, want %s", i, p.Rank, wantRanks[i])
		}
	}
	if got := reg.Last().Balance; !got.Equal(M(95)) {
		t.Errorf("final balance = %s, want %s", got, M(95))
	}
}

func TestRegisterBalanceOn(t *testing.T) {
	reg := OpenRegister("savings", M(1000), date.MustParse("2026-01-01"))
	reg = reg.Insert(date.MustParse("2026-02-01"), Deposit, M(500), "d")
	reg = reg.Insert(date.MustParse("2026-03-01"), Withdrawal, M(-300), "w")

	testCases := []struct {
		name string
		on   string
		want Money
	}{
		{name: "before opening", on: "2025-12-31", want: M(1000)},
		{name: "on opening day", on: "2026-01-01", want: M(1000)},
		{name: "between postings", on: "2026-02-15", want: M(1500)},
		{name: "on posting day includes it", on: "2026-03-01", want: M(1200)},
		{name: "after everything", on: "2026-12-31", want: M(1200)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := reg.BalanceOn(date.MustParse(tc.on))
			if !got.Equal(tc.want) {
				t.Errorf("BalanceOn(%s) = %s, want %s", tc.on, got, tc.want)
			}
		})
	}
}

func TestLedgerEndpoints(t *testing.T) {
	l := NewLedger()
	l.Open("checking", M(100), date.MustParse("2026-01-01"))

	if err := l.Credit("nope", M(1), date.MustParse("2026-01-02"), Deposit, "x"); err == nil {
		t.Error("Credit() on unknown account expected an error")
	}
	if err := l.Debit("checking", M(40), date.MustParse("2026-01-02"), "x"); err != nil {
		t.Fatalf("Debit() error = %v", err)
	}
	bal, err := l.BalanceOn("checking", date.MustParse("2026-01-02"))
	if err != nil {
		t.Fatalf("BalanceOn() error = %v", err)
	}
	if !bal.Equal(M(60)) {
		t.Errorf("BalanceOn() = %s, want %s", bal, M(60))
	}
}

func TestLedgerAccountsSorted(t *testing.T) {
	l := NewLedger()
	on := date.MustParse("2026-01-01")
	l.Open("savings", M(0), on)
	l.Open("checking", M(0), on)
	l.Open("brokerage", M(0), on)

	var got []string
	for name := range l.Accounts() {
		got = append(got, name)
	}
	want := []string{"brokerage", "checking", "savings"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Accounts()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
