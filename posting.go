package cashcast

import "github.com/cashcast/cashcast/date"

// Rank orders postings that land on the same day. Deposits settle
// before interest, interest before sales, sales before withdrawals;
// QueryCutoff sorts after everything so a balance query on a date sees
// the whole day.
type Rank int

const (
	Opening Rank = iota
	Deposit
	Interest
	Sale
	Withdrawal
	QueryCutoff
)

func (r Rank) String() string {
	switch r {
	case Opening:
		return "opening"
	case Deposit:
		return "deposit"
	case Interest:
		return "interest"
	case Sale:
		return "sale"
	case Withdrawal:
		return "withdrawal"
	case QueryCutoff:
		return "cutoff"
	default:
		return "unknown"
	}
}

// Posting is a single dated, signed entry in a register. Amount is
// positive for credits and negative for debits; Balance is the running
// balance after this posting. Postings are created only by register
// insertion and never change afterwards.
type Posting struct {
	Date    date.Date `json:"date"`
	Rank    Rank      `json:"-"`
	Amount  Money     `json:"amount"`
	Balance Money     `json:"balance"`
	Memo    string    `json:"memo,omitempty"`
}

// keyAfter reports whether the posting's (date, rank) key sorts
// strictly after the given key.
func (p Posting) keyAfter(d date.Date, r Rank) bool {
	if p.Date.After(d) {
		return true
	}
	return p.Date == d && p.Rank > r
}
