package cashcast

import (
	"iter"

	"github.com/cashcast/cashcast/date"
)

// Register is the ordered sequence of postings for one account. It is
// never empty: the first posting is always the Opening posting, whose
// amount is zero and whose balance is the declared opening balance.
//
// Insert returns a new register rather than mutating in place, so a
// caller holding an older snapshot never sees it change. The rebuild
// replays every amount from the opening balance, which keeps the
// running-balance invariant trivially true at the cost of O(n) per
// insertion. Registers hold tens to low hundreds of postings, so the
// simplicity wins.
type Register struct {
	account  string
	postings []Posting
}

// OpenRegister creates a register for the account with its opening
// posting on the given date.
func OpenRegister(account string, opening Money, on date.Date) Register {
	return Register{
		account: account,
		postings: []Posting{{
			Date:    on,
			Rank:    Opening,
			Amount:  M(0),
			Balance: opening,
			Memo:    account + " opening balance",
		}},
	}
}

// Account returns the account this register belongs to.
func (r Register) Account() string { return r.account }

// Len returns the number of postings, opening posting included.
func (r Register) Len() int { return len(r.postings) }

// OpeningDate returns the date of the opening posting.
func (r Register) OpeningDate() date.Date { return r.postings[0].Date }

// Last returns the final posting.
func (r Register) Last() Posting { return r.postings[len(r.postings)-1] }

// Postings iterates postings in register order.
func (r Register) Postings() iter.Seq2[int, Posting] {
	return func(yield func(int, Posting) bool) {
		for i, p := range r.postings {
			if !yield(i, p) {
				return
			}
		}
	}
}

// Insert returns a new register containing a posting for the given
// amount at its sorted position. Among postings with an equal
// (date, rank) key the new posting is placed first. Every balance is
// recomputed by replaying amounts from the opening balance.
func (r Register) Insert(on date.Date, rank Rank, amount Money, memo string) Register {
	entry := Posting{Date: on, Rank: rank, Amount: amount, Memo: memo}

	// replay starts from the declared opening balance.
	bal := r.postings[0].Balance.Sub(r.postings[0].Amount)
	out := make([]Posting, 0, len(r.postings)+1)

	push := func(p Posting) {
		bal = bal.Add(p.Amount)
		p.Balance = bal
		out = append(out, p)
	}

	inserted := false
	for _, p := range r.postings {
		if !inserted && !entry.keyAfter(p.Date, p.Rank) {
			// p sorts on or after the new entry: the entry goes first.
			inserted = true
			push(entry)
		}
		push(p)
	}
	if !inserted {
		push(entry)
	}
	return Register{account: r.account, postings: out}
}

// BalanceOn returns the running balance at the end of the given day:
// the balance of the last posting whose key is at most
// (on, QueryCutoff).
func (r Register) BalanceOn(on date.Date) Money {
	latest := r.postings[0].Balance
	for _, p := range r.postings {
		if p.keyAfter(on, QueryCutoff) {
			break
		}
		latest = p.Balance
	}
	return latest
}

// Series samples the register balance at each given date, for history
// rendering.
func (r Register) Series(dates []date.Date) []Money {
	balances := make([]Money, 0, len(dates))
	for _, d := range dates {
		balances = append(balances, r.BalanceOn(d))
	}
	return balances
}
