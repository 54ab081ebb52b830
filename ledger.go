package cashcast

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/cashcast/cashcast/date"
)

// Pseudo-accounts acting as the implicit, unconditional outside world
// for transfers. Income is only ever a source, expense only ever a
// destination; neither has a register.
const (
	IncomeAccount  = "income"
	ExpenseAccount = "expense"
)

// Ledger maps account names to their posting registers. It is rebuilt
// from scratch on every projection run; nothing persists across runs.
type Ledger struct {
	registers map[string]Register
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{registers: make(map[string]Register)}
}

// Open creates the register for an account with its opening posting.
func (l *Ledger) Open(account string, opening Money, on date.Date) {
	l.registers[account] = OpenRegister(account, opening, on)
}

// Has reports whether the account has a register.
func (l *Ledger) Has(account string) bool {
	_, ok := l.registers[account]
	return ok
}

// Register returns the register for the account.
func (l *Ledger) Register(account string) (Register, error) {
	reg, ok := l.registers[account]
	if !ok {
		return Register{}, fmt.Errorf("unknown account: %q", account)
	}
	return reg, nil
}

// OpeningDate returns the opening posting date of the account.
func (l *Ledger) OpeningDate(account string) (date.Date, error) {
	reg, err := l.Register(account)
	if err != nil {
		return date.Date{}, err
	}
	return reg.OpeningDate(), nil
}

// Credit posts a positive amount to the account with the given rank.
func (l *Ledger) Credit(account string, amount Money, on date.Date, rank Rank, memo string) error {
	reg, err := l.Register(account)
	if err != nil {
		return err
	}
	l.registers[account] = reg.Insert(on, rank, amount, memo)
	return nil
}

// Debit posts the amount as a withdrawal (negative) on the account.
func (l *Ledger) Debit(account string, amount Money, on date.Date, memo string) error {
	reg, err := l.Register(account)
	if err != nil {
		return err
	}
	l.registers[account] = reg.Insert(on, Withdrawal, amount.Neg(), memo)
	return nil
}

// BalanceOn returns the account balance at the end of the given day.
func (l *Ledger) BalanceOn(account string, on date.Date) (Money, error) {
	reg, err := l.Register(account)
	if err != nil {
		return Money{}, err
	}
	return reg.BalanceOn(on), nil
}

// Accounts iterates account names in sorted order.
func (l *Ledger) Accounts() iter.Seq[string] {
	return func(yield func(string) bool) {
		names := slices.Collect(maps.Keys(l.registers))
		slices.Sort(names)
		for _, name := range names {
			if !yield(name) {
				return
			}
		}
	}
}
