package cashcast

import "github.com/shopspring/decimal"

// Quantity is a count of instruments held (bonds, CD units). Kept as a
// decimal so fractional lots stay exact.
type Quantity struct {
	value decimal.Decimal
}

func Q[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

func (t Quantity) Equal(p Quantity) bool     { return t.value.Equal(p.value) }
func (t Quantity) LessThan(p Quantity) bool  { return t.value.LessThan(p.value) }
func (t Quantity) Mul(p Quantity) Quantity   { return Quantity{value: t.value.Mul(p.value)} }
func (t Quantity) Add(p Quantity) Quantity   { return Quantity{value: t.value.Add(p.value)} }
func (t Quantity) Sub(p Quantity) Quantity   { return Quantity{value: t.value.Sub(p.value)} }
func (t Quantity) IsNegative() bool          { return t.value.IsNegative() }
func (t Quantity) IsPositive() bool          { return t.value.IsPositive() }
func (t Quantity) IsZero() bool              { return t.value.IsZero() }
func (t Quantity) String() string            { return t.value.String() }

func (t Quantity) MarshalJSON() ([]byte, error) {
	return t.value.MarshalJSON()
}

func (t *Quantity) UnmarshalJSON(decimalBytes []byte) error {
	return t.value.UnmarshalJSON(decimalBytes)
}
