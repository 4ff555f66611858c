package model

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// Decimal is an arbitrary precision number used for money and percentages.
// The zero value is 0.
type Decimal struct {
	value decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

func NewDecimalFromString(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{
		value: d,
	}, nil
}

func NewDecimalFromInt(i int64) Decimal {
	return Decimal{value: decimal.NewFromInt(i)}
}

func NewDecimalFromFloat(f float64) Decimal {
	return Decimal{value: decimal.NewFromFloat(f)}
}

// MustDecimal is NewDecimalFromString that panics on malformed input. Meant for constants and tests.
func MustDecimal(s string) Decimal {
	d, err := NewDecimalFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Decimal) Add(o Decimal) Decimal {
	return Decimal{value: d.value.Add(o.value)}
}

func (d Decimal) Sub(o Decimal) Decimal {
	return Decimal{value: d.value.Sub(o.value)}
}

func (d Decimal) Mul(o Decimal) Decimal {
	return Decimal{value: d.value.Mul(o.value)}
}

// Percent returns pct percent of d.
func (d Decimal) Percent(pct Decimal) Decimal {
	return Decimal{value: d.value.Mul(pct.value).Div(hundred)}
}

func (d Decimal) IsNegative() bool {
	return d.value.IsNegative()
}

func (d Decimal) IsZero() bool {
	return d.value.IsZero()
}

func (d Decimal) Equal(o Decimal) bool {
	return d.value.Equal(o.value)
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.value.String()), nil
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	return d.value.UnmarshalJSON(b)
}

func (d Decimal) String() string {
	return d.value.String()
}

// Value stores the decimal as NUMERIC text.
func (d Decimal) Value() (driver.Value, error) {
	return d.value.String(), nil
}

func (d *Decimal) Scan(src any) error {
	if src == nil {
		*d = Decimal{}
		return nil
	}
	if err := d.value.Scan(src); err != nil {
		return fmt.Errorf("scan decimal: %w", err)
	}
	return nil
}
