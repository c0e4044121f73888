// README: Common money value object used across modules.
package types

import "fmt"

// Money is an amount in minor units (paise for INR).
type Money struct {
	Amount   int64
	Currency string
}

// Rupees builds an INR Money value from whole rupees.
func Rupees(amount int64) Money {
	return Money{Amount: amount * 100, Currency: "INR"}
}

func (m Money) IsPositive() bool {
	return m.Amount > 0
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d %s", m.Amount/100, m.Amount%100, m.Currency)
}
