package model

import "github.com/shopspring/decimal"

// Account represents a #KONTO row in the chart of accounts.
type Account struct {
	Number         uint32
	Name           string
	OpeningBalance decimal.Decimal // #IB for year offset 0
	ClosingBalance decimal.Decimal // set by reconciliation
}

// HasBalance reports whether either balance is non-zero.
func (a Account) HasBalance() bool {
	return !a.OpeningBalance.IsZero() || !a.ClosingBalance.IsZero()
}

// Change returns the movement over the year (closing - opening).
func (a Account) Change() decimal.Decimal {
	return a.ClosingBalance.Sub(a.OpeningBalance)
}
