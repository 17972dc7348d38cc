package model

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/sieread/internal/id"
)

// Verification is one #VER journal entry and the #TRANS postings that follow it.
type Verification struct {
	Serie        string
	Number       uint32
	Date         string // as written in the file, e.g. "20240101"
	Text         string
	Transactions []Transaction
	Line         int // source line of the #VER record
}

// Transaction is a single #TRANS posting inside a Verification.
type Transaction struct {
	Account uint32
	Amount  decimal.Decimal
	Line    int
}

// ID returns the verification id, e.g. "A-12".
func (v Verification) ID() string {
	return id.FormatVerificationID(v.Serie, v.Number)
}

// Total returns the sum of all posted amounts. A balanced entry totals zero.
func (v Verification) Total() decimal.Decimal {
	total := decimal.Zero
	for _, t := range v.Transactions {
		total = total.Add(t.Amount)
	}
	return total
}

// Touches reports whether any transaction posts to account.
func (v Verification) Touches(account uint32) bool {
	for _, t := range v.Transactions {
		if t.Account == account {
			return true
		}
	}
	return false
}
