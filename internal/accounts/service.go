package accounts

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/sieread/internal/model"
)

// Chart holds the accounts of one ledger file in file order, with a
// number index for lookups. Duplicate numbers are kept; lookups resolve to
// the first account with a given number.
type Chart struct {
	accounts []model.Account
	byNumber map[uint32]int
}

// NewChart creates a Chart from a slice of accounts.
func NewChart(accounts []model.Account) *Chart {
	c := &Chart{byNumber: make(map[uint32]int, len(accounts))}
	for _, a := range accounts {
		c.Add(a)
	}
	return c
}

// Add appends an account.
func (c *Chart) Add(a model.Account) {
	if _, ok := c.byNumber[a.Number]; !ok {
		c.byNumber[a.Number] = len(c.accounts)
	}
	c.accounts = append(c.accounts, a)
}

// All returns all accounts in file order.
func (c *Chart) All() []model.Account {
	return c.accounts
}

// Len returns the number of accounts, duplicates included.
func (c *Chart) Len() int {
	return len(c.accounts)
}

// Get returns an account by number.
func (c *Chart) Get(number uint32) (model.Account, bool) {
	i, ok := c.byNumber[number]
	if !ok {
		return model.Account{}, false
	}
	return c.accounts[i], true
}

// Exists reports whether an account number exists.
func (c *Chart) Exists(number uint32) bool {
	_, ok := c.byNumber[number]
	return ok
}

// SetOpeningBalance sets the opening balance of an account.
// It reports false if the account does not exist.
func (c *Chart) SetOpeningBalance(number uint32, amount decimal.Decimal) bool {
	i, ok := c.byNumber[number]
	if !ok {
		return false
	}
	c.accounts[i].OpeningBalance = amount
	return true
}

// ResetClosingBalances sets every closing balance to its opening balance.
func (c *Chart) ResetClosingBalances() {
	for i := range c.accounts {
		c.accounts[i].ClosingBalance = c.accounts[i].OpeningBalance
	}
}

// Post adds amount to an account's closing balance.
// It reports false if the account does not exist.
func (c *Chart) Post(number uint32, amount decimal.Decimal) bool {
	i, ok := c.byNumber[number]
	if !ok {
		return false
	}
	c.accounts[i].ClosingBalance = c.accounts[i].ClosingBalance.Add(amount)
	return true
}

// WithBalance returns the accounts with a non-zero opening or closing balance.
func (c *Chart) WithBalance() []model.Account {
	var result []model.Account
	for _, a := range c.accounts {
		if a.HasBalance() {
			result = append(result, a)
		}
	}
	return result
}
