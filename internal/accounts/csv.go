package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cleared-dev/sieread/internal/model"
)

// Header is the CSV header for an account balance export.
const Header = "account_number,account_name,opening_balance,closing_balance"

const (
	numFields  = 4
	colNumber  = 0
	colName    = 1
	colOpening = 2
	colClosing = 3
)

// WriteAccounts writes accounts with their balances as CSV.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colNumber] = strconv.FormatUint(uint64(acct.Number), 10)
	row[colName] = acct.Name
	row[colOpening] = acct.OpeningBalance.StringFixed(2)
	row[colClosing] = acct.ClosingBalance.StringFixed(2)
	return row
}
