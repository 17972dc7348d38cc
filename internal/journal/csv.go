package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cleared-dev/sieread/internal/model"
)

// Header is the CSV header for a verification export. Each transaction is
// one row; verifications without transactions are not written.
const Header = "verification_id,serie,number,date,text,account_number,amount"

const (
	numFields  = 7
	colID      = 0
	colSerie   = 1
	colNumber  = 2
	colDate    = 3
	colText    = 4
	colAccount = 5
	colAmount  = 6
)

// WriteVerifications writes verifications as CSV (including header).
func WriteVerifications(w io.Writer, verifications []model.Verification) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	row := 2
	for _, v := range verifications {
		for _, t := range v.Transactions {
			if err := cw.Write(MarshalTransaction(v, t)); err != nil {
				return fmt.Errorf("writing row %d: %w", row, err)
			}
			row++
		}
	}

	cw.Flush()
	return cw.Error()
}

// MarshalTransaction converts one posting and its verification to a CSV row.
func MarshalTransaction(v model.Verification, t model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = v.ID()
	row[colSerie] = v.Serie
	row[colNumber] = strconv.FormatUint(uint64(v.Number), 10)
	row[colDate] = v.Date
	row[colText] = v.Text
	row[colAccount] = strconv.FormatUint(uint64(t.Account), 10)
	row[colAmount] = t.Amount.StringFixed(2)
	return row
}
