package commands

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/cleared-dev/sieread/internal/model"
)

const amountWidth = 14

// printAccounts writes an aligned account table. Names are padded by display
// width so that å, ä and ö do not shift the columns.
func printAccounts(w io.Writer, accts []model.Account) error {
	nameWidth := runewidth.StringWidth("Name")
	for _, a := range accts {
		nameWidth = max(nameWidth, runewidth.StringWidth(a.Name))
	}

	if _, err := fmt.Fprintf(w, "%-8s %s %*s %*s %*s\n",
		"Account", runewidth.FillRight("Name", nameWidth),
		amountWidth, "Opening", amountWidth, "Change", amountWidth, "Closing"); err != nil {
		return err
	}
	for _, a := range accts {
		if _, err := fmt.Fprintf(w, "%-8d %s %*s %*s %*s\n",
			a.Number, runewidth.FillRight(a.Name, nameWidth),
			amountWidth, a.OpeningBalance.StringFixed(2),
			amountWidth, a.Change().StringFixed(2),
			amountWidth, a.ClosingBalance.StringFixed(2)); err != nil {
			return err
		}
	}
	return nil
}

// printVerifications writes each verification followed by its postings.
func printVerifications(w io.Writer, vers []model.Verification) error {
	for _, v := range vers {
		if _, err := fmt.Fprintf(w, "%-8s %-10s %s\n", v.ID(), v.Date, v.Text); err != nil {
			return err
		}
		for _, t := range v.Transactions {
			if _, err := fmt.Fprintf(w, "    %-8d %*s\n", t.Account, amountWidth, t.Amount.StringFixed(2)); err != nil {
				return err
			}
		}
	}
	return nil
}
