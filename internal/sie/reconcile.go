package sie

import (
	"fmt"

	"github.com/cleared-dev/sieread/internal/accounts"
	"github.com/cleared-dev/sieread/internal/anomalies"
	"github.com/cleared-dev/sieread/internal/model"
)

// Reconcile sets every closing balance to the opening balance plus all
// postings to the account, in file order. Postings to unknown accounts are
// skipped and reported. Transactions may reference accounts defined later in
// the file, so this runs once after parsing, never during it.
func Reconcile(chart *accounts.Chart, verifications []model.Verification) []anomalies.Anomaly {
	chart.ResetClosingBalances()

	var found []anomalies.Anomaly
	for _, v := range verifications {
		for _, t := range v.Transactions {
			if chart.Post(t.Account, t.Amount) {
				continue
			}
			found = append(found, anomalies.Anomaly{
				Line:    t.Line,
				Kind:    anomalies.KindUnknownTransAccount,
				Account: t.Account,
				Details: fmt.Sprintf("transaction in %s references unknown account %d", v.ID(), t.Account),
			})
		}
	}
	return found
}
