package commands

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/sieread/internal/accounts"
	"github.com/cleared-dev/sieread/internal/anomalies"
	"github.com/cleared-dev/sieread/internal/config"
	"github.com/cleared-dev/sieread/internal/journal"
)

var errAnomaliesFound = errors.New("anomalies found")

func newCheckCommand(e *env) *cobra.Command {
	var asCSV bool
	var strict bool

	cmd := &cobra.Command{
		Use:   "check <file|dir>...",
		Short: "Report records that reference unknown accounts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := e.loadAll(args, true)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asCSV {
				if err := singleForCSV(config.FormatCSV, docs); err != nil {
					return err
				}
				if err := anomalies.Write(out, docs[0].doc.Anomalies); err != nil {
					return fmt.Errorf("writing anomalies: %w", err)
				}
			}

			total := 0
			for _, d := range docs {
				total += len(d.doc.Anomalies)
				if asCSV {
					continue
				}
				chart := accounts.NewChart(d.doc.Accounts)
				svc := journal.NewService(d.doc.Verifications)
				fmt.Fprintf(out, "%s: %d accounts, %d verifications, %d anomalies\n",
					d.path, chart.Len(), len(svc.All()), len(d.doc.Anomalies))
				if series := svc.Series(); len(series) > 0 {
					fmt.Fprintf(out, "  series: %s\n", strings.Join(series, ", "))
				}
				counts := anomalies.CountByKind(d.doc.Anomalies)
				kinds := make([]anomalies.Kind, 0, len(counts))
				for kind := range counts {
					kinds = append(kinds, kind)
				}
				slices.Sort(kinds)
				for _, kind := range kinds {
					fmt.Fprintf(out, "  %s: %d\n", kind, counts[kind])
				}
				for _, a := range d.doc.Anomalies {
					fmt.Fprintf(out, "  %s\n", a.Error())
				}
			}

			if strict && total > 0 {
				return fmt.Errorf("%w: %d", errAnomaliesFound, total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asCSV, "csv", false, "write anomalies as CSV")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error if any anomaly is found")

	return cmd
}
