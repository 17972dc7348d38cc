package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/sieread/internal/accounts"
	"github.com/cleared-dev/sieread/internal/config"
	"github.com/cleared-dev/sieread/internal/model"
)

func newAccountsCommand(e *env) *cobra.Command {
	var all bool
	var number uint32
	var format string

	cmd := &cobra.Command{
		Use:   "accounts <file|dir>...",
		Short: "List accounts with opening and closing balances",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := e.resolveFormat(format)
			if err != nil {
				return err
			}
			docs, err := e.loadAll(args, false)
			if err != nil {
				return err
			}
			if err := singleForCSV(format, docs); err != nil {
				return err
			}

			showZero := all || e.cfg.Report.ShowZeroBalances
			out := cmd.OutOrStdout()
			for i, d := range docs {
				chart := accounts.NewChart(d.doc.Accounts)
				list := chart.All()
				switch {
				case cmd.Flags().Changed("account"):
					a, ok := chart.Get(number)
					if !ok {
						return fmt.Errorf("%s: account %d not found", d.path, number)
					}
					list = []model.Account{a}
				case !showZero:
					list = chart.WithBalance()
				}

				if format == config.FormatCSV {
					if err := accounts.WriteAccounts(out, list); err != nil {
						return fmt.Errorf("writing accounts: %w", err)
					}
					continue
				}
				if len(docs) > 1 {
					if i > 0 {
						fmt.Fprintln(out)
					}
					fmt.Fprintf(out, "== %s\n", d.path)
				}
				if err := printAccounts(out, list); err != nil {
					return fmt.Errorf("writing accounts: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include accounts with zero balances")
	cmd.Flags().Uint32Var(&number, "account", 0, "a single account, zero balance or not")
	cmd.Flags().StringVar(&format, "format", "", "output format: text or csv (default from config)")

	return cmd
}
