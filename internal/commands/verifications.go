package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/sieread/internal/accounts"
	"github.com/cleared-dev/sieread/internal/config"
	"github.com/cleared-dev/sieread/internal/journal"
	"github.com/cleared-dev/sieread/internal/model"
)

type verificationFilter struct {
	serie      string
	account    uint32
	hasAccount bool
	id         string
}

func (f verificationFilter) apply(svc *journal.Service) ([]model.Verification, error) {
	if f.id != "" {
		v, err := svc.Find(f.id)
		if err != nil {
			return nil, err
		}
		return []model.Verification{v}, nil
	}

	vers := svc.All()
	if f.serie != "" {
		vers = journal.NewService(vers).BySerie(f.serie)
	}
	if f.hasAccount {
		vers = journal.NewService(vers).ByAccount(f.account)
	}
	return vers, nil
}

func newVerificationsCommand(e *env) *cobra.Command {
	var filter verificationFilter
	var format string

	cmd := &cobra.Command{
		Use:     "verifications <file|dir>...",
		Aliases: []string{"ver"},
		Short:   "List verifications and their transactions",
		Args:    cobra.MinimumNArgs(1),
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

			filter.hasAccount = cmd.Flags().Changed("account")

			out := cmd.OutOrStdout()
			for i, d := range docs {
				if filter.hasAccount && !accounts.NewChart(d.doc.Accounts).Exists(filter.account) {
					e.log.Warn().Str("file", d.path).Uint32("account", filter.account).Msg("account not in chart")
				}
				vers, err := filter.apply(journal.NewService(d.doc.Verifications))
				if err != nil {
					return fmt.Errorf("%s: %w", d.path, err)
				}

				if format == config.FormatCSV {
					if err := journal.WriteVerifications(out, vers); err != nil {
						return fmt.Errorf("writing verifications: %w", err)
					}
					continue
				}
				if len(docs) > 1 {
					if i > 0 {
						fmt.Fprintln(out)
					}
					fmt.Fprintf(out, "== %s\n", d.path)
				}
				if err := printVerifications(out, vers); err != nil {
					return fmt.Errorf("writing verifications: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.serie, "serie", "", "only verifications in this serie")
	cmd.Flags().Uint32Var(&filter.account, "account", 0, "only verifications posting to this account")
	cmd.Flags().StringVar(&filter.id, "id", "", "a single verification, e.g. A-12")
	cmd.Flags().StringVar(&format, "format", "", "output format: text or csv (default from config)")

	return cmd
}
