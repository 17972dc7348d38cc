package commands

import (
	"errors"
	"fmt"

	"github.com/cleared-dev/sieread/internal/config"
	"github.com/cleared-dev/sieread/internal/importer"
	"github.com/cleared-dev/sieread/internal/sie"
)

// loaded is one parsed input file.
type loaded struct {
	path string
	doc  *sie.Document
}

var errNoFiles = errors.New("no ledger files found")

// loadAll expands directory arguments and parses every file. A read failure
// aborts the whole command. Anomalies are logged unless quiet is set.
func (e *env) loadAll(args []string, quiet bool) ([]loaded, error) {
	paths, err := importer.Expand(args)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, errNoFiles
	}

	docs := make([]loaded, 0, len(paths))
	for _, p := range paths {
		doc, err := importer.Load(p)
		if err != nil {
			return nil, err
		}
		e.log.Debug().
			Str("file", p).
			Int("accounts", len(doc.Accounts)).
			Int("verifications", len(doc.Verifications)).
			Msg("parsed")
		if !quiet {
			for _, a := range doc.Anomalies {
				logAnomaly(e.log, p, a)
			}
		}
		docs = append(docs, loaded{path: p, doc: doc})
	}
	return docs, nil
}

// singleForCSV rejects CSV output for more than one file, since the rows
// would not say which file they came from.
func singleForCSV(format string, docs []loaded) error {
	if format == config.FormatCSV && len(docs) > 1 {
		return fmt.Errorf("csv output takes exactly one file, got %d", len(docs))
	}
	return nil
}

// resolveFormat picks the --format flag if given, else the configured format.
func (e *env) resolveFormat(flag string) (string, error) {
	format := flag
	if format == "" {
		format = e.cfg.Report.Format
	}
	switch format {
	case config.FormatText, config.FormatCSV:
		return format, nil
	default:
		return "", fmt.Errorf("unknown format %q (want %s or %s)", format, config.FormatText, config.FormatCSV)
	}
}
