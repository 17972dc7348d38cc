package anomalies

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Kind classifies a non-fatal finding made while reading a ledger file.
type Kind string

const (
	// KindUnknownIBAccount is an #IB record for an account with no #KONTO.
	KindUnknownIBAccount Kind = "unknown-ib-account"
	// KindUnknownTransAccount is a #TRANS posting to an account with no #KONTO.
	KindUnknownTransAccount Kind = "unknown-trans-account"
)

// Anomaly is one row in an anomaly report. Anomalies never stop processing.
type Anomaly struct {
	Line    int // 1-based source line, 0 if unknown
	Kind    Kind
	Account uint32
	Details string
}

func (a Anomaly) Error() string {
	return fmt.Sprintf("line %d [%s]: %s", a.Line, a.Kind, a.Details)
}

// Header is the CSV header for an anomaly report.
const Header = "line,kind,account_number,details"

const (
	numFields  = 4
	colLine    = 0
	colKind    = 1
	colAccount = 2
	colDetails = 3
)

// MarshalAnomaly converts an Anomaly to a CSV row.
func MarshalAnomaly(a Anomaly) []string {
	row := make([]string, numFields)
	row[colLine] = strconv.Itoa(a.Line)
	row[colKind] = string(a.Kind)
	row[colAccount] = strconv.FormatUint(uint64(a.Account), 10)
	row[colDetails] = a.Details
	return row
}

// Write writes anomalies as CSV, including the header.
func Write(w io.Writer, list []Anomaly) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, a := range list {
		if err := cw.Write(MarshalAnomaly(a)); err != nil {
			return fmt.Errorf("writing anomaly %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// CountByKind tallies anomalies per kind.
func CountByKind(list []Anomaly) map[Kind]int {
	counts := make(map[Kind]int)
	for _, a := range list {
		counts[a.Kind]++
	}
	return counts
}
