package sie

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/sieread/internal/accounts"
	"github.com/cleared-dev/sieread/internal/anomalies"
	"github.com/cleared-dev/sieread/internal/model"
)

// Record keywords. Matching is a case-sensitive prefix match on the line.
const (
	keywordVer   = "#VER"
	keywordIB    = "#IB"
	keywordKonto = "#KONTO"
	keywordTrans = "#TRANS"
)

// Document is the structured content of one ledger file.
type Document struct {
	Accounts      []model.Account
	Verifications []model.Verification
	Anomalies     []anomalies.Anomaly
}

// Parser reads record lines in order and accumulates accounts and
// verifications. At most one verification is open at a time; it is
// finalized by the next #VER or by Finish.
type Parser struct {
	chart         *accounts.Chart
	verifications []model.Verification
	anomalies     []anomalies.Anomaly
	open          *model.Verification
	line          int
	doc           *Document
}

// NewParser returns a Parser with no open verification.
func NewParser() *Parser {
	return &Parser{chart: accounts.NewChart(nil)}
}

// Parse decodes a ledger file, parses every line and reconciles balances.
func Parse(data []byte) *Document {
	return ParseText(Decode(data))
}

// ParseText parses already decoded text.
func ParseText(text string) *Document {
	p := NewParser()
	for _, line := range strings.Split(text, "\n") {
		p.Feed(line)
	}
	return p.Finish()
}

// Feed processes one line. Unrecognized records are ignored, as is every line
// fed after Finish.
func (p *Parser) Feed(line string) {
	if p.doc != nil {
		return
	}
	p.line++
	line = strings.TrimSuffix(line, "\r")
	line = strings.TrimLeft(line, " \t")

	switch {
	case strings.HasPrefix(line, keywordVer):
		p.parseVer(Tokenize(line))
	case strings.HasPrefix(line, keywordIB):
		p.parseIB(Tokenize(line))
	case strings.HasPrefix(line, keywordKonto):
		p.parseKonto(Tokenize(line))
	case strings.HasPrefix(line, keywordTrans):
		p.parseTrans(line)
	}
}

// Finish flushes the open verification, reconciles closing balances and
// returns the document. Later calls return the same document.
func (p *Parser) Finish() *Document {
	if p.doc != nil {
		return p.doc
	}
	p.flush()
	p.anomalies = append(p.anomalies, Reconcile(p.chart, p.verifications)...)

	p.doc = &Document{
		Accounts:      p.chart.All(),
		Verifications: p.verifications,
		Anomalies:     p.anomalies,
	}
	return p.doc
}

// flush moves the open verification, if any, to the output.
func (p *Parser) flush() {
	if p.open == nil {
		return
	}
	p.verifications = append(p.verifications, *p.open)
	p.open = nil
}

func (p *Parser) parseVer(fields []string) {
	p.flush()
	p.open = &model.Verification{
		Serie:        CleanString(field(fields, 1)),
		Number:       parseNumber(field(fields, 2)),
		Date:         CleanString(field(fields, 3)),
		Text:         CleanString(field(fields, 4)),
		Transactions: []model.Transaction{},
		Line:         p.line,
	}
}

func (p *Parser) parseIB(fields []string) {
	// Only the current year (offset 0) is tracked; -1 is the previous year.
	year, err := strconv.Atoi(field(fields, 1))
	if err != nil {
		year = 0
	}
	if year != 0 {
		return
	}

	number := parseNumber(field(fields, 2))
	if !p.chart.SetOpeningBalance(number, parseAmount(field(fields, 3))) {
		p.anomalies = append(p.anomalies, anomalies.Anomaly{
			Line:    p.line,
			Kind:    anomalies.KindUnknownIBAccount,
			Account: number,
			Details: fmt.Sprintf("opening balance for unknown account %d", number),
		})
	}
}

func (p *Parser) parseKonto(fields []string) {
	p.chart.Add(model.Account{
		Number: parseNumber(field(fields, 1)),
		Name:   CleanString(field(fields, 2)),
	})
}

func (p *Parser) parseTrans(line string) {
	if p.open == nil {
		return
	}
	fields := Tokenize(line)
	p.open.Transactions = append(p.open.Transactions, model.Transaction{
		Account: parseNumber(field(fields, 1)),
		Amount:  parseAmount(fields[len(fields)-1]),
		Line:    p.line,
	})
}

// parseNumber parses an account or verification number, 0 if malformed.
func parseNumber(s string) uint32 {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(n)
}

// parseAmount parses a signed decimal amount, 0 if malformed.
func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
