package crowdfolio

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/etnz/crowdfolio/date"
	"golang.org/x/text/cases"
)

// this file contains functions to handle the platform export format, in and out.

// Record is a raw export row: column name to cell value.
type Record map[string]string

// ErrEmptyFile is returned by DecodeCSV when there is not even a header row.
var ErrEmptyFile = errors.New("empty file")

// column identifies one of the fields read from a Record.
type column int

const (
	colDate column = iota
	colTimezone
	colType
	colDetail
	colAmount
	colProject
	colProjectURL
	colProjectType
)

// columnNames are the accepted header names per column, the first one is canonical.
// Matching ignores case and surrounding spaces.
var columnNames = map[column][]string{
	colDate:        {"Datum", "Date", "Datum transakce"},
	colTimezone:    {"Časová zóna", "Timezone", "Time zone"},
	colType:        {"Typ", "Type", "Typ transakce", "Transaction type"},
	colDetail:      {"Detail", "Popis", "Description", "Details"},
	colAmount:      {"Částka", "Amount", "Částka (Kč)"},
	colProject:     {"Projekt", "Název projektu", "Project", "Project name"},
	colProjectURL:  {"URL projektu", "Odkaz", "Project URL", "Project link"},
	colProjectType: {"Typ projektu", "Project type"},
}

// RowError reports why a row was dropped.
type RowError struct {
	Row int // 1-based index in the input
	Err error
}

func (e *RowError) Error() string { return fmt.Sprintf("row %d: %v", e.Row, e.Err) }
func (e *RowError) Unwrap() error { return e.Err }

// maxRowErrors bounds the number of row errors kept for diagnostics.
const maxRowErrors = 20

// ImportResult is the outcome of Normalize.
type ImportResult struct {
	Transactions []Transaction
	Total        int     // input rows
	Invalid      int     // dropped rows
	Errors       []error // the first dropped rows, as *RowError
}

// Valid returns the number of normalized transactions.
func (r ImportResult) Valid() int { return len(r.Transactions) }

// Normalize converts raw export rows into transactions.
//
// A row is kept when its date and amount both parse, other fields default
// to "". Dropped rows are counted in Invalid so that Valid()+Invalid equals
// Total. The type label is classified with tax, or with NewTaxonomy() when
// tax is nil. Normalize has no side effect: the same rows always produce the
// same result.
func Normalize(records []Record, tax *Taxonomy) ImportResult {
	if tax == nil {
		tax = NewTaxonomy()
	}
	res := ImportResult{Total: len(records)}
	fold := cases.Fold()
	for i, rec := range records {
		t, err := normalizeRecord(rec, tax, fold)
		if err != nil {
			res.Invalid++
			if len(res.Errors) < maxRowErrors {
				res.Errors = append(res.Errors, &RowError{Row: i + 1, Err: err})
			}
			continue
		}
		res.Transactions = append(res.Transactions, t)
	}
	return res
}

func normalizeRecord(rec Record, tax *Taxonomy, fold cases.Caser) (Transaction, error) {
	cells := indexRecord(rec, fold)
	get := func(c column) string {
		for _, name := range columnNames[c] {
			if v, ok := cells[fold.String(name)]; ok {
				return v
			}
		}
		return ""
	}

	on, err := date.ParseLoose(get(colDate))
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid date: %w", err)
	}
	amount, err := parseAmount(get(colAmount))
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid amount: %w", err)
	}
	label := strings.TrimSpace(get(colType))
	return Transaction{
		Date:        on,
		Timezone:    strings.TrimSpace(get(colTimezone)),
		Kind:        tax.Classify(label),
		Label:       label,
		Detail:      strings.TrimSpace(get(colDetail)),
		Amount:      amount,
		Project:     strings.TrimSpace(get(colProject)),
		ProjectURL:  strings.TrimSpace(get(colProjectURL)),
		ProjectType: strings.TrimSpace(get(colProjectType)),
	}, nil
}

// indexRecord keys the record by folded, trimmed column names. Exact names
// win over folded duplicates.
func indexRecord(rec Record, fold cases.Caser) map[string]string {
	cells := make(map[string]string, len(rec))
	for k, v := range rec {
		key := fold.String(strings.TrimSpace(strings.TrimPrefix(k, "\ufeff")))
		if _, dup := cells[key]; dup && !isCanonicalName(k) {
			continue
		}
		cells[key] = v
	}
	return cells
}

func isCanonicalName(name string) bool {
	for _, names := range columnNames {
		for _, n := range names {
			if n == name {
				return true
			}
		}
	}
	return false
}

var amountJunk = regexp.MustCompile(`[^0-9,.\-]`)

// parseAmount keeps digits, separators and minus signs, reads a comma as the
// decimal point, and fails on anything that is not then a plain number.
func parseAmount(s string) (Money, error) {
	cleaned := strings.ReplaceAll(amountJunk.ReplaceAllString(s, ""), ",", ".")
	if cleaned == "" {
		return Money{}, fmt.Errorf("no digits in %q", s)
	}
	m, err := parseMoney(cleaned)
	if err != nil {
		return Money{}, fmt.Errorf("not a number %q", s)
	}
	return m, nil
}

// DecodeCSV reads a platform export into records keyed by the header row.
//
// The delimiter (comma or semicolon) is detected on the header line, a UTF-8
// byte order mark is skipped, short rows are padded with empty cells and
// rows made only of empty cells are skipped.
func DecodeCSV(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read csv: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = detectDelimiter(data)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read csv: %w", err)
		}
		if blank(row) {
			continue
		}
		rec := make(Record, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			if i < len(row) {
				rec[name] = row[i]
			} else {
				rec[name] = ""
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// detectDelimiter picks ';' when the first line has more semicolons than commas.
func detectDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.Count(line, []byte(";")) > bytes.Count(line, []byte(",")) {
		return ';'
	}
	return ','
}

// ExportHeader is the header line of exported files, shared with the
// platform's downstream tools.
const ExportHeader = "Datum,Typ,Detail,Částka,Projekt,Typ projektu"

// Export writes txs in the export format: one line per transaction, the date
// in the Czech locale form, the amount as a plain decimal and every textual
// field quoted.
func Export(w io.Writer, txs []Transaction) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(ExportHeader)
	bw.WriteByte('\n')
	for _, t := range txs {
		label := t.Kind.Label()
		if t.Kind == KindOther && t.Label != "" {
			label = t.Label
		}
		fmt.Fprintf(bw, "%s,%s,%s,%s,%s,%s\n",
			date.FormatCzech(t.Date),
			quote(label),
			quote(t.Detail),
			t.Amount.Decimal().String(),
			quote(t.Project),
			quote(t.ProjectType),
		)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("cannot write export: %w", err)
	}
	return nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
