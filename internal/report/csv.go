package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"investadmin/internal/models"
)

// ValuePlaces is the fixed number of decimal places used for the Value column.
const ValuePlaces = 2

// Header is the first record of every report.
var Header = []string{"User", "First Name", "Last Name", "Date", "Holding", "Value"}

const lineSeparator = "\n"

// EncodeCSV writes the header and one record per row to w. Every field is
// wrapped in double quotes and embedded quotes are doubled. Records are
// separated by "\n" with no trailing separator.
func EncodeCSV(w io.Writer, rows []models.ReportRow) error {
	if err := writeRecord(w, Header, false); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRecord(w, record(row), true); err != nil {
			return err
		}
	}
	return nil
}

// Render returns the encoded CSV for rows.
func Render(rows []models.ReportRow) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeCSV(&buf, rows); err != nil {
		return nil, fmt.Errorf("encoding report: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeCSV parses a report produced by EncodeCSV back into rows.
func DecodeCSV(r io.Reader) ([]models.ReportRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("reading report: missing header")
	}
	for i, name := range Header {
		if records[0][i] != name {
			return nil, fmt.Errorf("reading report: unexpected header column %d %q", i, records[0][i])
		}
	}

	rows := make([]models.ReportRow, 0, len(records)-1)
	for n, rec := range records[1:] {
		value, err := decimal.NewFromString(rec[5])
		if err != nil {
			return nil, fmt.Errorf("reading report: line %d: invalid value %q: %w", n+2, rec[5], err)
		}
		rows = append(rows, models.ReportRow{
			User:      rec[0],
			FirstName: rec[1],
			LastName:  rec[2],
			Date:      rec[3],
			Holding:   rec[4],
			Value:     value,
		})
	}
	return rows, nil
}

// FormatValue renders v with exactly ValuePlaces decimals, rounding half away from zero.
func FormatValue(v decimal.Decimal) string {
	return v.StringFixed(ValuePlaces)
}

func record(row models.ReportRow) []string {
	return []string{row.User, row.FirstName, row.LastName, row.Date, row.Holding, FormatValue(row.Value)}
}

func writeRecord(w io.Writer, fields []string, separate bool) error {
	var b strings.Builder
	if separate {
		b.WriteString(lineSeparator)
	}
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
