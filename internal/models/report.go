package models

import "github.com/shopspring/decimal"

// ReportRow is one line of the investments CSV export.
type ReportRow struct {
	User      string
	FirstName string
	LastName  string
	Date      string
	Holding   string // empty when no company matches
	Value     decimal.Decimal
}
