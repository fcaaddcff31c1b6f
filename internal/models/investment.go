package models

import "github.com/shopspring/decimal"

// Investment is a single holding as returned by the investments service.
// Values are decoded as-is and treated as read-only for the lifetime of a request.
type Investment struct {
	ID                   string          `json:"id"`
	UserID               string          `json:"userId"`
	FirstName            string          `json:"firstName"`
	LastName             string          `json:"lastName"`
	FinancialCompanyID   string          `json:"financialCompanyId"`
	Date                 string          `json:"date"`
	InvestmentTotal      decimal.Decimal `json:"investmentTotal"`
	InvestmentPercentage decimal.Decimal `json:"investmentPercentage"` // fraction, 0-1
}

// Value returns the part of the investment total attributed to the holding.
func (i Investment) Value() decimal.Decimal {
	return i.InvestmentTotal.Mul(i.InvestmentPercentage)
}
