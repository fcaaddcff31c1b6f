// Package testutil holds fixtures, fake upstream services and assertions
// shared by package tests.
package testutil

import (
	"github.com/shopspring/decimal"

	"investadmin/internal/models"
)

// SampleInvestments returns three investments pointing at companies "1",
// "2" and "3" with values 500, 600 and 600.
func SampleInvestments() []models.Investment {
	return []models.Investment{
		{
			ID: "1", UserID: "123", FirstName: "Ada", LastName: "Lovelace",
			FinancialCompanyID: "1", Date: "2022-01-01",
			InvestmentTotal: decimal.NewFromInt(1000), InvestmentPercentage: decimal.RequireFromString("0.5"),
		},
		{
			ID: "2", UserID: "456", FirstName: "Alan", LastName: "Turing",
			FinancialCompanyID: "2", Date: "2022-02-01",
			InvestmentTotal: decimal.NewFromInt(2000), InvestmentPercentage: decimal.RequireFromString("0.3"),
		},
		{
			ID: "3", UserID: "789", FirstName: "Grace", LastName: "Hopper",
			FinancialCompanyID: "3", Date: "2022-03-01",
			InvestmentTotal: decimal.NewFromInt(3000), InvestmentPercentage: decimal.RequireFromString("0.2"),
		},
	}
}

// SampleInvestmentsJSON is SampleInvestments as the investments service sends it.
const SampleInvestmentsJSON = `[
	{"id":"1","userId":"123","firstName":"Ada","lastName":"Lovelace","financialCompanyId":"1","date":"2022-01-01","investmentTotal":1000,"investmentPercentage":0.5},
	{"id":"2","userId":"456","firstName":"Alan","lastName":"Turing","financialCompanyId":"2","date":"2022-02-01","investmentTotal":2000,"investmentPercentage":0.3},
	{"id":"3","userId":"789","firstName":"Grace","lastName":"Hopper","financialCompanyId":"3","date":"2022-03-01","investmentTotal":3000,"investmentPercentage":0.2}
]`

// SampleCompaniesJSON names companies "1" and "2"; company "3" is deliberately missing.
const SampleCompaniesJSON = `[{"id":"1","name":"Acme"},{"id":"2","name":"Globex"}]`
