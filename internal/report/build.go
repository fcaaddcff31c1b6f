// Package report joins investments to their financial companies and renders
// the result as the CSV export sent to the investments service.
package report

import "investadmin/internal/models"

// Build joins each investment to the company whose ID equals its
// FinancialCompanyID. The first matching company in list order wins; an
// investment with no match gets an empty Holding. Output order follows the
// investments slice.
func Build(investments []models.Investment, companies []models.Company) []models.ReportRow {
	names := make(map[string]string, len(companies))
	for _, c := range companies {
		if _, seen := names[c.ID]; !seen {
			names[c.ID] = c.Name
		}
	}

	rows := make([]models.ReportRow, 0, len(investments))
	for _, inv := range investments {
		rows = append(rows, models.ReportRow{
			User:      inv.UserID,
			FirstName: inv.FirstName,
			LastName:  inv.LastName,
			Date:      inv.Date,
			Holding:   names[inv.FinancialCompanyID],
			Value:     inv.Value(),
		})
	}
	return rows
}
