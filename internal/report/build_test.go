package report

import (
	"testing"

	"github.com/shopspring/decimal"

	"investadmin/internal/models"
)

func TestBuild(t *testing.T) {
	t.Run("joins holding and computes value", func(t *testing.T) {
		investments := []models.Investment{{
			ID:                   "1",
			UserID:               "123",
			FinancialCompanyID:   "1",
			Date:                 "2022-01-01",
			InvestmentTotal:      decimal.NewFromInt(1000),
			InvestmentPercentage: decimal.RequireFromString("0.5"),
		}}
		companies := []models.Company{{ID: "1", Name: "Acme"}}

		rows := Build(investments, companies)
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		if rows[0].Holding != "Acme" {
			t.Errorf("expected holding Acme, got %q", rows[0].Holding)
		}
		if !rows[0].Value.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected value 500, got %s", rows[0].Value)
		}
		if rows[0].User != "123" || rows[0].Date != "2022-01-01" {
			t.Errorf("unexpected row fields: %+v", rows[0])
		}
	})

	t.Run("unmatched company leaves holding empty", func(t *testing.T) {
		investments := []models.Investment{{ID: "1", UserID: "9", FinancialCompanyID: "404"}}
		companies := []models.Company{{ID: "1", Name: "Acme"}}

		rows := Build(investments, companies)
		if rows[0].Holding != "" {
			t.Errorf("expected empty holding, got %q", rows[0].Holding)
		}
	})

	t.Run("first duplicate company wins", func(t *testing.T) {
		investments := []models.Investment{{ID: "1", FinancialCompanyID: "7"}}
		companies := []models.Company{
			{ID: "7", Name: "First"},
			{ID: "7", Name: "Second"},
		}

		rows := Build(investments, companies)
		if rows[0].Holding != "First" {
			t.Errorf("expected First, got %q", rows[0].Holding)
		}
	})

	t.Run("matches on financial company id not investment id", func(t *testing.T) {
		investments := []models.Investment{{ID: "2", FinancialCompanyID: "3"}}
		companies := []models.Company{
			{ID: "2", Name: "Wrong"},
			{ID: "3", Name: "Right"},
		}

		rows := Build(investments, companies)
		if rows[0].Holding != "Right" {
			t.Errorf("expected Right, got %q", rows[0].Holding)
		}
	})

	t.Run("preserves investment order", func(t *testing.T) {
		investments := []models.Investment{{UserID: "c"}, {UserID: "a"}, {UserID: "b"}}

		rows := Build(investments, nil)
		got := rows[0].User + rows[1].User + rows[2].User
		if got != "cab" {
			t.Errorf("expected order cab, got %s", got)
		}
	})

	t.Run("empty inputs", func(t *testing.T) {
		rows := Build(nil, nil)
		if rows == nil || len(rows) != 0 {
			t.Errorf("expected empty non-nil slice, got %#v", rows)
		}
	})
}
