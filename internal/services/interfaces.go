package services

import (
	"context"

	"investadmin/internal/client"
	"investadmin/internal/models"
)

// InvestmentsAPI is the subset of the investments service used here.
type InvestmentsAPI interface {
	GetInvestment(ctx context.Context, id string) (*client.RawInvestment, error)
	ListInvestments(ctx context.Context) ([]models.Investment, error)
	ExportReport(ctx context.Context, csv []byte) error
}

// CompaniesAPI is the subset of the financial companies service used here.
type CompaniesAPI interface {
	ListCompanies(ctx context.Context) ([]models.Company, error)
}

// ReportSink persists a rendered report.
type ReportSink interface {
	Save(ctx context.Context, data []byte) error
	Path() string
}

// InvestmentServicer defines the contract for investment lookups.
type InvestmentServicer interface {
	GetInvestment(ctx context.Context, id string) (*client.RawInvestment, error)
}

// ReportServicer defines the contract for report generation.
type ReportServicer interface {
	Generate(ctx context.Context) (*ReportResult, error)
}
