package services

import (
	"context"
	"sync"

	"investadmin/internal/client"
	"investadmin/internal/logger"
	"investadmin/internal/models"
)

func init() {
	logger.Init("test", "")
}

// --- mock investments API ---

type mockInvestmentsAPI struct {
	getInvestmentFn   func(ctx context.Context, id string) (*client.RawInvestment, error)
	listInvestmentsFn func(ctx context.Context) ([]models.Investment, error)
	exportReportFn    func(ctx context.Context, csv []byte) error

	mu       sync.Mutex
	exported [][]byte
}

func (m *mockInvestmentsAPI) GetInvestment(ctx context.Context, id string) (*client.RawInvestment, error) {
	if m.getInvestmentFn != nil {
		return m.getInvestmentFn(ctx, id)
	}
	return &client.RawInvestment{ContentType: "application/json", Body: []byte(`{}`)}, nil
}

func (m *mockInvestmentsAPI) ListInvestments(ctx context.Context) ([]models.Investment, error) {
	if m.listInvestmentsFn != nil {
		return m.listInvestmentsFn(ctx)
	}
	return []models.Investment{}, nil
}

func (m *mockInvestmentsAPI) ExportReport(ctx context.Context, csv []byte) error {
	m.mu.Lock()
	m.exported = append(m.exported, csv)
	m.mu.Unlock()
	if m.exportReportFn != nil {
		return m.exportReportFn(ctx, csv)
	}
	return nil
}

var _ InvestmentsAPI = (*mockInvestmentsAPI)(nil)

// --- mock companies API ---

type mockCompaniesAPI struct {
	listCompaniesFn func(ctx context.Context) ([]models.Company, error)
}

func (m *mockCompaniesAPI) ListCompanies(ctx context.Context) ([]models.Company, error) {
	if m.listCompaniesFn != nil {
		return m.listCompaniesFn(ctx)
	}
	return []models.Company{}, nil
}

var _ CompaniesAPI = (*mockCompaniesAPI)(nil)

// --- in-memory sink ---

type memorySink struct {
	err   error
	saves int
	data  []byte
}

func (s *memorySink) Save(_ context.Context, data []byte) error {
	if s.err != nil {
		return s.err
	}
	s.saves++
	s.data = append([]byte(nil), data...)
	return nil
}

func (s *memorySink) Path() string { return "memory://report.csv" }

var _ ReportSink = (*memorySink)(nil)
