package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"investadmin/internal/logger"
	"investadmin/internal/models"
	"investadmin/internal/report"
	"investadmin/internal/uuid"
)

// ReportPhase names the step of report generation that failed.
type ReportPhase string

const (
	PhaseFetch   ReportPhase = "fetch"
	PhaseBuild   ReportPhase = "build"
	PhaseSave    ReportPhase = "save"
	PhaseForward ReportPhase = "forward"
)

// ReportError ties a report failure to the phase it happened in.
type ReportError struct {
	Phase ReportPhase
	Err   error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	return fmt.Sprintf("report %s: %v", e.Phase, e.Err)
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error { return e.Err }

// ReportResult describes a generated and forwarded report.
type ReportResult struct {
	ID          string
	Rows        int
	Bytes       int
	Path        string
	GeneratedAt time.Time
}

// ReportService builds the investments CSV, saves it and forwards it.
type ReportService struct {
	investments InvestmentsAPI
	companies   CompaniesAPI
	sink        ReportSink
	now         func() time.Time
}

// NewReportService creates a new ReportService.
func NewReportService(investments InvestmentsAPI, companies CompaniesAPI, sink ReportSink) *ReportService {
	return &ReportService{
		investments: investments,
		companies:   companies,
		sink:        sink,
		now:         time.Now,
	}
}

// Generate runs one report: fetch both lists in parallel, join, render,
// save, then forward. A save failure stops before anything is forwarded.
// Errors are returned as *ReportError.
func (s *ReportService) Generate(ctx context.Context) (*ReportResult, error) {
	log := logger.Get()

	investments, companies, err := s.fetch(ctx)
	if err != nil {
		return nil, &ReportError{Phase: PhaseFetch, Err: err}
	}

	rows := report.Build(investments, companies)
	csv, err := report.Render(rows)
	if err != nil {
		return nil, &ReportError{Phase: PhaseBuild, Err: err}
	}

	if err := s.sink.Save(ctx, csv); err != nil {
		return nil, &ReportError{Phase: PhaseSave, Err: err}
	}
	log.Debugw("report saved", "path", s.sink.Path(), "rows", len(rows), "bytes", len(csv))

	if err := s.investments.ExportReport(ctx, csv); err != nil {
		return nil, &ReportError{Phase: PhaseForward, Err: err}
	}

	return &ReportResult{
		ID:          uuid.New(),
		Rows:        len(rows),
		Bytes:       len(csv),
		Path:        s.sink.Path(),
		GeneratedAt: s.now().UTC(),
	}, nil
}

// fetch loads investments and companies concurrently. The first failure
// cancels the other request.
func (s *ReportService) fetch(ctx context.Context) ([]models.Investment, []models.Company, error) {
	var (
		investments []models.Investment
		companies   []models.Company
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		investments, err = s.investments.ListInvestments(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		companies, err = s.companies.ListCompanies(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return investments, companies, nil
}

var _ ReportServicer = (*ReportService)(nil)
