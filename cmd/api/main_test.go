package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"investadmin/internal/client"
	"investadmin/internal/handlers"
	"investadmin/internal/logger"
	"investadmin/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test", "")
}

type stubInvestments struct{}

func (stubInvestments) GetInvestment(context.Context, string) (*client.RawInvestment, error) {
	return &client.RawInvestment{ContentType: "application/json", Body: []byte(`{"id":"1"}`)}, nil
}

type stubReports struct {
	err   error
	calls int
}

func (s *stubReports) Generate(context.Context) (*services.ReportResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &services.ReportResult{ID: "run-1", Rows: 2}, nil
}

func testRouter(reports *stubReports) *gin.Engine {
	return newRouter(
		handlers.NewInvestmentHandler(stubInvestments{}),
		handlers.NewReportHandler(reports, false),
	)
}

func TestRouter(t *testing.T) {
	r := testRouter(&stubReports{})

	tests := []struct {
		path string
		want int
	}{
		{"/health", http.StatusOK},
		{"/investments/1", http.StatusOK},
		{"/generate-report", http.StatusOK},
		{"/swagger/doc.json", http.StatusOK},
		{"/unknown", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, rec.Code)
			}
			if rec.Header().Get("X-Request-ID") == "" {
				t.Error("expected request id header")
			}
		})
	}
}

func TestScheduledReport(t *testing.T) {
	t.Run("runs the report", func(t *testing.T) {
		reports := &stubReports{}
		scheduledReport(reports)(context.Background())
		if reports.calls != 1 {
			t.Errorf("expected 1 run, got %d", reports.calls)
		}
	})

	t.Run("tolerates failures", func(t *testing.T) {
		reports := &stubReports{err: errors.New("upstream down")}
		scheduledReport(reports)(context.Background())
		if reports.calls != 1 {
			t.Errorf("expected 1 run, got %d", reports.calls)
		}
	})
}
