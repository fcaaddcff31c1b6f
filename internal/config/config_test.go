package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.RequestTimeout)
	}
	if cfg.ReportPath != "report.csv" {
		t.Errorf("expected report.csv, got %s", cfg.ReportPath)
	}
	if cfg.ReportSchedule != "" {
		t.Errorf("expected scheduling disabled by default, got %q", cfg.ReportSchedule)
	}
	if cfg.IsProduction() {
		t.Error("default env should not be production")
	}
}

func TestLoadFile_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("INVESTMENTS_SERVICE_URL", "http://investments.internal")
	t.Setenv("FINANCIAL_COMPANIES_SERVICE_URL", "http://companies.internal")
	t.Setenv("REQUEST_TIMEOUT", "750ms")
	t.Setenv("REPORT_PATH", "/tmp/out.csv")
	t.Setenv("ENV", "Production")

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.InvestmentsServiceURL != "http://investments.internal" {
		t.Errorf("unexpected investments url %s", cfg.InvestmentsServiceURL)
	}
	if cfg.FinancialCompaniesServiceURL != "http://companies.internal" {
		t.Errorf("unexpected companies url %s", cfg.FinancialCompaniesServiceURL)
	}
	if cfg.RequestTimeout != 750*time.Millisecond {
		t.Errorf("expected 750ms, got %v", cfg.RequestTimeout)
	}
	if cfg.ReportPath != "/tmp/out.csv" {
		t.Errorf("unexpected report path %s", cfg.ReportPath)
	}
	if !cfg.IsProduction() {
		t.Error("expected production env")
	}
}

func TestLoadFile_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "port: \"7000\"\ninvestments_service_url: http://from-file:1\nreport_schedule: \"0 0 * * * *\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	t.Setenv("PORT", "7001")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "7001" {
		t.Errorf("env should override file, got port %s", cfg.Port)
	}
	if cfg.InvestmentsServiceURL != "http://from-file:1" {
		t.Errorf("expected url from file, got %s", cfg.InvestmentsServiceURL)
	}
	if cfg.ReportSchedule != "0 0 * * * *" {
		t.Errorf("expected schedule from file, got %q", cfg.ReportSchedule)
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value, field string
	}{
		{"bad url", "INVESTMENTS_SERVICE_URL", "not a url", "InvestmentsServiceURL"},
		{"non numeric port", "PORT", "http", "Port"},
		{"negative timeout", "REQUEST_TIMEOUT", "-1s", "RequestTimeout"},
		{"unknown log level", "LOG_LEVEL", "loud", "LogLevel"},
		{"bad schedule", "REPORT_SCHEDULE", "every hour", "ReportSchedule"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadFile("")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q should name %s", err.Error(), tt.field)
			}
		})
	}
}
