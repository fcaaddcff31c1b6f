package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"investadmin/internal/client"
	"investadmin/internal/config"
	cronrunner "investadmin/internal/cron"
	"investadmin/internal/handlers"
	"investadmin/internal/logger"
	"investadmin/internal/services"
	"investadmin/internal/storage"
)

// @title           Investments Admin API
// @version         1.0
// @description     Investment lookups and CSV report export over the investments and financial companies services.

// @host      localhost:8080
// @BasePath  /

func main() {
	appConfig, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logger.Init(appConfig.Env, appConfig.LogLevel)
	defer logger.Sync()

	if err := run(appConfig); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(appConfig *config.Config) error {
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Upstream clients share one HTTP client so the timeout applies everywhere.
	httpClient := &http.Client{Timeout: appConfig.RequestTimeout}
	investmentsClient := client.NewInvestmentsClient(appConfig.InvestmentsServiceURL, httpClient)
	companiesClient := client.NewCompaniesClient(appConfig.FinancialCompaniesServiceURL, httpClient)

	// Initialize services
	investmentService := services.NewInvestmentService(investmentsClient)
	reportService := services.NewReportService(investmentsClient, companiesClient, storage.NewFileSink(appConfig.ReportPath))

	// Initialize handlers
	investmentHandler := handlers.NewInvestmentHandler(investmentService)
	reportHandler := handlers.NewReportHandler(reportService, !appConfig.IsProduction())

	if appConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := newRouter(investmentHandler, reportHandler)

	if appConfig.ReportSchedule != "" {
		runner := cronrunner.New(log, ctx)
		if _, err := runner.Add(appConfig.ReportSchedule, scheduledReport(reportService)); err != nil {
			return fmt.Errorf("scheduling report: %w", err)
		}
		runner.Start()
		defer runner.Stop()
		log.Infof("Scheduled report generation: %s", appConfig.ReportSchedule)
	}

	// A report makes two parallel fetches and one forward, each bounded by RequestTimeout.
	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      3*appConfig.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting investments admin server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}

// scheduledReport runs report generation from the cron runner and logs the outcome.
func scheduledReport(reportService services.ReportServicer) func(context.Context) {
	return func(ctx context.Context) {
		log := logger.Get()
		result, err := reportService.Generate(ctx)
		if err != nil {
			log.Errorw("scheduled report failed", "error", err.Error())
			return
		}
		log.Infow("scheduled report generated",
			"report_id", result.ID,
			"rows", result.Rows,
			"bytes", result.Bytes,
			"path", result.Path,
		)
	}
}
