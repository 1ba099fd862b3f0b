package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/mvargas/spendtrack/internal/analytics"
	"github.com/mvargas/spendtrack/internal/config"
	"github.com/mvargas/spendtrack/internal/expense"
	expenseStore "github.com/mvargas/spendtrack/internal/expense/store"
	"github.com/mvargas/spendtrack/internal/export"
	spendtrackHttp "github.com/mvargas/spendtrack/internal/http"
	analyticsHandler "github.com/mvargas/spendtrack/internal/http/analytics"
	expenseHandler "github.com/mvargas/spendtrack/internal/http/expense"
	exportHandler "github.com/mvargas/spendtrack/internal/http/export"
	importHandler "github.com/mvargas/spendtrack/internal/http/importcsv"
	matchingHandler "github.com/mvargas/spendtrack/internal/http/matching"
	"github.com/mvargas/spendtrack/internal/importer"
	"github.com/mvargas/spendtrack/internal/matching"
	matchingStore "github.com/mvargas/spendtrack/internal/matching/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var (
		expenseService   = expense.NewService(expenseStore.New())
		analyticsService = analytics.NewService(expenseService)
		matchingService  = matching.NewService(matchingStore.New())
		importService    = importer.NewService()
		exportService    = export.NewService(expenseService)
	)

	var (
		expenseH   = expenseHandler.NewHandler(expenseService, analyticsService, cfg.API.RecentLimit)
		analyticsH = analyticsHandler.NewHandler(analyticsService)
		importH    = importHandler.NewHandler(importService, expenseService, matchingService, cfg.Import.MaxUploadBytes)
		matchingH  = matchingHandler.NewHandler(matchingService)
		exportH    = exportHandler.NewHandler(exportService)
	)

	router := spendtrackHttp.New(expenseH, analyticsH, importH, matchingH, exportH, cfg.CORS.AllowedOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
