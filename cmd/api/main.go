package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dvloznov/sms-ledger/internal/api/handlers"
	"github.com/dvloznov/sms-ledger/internal/api/middleware"
	"github.com/dvloznov/sms-ledger/internal/config"
	"github.com/dvloznov/sms-ledger/internal/ledger"
	bqledger "github.com/dvloznov/sms-ledger/internal/ledger/bigquery"
	"github.com/dvloznov/sms-ledger/internal/ledger/inmemory"
	"github.com/dvloznov/sms-ledger/internal/logger"
	"github.com/dvloznov/sms-ledger/internal/pipeline"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx := context.Background()

	// Select the ledger backend
	var store ledger.Ledger
	if cfg.InMemoryLedger {
		log.Warn().Msg("Using in-memory ledger - data is lost on restart")
		store = inmemory.NewSeededStore()
	} else {
		if cfg.ProjectID == "" {
			log.Fatal().Msg("GCP_PROJECT_ID is required (or set LEDGER_IN_MEMORY=true)")
		}
		bqStore, err := bqledger.NewStore(ctx, cfg.ProjectID, cfg.DatasetID)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create BigQuery ledger")
		}
		defer bqStore.Close()
		store = bqStore
	}

	p := pipeline.New(store, pipeline.NewLogNotifier(log), log, cfg.UserID)

	// Initialize handlers
	eventsHandler := handlers.NewEventsHandler(p, log)
	transactionsHandler := handlers.NewTransactionsHandler(store, log)
	accountsHandler := handlers.NewAccountsHandler(store, log)
	categoriesHandler := handlers.NewCategoriesHandler(store, log)

	// Create router
	mux := http.NewServeMux()

	mux.HandleFunc("/api/events", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			eventsHandler.ProcessEvent(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/sms", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			eventsHandler.ProcessSMS(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/transactions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			transactionsHandler.ListTransactions(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/accounts", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			accountsHandler.ListAccounts(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			categoriesHandler.ListCategories(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/health", handlers.Health)

	// Apply middleware
	handler := middleware.Recovery(log)(
		middleware.Logger(log)(
			middleware.RequestID(
				middleware.CORS(
					middleware.Auth(mux),
				),
			),
		),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting API server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("Server stopped")
}
