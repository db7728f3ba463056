package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/dvloznov/sms-ledger/internal/api/middleware"
	"github.com/dvloznov/sms-ledger/internal/domain"
	"github.com/dvloznov/sms-ledger/internal/ledger"
)

// Processor runs one raw event through the ingestion pipeline.
type Processor interface {
	Process(ctx context.Context, ev *domain.RawEvent) bool
}

// EventsHandler handles event ingestion endpoints.
type EventsHandler struct {
	pipeline Processor
	log      zerolog.Logger
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(pipeline Processor, log zerolog.Logger) *EventsHandler {
	return &EventsHandler{pipeline: pipeline, log: log}
}

// ProcessEvent handles POST /api/events. The body is a raw event in any
// of its four shapes; the response reports whether a transaction was
// persisted.
func (h *EventsHandler) ProcessEvent(w http.ResponseWriter, r *http.Request) {
	var ev domain.RawEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	persisted := h.pipeline.Process(r.Context(), &ev)
	middleware.WriteJSON(w, http.StatusOK, map[string]bool{"persisted": persisted})
}

// ProcessSMS handles POST /api/sms. It accepts a plain message payload
// and wraps it in the SMS event shape.
func (h *EventsHandler) ProcessSMS(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Body   string `json:"body"`
		Sender string `json:"sender"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Body == "" {
		middleware.WriteError(w, http.StatusBadRequest, "Message body is required")
		return
	}

	ev := &domain.RawEvent{Message: &domain.TextMessage{Body: req.Body, Sender: req.Sender}}
	persisted := h.pipeline.Process(r.Context(), ev)
	middleware.WriteJSON(w, http.StatusOK, map[string]bool{"persisted": persisted})
}

// TransactionsHandler handles transaction query endpoints.
type TransactionsHandler struct {
	store ledger.Ledger
	log   zerolog.Logger
}

// NewTransactionsHandler creates a new transactions handler.
func NewTransactionsHandler(store ledger.Ledger, log zerolog.Logger) *TransactionsHandler {
	return &TransactionsHandler{store: store, log: log}
}

// ListTransactions handles GET /api/transactions?start=YYYY-MM-DD&end=YYYY-MM-DD.
// Absent bounds default to the last 30 days.
func (h *TransactionsHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -30)

	if s := r.URL.Query().Get("start"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			middleware.WriteError(w, http.StatusBadRequest, "Invalid start date, expected YYYY-MM-DD")
			return
		}
		start = parsed
	}
	if e := r.URL.Query().Get("end"); e != "" {
		parsed, err := time.Parse("2006-01-02", e)
		if err != nil {
			middleware.WriteError(w, http.StatusBadRequest, "Invalid end date, expected YYYY-MM-DD")
			return
		}
		end = parsed
	}
	if end.Before(start) {
		middleware.WriteError(w, http.StatusBadRequest, "End date precedes start date")
		return
	}

	transactions, err := h.store.QueryTransactionsByDateRange(ctx, start, end)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to query transactions")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to query transactions")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"transactions": transactions,
		"count":        len(transactions),
	})
}

// AccountsHandler handles bank account endpoints.
type AccountsHandler struct {
	store ledger.Ledger
	log   zerolog.Logger
}

// NewAccountsHandler creates a new accounts handler.
func NewAccountsHandler(store ledger.Ledger, log zerolog.Logger) *AccountsHandler {
	return &AccountsHandler{store: store, log: log}
}

// ListAccounts handles GET /api/accounts.
func (h *AccountsHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.store.ListBankAccounts(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list bank accounts")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to list bank accounts")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"accounts": accounts,
		"count":    len(accounts),
	})
}

// CategoriesHandler handles category endpoints.
type CategoriesHandler struct {
	store ledger.Ledger
	log   zerolog.Logger
}

// NewCategoriesHandler creates a new categories handler.
func NewCategoriesHandler(store ledger.Ledger, log zerolog.Logger) *CategoriesHandler {
	return &CategoriesHandler{store: store, log: log}
}

// ListCategories handles GET /api/categories.
func (h *CategoriesHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.ListCategories(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list categories")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to list categories")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
		"count":      len(categories),
	})
}

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
