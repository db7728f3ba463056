package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dvloznov/sms-ledger/internal/domain"
	"github.com/dvloznov/sms-ledger/internal/ledger/inmemory"
	"github.com/dvloznov/sms-ledger/internal/logger"
	"github.com/dvloznov/sms-ledger/internal/pipeline"
)

func newTestHandlers(t *testing.T) (*EventsHandler, *TransactionsHandler, *AccountsHandler, *CategoriesHandler, *inmemory.Store) {
	t.Helper()
	store := inmemory.NewSeededStore()
	log := logger.New()
	p := pipeline.New(store, pipeline.NewLogNotifier(log), log, "test-user")
	return NewEventsHandler(p, log),
		NewTransactionsHandler(store, log),
		NewAccountsHandler(store, log),
		NewCategoriesHandler(store, log),
		store
}

func TestProcessSMS_PersistsTransaction(t *testing.T) {
	events, transactions, _, _, _ := newTestHandlers(t)

	body := `{"body": "INR 500.00 spent on Starbucks on 2024-01-15. Your current balance is INR 15,000.00", "sender": "BX-HDFCBK"}`
	req := httptest.NewRequest(http.MethodPost, "/api/sms", strings.NewReader(body))
	rec := httptest.NewRecorder()
	events.ProcessSMS(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]bool
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp["persisted"] {
		t.Fatal("expected transaction to be persisted")
	}

	// The persisted transaction is visible through the query endpoint.
	req = httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	rec = httptest.NewRecorder()
	transactions.ListTransactions(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var listResp struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&listResp); err != nil {
		t.Fatalf("decoding list response: %v", err)
	}
	if listResp.Count != 1 {
		t.Errorf("expected 1 transaction, got %d", listResp.Count)
	}
}

func TestProcessSMS_RequiresBody(t *testing.T) {
	events, _, _, _, _ := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/api/sms", strings.NewReader(`{"sender": "BX-HDFCBK"}`))
	rec := httptest.NewRecorder()
	events.ProcessSMS(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing body, got %d", rec.Code)
	}
}

func TestProcessEvent_DirectShape(t *testing.T) {
	events, _, _, _, _ := newTestHandlers(t)

	body := `{"transaction": {"amount": 250.5, "description": "Monthly rent", "type": "expense", "date": "2025-03-01"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body))
	rec := httptest.NewRecorder()
	events.ProcessEvent(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]bool
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp["persisted"] {
		t.Fatal("expected direct transaction to be persisted")
	}
}

func TestProcessEvent_UnrecognizedShape(t *testing.T) {
	events, _, _, _, store := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	events.ProcessEvent(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]bool
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["persisted"] {
		t.Fatal("expected unrecognized shape not to persist")
	}

	txs, err := store.QueryTransactionsByDateRange(context.Background(),
		timeMustParse(t, "2000-01-01"), timeMustParse(t, "2100-01-01"))
	if err != nil {
		t.Fatalf("QueryTransactionsByDateRange: %v", err)
	}
	if len(txs) != 0 {
		t.Errorf("expected no stored transactions, got %d", len(txs))
	}
}

func TestListTransactions_InvalidDates(t *testing.T) {
	_, transactions, _, _, _ := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions?start=notadate", nil)
	rec := httptest.NewRecorder()
	transactions.ListTransactions(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid start date, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/transactions?start=2025-03-10&end=2025-03-01", nil)
	rec = httptest.NewRecorder()
	transactions.ListTransactions(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for inverted range, got %d", rec.Code)
	}
}

func TestListAccountsAndCategories(t *testing.T) {
	_, _, accounts, categories, _ := newTestHandlers(t)

	rec := httptest.NewRecorder()
	accounts.ListAccounts(rec, httptest.NewRequest(http.MethodGet, "/api/accounts", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("accounts: expected 200, got %d", rec.Code)
	}
	var acctResp struct {
		Accounts []*domain.BankAccount `json:"accounts"`
		Count    int                   `json:"count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&acctResp); err != nil {
		t.Fatalf("decoding accounts: %v", err)
	}
	if acctResp.Count == 0 {
		t.Error("expected seeded accounts")
	}

	rec = httptest.NewRecorder()
	categories.ListCategories(rec, httptest.NewRequest(http.MethodGet, "/api/categories", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("categories: expected 200, got %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func timeMustParse(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parsing %q: %v", s, err)
	}
	return parsed
}
