package notionsync

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/jomei/notionapi"

	"github.com/dvloznov/sms-ledger/internal/domain"
	"github.com/dvloznov/sms-ledger/internal/ledger/inmemory"
)

// mockNotion records created pages and serves a fixed set of existing pages.
type mockNotion struct {
	existing []notionapi.Page
	created  []notionapi.Properties
}

func (m *mockNotion) CreatePage(ctx context.Context, databaseID string, properties notionapi.Properties) (*notionapi.Page, error) {
	m.created = append(m.created, properties)
	return &notionapi.Page{}, nil
}

func (m *mockNotion) QueryDatabase(ctx context.Context, databaseID string, filter *notionapi.DatabaseQueryRequest) (*notionapi.DatabaseQueryResponse, error) {
	return &notionapi.DatabaseQueryResponse{
		Results: m.existing,
		HasMore: false,
	}, nil
}

func pageWithTransactionID(txID string) notionapi.Page {
	return notionapi.Page{
		Properties: notionapi.Properties{
			"Transaction ID": &notionapi.TitleProperty{
				Title: []notionapi.RichText{{PlainText: txID}},
			},
		},
	}
}

func seedTransaction(t *testing.T, store *inmemory.Store, txID string) {
	t.Helper()
	_, err := store.CreateTransaction(context.Background(), &domain.CanonicalTransaction{
		TransactionID:   txID,
		BankAccountID:   "acct-hdfc",
		CategoryID:      "dining-out",
		TransactionDate: civil.Date{Year: 2025, Month: 3, Day: 15},
		Amount:          -450,
		Type:            domain.TxExpense,
		Description:     "Dining - Restaurant",
		Merchant:        "Cafe",
	})
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}
}

func TestSyncTransactions_CreatesMissingPages(t *testing.T) {
	store := inmemory.NewStore()
	seedTransaction(t, store, "tx-new")
	seedTransaction(t, store, "tx-existing")

	notion := &mockNotion{
		existing: []notionapi.Page{pageWithTransactionID("tx-existing")},
	}

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	if err := SyncTransactions(context.Background(), store, notion, "db-1", start, end, false); err != nil {
		t.Fatalf("SyncTransactions: %v", err)
	}

	if len(notion.created) != 1 {
		t.Fatalf("expected 1 created page, got %d", len(notion.created))
	}
	title, ok := notion.created[0]["Transaction ID"].(notionapi.TitleProperty)
	if !ok || len(title.Title) == 0 || title.Title[0].Text.Content != "tx-new" {
		t.Errorf("expected page for tx-new, got %+v", notion.created[0])
	}
}

func TestSyncTransactions_DryRunCreatesNothing(t *testing.T) {
	store := inmemory.NewStore()
	seedTransaction(t, store, "tx-1")

	notion := &mockNotion{}

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	if err := SyncTransactions(context.Background(), store, notion, "db-1", start, end, true); err != nil {
		t.Fatalf("SyncTransactions: %v", err)
	}

	if len(notion.created) != 0 {
		t.Errorf("dry run must not create pages, got %d", len(notion.created))
	}
}

func TestTransactionToNotionProperties(t *testing.T) {
	tx := &domain.CanonicalTransaction{
		TransactionID:   "tx-1",
		BankAccountID:   "acct-hdfc",
		CategoryID:      "dining-out",
		TransactionDate: civil.Date{Year: 2025, Month: 3, Day: 15},
		Amount:          -450,
		Type:            domain.TxExpense,
		Description:     "Dining - Restaurant",
		Merchant:        "Cafe",
	}

	props := TransactionToNotionProperties(tx)

	amount, ok := props["Amount"].(notionapi.NumberProperty)
	if !ok || amount.Number != -450 {
		t.Errorf("expected Amount -450, got %+v", props["Amount"])
	}
	if _, ok := props["Merchant"]; !ok {
		t.Error("expected Merchant property when merchant is set")
	}
	if _, ok := props["Date"]; !ok {
		t.Error("expected Date property for a valid date")
	}

	tx.Merchant = ""
	props = TransactionToNotionProperties(tx)
	if _, ok := props["Merchant"]; ok {
		t.Error("expected no Merchant property when merchant is empty")
	}
}
