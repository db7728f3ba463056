// Package bigquery implements the ledger on Google BigQuery. The Store
// holds a shared client and delegates each operation to a package-level
// XxxWithClient function, so callers with their own client can reuse the
// same query code.
package bigquery

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/dvloznov/sms-ledger/internal/domain"
	"github.com/dvloznov/sms-ledger/internal/ledger"
)

const (
	transactionsTable = "transactions"
	accountsTable     = "bank_accounts"
	categoriesTable   = "categories"
)

// Store is the BigQuery-backed ledger.
type Store struct {
	client    *bigquery.Client
	projectID string
	datasetID string
}

// NewStore creates a Store with a shared BigQuery client.
func NewStore(ctx context.Context, projectID, datasetID string) (*Store, error) {
	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("NewStore: creating client: %w", err)
	}
	return &Store{
		client:    client,
		projectID: projectID,
		datasetID: datasetID,
	}, nil
}

// Close closes the BigQuery client connection.
func (s *Store) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// CreateTransaction delegates to InsertTransactionWithClient.
func (s *Store) CreateTransaction(ctx context.Context, tx *domain.CanonicalTransaction) (*domain.CanonicalTransaction, error) {
	if err := InsertTransactionWithClient(ctx, s.client, s.datasetID, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// ListBankAccounts delegates to ListBankAccountsWithClient.
func (s *Store) ListBankAccounts(ctx context.Context) ([]*domain.BankAccount, error) {
	return ListBankAccountsWithClient(ctx, s.client, s.datasetID)
}

// ListCategories delegates to ListCategoriesWithClient.
func (s *Store) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return ListCategoriesWithClient(ctx, s.client, s.datasetID)
}

// QueryTransactionsByDateRange delegates to QueryTransactionsByDateRangeWithClient.
func (s *Store) QueryTransactionsByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.CanonicalTransaction, error) {
	return QueryTransactionsByDateRangeWithClient(ctx, s.client, s.datasetID, startDate, endDate)
}

// Ensure Store implements the ledger interface.
var _ ledger.Ledger = (*Store)(nil)
