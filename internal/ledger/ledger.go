// Package ledger defines the storage collaborator consumed by the
// processing pipeline. The pipeline treats the implementation as opaque:
// it awaits the calls and propagates failures without retrying.
package ledger

import (
	"context"
	"time"

	"github.com/dvloznov/sms-ledger/internal/domain"
)

// Ledger is the persistent transaction store.
type Ledger interface {
	// CreateTransaction persists one canonical transaction and returns
	// the stored record.
	CreateTransaction(ctx context.Context, tx *domain.CanonicalTransaction) (*domain.CanonicalTransaction, error)

	// ListBankAccounts retrieves every bank account.
	ListBankAccounts(ctx context.Context) ([]*domain.BankAccount, error)

	// ListCategories retrieves the category taxonomy.
	ListCategories(ctx context.Context) ([]*domain.Category, error)

	// QueryTransactionsByDateRange retrieves transactions whose date
	// falls within [startDate, endDate].
	QueryTransactionsByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.CanonicalTransaction, error)
}
