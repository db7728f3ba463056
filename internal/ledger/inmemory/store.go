// Package inmemory implements the ledger in process memory. It is used
// for local development and tests. Data is lost on restart - for
// persistence, use the BigQuery-backed store.
package inmemory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"cloud.google.com/go/civil"

	"github.com/dvloznov/sms-ledger/internal/domain"
	"github.com/dvloznov/sms-ledger/internal/ledger"
)

// Store is an in-memory ledger. It is safe for concurrent use.
type Store struct {
	mu           sync.RWMutex
	transactions map[string]*domain.CanonicalTransaction
	accounts     []*domain.BankAccount
	categories   []*domain.Category
}

// NewStore creates an empty in-memory ledger.
func NewStore() *Store {
	return &Store{
		transactions: make(map[string]*domain.CanonicalTransaction),
	}
}

// NewSeededStore creates an in-memory ledger pre-populated with a default
// bank account and the standard category set, so the pipeline can run
// end-to-end without any external configuration.
func NewSeededStore() *Store {
	s := NewStore()
	s.accounts = []*domain.BankAccount{
		{ID: "acct-hdfc", Name: "HDFC Savings", Bank: "hdfc", AccountNumber: "XX1234", Currency: "INR"},
		{ID: "acct-sbi", Name: "SBI Savings", Bank: "sbi", AccountNumber: "XX5678", Currency: "INR"},
	}
	s.categories = []*domain.Category{
		{ID: "atm-withdrawal", Name: "ATM Withdrawal", Type: domain.TxExpense},
		{ID: "groceries", Name: "Groceries", Type: domain.TxExpense},
		{ID: "dining-out", Name: "Dining", Type: domain.TxExpense},
		{ID: "transportation", Name: "Transport", Type: domain.TxExpense},
		{ID: "utilities", Name: "Utilities", Type: domain.TxExpense},
		{ID: "personal-care", Name: "Personal Care", Type: domain.TxExpense},
		{ID: "entertainment", Name: "Entertainment", Type: domain.TxExpense},
		{ID: "medical", Name: "Medical", Type: domain.TxExpense},
		{ID: "education", Name: "Education", Type: domain.TxExpense},
		{ID: "business-expense", Name: "Business Expense", Type: domain.TxExpense},
		{ID: "shopping", Name: "Shopping", Type: domain.TxExpense},
		{ID: "family-support", Name: "Family Support", Type: domain.TxIncome},
		{ID: "salary", Name: "Salary", Type: domain.TxIncome},
		{ID: "business-income", Name: "Business Income", Type: domain.TxIncome},
		{ID: "other-income", Name: "Other Income", Type: domain.TxIncome},
	}
	return s
}

// CreateTransaction implements the Ledger interface.
func (s *Store) CreateTransaction(ctx context.Context, tx *domain.CanonicalTransaction) (*domain.CanonicalTransaction, error) {
	if tx == nil {
		return nil, fmt.Errorf("CreateTransaction: nil transaction")
	}
	if tx.TransactionID == "" {
		return nil, fmt.Errorf("CreateTransaction: transaction ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Store a copy to avoid external modifications
	txCopy := *tx
	s.transactions[tx.TransactionID] = &txCopy

	return tx, nil
}

// ListBankAccounts implements the Ledger interface.
func (s *Store) ListBankAccounts(ctx context.Context) ([]*domain.BankAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.BankAccount, 0, len(s.accounts))
	for _, acct := range s.accounts {
		acctCopy := *acct
		result = append(result, &acctCopy)
	}
	return result, nil
}

// ListCategories implements the Ledger interface.
func (s *Store) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Category, 0, len(s.categories))
	for _, cat := range s.categories {
		catCopy := *cat
		result = append(result, &catCopy)
	}
	return result, nil
}

// QueryTransactionsByDateRange implements the Ledger interface. Both
// bounds are inclusive, matching the BigQuery store's BETWEEN semantics.
func (s *Store) QueryTransactionsByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.CanonicalTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := civil.DateOf(startDate.UTC())
	end := civil.DateOf(endDate.UTC())

	var result []*domain.CanonicalTransaction
	for _, tx := range s.transactions {
		if tx.TransactionDate.Before(start) || tx.TransactionDate.After(end) {
			continue
		}
		txCopy := *tx
		result = append(result, &txCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].TransactionDate.Before(result[j].TransactionDate)
	})

	return result, nil
}

// Ensure Store implements the ledger interface.
var _ ledger.Ledger = (*Store)(nil)
