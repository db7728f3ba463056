package bigquery

import (
	"math/big"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"

	"github.com/dvloznov/sms-ledger/internal/domain"
)

// TransactionRow is the transactions table schema.
type TransactionRow struct {
	TransactionID string `bigquery:"transaction_id"`

	BankAccountID string `bigquery:"bank_account_id"`
	CategoryID    string `bigquery:"category_id"`
	PersonID      string `bigquery:"person_id"`

	TransactionDate civil.Date `bigquery:"transaction_date"`

	Amount *big.Rat `bigquery:"amount"`
	Type   string   `bigquery:"type"`

	Description string `bigquery:"description"`
	Merchant    string `bigquery:"merchant"`

	IsRecurring  bool `bigquery:"is_recurring"`
	IsInvestment bool `bigquery:"is_investment"`
	IsVerified   bool `bigquery:"is_verified"`

	CreatedTS time.Time `bigquery:"created_ts"`
}

// AccountRow is the bank_accounts table schema.
type AccountRow struct {
	AccountID     string `bigquery:"account_id"`
	AccountName   string `bigquery:"account_name"`
	Bank          string `bigquery:"bank"`
	AccountNumber string `bigquery:"account_number"`
	Currency      string `bigquery:"currency"`

	IsPrimary bigquery.NullBool `bigquery:"is_primary"`
}

// CategoryRow is the categories table schema.
type CategoryRow struct {
	CategoryID string `bigquery:"category_id"`
	Name       string `bigquery:"name"`
	Type       string `bigquery:"type"`

	IsActive bigquery.NullBool `bigquery:"is_active"`
}

func rowFromTransaction(tx *domain.CanonicalTransaction) *TransactionRow {
	return &TransactionRow{
		TransactionID:   tx.TransactionID,
		BankAccountID:   tx.BankAccountID,
		CategoryID:      tx.CategoryID,
		PersonID:        tx.PersonID,
		TransactionDate: tx.TransactionDate,
		Amount:          new(big.Rat).SetFloat64(tx.Amount),
		Type:            string(tx.Type),
		Description:     tx.Description,
		Merchant:        tx.Merchant,
		IsRecurring:     tx.IsRecurring,
		IsInvestment:    tx.IsInvestment,
		IsVerified:      tx.IsVerified,
		CreatedTS:       time.Now(),
	}
}

func (r *TransactionRow) toDomain() *domain.CanonicalTransaction {
	amount := 0.0
	if r.Amount != nil {
		amount, _ = r.Amount.Float64()
	}
	return &domain.CanonicalTransaction{
		TransactionID:   r.TransactionID,
		BankAccountID:   r.BankAccountID,
		CategoryID:      r.CategoryID,
		PersonID:        r.PersonID,
		TransactionDate: r.TransactionDate,
		Amount:          amount,
		Type:            domain.TxType(r.Type),
		Description:     r.Description,
		Merchant:        r.Merchant,
		IsRecurring:     r.IsRecurring,
		IsInvestment:    r.IsInvestment,
		IsVerified:      r.IsVerified,
	}
}

func (r *AccountRow) toDomain() *domain.BankAccount {
	return &domain.BankAccount{
		ID:            r.AccountID,
		Name:          r.AccountName,
		Bank:          r.Bank,
		AccountNumber: r.AccountNumber,
		Currency:      r.Currency,
	}
}

func (r *CategoryRow) toDomain() *domain.Category {
	return &domain.Category{
		ID:   r.CategoryID,
		Name: r.Name,
		Type: domain.TxType(r.Type),
	}
}
