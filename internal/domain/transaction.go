package domain

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
)

// TxType classifies a transaction's direction.
type TxType string

const (
	TxExpense TxType = "expense"
	TxIncome  TxType = "income"
)

// Number accepts both JSON numbers and numeric strings, so callers that
// send {"amount": 500} and {"amount": "500.00"} are treated the same.
type Number string

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*n = ""
		return nil
	}
	if b[0] == '"' {
		unquoted, err := strconv.Unquote(string(b))
		if err != nil {
			return fmt.Errorf("Number: unquoting %q: %w", b, err)
		}
		*n = Number(strings.TrimSpace(unquoted))
		return nil
	}
	*n = Number(b)
	return nil
}

// Float64 parses the number, tolerating thousands separators.
func (n Number) Float64() (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(string(n)), ",", "")
	if s == "" {
		return 0, fmt.Errorf("Number: empty value")
	}
	return strconv.ParseFloat(s, 64)
}

// IsZero reports whether the field was absent or empty.
func (n Number) IsZero() bool {
	return strings.TrimSpace(string(n)) == ""
}

// RawEvent is the union of the four admissible input shapes. Exactly one
// shape applies per event; the shape is decided by field presence.
type RawEvent struct {
	// Transaction is an already-structured transaction that still needs
	// validation before it can be persisted.
	Transaction *DirectTransaction `json:"transaction,omitempty"`

	// Message is a bank SMS or system-notification body.
	Message *TextMessage `json:"message,omitempty"`

	// Body is accepted at the top level as a shorthand for Message.
	Body string `json:"body,omitempty"`

	// URL is a deep link whose query parameters encode the transaction.
	URL string `json:"url,omitempty"`

	// Test is a diagnostic payload that always yields a placeholder
	// transaction. Never wired to a real ingress adapter.
	Test *SyntheticTest `json:"test,omitempty"`
}

// DirectTransaction carries pre-structured fields supplied by a caller.
type DirectTransaction struct {
	Amount      Number `json:"amount"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	Date        string `json:"date,omitempty"` // YYYY-MM-DD
	Type        TxType `json:"type,omitempty"`
	Merchant    string `json:"merchant,omitempty"`
}

// TextMessage is a raw bank message as delivered by an SMS or
// notification listener.
type TextMessage struct {
	Body   string `json:"body"`
	Sender string `json:"sender,omitempty"`
}

// SyntheticTest exercises the pipeline end to end with defaulted fields.
type SyntheticTest struct {
	Flag        bool   `json:"flag"`
	Amount      Number `json:"amount,omitempty"`
	Description string `json:"description,omitempty"`
	Merchant    string `json:"merchant,omitempty"`
	Category    string `json:"category,omitempty"`
	Type        TxType `json:"type,omitempty"`
}

// ParsedTransaction is the canonical intermediate produced by extraction.
// The sign of Amount is always derived from Type: negative for expense,
// positive for income, regardless of how the raw text spelled the amount.
type ParsedTransaction struct {
	Amount      float64
	Description string
	Type        TxType
	Merchant    string
	Bank        string
	Balance     *float64
	Date        civil.Date
}

// CategoryMapping is the category mapper's result for one transaction.
type CategoryMapping struct {
	CategoryID  string
	Description string
	PersonType  string
}

// CanonicalTransaction is the storage collaborator's schema. Only this
// record is durable; RawEvent and ParsedTransaction live for a single
// pipeline invocation.
type CanonicalTransaction struct {
	TransactionID   string
	BankAccountID   string
	CategoryID      string
	PersonID        string
	TransactionDate civil.Date
	Amount          float64
	Type            TxType
	Description     string
	Merchant        string
	IsRecurring     bool
	IsInvestment    bool
	IsVerified      bool
}

// BankAccount is an account record held by the storage collaborator.
type BankAccount struct {
	ID            string
	Name          string
	Bank          string
	AccountNumber string
	Currency      string
}

// Category is a spending or income category held by the storage collaborator.
type Category struct {
	ID   string
	Name string
	Type TxType
}
