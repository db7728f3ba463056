// Package extract turns a RawEvent into a canonical ParsedTransaction.
// It selects the path for each admissible shape: direct objects are
// validated, message bodies run the matcher cascade, deep links are
// decoded from query parameters, and synthetic test payloads always
// succeed with placeholder fields.
package extract

import (
	"math"
	"net/url"
	"time"

	"cloud.google.com/go/civil"

	"github.com/dvloznov/sms-ledger/internal/domain"
	"github.com/dvloznov/sms-ledger/internal/match"
)

// now is a hook for tests that pin the processing date.
var now = time.Now

// Extract resolves the event's shape and produces the intermediate
// transaction. It never panics; every failure is reported as an error
// (ErrUnrecognizedShape or ErrNoTransactionData) with a nil result.
func Extract(ev *domain.RawEvent) (*domain.ParsedTransaction, error) {
	if ev == nil {
		return nil, domain.ErrUnrecognizedShape
	}

	switch {
	case ev.Transaction != nil:
		return extractDirect(ev.Transaction)
	case ev.Message != nil:
		return extractMessage(ev.Message.Body)
	case ev.Body != "":
		return extractMessage(ev.Body)
	case ev.URL != "":
		return extractDeepLink(ev.URL)
	case ev.Test != nil:
		return extractTest(ev.Test), nil
	default:
		return nil, domain.ErrUnrecognizedShape
	}
}

// RawText returns the free-form text carried by the event, if any. The
// pipeline scans it for bank-name mentions when resolving the target
// account.
func RawText(ev *domain.RawEvent) string {
	switch {
	case ev == nil:
		return ""
	case ev.Message != nil:
		return ev.Message.Body
	default:
		return ev.Body
	}
}

func extractDirect(direct *domain.DirectTransaction) (*domain.ParsedTransaction, error) {
	if direct.Amount.IsZero() || direct.Description == "" {
		return nil, domain.ErrNoTransactionData
	}
	amount, err := direct.Amount.Float64()
	if err != nil || amount == 0 {
		return nil, domain.ErrNoTransactionData
	}

	txType := direct.Type
	if txType != domain.TxIncome {
		txType = domain.TxExpense
	}

	date := civil.DateOf(now())
	if direct.Date != "" {
		if parsed, err := time.Parse("2006-01-02", direct.Date); err == nil {
			date = civil.DateOf(parsed)
		}
	}

	return &domain.ParsedTransaction{
		Amount:      applySign(amount, txType),
		Description: direct.Description,
		Type:        txType,
		Merchant:    direct.Merchant,
		Date:        date,
	}, nil
}

func extractMessage(body string) (*domain.ParsedTransaction, error) {
	tx := match.Run(body)
	if tx == nil {
		return nil, domain.ErrNoTransactionData
	}
	tx.Date = civil.DateOf(now())
	return tx, nil
}

func extractDeepLink(raw string) (*domain.ParsedTransaction, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, domain.ErrNoTransactionData
	}
	q := u.Query()

	amountParam := q.Get("amount")
	description := q.Get("description")
	if amountParam == "" || description == "" {
		return nil, domain.ErrNoTransactionData
	}
	amount, err := match.ParseAmount(amountParam)
	if err != nil || amount == 0 {
		return nil, domain.ErrNoTransactionData
	}

	txType := domain.TxExpense
	if q.Get("type") == string(domain.TxIncome) {
		txType = domain.TxIncome
	}

	return &domain.ParsedTransaction{
		Amount:      applySign(amount, txType),
		Description: description,
		Type:        txType,
		Merchant:    q.Get("merchant"),
		Date:        civil.DateOf(now()),
	}, nil
}

// extractTest always succeeds. Absent fields default to a fixed
// placeholder expense so the pipeline can be exercised end to end.
func extractTest(t *domain.SyntheticTest) *domain.ParsedTransaction {
	amount := -100.0
	if !t.Amount.IsZero() {
		if v, err := t.Amount.Float64(); err == nil && v != 0 {
			amount = v
		}
	}

	txType := t.Type
	if txType != domain.TxIncome {
		txType = domain.TxExpense
	}

	description := t.Description
	if description == "" {
		description = "Test transaction"
	}
	merchant := t.Merchant
	if merchant == "" {
		merchant = "Test Merchant"
	}

	return &domain.ParsedTransaction{
		Amount:      applySign(amount, txType),
		Description: description,
		Type:        txType,
		Merchant:    merchant,
		Date:        civil.DateOf(now()),
	}
}

// applySign enforces the sign invariant: negative for expense, positive
// for income, regardless of the sign carried by the input.
func applySign(amount float64, txType domain.TxType) float64 {
	abs := math.Abs(amount)
	if txType == domain.TxIncome {
		return abs
	}
	return -abs
}
