// Package pipeline orchestrates one incoming event end to end: extract a
// transaction, resolve its bank account and category, persist it, and
// report the outcome. Processing is strictly serialized - at most one
// event is in flight at a time, and events arriving while one is being
// processed are dropped, not queued. Source events (SMS, notifications)
// are not re-deliverable, so there is no retry and no dead-letter path.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dvloznov/sms-ledger/internal/category"
	"github.com/dvloznov/sms-ledger/internal/domain"
	"github.com/dvloznov/sms-ledger/internal/extract"
	"github.com/dvloznov/sms-ledger/internal/ledger"
)

// Pipeline is the single entry point for incoming raw events.
type Pipeline struct {
	ledger   ledger.Ledger
	notifier Notifier
	log      zerolog.Logger
	userID   string

	// busy is the only concurrency control: a single shared flag, not a
	// semaphore, so "at most one in flight" holds exactly.
	busy atomic.Bool
}

// New creates a pipeline backed by the given ledger.
func New(store ledger.Ledger, notifier Notifier, log zerolog.Logger, userID string) *Pipeline {
	return &Pipeline{
		ledger:   store,
		notifier: notifier,
		log:      log,
		userID:   userID,
	}
}

// Process runs one event through the pipeline. It returns true only when
// a transaction was persisted. A call arriving while a prior call is
// still in flight returns false immediately; the event is dropped.
func (p *Pipeline) Process(ctx context.Context, ev *domain.RawEvent) bool {
	if !p.busy.CompareAndSwap(false, true) {
		p.log.Warn().Msg("Process: pipeline busy, dropping event")
		return false
	}
	defer p.busy.Store(false)

	parsed, err := extract.Extract(ev)
	if err != nil {
		if errors.Is(err, domain.ErrUnrecognizedShape) || errors.Is(err, domain.ErrNoTransactionData) {
			p.log.Info().Err(err).Msg("Process: event rejected")
		} else {
			p.log.Error().Err(err).Msg("Process: extraction failed")
		}
		return false
	}

	tx, err := p.assemble(ctx, ev, parsed)
	if err != nil {
		p.log.Error().Err(err).Msg("Process: event failed")
		p.notifier.Failure(fmt.Sprintf("Could not record transaction: %v", err))
		return false
	}

	p.log.Info().
		Str("transaction_id", tx.TransactionID).
		Str("bank_account_id", tx.BankAccountID).
		Str("category_id", tx.CategoryID).
		Float64("amount", tx.Amount).
		Msg("Process: transaction persisted")
	p.notifier.Success(fmt.Sprintf("Recorded %s: %.2f", tx.Description, tx.Amount))
	return true
}

// assemble resolves the account and category for a parsed transaction
// and persists the canonical record. Any error here is fatal for the
// event: the raw source is not re-deliverable.
func (p *Pipeline) assemble(ctx context.Context, ev *domain.RawEvent, parsed *domain.ParsedTransaction) (*domain.CanonicalTransaction, error) {
	accounts, err := p.ledger.ListBankAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("assemble: listing bank accounts: %w", err)
	}
	if len(accounts) == 0 {
		return nil, domain.ErrNoAccountsAvailable
	}

	accountID := category.DetectBankAccount(extract.RawText(ev), accounts)
	if accountID == "" {
		accountID = accounts[0].ID
	}

	mapping := category.MapTransaction(parsed.Description, parsed.Merchant, parsed.Amount, parsed.Type)

	tx := &domain.CanonicalTransaction{
		TransactionID:   uuid.NewString(),
		BankAccountID:   accountID,
		CategoryID:      mapping.CategoryID,
		PersonID:        p.userID,
		TransactionDate: parsed.Date,
		Amount:          parsed.Amount,
		Type:            parsed.Type,
		Description:     mapping.Description,
		Merchant:        parsed.Merchant,
	}

	stored, err := p.ledger.CreateTransaction(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("assemble: persisting transaction: %w", err)
	}
	return stored, nil
}
