package pipeline

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dvloznov/sms-ledger/internal/domain"
	"github.com/dvloznov/sms-ledger/internal/ledger/inmemory"
	"github.com/dvloznov/sms-ledger/internal/logger"
)

// mockLedger lets tests control persistence behavior and count calls.
type mockLedger struct {
	accounts    []*domain.BankAccount
	createErr   error
	createCalls atomic.Int64
	listCalls   atomic.Int64

	// block, when non-nil, is closed by the test to release an
	// in-flight CreateTransaction call.
	block chan struct{}
}

func (m *mockLedger) CreateTransaction(ctx context.Context, tx *domain.CanonicalTransaction) (*domain.CanonicalTransaction, error) {
	m.createCalls.Add(1)
	if m.block != nil {
		<-m.block
	}
	if m.createErr != nil {
		return nil, m.createErr
	}
	return tx, nil
}

func (m *mockLedger) ListBankAccounts(ctx context.Context) ([]*domain.BankAccount, error) {
	m.listCalls.Add(1)
	return m.accounts, nil
}

func (m *mockLedger) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return nil, nil
}

func (m *mockLedger) QueryTransactionsByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.CanonicalTransaction, error) {
	return nil, nil
}

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	failures  []string
}

func (n *recordingNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Failure(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failures = append(n.failures, message)
}

func newTestPipeline(store *mockLedger) (*Pipeline, *recordingNotifier) {
	notifier := &recordingNotifier{}
	log := logger.New()
	return New(store, notifier, log, "test-user"), notifier
}

func smsEvent(body string) *domain.RawEvent {
	return &domain.RawEvent{Body: body}
}

func TestProcess_PersistsRecognizedMessage(t *testing.T) {
	store := &mockLedger{
		accounts: []*domain.BankAccount{
			{ID: "acct-1", Name: "Primary", Bank: "hdfc"},
		},
	}
	p, notifier := newTestPipeline(store)

	ok := p.Process(context.Background(), smsEvent(
		"INR 500.00 spent on Starbucks on 2024-01-15. Your current balance is INR 15,000.00"))
	if !ok {
		t.Fatal("expected process to succeed")
	}
	if got := store.createCalls.Load(); got != 1 {
		t.Errorf("expected 1 create call, got %d", got)
	}
	if len(notifier.successes) != 1 {
		t.Errorf("expected 1 success notification, got %d", len(notifier.successes))
	}
}

func TestProcess_RejectsPlainText(t *testing.T) {
	store := &mockLedger{
		accounts: []*domain.BankAccount{{ID: "acct-1"}},
	}
	p, notifier := newTestPipeline(store)

	ok := p.Process(context.Background(), smsEvent(
		"This is just a regular message without transaction data"))
	if ok {
		t.Fatal("expected process to reject")
	}
	if got := store.listCalls.Load(); got != 0 {
		t.Errorf("expected no account lookup for rejected event, got %d", got)
	}
	if got := store.createCalls.Load(); got != 0 {
		t.Errorf("expected no create call for rejected event, got %d", got)
	}
	if len(notifier.failures) != 0 {
		t.Errorf("rejection must not surface a failure notification, got %d", len(notifier.failures))
	}
}

func TestProcess_FailsWithoutAccounts(t *testing.T) {
	store := &mockLedger{}
	p, notifier := newTestPipeline(store)

	ok := p.Process(context.Background(), smsEvent(
		"INR 500.00 spent on Starbucks on 2024-01-15."))
	if ok {
		t.Fatal("expected process to fail with zero accounts")
	}
	if got := store.createCalls.Load(); got != 0 {
		t.Errorf("expected no create call, got %d", got)
	}
	if len(notifier.failures) != 1 {
		t.Errorf("expected 1 failure notification, got %d", len(notifier.failures))
	}
}

func TestProcess_FailsOnPersistenceError(t *testing.T) {
	store := &mockLedger{
		accounts:  []*domain.BankAccount{{ID: "acct-1"}},
		createErr: context.DeadlineExceeded,
	}
	p, notifier := newTestPipeline(store)

	ok := p.Process(context.Background(), smsEvent(
		"INR 500.00 spent on Starbucks on 2024-01-15."))
	if ok {
		t.Fatal("expected process to fail when persistence fails")
	}
	if len(notifier.failures) != 1 {
		t.Errorf("expected 1 failure notification, got %d", len(notifier.failures))
	}
}

func TestProcess_DropsConcurrentEvent(t *testing.T) {
	store := &mockLedger{
		accounts: []*domain.BankAccount{{ID: "acct-1"}},
		block:    make(chan struct{}),
	}
	p, _ := newTestPipeline(store)

	firstDone := make(chan bool, 1)
	go func() {
		firstDone <- p.Process(context.Background(), smsEvent(
			"INR 500.00 spent on Starbucks on 2024-01-15."))
	}()

	// Wait for the first call to reach the blocking create.
	deadline := time.After(2 * time.Second)
	for store.createCalls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("first process call never reached the ledger")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	if ok := p.Process(context.Background(), smsEvent(
		"INR 500.00 spent on Starbucks on 2024-01-15.")); ok {
		t.Fatal("expected concurrent call to be dropped")
	}
	if got := store.createCalls.Load(); got != 1 {
		t.Errorf("dropped event must not reach the ledger, got %d create calls", got)
	}

	close(store.block)
	if ok := <-firstDone; !ok {
		t.Fatal("expected first call to succeed after release")
	}

	// Guard must be released: a fresh call goes through.
	if ok := p.Process(context.Background(), smsEvent(
		"INR 500.00 spent on Starbucks on 2024-01-15.")); !ok {
		t.Fatal("expected pipeline to accept events after the first completed")
	}
}

func TestProcess_GuardReleasedAfterFailure(t *testing.T) {
	store := &mockLedger{}
	p, _ := newTestPipeline(store)

	if ok := p.Process(context.Background(), smsEvent(
		"INR 500.00 spent on Starbucks on 2024-01-15.")); ok {
		t.Fatal("expected failure with zero accounts")
	}

	store.accounts = []*domain.BankAccount{{ID: "acct-1"}}
	if ok := p.Process(context.Background(), smsEvent(
		"INR 500.00 spent on Starbucks on 2024-01-15.")); !ok {
		t.Fatal("expected guard to be released after a failed event")
	}
}

func TestProcess_EndToEndWithInMemoryLedger(t *testing.T) {
	store := inmemory.NewSeededStore()
	notifier := &recordingNotifier{}
	p := New(store, notifier, logger.New(), "test-user")
	ctx := context.Background()

	ok := p.Process(ctx, smsEvent(
		"You have received INR 2000.00 from John Doe. Your account balance is now INR 17,000.00"))
	if !ok {
		t.Fatal("expected income message to persist")
	}

	now := time.Now().UTC()
	txs, err := store.QueryTransactionsByDateRange(ctx, now.AddDate(0, 0, -1), now.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("QueryTransactionsByDateRange: %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("expected 1 persisted transaction, got %d", len(txs))
	}
	if txs[0].Amount <= 0 {
		t.Errorf("expected positive amount for income, got %v", txs[0].Amount)
	}
	if txs[0].Type != domain.TxIncome {
		t.Errorf("expected income type, got %s", txs[0].Type)
	}
}
