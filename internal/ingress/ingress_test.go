package ingress

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dvloznov/sms-ledger/internal/domain"
	"github.com/dvloznov/sms-ledger/internal/logger"
)

func TestLooksLikeTransaction(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "debit message",
			text: "Your A/C XX1234 debited by Rs.500",
			want: true,
		},
		{
			name: "upi mention",
			text: "Payment via UPI successful",
			want: true,
		},
		{
			name: "balance mention",
			text: "Your balance is low",
			want: true,
		},
		{
			name: "plain conversation",
			text: "See you at dinner tonight",
			want: false,
		},
		{
			name: "empty",
			text: "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooksLikeTransaction(tt.text); got != tt.want {
				t.Errorf("LooksLikeTransaction(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestListener_ForwardsTransactionText(t *testing.T) {
	l := NewSMSListener(4, logger.New())
	ctx := context.Background()

	var handled atomic.Int64
	events := make(chan *domain.RawEvent, 4)
	handler := func(ctx context.Context, ev *domain.RawEvent) bool {
		handled.Add(1)
		events <- ev
		return true
	}

	if err := l.Start(ctx, handler); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := l.Submit(ctx, "INR 500.00 spent on Starbucks"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := l.Submit(ctx, "lunch tomorrow?"); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	select {
	case ev := <-events:
		if ev.Message == nil || ev.Message.Body == "" {
			t.Error("expected SMS event with message body")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler never received the transaction text")
	}

	if err := l.Stop(ctx); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	if got := handled.Load(); got != 1 {
		t.Errorf("expected 1 handled event (non-transaction text filtered), got %d", got)
	}
}

func TestListener_NotificationShape(t *testing.T) {
	l := NewNotificationListener(1, logger.New())
	ctx := context.Background()

	events := make(chan *domain.RawEvent, 1)
	handler := func(ctx context.Context, ev *domain.RawEvent) bool {
		events <- ev
		return true
	}

	if err := l.Start(ctx, handler); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := l.Submit(ctx, "Rs.200 debited from your account"); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	select {
	case ev := <-events:
		if ev.Body == "" || ev.Message != nil {
			t.Error("expected bare-body notification event")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler never received the notification text")
	}

	if err := l.Stop(ctx); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}

func TestListener_SubmitAfterStop(t *testing.T) {
	l := NewSMSListener(1, logger.New())
	ctx := context.Background()

	if err := l.Stop(ctx); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := l.Submit(ctx, "Rs.100 debited"); err == nil {
		t.Fatal("expected error submitting to a stopped listener")
	}
	// Stop is idempotent.
	if err := l.Stop(ctx); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
}
