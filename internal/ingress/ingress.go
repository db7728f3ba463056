// Package ingress adapts external event sources (SMS content, system
// notifications) to the processing pipeline. Adapters apply a cheap
// keyword pre-filter before handing text over; the filter is advisory -
// the pipeline stays correct even when it is skipped.
package ingress

import (
	"context"
	"strings"

	"github.com/dvloznov/sms-ledger/internal/domain"
)

// Handler receives one raw event and reports whether it was persisted.
type Handler func(ctx context.Context, ev *domain.RawEvent) bool

// Source is an event source feeding the pipeline. Start begins consuming
// and returns immediately; Stop drains in-flight work and waits for the
// consumer loop to exit.
type Source interface {
	Start(ctx context.Context, handler Handler) error
	Stop(ctx context.Context) error
}

// transactionKeywords is the pre-filter allowlist. A message mentioning
// none of these is very unlikely to describe a transaction, so the
// adapter drops it before it reaches the pipeline.
var transactionKeywords = []string{
	"debited",
	"credited",
	"spent",
	"received",
	"upi",
	"hdfc",
	"icici",
	"sbi",
	"axis",
	"kotak",
	"baroda",
	"federal",
	"inr",
	"rs.",
	"balance",
}

// LooksLikeTransaction reports whether text mentions at least one
// transaction keyword.
func LooksLikeTransaction(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range transactionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
