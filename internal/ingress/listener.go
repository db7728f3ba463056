package ingress

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/dvloznov/sms-ledger/internal/domain"
)

// Listener is a channel-fed source. It wraps incoming text in the raw
// event shape configured at construction, filters out text that cannot
// describe a transaction, and forwards the rest to the handler. It is
// suitable for single-instance deployments and testing.
type Listener struct {
	name      string
	wrap      func(text string) *domain.RawEvent
	textChan  chan string
	closeChan chan struct{}
	wg        sync.WaitGroup
	mu        sync.RWMutex
	log       zerolog.Logger
	closed    bool
}

// NewSMSListener creates a listener that treats incoming text as SMS
// bodies.
func NewSMSListener(bufferSize int, log zerolog.Logger) *Listener {
	return newListener("sms", bufferSize, log, func(text string) *domain.RawEvent {
		return &domain.RawEvent{Message: &domain.TextMessage{Body: text}}
	})
}

// NewNotificationListener creates a listener that treats incoming text
// as system-notification bodies.
func NewNotificationListener(bufferSize int, log zerolog.Logger) *Listener {
	return newListener("notification", bufferSize, log, func(text string) *domain.RawEvent {
		return &domain.RawEvent{Body: text}
	})
}

func newListener(name string, bufferSize int, log zerolog.Logger, wrap func(string) *domain.RawEvent) *Listener {
	return &Listener{
		name:      name,
		wrap:      wrap,
		textChan:  make(chan string, bufferSize),
		closeChan: make(chan struct{}),
		log:       log,
	}
}

// Submit offers one text to the listener. It blocks when the buffer is
// full and fails once the listener is stopped.
func (l *Listener) Submit(ctx context.Context, text string) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return fmt.Errorf("Submit: listener is closed")
	}

	select {
	case l.textChan <- text:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.closeChan:
		return fmt.Errorf("Submit: listener is closed")
	}
}

// Start implements the Source interface. A single consumer goroutine
// preserves the pipeline's serial processing order.
func (l *Listener) Start(ctx context.Context, handler Handler) error {
	l.mu.RLock()
	if l.closed {
		l.mu.RUnlock()
		return fmt.Errorf("Start: listener is closed")
	}
	l.mu.RUnlock()

	l.wg.Add(1)
	go l.consume(ctx, handler)
	return nil
}

func (l *Listener) consume(ctx context.Context, handler Handler) {
	defer l.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.closeChan:
			return
		case text := <-l.textChan:
			if !LooksLikeTransaction(text) {
				l.log.Debug().Str("source", l.name).Msg("consume: dropping non-transaction text")
				continue
			}
			persisted := handler(ctx, l.wrap(text))
			l.log.Debug().
				Str("source", l.name).
				Bool("persisted", persisted).
				Msg("consume: event handled")
		}
	}
}

// Stop implements the Source interface. It stops accepting submissions
// and waits for the consumer loop to exit.
func (l *Listener) Stop(ctx context.Context) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	close(l.closeChan)
	l.mu.Unlock()

	done := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var _ Source = (*Listener)(nil)
