package domain

import "errors"

// Processing failure taxonomy. The first two are non-fatal per event; the
// pipeline logs them and reports the event as not persisted. The last one
// is fatal for the event because there is no destination for the funds.
var (
	// ErrUnrecognizedShape means the event matched none of the four
	// admissible RawEvent shapes.
	ErrUnrecognizedShape = errors.New("event matches no known transaction shape")

	// ErrNoTransactionData means the shape was recognized but the
	// extraction cascade was exhausted without a match.
	ErrNoTransactionData = errors.New("no transaction data found in event")

	// ErrNoAccountsAvailable means the ledger holds zero bank accounts,
	// so the transaction cannot be attributed anywhere.
	ErrNoAccountsAvailable = errors.New("no bank accounts available")
)
