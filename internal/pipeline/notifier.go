package pipeline

import "github.com/rs/zerolog"

// Notifier surfaces per-event outcomes to the user. Implementations are
// expected to be transient (a toast, a log line) - the pipeline keeps no
// record of failures beyond the notification.
type Notifier interface {
	Success(message string)
	Failure(message string)
}

// LogNotifier reports outcomes through the structured logger. It is the
// default notifier for the server and CLI binaries.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier creates a notifier that writes to the given logger.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Success(message string) {
	n.log.Info().Str("outcome", "success").Msg(message)
}

func (n *LogNotifier) Failure(message string) {
	n.log.Error().Str("outcome", "failure").Msg(message)
}

var _ Notifier = (*LogNotifier)(nil)
