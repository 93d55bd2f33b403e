package notify

import (
	"context"
	"log/slog"

	"rental-core/internal/usecase/commands"

	"github.com/google/uuid"
)

// LogNotifier emits notifications as structured log records. It stands in
// for a real delivery channel and honors the fire-and-forget contract: it
// never fails the caller.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) commands.Notifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, recipientID uuid.UUID, event string, payload map[string]any) {
	args := make([]any, 0, 2*(len(payload)+2))
	args = append(args, "recipient_id", recipientID.String(), "event", event)
	for k, v := range payload {
		args = append(args, k, v)
	}
	n.logger.InfoContext(ctx, "notification dispatched", args...)
}
