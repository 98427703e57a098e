package store

import (
	"context"
	"encoding/json"
	"fmt"

	"dinetable-server/internal/observability"

	"github.com/jackc/pgx/v5"
)

// Listener delivers page events over a dedicated LISTEN connection.
// Notifications only arrive on the connection that issued LISTEN, so this
// holds its own pgx.Conn instead of borrowing from the sqlx pool.
type Listener struct {
	conn   *pgx.Conn
	logger *observability.Logger
}

// NewListener connects and subscribes to the page-events channel
func NewListener(ctx context.Context, connectionString string, logger *observability.Logger) (*Listener, error) {
	conn, err := pgx.Connect(ctx, connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect listener: %w", err)
	}

	if _, err := conn.Exec(ctx, "LISTEN "+PageEventsChannel); err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("failed to listen on %s: %w", PageEventsChannel, err)
	}

	return &Listener{conn: conn, logger: logger}, nil
}

// Run blocks delivering events to the channel until the context is cancelled
// or the connection fails. Malformed payloads are logged and skipped.
func (l *Listener) Run(ctx context.Context, events chan<- PageEvent) error {
	for {
		notification, err := l.conn.WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("failed waiting for notification: %w", err)
		}

		var event PageEvent
		if err := json.Unmarshal([]byte(notification.Payload), &event); err != nil {
			l.logger.Error(ctx, "failed to decode page event payload", err)
			continue
		}

		select {
		case events <- event:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close tears down the listener connection
func (l *Listener) Close(ctx context.Context) error {
	return l.conn.Close(ctx)
}
