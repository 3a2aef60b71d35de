package client

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// DefaultPollInterval is the fixed delay between task status checks.
const DefaultPollInterval = 1500 * time.Millisecond

// WithPollInterval overrides the polling delay. Non-positive values keep
// the current interval.
func (c *Client) WithPollInterval(d time.Duration) *Client {
	if d > 0 {
		c.pollInterval = d
	}
	return c
}

// WaitForTask polls the task at a fixed interval until it reaches a terminal
// status or ctx ends. onUpdate, if set, sees every observed state.
// Network failures and 5xx responses are logged and polled through; other
// API errors end the wait.
func (c *Client) WaitForTask(ctx context.Context, id uuid.UUID, onUpdate func(*Task)) (*Task, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		t, err := c.GetTask(ctx, id)
		switch {
		case err == nil:
			if onUpdate != nil {
				onUpdate(t)
			}
			if t.Status.IsTerminal() {
				return t, nil
			}
		case isTemporary(err):
			c.log.WarnContext(ctx, "poll task failed", slog.String("task_id", id.String()), slog.String("error", err.Error()))
		default:
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("wait for task %s: %w", id, ctx.Err())
		case <-ticker.C:
		}
	}
}
