// Package notify delivers completion events to external collaborators.
// Delivery is best-effort: the engine logs failures and moves on.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/pulsemed/worklist/internal/domain"
)

// Webhook posts completion events as JSON to a configured URL.
type Webhook struct {
	client *http.Client
	logger *slog.Logger
	url    string
}

// Ensure implementations satisfy domain.Notifier.
var (
	_ domain.Notifier = (*Webhook)(nil)
	_ domain.Notifier = (*LogNotifier)(nil)
)

// NewWebhook creates a Webhook notifier for the given URL.
func NewWebhook(url string, logger *slog.Logger) *Webhook {
	return &Webhook{
		url:    url,
		logger: logger,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// NotifyCompletion posts the event to the webhook URL.
func (w *Webhook) NotifyCompletion(ctx context.Context, event domain.CompletionEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal completion event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("post completion event: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification endpoint returned %s", resp.Status)
	}

	w.logger.Debug("completion event delivered",
		"task_id", event.TaskID,
		"reference", event.ReferenceCode,
	)
	return nil
}

// LogNotifier records completion events on the process log.
// Used when no webhook URL is configured.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// NotifyCompletion logs the event.
func (n *LogNotifier) NotifyCompletion(_ context.Context, event domain.CompletionEvent) error {
	n.logger.Info("task completed",
		"task_id", event.TaskID,
		"reference", event.ReferenceCode,
		"patient_ref", event.PatientRef,
		"completed_by", event.CompletedBy,
		"abnormal", event.Abnormal,
	)
	return nil
}
