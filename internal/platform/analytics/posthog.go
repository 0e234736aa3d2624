// Package analytics forwards API usage events to PostHog when a key is configured.
package analytics

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

const defaultEndpoint = "https://eu.i.posthog.com"

// Client wraps posthog.Client and becomes a no-op when no API key is configured.
type Client struct {
	posthogClient posthog.Client
	logger        *slog.Logger
}

// NewClient returns a Client. An empty apiKey yields a disabled client.
func NewClient(apiKey string, logger *slog.Logger) *Client {
	if apiKey == "" {
		logger.Warn("Posthog API key is empty, analytics disabled")
		return &Client{logger: logger}
	}
	c, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: defaultEndpoint})
	if err != nil {
		logger.Error("Failed to initialize posthog client, analytics disabled", slog.String("error", err.Error()))
		return &Client{logger: logger}
	}
	logger.Info("Posthog client initialized")
	return &Client{posthogClient: c, logger: logger}
}

// IsInitialized reports whether events are actually sent.
func (c *Client) IsInitialized() bool {
	return c != nil && c.posthogClient != nil
}

// Enqueue queues one capture event.
func (c *Client) Enqueue(distinctID string, event string, properties map[string]any) {
	if !c.IsInitialized() {
		return
	}
	c.logger.Debug("Enqueueing event", slog.String("distinct_id", distinctID), slog.String("event", event))
	props := posthog.NewProperties()
	for k, v := range properties {
		props.Set(k, v)
	}
	if err := c.posthogClient.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: props,
	}); err != nil {
		c.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes pending events.
func (c *Client) Close() {
	if !c.IsInitialized() {
		return
	}
	if err := c.posthogClient.Close(); err != nil {
		c.logger.Warn("Failed to close posthog client", slog.String("error", err.Error()))
	}
}
