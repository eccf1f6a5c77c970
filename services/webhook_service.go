// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/kindworks-dev/kindworks/database/models"
	"github.com/kindworks-dev/kindworks/dtos"
)

type webhookDispatcher struct {
	client *http.Client
}

func NewWebhookDispatcher() *webhookDispatcher {
	return &webhookDispatcher{
		client: http.DefaultClient,
	}
}

// Retry delays between webhook attempts.
var webhookRetryDelays = []time.Duration{1 * time.Second, 5 * time.Second, 10 * time.Second}

func (d *webhookDispatcher) SendInviteeAdded(ctx context.Context, integration models.WebhookIntegration, payload dtos.InviteeWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 120*time.Second)
	defer cancel()

	var lastErr error
	for i, delay := range webhookRetryDelays {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, integration.URL, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		if integration.Secret != nil {
			req.Header.Set("X-Webhook-Secret", *integration.Secret)
		}

		resp, err := d.client.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			resp.Body.Close()
			return nil
		}
		if err != nil {
			lastErr = err
		} else {
			resp.Body.Close()
			lastErr = fmt.Errorf("webhook responded with status %s", resp.Status)
		}

		if i < len(webhookRetryDelays)-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return fmt.Errorf("webhook delivery failed: %w", lastErr)
}
