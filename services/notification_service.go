// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kindworks-dev/kindworks/config"
	"github.com/kindworks-dev/kindworks/dtos"
	"github.com/kindworks-dev/kindworks/monitoring"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type notificationService struct {
	apiKey      string
	host        string
	templateID  string
	fromAddress string
	fromName    string
}

func NewNotificationService(cfg config.Config) *notificationService {
	return &notificationService{
		apiKey:      cfg.SendgridAPIKey,
		host:        cfg.SendgridHost,
		templateID:  cfg.InvitationTemplateID,
		fromAddress: cfg.MailFromAddress,
		fromName:    cfg.MailFromName,
	}
}

// SendGroupInvitations issues a single mail-API call covering the whole
// batch, one personalization per recipient. The call is awaited - the caller
// only responds once the batch is handed off.
func (s *notificationService) SendGroupInvitations(ctx context.Context, envelopes []dtos.InvitationEnvelope) error {
	if len(envelopes) == 0 {
		return nil
	}

	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(s.fromName, s.fromAddress))
	message.SetTemplateID(s.templateID)

	for _, envelope := range envelopes {
		personalization := mail.NewPersonalization()
		personalization.AddTos(mail.NewEmail(envelope.Name, envelope.Email))
		personalization.DynamicTemplateData = envelope.Data.ToMap()
		message.AddPersonalizations(personalization)
	}

	request := sendgrid.GetRequest(s.apiKey, "/v3/mail/send", s.host)
	request.Method = "POST"
	request.Body = mail.GetRequestBody(message)

	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		return fmt.Errorf("could not send invitation batch: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("invitation batch rejected with status %d: %s", response.StatusCode, response.Body)
	}

	slog.Info("sent group invitation batch", "recipients", len(envelopes))
	monitoring.InvitationBatchesSent.Inc()
	return nil
}
