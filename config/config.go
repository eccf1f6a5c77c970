// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// Build information. Populated at build-time via -ldflags.
var (
	Version   = "dev"
	Commit    = "none"
	Branch    = "unknown"
	BuildDate = "unknown"
)

type Config struct {
	Port string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	// WebsiteURL is rendered into invitation mails.
	WebsiteURL string

	// PartnerOrgID identifies the single organization whose invitees are
	// mirrored to partner webhooks. uuid.Nil disables the integration.
	PartnerOrgID uuid.UUID

	SendgridAPIKey       string
	SendgridHost         string
	InvitationTemplateID string
	MailFromAddress      string
	MailFromName         string
}

func FromEnv() Config {
	cfg := Config{
		Port:                 getEnv("PORT", "8080"),
		PostgresHost:         getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:         getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:         os.Getenv("POSTGRES_USER"),
		PostgresPassword:     os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:           os.Getenv("POSTGRES_DB"),
		WebsiteURL:           getEnv("WEBSITE_URL", "https://app.kindworks.dev"),
		SendgridAPIKey:       os.Getenv("SENDGRID_API_KEY"),
		SendgridHost:         getEnv("SENDGRID_HOST", "https://api.sendgrid.com"),
		InvitationTemplateID: os.Getenv("GROUP_INVITATION_TEMPLATE_ID"),
		MailFromAddress:      getEnv("MAIL_FROM_ADDRESS", "no-reply@kindworks.dev"),
		MailFromName:         getEnv("MAIL_FROM_NAME", "Kindworks"),
	}

	if raw := os.Getenv("PARTNER_ORG_ID"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			slog.Warn("invalid PARTNER_ORG_ID, partner webhooks disabled", "value", raw)
		} else {
			cfg.PartnerOrgID = id
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
