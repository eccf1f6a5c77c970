// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package shared

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/kindworks-dev/kindworks/database/models"
	"github.com/kindworks-dev/kindworks/dtos"
)

// ErrInsufficientSlots is returned by the guarded slot decrements when the
// remaining open slots no longer cover the requested amount.
var ErrInsufficientSlots = errors.New("not enough open slots")

type GroupRepository interface {
	// FindByIDAndUniqueCode reads a non-deleted group and its leader.
	FindByIDAndUniqueCode(id uuid.UUID, uniqueCode string) (models.Group, error)
	IncrementInviteeCount(tx DB, id uuid.UUID, count int) error
	// ConsumeOpenSlots atomically decrements the group's open slots, failing
	// with ErrInsufficientSlots instead of going negative.
	ConsumeOpenSlots(tx DB, id uuid.UUID, count int) error
	Save(tx DB, group *models.Group) error
}

type ProjectRepository interface {
	Read(id uuid.UUID) (models.Project, error)
	// ConsumeOpenSlots atomically moves count slots from the project's open
	// pool into its registered count, failing with ErrInsufficientSlots
	// instead of going negative.
	ConsumeOpenSlots(tx DB, id uuid.UUID, count int) error
	Save(tx DB, project *models.Project) error
}

type InviteeRepository interface {
	Create(tx DB, invitee *models.Invitee) error
	// FindDuplicate matches on group, case- and whitespace-insensitive names
	// and the exact email address.
	FindDuplicate(groupID uuid.UUID, firstName, lastName, email string) (models.Invitee, error)
}

type RegistrantRepository interface {
	// FindDuplicate matches registered users on group, normalized names and
	// either of the user's auth addresses.
	FindDuplicate(groupID uuid.UUID, firstName, lastName, email string) (models.Registrant, error)
}

type ManagerRepository interface {
	ReadWithOrganization(id uuid.UUID) (models.Manager, error)
}

type OrganizationRepository interface {
	Read(id uuid.UUID) (models.Organization, error)
}

type WebhookIntegrationRepository interface {
	Read(id uuid.UUID) (models.WebhookIntegration, error)
	FindByOrgID(orgID uuid.UUID) ([]models.WebhookIntegration, error)
	Save(tx DB, integration *models.WebhookIntegration) error
	Delete(tx DB, id uuid.UUID) error
}

// NotificationDispatcher sends one batched group-invitation mail covering all
// envelopes. An empty batch is a no-op.
type NotificationDispatcher interface {
	SendGroupInvitations(ctx context.Context, envelopes []dtos.InvitationEnvelope) error
}

type WebhookDispatcher interface {
	SendInviteeAdded(ctx context.Context, integration models.WebhookIntegration, payload dtos.InviteeWebhookPayload) error
}

// RosterParser validates an uploaded workbook and extracts its data rows.
type RosterParser interface {
	Parse(r io.Reader) ([]dtos.RosterRow, error)
}
