// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/kindworks-dev/kindworks/config"
	"github.com/kindworks-dev/kindworks/database/models"
	"github.com/kindworks-dev/kindworks/dtos"
	"github.com/kindworks-dev/kindworks/monitoring"
	"github.com/kindworks-dev/kindworks/shared"
	"github.com/kindworks-dev/kindworks/utils"
	"gorm.io/gorm"
)

type registrationService struct {
	groupRepository        shared.GroupRepository
	projectRepository      shared.ProjectRepository
	inviteeRepository      shared.InviteeRepository
	registrantRepository   shared.RegistrantRepository
	managerRepository      shared.ManagerRepository
	webhookRepository      shared.WebhookIntegrationRepository
	notificationDispatcher shared.NotificationDispatcher
	webhookDispatcher      shared.WebhookDispatcher
	cfg                    config.Config
}

func NewRegistrationService(
	groupRepository shared.GroupRepository,
	projectRepository shared.ProjectRepository,
	inviteeRepository shared.InviteeRepository,
	registrantRepository shared.RegistrantRepository,
	managerRepository shared.ManagerRepository,
	webhookRepository shared.WebhookIntegrationRepository,
	notificationDispatcher shared.NotificationDispatcher,
	webhookDispatcher shared.WebhookDispatcher,
	cfg config.Config,
) *registrationService {
	return &registrationService{
		groupRepository:        groupRepository,
		projectRepository:      projectRepository,
		inviteeRepository:      inviteeRepository,
		registrantRepository:   registrantRepository,
		managerRepository:      managerRepository,
		webhookRepository:      webhookRepository,
		notificationDispatcher: notificationDispatcher,
		webhookDispatcher:      webhookDispatcher,
		cfg:                    cfg,
	}
}

// ProcessRoster runs the per-row dedup and persistence pass over already
// validated roster rows and finalizes the slot counters and the notification
// batch. Rows that match an existing invitee or registrant, carry no name or
// fail to persist are counted out silently - only the tagged outcome records
// them.
func (s *registrationService) ProcessRoster(ctx context.Context, group models.Group, project models.Project, rows []dtos.RosterRow, source CapacitySource) (dtos.BulkUploadResult, error) {
	result := dtos.BulkUploadResult{Outcomes: make([]dtos.RowOutcome, 0, len(rows))}

	manager, err := s.managerRepository.ReadWithOrganization(project.ManagerID)
	if err != nil {
		return result, fmt.Errorf("could not read project manager: %w", err)
	}
	org := manager.Organization

	integrations := s.partnerIntegrations(org)

	envelopes := make([]dtos.InvitationEnvelope, 0, len(rows))
	for _, row := range rows {
		outcome, invitee, err := s.processRow(group, row)
		if err != nil {
			return result, err
		}
		result.Outcomes = append(result.Outcomes, dtos.RowOutcome{Line: row.Line, Kind: outcome})
		monitoring.RosterRowsProcessed.WithLabelValues(string(outcome)).Inc()
		if outcome != dtos.RowOutcomeAccepted {
			continue
		}

		result.Accepted++
		if invitee.Email != nil {
			envelopes = append(envelopes, s.buildEnvelope(*invitee, group, project, org))
		}
		for _, integration := range integrations {
			if err := s.webhookDispatcher.SendInviteeAdded(ctx, integration, dtos.InviteeWebhookPayload{
				FirstName:      invitee.FirstName,
				LastName:       invitee.LastName,
				Email:          utils.SafeDereference(invitee.Email),
				IsMinor:        invitee.IsMinor,
				PartnerGroupID: group.ID,
				InvitationID:   invitee.ID,
				ProjectID:      project.ID,
				Method:         dtos.WebhookOperationAddInviteeInGroup,
			}); err != nil {
				slog.Error("could not deliver invitee webhook", "integrationID", integration.ID, "inviteeID", invitee.ID, "err", err)
				monitoring.WebhookDeliveryFailures.Inc()
			}
		}
	}

	if result.Accepted == 0 {
		return result, nil
	}

	if err := s.groupRepository.IncrementInviteeCount(nil, group.ID, result.Accepted); err != nil {
		return result, fmt.Errorf("could not update group invitee count: %w", err)
	}

	if source == CapacitySourceProject {
		err = s.projectRepository.ConsumeOpenSlots(nil, project.ID, result.Accepted)
	} else {
		err = s.groupRepository.ConsumeOpenSlots(nil, group.ID, result.Accepted)
	}
	if err != nil {
		return result, fmt.Errorf("could not consume open slots: %w", err)
	}

	if err := s.notificationDispatcher.SendGroupInvitations(ctx, envelopes); err != nil {
		return result, fmt.Errorf("could not send invitation batch: %w", err)
	}

	return result, nil
}

func (s *registrationService) processRow(group models.Group, row dtos.RosterRow) (dtos.RowOutcomeKind, *models.Invitee, error) {
	if row.FirstName == "" || row.LastName == "" {
		return dtos.RowOutcomeSkippedBlankName, nil, nil
	}

	email := row.Email
	if email != "" && shared.V.Var(email, "email") == nil {
		duplicate, err := s.rowIsDuplicate(group.ID, row.FirstName, row.LastName, email)
		if err != nil {
			return "", nil, err
		}
		if duplicate {
			return dtos.RowOutcomeSkippedDuplicate, nil, nil
		}
	} else {
		// invalid addresses are dropped, the invitee is still created
		email = ""
	}

	invitee := models.Invitee{
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Email:     utils.EmptyThenNil(email),
		IsMinor:   row.IsMinor,
		GroupID:   group.ID,
	}
	if err := s.inviteeRepository.Create(nil, &invitee); err != nil {
		slog.Error("could not persist invitee", "line", row.Line, "groupID", group.ID, "err", err)
		return dtos.RowOutcomeSkippedPersistFailure, nil, nil
	}

	return dtos.RowOutcomeAccepted, &invitee, nil
}

func (s *registrationService) rowIsDuplicate(groupID uuid.UUID, firstName, lastName, email string) (bool, error) {
	_, err := s.inviteeRepository.FindDuplicate(groupID, firstName, lastName, email)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("could not check for duplicate invitee: %w", err)
	}

	_, err = s.registrantRepository.FindDuplicate(groupID, firstName, lastName, email)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("could not check for duplicate registrant: %w", err)
	}

	return false, nil
}

func (s *registrationService) buildEnvelope(invitee models.Invitee, group models.Group, project models.Project, org models.Organization) dtos.InvitationEnvelope {
	greeting := "Hello,"
	if invitee.FirstName != "" {
		greeting = "Hi " + invitee.FirstName + ","
	}

	var leaderName string
	if group.Leader != nil {
		leaderName = group.Leader.FirstName
	}

	return dtos.InvitationEnvelope{
		Email: utils.SafeDereference(invitee.Email),
		Name:  invitee.FirstName,
		Data: dtos.InvitationTemplateData{
			Username:         greeting,
			Date:             project.StartsAt.Format("Monday, Jan 02"),
			Time:             project.StartsAt.Format("03:04 PM"),
			ProjectName:      project.Name,
			WebsiteURL:       s.cfg.WebsiteURL,
			OrganizationName: org.Name,
			ProjectAddress:   project.Address,
			GroupLeaderName:  leaderName,
			GroupName:        group.Name,
			Task:             project.Task,
		},
	}
}

// partnerIntegrations returns the webhook targets for the owning
// organization, or none if it is not the recognized partner.
func (s *registrationService) partnerIntegrations(org models.Organization) []models.WebhookIntegration {
	if !org.IsPartner || org.ID != s.cfg.PartnerOrgID || s.cfg.PartnerOrgID == uuid.Nil {
		return nil
	}

	integrations, err := s.webhookRepository.FindByOrgID(org.ID)
	if err != nil {
		slog.Error("could not load partner webhook integrations", "orgID", org.ID, "err", err)
		return nil
	}
	return integrations
}
