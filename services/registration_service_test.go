// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kindworks-dev/kindworks/config"
	"github.com/kindworks-dev/kindworks/database/models"
	"github.com/kindworks-dev/kindworks/dtos"
	"github.com/kindworks-dev/kindworks/mocks"
	"github.com/kindworks-dev/kindworks/services"
	"github.com/kindworks-dev/kindworks/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type registrationFixture struct {
	groupRepository        *mocks.GroupRepository
	projectRepository      *mocks.ProjectRepository
	inviteeRepository      *mocks.InviteeRepository
	registrantRepository   *mocks.RegistrantRepository
	managerRepository      *mocks.ManagerRepository
	webhookRepository      *mocks.WebhookIntegrationRepository
	notificationDispatcher *mocks.NotificationDispatcher
	webhookDispatcher      *mocks.WebhookDispatcher

	group   models.Group
	project models.Project
}

func newRegistrationFixture(t *testing.T) *registrationFixture {
	f := &registrationFixture{
		groupRepository:        mocks.NewGroupRepository(t),
		projectRepository:      mocks.NewProjectRepository(t),
		inviteeRepository:      mocks.NewInviteeRepository(t),
		registrantRepository:   mocks.NewRegistrantRepository(t),
		managerRepository:      mocks.NewManagerRepository(t),
		webhookRepository:      mocks.NewWebhookIntegrationRepository(t),
		notificationDispatcher: mocks.NewNotificationDispatcher(t),
		webhookDispatcher:      mocks.NewWebhookDispatcher(t),
	}

	leader := &models.User{FirstName: "Lena", LastName: "Leader"}
	f.group = models.Group{
		Model:         models.Model{ID: uuid.New()},
		Name:          "Morning Crew",
		UniqueCode:    "crew-4711",
		OpenUserSlots: 10,
		Leader:        leader,
	}
	f.project = models.Project{
		Model:      models.Model{ID: uuid.New()},
		Name:       "River Cleanup",
		State:      models.ProjectStateActive,
		StartsAt:   time.Date(2025, 7, 5, 9, 30, 0, 0, time.UTC),
		FinishesAt: time.Date(2025, 7, 5, 14, 0, 0, 0, time.UTC),
		Address:    "Riverbank 1",
		Task:       "Collect litter along the shore",
		ManagerID:  uuid.New(),
	}
	f.group.ProjectID = f.project.ID

	return f
}

type rosterProcessor interface {
	ProcessRoster(ctx context.Context, group models.Group, project models.Project, rows []dtos.RosterRow, source services.CapacitySource) (dtos.BulkUploadResult, error)
}

func (f *registrationFixture) build(cfg config.Config) rosterProcessor {
	return services.NewRegistrationService(
		f.groupRepository,
		f.projectRepository,
		f.inviteeRepository,
		f.registrantRepository,
		f.managerRepository,
		f.webhookRepository,
		f.notificationDispatcher,
		f.webhookDispatcher,
		cfg,
	)
}

func (f *registrationFixture) expectManager(org models.Organization) {
	f.managerRepository.On("ReadWithOrganization", f.project.ManagerID).Return(models.Manager{
		Model:          models.Model{ID: f.project.ManagerID},
		FirstName:      "Mara",
		OrganizationID: org.ID,
		Organization:   org,
	}, nil)
}

func (f *registrationFixture) expectNoDuplicate(row dtos.RosterRow) {
	f.inviteeRepository.On("FindDuplicate", f.group.ID, row.FirstName, row.LastName, row.Email).Return(models.Invitee{}, gorm.ErrRecordNotFound)
	f.registrantRepository.On("FindDuplicate", f.group.ID, row.FirstName, row.LastName, row.Email).Return(models.Registrant{}, gorm.ErrRecordNotFound)
}

func TestProcessRoster(t *testing.T) {
	org := models.Organization{Model: models.Model{ID: uuid.New()}, Name: "Kind Works e.V."}

	t.Run("accepts valid rows and finalizes group counters", func(t *testing.T) {
		f := newRegistrationFixture(t)
		f.expectManager(org)

		rows := []dtos.RosterRow{
			{Line: 2, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.org"},
			{Line: 3, FirstName: "Grace", LastName: "Hopper", Email: "grace@example.org", IsMinor: true},
			{Line: 4, FirstName: "Alan", LastName: "Turing", Email: "alan@example.org"},
		}
		for _, row := range rows {
			f.expectNoDuplicate(row)
		}
		f.inviteeRepository.On("Create", mock.Anything, mock.AnythingOfType("*models.Invitee")).Return(nil).Times(3)
		f.groupRepository.On("IncrementInviteeCount", mock.Anything, f.group.ID, 3).Return(nil)
		f.groupRepository.On("ConsumeOpenSlots", mock.Anything, f.group.ID, 3).Return(nil)

		var envelopes []dtos.InvitationEnvelope
		f.notificationDispatcher.On("SendGroupInvitations", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			envelopes = args.Get(1).([]dtos.InvitationEnvelope)
		}).Return(nil)

		result, err := f.build(config.Config{WebsiteURL: "https://kindworks.example"}).ProcessRoster(context.Background(), f.group, f.project, rows, services.CapacitySourceGroup)

		assert.NoError(t, err)
		assert.Equal(t, 3, result.Accepted)
		assert.Len(t, result.Outcomes, 3)
		for _, outcome := range result.Outcomes {
			assert.Equal(t, dtos.RowOutcomeAccepted, outcome.Kind)
		}

		assert.Len(t, envelopes, 3)
		assert.Equal(t, "ada@example.org", envelopes[0].Email)
		assert.Equal(t, "Hi Ada,", envelopes[0].Data.Username)
		assert.Equal(t, "Saturday, Jul 05", envelopes[0].Data.Date)
		assert.Equal(t, "09:30 AM", envelopes[0].Data.Time)
		assert.Equal(t, "River Cleanup", envelopes[0].Data.ProjectName)
		assert.Equal(t, "Lena", envelopes[0].Data.GroupLeaderName)
		assert.Equal(t, "https://kindworks.example", envelopes[0].Data.WebsiteURL)
	})

	t.Run("draws from the project pool when borrowing event spots", func(t *testing.T) {
		f := newRegistrationFixture(t)
		f.expectManager(org)

		row := dtos.RosterRow{Line: 2, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.org"}
		f.expectNoDuplicate(row)
		f.inviteeRepository.On("Create", mock.Anything, mock.AnythingOfType("*models.Invitee")).Return(nil)
		f.groupRepository.On("IncrementInviteeCount", mock.Anything, f.group.ID, 1).Return(nil)
		f.projectRepository.On("ConsumeOpenSlots", mock.Anything, f.project.ID, 1).Return(nil)
		f.notificationDispatcher.On("SendGroupInvitations", mock.Anything, mock.Anything).Return(nil)

		result, err := f.build(config.Config{}).ProcessRoster(context.Background(), f.group, f.project, []dtos.RosterRow{row}, services.CapacitySourceProject)

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Accepted)
		f.groupRepository.AssertNotCalled(t, "ConsumeOpenSlots", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("skips rows matching an existing invitee", func(t *testing.T) {
		f := newRegistrationFixture(t)
		f.expectManager(org)

		row := dtos.RosterRow{Line: 2, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.org"}
		f.inviteeRepository.On("FindDuplicate", f.group.ID, "Ada", "Lovelace", "ada@example.org").Return(models.Invitee{}, nil)

		result, err := f.build(config.Config{}).ProcessRoster(context.Background(), f.group, f.project, []dtos.RosterRow{row}, services.CapacitySourceGroup)

		assert.NoError(t, err)
		assert.Equal(t, 0, result.Accepted)
		assert.Equal(t, dtos.RowOutcomeSkippedDuplicate, result.Outcomes[0].Kind)
		f.inviteeRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.groupRepository.AssertNotCalled(t, "IncrementInviteeCount", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("skips rows matching a registered user", func(t *testing.T) {
		f := newRegistrationFixture(t)
		f.expectManager(org)

		row := dtos.RosterRow{Line: 2, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.org"}
		f.inviteeRepository.On("FindDuplicate", f.group.ID, "Ada", "Lovelace", "ada@example.org").Return(models.Invitee{}, gorm.ErrRecordNotFound)
		f.registrantRepository.On("FindDuplicate", f.group.ID, "Ada", "Lovelace", "ada@example.org").Return(models.Registrant{}, nil)

		result, err := f.build(config.Config{}).ProcessRoster(context.Background(), f.group, f.project, []dtos.RosterRow{row}, services.CapacitySourceGroup)

		assert.NoError(t, err)
		assert.Equal(t, 0, result.Accepted)
		assert.Equal(t, dtos.RowOutcomeSkippedDuplicate, result.Outcomes[0].Kind)
	})

	t.Run("skips rows without a full name", func(t *testing.T) {
		f := newRegistrationFixture(t)
		f.expectManager(org)

		rows := []dtos.RosterRow{
			{Line: 2, FirstName: "", LastName: "Lovelace", Email: "ada@example.org"},
			{Line: 3, FirstName: "Grace", LastName: "", Email: "grace@example.org"},
		}

		result, err := f.build(config.Config{}).ProcessRoster(context.Background(), f.group, f.project, rows, services.CapacitySourceGroup)

		assert.NoError(t, err)
		assert.Equal(t, 0, result.Accepted)
		assert.Equal(t, dtos.RowOutcomeSkippedBlankName, result.Outcomes[0].Kind)
		assert.Equal(t, dtos.RowOutcomeSkippedBlankName, result.Outcomes[1].Kind)
		f.inviteeRepository.AssertNotCalled(t, "FindDuplicate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("stores invitees with an invalid address without email", func(t *testing.T) {
		f := newRegistrationFixture(t)
		f.expectManager(org)

		row := dtos.RosterRow{Line: 2, FirstName: "Ada", LastName: "Lovelace", Email: "not-an-address"}
		var created *models.Invitee
		f.inviteeRepository.On("Create", mock.Anything, mock.AnythingOfType("*models.Invitee")).Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.Invitee)
		}).Return(nil)
		f.groupRepository.On("IncrementInviteeCount", mock.Anything, f.group.ID, 1).Return(nil)
		f.groupRepository.On("ConsumeOpenSlots", mock.Anything, f.group.ID, 1).Return(nil)
		f.notificationDispatcher.On("SendGroupInvitations", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			assert.Empty(t, args.Get(1).([]dtos.InvitationEnvelope))
		}).Return(nil)

		result, err := f.build(config.Config{}).ProcessRoster(context.Background(), f.group, f.project, []dtos.RosterRow{row}, services.CapacitySourceGroup)

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Accepted)
		assert.Nil(t, created.Email)
		// no address means no duplicate lookup either
		f.inviteeRepository.AssertNotCalled(t, "FindDuplicate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("swallows per-row persistence failures", func(t *testing.T) {
		f := newRegistrationFixture(t)
		f.expectManager(org)

		row := dtos.RosterRow{Line: 2, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.org"}
		f.expectNoDuplicate(row)
		f.inviteeRepository.On("Create", mock.Anything, mock.AnythingOfType("*models.Invitee")).Return(errors.New("insert failed"))

		result, err := f.build(config.Config{}).ProcessRoster(context.Background(), f.group, f.project, []dtos.RosterRow{row}, services.CapacitySourceGroup)

		assert.NoError(t, err)
		assert.Equal(t, 0, result.Accepted)
		assert.Equal(t, dtos.RowOutcomeSkippedPersistFailure, result.Outcomes[0].Kind)
		f.groupRepository.AssertNotCalled(t, "IncrementInviteeCount", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("fails when the duplicate lookup errors", func(t *testing.T) {
		f := newRegistrationFixture(t)
		f.expectManager(org)

		row := dtos.RosterRow{Line: 2, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.org"}
		f.inviteeRepository.On("FindDuplicate", f.group.ID, "Ada", "Lovelace", "ada@example.org").Return(models.Invitee{}, errors.New("connection reset"))

		_, err := f.build(config.Config{}).ProcessRoster(context.Background(), f.group, f.project, []dtos.RosterRow{row}, services.CapacitySourceGroup)

		assert.Error(t, err)
	})

	t.Run("skips counters and notifications when nothing was accepted", func(t *testing.T) {
		f := newRegistrationFixture(t)
		f.expectManager(org)

		row := dtos.RosterRow{Line: 2, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.org"}
		f.inviteeRepository.On("FindDuplicate", f.group.ID, "Ada", "Lovelace", "ada@example.org").Return(models.Invitee{}, nil)

		result, err := f.build(config.Config{}).ProcessRoster(context.Background(), f.group, f.project, []dtos.RosterRow{row}, services.CapacitySourceGroup)

		assert.NoError(t, err)
		assert.Equal(t, 0, result.Accepted)
		f.notificationDispatcher.AssertNotCalled(t, "SendGroupInvitations", mock.Anything, mock.Anything)
	})

	t.Run("surfaces a lost slot race during finalization", func(t *testing.T) {
		f := newRegistrationFixture(t)
		f.expectManager(org)

		row := dtos.RosterRow{Line: 2, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.org"}
		f.expectNoDuplicate(row)
		f.inviteeRepository.On("Create", mock.Anything, mock.AnythingOfType("*models.Invitee")).Return(nil)
		f.groupRepository.On("IncrementInviteeCount", mock.Anything, f.group.ID, 1).Return(nil)
		// a concurrent upload consumed the last slot between the gate and here
		f.groupRepository.On("ConsumeOpenSlots", mock.Anything, f.group.ID, 1).Return(shared.ErrInsufficientSlots)

		_, err := f.build(config.Config{}).ProcessRoster(context.Background(), f.group, f.project, []dtos.RosterRow{row}, services.CapacitySourceGroup)

		assert.ErrorIs(t, err, shared.ErrInsufficientSlots)
		f.notificationDispatcher.AssertNotCalled(t, "SendGroupInvitations", mock.Anything, mock.Anything)
	})

	t.Run("delivers partner webhooks per accepted row", func(t *testing.T) {
		partnerOrg := models.Organization{Model: models.Model{ID: uuid.New()}, Name: "Partner Org", IsPartner: true}

		f := newRegistrationFixture(t)
		f.expectManager(partnerOrg)

		integrations := []models.WebhookIntegration{
			{Model: models.Model{ID: uuid.New()}, OrgID: partnerOrg.ID, URL: "https://partner.example/hooks/a"},
			{Model: models.Model{ID: uuid.New()}, OrgID: partnerOrg.ID, URL: "https://partner.example/hooks/b"},
		}
		f.webhookRepository.On("FindByOrgID", partnerOrg.ID).Return(integrations, nil)

		row := dtos.RosterRow{Line: 2, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.org", IsMinor: true}
		f.expectNoDuplicate(row)
		f.inviteeRepository.On("Create", mock.Anything, mock.AnythingOfType("*models.Invitee")).Return(nil)

		var payloads []dtos.InviteeWebhookPayload
		f.webhookDispatcher.On("SendInviteeAdded", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			payloads = append(payloads, args.Get(2).(dtos.InviteeWebhookPayload))
		}).Return(nil).Times(2)

		f.groupRepository.On("IncrementInviteeCount", mock.Anything, f.group.ID, 1).Return(nil)
		f.groupRepository.On("ConsumeOpenSlots", mock.Anything, f.group.ID, 1).Return(nil)
		f.notificationDispatcher.On("SendGroupInvitations", mock.Anything, mock.Anything).Return(nil)

		result, err := f.build(config.Config{PartnerOrgID: partnerOrg.ID}).ProcessRoster(context.Background(), f.group, f.project, []dtos.RosterRow{row}, services.CapacitySourceGroup)

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Accepted)
		assert.Len(t, payloads, 2)
		assert.Equal(t, "Ada", payloads[0].FirstName)
		assert.Equal(t, "ada@example.org", payloads[0].Email)
		assert.True(t, payloads[0].IsMinor)
		assert.Equal(t, f.group.ID, payloads[0].PartnerGroupID)
		assert.Equal(t, f.project.ID, payloads[0].ProjectID)
		assert.Equal(t, dtos.WebhookOperationAddInviteeInGroup, payloads[0].Method)
	})

	t.Run("webhook delivery failures do not fail the upload", func(t *testing.T) {
		partnerOrg := models.Organization{Model: models.Model{ID: uuid.New()}, Name: "Partner Org", IsPartner: true}

		f := newRegistrationFixture(t)
		f.expectManager(partnerOrg)
		f.webhookRepository.On("FindByOrgID", partnerOrg.ID).Return([]models.WebhookIntegration{
			{Model: models.Model{ID: uuid.New()}, OrgID: partnerOrg.ID, URL: "https://partner.example/hooks/a"},
		}, nil)

		row := dtos.RosterRow{Line: 2, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.org"}
		f.expectNoDuplicate(row)
		f.inviteeRepository.On("Create", mock.Anything, mock.AnythingOfType("*models.Invitee")).Return(nil)
		f.webhookDispatcher.On("SendInviteeAdded", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("target unreachable"))
		f.groupRepository.On("IncrementInviteeCount", mock.Anything, f.group.ID, 1).Return(nil)
		f.groupRepository.On("ConsumeOpenSlots", mock.Anything, f.group.ID, 1).Return(nil)
		f.notificationDispatcher.On("SendGroupInvitations", mock.Anything, mock.Anything).Return(nil)

		result, err := f.build(config.Config{PartnerOrgID: partnerOrg.ID}).ProcessRoster(context.Background(), f.group, f.project, []dtos.RosterRow{row}, services.CapacitySourceGroup)

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Accepted)
	})

	t.Run("skips webhooks for non-partner organizations", func(t *testing.T) {
		f := newRegistrationFixture(t)
		f.expectManager(org)

		row := dtos.RosterRow{Line: 2, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.org"}
		f.expectNoDuplicate(row)
		f.inviteeRepository.On("Create", mock.Anything, mock.AnythingOfType("*models.Invitee")).Return(nil)
		f.groupRepository.On("IncrementInviteeCount", mock.Anything, f.group.ID, 1).Return(nil)
		f.groupRepository.On("ConsumeOpenSlots", mock.Anything, f.group.ID, 1).Return(nil)
		f.notificationDispatcher.On("SendGroupInvitations", mock.Anything, mock.Anything).Return(nil)

		_, err := f.build(config.Config{PartnerOrgID: uuid.New()}).ProcessRoster(context.Background(), f.group, f.project, []dtos.RosterRow{row}, services.CapacitySourceGroup)

		assert.NoError(t, err)
		f.webhookRepository.AssertNotCalled(t, "FindByOrgID", mock.Anything)
		f.webhookDispatcher.AssertNotCalled(t, "SendInviteeAdded", mock.Anything, mock.Anything, mock.Anything)
	})
}
