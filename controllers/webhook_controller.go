// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package controllers

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/kindworks-dev/kindworks/database/models"
	"github.com/kindworks-dev/kindworks/dtos"
	"github.com/kindworks-dev/kindworks/shared"
	"github.com/kindworks-dev/kindworks/utils"
	"gorm.io/gorm"
)

type WebhookController struct {
	webhookRepository      shared.WebhookIntegrationRepository
	organizationRepository shared.OrganizationRepository
}

func NewWebhookController(webhookRepository shared.WebhookIntegrationRepository, organizationRepository shared.OrganizationRepository) *WebhookController {
	return &WebhookController{
		webhookRepository:      webhookRepository,
		organizationRepository: organizationRepository,
	}
}

// @Summary Create webhook integration
// @Tags Webhooks
// @Param body body object true "Webhook data"
// @Success 200 {object} dtos.WebhookIntegrationDTO
// @Router /webhooks [post]
func (w *WebhookController) Save(ctx shared.Context) error {
	var data struct {
		OrgID  string `json:"orgId"`
		Name   string `json:"name"`
		URL    string `json:"url"`
		Secret string `json:"secret"`
	}

	if err := ctx.Bind(&data); err != nil {
		return ctx.JSON(400, "invalid request data")
	}
	if data.URL == "" {
		return ctx.JSON(400, "url is required")
	}

	orgID, err := uuid.Parse(data.OrgID)
	if err != nil {
		return ctx.JSON(400, "invalid orgId format")
	}

	if _, err := w.organizationRepository.Read(orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.JSON(404, "organization not found")
		}
		slog.Error("could not read organization", "err", err)
		return ctx.JSON(500, "could not read organization")
	}

	integration := &models.WebhookIntegration{
		Name:   utils.EmptyThenNil(data.Name),
		OrgID:  orgID,
		URL:    data.URL,
		Secret: utils.EmptyThenNil(data.Secret),
	}

	if err := w.webhookRepository.Save(nil, integration); err != nil {
		slog.Error("could not save webhook integration", "err", err)
		return ctx.JSON(500, "could not save webhook integration")
	}

	return ctx.JSON(200, toWebhookDTO(*integration))
}

// @Summary Update webhook integration
// @Tags Webhooks
// @Param body body object true "Webhook data"
// @Success 200 {object} dtos.WebhookIntegrationDTO
// @Router /webhooks [put]
func (w *WebhookController) Update(ctx shared.Context) error {
	var data struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		URL    string `json:"url"`
		Secret string `json:"secret"`
	}

	if err := ctx.Bind(&data); err != nil {
		return ctx.JSON(400, "invalid request data")
	}
	if data.URL == "" {
		return ctx.JSON(400, "url is required")
	}

	id, err := uuid.Parse(data.ID)
	if err != nil {
		return ctx.JSON(400, "invalid id format")
	}

	existing, err := w.webhookRepository.Read(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.JSON(404, "webhook integration not found")
		}
		slog.Error("could not read webhook integration", "err", err)
		return ctx.JSON(500, "could not read webhook integration")
	}

	integration := &models.WebhookIntegration{
		Model:  models.Model{ID: id},
		Name:   utils.EmptyThenNil(data.Name),
		OrgID:  existing.OrgID,
		URL:    data.URL,
		Secret: utils.EmptyThenNil(data.Secret),
	}

	if err := w.webhookRepository.Save(nil, integration); err != nil {
		slog.Error("could not update webhook integration", "err", err)
		return ctx.JSON(500, "could not update webhook integration")
	}

	return ctx.JSON(200, toWebhookDTO(*integration))
}

// @Summary Delete webhook integration
// @Tags Webhooks
// @Param id path string true "Webhook ID"
// @Success 200
// @Router /webhooks/{id} [delete]
func (w *WebhookController) Delete(ctx shared.Context) error {
	id := ctx.Param("id")
	if id == "" {
		return ctx.JSON(400, "id is required")
	}

	uuidID, err := uuid.Parse(id)
	if err != nil {
		return ctx.JSON(400, "invalid id format")
	}

	if err := w.webhookRepository.Delete(nil, uuidID); err != nil {
		slog.Error("could not delete webhook integration", "err", err)
		return ctx.JSON(500, "could not delete webhook integration")
	}
	return ctx.JSON(200, "webhook integration deleted successfully")
}

// @Summary List webhook integrations of an organization
// @Tags Webhooks
// @Param orgId query string true "Organization ID"
// @Success 200 {array} dtos.WebhookIntegrationDTO
// @Router /webhooks [get]
func (w *WebhookController) List(ctx shared.Context) error {
	orgID, err := uuid.Parse(ctx.QueryParam("orgId"))
	if err != nil {
		return ctx.JSON(400, "invalid orgId format")
	}

	integrations, err := w.webhookRepository.FindByOrgID(orgID)
	if err != nil {
		slog.Error("could not list webhook integrations", "err", err)
		return ctx.JSON(500, "could not list webhook integrations")
	}

	result := make([]dtos.WebhookIntegrationDTO, len(integrations))
	for i, integration := range integrations {
		result[i] = toWebhookDTO(integration)
	}
	return ctx.JSON(200, result)
}

func toWebhookDTO(integration models.WebhookIntegration) dtos.WebhookIntegrationDTO {
	return dtos.WebhookIntegrationDTO{
		ID:    integration.ID.String(),
		OrgID: integration.OrgID.String(),
		Name:  utils.SafeDereference(integration.Name),
		URL:   integration.URL,
	}
}
