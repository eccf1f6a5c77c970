package dtos

import "github.com/google/uuid"

type WebhookOperation string

const WebhookOperationAddInviteeInGroup WebhookOperation = "addInviteeInGroup"

// InviteeWebhookPayload is posted to a partner integration for every invitee
// accepted through a bulk upload.
type InviteeWebhookPayload struct {
	FirstName      string           `json:"firstName"`
	LastName       string           `json:"lastName"`
	Email          string           `json:"email"`
	IsMinor        bool             `json:"isMinor"`
	PartnerGroupID uuid.UUID        `json:"partnerGroupId"`
	InvitationID   uuid.UUID        `json:"invitationId"`
	ProjectID      uuid.UUID        `json:"projectId"`
	Method         WebhookOperation `json:"method"`
}

type WebhookIntegrationDTO struct {
	ID    string `json:"id"`
	OrgID string `json:"orgId"`
	Name  string `json:"name"`
	URL   string `json:"url"`
}
