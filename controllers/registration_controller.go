// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package controllers

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kindworks-dev/kindworks/database/models"
	"github.com/kindworks-dev/kindworks/dtos"
	"github.com/kindworks-dev/kindworks/monitoring"
	"github.com/kindworks-dev/kindworks/services"
	"github.com/kindworks-dev/kindworks/shared"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// StatusSpotsUnavailable is the non-standard status code mobile clients
// expect when every applicable slot pool is exhausted.
const StatusSpotsUnavailable = 460

// RegistrationProcessor runs the row loop and finalization over a validated
// roster.
type RegistrationProcessor interface {
	ProcessRoster(ctx context.Context, group models.Group, project models.Project, rows []dtos.RosterRow, source services.CapacitySource) (dtos.BulkUploadResult, error)
}

type RegistrationController struct {
	groupRepository     shared.GroupRepository
	projectRepository   shared.ProjectRepository
	rosterParser        shared.RosterParser
	registrationService RegistrationProcessor
}

func NewRegistrationController(
	groupRepository shared.GroupRepository,
	projectRepository shared.ProjectRepository,
	rosterParser shared.RosterParser,
	registrationService RegistrationProcessor,
) *RegistrationController {
	return &RegistrationController{
		groupRepository:     groupRepository,
		projectRepository:   projectRepository,
		rosterParser:        rosterParser,
		registrationService: registrationService,
	}
}

// @Summary Bulk-register group invitees from an .xlsx roster
// @Tags Registrations
// @Accept mpfd
// @Param groupId formData string true "Group ID"
// @Param groupUniqueCode formData string true "Group unique code"
// @Param file formData file true "Roster spreadsheet"
// @Success 200 {object} dtos.BulkUploadResponse
// @Router /registrations/bulk-upload [post]
func (c *RegistrationController) BulkUpload(ctx shared.Context) error {
	start := time.Now()
	defer func() {
		monitoring.BulkUploadDuration.Observe(time.Since(start).Seconds())
	}()

	groupID := ctx.FormValue("groupId")
	uniqueCode := ctx.FormValue("groupUniqueCode")
	if groupID == "" || uniqueCode == "" {
		return ctx.JSON(400, "groupId and groupUniqueCode is required")
	}

	groupUUID, err := uuid.Parse(groupID)
	if err != nil {
		return ctx.JSON(400, "invalid groupId format")
	}

	group, err := c.groupRepository.FindByIDAndUniqueCode(groupUUID, uniqueCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.JSON(404, "the group was not found or was deleted")
		}
		return echo.NewHTTPError(500, "could not read group").WithInternal(err)
	}

	project, err := c.projectRepository.Read(group.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.JSON(404, "the project was not found or was deleted")
		}
		return echo.NewHTTPError(500, "could not read project").WithInternal(err)
	}

	now := time.Now()
	if !services.ProjectAcceptsRegistrations(project, now) {
		return ctx.JSON(422, "project is canceled or finished")
	}

	// one-shot capacity snapshot - concurrent uploads to the same group can
	// both pass this gate, only the final decrement is guarded
	source, openSlots := services.ResolveCapacitySource(group, project, now)
	if source == services.CapacitySourceExhausted {
		return ctx.JSON(StatusSpotsUnavailable, "spots are not available")
	}

	if !strings.HasPrefix(ctx.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return ctx.JSON(415, "media type not supported")
	}

	fileHeader, err := rosterFile(ctx)
	if err != nil {
		return ctx.JSON(400, "no file uploaded")
	}
	if filepath.Ext(fileHeader.Filename) != services.RosterFileExtension {
		return ctx.JSON(400, "only Excel files (.xlsx) are allowed")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(500, "could not open uploaded file").WithInternal(err)
	}
	defer file.Close()

	rows, err := c.rosterParser.Parse(file)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoWorksheets):
			return ctx.JSON(400, "no worksheets found in the Excel file")
		case errors.Is(err, services.ErrInvalidHeader):
			return ctx.JSON(400, "invalid header spellings or invalid header sequence")
		default:
			slog.Warn("unreadable roster upload", "groupID", group.ID, "err", err)
			return ctx.JSON(400, "could not read the Excel file")
		}
	}

	if len(rows) > openSlots {
		return ctx.JSON(400, "data is more than the total open slots")
	}

	result, err := c.registrationService.ProcessRoster(ctx.Request().Context(), group, project, rows, source)
	if err != nil {
		return echo.NewHTTPError(500, "could not process roster").WithInternal(err)
	}

	if result.Accepted == 0 {
		return ctx.JSON(200, dtos.BulkUploadResponse{Message: "no data for uploading", Accepted: 0})
	}

	slog.Info("processed bulk registration", "groupID", group.ID, "accepted", result.Accepted, "rows", len(rows), "capacitySource", source)
	return ctx.JSON(200, dtos.BulkUploadResponse{Message: "file uploaded and processed successfully", Accepted: result.Accepted})
}

// rosterFile returns the first uploaded file part, regardless of its field
// name.
func rosterFile(ctx shared.Context) (*multipart.FileHeader, error) {
	form, err := ctx.MultipartForm()
	if err != nil {
		return nil, err
	}
	for _, headers := range form.File {
		if len(headers) > 0 {
			return headers[0], nil
		}
	}
	return nil, errors.New("no file part in multipart form")
}
