// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"time"

	"github.com/kindworks-dev/kindworks/database/models"
)

type CapacitySource string

const (
	CapacitySourceGroup     CapacitySource = "group"
	CapacitySourceProject   CapacitySource = "project"
	CapacitySourceExhausted CapacitySource = "exhausted"
)

const (
	// eventSpotBorrowWindow lets a group with exhausted slots borrow from the
	// project pool shortly before and during the event.
	eventSpotBorrowWindow = 30 * time.Minute
	// finishGracePeriod keeps registration open a little past the scheduled
	// finish so late uploads at the venue still go through.
	finishGracePeriod = 15 * time.Minute
)

// ProjectAcceptsRegistrations reports whether a project is still open for new
// invitees: not canceled and not past its finish plus grace period.
func ProjectAcceptsRegistrations(project models.Project, now time.Time) bool {
	if project.State == models.ProjectStateCanceled {
		return false
	}
	return project.FinishesAt.Add(finishGracePeriod).After(now)
}

// ResolveCapacitySource decides which open-slot pool a bulk upload draws
// from. The returned count is the snapshot the caller validates row counts
// against; it is NOT re-checked per row, so two concurrent uploads can both
// pass this gate (the final decrement is guarded instead).
func ResolveCapacitySource(group models.Group, project models.Project, now time.Time) (CapacitySource, int) {
	if group.OpenUserSlots > 0 {
		return CapacitySourceGroup, group.OpenUserSlots
	}

	starting := project.StartsAt.Before(now.Add(eventSpotBorrowWindow))
	finished := !project.FinishesAt.Add(finishGracePeriod).After(now)
	if starting && !finished && project.OpenUserSlots > 0 {
		return CapacitySourceProject, project.OpenUserSlots
	}

	return CapacitySourceExhausted, 0
}
