// Copyright 2025 greenBin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package workflow

import (
	"context"
	"strings"

	"github.com/looplab/fsm"

	"github.com/MeBouha/greenBin-sub000/pkg/models"
	"github.com/MeBouha/greenBin-sub000/pkg/standarderrors"
)

// Complaint lifecycle events. The lifecycle is monotonic: there is no
// transition out of resolved.
const (
	EventComplaintStart   = "start"
	EventComplaintResolve = "resolve"
)

// complaintMachine builds the lifecycle state machine for a complaint in
// the given state.
func (e *Engine) complaintMachine(id int, current models.ComplaintStatus) *fsm.FSM {
	return fsm.NewFSM(
		string(current),
		fsm.Events{
			{Name: EventComplaintStart, Src: []string{string(models.ComplaintNew)}, Dst: string(models.ComplaintInProgress)},
			{Name: EventComplaintResolve, Src: []string{string(models.ComplaintNew), string(models.ComplaintInProgress)}, Dst: string(models.ComplaintResolved)},
		},
		fsm.Callbacks{
			"enter_" + string(models.ComplaintInProgress): func(ctx context.Context, ev *fsm.Event) {
				e.log.Infof("complaint %d is being handled", id)
			},
			"enter_" + string(models.ComplaintResolved): func(ctx context.Context, ev *fsm.Event) {
				e.log.Infof("complaint %d resolved", id)
			},
		},
	)
}

// FileComplaint records a new citizen complaint. The citizen is referenced
// by name; when no citizen user with that name exists yet, one is created
// on the spot.
func (e *Engine) FileComplaint(ctx context.Context, citizenName, content string, category models.ComplaintCategory) (models.Complaint, error) {
	var zero models.Complaint

	citizenID, err := e.citizenIDByName(ctx, citizenName)
	if err != nil {
		return zero, err
	}

	complaint := models.Complaint{
		CitizenID: citizenID,
		Content:   content,
		Date:      e.clock().Format(models.DateLayout),
		Status:    models.ComplaintNew,
		Category:  category,
	}

	return e.store.Complaints.Add(ctx, complaint)
}

// citizenIDByName resolves a citizen user by name, creating the user when
// absent.
func (e *Engine) citizenIDByName(ctx context.Context, name string) (int, error) {
	if name == "" {
		return 0, standarderrors.NewValidationError("citizen", "name must not be empty")
	}

	users, err := e.store.Users.LoadAll(ctx)
	if err != nil {
		return 0, err
	}

	for _, u := range users {
		if u.Role == models.RoleCitizen && strings.EqualFold(u.Name, name) {
			return u.ID, nil
		}
	}

	created, err := e.store.Users.Add(ctx, models.User{
		Name:         name,
		Role:         models.RoleCitizen,
		Account:      models.Account{State: models.AccountActive},
		Availability: models.Available,
	})
	if err != nil {
		return 0, err
	}

	e.log.Infof("created citizen user %d for %q", created.ID, name)

	return created.ID, nil
}

// StartComplaint moves a complaint from new to in-progress.
func (e *Engine) StartComplaint(ctx context.Context, id int) (models.Complaint, error) {
	return e.transitionComplaint(ctx, id, EventComplaintStart)
}

// ResolveComplaint marks a complaint resolved. Resolving an already
// resolved complaint fails validation; the status never regresses.
func (e *Engine) ResolveComplaint(ctx context.Context, id int) (models.Complaint, error) {
	return e.transitionComplaint(ctx, id, EventComplaintResolve)
}

func (e *Engine) transitionComplaint(ctx context.Context, id int, event string) (models.Complaint, error) {
	var zero models.Complaint

	var transitionErr error

	updated, err := e.store.Complaints.Update(ctx, id, func(c models.Complaint) models.Complaint {
		machine := e.complaintMachine(id, c.Status)
		if err := machine.Event(ctx, event); err != nil {
			transitionErr = err
			return c
		}

		c.Status = models.ComplaintStatus(machine.Current())

		return c
	})
	if err != nil {
		return zero, err
	}

	if transitionErr != nil {
		return zero, standarderrors.NewValidationError("status", "cannot %s complaint %d in state %s: %v", event, id, updated.Status, transitionErr)
	}

	return updated, nil
}
