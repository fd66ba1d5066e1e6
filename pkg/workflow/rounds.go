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

	"github.com/MeBouha/greenBin-sub000/pkg/models"
	"github.com/MeBouha/greenBin-sub000/pkg/standarderrors"
)

// CreateRound validates and persists a round, then cascades availability:
// the referenced vehicle, the vehicle's driver (if any), and every listed
// worker are marked in-service.
//
// The round write is the operation of record. The cascades are advisory:
// a failed cascade is logged and counted, never surfaced to the caller.
func (e *Engine) CreateRound(ctx context.Context, round models.Round) (models.Round, error) {
	var zero models.Round

	if err := round.Validate(); err != nil {
		return zero, err
	}

	vehicle, found, err := e.store.Vehicles.GetByID(ctx, round.VehicleID)
	if err != nil {
		return zero, err
	}

	if !found {
		return zero, standarderrors.NewValidationError("vehicleId", "unknown vehicle %d", round.VehicleID)
	}

	created, err := e.store.Rounds.Add(ctx, round)
	if err != nil {
		return zero, err
	}

	e.log.Infow("round created", "id", created.ID, "zone", created.Zone, "date", created.Date)

	e.runCascades(ctx, e.roundCreationHooks(created, vehicle))

	return created, nil
}

// roundCreationHooks builds the availability cascade for a freshly created
// round.
func (e *Engine) roundCreationHooks(round models.Round, vehicle models.Vehicle) []cascadeHook {
	hooks := []cascadeHook{{
		name: "vehicle-in-service",
		run: func(ctx context.Context) error {
			_, err := e.store.Vehicles.Update(ctx, vehicle.ID, func(v models.Vehicle) models.Vehicle {
				v.Availability = models.InService
				return v
			})

			return err
		},
	}}

	if vehicle.DriverID != 0 {
		hooks = append(hooks, e.userInServiceHook("driver-in-service", vehicle.DriverID))
	}

	for _, workerID := range round.WorkerIDs {
		hooks = append(hooks, e.userInServiceHook("worker-in-service", workerID))
	}

	return hooks
}

func (e *Engine) userInServiceHook(name string, userID int) cascadeHook {
	return cascadeHook{
		name: name,
		run: func(ctx context.Context) error {
			_, err := e.store.Users.Update(ctx, userID, func(u models.User) models.User {
				u.Availability = models.InService
				return u
			})

			return err
		},
	}
}

// UpcomingRounds returns the rounds whose date is today or later, judged
// against the engine's clock.
func (e *Engine) UpcomingRounds(ctx context.Context) ([]models.Round, error) {
	rounds, err := e.store.Rounds.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	now := e.clock()

	upcoming := make([]models.Round, 0, len(rounds))
	for _, r := range rounds {
		if r.Upcoming(now) {
			upcoming = append(upcoming, r)
		}
	}

	return upcoming, nil
}
