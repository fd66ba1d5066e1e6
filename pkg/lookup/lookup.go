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

// Package lookup resolves weak cross-collection references for enriched
// read-only views. A reference that does not resolve yields a nil/absent
// value, never an error: every collection tolerates dangling ids.
package lookup

import (
	"context"
	"fmt"
	"strings"

	"github.com/MeBouha/greenBin-sub000/pkg/datastore"
	"github.com/MeBouha/greenBin-sub000/pkg/models"
	"github.com/MeBouha/greenBin-sub000/pkg/standarderrors"
)

// Resolver provides the read-only join helpers over a datastore.
type Resolver struct {
	store *datastore.Datastore
}

// NewResolver creates a resolver over the given datastore.
func NewResolver(ds *datastore.Datastore) *Resolver {
	return &Resolver{store: ds}
}

// UserByID resolves a user reference. A dangling id yields nil.
func (r *Resolver) UserByID(ctx context.Context, id int) (*models.User, error) {
	user, found, err := r.store.Users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, nil
	}

	return &user, nil
}

// VehicleByID resolves a vehicle reference. A dangling id yields nil.
func (r *Resolver) VehicleByID(ctx context.Context, id int) (*models.Vehicle, error) {
	vehicle, found, err := r.store.Vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, nil
	}

	return &vehicle, nil
}

// TrashCansByZone returns the trash cans whose address matches the zone,
// compared case-insensitively.
func (r *Resolver) TrashCansByZone(ctx context.Context, zone string) ([]models.TrashCan, error) {
	cans, err := r.store.TrashCans.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.TrashCan, 0, len(cans))
	for _, c := range cans {
		if strings.EqualFold(c.Address, zone) {
			matched = append(matched, c)
		}
	}

	return matched, nil
}

// WasteTypeIndex maps every trash can id to its waste type, for the
// reporting aggregator.
func (r *Resolver) WasteTypeIndex(ctx context.Context) (map[int]models.WasteType, error) {
	cans, err := r.store.TrashCans.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[int]models.WasteType, len(cans))
	for _, c := range cans {
		index[c.ID] = c.WasteType
	}

	return index, nil
}

// EnrichedRound is a round annotated with its resolved vehicle, driver,
// workers and the trash cans in its zone. Unresolvable references stay
// nil; workers that no longer exist are omitted.
type EnrichedRound struct {
	Round     models.Round
	Vehicle   *models.Vehicle
	Driver    *models.User
	Workers   []models.User
	TrashCans []models.TrashCan
}

// EnrichRound builds the enriched view of one round. The round itself must
// exist; everything it references is resolved best-effort.
func (r *Resolver) EnrichRound(ctx context.Context, id int) (*EnrichedRound, error) {
	round, found, err := r.store.Rounds.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, fmt.Errorf("round id %d: %w", id, standarderrors.ErrNotFound)
	}

	enriched := &EnrichedRound{Round: round}

	enriched.Vehicle, err = r.VehicleByID(ctx, round.VehicleID)
	if err != nil {
		return nil, err
	}

	if enriched.Vehicle != nil && enriched.Vehicle.DriverID != 0 {
		enriched.Driver, err = r.UserByID(ctx, enriched.Vehicle.DriverID)
		if err != nil {
			return nil, err
		}
	}

	enriched.Workers = make([]models.User, 0, len(round.WorkerIDs))
	for _, workerID := range round.WorkerIDs {
		worker, err := r.UserByID(ctx, workerID)
		if err != nil {
			return nil, err
		}

		if worker != nil {
			enriched.Workers = append(enriched.Workers, *worker)
		}
	}

	enriched.TrashCans, err = r.TrashCansByZone(ctx, round.Zone)
	if err != nil {
		return nil, err
	}

	return enriched, nil
}
