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

// Package datastore wires the seven collection stores to their backing
// documents under one data directory.
package datastore

import (
	"context"
	"path/filepath"

	"github.com/MeBouha/greenBin-sub000/pkg/codec"
	"github.com/MeBouha/greenBin-sub000/pkg/config"
	"github.com/MeBouha/greenBin-sub000/pkg/logger"
	"github.com/MeBouha/greenBin-sub000/pkg/models"
	"github.com/MeBouha/greenBin-sub000/pkg/service/filesystem"
	"github.com/MeBouha/greenBin-sub000/pkg/store"
)

// Document file names, one per collection.
const (
	TrashCansFile     = "trashcans.xml"
	VehiclesFile      = "vehicles.xml"
	RoundsFile        = "rounds.xml"
	ReportsFile       = "reports.xml"
	ComplaintsFile    = "complaints.xml"
	NotificationsFile = "notifications.xml"
	UsersFile         = "users.xml"
)

// Datastore bundles the collection stores for all record kinds. Each
// collection owns its backing document; cross-collection rules live in the
// workflow engine, not here.
type Datastore struct {
	TrashCans     *store.Collection[models.TrashCan]
	Vehicles      *store.Collection[models.Vehicle]
	Rounds        *store.Collection[models.Round]
	Reports       *store.Collection[models.Report]
	Complaints    *store.Collection[models.Complaint]
	Notifications *store.Collection[models.Notification]
	Users         *store.Collection[models.User]
}

// New creates the datastore rooted at cfg.DataDir, creating the directory
// if needed.
func New(ctx context.Context, cfg config.Config, fs filesystem.Service) (*Datastore, error) {
	log := logger.For(logger.ComponentDatastore)

	if err := fs.EnsureDirectory(ctx, cfg.DataDir); err != nil {
		return nil, err
	}

	ds := &Datastore{
		TrashCans:     store.NewCollection(filepath.Join(cfg.DataDir, TrashCansFile), codec.TrashCanCodec{}, fs),
		Vehicles:      store.NewCollection(filepath.Join(cfg.DataDir, VehiclesFile), codec.VehicleCodec{}, fs),
		Rounds:        store.NewCollection(filepath.Join(cfg.DataDir, RoundsFile), codec.RoundCodec{}, fs),
		Reports:       store.NewCollection(filepath.Join(cfg.DataDir, ReportsFile), codec.ReportCodec{}, fs),
		Complaints:    store.NewCollection(filepath.Join(cfg.DataDir, ComplaintsFile), codec.ComplaintCodec{}, fs),
		Notifications: store.NewCollection(filepath.Join(cfg.DataDir, NotificationsFile), codec.NotificationCodec{}, fs),
		Users:         store.NewCollection(filepath.Join(cfg.DataDir, UsersFile), codec.UserCodec{}, fs),
	}

	log.Infof("datastore ready at %s", cfg.DataDir)

	return ds, nil
}
