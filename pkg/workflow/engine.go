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

// Package workflow implements the cross-collection rules triggered by
// mutations: the availability cascade on round creation, the trash-can
// empty action, the complaint lifecycle and the account lockout.
//
// Cascades are post-commit hooks attached to the primary mutation. Each
// hook runs independently; a failed hook is counted and logged but never
// fails the mutation of record.
package workflow

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/MeBouha/greenBin-sub000/pkg/datastore"
	"github.com/MeBouha/greenBin-sub000/pkg/logger"
	"github.com/MeBouha/greenBin-sub000/pkg/metrics"
	"github.com/MeBouha/greenBin-sub000/pkg/standarderrors"
)

// Engine applies the cross-collection workflow rules on top of the
// datastore.
type Engine struct {
	store *datastore.Datastore
	log   *zap.SugaredLogger
	clock func() time.Time
}

// NewEngine creates a workflow engine over the given datastore.
func NewEngine(ds *datastore.Datastore) *Engine {
	return &Engine{
		store: ds,
		log:   logger.For(logger.ComponentWorkflow),
		clock: time.Now,
	}
}

// WithClock replaces the engine's clock. Useful for tests.
func (e *Engine) WithClock(clock func() time.Time) *Engine {
	e.clock = clock
	return e
}

// cascadeHook is one post-commit side effect of a primary mutation.
type cascadeHook struct {
	name string
	run  func(ctx context.Context) error
}

// runCascades executes hooks best-effort. Failures are absorbed here:
// counted, logged, and never returned.
func (e *Engine) runCascades(ctx context.Context, hooks []cascadeHook) {
	for _, h := range hooks {
		if err := h.run(ctx); err != nil {
			cascadeErr := &standarderrors.CascadeError{Hook: h.name, Err: err}
			metrics.IncCascadeFailure(h.name)
			e.log.Warnw("cascade hook failed", "hook", h.name, "error", cascadeErr)
		}
	}
}
