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

// Package store implements the generic whole-document collection store that
// backs every record kind.
//
// Every mutating operation performs a full load -> mutate -> encode ->
// overwrite cycle against the collection's backing document. The cycle runs
// under a per-collection context-aware write lock, so two concurrent
// mutations against the same collection serialize instead of overwriting
// each other's snapshot (lost update). Reads take the shared side of the
// same lock.
//
// There is no in-memory cache: every operation re-reads the document, and
// the document on disk is the single source of truth between calls.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/tiendc/go-deepcopy"
	"go.uber.org/zap"

	"github.com/MeBouha/greenBin-sub000/pkg/codec"
	"github.com/MeBouha/greenBin-sub000/pkg/ctxrwmutex"
	"github.com/MeBouha/greenBin-sub000/pkg/logger"
	"github.com/MeBouha/greenBin-sub000/pkg/metrics"
	"github.com/MeBouha/greenBin-sub000/pkg/service/filesystem"
	"github.com/MeBouha/greenBin-sub000/pkg/standarderrors"
)

const documentPerm = 0644

// Record is implemented by every persisted record kind.
type Record[T any] interface {
	// RecordID returns the record's collection-unique identifier, 0 when not
	// yet assigned.
	RecordID() int
	// WithRecordID returns a copy of the record carrying the given id.
	WithRecordID(id int) T
}

// validator is implemented by record kinds with write-time validation rules.
type validator interface {
	Validate() error
}

// Collection is the store for one record kind. One instance owns one
// backing document; no other component writes to that document.
type Collection[T Record[T]] struct {
	kind  string
	path  string
	codec codec.Codec[T]
	fs    filesystem.Service
	mu    *ctxrwmutex.CtxRWMutex
	log   *zap.SugaredLogger
}

// NewCollection creates the store for one record kind, backed by the
// document at path.
func NewCollection[T Record[T]](path string, c codec.Codec[T], fs filesystem.Service) *Collection[T] {
	return &Collection[T]{
		kind:  c.Kind(),
		path:  path,
		codec: c,
		fs:    fs,
		mu:    ctxrwmutex.NewCtxRWMutex(),
		log:   logger.For(logger.CollectionComponent(c.Kind())),
	}
}

// Kind returns the collection name.
func (c *Collection[T]) Kind() string { return c.kind }

// NextID derives the next free identifier for a collection:
// max(existing ids) + 1, or 1 for an empty collection. There is no persisted
// counter; the id is recomputed from the collection state on every call.
// Gaps left by deletions are never reused.
func NextID[T Record[T]](records []T) int {
	maxID := 0
	for _, r := range records {
		if id := r.RecordID(); id > maxID {
			maxID = id
		}
	}

	return maxID + 1
}

// readAll loads and decodes the backing document. An absent document is an
// empty collection. Callers must hold the lock.
func (c *Collection[T]) readAll(ctx context.Context) ([]T, error) {
	exists, err := c.fs.FileExists(ctx, c.path)
	if err != nil {
		return nil, standarderrors.NewStorageError(c.kind, "stat", c.path, err)
	}

	if !exists {
		return []T{}, nil
	}

	raw, err := c.fs.ReadFile(ctx, c.path)
	if err != nil {
		return nil, standarderrors.NewStorageError(c.kind, "read", c.path, err)
	}

	records, err := c.codec.Decode(raw)
	if err != nil {
		return nil, standarderrors.NewStorageError(c.kind, "decode", c.path, err)
	}

	return records, nil
}

// writeAll encodes the whole collection and overwrites the backing
// document. Callers must hold the write lock.
func (c *Collection[T]) writeAll(ctx context.Context, records []T) error {
	raw, err := c.codec.Encode(records)
	if err != nil {
		return standarderrors.NewStorageError(c.kind, "encode", c.path, err)
	}

	if err := c.fs.WriteFile(ctx, c.path, raw, documentPerm); err != nil {
		return standarderrors.NewStorageError(c.kind, "write", c.path, err)
	}

	return nil
}

// LoadAll returns every record in the collection. An absent backing
// document yields an empty list.
func (c *Collection[T]) LoadAll(ctx context.Context) (records []T, err error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOp(c.kind, metrics.OpLoadAll, start, err) }()

	if err = c.mu.RLock(ctx); err != nil {
		return nil, err
	}
	defer c.mu.RUnlock()

	return c.readAll(ctx)
}

// GetByID returns the record with the given id, and whether it exists.
func (c *Collection[T]) GetByID(ctx context.Context, id int) (record T, found bool, err error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOp(c.kind, metrics.OpGetByID, start, err) }()

	var zero T

	if err = c.mu.RLock(ctx); err != nil {
		return zero, false, err
	}
	defer c.mu.RUnlock()

	records, err := c.readAll(ctx)
	if err != nil {
		return zero, false, err
	}

	for _, r := range records {
		if r.RecordID() == id {
			return r, true, nil
		}
	}

	return zero, false, nil
}

// Add inserts a record into the collection. A record with id 0 gets the
// next free id; a record carrying an explicit id is rejected when that id
// already exists.
func (c *Collection[T]) Add(ctx context.Context, rec T) (added T, err error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOp(c.kind, metrics.OpAdd, start, err) }()

	var zero T

	if err = validate(rec); err != nil {
		return zero, err
	}

	if err = c.mu.Lock(ctx); err != nil {
		return zero, err
	}
	defer c.mu.Unlock()

	records, err := c.readAll(ctx)
	if err != nil {
		return zero, err
	}

	id := rec.RecordID()
	if id == 0 {
		id = NextID(records)
	} else {
		for _, r := range records {
			if r.RecordID() == id {
				return zero, fmt.Errorf("%s id %d: %w", c.kind, id, standarderrors.ErrDuplicateIdentity)
			}
		}
	}

	rec = rec.WithRecordID(id)

	if err = c.writeAll(ctx, append(records, rec)); err != nil {
		return zero, err
	}

	c.log.Debugf("added %s record id=%d", c.kind, id)

	return copyRecord(rec), nil
}

// Replace overwrites the record with the given id.
func (c *Collection[T]) Replace(ctx context.Context, id int, rec T) (replaced T, err error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOp(c.kind, metrics.OpReplace, start, err) }()

	var zero T

	rec = rec.WithRecordID(id)

	if err = validate(rec); err != nil {
		return zero, err
	}

	if err = c.mu.Lock(ctx); err != nil {
		return zero, err
	}
	defer c.mu.Unlock()

	records, err := c.readAll(ctx)
	if err != nil {
		return zero, err
	}

	idx := -1
	for i, r := range records {
		if r.RecordID() == id {
			idx = i
			break
		}
	}

	if idx < 0 {
		return zero, fmt.Errorf("%s id %d: %w", c.kind, id, standarderrors.ErrNotFound)
	}

	records[idx] = rec

	if err = c.writeAll(ctx, records); err != nil {
		return zero, err
	}

	return copyRecord(rec), nil
}

// Update applies mutate to the record with the given id and persists the
// result, all inside one locked read-modify-write cycle.
func (c *Collection[T]) Update(ctx context.Context, id int, mutate func(T) T) (updated T, err error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOp(c.kind, metrics.OpUpdate, start, err) }()

	var zero T

	if err = c.mu.Lock(ctx); err != nil {
		return zero, err
	}
	defer c.mu.Unlock()

	records, err := c.readAll(ctx)
	if err != nil {
		return zero, err
	}

	idx := -1
	for i, r := range records {
		if r.RecordID() == id {
			idx = i
			break
		}
	}

	if idx < 0 {
		return zero, fmt.Errorf("%s id %d: %w", c.kind, id, standarderrors.ErrNotFound)
	}

	rec := mutate(records[idx]).WithRecordID(id)

	if err = validate(rec); err != nil {
		return zero, err
	}

	records[idx] = rec

	if err = c.writeAll(ctx, records); err != nil {
		return zero, err
	}

	return copyRecord(rec), nil
}

// Delete removes the record with the given id. It reports whether a record
// was actually removed; deleting an absent id is not an error.
func (c *Collection[T]) Delete(ctx context.Context, id int) (found bool, err error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOp(c.kind, metrics.OpDelete, start, err) }()

	if err = c.mu.Lock(ctx); err != nil {
		return false, err
	}
	defer c.mu.Unlock()

	records, err := c.readAll(ctx)
	if err != nil {
		return false, err
	}

	kept := make([]T, 0, len(records))
	for _, r := range records {
		if r.RecordID() == id {
			found = true
			continue
		}

		kept = append(kept, r)
	}

	if !found {
		return false, nil
	}

	if err = c.writeAll(ctx, kept); err != nil {
		return false, err
	}

	c.log.Debugf("deleted %s record id=%d", c.kind, id)

	return true, nil
}

// validate runs the record's write-time validation rules, if it has any.
func validate(rec any) error {
	if v, ok := rec.(validator); ok {
		return v.Validate()
	}

	return nil
}

// copyRecord deep-copies a record so the value handed back to the caller
// shares no slices with the caller's input.
func copyRecord[T any](rec T) T {
	var out T
	if err := deepcopy.Copy(&out, &rec); err != nil {
		// A record is plain data; copying it cannot fail at runtime.
		return rec
	}

	return out
}
