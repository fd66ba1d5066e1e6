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

// Package ctxrwmutex provides a context-aware read/write mutex built on a
// weighted semaphore. Lock acquisition fails when the context is cancelled,
// which keeps a blocked store operation from hanging forever.
package ctxrwmutex

import (
	"context"

	"golang.org/x/sync/semaphore"
)

const maxReaders = 100

// CtxRWMutex is a read/write mutex whose acquisitions honor context
// cancellation. Up to maxReaders readers may hold it concurrently; a writer
// acquires the full weight and therefore excludes everybody else.
type CtxRWMutex struct {
	sem *semaphore.Weighted
}

func NewCtxRWMutex() *CtxRWMutex {
	return &CtxRWMutex{
		sem: semaphore.NewWeighted(maxReaders),
	}
}

// RLock locks the mutex for reading
func (m *CtxRWMutex) RLock(ctx context.Context) error {
	return m.sem.Acquire(ctx, 1)
}

// RUnlock unlocks the mutex for reading
func (m *CtxRWMutex) RUnlock() {
	m.sem.Release(1)
}

// Lock locks the mutex for writing
func (m *CtxRWMutex) Lock(ctx context.Context) error {
	return m.sem.Acquire(ctx, maxReaders)
}

// Unlock unlocks the mutex for writing
func (m *CtxRWMutex) Unlock() {
	m.sem.Release(maxReaders)
}
