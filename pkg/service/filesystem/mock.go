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

package filesystem

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// MockFileSystem is a mock implementation of the filesystem.Service
// interface. By default it behaves like an in-memory filesystem so store
// tests can run without touching disk; individual operations can be
// overridden through the With*Func hooks.
type MockFileSystem struct {
	ReadFileFunc        func(ctx context.Context, path string) ([]byte, error)
	WriteFileFunc       func(ctx context.Context, path string, data []byte, perm os.FileMode) error
	FileExistsFunc      func(ctx context.Context, path string) (bool, error)
	EnsureDirectoryFunc func(ctx context.Context, path string) error
	RemoveFunc          func(ctx context.Context, path string) error

	mutex sync.Mutex
	files map[string][]byte
}

// NewMockFileSystem creates a new MockFileSystem instance
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files: make(map[string][]byte),
	}
}

// WithReadFileFunc sets a custom ReadFile implementation
func (m *MockFileSystem) WithReadFileFunc(fn func(ctx context.Context, path string) ([]byte, error)) *MockFileSystem {
	m.ReadFileFunc = fn
	return m
}

// WithWriteFileFunc sets a custom WriteFile implementation
func (m *MockFileSystem) WithWriteFileFunc(fn func(ctx context.Context, path string, data []byte, perm os.FileMode) error) *MockFileSystem {
	m.WriteFileFunc = fn
	return m
}

// WithFileExistsFunc sets a custom FileExists implementation
func (m *MockFileSystem) WithFileExistsFunc(fn func(ctx context.Context, path string) (bool, error)) *MockFileSystem {
	m.FileExistsFunc = fn
	return m
}

// WithEnsureDirectoryFunc sets a custom EnsureDirectory implementation
func (m *MockFileSystem) WithEnsureDirectoryFunc(fn func(ctx context.Context, path string) error) *MockFileSystem {
	m.EnsureDirectoryFunc = fn
	return m
}

// WithRemoveFunc sets a custom Remove implementation
func (m *MockFileSystem) WithRemoveFunc(fn func(ctx context.Context, path string) error) *MockFileSystem {
	m.RemoveFunc = fn
	return m
}

// SeedFile places content into the in-memory filesystem.
func (m *MockFileSystem) SeedFile(path string, data []byte) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.files[path] = append([]byte(nil), data...)
}

// FileContent returns the current content of a file in the in-memory
// filesystem, or nil if it does not exist.
func (m *MockFileSystem) FileContent(path string) []byte {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	data, ok := m.files[path]
	if !ok {
		return nil
	}

	return append([]byte(nil), data...)
}

// EnsureDirectory creates a directory if it doesn't exist
func (m *MockFileSystem) EnsureDirectory(ctx context.Context, path string) error {
	if m.EnsureDirectoryFunc != nil {
		return m.EnsureDirectoryFunc(ctx, path)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// ReadFile reads a file's contents from the in-memory filesystem
func (m *MockFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if m.ReadFileFunc != nil {
		return m.ReadFileFunc(ctx, path)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("failed to read file %s: %w", path, os.ErrNotExist)
	}

	return append([]byte(nil), data...), nil
}

// WriteFile writes data to the in-memory filesystem
func (m *MockFileSystem) WriteFile(ctx context.Context, path string, data []byte, perm os.FileMode) error {
	if m.WriteFileFunc != nil {
		return m.WriteFileFunc(ctx, path, data, perm)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.files[path] = append([]byte(nil), data...)

	return nil
}

// FileExists checks if a file exists in the in-memory filesystem
func (m *MockFileSystem) FileExists(ctx context.Context, path string) (bool, error) {
	if m.FileExistsFunc != nil {
		return m.FileExistsFunc(ctx, path)
	}

	if err := ctx.Err(); err != nil {
		return false, err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	_, ok := m.files[path]

	return ok, nil
}

// Remove removes a file from the in-memory filesystem
func (m *MockFileSystem) Remove(ctx context.Context, path string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, path)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	delete(m.files, path)

	return nil
}
