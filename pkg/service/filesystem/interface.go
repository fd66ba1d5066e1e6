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

// Package filesystem provides a context-aware filesystem abstraction used by
// the collection stores for reading and writing their backing documents.
// A mock implementation is provided for tests.
package filesystem

import (
	"context"
	"os"
)

// Service defines the interface for filesystem operations
type Service interface {
	// EnsureDirectory creates a directory if it doesn't exist
	EnsureDirectory(ctx context.Context, path string) error

	// ReadFile reads a file's contents
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// WriteFile writes data to a file
	WriteFile(ctx context.Context, path string, data []byte, perm os.FileMode) error

	// FileExists checks if a file exists
	FileExists(ctx context.Context, path string) (bool, error)

	// Remove removes a file
	Remove(ctx context.Context, path string) error
}
