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
	"path/filepath"
	"time"

	"github.com/MeBouha/greenBin-sub000/pkg/metrics"
)

// DefaultService is the default implementation of the filesystem Service.
// Every operation runs in its own goroutine so the caller can abandon it on
// context cancellation; the operation itself still finishes in the
// background.
type DefaultService struct{}

// NewDefaultService creates a new filesystem service.
func NewDefaultService() *DefaultService {
	return &DefaultService{}
}

// checkContext checks if the context is done before proceeding with an operation.
func (s *DefaultService) checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// EnsureDirectory creates a directory if it doesn't exist.
func (s *DefaultService) EnsureDirectory(ctx context.Context, path string) error {
	start := time.Now()
	if err := s.checkContext(ctx); err != nil {
		return fmt.Errorf("failed to check context: %w", err)
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- os.MkdirAll(path, 0755)
	}()

	select {
	case err := <-errCh:
		metrics.RecordFilesystemOp("EnsureDirectory", start, err)
		if err != nil {
			return fmt.Errorf("failed to create directory %s: %w", path, err)
		}

		return nil
	case <-ctx.Done():
		err := ctx.Err()
		metrics.RecordFilesystemOp("EnsureDirectory", start, err)

		return err
	}
}

// ReadFile reads a file's contents respecting the context.
func (s *DefaultService) ReadFile(ctx context.Context, path string) ([]byte, error) {
	start := time.Now()
	if err := s.checkContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to check context: %w", err)
	}

	type result struct {
		data []byte
		err  error
	}

	resultCh := make(chan result, 1)

	go func() {
		data, err := os.ReadFile(path)
		resultCh <- result{data: data, err: err}
	}()

	select {
	case res := <-resultCh:
		metrics.RecordFilesystemOp("ReadFile", start, res.err)
		if res.err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", path, res.err)
		}

		return res.data, nil
	case <-ctx.Done():
		err := ctx.Err()
		metrics.RecordFilesystemOp("ReadFile", start, err)

		return nil, err
	}
}

// WriteFile writes data to a file respecting the context. The write goes to
// a temporary file in the same directory first and is renamed into place, so
// a concurrent reader never observes a half-written document.
func (s *DefaultService) WriteFile(ctx context.Context, path string, data []byte, perm os.FileMode) error {
	start := time.Now()
	if err := s.checkContext(ctx); err != nil {
		return fmt.Errorf("failed to check context: %w", err)
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- atomicWrite(path, data, perm)
	}()

	select {
	case err := <-errCh:
		metrics.RecordFilesystemOp("WriteFile", start, err)
		if err != nil {
			return fmt.Errorf("failed to write file %s: %w", path, err)
		}

		return nil
	case <-ctx.Done():
		err := ctx.Err()
		metrics.RecordFilesystemOp("WriteFile", start, err)

		return err
	}
}

func atomicWrite(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return err
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)

		return err
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		_ = os.Remove(tmpName)

		return err
	}

	return os.Rename(tmpName, path)
}

// FileExists checks if a file exists.
func (s *DefaultService) FileExists(ctx context.Context, path string) (bool, error) {
	start := time.Now()
	if err := s.checkContext(ctx); err != nil {
		return false, fmt.Errorf("failed to check context: %w", err)
	}

	type result struct {
		exists bool
		err    error
	}

	resultCh := make(chan result, 1)

	go func() {
		info, err := os.Stat(path)
		switch {
		case err == nil:
			resultCh <- result{exists: !info.IsDir()}
		case os.IsNotExist(err):
			resultCh <- result{exists: false}
		default:
			resultCh <- result{err: err}
		}
	}()

	select {
	case res := <-resultCh:
		metrics.RecordFilesystemOp("FileExists", start, res.err)
		if res.err != nil {
			return false, fmt.Errorf("failed to stat file %s: %w", path, res.err)
		}

		return res.exists, nil
	case <-ctx.Done():
		err := ctx.Err()
		metrics.RecordFilesystemOp("FileExists", start, err)

		return false, err
	}
}

// Remove removes a file.
func (s *DefaultService) Remove(ctx context.Context, path string) error {
	start := time.Now()
	if err := s.checkContext(ctx); err != nil {
		return fmt.Errorf("failed to check context: %w", err)
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- os.Remove(path)
	}()

	select {
	case err := <-errCh:
		metrics.RecordFilesystemOp("Remove", start, err)
		if err != nil {
			return fmt.Errorf("failed to remove file %s: %w", path, err)
		}

		return nil
	case <-ctx.Done():
		err := ctx.Err()
		metrics.RecordFilesystemOp("Remove", start, err)

		return err
	}
}
