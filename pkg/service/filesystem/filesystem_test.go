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

package filesystem_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/MeBouha/greenBin-sub000/pkg/service/filesystem"
)

var _ = Describe("DefaultService", func() {
	var (
		ctx context.Context
		svc filesystem.Service
		dir string
	)

	BeforeEach(func() {
		ctx = context.Background()
		svc = filesystem.NewDefaultService()
		dir = GinkgoT().TempDir()
	})

	It("writes and reads a file back", func() {
		path := filepath.Join(dir, "doc.xml")

		Expect(svc.WriteFile(ctx, path, []byte("<doc/>"), 0644)).To(Succeed())

		data, err := svc.ReadFile(ctx, path)
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(Equal([]byte("<doc/>")))
	})

	It("overwrites atomically, leaving no temp files behind", func() {
		path := filepath.Join(dir, "doc.xml")

		Expect(svc.WriteFile(ctx, path, []byte("first"), 0644)).To(Succeed())
		Expect(svc.WriteFile(ctx, path, []byte("second"), 0644)).To(Succeed())

		data, err := svc.ReadFile(ctx, path)
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(Equal([]byte("second")))

		entries, err := os.ReadDir(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(1))
	})

	It("reports file existence", func() {
		path := filepath.Join(dir, "doc.xml")

		exists, err := svc.FileExists(ctx, path)
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeFalse())

		Expect(svc.WriteFile(ctx, path, []byte("x"), 0644)).To(Succeed())

		exists, err = svc.FileExists(ctx, path)
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeTrue())
	})

	It("creates nested directories", func() {
		nested := filepath.Join(dir, "a", "b", "c")

		Expect(svc.EnsureDirectory(ctx, nested)).To(Succeed())

		info, err := os.Stat(nested)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.IsDir()).To(BeTrue())
	})

	It("removes a file", func() {
		path := filepath.Join(dir, "doc.xml")
		Expect(svc.WriteFile(ctx, path, []byte("x"), 0644)).To(Succeed())

		Expect(svc.Remove(ctx, path)).To(Succeed())

		exists, err := svc.FileExists(ctx, path)
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeFalse())
	})

	It("refuses work on a cancelled context", func() {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := svc.ReadFile(cancelled, filepath.Join(dir, "doc.xml"))
		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
	})
})

var _ = Describe("MockFileSystem", func() {
	var (
		ctx context.Context
		fs  *filesystem.MockFileSystem
	)

	BeforeEach(func() {
		ctx = context.Background()
		fs = filesystem.NewMockFileSystem()
	})

	It("serves seeded content", func() {
		fs.SeedFile("/data/doc.xml", []byte("<doc/>"))

		data, err := fs.ReadFile(ctx, "/data/doc.xml")
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(Equal([]byte("<doc/>")))
	})

	It("routes through the override when configured", func() {
		fs.WithReadFileFunc(func(ctx context.Context, path string) ([]byte, error) {
			return nil, errors.New("disk gone")
		})

		_, err := fs.ReadFile(ctx, "/data/doc.xml")
		Expect(err).To(MatchError("disk gone"))
	})

	It("tracks writes in memory", func() {
		Expect(fs.WriteFile(ctx, "/data/doc.xml", []byte("x"), 0644)).To(Succeed())

		exists, err := fs.FileExists(ctx, "/data/doc.xml")
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeTrue())
		Expect(fs.FileContent("/data/doc.xml")).To(Equal([]byte("x")))
	})
})
