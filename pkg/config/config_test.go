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

package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/MeBouha/greenBin-sub000/pkg/config"
)

var _ = Describe("Load", func() {
	envKeys := []string{
		"GREENBIN_CONFIG",
		"GREENBIN_DATA_DIR",
		"GREENBIN_METRICS_ADDR",
		"LOGGING_LEVEL",
		"LOGGING_FORMAT",
	}

	BeforeEach(func() {
		for _, key := range envKeys {
			Expect(os.Unsetenv(key)).To(Succeed())
		}
		// Point the config file at a path that never exists so the
		// machine's real config cannot leak into the suite.
		Expect(os.Setenv("GREENBIN_CONFIG", filepath.Join(GinkgoT().TempDir(), "absent.yaml"))).To(Succeed())
	})

	AfterEach(func() {
		for _, key := range envKeys {
			Expect(os.Unsetenv(key)).To(Succeed())
		}
	})

	It("falls back to the built-in defaults", func() {
		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.DataDir).To(Equal(config.DefaultDataDir))
		Expect(cfg.MetricsAddr).To(BeEmpty())
	})

	It("folds in the YAML config file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "config.yaml")
		Expect(os.WriteFile(path, []byte("dataDir: /var/lib/greenbin\nmetricsAddr: :9090\n"), 0644)).To(Succeed())
		Expect(os.Setenv("GREENBIN_CONFIG", path)).To(Succeed())

		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.DataDir).To(Equal("/var/lib/greenbin"))
		Expect(cfg.MetricsAddr).To(Equal(":9090"))
	})

	It("lets environment variables override the file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "config.yaml")
		Expect(os.WriteFile(path, []byte("dataDir: /var/lib/greenbin\n"), 0644)).To(Succeed())
		Expect(os.Setenv("GREENBIN_CONFIG", path)).To(Succeed())
		Expect(os.Setenv("GREENBIN_DATA_DIR", "/tmp/greenbin")).To(Succeed())
		Expect(os.Setenv("LOGGING_LEVEL", "debug")).To(Succeed())

		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.DataDir).To(Equal("/tmp/greenbin"))
		Expect(cfg.LogLevel).To(Equal("debug"))
	})

	It("rejects an unparseable config file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "config.yaml")
		Expect(os.WriteFile(path, []byte("dataDir: [unclosed"), 0644)).To(Succeed())
		Expect(os.Setenv("GREENBIN_CONFIG", path)).To(Succeed())

		_, err := config.Load()
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("GetAsString", func() {
	AfterEach(func() {
		Expect(os.Unsetenv("GREENBIN_TEST_KEY")).To(Succeed())
	})

	It("returns the value when set", func() {
		Expect(os.Setenv("GREENBIN_TEST_KEY", "value")).To(Succeed())

		got, err := config.GetAsString("GREENBIN_TEST_KEY", false, "fallback")
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal("value"))
	})

	It("returns the default when unset and optional", func() {
		got, err := config.GetAsString("GREENBIN_TEST_KEY", false, "fallback")
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal("fallback"))
	})

	It("fails when unset and required", func() {
		_, err := config.GetAsString("GREENBIN_TEST_KEY", true, "")
		Expect(err).To(HaveOccurred())
	})
})
