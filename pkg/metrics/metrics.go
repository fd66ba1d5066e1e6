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

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// Store operation labels.
	OpLoadAll = "load_all"
	OpGetByID = "get_by_id"
	OpAdd     = "add"
	OpReplace = "replace"
	OpDelete  = "delete"
	OpUpdate  = "update"
)

var (
	// Namespace and subsystem for all metrics.
	namespace = "greenbin"
	subsystem = "core"

	// Store operation counters, labelled by collection, operation and outcome.
	storeOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "store_operations_total",
			Help:      "Total number of collection store operations",
		},
		[]string{"collection", "operation", "status"},
	)

	// Store operation timing.
	storeOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "store_operation_duration_seconds",
			Help:      "Time taken by collection store operations",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"collection", "operation"},
	)

	// Cascade failures, labelled by hook name. Cascades are best-effort, so
	// this counter is the only place their failures show up besides the log.
	cascadeFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cascade_failures_total",
			Help:      "Total number of failed cross-collection cascade hooks",
		},
		[]string{"hook"},
	)

	// Filesystem operation counters.
	filesystemOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "filesystem_operations_total",
			Help:      "Total number of filesystem operations",
		},
		[]string{"operation", "status"},
	)

	// Filesystem operation timing.
	filesystemOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "filesystem_operation_duration_seconds",
			Help:      "Time taken by filesystem operations",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

// RecordStoreOp records one collection store operation with its outcome and
// duration.
func RecordStoreOp(collection, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	storeOps.WithLabelValues(collection, operation, status).Inc()
	storeOpDuration.WithLabelValues(collection, operation).Observe(time.Since(start).Seconds())
}

// IncCascadeFailure increments the failure counter for a cascade hook.
func IncCascadeFailure(hook string) {
	cascadeFailures.WithLabelValues(hook).Inc()
}

// RecordFilesystemOp records one filesystem operation with its outcome and
// duration.
func RecordFilesystemOp(operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	filesystemOps.WithLabelValues(operation, status).Inc()
	filesystemOpDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// SetupMetricsEndpoint starts an HTTP server exposing /metrics on the given
// address. The caller owns the returned server and is responsible for
// shutting it down.
func SetupMetricsEndpoint(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		_ = server.ListenAndServe()
	}()

	return server
}
