// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024 Canonical Ltd.

/*
 *  Metrics package is used to expose the metrics of the slice form service.
 */

package metrics

import (
	"fmt"
	"net/http"

	"github.com/omec-project/slice-webconsole/backend/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slice_form_submissions_total",
		Help: "Slice profile submissions to the slice API, by result",
	}, []string{"result"})

	fieldUpdates = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slice_form_field_updates_total",
		Help: "Field updates applied to slice profile drafts",
	})
)

func RecordSubmission(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	submissions.WithLabelValues(result).Inc()
}

func RecordFieldUpdate() {
	fieldUpdates.Inc()
}

// InitMetrics serves the metrics endpoint on port; it blocks until the listener fails.
func InitMetrics(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux); err != nil {
		logger.InitLog.Errorf("could not open metrics port: %v", err)
	}
}
