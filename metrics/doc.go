// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package metrics counts what happens while the Level Zero loader is opened and
its tables are bound, and forwards every value to OpenTelemetry instruments.

Metric definitions live in metrics.json. Each entry becomes an ID constant in
ids.go (generated by genids) and an Int64Counter or Int64Gauge on the global
meter provider. Install a provider with otel.SetMeterProvider before or after
the first Add; the global meter delegates once one is set.

Example:

	metrics.Add(metrics.IDTablesFetched, 1)

# Directory Structure

	metrics
	├── genids/         // generates ids.go from metrics.json
	├── doc.go          // this file
	├── ids.go          // generated metric IDs
	├── metrics.go      // implement Add(), AddSlice() and Totals()
	├── metrics.json    // metric definitions, append only
	├── metrics_test.go // tests the metrics package
	└── types.go        // definitions of Metric, MetricID, MetricValue
*/
package metrics // import "github.com/canonical/kobuk-gfx-level-zero/metrics"
