// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package metrics // import "github.com/canonical/kobuk-gfx-level-zero/metrics"

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"maps"
	"sync"

	log "github.com/sirupsen/logrus"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/canonical/kobuk-gfx-level-zero/vc"
)

var (
	//go:embed metrics.json
	metricsJSON []byte

	// Used in fallback checks, e.g. to avoid sending "counters" with 0 values
	metricTypes map[MetricID]MetricType

	// OTel metric instrumentation
	meter = otel.Meter("github.com/canonical/kobuk-gfx-level-zero",
		metric.WithInstrumentationVersion(vc.Version()))
	counters = map[MetricID]metric.Int64Counter{}
	gauges   = map[MetricID]metric.Int64Gauge{}

	// mutex serializes the concurrent calls to AddSlice() and guards totals
	mutex sync.Mutex

	// totals keeps the running sum of counters and the last value of gauges
	totals = Summary{}
)

func init() {
	defs := GetDefinitions()
	metricTypes = make(map[MetricID]MetricType, len(defs))
	for _, md := range defs {
		if md.Obsolete || md.ID == IDInvalid {
			continue
		}
		metricTypes[md.ID] = md.Type
		switch typ := md.Type; typ {
		case MetricTypeCounter:
			counter, err := meter.Int64Counter(md.Field,
				metric.WithDescription(md.Description),
				metric.WithUnit(md.Unit))
			if err != nil {
				log.Errorf("Creating Int64Counter: %v", err)
				continue
			}
			counters[md.ID] = counter
		case MetricTypeGauge:
			gauge, err := meter.Int64Gauge(md.Field,
				metric.WithDescription(md.Description),
				metric.WithUnit(md.Unit))
			if err != nil {
				log.Errorf("Creating Int64Gauge: %v", err)
				continue
			}
			gauges[md.ID] = gauge
		default:
			panic(fmt.Sprintf("Unknown metric type: %v", typ))
		}
	}
}

// AddSlice records a slice of metrics. Counters are added, gauges are set.
// Invalid IDs are logged and dropped, as are counters with a 0 value.
func AddSlice(newMetrics []Metric) {
	ctx := context.Background()

	mutex.Lock()
	defer mutex.Unlock()

	for _, m := range newMetrics {
		if m.ID <= IDInvalid || m.ID >= IDMax {
			log.Errorf("Metric value %d out of range [%d,%d]- needs investigation",
				m.ID, IDInvalid+1, IDMax-1)
			continue
		}

		typ, ok := metricTypes[m.ID]
		if !ok {
			log.Warnf("Invalid metric id %d, skipping", m.ID)
			continue
		}

		switch typ {
		case MetricTypeCounter:
			if m.Value == 0 {
				continue
			}
			totals[m.ID] += m.Value
			if counter, ok := counters[m.ID]; ok {
				counter.Add(ctx, int64(m.Value))
			}
		case MetricTypeGauge:
			totals[m.ID] = m.Value
			if gauge, ok := gauges[m.ID]; ok {
				gauge.Record(ctx, int64(m.Value))
			}
		}
	}
}

// Add records a single metric (id and value).
func Add(id MetricID, value MetricValue) {
	AddSlice([]Metric{{id, value}})
}

// Totals returns a copy of everything recorded so far in this process.
func Totals() Summary {
	mutex.Lock()
	defer mutex.Unlock()
	return maps.Clone(totals)
}

// GetDefinitions returns the metric definitions from the embedded metrics.json file.
func GetDefinitions() []MetricDefinition {
	var defs []MetricDefinition

	dec := json.NewDecoder(bytes.NewReader(metricsJSON))
	dec.DisallowUnknownFields()

	err := dec.Decode(&defs)
	if err != nil {
		panic(fmt.Sprintf("extracting definitions from metrics.json: %v", err))
	}
	return defs
}
