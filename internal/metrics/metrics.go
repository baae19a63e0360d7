// Package metrics holds the prometheus counters of the ecrlp command.
package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "ecrlp"

type Metrics struct {
	Encodings     prometheus.Counter
	EncodedBytes  prometheus.Counter
	FieldOps      *prometheus.CounterVec
	ScalarMults   prometheus.Counter
	InvalidInputs *prometheus.CounterVec
}

// New creates the counters and registers them with registerer.
func New(registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Encodings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rlp",
			Name:      "encodings_total",
			Help:      "Number of items RLP encoded.",
		}),
		EncodedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rlp",
			Name:      "encoded_bytes_total",
			Help:      "Number of bytes produced by the RLP encoder.",
		}),
		FieldOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "field",
			Name:      "operations_total",
			Help:      "Number of field operations evaluated, by operation.",
		}, []string{"op"}),
		ScalarMults: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "curve",
			Name:      "scalar_multiplications_total",
			Help:      "Number of scalar multiplications evaluated.",
		}),
		InvalidInputs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_inputs_total",
			Help:      "Number of rejected inputs, by command.",
		}, []string{"command"}),
	}

	for _, c := range []prometheus.Collector{m.Encodings, m.EncodedBytes, m.FieldOps, m.ScalarMults, m.InvalidInputs} {
		if err := registerer.Register(c); err != nil {
			return nil, fmt.Errorf("could not register collector: %w", err)
		}
	}
	return m, nil
}

// Snapshot gathers the counters of gatherer into a map from "name{label=value,...}" to value. Series that were
// never incremented are included for plain counters and absent for vectors.
func Snapshot(gatherer prometheus.Gatherer) (map[string]float64, error) {
	families, err := gatherer.Gather()
	if err != nil {
		return nil, fmt.Errorf("could not gather metrics: %w", err)
	}

	snapshot := make(map[string]float64)
	for _, family := range families {
		if family.GetType() != dto.MetricType_COUNTER {
			continue
		}
		for _, metric := range family.GetMetric() {
			snapshot[seriesName(family.GetName(), metric.GetLabel())] = metric.GetCounter().GetValue()
		}
	}
	return snapshot, nil
}

// Format renders a snapshot one series per line, sorted by name.
func Format(snapshot map[string]float64) string {
	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s %v\n", name, snapshot[name])
	}
	return b.String()
}

func seriesName(name string, labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return name
	}
	pairs := make([]string, len(labels))
	for i, l := range labels {
		pairs[i] = fmt.Sprintf("%s=%q", l.GetName(), l.GetValue())
	}
	return name + "{" + strings.Join(pairs, ",") + "}"
}
