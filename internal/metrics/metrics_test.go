package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Snapshot(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := New(registry)
	require.NoError(t, err)

	m.Encodings.Inc()
	m.EncodedBytes.Add(4)
	m.FieldOps.WithLabelValues("mul").Inc()
	m.FieldOps.WithLabelValues("mul").Inc()
	m.FieldOps.WithLabelValues("inv").Inc()

	snapshot, err := Snapshot(registry)
	require.NoError(t, err)
	require.Equal(t, map[string]float64{
		"ecrlp_rlp_encodings_total":                1,
		"ecrlp_rlp_encoded_bytes_total":            4,
		"ecrlp_field_operations_total{op=\"inv\"}": 1,
		"ecrlp_field_operations_total{op=\"mul\"}": 2,
		"ecrlp_curve_scalar_multiplications_total": 0,
	}, snapshot)

	require.Equal(t,
		"ecrlp_curve_scalar_multiplications_total 0\n"+
			"ecrlp_field_operations_total{op=\"inv\"} 1\n"+
			"ecrlp_field_operations_total{op=\"mul\"} 2\n"+
			"ecrlp_rlp_encoded_bytes_total 4\n"+
			"ecrlp_rlp_encodings_total 1\n",
		Format(snapshot))
}

func TestMetrics_DoubleRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := New(registry)
	require.NoError(t, err)

	_, err = New(registry)
	require.Error(t, err)
}
