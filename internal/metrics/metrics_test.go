package metrics_test

import (
	"testing"

	"github.com/UnknownOlympus/mnemosyne/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewMetrics(_ *testing.T) {
	reg := prometheus.NewRegistry()

	_ = metrics.NewMetrics(reg)
}

func TestOperationsCounter(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	mtr := metrics.NewMetrics(reg)

	mtr.Operations.WithLabelValues("insert_employee", "success").Inc()
	mtr.Operations.WithLabelValues("insert_employee", "success").Inc()
	mtr.Operations.WithLabelValues("insert_employee", "failure").Inc()

	assert.InDelta(t, 2.0,
		testutil.ToFloat64(mtr.Operations.WithLabelValues("insert_employee", "success")), 0)
	assert.InDelta(t, 1.0,
		testutil.ToFloat64(mtr.Operations.WithLabelValues("insert_employee", "failure")), 0)
}
