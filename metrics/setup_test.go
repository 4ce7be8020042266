package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinMetrics(t *testing.T) {
	m := NewMetrics(Config{Address: ":0", ServiceName: "test"})

	m.IncrementRequests("200")
	m.IncrementRequests("200")
	m.IncrementRequests("400")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("400")))

	m.RecordRequestDuration(time.Now(), "/api/figure")
	m.RecordFigureBuild(time.Now(), 1200)

	// The service label is attached through the wrapped registerer.
	count, err := testutil.GatherAndCount(m.Registry, "requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCreateFactoriesRegister(t *testing.T) {
	m := NewMetrics(Config{Address: ":0", ServiceName: "test"})

	c := m.CreateCounter("exports_total", "Total HTML exports", []string{"sink"})
	c.WithLabelValues("file").Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(c.WithLabelValues("file")))

	g := m.CreateGauge("loaded_documents", "Documents currently loaded", []string{"source"})
	g.WithLabelValues("qdrant").Set(42)
	assert.Equal(t, 42.0, testutil.ToFloat64(g.WithLabelValues("qdrant")))
}
