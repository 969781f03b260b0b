package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistry(t *testing.T) {
	InitRegistry()
	registry := GetRegistry()

	assert.NotNil(t, registry)
	assert.IsType(t, &prometheus.Registry{}, registry)
}

func TestRecordChartSkipped(t *testing.T) {
	InitRegistry()
	before := testutil.ToFloat64(ChartsSkippedTotal.WithLabelValues("incomplete"))

	RecordChartSkipped("incomplete")

	assert.Equal(t, before+1, testutil.ToFloat64(ChartsSkippedTotal.WithLabelValues("incomplete")))
}

func TestRecordReportsBuilt(t *testing.T) {
	InitRegistry()
	beforeReports := testutil.ToFloat64(PaceReportsBuiltTotal.WithLabelValues("shakeup"))
	beforeUndefined := testutil.ToFloat64(UndefinedFiguresTotal.WithLabelValues("shakeup"))

	RecordReportsBuilt("shakeup", 8, 3)

	assert.Equal(t, beforeReports+8, testutil.ToFloat64(PaceReportsBuiltTotal.WithLabelValues("shakeup")))
	assert.Equal(t, beforeUndefined+3, testutil.ToFloat64(UndefinedFiguresTotal.WithLabelValues("shakeup")))
}

func TestUndefinedFiguresHelp(t *testing.T) {
	descs := make(chan *prometheus.Desc, 1)
	UndefinedFiguresTotal.Describe(descs)
	desc := (<-descs).String()

	assert.Contains(t, desc, `fqName: "result_reporter_undefined_figures_total"`)
	assert.Contains(t, desc, "pace figures left undefined")
	assert.NotContains(t, desc, "fractional")
}

func TestRecordDailyRecordStored(t *testing.T) {
	tests := []struct {
		name     string
		inserted bool
		result   string
	}{
		{name: "inserted row", inserted: true, result: "inserted"},
		{name: "duplicate row", inserted: false, result: "duplicate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InitRegistry()
			counter := DailyRecordsStoredTotal.WithLabelValues("brohamer", tt.result)
			before := testutil.ToFloat64(counter)
			RecordDailyRecordStored("brohamer", tt.inserted)
			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestRecordGuideWrite(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordGuideWrite(0.25)
		RecordChartLoaded()
	})
}

func TestWriteTextfile(t *testing.T) {
	InitRegistry()
	RecordChartLoaded()

	path := filepath.Join(t.TempDir(), "result_reporter.prom")
	require.NoError(t, WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "result_reporter_charts_loaded_total"))
}
