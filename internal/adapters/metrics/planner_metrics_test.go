package metrics_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/waldolaw-go/internal/adapters/metrics"
	"github.com/andrescamacho/waldolaw-go/internal/application/common"
)

// seriesCount returns how many series the registry exports under name
func seriesCount(t *testing.T, name string) int {
	t.Helper()
	families, err := metrics.Registry.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() == name {
			return len(family.GetMetric())
		}
	}
	return 0
}

func setupRegistry(t *testing.T) {
	t.Helper()
	metrics.InitRegistry()
	t.Cleanup(metrics.ResetRegistry)
}

func TestPlannerMetrics_RecordPlanRun(t *testing.T) {
	// Arrange
	setupRegistry(t)
	collector := metrics.NewPlannerMetricsCollector()
	require.NoError(t, collector.Register())
	metrics.SetGlobalPlannerCollector(collector)

	// Act
	metrics.RecordPlanRun(metrics.PlanRunInfo{
		Feasible:     true,
		Score:        39,
		Candidates:   1,
		Explored:     7,
		Evaluated:    1,
		CommandCount: 15,
		DockCount:    2,
		ElapsedMs:    24000,
		Oracle:       time.Millisecond,
		Search:       2 * time.Millisecond,
		Evaluate:     time.Millisecond,
	})
	metrics.RecordPlanRun(metrics.PlanRunInfo{Feasible: false, HardStopped: true})

	// Assert
	assert.Equal(t, 2, seriesCount(t, "waldolaw_planner_runs_total"), "one series per outcome")
	assert.Equal(t, 1, seriesCount(t, "waldolaw_planner_docks_total"))
}

func TestPlannerMetrics_RegisterWithoutRegistryIsNoop(t *testing.T) {
	metrics.ResetRegistry()

	collector := metrics.NewPlannerMetricsCollector()

	assert.NoError(t, collector.Register())
	assert.False(t, metrics.IsEnabled())
	metrics.RecordPlanRun(metrics.PlanRunInfo{})
}

func TestPlannerMetrics_DoubleRegistrationFails(t *testing.T) {
	setupRegistry(t)
	require.NoError(t, metrics.NewPlannerMetricsCollector().Register())

	assert.Error(t, metrics.NewPlannerMetricsCollector().Register())
}

func TestPrometheusMiddleware_RecordsOutcome(t *testing.T) {
	// Arrange
	setupRegistry(t)
	collector := metrics.NewRequestMetricsCollector()
	require.NoError(t, collector.Register())
	middleware := metrics.PrometheusMiddleware(collector)
	failing := func(ctx context.Context, request common.Request) (common.Response, error) {
		return nil, errors.New("boom")
	}
	succeeding := func(ctx context.Context, request common.Request) (common.Response, error) {
		return "ok", nil
	}

	// Act
	_, errFail := middleware(context.Background(), &struct{ Name string }{}, failing)
	response, errOK := middleware(context.Background(), &struct{ Name string }{}, succeeding)

	// Assert
	assert.Error(t, errFail)
	require.NoError(t, errOK)
	assert.Equal(t, "ok", response)
	assert.Equal(t, 2, seriesCount(t, "waldolaw_planner_requests_total"))
}

func TestWriteTextfile(t *testing.T) {
	// Arrange
	setupRegistry(t)
	collector := metrics.NewPlannerMetricsCollector()
	require.NoError(t, collector.Register())
	collector.RecordPlanRun(metrics.PlanRunInfo{Feasible: true, Score: 12})
	path := filepath.Join(t.TempDir(), "waldolaw.prom")

	// Act
	err := metrics.WriteTextfile(path)

	// Assert
	require.NoError(t, err)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "waldolaw_planner_runs_total")
}

func TestWriteTextfile_DisabledIsNoop(t *testing.T) {
	metrics.ResetRegistry()
	path := filepath.Join(t.TempDir(), "waldolaw.prom")

	require.NoError(t, metrics.WriteTextfile(path))

	assert.NoFileExists(t, path)
}
