package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all metrics
	namespace = "waldolaw"
	// Subsystem for planner metrics
	subsystem = "planner"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalPlannerCollector is the singleton planner metrics collector
	// Set by SetGlobalPlannerCollector() when metrics are enabled
	globalPlannerCollector PlannerMetricsRecorder
)

// PlanRunInfo summarises one planning run for metrics
type PlanRunInfo struct {
	Feasible     bool
	HardStopped  bool
	Score        float64
	Candidates   int
	Explored     int
	Evaluated    int
	CommandCount int
	DockCount    int
	ElapsedMs    int
	Oracle       time.Duration
	Search       time.Duration
	Evaluate     time.Duration
}

// PlannerMetricsRecorder defines the interface for recording planner metrics
type PlannerMetricsRecorder interface {
	RecordPlanRun(info PlanRunInfo)
}

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// ResetRegistry drops the registry and global collectors
func ResetRegistry() {
	Registry = nil
	globalPlannerCollector = nil
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// SetGlobalPlannerCollector sets the global planner metrics collector
func SetGlobalPlannerCollector(collector PlannerMetricsRecorder) {
	globalPlannerCollector = collector
}

// RecordPlanRun records a planning run globally
func RecordPlanRun(info PlanRunInfo) {
	if globalPlannerCollector != nil {
		globalPlannerCollector.RecordPlanRun(info)
	}
}

// WriteTextfile dumps the registry in Prometheus text format to path, for
// pickup by a node exporter textfile collector. A no-op when disabled.
func WriteTextfile(path string) error {
	if Registry == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
