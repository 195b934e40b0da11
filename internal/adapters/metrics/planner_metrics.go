package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// PlannerMetricsCollector handles planning run metrics
type PlannerMetricsCollector struct {
	// Run metrics
	runsTotal     *prometheus.CounterVec
	phaseDuration *prometheus.HistogramVec
	score         prometheus.Histogram

	// Search metrics
	candidates *prometheus.HistogramVec
	explored   prometheus.Counter

	// Output metrics
	commandCount prometheus.Histogram
	docksTotal   prometheus.Counter
	routeSeconds prometheus.Histogram
}

// NewPlannerMetricsCollector creates a new planner metrics collector
func NewPlannerMetricsCollector() *PlannerMetricsCollector {
	return &PlannerMetricsCollector{
		// Runs by outcome
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "runs_total",
				Help:      "Total number of planning runs by feasibility and deadline outcome",
			},
			[]string{"feasible", "hard_stopped"},
		),

		// Wall time per phase
		phaseDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "phase_duration_seconds",
				Help:      "Planning phase duration distribution",
				Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 2.0, 3.0, 4.0},
			},
			[]string{"phase"},
		),

		score: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "score",
				Help:      "Score of the chosen plan (commands plus route seconds)",
				Buckets:   []float64{10, 25, 50, 100, 200, 400, 800},
			},
		),

		candidates: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "candidates",
				Help:      "Complete paths found and evaluated per run",
				Buckets:   []float64{0, 1, 5, 20, 100, 500, 2000},
			},
			[]string{"stage"},
		),

		explored: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "paths_explored_total",
				Help:      "Total number of partial paths pushed onto the search frontier",
			},
		),

		commandCount: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "command_count",
				Help:      "Number of commands in the chosen plan, excluding NAME",
				Buckets:   []float64{5, 10, 20, 40, 80, 160},
			},
		),

		docksTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "docks_total",
				Help:      "Total number of DOCK commands emitted",
			},
		),

		routeSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "route_duration_seconds",
				Help:      "Simulated duration of the chosen route",
				Buckets:   []float64{5, 10, 30, 60, 120, 300},
			},
		),
	}
}

// Register registers all planner metrics with the Prometheus registry
func (c *PlannerMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.runsTotal,
		c.phaseDuration,
		c.score,
		c.candidates,
		c.explored,
		c.commandCount,
		c.docksTotal,
		c.routeSeconds,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// RecordPlanRun records one planning run
func (c *PlannerMetricsCollector) RecordPlanRun(info PlanRunInfo) {
	c.runsTotal.WithLabelValues(strconv.FormatBool(info.Feasible), strconv.FormatBool(info.HardStopped)).Inc()

	c.phaseDuration.WithLabelValues("oracle").Observe(info.Oracle.Seconds())
	c.phaseDuration.WithLabelValues("search").Observe(info.Search.Seconds())
	c.phaseDuration.WithLabelValues("evaluate").Observe(info.Evaluate.Seconds())

	c.candidates.WithLabelValues("found").Observe(float64(info.Candidates))
	c.candidates.WithLabelValues("evaluated").Observe(float64(info.Evaluated))
	c.explored.Add(float64(info.Explored))

	// Output shape only matters for plans we would actually fly
	if info.Feasible {
		c.score.Observe(info.Score)
		c.commandCount.Observe(float64(info.CommandCount))
		c.docksTotal.Add(float64(info.DockCount))
		c.routeSeconds.Observe(float64(info.ElapsedMs) / 1000.0)
	}
}
