package cli

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/waldolaw-go/internal/adapters/logging"
	"github.com/andrescamacho/waldolaw-go/internal/adapters/metrics"
	"github.com/andrescamacho/waldolaw-go/internal/adapters/persistence"
	"github.com/andrescamacho/waldolaw-go/internal/application/common"
	appPlanning "github.com/andrescamacho/waldolaw-go/internal/application/planning"
	"github.com/andrescamacho/waldolaw-go/internal/domain/planning"
	"github.com/andrescamacho/waldolaw-go/internal/domain/shared"
	"github.com/andrescamacho/waldolaw-go/internal/infrastructure/config"
	"github.com/andrescamacho/waldolaw-go/internal/infrastructure/database"
)

// app bundles the wired dependencies of one CLI invocation
type app struct {
	cfg      *config.Config
	logger   *logging.StdLogger
	db       *gorm.DB
	mediator common.Mediator
}

// newApp loads configuration and wires logging, metrics, history and the
// mediator. History is opened when needHistory is set, the database is
// enabled or planner.record_history asks for it.
func newApp(needHistory bool) (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.NewStdLogger(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
		File:   cfg.Logging.FilePath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	a := &app{cfg: cfg, logger: logger}

	// 1. Metrics
	var requestMetrics *metrics.RequestMetricsCollector
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		plannerMetrics := metrics.NewPlannerMetricsCollector()
		if err := plannerMetrics.Register(); err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to register planner metrics: %w", err)
		}
		metrics.SetGlobalPlannerCollector(plannerMetrics)

		requestMetrics = metrics.NewRequestMetricsCollector()
		if err := requestMetrics.Register(); err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to register request metrics: %w", err)
		}
	}

	// 2. History database
	var repo planning.PlanRepository
	if needHistory || cfg.Database.Enabled || cfg.Planner.RecordHistory {
		db, err := database.NewConnection(&cfg.Database)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		a.db = db
		if err := database.AutoMigrate(db); err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		repo = persistence.NewGormPlanRepository(db)
	}

	// 3. Mediator
	a.mediator = common.NewMediator()
	a.mediator.Use(common.LoggingMiddleware())
	if requestMetrics != nil {
		a.mediator.Use(metrics.PrometheusMiddleware(requestMetrics))
	}

	planner := planning.NewPlanner(planning.Settings{
		ShipName:  cfg.Planner.ShipName,
		MinDockMs: cfg.Planner.MinDockMs,
		Soft:      cfg.Planner.Search.Soft,
		Hard:      cfg.Planner.Search.Hard,
		Evaluate:  cfg.Planner.Evaluate,
		Clock:     shared.NewRealClock(),
	})
	if err := common.RegisterHandler[*appPlanning.PlanRouteCommand](a.mediator, appPlanning.NewPlanRouteHandler(planner, repo, nil)); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to register PlanRoute handler: %w", err)
	}
	if repo != nil {
		if err := common.RegisterHandler[*appPlanning.ListPlansQuery](a.mediator, appPlanning.NewListPlansHandler(repo)); err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to register ListPlans handler: %w", err)
		}
		if err := common.RegisterHandler[*appPlanning.GetPlanQuery](a.mediator, appPlanning.NewGetPlanHandler(repo)); err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to register GetPlan handler: %w", err)
		}
	}

	return a, nil
}

// baseContext returns a background context carrying the logger
func (a *app) baseContext() context.Context {
	return common.WithLogger(context.Background(), a.logger)
}

// Close flushes metrics and releases the database and log file
func (a *app) Close() {
	if a.cfg != nil && a.cfg.Metrics.Enabled {
		if err := metrics.WriteTextfile(a.cfg.Metrics.TextfilePath); err != nil {
			a.logger.Log(common.LevelWarn, "failed to export metrics", map[string]interface{}{"error": err.Error()})
		}
		metrics.ResetRegistry()
	}
	if a.db != nil {
		_ = database.Close(a.db)
	}
	if a.logger != nil {
		_ = a.logger.Close()
	}
}
