package planning_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/waldolaw-go/internal/adapters/metrics"
	"github.com/andrescamacho/waldolaw-go/internal/application/common"
	appPlanning "github.com/andrescamacho/waldolaw-go/internal/application/planning"
	domainPlanning "github.com/andrescamacho/waldolaw-go/internal/domain/planning"
	"github.com/andrescamacho/waldolaw-go/internal/domain/shared"
	"github.com/andrescamacho/waldolaw-go/test/helpers"
)

type capturedLog struct {
	level   string
	message string
}

type captureLogger struct {
	entries []capturedLog
}

func (l *captureLogger) Log(level, message string, metadata map[string]interface{}) {
	l.entries = append(l.entries, capturedLog{level: level, message: message})
}

func (l *captureLogger) has(level, message string) bool {
	for _, e := range l.entries {
		if e.level == level && e.message == message {
			return true
		}
	}
	return false
}

func newHandler(repo domainPlanning.PlanRepository) (*appPlanning.PlanRouteHandler, *shared.MockClock) {
	clock := shared.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	settings := domainPlanning.DefaultSettings()
	settings.Clock = clock
	return appPlanning.NewPlanRouteHandler(domainPlanning.NewPlanner(settings), repo, clock), clock
}

func TestPlanRouteHandler_PlansAndPersists(t *testing.T) {
	// Arrange
	repo := helpers.NewMockPlanRepository()
	handler, clock := newHandler(repo)
	logger := &captureLogger{}
	ctx := common.WithLogger(context.Background(), logger)

	// Act
	response, err := handler.Handle(ctx, &appPlanning.PlanRouteCommand{
		Game:        helpers.RefuelSector().Build(t),
		StartedAt:   clock.Now(),
		InputDigest: "abc",
		Persist:     true,
	})

	// Assert
	require.NoError(t, err)
	result := response.(*appPlanning.PlanRouteResponse)
	assert.True(t, result.Saved)
	assert.NotEmpty(t, result.RunID)
	assert.True(t, result.Plan.Feasible)
	assert.Equal(t, helpers.RefuelSectorCommands, result.Plan.Commands.Lines())

	record, err := repo.FindByID(context.Background(), result.RunID)
	require.NoError(t, err)
	assert.Equal(t, "abc", record.InputDigest)
	assert.Equal(t, "MATE", record.ShipName)
	assert.Equal(t, 7, record.GridSize)
	assert.Equal(t, 15, record.CommandCount)
	assert.Equal(t, clock.Now(), record.CreatedAt)

	assert.True(t, logger.has(common.LevelInfo, "planning started"))
	assert.True(t, logger.has(common.LevelInfo, "planning finished"))
}

func TestPlanRouteHandler_SkipsHistoryUnlessAsked(t *testing.T) {
	repo := helpers.NewMockPlanRepository()
	handler, _ := newHandler(repo)

	response, err := handler.Handle(context.Background(), &appPlanning.PlanRouteCommand{Game: helpers.RefuelSector().Build(t)})

	require.NoError(t, err)
	assert.False(t, response.(*appPlanning.PlanRouteResponse).Saved)
	assert.Equal(t, 0, repo.SaveCalls())
}

func TestPlanRouteHandler_SaveFailureStillReturnsPlan(t *testing.T) {
	// Arrange
	repo := helpers.NewMockPlanRepository()
	repo.SetError("disk full")
	handler, _ := newHandler(repo)
	logger := &captureLogger{}
	ctx := common.WithLogger(context.Background(), logger)

	// Act
	response, err := handler.Handle(ctx, &appPlanning.PlanRouteCommand{Game: helpers.RefuelSector().Build(t), Persist: true})

	// Assert
	require.NoError(t, err)
	result := response.(*appPlanning.PlanRouteResponse)
	assert.False(t, result.Saved)
	assert.True(t, result.Plan.Feasible)
	assert.True(t, logger.has(common.LevelWarn, "failed to save plan history"))
}

func TestPlanRouteHandler_WarnsWhenHistoryStoreMissing(t *testing.T) {
	// Arrange
	handler, _ := newHandler(nil)
	logger := &captureLogger{}
	ctx := common.WithLogger(context.Background(), logger)

	// Act
	response, err := handler.Handle(ctx, &appPlanning.PlanRouteCommand{Game: helpers.RefuelSector().Build(t), Persist: true})

	// Assert
	require.NoError(t, err)
	assert.False(t, response.(*appPlanning.PlanRouteResponse).Saved)
	assert.True(t, logger.has(common.LevelWarn, "plan history requested but no history store is configured"))
}

func TestPlanRouteHandler_NoRouteWarns(t *testing.T) {
	// Arrange
	fixture := helpers.OpenSector(shared.DirectionUp, 1000)
	handler, _ := newHandler(nil)
	logger := &captureLogger{}
	ctx := common.WithLogger(context.Background(), logger)

	// Act
	response, err := handler.Handle(ctx, &appPlanning.PlanRouteCommand{Game: fixture.Build(t), Persist: true})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"NAME MATE"}, response.(*appPlanning.PlanRouteResponse).Plan.Commands.Lines())
	assert.True(t, logger.has(common.LevelWarn, "no route found, emitting name only"))
}

func TestPlanRouteHandler_RequiresGame(t *testing.T) {
	handler, _ := newHandler(nil)

	_, err := handler.Handle(context.Background(), &appPlanning.PlanRouteCommand{})

	var validation *shared.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestPlanRouteHandler_RejectsWrongRequest(t *testing.T) {
	handler, _ := newHandler(nil)

	_, err := handler.Handle(context.Background(), &appPlanning.ListPlansQuery{})

	assert.Error(t, err)
}

func TestPlanRouteHandler_RecordsMetrics(t *testing.T) {
	// Arrange
	metrics.InitRegistry()
	t.Cleanup(metrics.ResetRegistry)
	collector := metrics.NewPlannerMetricsCollector()
	require.NoError(t, collector.Register())
	metrics.SetGlobalPlannerCollector(collector)
	handler, _ := newHandler(nil)

	// Act
	_, err := handler.Handle(context.Background(), &appPlanning.PlanRouteCommand{Game: helpers.RefuelSector().Build(t)})

	// Assert
	require.NoError(t, err)
	families, err := metrics.Registry.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "waldolaw_planner_runs_total")
	assert.Contains(t, names, "waldolaw_planner_docks_total")
}
