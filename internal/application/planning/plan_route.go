package planning

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/andrescamacho/waldolaw-go/internal/adapters/metrics"
	"github.com/andrescamacho/waldolaw-go/internal/application/common"
	domainPlanning "github.com/andrescamacho/waldolaw-go/internal/domain/planning"
	"github.com/andrescamacho/waldolaw-go/internal/domain/shared"
	"github.com/andrescamacho/waldolaw-go/internal/domain/simulation"
)

// PlanRouteHandler runs the planner and records the outcome
type PlanRouteHandler struct {
	planner *domainPlanning.Planner
	repo    domainPlanning.PlanRepository
	clock   shared.Clock
}

// NewPlanRouteHandler creates a plan route handler; repo may be nil when
// history is disabled
func NewPlanRouteHandler(
	planner *domainPlanning.Planner,
	repo domainPlanning.PlanRepository,
	clock shared.Clock,
) *PlanRouteHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &PlanRouteHandler{
		planner: planner,
		repo:    repo,
		clock:   clock,
	}
}

// Handle executes the plan route command
func (h *PlanRouteHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*PlanRouteCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	if cmd.Game == nil {
		return nil, shared.NewValidationError("game", "is required")
	}

	runID := uuid.New().String()
	ctx = common.WithRunID(ctx, runID)
	logger := common.LoggerFromContext(ctx)

	startedAt := cmd.StartedAt
	if startedAt.IsZero() {
		startedAt = h.clock.Now()
	}

	logger.Log(common.LevelInfo, "planning started", map[string]interface{}{
		"run_id":    runID,
		"grid_size": cmd.Game.Level().Size(),
		"targets":   len(cmd.Game.Targets()),
		"ship_fuel": cmd.Game.Ship().Fuel,
		"max_speed": cmd.Game.MaxSpeed(),
	})

	plan := h.planner.Plan(ctx, cmd.Game, startedAt)
	h.logPlan(logger, runID, plan)
	metrics.RecordPlanRun(metrics.PlanRunInfo{
		Feasible:     plan.Feasible,
		HardStopped:  plan.HardStopped,
		Score:        plan.Score,
		Candidates:   plan.Candidates,
		Explored:     plan.Explored,
		Evaluated:    plan.Evaluated,
		CommandCount: plan.Commands.Count(),
		DockCount:    len(plan.Commands.OfType(simulation.CommandTypeDock)),
		ElapsedMs:    plan.ElapsedMs,
		Oracle:       plan.Timings.Oracle,
		Search:       plan.Timings.Search,
		Evaluate:     plan.Timings.Evaluate,
	})

	response := &PlanRouteResponse{RunID: runID, Plan: plan}
	if !cmd.Persist {
		return response, nil
	}
	if h.repo == nil {
		logger.Log(common.LevelWarn, "plan history requested but no history store is configured", map[string]interface{}{
			"run_id": runID,
		})
		return response, nil
	}

	record := domainPlanning.NewPlanRecord(runID, cmd.InputDigest, h.planner.Settings().ShipName, cmd.Game.Level().Size(), plan, h.clock.Now())
	if err := h.repo.Save(ctx, record); err != nil {
		// the plan itself is still valid output
		logger.Log(common.LevelWarn, "failed to save plan history", map[string]interface{}{
			"run_id": runID,
			"error":  err.Error(),
		})
		return response, nil
	}
	response.Saved = true
	return response, nil
}

func (h *PlanRouteHandler) logPlan(logger common.PlanLogger, runID string, plan *domainPlanning.Plan) {
	metadata := map[string]interface{}{
		"run_id":       runID,
		"feasible":     plan.Feasible,
		"score":        plan.Score,
		"commands":     plan.Commands.Count(),
		"elapsed_ms":   plan.ElapsedMs,
		"candidates":   plan.Candidates,
		"explored":     plan.Explored,
		"evaluated":    plan.Evaluated,
		"hard_stopped": plan.HardStopped,
		"oracle_ms":    plan.Timings.Oracle.Milliseconds(),
		"search_ms":    plan.Timings.Search.Milliseconds(),
		"evaluate_ms":  plan.Timings.Evaluate.Milliseconds(),
		"total_ms":     plan.Timings.SinceStart.Milliseconds(),
	}
	switch {
	case plan.Candidates == 0:
		logger.Log(common.LevelWarn, "no route found, emitting name only", metadata)
	case !plan.Feasible:
		logger.Log(common.LevelWarn, "no fuel-feasible route, emitting fallback", metadata)
	default:
		logger.Log(common.LevelInfo, "planning finished", metadata)
	}
}
