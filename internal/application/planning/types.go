package planning

import (
	"time"

	domainPlanning "github.com/andrescamacho/waldolaw-go/internal/domain/planning"
	"github.com/andrescamacho/waldolaw-go/internal/domain/world"
)

// PlanRouteCommand asks for a route through Waldo and back to Base
type PlanRouteCommand struct {
	Game        *world.Game
	StartedAt   time.Time // deadlines are measured from here
	InputDigest string    // identifies the puzzle in history; optional
	Persist     bool
}

// PlanRouteResponse carries the chosen plan
type PlanRouteResponse struct {
	RunID string
	Plan  *domainPlanning.Plan
	Saved bool
}

// ListPlansQuery lists recent planning runs
type ListPlansQuery struct {
	Limit int
}

// ListPlansResponse holds recent runs, newest first
type ListPlansResponse struct {
	Records []*domainPlanning.PlanRecord
}

// GetPlanQuery loads one planning run
type GetPlanQuery struct {
	ID string
}

// GetPlanResponse holds the requested run
type GetPlanResponse struct {
	Record *domainPlanning.PlanRecord
}
