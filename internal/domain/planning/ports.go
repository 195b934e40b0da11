package planning

import (
	"context"
	"time"
)

// PlanRecord is a persisted planning run
type PlanRecord struct {
	ID           string
	InputDigest  string
	ShipName     string
	GridSize     int
	Score        float64
	Feasible     bool
	CommandCount int
	ElapsedMs    int
	Candidates   int
	Explored     int
	Evaluated    int
	HardStopped  bool
	Commands     []string
	PlanningTime time.Duration
	CreatedAt    time.Time
}

// NewPlanRecord captures plan under id
func NewPlanRecord(id, inputDigest, shipName string, gridSize int, plan *Plan, createdAt time.Time) *PlanRecord {
	return &PlanRecord{
		ID:           id,
		InputDigest:  inputDigest,
		ShipName:     shipName,
		GridSize:     gridSize,
		Score:        plan.Score,
		Feasible:     plan.Feasible,
		CommandCount: plan.Commands.Count(),
		ElapsedMs:    plan.ElapsedMs,
		Candidates:   plan.Candidates,
		Explored:     plan.Explored,
		Evaluated:    plan.Evaluated,
		HardStopped:  plan.HardStopped,
		Commands:     plan.Commands.Lines(),
		PlanningTime: plan.Timings.Total(),
		CreatedAt:    createdAt,
	}
}

// PlanRepository persists planning history
type PlanRepository interface {
	// Save stores a record, replacing one with the same ID
	Save(ctx context.Context, record *PlanRecord) error

	// FindByID returns the record or an error if it does not exist
	FindByID(ctx context.Context, id string) (*PlanRecord, error)

	// ListRecent returns up to limit records, newest first
	ListRecent(ctx context.Context, limit int) ([]*PlanRecord, error)
}
