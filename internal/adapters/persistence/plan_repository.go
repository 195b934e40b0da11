package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/andrescamacho/waldolaw-go/internal/domain/planning"
)

// GormPlanRepository implements planning.PlanRepository using GORM
type GormPlanRepository struct {
	db *gorm.DB
}

// NewGormPlanRepository creates a new GORM plan repository
func NewGormPlanRepository(db *gorm.DB) *GormPlanRepository {
	return &GormPlanRepository{db: db}
}

// Save upserts the plan row and replaces its command lines
func (r *GormPlanRepository) Save(ctx context.Context, record *planning.PlanRecord) error {
	model := recordToModel(record)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Omit("Commands").Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(model)
		if result.Error != nil {
			return fmt.Errorf("failed to save plan: %w", result.Error)
		}

		if err := tx.Where("plan_id = ?", model.ID).Delete(&PlanCommandModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear plan commands: %w", err)
		}
		if len(model.Commands) == 0 {
			return nil
		}
		if err := tx.Create(&model.Commands).Error; err != nil {
			return fmt.Errorf("failed to save plan commands: %w", err)
		}
		return nil
	})
}

// FindByID retrieves a plan with its commands
func (r *GormPlanRepository) FindByID(ctx context.Context, id string) (*planning.PlanRecord, error) {
	var model PlanModel
	result := r.db.WithContext(ctx).
		Preload("Commands", orderedCommands).
		Where("id = ?", id).
		First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("plan not found: %s", id)
		}
		return nil, fmt.Errorf("failed to find plan: %w", result.Error)
	}
	return modelToRecord(&model), nil
}

// ListRecent returns up to limit plans, newest first
func (r *GormPlanRepository) ListRecent(ctx context.Context, limit int) ([]*planning.PlanRecord, error) {
	var models []PlanModel
	result := r.db.WithContext(ctx).
		Preload("Commands", orderedCommands).
		Order("created_at DESC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list plans: %w", result.Error)
	}

	records := make([]*planning.PlanRecord, 0, len(models))
	for i := range models {
		records = append(records, modelToRecord(&models[i]))
	}
	return records, nil
}

func orderedCommands(db *gorm.DB) *gorm.DB {
	return db.Order("seq ASC")
}

func recordToModel(record *planning.PlanRecord) *PlanModel {
	commands := make([]PlanCommandModel, len(record.Commands))
	for i, line := range record.Commands {
		commands[i] = PlanCommandModel{PlanID: record.ID, Seq: i, Line: line}
	}
	return &PlanModel{
		ID:           record.ID,
		InputDigest:  record.InputDigest,
		ShipName:     record.ShipName,
		GridSize:     record.GridSize,
		Score:        record.Score,
		Feasible:     record.Feasible,
		CommandCount: record.CommandCount,
		ElapsedMs:    record.ElapsedMs,
		Candidates:   record.Candidates,
		Explored:     record.Explored,
		Evaluated:    record.Evaluated,
		HardStopped:  record.HardStopped,
		PlanningMs:   record.PlanningTime.Milliseconds(),
		CreatedAt:    record.CreatedAt,
		Commands:     commands,
	}
}

func modelToRecord(model *PlanModel) *planning.PlanRecord {
	lines := make([]string, len(model.Commands))
	for i, cmd := range model.Commands {
		lines[i] = cmd.Line
	}
	return &planning.PlanRecord{
		ID:           model.ID,
		InputDigest:  model.InputDigest,
		ShipName:     model.ShipName,
		GridSize:     model.GridSize,
		Score:        model.Score,
		Feasible:     model.Feasible,
		CommandCount: model.CommandCount,
		ElapsedMs:    model.ElapsedMs,
		Candidates:   model.Candidates,
		Explored:     model.Explored,
		Evaluated:    model.Evaluated,
		HardStopped:  model.HardStopped,
		Commands:     lines,
		PlanningTime: time.Duration(model.PlanningMs) * time.Millisecond,
		CreatedAt:    model.CreatedAt,
	}
}
