package persistence

import (
	"time"
)

// PlanModel represents the plans table
type PlanModel struct {
	ID           string             `gorm:"column:id;primaryKey;not null"`
	InputDigest  string             `gorm:"column:input_digest;index"`
	ShipName     string             `gorm:"column:ship_name;not null"`
	GridSize     int                `gorm:"column:grid_size;not null"`
	Score        float64            `gorm:"column:score"`
	Feasible     bool               `gorm:"column:feasible;not null;default:false"`
	CommandCount int                `gorm:"column:command_count"`
	ElapsedMs    int                `gorm:"column:elapsed_ms"`
	Candidates   int                `gorm:"column:candidates"`
	Explored     int                `gorm:"column:explored"`
	Evaluated    int                `gorm:"column:evaluated"`
	HardStopped  bool               `gorm:"column:hard_stopped;not null;default:false"`
	PlanningMs   int64              `gorm:"column:planning_ms"`
	CreatedAt    time.Time          `gorm:"column:created_at;not null;index"`
	Commands     []PlanCommandModel `gorm:"foreignKey:PlanID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (PlanModel) TableName() string {
	return "plans"
}

// PlanCommandModel represents the plan_commands table, one output line per row
type PlanCommandModel struct {
	ID     int    `gorm:"column:id;primaryKey;autoIncrement"`
	PlanID string `gorm:"column:plan_id;not null;index"`
	Seq    int    `gorm:"column:seq;not null"`
	Line   string `gorm:"column:line;not null"`
}

func (PlanCommandModel) TableName() string {
	return "plan_commands"
}
