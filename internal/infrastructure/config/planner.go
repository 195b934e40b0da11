package config

import "time"

// PlannerConfig holds route planner configuration
type PlannerConfig struct {
	// Tag emitted as the NAME command
	ShipName string `mapstructure:"ship_name" validate:"required,max=32"`

	// Minimum dwell for every DOCK command, in milliseconds
	MinDockMs int `mapstructure:"min_dock_ms" validate:"min=1"`

	// Deadlines, all measured from process start
	Search   SearchDeadlines `mapstructure:"search"`
	Evaluate time.Duration   `mapstructure:"evaluate" validate:"required"`

	// Persist every run to the history database
	RecordHistory bool `mapstructure:"record_history"`
}

// SearchDeadlines bounds the route search
type SearchDeadlines struct {
	// Stop looking for alternatives once a route is known
	Soft time.Duration `mapstructure:"soft" validate:"required"`

	// Stop searching unconditionally
	Hard time.Duration `mapstructure:"hard" validate:"required,gtefield=Soft"`
}
