package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Planner defaults
	if cfg.Planner.ShipName == "" {
		cfg.Planner.ShipName = "MATE"
	}
	if cfg.Planner.MinDockMs == 0 {
		cfg.Planner.MinDockMs = 500
	}
	if cfg.Planner.Search.Soft == 0 {
		cfg.Planner.Search.Soft = 3600 * time.Millisecond
	}
	if cfg.Planner.Search.Hard == 0 {
		cfg.Planner.Search.Hard = 3700 * time.Millisecond
	}
	if cfg.Planner.Evaluate == 0 {
		cfg.Planner.Evaluate = 3800 * time.Millisecond
	}

	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Type == "sqlite" && cfg.Database.Path == "" {
		cfg.Database.Path = "waldolaw.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "waldolaw"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "waldolaw"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 5
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 2
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Metrics defaults
	if cfg.Metrics.TextfilePath == "" {
		cfg.Metrics.TextfilePath = "waldolaw.prom"
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}
}
