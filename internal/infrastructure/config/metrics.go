package config

// MetricsConfig holds metrics collection and export configuration
type MetricsConfig struct {
	// Enabled controls whether metrics collection is active
	Enabled bool `mapstructure:"enabled"`

	// TextfilePath receives the registry in Prometheus text format after
	// each run (node exporter textfile collector)
	TextfilePath string `mapstructure:"textfile_path" validate:"required_if=Enabled true"`
}
