package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/waldolaw-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
		Long: `Inspect Waldolaw configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (WALDO_* prefix, e.g. WALDO_PLANNER_SHIP_NAME)
2. Config file (config.yaml)
3. Default values

Examples:
  waldolaw config show
  waldolaw config show --config ./configs/config.yaml`,
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Printf("Warning: Failed to load config: %v\n", err)
				fmt.Println("Using default configuration.")
				cfg = config.LoadConfigOrDefault("")
			}

			fmt.Println("Waldolaw Configuration")
			fmt.Println("======================")

			fmt.Println("Planner:")
			fmt.Printf("  Ship name:        %s\n", cfg.Planner.ShipName)
			fmt.Printf("  Min dock:         %d ms\n", cfg.Planner.MinDockMs)
			fmt.Printf("  Search soft:      %s\n", cfg.Planner.Search.Soft)
			fmt.Printf("  Search hard:      %s\n", cfg.Planner.Search.Hard)
			fmt.Printf("  Evaluate:         %s\n", cfg.Planner.Evaluate)
			fmt.Printf("  Record history:   %t\n", cfg.Planner.RecordHistory)

			fmt.Println("\nDatabase:")
			fmt.Printf("  Enabled:          %t\n", cfg.Database.Enabled)
			fmt.Printf("  Type:             %s\n", cfg.Database.Type)
			switch {
			case cfg.Database.Type == "sqlite":
				fmt.Printf("  Path:             %s\n", cfg.Database.Path)
			case cfg.Database.URL != "":
				fmt.Printf("  URL:              %s\n", maskPassword(cfg.Database.URL))
			default:
				fmt.Printf("  Host:             %s\n", cfg.Database.Host)
				fmt.Printf("  Port:             %d\n", cfg.Database.Port)
				fmt.Printf("  Database:         %s\n", cfg.Database.Name)
				fmt.Printf("  User:             %s\n", cfg.Database.User)
			}

			fmt.Println("\nMetrics:")
			fmt.Printf("  Enabled:          %t\n", cfg.Metrics.Enabled)
			fmt.Printf("  Textfile:         %s\n", cfg.Metrics.TextfilePath)

			fmt.Println("\nLogging:")
			fmt.Printf("  Level:            %s\n", cfg.Logging.Level)
			fmt.Printf("  Format:           %s\n", cfg.Logging.Format)
			fmt.Printf("  Output:           %s\n", cfg.Logging.Output)

			return nil
		},
	}
}

// maskPassword hides the password of a connection URL
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "****")
	}
	return u.String()
}
