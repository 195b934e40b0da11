package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	appPlanning "github.com/andrescamacho/waldolaw-go/internal/application/planning"
)

// NewHistoryCommand creates the history command with subcommands
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded planning runs",
		Long: `Inspect planning runs saved with plan --persist or planner.record_history.

Examples:
  waldolaw history list
  waldolaw history list --limit 5
  waldolaw history show 3f1c2a9e-...`,
	}

	cmd.AddCommand(newHistoryListCommand())
	cmd.AddCommand(newHistoryShowCommand())

	return cmd
}

func newHistoryListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent planning runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			response, err := a.mediator.Send(a.baseContext(), &appPlanning.ListPlansQuery{Limit: limit})
			if err != nil {
				return err
			}
			records := response.(*appPlanning.ListPlansResponse).Records
			if len(records) == 0 {
				fmt.Println("No planning runs recorded")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RUN ID\tCREATED\tGRID\tFEASIBLE\tSCORE\tCOMMANDS\tPLANNING")
			for _, r := range records {
				fmt.Fprintf(w, "%s\t%s\t%d\t%t\t%.3f\t%d\t%s\n",
					r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.GridSize, r.Feasible, r.Score, r.CommandCount, r.PlanningTime)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show")

	return cmd
}

func newHistoryShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one planning run with its commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			response, err := a.mediator.Send(a.baseContext(), &appPlanning.GetPlanQuery{ID: args[0]})
			if err != nil {
				return err
			}
			r := response.(*appPlanning.GetPlanResponse).Record

			fmt.Printf("Run:          %s\n", r.ID)
			fmt.Printf("Created:      %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
			fmt.Printf("Input digest: %s\n", r.InputDigest)
			fmt.Printf("Grid:         %dx%d\n", r.GridSize, r.GridSize)
			fmt.Printf("Feasible:     %t\n", r.Feasible)
			fmt.Printf("Score:        %.3f\n", r.Score)
			fmt.Printf("Route time:   %d ms\n", r.ElapsedMs)
			fmt.Printf("Search:       %d candidates, %d explored, %d evaluated, hard stop=%t\n",
				r.Candidates, r.Explored, r.Evaluated, r.HardStopped)
			fmt.Printf("Planning:     %s\n", r.PlanningTime)
			fmt.Println("\nCommands:")
			for _, line := range r.Commands {
				fmt.Printf("  %s\n", line)
			}
			return nil
		},
	}
}
