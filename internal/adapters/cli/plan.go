package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/waldolaw-go/internal/adapters/puzzle"
	"github.com/andrescamacho/waldolaw-go/internal/application/common"
	appPlanning "github.com/andrescamacho/waldolaw-go/internal/application/planning"
)

// NewPlanCommand creates the plan command
func NewPlanCommand() *cobra.Command {
	var persist bool
	var printCommands bool

	cmd := &cobra.Command{
		Use:   "plan <input> <output>",
		Short: "Plan a route and write the ship commands",
		Long: `Read a puzzle (JSON, or YAML by .yaml/.yml extension), plan a route from
Base through Waldo and back, and write {"Commands": [...]} to the output file.

Deadlines are measured from process start. When no fuel-feasible route exists
the first route found is written anyway; when no route exists at all only the
NAME command is written.

Examples:
  waldolaw plan input.json output.json
  waldolaw plan puzzle.yaml output.json --persist --print`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath, outputPath := args[0], args[1]

			a, err := newApp(persist)
			if err != nil {
				return err
			}
			defer a.Close()
			ctx := a.baseContext()

			doc, err := puzzle.LoadFile(inputPath)
			if err != nil {
				return err
			}
			game, err := puzzle.NewGameBuilder(a.logger).Build(doc.Input)
			if err != nil {
				return err
			}
			a.logger.Log(common.LevelDebug, "puzzle loaded", map[string]interface{}{
				"input":  inputPath,
				"digest": doc.Digest,
				"level":  "\n" + game.Level().Render(),
			})

			response, err := a.mediator.Send(ctx, &appPlanning.PlanRouteCommand{
				Game:        game,
				StartedAt:   processStart,
				InputDigest: doc.Digest,
				Persist:     persist || a.cfg.Planner.RecordHistory,
			})
			if err != nil {
				return fmt.Errorf("planning failed: %w", err)
			}
			result := response.(*appPlanning.PlanRouteResponse)

			lines := result.Plan.Commands.Lines()
			if err := puzzle.WriteCommands(outputPath, lines); err != nil {
				return err
			}

			if printCommands {
				fmt.Println(strings.Join(lines, "\n"))
			}
			fmt.Printf("Run %s: %d commands, score %.3f, feasible=%t -> %s\n",
				result.RunID, result.Plan.Commands.Count(), result.Plan.Score, result.Plan.Feasible, outputPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&persist, "persist", false, "Save the run to the history database")
	cmd.Flags().BoolVar(&printCommands, "print", false, "Also print the commands to stdout")

	return cmd
}
