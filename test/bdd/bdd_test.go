package bdd

import (
	"testing"

	"github.com/andrescamacho/waldolaw-go/test/bdd/steps"
	"github.com/cucumber/godog"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/domain", "features/adapters"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(sc *godog.ScenarioContext) {
	// Domain layer scenarios
	steps.InitializeDirectionScenario(sc)
	steps.InitializeFuelAllocationScenario(sc)
	// NOTE: RoutePlanningScenario registered BEFORE PuzzleScenario so its plan
	// assertions take precedence for puzzle_loading.feature as well
	steps.InitializeRoutePlanningScenario(sc)

	// Adapter layer scenarios
	steps.InitializePuzzleScenario(sc)
}
