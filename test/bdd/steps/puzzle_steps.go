package steps

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/andrescamacho/waldolaw-go/internal/adapters/logging"
	"github.com/andrescamacho/waldolaw-go/internal/adapters/puzzle"
	"github.com/andrescamacho/waldolaw-go/internal/domain/shared"
	"github.com/andrescamacho/waldolaw-go/internal/domain/world"
	"github.com/cucumber/godog"
)

type puzzleContext struct {
	raw      string
	format   puzzle.Format
	doc      *puzzle.Document
	game     *world.Game
	logs     bytes.Buffer
	loadErr  error
	buildErr error
}

func (pc *puzzleContext) reset() {
	pc.raw = ""
	pc.format = puzzle.FormatJSON
	pc.doc = nil
	pc.game = nil
	pc.logs.Reset()
	pc.loadErr = nil
	pc.buildErr = nil
}

// Given steps

func (pc *puzzleContext) aPuzzleDocument(format string, body *godog.DocString) error {
	pc.format = puzzle.Format(format)
	pc.raw = body.Content
	return nil
}

// When steps

func (pc *puzzleContext) iLoadThePuzzle() error {
	pc.doc, pc.loadErr = puzzle.Parse([]byte(pc.raw), pc.format)
	return nil
}

func (pc *puzzleContext) iBuildTheSector() error {
	if err := pc.iLoadThePuzzle(); err != nil {
		return err
	}
	if pc.loadErr != nil {
		return fmt.Errorf("failed to load puzzle: %w", pc.loadErr)
	}

	builder := puzzle.NewGameBuilder(logging.NewWriterLogger(&pc.logs, "debug", "text"))
	pc.game, pc.buildErr = builder.Build(pc.doc.Input)
	if pc.buildErr == nil && sharedRoutePlanning != nil {
		sharedRoutePlanning.game = pc.game
	}
	return nil
}

// Then steps

func (pc *puzzleContext) loadingShouldFailMentioning(fragment string) error {
	if pc.loadErr == nil {
		return fmt.Errorf("expected loading to fail with '%s', but it succeeded", fragment)
	}
	if !strings.Contains(pc.loadErr.Error(), fragment) {
		return fmt.Errorf("expected error mentioning '%s', got '%s'", fragment, pc.loadErr.Error())
	}
	return nil
}

func (pc *puzzleContext) buildingShouldFailMentioning(fragment string) error {
	if pc.buildErr == nil {
		return fmt.Errorf("expected building to fail with '%s', but it succeeded", fragment)
	}
	if !strings.Contains(pc.buildErr.Error(), fragment) {
		return fmt.Errorf("expected error mentioning '%s', got '%s'", fragment, pc.buildErr.Error())
	}
	return nil
}

func (pc *puzzleContext) theSectorShouldBuild() error {
	if pc.buildErr != nil {
		return fmt.Errorf("expected the sector to build, got: %v", pc.buildErr)
	}
	return nil
}

func (pc *puzzleContext) itemShouldBeAt(name string, x, y int) error {
	if pc.game == nil {
		return fmt.Errorf("no sector was built")
	}
	expected := shared.NewPosition(x, y)
	for _, item := range pc.game.Items() {
		if item.Name != name {
			continue
		}
		if item.Position != expected {
			return fmt.Errorf("expected %s at %s, got %s", name, expected, item.Position)
		}
		return nil
	}
	return fmt.Errorf("item %s not found", name)
}

func (pc *puzzleContext) theSectorShouldHoldItems(expected int) error {
	if got := len(pc.game.Items()); got != expected {
		return fmt.Errorf("expected %d items, got %d", expected, got)
	}
	return nil
}

func (pc *puzzleContext) theBuildLogShouldMention(fragment string) error {
	if !strings.Contains(pc.logs.String(), fragment) {
		return fmt.Errorf("expected build log to mention '%s', got:\n%s", fragment, pc.logs.String())
	}
	return nil
}

func (pc *puzzleContext) thePuzzleDigestShouldBeHexCharacters(length int) error {
	if len(pc.doc.Digest) != length {
		return fmt.Errorf("expected digest of %d characters, got %q", length, pc.doc.Digest)
	}
	for _, r := range pc.doc.Digest {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return fmt.Errorf("digest %q is not lowercase hex", pc.doc.Digest)
		}
	}
	return nil
}

func InitializePuzzleScenario(ctx *godog.ScenarioContext) {
	pc := &puzzleContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		pc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a puzzle document in (json|yaml) format:$`, pc.aPuzzleDocument)

	// When steps
	ctx.Step(`^I load the puzzle$`, pc.iLoadThePuzzle)
	ctx.Step(`^I build the sector from the puzzle$`, pc.iBuildTheSector)

	// Then steps
	ctx.Step(`^loading should fail with an error mentioning "([^"]*)"$`, pc.loadingShouldFailMentioning)
	ctx.Step(`^building should fail with an error mentioning "([^"]*)"$`, pc.buildingShouldFailMentioning)
	ctx.Step(`^the sector should build$`, pc.theSectorShouldBuild)
	ctx.Step(`^"([^"]*)" should be at \((\d+), (\d+)\)$`, pc.itemShouldBeAt)
	ctx.Step(`^the sector should hold (\d+) items$`, pc.theSectorShouldHoldItems)
	ctx.Step(`^the build log should mention "([^"]*)"$`, pc.theBuildLogShouldMention)
	ctx.Step(`^the puzzle digest should be (\d+) hex characters$`, pc.thePuzzleDigestShouldBeHexCharacters)
}
