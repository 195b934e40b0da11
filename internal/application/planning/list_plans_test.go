package planning_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appPlanning "github.com/andrescamacho/waldolaw-go/internal/application/planning"
	domainPlanning "github.com/andrescamacho/waldolaw-go/internal/domain/planning"
	"github.com/andrescamacho/waldolaw-go/test/helpers"
)

func seedRecords(t *testing.T, repo *helpers.MockPlanRepository, n int) {
	t.Helper()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		record := &domainPlanning.PlanRecord{ID: fmt.Sprintf("run-%02d", i), CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, repo.Save(context.Background(), record))
	}
}

func TestListPlansHandler_DefaultLimit(t *testing.T) {
	// Arrange
	repo := helpers.NewMockPlanRepository()
	seedRecords(t, repo, 25)
	handler := appPlanning.NewListPlansHandler(repo)

	// Act
	response, err := handler.Handle(context.Background(), &appPlanning.ListPlansQuery{})

	// Assert
	require.NoError(t, err)
	records := response.(*appPlanning.ListPlansResponse).Records
	assert.Len(t, records, 20)
	assert.Equal(t, "run-24", records[0].ID)
}

func TestListPlansHandler_RepositoryError(t *testing.T) {
	repo := helpers.NewMockPlanRepository()
	repo.SetError("connection refused")
	handler := appPlanning.NewListPlansHandler(repo)

	_, err := handler.Handle(context.Background(), &appPlanning.ListPlansQuery{Limit: 3})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGetPlanHandler(t *testing.T) {
	// Arrange
	repo := helpers.NewMockPlanRepository()
	seedRecords(t, repo, 2)
	handler := appPlanning.NewGetPlanHandler(repo)

	// Act
	response, err := handler.Handle(context.Background(), &appPlanning.GetPlanQuery{ID: "run-01"})
	_, missingErr := handler.Handle(context.Background(), &appPlanning.GetPlanQuery{ID: "run-99"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "run-01", response.(*appPlanning.GetPlanResponse).Record.ID)
	assert.Error(t, missingErr)
}
