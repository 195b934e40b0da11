package planning

import (
	"context"
	"fmt"

	"github.com/andrescamacho/waldolaw-go/internal/application/common"
	domainPlanning "github.com/andrescamacho/waldolaw-go/internal/domain/planning"
)

const defaultListLimit = 20

// ListPlansHandler reads planning history
type ListPlansHandler struct {
	repo domainPlanning.PlanRepository
}

// NewListPlansHandler creates a new list plans handler
func NewListPlansHandler(repo domainPlanning.PlanRepository) *ListPlansHandler {
	return &ListPlansHandler{repo: repo}
}

// Handle executes the list plans query
func (h *ListPlansHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ListPlansQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	records, err := h.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return &ListPlansResponse{Records: records}, nil
}

// GetPlanHandler loads a single run
type GetPlanHandler struct {
	repo domainPlanning.PlanRepository
}

// NewGetPlanHandler creates a new get plan handler
func NewGetPlanHandler(repo domainPlanning.PlanRepository) *GetPlanHandler {
	return &GetPlanHandler{repo: repo}
}

// Handle executes the get plan query
func (h *GetPlanHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetPlanQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	record, err := h.repo.FindByID(ctx, query.ID)
	if err != nil {
		return nil, fmt.Errorf("plan not found: %w", err)
	}
	return &GetPlanResponse{Record: record}, nil
}
