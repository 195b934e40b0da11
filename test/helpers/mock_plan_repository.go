package helpers

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/andrescamacho/waldolaw-go/internal/domain/planning"
)

// MockPlanRepository is a test double for PlanRepository interface
type MockPlanRepository struct {
	mu      sync.RWMutex
	records map[string]*planning.PlanRecord // runID -> record

	// Call tracking
	saveCalls int

	// Error injection
	shouldError bool
	errorMsg    string
}

// NewMockPlanRepository creates a new mock plan repository
func NewMockPlanRepository() *MockPlanRepository {
	return &MockPlanRepository{
		records: make(map[string]*planning.PlanRecord),
	}
}

// SetError makes every call fail with msg
func (r *MockPlanRepository) SetError(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shouldError = true
	r.errorMsg = msg
}

// SaveCalls returns how many times Save was called
func (r *MockPlanRepository) SaveCalls() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.saveCalls
}

// Save stores a record
func (r *MockPlanRepository) Save(ctx context.Context, record *planning.PlanRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveCalls++

	if r.shouldError {
		return fmt.Errorf("%s", r.errorMsg)
	}
	r.records[record.ID] = record
	return nil
}

// FindByID finds a record by run ID
func (r *MockPlanRepository) FindByID(ctx context.Context, id string) (*planning.PlanRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.shouldError {
		return nil, fmt.Errorf("%s", r.errorMsg)
	}
	record, ok := r.records[id]
	if !ok {
		return nil, fmt.Errorf("plan not found: %s", id)
	}
	return record, nil
}

// ListRecent returns up to limit records, newest first
func (r *MockPlanRepository) ListRecent(ctx context.Context, limit int) ([]*planning.PlanRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.shouldError {
		return nil, fmt.Errorf("%s", r.errorMsg)
	}
	records := make([]*planning.PlanRecord, 0, len(r.records))
	for _, record := range r.records {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
