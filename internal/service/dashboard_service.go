package service

import (
	"context"
	"fmt"

	"github.com/veloxrent/rental-admin/internal/model"
)

// DashboardRepositoryInterface defines the interface for dashboard counters.
type DashboardRepositoryInterface interface {
	Counts(ctx context.Context) (model.DashboardCounts, error)
}

// DashboardService serves the aggregate counters for the admin dashboard.
type DashboardService struct {
	repo DashboardRepositoryInterface
}

// NewDashboardService creates a new DashboardService with the given repository.
func NewDashboardService(repo DashboardRepositoryInterface) *DashboardService {
	return &DashboardService{repo: repo}
}

// Counts returns the current company, car and rental totals.
func (s *DashboardService) Counts(ctx context.Context) (model.DashboardCounts, error) {
	counts, err := s.repo.Counts(ctx)
	if err != nil {
		return model.DashboardCounts{}, fmt.Errorf("dashboard counts: %w", err)
	}
	return counts, nil
}
