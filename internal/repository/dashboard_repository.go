package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veloxrent/rental-admin/internal/model"
)

// DashboardRepository provides the aggregate counters for the admin dashboard.
type DashboardRepository struct {
	pool PoolInterface
}

// NewDashboardRepository creates a new DashboardRepository with the given pool.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// NewDashboardRepositoryWithPool creates a new DashboardRepository with a
// custom pool interface. This is primarily used for testing.
func NewDashboardRepositoryWithPool(pool PoolInterface) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// Counts returns the number of non-deleted companies, cars and rentals in a
// single round-trip.
func (r *DashboardRepository) Counts(ctx context.Context) (model.DashboardCounts, error) {
	query := `SELECT
		(SELECT count(*) FROM companies WHERE NOT is_deleted),
		(SELECT count(*) FROM cars WHERE NOT is_deleted),
		(SELECT count(*) FROM rentals WHERE NOT is_deleted)`

	var counts model.DashboardCounts
	err := r.pool.QueryRow(ctx, query).Scan(&counts.Companies, &counts.Cars, &counts.Rentals)
	if err != nil {
		return model.DashboardCounts{}, fmt.Errorf("dashboard counts: %w", err)
	}
	return counts, nil
}
