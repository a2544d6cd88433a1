package postgres

import (
	"context"
	"fmt"
	"musaferBox/internal/models"

	"golang.org/x/sync/errgroup"
)

// DashboardStats aggregates the admin dashboard counters. The queries run concurrently.
func (s *Storage) DashboardStats() (*models.DashboardStats, error) {
	var stats models.DashboardStats

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() (err error) {
		stats.UsersByRole, err = s.countBy(ctx, `SELECT role, COUNT(*) FROM users GROUP BY role`)
		return err
	})
	g.Go(func() (err error) {
		stats.AgenciesByStatus, err = s.countBy(ctx, `SELECT status, COUNT(*) FROM agencies GROUP BY status`)
		return err
	})
	g.Go(func() (err error) {
		stats.BookingsByStatus, err = s.countBy(ctx, `SELECT status, COUNT(*) FROM bookings GROUP BY status`)
		return err
	})
	g.Go(func() error {
		query := `
			SELECT
				(SELECT COUNT(*) FROM offers WHERE archived_at IS NULL),
				(SELECT COALESCE(SUM(total_price), 0) FROM bookings WHERE status = 'confirmed')`

		if err := s.DB.QueryRowContext(ctx, query).Scan(&stats.Offers, &stats.Revenue); err != nil {
			return fmt.Errorf("failed to get offer and revenue totals: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (s *Storage) countBy(ctx context.Context, query string) (map[string]int, error) {
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var key string
		var n int
		if err = rows.Scan(&key, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[key] = n
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating counts: %w", err)
	}

	return counts, nil
}
