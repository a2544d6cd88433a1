package postgres

import (
	"fmt"
	"musaferBox/internal/models"
	"musaferBox/internal/storage"
)

func (s *Storage) CreatePlan(p models.TravelPlan) (int64, error) {
	query := `
		INSERT INTO travel_plans (user_id, destination, start_date, end_date, budget, travelers, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := s.DB.QueryRow(query, p.UserID, p.Destination, p.StartDate, p.EndDate, p.Budget, p.Travelers, p.Notes).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create travel plan: %w", err)
	}

	return id, nil
}

func (s *Storage) ListPlans(userID int64) ([]models.TravelPlan, error) {
	query := `
		SELECT id, user_id, destination, start_date, end_date, budget, travelers, notes, created_at
		FROM travel_plans
		WHERE user_id = $1
		ORDER BY start_date ASC, id ASC`

	rows, err := s.DB.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get travel plans: %w", err)
	}
	defer rows.Close()

	plans := make([]models.TravelPlan, 0)
	for rows.Next() {
		var p models.TravelPlan
		err = rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Destination,
			&p.StartDate,
			&p.EndDate,
			&p.Budget,
			&p.Travelers,
			&p.Notes,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan travel plan: %w", err)
		}
		plans = append(plans, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating travel plans: %w", err)
	}

	return plans, nil
}

func (s *Storage) DeletePlan(id, userID int64) error {
	res, err := s.DB.Exec(`DELETE FROM travel_plans WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete travel plan: %w", err)
	}

	return expectAffected(res, storage.ErrPlanNotFound)
}
