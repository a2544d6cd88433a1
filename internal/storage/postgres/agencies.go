package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"musaferBox/internal/models"
	"musaferBox/internal/storage"
)

const agencyColumns = `id, owner_id, name, description, phone, website, city, status, created_at, updated_at`

// ListAgencies returns agencies with the given status, or all of them when status is empty.
func (s *Storage) ListAgencies(status string) ([]models.Agency, error) {
	query := `
		SELECT ` + agencyColumns + `
		FROM agencies
		WHERE $1 = '' OR status = $1
		ORDER BY created_at DESC`

	rows, err := s.DB.Query(query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to get agencies: %w", err)
	}
	defer rows.Close()

	agencies := make([]models.Agency, 0)
	for rows.Next() {
		agency, err := scanAgency(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan agency: %w", err)
		}
		agencies = append(agencies, *agency)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating agencies: %w", err)
	}

	return agencies, nil
}

func (s *Storage) AgencyByID(id int64) (*models.Agency, error) {
	query := `SELECT ` + agencyColumns + ` FROM agencies WHERE id = $1`

	return s.getAgency(query, id)
}

func (s *Storage) AgencyByOwner(ownerID int64) (*models.Agency, error) {
	query := `SELECT ` + agencyColumns + ` FROM agencies WHERE owner_id = $1`

	return s.getAgency(query, ownerID)
}

func (s *Storage) UpdateAgencyProfile(ownerID int64, p models.AgencyProfile) (*models.Agency, error) {
	query := `
		UPDATE agencies
		SET name = $2, description = $3, phone = $4, website = $5, city = $6, updated_at = NOW()
		WHERE owner_id = $1
		RETURNING ` + agencyColumns

	return s.getAgency(query, ownerID, p.Name, p.Description, p.Phone, p.Website, p.City)
}

func (s *Storage) SetAgencyStatus(id int64, status string) error {
	query := `
		UPDATE agencies
		SET status = $2, updated_at = NOW()
		WHERE id = $1`

	res, err := s.DB.Exec(query, id, status)
	if err != nil {
		return fmt.Errorf("failed to set agency status: %w", err)
	}

	return expectAffected(res, storage.ErrAgencyNotFound)
}

func (s *Storage) getAgency(query string, args ...any) (*models.Agency, error) {
	agency, err := scanAgency(s.DB.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAgencyNotFound
		}
		return nil, fmt.Errorf("failed to get agency: %w", err)
	}

	return agency, nil
}

func scanAgency(row scanner) (*models.Agency, error) {
	var a models.Agency
	err := row.Scan(
		&a.ID,
		&a.OwnerID,
		&a.Name,
		&a.Description,
		&a.Phone,
		&a.Website,
		&a.City,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &a, nil
}
