package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"musaferBox/internal/models"
	"musaferBox/internal/storage"
	"strconv"
	"strings"

	"github.com/lib/pq"
)

const offerSelect = `
	SELECT o.id, o.agency_id, a.name, o.title, o.description, o.destination,
	       o.price, o.duration_days, o.tags, o.created_at
	FROM offers o
	JOIN agencies a ON a.id = o.agency_id`

// ListOffers returns live offers of approved agencies matching the filter, newest first.
func (s *Storage) ListOffers(f models.OfferFilter) ([]models.Offer, error) {
	conds := []string{"a.status = 'approved'", "o.archived_at IS NULL"}
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if f.Query != "" {
		p := arg(likePattern(f.Query))
		conds = append(conds, fmt.Sprintf("(o.title ILIKE %[1]s OR o.description ILIKE %[1]s OR o.destination ILIKE %[1]s)", p))
	}
	if f.Destination != "" {
		conds = append(conds, "o.destination ILIKE "+arg(likePattern(f.Destination)))
	}
	if f.Tag != "" {
		conds = append(conds, arg(strings.ToLower(f.Tag))+" = ANY(o.tags)")
	}
	if f.MinPrice > 0 {
		conds = append(conds, "o.price >= "+arg(f.MinPrice))
	}
	if f.MaxPrice > 0 {
		conds = append(conds, "o.price <= "+arg(f.MaxPrice))
	}
	if f.MaxDays > 0 {
		conds = append(conds, "o.duration_days <= "+arg(f.MaxDays))
	}

	query := offerSelect + `
	WHERE ` + strings.Join(conds, " AND ") + `
	ORDER BY o.created_at DESC, o.id DESC`

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get offers: %w", err)
	}
	defer rows.Close()

	offers := make([]models.Offer, 0)
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}
		offers = append(offers, *offer)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating offers: %w", err)
	}

	return offers, nil
}

// OfferByID returns a live offer of an approved agency.
func (s *Storage) OfferByID(id int64) (*models.Offer, error) {
	query := offerSelect + `
	WHERE o.id = $1 AND a.status = 'approved' AND o.archived_at IS NULL`

	offer, err := scanOffer(s.DB.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}

	return offer, nil
}

// CreateOffer adds an offer to the agency owned by ownerID. The agency must be approved.
func (s *Storage) CreateOffer(ownerID int64, o models.Offer) (int64, error) {
	var agencyID int64
	var status string

	err := s.DB.QueryRow(`SELECT id, status FROM agencies WHERE owner_id = $1`, ownerID).Scan(&agencyID, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, storage.ErrAgencyNotFound
		}
		return 0, fmt.Errorf("failed to get agency: %w", err)
	}

	if status != models.AgencyApproved {
		return 0, storage.ErrAgencyNotApproved
	}

	query := `
		INSERT INTO offers (agency_id, title, description, destination, price, duration_days, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err = s.DB.QueryRow(query, agencyID, o.Title, o.Description, o.Destination, o.Price, o.DurationDays, pq.Array(normalizeTags(o.Tags))).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create offer: %w", err)
	}

	return id, nil
}

// UpdateOffer rewrites an offer that belongs to the agency owned by ownerID.
func (s *Storage) UpdateOffer(ownerID int64, o models.Offer) error {
	query := `
		UPDATE offers
		SET title = $3, description = $4, destination = $5, price = $6, duration_days = $7, tags = $8
		WHERE id = $1 AND archived_at IS NULL
		AND agency_id = (SELECT id FROM agencies WHERE owner_id = $2)`

	res, err := s.DB.Exec(query, o.ID, ownerID, o.Title, o.Description, o.Destination, o.Price, o.DurationDays, pq.Array(normalizeTags(o.Tags)))
	if err != nil {
		return fmt.Errorf("failed to update offer: %w", err)
	}

	return expectAffected(res, storage.ErrOfferNotFound)
}

// DeleteOffer archives an offer so it can no longer be listed or booked.
// Existing bookings keep pointing at it. A zero ownerID archives it regardless of the owning agency.
func (s *Storage) DeleteOffer(id, ownerID int64) error {
	query := `
		UPDATE offers
		SET archived_at = NOW()
		WHERE id = $1 AND archived_at IS NULL
		AND ($2 = 0 OR agency_id = (SELECT id FROM agencies WHERE owner_id = $2))`

	res, err := s.DB.Exec(query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete offer: %w", err)
	}

	return expectAffected(res, storage.ErrOfferNotFound)
}

func scanOffer(row scanner) (*models.Offer, error) {
	var o models.Offer
	err := row.Scan(
		&o.ID,
		&o.AgencyID,
		&o.AgencyName,
		&o.Title,
		&o.Description,
		&o.Destination,
		&o.Price,
		&o.DurationDays,
		pq.Array(&o.Tags),
		&o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if o.Tags == nil {
		o.Tags = []string{}
	}

	return &o, nil
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))

	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	return out
}
