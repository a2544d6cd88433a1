package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"musaferBox/internal/lib/random"
	"musaferBox/internal/models"
	"musaferBox/internal/storage"
	"time"
)

const maxReferenceAttempts = 10

const bookingSelect = `
	SELECT b.id, b.reference, b.offer_id, o.title, o.agency_id, a.name, a.owner_id,
	       b.client_id, b.travelers, b.travel_date, b.contact_name, b.contact_phone,
	       b.notes, b.total_price, b.status, b.created_at, b.updated_at
	FROM bookings b
	JOIN offers o ON o.id = b.offer_id
	JOIN agencies a ON a.id = o.agency_id`

// CreateBooking stores a pending booking for an offer of an approved agency.
// The total price is computed from the offer price and assigned a free four-digit reference.
func (s *Storage) CreateBooking(b models.Booking) (*models.Booking, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var price float64
	offerQuery := `
		SELECT o.price
		FROM offers o
		JOIN agencies a ON a.id = o.agency_id
		WHERE o.id = $1 AND a.status = 'approved' AND o.archived_at IS NULL
		FOR SHARE OF o`

	err = tx.QueryRow(offerQuery, b.OfferID).Scan(&price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}

	b.TotalPrice = math.Round(price*float64(b.Travelers)*100) / 100
	b.Status = models.BookingPending

	insertQuery := `
		INSERT INTO bookings (reference, offer_id, client_id, travelers, travel_date,
		                      contact_name, contact_phone, notes, total_price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (reference) DO NOTHING
		RETURNING id`

	id, err := insertWithReference(random.NewReference, func(ref string) (int64, error) {
		var id int64
		err := tx.QueryRow(insertQuery, ref, b.OfferID, b.ClientID, b.Travelers, b.TravelDate,
			b.ContactName, b.ContactPhone, b.Notes, b.TotalPrice, b.Status).Scan(&id)
		return id, err
	})
	if err != nil {
		if errors.Is(err, storage.ErrReferenceExhausted) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	created, err := scanBooking(tx.QueryRow(bookingSelect+` WHERE b.id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to read created booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit booking: %w", err)
	}

	return created, nil
}

// insertWithReference calls insert with fresh references until one is free.
// insert reports a taken reference as sql.ErrNoRows.
func insertWithReference(next func() string, insert func(ref string) (int64, error)) (int64, error) {
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		id, err := insert(next())
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return 0, err
		}

		return id, nil
	}

	return 0, storage.ErrReferenceExhausted
}

func (s *Storage) BookingByID(id int64) (*models.Booking, error) {
	booking, err := scanBooking(s.DB.QueryRow(bookingSelect+` WHERE b.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return booking, nil
}

func (s *Storage) ListBookings() ([]models.Booking, error) {
	return s.listBookings(bookingSelect + ` ORDER BY b.created_at DESC, b.id DESC`)
}

func (s *Storage) ListBookingsByClient(clientID int64) ([]models.Booking, error) {
	return s.listBookings(bookingSelect+` WHERE b.client_id = $1 ORDER BY b.created_at DESC, b.id DESC`, clientID)
}

// ListBookingsByAgency returns bookings of offers that belong to the agency owned by ownerID.
func (s *Storage) ListBookingsByAgency(ownerID int64) ([]models.Booking, error) {
	return s.listBookings(bookingSelect+` WHERE a.owner_id = $1 ORDER BY b.created_at DESC, b.id DESC`, ownerID)
}

// CancelBooking cancels a pending or confirmed booking of the client.
func (s *Storage) CancelBooking(id, clientID int64) error {
	query := `
		UPDATE bookings
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND client_id = $2 AND status IN ('pending', 'confirmed')`

	res, err := s.DB.Exec(query, id, clientID)
	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	return s.transitionResult(res, `SELECT 1 FROM bookings WHERE id = $1 AND client_id = $2`, id, clientID)
}

// DecideBooking moves a pending booking of the agency's offers to confirmed or rejected.
func (s *Storage) DecideBooking(id, ownerID int64, status string) error {
	if status != models.BookingConfirmed && status != models.BookingRejected {
		return fmt.Errorf("unsupported booking decision %q", status)
	}

	query := `
		UPDATE bookings b
		SET status = $3, updated_at = NOW()
		FROM offers o
		JOIN agencies a ON a.id = o.agency_id
		WHERE b.id = $1 AND o.id = b.offer_id AND a.owner_id = $2 AND b.status = 'pending'`

	res, err := s.DB.Exec(query, id, ownerID, status)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	existsQuery := `
		SELECT 1
		FROM bookings b
		JOIN offers o ON o.id = b.offer_id
		JOIN agencies a ON a.id = o.agency_id
		WHERE b.id = $1 AND a.owner_id = $2`

	return s.transitionResult(res, existsQuery, id, ownerID)
}

func (s *Storage) DeleteBooking(id int64) error {
	res, err := s.DB.Exec(`DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	return expectAffected(res, storage.ErrBookingNotFound)
}

// ExpirePendingBookings marks bookings that stayed pending longer than ttl as expired.
func (s *Storage) ExpirePendingBookings(ttl time.Duration) (int64, error) {
	query := `
		UPDATE bookings
		SET status = 'expired', updated_at = NOW()
		WHERE status = 'pending' AND created_at < $1`

	res, err := s.DB.Exec(query, time.Now().Add(-ttl))
	if err != nil {
		return 0, fmt.Errorf("failed to expire pending bookings: %w", err)
	}

	n, _ := res.RowsAffected()

	return n, nil
}

// transitionResult tells a missing booking apart from one in the wrong state
// when a conditional update touched no rows.
func (s *Storage) transitionResult(res sql.Result, existsQuery string, args ...any) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n > 0 {
		return nil
	}

	var one int
	err = s.DB.QueryRow(existsQuery, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrBookingNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check booking: %w", err)
	}

	return storage.ErrBookingState
}

func (s *Storage) listBookings(query string, args ...any) ([]models.Booking, error) {
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, *booking)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

func scanBooking(row scanner) (*models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID,
		&b.Reference,
		&b.OfferID,
		&b.OfferTitle,
		&b.AgencyID,
		&b.AgencyName,
		&b.AgencyOwnerID,
		&b.ClientID,
		&b.Travelers,
		&b.TravelDate,
		&b.ContactName,
		&b.ContactPhone,
		&b.Notes,
		&b.TotalPrice,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &b, nil
}
