package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"musaferBox/internal/models"
	"musaferBox/internal/storage"
	"time"
)

func (s *Storage) CreateUser(email, passHash, fullName, role string) (int64, error) {
	query := `
		INSERT INTO users (email, password_hash, full_name, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := s.DB.QueryRow(query, email, passHash, fullName, role).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, storage.ErrUserExists
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	return id, nil
}

// CreateAgencyAccount registers an agency user together with its pending agency.
func (s *Storage) CreateAgencyAccount(email, passHash, fullName, agencyName string) (int64, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var userID int64
	err = tx.QueryRow(`
		INSERT INTO users (email, password_hash, full_name, role)
		VALUES ($1, $2, $3, 'agency')
		RETURNING id`, email, passHash, fullName).Scan(&userID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, storage.ErrUserExists
		}
		return 0, fmt.Errorf("failed to create agency user: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO agencies (owner_id, name, status)
		VALUES ($1, $2, 'pending')`, userID, agencyName)
	if err != nil {
		return 0, fmt.Errorf("failed to create agency: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit agency account: %w", err)
	}

	return userID, nil
}

// EnsureAdmin creates the admin account unless the email is already registered.
// It reports whether a new account was created.
func (s *Storage) EnsureAdmin(email, passHash, fullName string) (bool, error) {
	query := `
		INSERT INTO users (email, password_hash, full_name, role)
		VALUES ($1, $2, $3, 'admin')
		ON CONFLICT (email) DO NOTHING`

	res, err := s.DB.Exec(query, email, passHash, fullName)
	if err != nil {
		return false, fmt.Errorf("failed to ensure admin: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to ensure admin: %w", err)
	}

	return n > 0, nil
}

func (s *Storage) UserByEmail(email string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, full_name, role, created_at
		FROM users
		WHERE email = $1`

	user, err := scanUser(s.DB.QueryRow(query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (s *Storage) ListUsers() ([]models.User, error) {
	query := `
		SELECT id, email, password_hash, full_name, role, created_at
		FROM users
		ORDER BY created_at DESC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

func (s *Storage) DeleteUser(id int64) error {
	res, err := s.DB.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return expectAffected(res, storage.ErrUserNotFound)
}

func (s *Storage) CreateSession(token string, userID int64, expiresAt time.Time) error {
	query := `
		INSERT INTO sessions (token, user_id, expires_at)
		VALUES ($1, $2, $3)`

	if _, err := s.DB.Exec(query, token, userID, expiresAt); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// UserBySession resolves an unexpired session token to its user.
func (s *Storage) UserBySession(token string) (*models.User, error) {
	query := `
		SELECT u.id, u.email, u.password_hash, u.full_name, u.role, u.created_at
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = $1 AND s.expires_at > NOW()`

	user, err := scanUser(s.DB.QueryRow(query, token))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return user, nil
}

func (s *Storage) DeleteSession(token string) error {
	if _, err := s.DB.Exec(`DELETE FROM sessions WHERE token = $1`, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (s *Storage) DeleteExpiredSessions() (int64, error) {
	res, err := s.DB.Exec(`DELETE FROM sessions WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	n, _ := res.RowsAffected()

	return n, nil
}

func scanUser(row scanner) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FullName,
		&u.Role,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return notFound
	}

	return nil
}
