// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/danielhkuo/versemark/models"
)

// SQL implements Store over a PostgreSQL database/sql connection.
type SQL struct {
	db *sql.DB
}

func NewSQL(db *sql.DB) *SQL {
	return &SQL{db: db}
}

func (s *SQL) FindUserByEmail(email string) (models.User, error) {
	var u models.User
	err := s.db.QueryRow(`
		SELECT id, email, username, password_hash, bio FROM users WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.Bio)

	if err == sql.ErrNoRows {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return u, nil
}

func (s *SQL) InsertUser(u models.User) error {
	_, err := s.db.Exec(`
		INSERT INTO users (id, email, username, password_hash, bio)
		VALUES ($1, $2, $3, $4, $5)
	`, u.ID, u.Email, u.Username, u.PasswordHash, u.Bio)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (s *SQL) FindLike(verseID, userID string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM likes WHERE verse_id = $1 AND user_id = $2
		)
	`, verseID, userID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("failed to query like: %w", err)
	}
	return exists, nil
}

// InsertLike uses ON CONFLICT DO NOTHING so a racing duplicate insert is a
// swallowable no-op instead of an error or a double row.
func (s *SQL) InsertLike(verseID, userID string) (bool, error) {
	res, err := s.db.Exec(`
		INSERT INTO likes (verse_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (verse_id, user_id) DO NOTHING
	`, verseID, userID)

	if err != nil {
		return false, fmt.Errorf("failed to insert like: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read insert result: %w", err)
	}
	return n > 0, nil
}

func (s *SQL) DeleteLike(verseID, userID string) (bool, error) {
	res, err := s.db.Exec(`
		DELETE FROM likes WHERE verse_id = $1 AND user_id = $2
	`, verseID, userID)

	if err != nil {
		return false, fmt.Errorf("failed to delete like: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return n > 0, nil
}

func (s *SQL) CountLikes(verseID string) (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM likes WHERE verse_id = $1
	`, verseID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

func (s *SQL) CountComments(verseID string) (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM comments WHERE verse_id = $1
	`, verseID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}

// isUniqueViolation checks for PostgreSQL error class 23505
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
