// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"

	"github.com/danielhkuo/versemark/models"
)

var (
	// ErrUserNotFound distinguishes "no row" from an underlying store error.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicate reports a uniqueness violation on insert.
	ErrDuplicate = errors.New("duplicate record")
)

// Store is the data-access contract the handlers depend on. Each operation
// maps to a single parameterized statement; no cross-call transactions are
// assumed.
type Store interface {
	// FindUserByEmail returns ErrUserNotFound when no account matches.
	FindUserByEmail(email string) (models.User, error)

	// InsertUser returns ErrDuplicate when email or username is taken.
	// A violated insert is rejected whole, never partially applied.
	InsertUser(u models.User) error

	// FindLike reports whether the (verseID, userID) pair exists.
	FindLike(verseID, userID string) (bool, error)

	// InsertLike records a like. Returns false when the row already
	// existed (a concurrent insert won); the pair is liked either way.
	InsertLike(verseID, userID string) (bool, error)

	// DeleteLike removes a like. Returns false when the row was already
	// gone; the pair is unliked either way.
	DeleteLike(verseID, userID string) (bool, error)

	// CountLikes returns the number of likes on a verse.
	CountLikes(verseID string) (int, error)

	// CountComments returns the number of comments on a verse.
	CountComments(verseID string) (int, error)
}
