// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides data access for accounts and verse likes.

# Contract

Handlers depend on the Store interface, not on SQL directly:

	st := store.NewSQL(dbConn)
	user, err := st.FindUserByEmail(email)

Each operation is a single parameterized statement. Failures distinguish
"no row found" (ErrUserNotFound, boolean results) from underlying store
errors.

# Uniqueness

InsertUser maps a PostgreSQL unique violation (email or username taken)
to ErrDuplicate. The violated insert is rejected whole.

# Like Semantics

A like is one row keyed by (verse_id, user_id). InsertLike uses
ON CONFLICT DO NOTHING and DeleteLike reports rows affected, so two
concurrent toggles for the same pair cannot produce a duplicate row or a
spurious error: the losing request observes false and the final state is
still exactly liked-once or absent.
*/
package store
