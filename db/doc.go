// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - users: Accounts (unique email, unique username, password digest, bio)
  - likes: One row per (verse_id, user_id) pair
  - comments: Verse comments; this API only counts them

# Relationships

	users 1──* likes
	users 1──* comments

Foreign keys use ON DELETE CASCADE.

# Constraints

  - users.email UNIQUE
  - users.username UNIQUE
  - likes PRIMARY KEY (verse_id, user_id) — a pair is present at most once

# Indexes

Performance indexes on:

  - likes.verse_id (count per verse)
  - comments.verse_id (count per verse)
*/
package db
