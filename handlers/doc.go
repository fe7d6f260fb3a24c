// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Versemark API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - AccountHandler: Registration and login
  - VerseHandler: Verse interaction counts and like toggling

Handlers are created via constructor functions that accept a store.Store
and Config:

	accountHandler := handlers.NewAccountHandler(st, cfg)

# Account Flow

	POST /api/register → Register (201, no auto-login)
	POST /api/login    → Login (200 with session token)

Registration hashes the password, generates a fresh user ID, and inserts
with the default bio. Duplicate email or username returns 409. Login
returns 401 "Invalid credentials" for unknown email and wrong password
alike.

# Verse Flow

	GET  /api/verse/{book}/{chapter}/{verse}      → Interactions (public)
	POST /api/verse/{book}/{chapter}/{verse}/like → ToggleLike (Bearer token)

Both derive verse_id as "book-chapter-verse" via VerseID. ToggleLike
alternates state: first call likes (201 "Liked"), second unlikes
(200 "Unliked"). Interactions fetches like and comment counts
concurrently and joins them before responding.
*/
package handlers
