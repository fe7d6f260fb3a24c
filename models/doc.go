// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest: email, username, password
  - LoginRequest: email, password

# Response Types

Types for JSON responses:

  - LoginResponse: token
  - MessageResponse: message
  - VerseInteractionsResponse: likes, comments
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - User: account record; PasswordHash is never serialized
  - Like: one row per (verse_id, user_id) pair

# Constants

	DefaultBio = "Loves the Word of God."
*/
package models
