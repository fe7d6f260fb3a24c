// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and session token utilities.

# Password Hashing

Passwords are stored as unsalted SHA-256 hex digests:

	hash := auth.HashPassword(password)

The same function runs at registration and at login; comparison is exact
string equality. This matches the digests already in the users table.

# Session Tokens

Sessions are stateless, signed JWTs (HS256) with a fixed 24-hour lifetime:

	token, err := auth.IssueToken(secret, userID)
	userID, err := auth.VerifyToken(secret, token)

Claims carried: sub (user ID), iat, exp. There is no server-side session
store and no revocation list; a token is valid until its expiry or until
the signature fails to verify. VerifyToken returns ErrInvalidToken for
every rejection cause.

The secret is a single symmetric key configured at boot (see cliparse).

# User IDs

Opaque server-generated identifiers:

	id := auth.NewUserID() // UUIDv4
*/
package auth
