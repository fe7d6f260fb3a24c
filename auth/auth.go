// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// HashPassword returns the lowercase hex SHA-256 digest of the plaintext.
// Deterministic and unsalted: every stored password_hash was produced this
// way, so login comparison is exact string equality against the digest.
//
// TODO: move to a salted scheme (argon2id) once a rehash-on-login path
// exists for the already-stored digests.
func HashPassword(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// NewUserID generates an opaque, server-side unique identifier for a user
func NewUserID() string {
	return uuid.NewString()
}
