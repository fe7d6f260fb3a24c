// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// DefaultBio is assigned to every newly registered user.
const DefaultBio = "Loves the Word of God."

// Request types

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response types

type LoginResponse struct {
	Token string `json:"token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type VerseInteractionsResponse struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
}

// Domain types

type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never expose in JSON
	Bio          string `json:"bio"`
}

type Like struct {
	VerseID string `json:"verse_id"`
	UserID  string `json:"user_id"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
