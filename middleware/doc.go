// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Auth Gate

Protected routes are wrapped with RequireAuth, which expects an
Authorization header of the form "Bearer <token>":

	mux.HandleFunc("POST /api/verse/{book}/{chapter}/{verse}/like",
		middleware.WithLogging(middleware.RequireAuth(cfg.JWTSecret, h.ToggleLike)))

A missing or malformed header yields 401 with body
{"error":"Missing or invalid authorization header"}; a token that fails
verification yields 401 with {"error":"Invalid token"}. In both cases the
wrapped handler never runs. On success the verified user ID is available
downstream:

	userID, ok := middleware.UserIDFromContext(r.Context())

Guards are composed explicitly per route, each stage able to
short-circuit by writing a terminal response.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type, Authorization.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
*/
package middleware
