// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Versemark API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg)

# Endpoints

Health:

	GET /health

Accounts (public):

	POST /api/register - Create account
	POST /api/login    - Exchange credentials for a session token

Verses:

	GET  /api/verse/{book}/{chapter}/{verse}      - Like/comment counts (public)
	POST /api/verse/{book}/{chapter}/{verse}/like - Toggle like (Bearer token)

Anything else falls through to a plain 404 "Not Found." response.

# Guard Chains

Each route lists its guards explicitly, outermost first; a guard
short-circuits by writing a terminal response instead of calling the
next stage:

	middleware.WithLogging(middleware.RequireAuth(cfg.JWTSecret, verseHandler.ToggleLike))

# Handler Initialization

The router creates handler instances with dependency injection:

	accountHandler := handlers.NewAccountHandler(st, cfg)
	verseHandler := handlers.NewVerseHandler(st, cfg)

All handlers receive the store and configuration.
*/
package router
