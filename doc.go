// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Versemark API server.

Versemark is a scripture-annotation service: readers register an account,
log in for a signed session token, and toggle likes on individual verses.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... JWT_SECRET=... go run main.go

Or with flags:

	go run main.go -p 8080 -d "postgres://..." -jwt-secret "..."

A .env file in the working directory is loaded automatically for local
development.

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string
  - JWT_SECRET (-jwt-secret): Symmetric key for session token signing

Optional settings:

  - PORT (-p): Server port (default: 8080)

The server refuses to boot without JWT_SECRET; it never serves requests
unauthenticated.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (accounts, verses)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Auth gate, CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Password hashing and JWT issue/verify
  - store: Account and like data access over parameterized SQL
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
