// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8080)
  - DatabaseURL: PostgreSQL connection string (required)
  - JWTSecret: Symmetric key for session token signing (required)

# CLI Flags

	-p          Server port
	-d          Database URL
	-jwt-secret JWT signing secret

# Environment Variables

Flags fall back to environment variables:

	PORT         → -p
	DATABASE_URL → -d
	JWT_SECRET   → -jwt-secret

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - JWT_SECRET must be provided

The JWT secret is load-at-boot, read-only thereafter. A missing secret is
a fatal boot condition: the server refuses to serve rather than operate
unauthenticated.
*/
package cliparse
