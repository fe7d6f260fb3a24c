// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/versemark/cliparse"
	"github.com/danielhkuo/versemark/handlers"
	"github.com/danielhkuo/versemark/middleware"
	"github.com/danielhkuo/versemark/store"
)

func NewRouter(st store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(st, cfg)
	verseHandler := handlers.NewVerseHandler(st, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts (public)
	mux.HandleFunc("POST /api/register", middleware.WithLogging(accountHandler.Register))
	mux.HandleFunc("POST /api/login", middleware.WithLogging(accountHandler.Login))

	// Verse interactions (public read)
	mux.HandleFunc("GET /api/verse/{book}/{chapter}/{verse}",
		middleware.WithLogging(verseHandler.Interactions))

	// Like toggle (protected): guards run in order, each may short-circuit
	mux.HandleFunc("POST /api/verse/{book}/{chapter}/{verse}/like",
		middleware.WithLogging(middleware.RequireAuth(cfg.JWTSecret, verseHandler.ToggleLike)))

	// Fallback: anything unmatched is a plain 404
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("Not Found."))
	})

	return mux
}
