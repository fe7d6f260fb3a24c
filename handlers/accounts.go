// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/versemark/auth"
	"github.com/danielhkuo/versemark/cliparse"
	"github.com/danielhkuo/versemark/middleware"
	"github.com/danielhkuo/versemark/models"
	"github.com/danielhkuo/versemark/store"
)

type AccountHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewAccountHandler(st store.Store, cfg cliparse.Config) *AccountHandler {
	return &AccountHandler{store: st, cfg: cfg}
}

// Register handles POST /api/register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Username == "" || req.Password == "" {
		http.Error(w, "Email, username, and password are required", http.StatusBadRequest)
		return
	}

	user := models.User{
		ID:           auth.NewUserID(),
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: auth.HashPassword(req.Password),
		Bio:          models.DefaultBio,
	}

	err := h.store.InsertUser(user)
	if errors.Is(err, store.ErrDuplicate) {
		http.Error(w, "Email or username already exists", http.StatusConflict)
		return
	}
	if err != nil {
		slog.Error("failed to insert user", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username)

	// No auto-login: the client calls /api/login separately
	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Message: "User created successfully",
	})
}

// Login handles POST /api/login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.store.FindUserByEmail(req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		// Same message as a wrong password: don't reveal which emails exist
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if auth.HashPassword(req.Password) != user.PasswordHash {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.IssueToken(h.cfg.JWTSecret, user.ID)
	if err != nil {
		slog.Error("failed to issue token", "error", err, "user_id", user.ID)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	slog.Info("user logged in", "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{Token: token})
}
