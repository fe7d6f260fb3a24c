// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/versemark/cliparse"
	"github.com/danielhkuo/versemark/middleware"
	"github.com/danielhkuo/versemark/models"
	"github.com/danielhkuo/versemark/store"
)

type VerseHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewVerseHandler(st store.Store, cfg cliparse.Config) *VerseHandler {
	return &VerseHandler{store: st, cfg: cfg}
}

// VerseID derives the stable key for a verse from its path segments.
// It is an opaque identifier: derived once, never parsed back.
func VerseID(book, chapter, verse string) string {
	return book + "-" + chapter + "-" + verse
}

// Interactions handles GET /api/verse/{book}/{chapter}/{verse}
// Returns like and comment counts, fetched concurrently.
func (h *VerseHandler) Interactions(w http.ResponseWriter, r *http.Request) {
	verseID := VerseID(r.PathValue("book"), r.PathValue("chapter"), r.PathValue("verse"))

	var likes, comments int
	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		likes, err = h.store.CountLikes(verseID)
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = h.store.CountComments(verseID)
		return err
	})
	if err := g.Wait(); err != nil {
		slog.Error("failed to count interactions", "error", err, "verse_id", verseID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VerseInteractionsResponse{
		Likes:    likes,
		Comments: comments,
	})
}

// ToggleLike handles POST /api/verse/{book}/{chapter}/{verse}/like
// Protected: RequireAuth attaches the authenticated user ID.
// Repeated calls alternate state: liked, unliked, liked again.
func (h *VerseHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	verseID := VerseID(r.PathValue("book"), r.PathValue("chapter"), r.PathValue("verse"))

	liked, err := h.store.FindLike(verseID, userID)
	if err != nil {
		slog.Error("failed to query like", "error", err, "verse_id", verseID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Two concurrent toggles can both observe the same state here. The
	// store makes the write side safe: the likes primary key plus
	// ON CONFLICT DO NOTHING turns a duplicate insert into a no-op, and
	// delete reports rows affected, so the pair ends up exactly
	// present-once or absent either way.
	if liked {
		if _, err := h.store.DeleteLike(verseID, userID); err != nil {
			slog.Error("failed to delete like", "error", err, "verse_id", verseID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}

		slog.Info("verse unliked", "verse_id", verseID, "user_id", userID)
		middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Unliked"})
		return
	}

	if _, err := h.store.InsertLike(verseID, userID); err != nil {
		slog.Error("failed to insert like", "error", err, "verse_id", verseID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("verse liked", "verse_id", verseID, "user_id", userID)
	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{Message: "Liked"})
}
