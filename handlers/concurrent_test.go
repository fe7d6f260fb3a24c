// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/versemark/models"
	"github.com/danielhkuo/versemark/store"
	"github.com/danielhkuo/versemark/testutil"
)

// TestConcurrentToggles verifies that simultaneous toggles of the same
// (verse, user) pair never corrupt the row: whatever interleaving occurs,
// the pair ends up present exactly once or absent, never duplicated.
func TestConcurrentToggles(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	h := NewVerseHandler(store.NewSQL(db), cfg)
	userID := testutil.CreateTestUser(t, db, "a@b.com", "alice", "pw")

	numToggles := 10
	var failures atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numToggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			w := httptest.NewRecorder()
			h.ToggleLike(w, toggleRequest(userID, "john", "3", "16"))

			// Both outcomes are legitimate under contention; anything
			// else (409, 500) means the race leaked out
			if w.Code != http.StatusCreated && w.Code != http.StatusOK {
				failures.Add(1)
			}
		}()
	}

	wg.Wait()

	if n := failures.Load(); n != 0 {
		t.Errorf("Expected all concurrent toggles to succeed, %d failed", n)
	}

	// The invariant: never more than one row for the pair
	if n := testutil.CountLikeRows(t, db, "john-3-16", userID); n > 1 {
		t.Errorf("Like row duplicated under contention: %d rows", n)
	}
}

// TestConcurrentTogglesDistinctUsers verifies independent users toggling
// the same verse never interfere with one another.
func TestConcurrentTogglesDistinctUsers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	h := NewVerseHandler(store.NewSQL(db), cfg)
	st := store.NewSQL(db)

	numUsers := 10
	userIDs := make([]string, numUsers)
	for i := 0; i < numUsers; i++ {
		n := strconv.Itoa(i)
		userIDs[i] = testutil.CreateTestUser(t, db, "user"+n+"@example.com", "user"+n, "pw")
	}

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numUsers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			w := httptest.NewRecorder()
			h.ToggleLike(w, toggleRequest(userIDs[idx], "gen", "1", "1"))

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	// Every user starts from "no like", so every toggle is a fresh like
	if int(successCount.Load()) != numUsers {
		t.Errorf("Expected %d likes created, got %d", numUsers, successCount.Load())
	}

	likes, err := st.CountLikes("gen-1-1")
	if err != nil {
		t.Fatalf("CountLikes() error = %v", err)
	}
	if likes != numUsers {
		t.Errorf("Expected %d like rows, got %d", numUsers, likes)
	}
}

// TestConcurrentRegistrations verifies that racing registrations for the
// same email produce exactly one account.
func TestConcurrentRegistrations(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	h := NewAccountHandler(store.NewSQL(db), cfg)

	numAttempts := 5
	var created, conflicted atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numAttempts; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/api/register", models.RegisterRequest{
				Email:    "contested@example.com",
				Username: "contested" + strconv.Itoa(idx),
				Password: "pw",
			}, nil)
			w := httptest.NewRecorder()

			h.Register(w, req)

			switch w.Code {
			case http.StatusCreated:
				created.Add(1)
			case http.StatusConflict:
				conflicted.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if created.Load() != 1 {
		t.Errorf("Expected exactly 1 successful registration, got %d", created.Load())
	}
	if int(created.Load()+conflicted.Load()) != numAttempts {
		t.Errorf("Expected every attempt to end in 201 or 409, got created=%d conflicted=%d",
			created.Load(), conflicted.Load())
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users WHERE email = 'contested@example.com'`).Scan(&count); err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected exactly 1 account, got %d", count)
	}
}
