package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func joinPost(t *testing.T, r *gin.Engine, postID uint, body gin.H) PostWithInterested {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/posts/%d/interested", postID), body)
	if w.Code != http.StatusOK {
		t.Fatalf("join status = %d, body %s", w.Code, w.Body.String())
	}
	var got PostWithInterested
	decodeInto(t, w, &got)
	return got
}

func TestAddInterest_ReturnsOrderedList(t *testing.T) {
	r := newTestRouter(t)
	p := createPost(t, r, gin.H{"authorName": "Mira", "text": "vault run", "slots": 3, "server": "1"})

	joinPost(t, r, p.ID, gin.H{"playerName": "Boros"})
	got := joinPost(t, r, p.ID, gin.H{"playerName": "Kael"})

	if len(got.Interested) != 2 || got.Interested[0] != "Boros" || got.Interested[1] != "Kael" {
		t.Fatalf("interested = %v, want [Boros Kael]", got.Interested)
	}
}

func TestAddInterest_LegacyPlayerAlias(t *testing.T) {
	r := newTestRouter(t)
	p := createPost(t, r, gin.H{"authorName": "Mira", "text": "vault run", "server": "1"})

	got := joinPost(t, r, p.ID, gin.H{"player": "Boros"})
	if len(got.Interested) != 1 || got.Interested[0] != "Boros" {
		t.Fatalf("interested = %v, want [Boros] via legacy alias", got.Interested)
	}
}

func TestAddInterest_Validation(t *testing.T) {
	r := newTestRouter(t)

	wantError(t, doJSON(t, r, http.MethodPost, "/posts/1/interested", gin.H{"playerName": "  "}),
		http.StatusBadRequest, "playerName required")
	wantError(t, doJSON(t, r, http.MethodPost, "/posts/abc/interested", gin.H{"playerName": "Boros"}),
		http.StatusBadRequest, "Invalid post id")
	wantError(t, doJSON(t, r, http.MethodPost, "/posts/9999/interested", gin.H{"playerName": "Boros"}),
		http.StatusNotFound, "Post not found")
}

func TestAddInterest_NoSlotsLeft(t *testing.T) {
	r := newTestRouter(t)
	p := createPost(t, r, gin.H{"authorName": "Mira", "text": "duo only", "slots": 2, "server": "1"})

	joinPost(t, r, p.ID, gin.H{"playerName": "Boros"})
	joinPost(t, r, p.ID, gin.H{"playerName": "Kael"})

	wantError(t, doJSON(t, r, http.MethodPost, fmt.Sprintf("/posts/%d/interested", p.ID), gin.H{"playerName": "Tam"}),
		http.StatusBadRequest, "No slots left")
}

func TestAddInterest_DuplicateJoinReturnsCurrentState(t *testing.T) {
	r := newTestRouter(t)
	p := createPost(t, r, gin.H{"authorName": "Mira", "text": "vault run", "server": "1"})

	joinPost(t, r, p.ID, gin.H{"playerName": "Boros"})
	got := joinPost(t, r, p.ID, gin.H{"playerName": "BOROS"})
	if len(got.Interested) != 1 || got.Interested[0] != "Boros" {
		t.Fatalf("interested = %v, want [Boros] unchanged", got.Interested)
	}
}

func TestRemoveInterest_AuthorizationRules(t *testing.T) {
	r := newTestRouter(t)
	p := createPost(t, r, gin.H{"authorName": "Mira", "text": "vault run", "server": "1"})
	joinPost(t, r, p.ID, gin.H{"playerName": "Boros"})
	joinPost(t, r, p.ID, gin.H{"playerName": "Kael"})

	path := fmt.Sprintf("/posts/%d/interested", p.ID)

	wantError(t, doJSON(t, r, http.MethodDelete, path, gin.H{"playerNameToRemove": "Boros", "requesterName": "Kael"}),
		http.StatusForbidden, "Only the poster can remove others; you can only remove yourself")

	// Self-removal.
	w := doJSON(t, r, http.MethodDelete, path, gin.H{"playerNameToRemove": "boros", "requesterName": "BOROS"})
	if w.Code != http.StatusOK {
		t.Fatalf("self removal status = %d", w.Code)
	}
	var got PostWithInterested
	decodeInto(t, w, &got)
	if len(got.Interested) != 1 || got.Interested[0] != "Kael" {
		t.Fatalf("interested = %v, want [Kael]", got.Interested)
	}

	// Author removal of anyone.
	w = doJSON(t, r, http.MethodDelete, path, gin.H{"playerNameToRemove": "Kael", "requesterName": "Mira"})
	if w.Code != http.StatusOK {
		t.Fatalf("author removal status = %d", w.Code)
	}
	decodeInto(t, w, &got)
	if len(got.Interested) != 0 {
		t.Fatalf("interested = %v, want empty", got.Interested)
	}
}

func TestRemoveInterest_Validation(t *testing.T) {
	r := newTestRouter(t)

	wantError(t, doJSON(t, r, http.MethodDelete, "/posts/1/interested", gin.H{"playerNameToRemove": "Boros"}),
		http.StatusBadRequest, "playerNameToRemove and requesterName required")
	wantError(t, doJSON(t, r, http.MethodDelete, "/posts/abc/interested", gin.H{"playerNameToRemove": "Boros", "requesterName": "Mira"}),
		http.StatusBadRequest, "Invalid post id")
	wantError(t, doJSON(t, r, http.MethodDelete, "/posts/9999/interested", gin.H{"playerNameToRemove": "Boros", "requesterName": "Mira"}),
		http.StatusNotFound, "Post not found")
}

func TestRemoveInterest_AbsentNameIsNoOp(t *testing.T) {
	r := newTestRouter(t)
	p := createPost(t, r, gin.H{"authorName": "Mira", "text": "vault run", "server": "1"})
	joinPost(t, r, p.ID, gin.H{"playerName": "Boros"})

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/posts/%d/interested", p.ID),
		gin.H{"playerNameToRemove": "Ghost", "requesterName": "Mira"})
	if w.Code != http.StatusOK {
		t.Fatalf("no-op removal status = %d", w.Code)
	}
	var got PostWithInterested
	decodeInto(t, w, &got)
	if len(got.Interested) != 1 || got.Interested[0] != "Boros" {
		t.Fatalf("interested = %v, want [Boros] unchanged", got.Interested)
	}
}
