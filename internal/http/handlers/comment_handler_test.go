package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestAddComment_ReturnsFullThread(t *testing.T) {
	r := newTestRouter(t)
	p := createPost(t, r, gin.H{"authorName": "Mira", "text": "vault run", "server": "1"})
	path := fmt.Sprintf("/posts/%d/comments", p.ID)

	w := doJSON(t, r, http.MethodPost, path, gin.H{"authorName": "Boros", "text": "what time?"})
	if w.Code != http.StatusCreated {
		t.Fatalf("first comment status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, path, gin.H{"authorName": "Mira", "text": "8pm"})
	if w.Code != http.StatusCreated {
		t.Fatalf("second comment status = %d", w.Code)
	}
	var thread []CommentResponse
	decodeInto(t, w, &thread)
	if len(thread) != 2 {
		t.Fatalf("thread has %d comments, want 2", len(thread))
	}
	if thread[0].Text != "what time?" || thread[1].Text != "8pm" {
		t.Fatalf("thread order wrong: %+v", thread)
	}
	if thread[0].CreatedAt <= 0 {
		t.Fatalf("createdAt = %d, want millisecond epoch", thread[0].CreatedAt)
	}
}

func TestAddComment_Validation(t *testing.T) {
	r := newTestRouter(t)
	p := createPost(t, r, gin.H{"authorName": "Mira", "text": "vault run", "server": "1"})

	wantError(t, doJSON(t, r, http.MethodPost, fmt.Sprintf("/posts/%d/comments", p.ID), gin.H{"authorName": "Boros"}),
		http.StatusBadRequest, "authorName and text required")
	wantError(t, doJSON(t, r, http.MethodPost, fmt.Sprintf("/posts/%d/comments", p.ID), gin.H{"text": "orphan"}),
		http.StatusBadRequest, "authorName and text required")
	wantError(t, doJSON(t, r, http.MethodPost, "/posts/abc/comments", gin.H{"authorName": "Boros", "text": "hi"}),
		http.StatusBadRequest, "Invalid post id")
	wantError(t, doJSON(t, r, http.MethodPost, "/posts/9999/comments", gin.H{"authorName": "Boros", "text": "hi"}),
		http.StatusNotFound, "Post not found")
}

func TestListComments(t *testing.T) {
	r := newTestRouter(t)
	p := createPost(t, r, gin.H{"authorName": "Mira", "text": "vault run", "server": "1"})

	// Empty thread serializes as [], not null.
	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/posts/%d/comments", p.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	if got := w.Body.String(); got != "[]" {
		t.Fatalf("empty thread body = %q, want []", got)
	}

	doJSON(t, r, http.MethodPost, fmt.Sprintf("/posts/%d/comments", p.ID), gin.H{"authorName": "Boros", "text": "in!"})
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/posts/%d/comments", p.ID), nil)
	var thread []CommentResponse
	decodeInto(t, w, &thread)
	if len(thread) != 1 || thread[0].AuthorName != "Boros" || thread[0].Text != "in!" {
		t.Fatalf("thread = %+v", thread)
	}
}

func TestListComments_Errors(t *testing.T) {
	r := newTestRouter(t)

	wantError(t, doJSON(t, r, http.MethodGet, "/posts/abc/comments", nil),
		http.StatusBadRequest, "Invalid post id")
	wantError(t, doJSON(t, r, http.MethodGet, "/posts/9999/comments", nil),
		http.StatusNotFound, "Post not found")
}
