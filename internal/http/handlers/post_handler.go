// Post HTTP handlers.
//
// This file exposes REST endpoints for post resources:
//   - GET    /posts        (list a server's board, optional tag/language filters)
//   - GET    /posts/{id}   (single post with interested list)
//   - POST   /posts        (create)
//   - DELETE /posts/{id}   (author-only delete, cascades children)
//
// Handlers are transport-thin: they parse and shape input, call application
// services, and translate service errors into HTTP responses. Identity is
// asserted by caller-supplied character names and trusted; this API is not a
// security boundary.
package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pieguyguide/lfg-board/internal/domain"
	"github.com/pieguyguide/lfg-board/internal/services"
)

//
// Service contracts (context-aware)
//

// PostService defines post lifecycle operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type PostService interface {
	// List returns a server's posts, newest first, with derived counts.
	List(ctx context.Context, server, tag, language string) ([]services.PostSummary, error)
	// Get returns one post and its ordered interested player names.
	Get(ctx context.Context, id uint) (*domain.Post, []string, error)
	// Create validates, normalizes, and inserts a new post.
	Create(ctx context.Context, in services.CreatePostInput) (*domain.Post, error)
	// Delete removes a post on behalf of its author, cascading children.
	Delete(ctx context.Context, id uint, authorName string) error
}

// InterestService defines slot-claim operations consumed by HTTP handlers.
type InterestService interface {
	// Add joins playerName to the post's interest list.
	Add(ctx context.Context, postID uint, playerName string) (*domain.Post, []string, error)
	// Remove deletes a claim under the author-or-self rule.
	Remove(ctx context.Context, postID uint, playerNameToRemove, requesterName string) (*domain.Post, []string, error)
}

// CommentService defines comment-thread operations consumed by HTTP handlers.
type CommentService interface {
	// List returns a post's comments in ascending creation order.
	List(ctx context.Context, postID uint) ([]domain.Comment, error)
	// Add appends a comment and returns the full updated thread.
	Add(ctx context.Context, postID uint, authorName, text string) ([]domain.Comment, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for posts, interest entries, and comments.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	postSvc     PostService
	interestSvc InterestService
	commentSvc  CommentService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(postSvc PostService, interestSvc InterestService, commentSvc CommentService) *Handlers {
	return &Handlers{postSvc: postSvc, interestSvc: interestSvc, commentSvc: commentSvc}
}

// postID parses the :id path parameter. ok is false when the parameter is
// not a non-negative integer; callers respond 400 "Invalid post id", the
// same contract the desktop client has always handled.
func postID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

//
// DTOs
//

// CreatePostRequest is the JSON payload for creating a post. Absent fields
// take the documented defaults (language "English", 4 slots, server "1").
type CreatePostRequest struct {
	// AuthorName is the creating character's name (required).
	AuthorName string `json:"authorName" example:"Mira"`
	// Text is the post title (required).
	Text string `json:"text" example:"LFG crypt run"`
	// Description is optional free text.
	Description string `json:"description" example:"Bring potions"`
	// Tags are free-text labels; blank entries are dropped.
	Tags []string `json:"tags" example:"Questing,Grinding"`
	// Language defaults to "English" when blank.
	Language string `json:"language" example:"Spanish"`
	// Slots is the party capacity, clamped to [1,20], default 4.
	Slots int `json:"slots" example:"3"`
	// Server is the shard id, default "1".
	Server string `json:"server" example:"1"`
}

// DeletePostRequest is the JSON payload for deleting a post.
type DeletePostRequest struct {
	// AuthorName must match the post's author (case-insensitive).
	AuthorName string `json:"authorName" example:"Mira"`
}

//
// Handlers
//

// ListPosts godoc
// @ID          listPosts
// @Summary     List a server's posts
// @Description Returns the board for one server, newest first, each post annotated with interested and comment counts. Optional exact tag and language filters.
// @Tags        Posts
// @Produce     json
//
// @Param       server    query  string  true   "Server (shard) id"  example(1)
// @Param       tag       query  string  false  "Keep only posts carrying this tag"  example(Questing)
// @Param       language  query  string  false  "Keep only posts in this language"   example(English)
//
// @Success     200  {array}   handlers.PostListItem
// @Failure     400  {object}  handlers.ErrorResponse  "Missing server"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /posts [get]
func (h *Handlers) ListPosts(c *gin.Context) {
	summaries, err := h.postSvc.List(
		c.Request.Context(),
		c.Query("server"),
		c.Query("tag"),
		c.Query("language"),
	)
	if err != nil {
		switch err {
		case services.ErrServerRequired:
			fail(c, http.StatusBadRequest, "server query required")
		default:
			fail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	out := make([]PostListItem, 0, len(summaries))
	for i := range summaries {
		s := summaries[i]
		out = append(out, PostListItem{
			PostResponse:    newPostResponse(&s.Post),
			InterestedCount: s.InterestedCount,
			CommentCount:    s.CommentCount,
		})
	}
	ok(c, http.StatusOK, out)
}

// GetPost godoc
// @ID          getPost
// @Summary     Fetch one post
// @Description Returns a post and the ordered list of interested player names.
// @Tags        Posts
// @Produce     json
//
// @Param       id  path  integer  true  "Post id"  example(42)
//
// @Success     200  {object}  handlers.PostWithInterested
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid post id"
// @Failure     404  {object}  handlers.ErrorResponse  "Post not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /posts/{id} [get]
func (h *Handlers) GetPost(c *gin.Context) {
	id, okID := postID(c)
	if !okID {
		fail(c, http.StatusBadRequest, "Invalid post id")
		return
	}

	p, names, err := h.postSvc.Get(c.Request.Context(), id)
	if err != nil {
		switch err {
		case services.ErrPostNotFound:
			fail(c, http.StatusNotFound, "Post not found")
		default:
			fail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, newPostWithInterested(p, names))
}

// CreatePost godoc
// @ID          createPost
// @Summary     Create a post
// @Description Creates an LFG post. A character may hold at most one live post per server (case-insensitive name match).
// @Tags        Posts
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreatePostRequest  true  "Create post payload"
//
// @Success     201  {object}  handlers.PostResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Validation or duplicate author"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /posts [post]
func (h *Handlers) CreatePost(c *gin.Context) {
	// A missing or malformed body is treated as empty fields so the
	// validation below produces the field-specific message the client shows.
	var req CreatePostRequest
	_ = c.ShouldBindJSON(&req)

	p, err := h.postSvc.Create(c.Request.Context(), services.CreatePostInput{
		AuthorName:  req.AuthorName,
		Text:        req.Text,
		Description: req.Description,
		Tags:        req.Tags,
		Language:    req.Language,
		Slots:       req.Slots,
		Server:      req.Server,
	})
	if err != nil {
		switch err {
		case services.ErrAuthorRequired:
			fail(c, http.StatusBadRequest, "authorName required")
		case services.ErrTextRequired:
			fail(c, http.StatusBadRequest, "text required")
		case services.ErrDuplicateAuthor:
			fail(c, http.StatusBadRequest, "This character name already has a post on this server. Only one post per character per server.")
		default:
			fail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, newPostResponse(p))
}

// DeletePost godoc
// @ID          deletePost
// @Summary     Delete a post
// @Description Deletes a post and all of its interest entries and comments. Only the post's author may delete it.
// @Tags        Posts
// @Accept      json
// @Produce     json
//
// @Param       id    path  integer                     true  "Post id"  example(42)
// @Param       body  body  handlers.DeletePostRequest  true  "Author asserting the delete"
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Validation error"
// @Failure     403  {object}  handlers.ErrorResponse  "Not the author"
// @Failure     404  {object}  handlers.ErrorResponse  "Post not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /posts/{id} [delete]
func (h *Handlers) DeletePost(c *gin.Context) {
	var req DeletePostRequest
	_ = c.ShouldBindJSON(&req)

	// Field validation comes before id validation; the client relies on
	// "authorName required" even when the URL is mangled.
	if strings.TrimSpace(req.AuthorName) == "" {
		fail(c, http.StatusBadRequest, "authorName required")
		return
	}
	id, okID := postID(c)
	if !okID {
		fail(c, http.StatusBadRequest, "Invalid post id")
		return
	}

	if err := h.postSvc.Delete(c.Request.Context(), id, req.AuthorName); err != nil {
		switch err {
		case services.ErrAuthorRequired:
			fail(c, http.StatusBadRequest, "authorName required")
		case services.ErrPostNotFound:
			fail(c, http.StatusNotFound, "Post not found")
		case services.ErrNotPostAuthor:
			fail(c, http.StatusForbidden, "Only the author can delete this post")
		default:
			fail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	noContent(c)
}
