// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities and wire types used
// across all endpoints. The storage layer names columns in snake_case; the
// desktop client speaks camelCase with millisecond-epoch timestamps, and the
// translation between the two lives here so neither side leaks into the
// other.
//
// Conventions:
//   - All error responses carry the `{ "error": "<message>" }` envelope the
//     client expects, plus an optional request_id for log correlation.
//   - `fail()` centralizes error formatting and ensures 5xx responses are
//     logged with request context.
//   - `ok()` and `noContent()` keep success responses uniform across handlers.
//
// Example error response:
//
//	HTTP/1.1 404 Not Found
//	{ "error": "Post not found", "request_id": "123e4567-…" }
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pieguyguide/lfg-board/internal/domain"
	"github.com/pieguyguide/lfg-board/internal/http/middleware"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
//
// Fields:
//   - Error: human-readable message, safe to show to users; the desktop
//     client displays it verbatim.
//   - RequestID: optional correlation ID echoed from X-Request-ID, used to
//     match server logs with client-side errors.
type ErrorResponse struct {
	// Human-readable message (shown verbatim by the client)
	Error string `json:"error" example:"Post not found"`
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
}

// PostResponse is the wire representation of a post shared by every endpoint
// that returns one. CreatedAt is a millisecond epoch timestamp.
type PostResponse struct {
	ID          uint     `json:"id"          example:"42"`
	AuthorName  string   `json:"authorName"  example:"Mira"`
	Text        string   `json:"text"        example:"LFG crypt run"`
	Description string   `json:"description" example:"Bring potions"`
	Tags        []string `json:"tags"`
	Language    string   `json:"language"    example:"English"`
	Slots       int      `json:"slots"       example:"4"`
	Server      string   `json:"server"      example:"1"`
	CreatedAt   int64    `json:"createdAt"   example:"1756500000000"`
}

// PostListItem is a board-listing entry: the post plus its derived counts.
type PostListItem struct {
	PostResponse
	InterestedCount int64 `json:"interestedCount" example:"2"`
	CommentCount    int64 `json:"commentCount"    example:"5"`
}

// PostWithInterested is the single-post shape: the post plus the ordered
// list of interested player names. The list is always present, possibly
// empty.
type PostWithInterested struct {
	PostResponse
	Interested []string `json:"interested"`
}

// CommentResponse is the wire representation of one comment.
type CommentResponse struct {
	AuthorName string `json:"authorName" example:"Boros"`
	Text       string `json:"text"       example:"What level range?"`
	CreatedAt  int64  `json:"createdAt"  example:"1756500000000"`
}

// newPostResponse maps a stored post to its wire shape. Tags are never
// null on the wire, even when the post has none.
func newPostResponse(p *domain.Post) PostResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return PostResponse{
		ID:          p.ID,
		AuthorName:  p.AuthorName,
		Text:        p.Text,
		Description: p.Description,
		Tags:        tags,
		Language:    p.Language,
		Slots:       p.Slots,
		Server:      p.Server,
		CreatedAt:   p.CreatedAt.UnixMilli(),
	}
}

// newPostWithInterested maps a post and its interested names to the
// single-post wire shape.
func newPostWithInterested(p *domain.Post, names []string) PostWithInterested {
	if names == nil {
		names = []string{}
	}
	return PostWithInterested{PostResponse: newPostResponse(p), Interested: names}
}

// newCommentList maps stored comments to their wire shape, preserving order.
func newCommentList(comments []domain.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		c := comments[i]
		out = append(out, CommentResponse{
			AuthorName: c.AuthorName,
			Text:       c.Text,
			CreatedAt:  c.CreatedAt.UnixMilli(),
		})
	}
	return out
}

// fail aborts the request with the error envelope and logs server-side errors.
//
// Server errors (>=500) are logged using the request-scoped logger from middleware.
func fail(c *gin.Context, status int, msg string) {
	resp := ErrorResponse{
		Error:     msg,
		RequestID: c.Writer.Header().Get("X-Request-ID"),
	}

	// Log 5xx (server-side) with request-scoped logger
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup) should call Fail to return
// consistent error envelopes without directly depending on unexported helpers.
func Fail(c *gin.Context, status int, msg string) { fail(c, status, msg) }

// ok writes a success JSON response with the given status code.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
