// Comment HTTP handlers.
//
// This file exposes REST endpoints for a post's comment thread:
//   - GET  /posts/{id}/comments  (ascending by creation time)
//   - POST /posts/{id}/comments  (append; returns the full updated thread)
//
// The thread is append-only. Add returns the whole ordered list rather than
// the new row so the client can re-render the thread directly.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pieguyguide/lfg-board/internal/services"
)

// AddCommentRequest is the JSON payload for appending a comment.
type AddCommentRequest struct {
	// AuthorName is the commenting character's name (required).
	AuthorName string `json:"authorName" example:"Boros"`
	// Text is the comment body (required).
	Text string `json:"text" example:"What level range?"`
}

// ListComments godoc
// @ID          listComments
// @Summary     List a post's comments
// @Description Returns the comment thread in ascending creation order.
// @Tags        Comments
// @Produce     json
//
// @Param       id  path  integer  true  "Post id"  example(42)
//
// @Success     200  {array}   handlers.CommentResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid post id"
// @Failure     404  {object}  handlers.ErrorResponse  "Post not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /posts/{id}/comments [get]
func (h *Handlers) ListComments(c *gin.Context) {
	id, okID := postID(c)
	if !okID {
		fail(c, http.StatusBadRequest, "Invalid post id")
		return
	}

	comments, err := h.commentSvc.List(c.Request.Context(), id)
	if err != nil {
		switch err {
		case services.ErrPostNotFound:
			fail(c, http.StatusNotFound, "Post not found")
		default:
			fail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, newCommentList(comments))
}

// AddComment godoc
// @ID          addComment
// @Summary     Append a comment
// @Description Appends a comment to the post's thread and returns the full updated thread.
// @Tags        Comments
// @Accept      json
// @Produce     json
//
// @Param       id    path  integer                     true  "Post id"  example(42)
// @Param       body  body  handlers.AddCommentRequest  true  "Comment payload"
//
// @Success     201  {array}   handlers.CommentResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Validation error"
// @Failure     404  {object}  handlers.ErrorResponse  "Post not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /posts/{id}/comments [post]
func (h *Handlers) AddComment(c *gin.Context) {
	var req AddCommentRequest
	_ = c.ShouldBindJSON(&req)

	if strings.TrimSpace(req.AuthorName) == "" || strings.TrimSpace(req.Text) == "" {
		fail(c, http.StatusBadRequest, "authorName and text required")
		return
	}
	id, okID := postID(c)
	if !okID {
		fail(c, http.StatusBadRequest, "Invalid post id")
		return
	}

	comments, err := h.commentSvc.Add(c.Request.Context(), id, req.AuthorName, req.Text)
	if err != nil {
		switch err {
		case services.ErrCommentFieldsRequired:
			fail(c, http.StatusBadRequest, "authorName and text required")
		case services.ErrPostNotFound:
			fail(c, http.StatusNotFound, "Post not found")
		default:
			fail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, newCommentList(comments))
}
