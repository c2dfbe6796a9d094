// Interest HTTP handlers.
//
// This file exposes REST endpoints for a post's interest list (slot claims):
//   - POST   /posts/{id}/interested  (join; idempotent per player)
//   - DELETE /posts/{id}/interested  (leave / author removal)
//
// Both endpoints return the post together with the full, order-preserved
// interested list so the client re-renders without a second fetch. Joining a
// post the player already claimed is a success returning current state; the
// same goes for removing a name that holds no claim.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pieguyguide/lfg-board/internal/services"
	"github.com/pieguyguide/lfg-board/internal/sysutil"
)

// AddInterestRequest is the JSON payload for claiming a slot. "player" is a
// legacy alias for "playerName" still sent by older client builds.
type AddInterestRequest struct {
	// PlayerName is the joining character's name (required).
	PlayerName string `json:"playerName" example:"Boros"`
	// Player is the deprecated alias for PlayerName.
	Player string `json:"player,omitempty" example:"Boros"`
}

// RemoveInterestRequest is the JSON payload for removing a slot claim.
// The requester must be the post's author or the player being removed.
type RemoveInterestRequest struct {
	// PlayerNameToRemove names the claim to delete (required).
	PlayerNameToRemove string `json:"playerNameToRemove" example:"Boros"`
	// RequesterName asserts who is asking (required).
	RequesterName string `json:"requesterName" example:"Mira"`
}

// AddInterest godoc
// @ID          addInterest
// @Summary     Join a post's interest list
// @Description Claims one of the post's slots for the named player. Duplicate joins succeed and return current state.
// @Tags        Interest
// @Accept      json
// @Produce     json
//
// @Param       id    path  integer                      true  "Post id"  example(42)
// @Param       body  body  handlers.AddInterestRequest  true  "Joining player"
//
// @Success     200  {object}  handlers.PostWithInterested
// @Failure     400  {object}  handlers.ErrorResponse  "Validation error or no slots left"
// @Failure     404  {object}  handlers.ErrorResponse  "Post not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /posts/{id}/interested [post]
func (h *Handlers) AddInterest(c *gin.Context) {
	var req AddInterestRequest
	_ = c.ShouldBindJSON(&req)

	playerName := sysutil.FirstNonEmpty(req.PlayerName, req.Player)
	if strings.TrimSpace(playerName) == "" {
		fail(c, http.StatusBadRequest, "playerName required")
		return
	}
	id, okID := postID(c)
	if !okID {
		fail(c, http.StatusBadRequest, "Invalid post id")
		return
	}

	p, names, err := h.interestSvc.Add(c.Request.Context(), id, playerName)
	if err != nil {
		switch err {
		case services.ErrPlayerRequired:
			fail(c, http.StatusBadRequest, "playerName required")
		case services.ErrPostNotFound:
			fail(c, http.StatusNotFound, "Post not found")
		case services.ErrNoSlotsLeft:
			fail(c, http.StatusBadRequest, "No slots left")
		default:
			fail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, newPostWithInterested(p, names))
}

// RemoveInterest godoc
// @ID          removeInterest
// @Summary     Remove a slot claim
// @Description Removes a player's claim. Authors may remove anyone; players may remove themselves. Removing an absent name is a no-op success.
// @Tags        Interest
// @Accept      json
// @Produce     json
//
// @Param       id    path  integer                         true  "Post id"  example(42)
// @Param       body  body  handlers.RemoveInterestRequest  true  "Removal payload"
//
// @Success     200  {object}  handlers.PostWithInterested
// @Failure     400  {object}  handlers.ErrorResponse  "Validation error"
// @Failure     403  {object}  handlers.ErrorResponse  "Requester not allowed"
// @Failure     404  {object}  handlers.ErrorResponse  "Post not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /posts/{id}/interested [delete]
func (h *Handlers) RemoveInterest(c *gin.Context) {
	var req RemoveInterestRequest
	_ = c.ShouldBindJSON(&req)

	if strings.TrimSpace(req.PlayerNameToRemove) == "" || strings.TrimSpace(req.RequesterName) == "" {
		fail(c, http.StatusBadRequest, "playerNameToRemove and requesterName required")
		return
	}
	id, okID := postID(c)
	if !okID {
		fail(c, http.StatusBadRequest, "Invalid post id")
		return
	}

	p, names, err := h.interestSvc.Remove(c.Request.Context(), id, req.PlayerNameToRemove, req.RequesterName)
	if err != nil {
		switch err {
		case services.ErrNamesRequired:
			fail(c, http.StatusBadRequest, "playerNameToRemove and requesterName required")
		case services.ErrPostNotFound:
			fail(c, http.StatusNotFound, "Post not found")
		case services.ErrRemoveForbidden:
			fail(c, http.StatusForbidden, "Only the poster can remove others; you can only remove yourself")
		default:
			fail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, newPostWithInterested(p, names))
}
