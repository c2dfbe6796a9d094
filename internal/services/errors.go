// Package services defines the business logic for posts, interest entries,
// and comments. This file centralizes common service-level error values so
// that they can be consistently returned by service methods and checked by
// callers.
//
// These errors are intended for internal use by the service layer; the
// handler layer translates them into the caller-facing messages and HTTP
// status codes.
package services

import "errors"

// Post-related errors.
var (
	// ErrPostNotFound indicates that the requested post does not exist.
	ErrPostNotFound = errors.New("post not found")

	// ErrAuthorRequired is returned when an operation requires a non-blank
	// author name (post creation, post deletion).
	ErrAuthorRequired = errors.New("authorName required")

	// ErrTextRequired is returned when a post is created without a title.
	ErrTextRequired = errors.New("text required")

	// ErrDuplicateAuthor is returned when a character already has a live post
	// on the target server. Identity comparison is case-insensitive.
	ErrDuplicateAuthor = errors.New("author already has a post on this server")

	// ErrNotPostAuthor is returned when someone other than the post's author
	// attempts to delete it.
	ErrNotPostAuthor = errors.New("only the author can delete this post")
)

// Interest-related errors.
var (
	// ErrPlayerRequired is returned when a join request carries a blank
	// player name.
	ErrPlayerRequired = errors.New("playerName required")

	// ErrNamesRequired is returned when an interest removal is missing the
	// target name or the requester name.
	ErrNamesRequired = errors.New("playerNameToRemove and requesterName required")

	// ErrNoSlotsLeft is returned when a post's interest list is already at
	// its slot capacity.
	ErrNoSlotsLeft = errors.New("no slots left")

	// ErrRemoveForbidden is returned when the requester is neither the
	// post's author nor the player being removed.
	ErrRemoveForbidden = errors.New("requester may only remove themselves")
)

// Comment-related errors.
var (
	// ErrCommentFieldsRequired is returned when a comment is missing its
	// author name or text.
	ErrCommentFieldsRequired = errors.New("authorName and text required")
)

// List-related errors.
var (
	// ErrServerRequired is returned when the post listing is called without
	// a server (shard) filter.
	ErrServerRequired = errors.New("server query required")
)
