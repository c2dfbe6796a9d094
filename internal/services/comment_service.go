// Package services – CommentService
//
// This file implements the CommentService, the append-only comment thread
// attached to each post. Comments are never edited or deleted individually;
// the only removal path is the post-deletion cascade handled by PostService.
// Add returns the full re-ordered thread rather than the new row so the
// caller can re-render directly.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/pieguyguide/lfg-board/internal/domain"
	"github.com/pieguyguide/lfg-board/internal/repo"
)

// CommentService implements the use-cases around a post's comment thread.
type CommentService struct {
	// DB is the database handle used for all comment operations.
	DB *gorm.DB
}

// List returns the comments on postID in ascending creation order.
//
// Errors:
//   - ErrPostNotFound when the post does not exist.
//   - The underlying DB error on store failure.
func (s *CommentService) List(ctx context.Context, postID uint) ([]domain.Comment, error) {
	if _, err := repo.GetPost(ctx, s.DB, postID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return repo.ListComments(ctx, s.DB, postID)
}

// Add appends a comment to postID's thread and returns the full updated
// thread in ascending creation order.
//
// Semantics and validation:
//   - authorName and text must both be non-blank after trimming; otherwise
//     ErrCommentFieldsRequired.
//   - postID must exist; otherwise ErrPostNotFound.
//
// The existence check, insert, and list read share one transaction.
func (s *CommentService) Add(ctx context.Context, postID uint, authorName, text string) ([]domain.Comment, error) {
	authorName = strings.TrimSpace(authorName)
	text = strings.TrimSpace(text)
	if authorName == "" || text == "" {
		return nil, ErrCommentFieldsRequired
	}

	var out []domain.Comment
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.GetPost(ctx, tx, postID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrPostNotFound
			}
			return err
		}
		if err := repo.CreateComment(ctx, tx, postID, authorName, text); err != nil {
			return err
		}
		var err error
		out, err = repo.ListComments(ctx, tx, postID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
