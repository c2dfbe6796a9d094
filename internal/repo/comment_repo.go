// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Comment
// model. The comment thread is append-only: there is no update or single-row
// delete, only the post-deletion cascade.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pieguyguide/lfg-board/internal/domain"
)

// CreateComment appends a comment to a post's thread, stamped UTC.
func CreateComment(ctx context.Context, db *gorm.DB, postID uint, authorName, text string) error {
	c := &domain.Comment{
		PostID:     postID,
		AuthorName: authorName,
		Text:       text,
		CreatedAt:  time.Now().UTC(),
	}
	return db.WithContext(ctx).Create(c).Error
}

// ListComments returns a post's comments in ascending creation order, with
// row id as tiebreak for comments sharing a timestamp.
func ListComments(ctx context.Context, db *gorm.DB, postID uint) ([]domain.Comment, error) {
	out := []domain.Comment{}
	err := db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at asc").
		Order("id asc").
		Find(&out).Error
	return out, err
}

// CountComments returns the number of comments on a post.
func CountComments(ctx context.Context, db *gorm.DB, postID uint) (int64, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("post_id = ?", postID).
		Count(&n).Error
	return n, err
}

// DeleteCommentsForPost removes every comment on a post (post deletion cascade).
func DeleteCommentsForPost(ctx context.Context, db *gorm.DB, postID uint) error {
	return db.WithContext(ctx).
		Where("post_id = ?", postID).
		Delete(&domain.Comment{}).Error
}
