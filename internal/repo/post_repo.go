// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Post model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a post is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pieguyguide/lfg-board/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreatePost inserts a new post row. It stamps CreatedAt (UTC) and derives
// AuthorKey from AuthorName; all other fields are persisted as given, so the
// caller (service layer) is responsible for validation and defaulting.
//
// The (server, author_key) unique index may reject the insert when the author
// already has a live post on that shard; the raw DB error is propagated and
// translated by the service layer.
func CreatePost(ctx context.Context, db *gorm.DB, p *domain.Post) error {
	p.AuthorKey = domain.NormalizeName(p.AuthorName)
	p.CreatedAt = time.Now().UTC()
	return db.WithContext(ctx).Create(p).Error
}

// ListPosts returns all posts on the given server, newest first. Row id is
// used as a tiebreak so posts created within the same timestamp granularity
// keep a stable order. It returns an empty slice when the shard has no posts.
func ListPosts(ctx context.Context, db *gorm.DB, server string) ([]domain.Post, error) {
	var out []domain.Post
	err := db.WithContext(ctx).
		Where("server = ?", server).
		Order("created_at desc").
		Order("id desc").
		Find(&out).Error
	return out, err
}

// GetPost fetches a single post by id, or ErrNotFound if missing.
func GetPost(ctx context.Context, db *gorm.DB, id uint) (*domain.Post, error) {
	var p domain.Post
	if err := db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// CountAuthorPosts returns how many posts the given (folded) author name has
// on a server. Used as the duplicate-author pre-check before insert; the
// unique index on (server, author_key) backstops the remaining race window.
func CountAuthorPosts(ctx context.Context, db *gorm.DB, server, authorKey string) (int64, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Post{}).
		Where("server = ? AND author_key = ?", server, authorKey).
		Count(&n).Error
	return n, err
}

// DeletePost removes a post row by id. Child interest and comment rows are
// deleted explicitly by the service layer inside the same transaction, so
// cascade behavior does not depend on driver foreign-key enforcement.
func DeletePost(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Delete(&domain.Post{}, id).Error
}
