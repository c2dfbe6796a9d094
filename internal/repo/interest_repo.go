// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Interest
// model (slot claims on a post).
//
// Error semantics:
//   - A duplicate join (same post_id, player_key) is absorbed by the database
//     via ON CONFLICT DO NOTHING, so it surfaces as a silent no-op rather
//     than a statement error. Postgres aborts the whole transaction on any
//     errored statement, so the conflict must be resolved inside the insert
//     for follow-up reads in the same transaction to stay valid.
//   - On other DB errors the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pieguyguide/lfg-board/internal/domain"
)

// CreateInterest inserts a slot claim for playerName on postID. PlayerKey is
// derived from the name; CreatedAt is stamped UTC. When the (post_id,
// player_key) row already exists the insert is a no-op and no error is
// returned.
func CreateInterest(ctx context.Context, db *gorm.DB, postID uint, playerName string) error {
	in := &domain.Interest{
		PostID:     postID,
		PlayerName: playerName,
		PlayerKey:  domain.NormalizeName(playerName),
		CreatedAt:  time.Now().UTC(),
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(in).Error
}

// CountInterested returns the number of slot claims on a post.
func CountInterested(ctx context.Context, db *gorm.DB, postID uint) (int64, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Interest{}).
		Where("post_id = ?", postID).
		Count(&n).Error
	return n, err
}

// ListInterestedNames returns the player names claiming slots on a post, in
// creation (row id) order, preserving each name's original spelling.
func ListInterestedNames(ctx context.Context, db *gorm.DB, postID uint) ([]string, error) {
	names := []string{}
	err := db.WithContext(ctx).
		Model(&domain.Interest{}).
		Where("post_id = ?", postID).
		Order("id").
		Pluck("player_name", &names).Error
	return names, err
}

// FindInterest fetches the claim matching the folded player name on a post,
// or ErrNotFound when no such row exists.
func FindInterest(ctx context.Context, db *gorm.DB, postID uint, playerKey string) (*domain.Interest, error) {
	var in domain.Interest
	err := db.WithContext(ctx).
		Where("post_id = ? AND player_key = ?", postID, playerKey).
		First(&in).Error
	if err != nil {
		return nil, err
	}
	return &in, nil
}

// DeleteInterest removes a single claim row by id.
func DeleteInterest(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Delete(&domain.Interest{}, id).Error
}

// DeleteInterestsForPost removes every claim on a post (post deletion cascade).
func DeleteInterestsForPost(ctx context.Context, db *gorm.DB, postID uint) error {
	return db.WithContext(ctx).
		Where("post_id = ?", postID).
		Delete(&domain.Interest{}).Error
}
