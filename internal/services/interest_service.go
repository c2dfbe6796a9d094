// Package services – InterestService
//
// This file implements the InterestService, which manages slot claims on
// posts: joining a post's interest list against its capacity ceiling, and
// removing entries under the author-or-self authorization rule. Both
// operations return the post together with the full, order-preserved list of
// interested player names so the caller can re-render directly.
//
// Idempotency contract: joining a post the player is already interested in
// is a success, not an error. The (post_id, player_key) unique constraint is
// resolved by the database itself (ON CONFLICT DO NOTHING in the repo layer),
// so the duplicate never raises a statement error and the transaction stays
// usable for the follow-up list read on every supported driver. Removing a
// name with no matching entry is likewise a no-op success.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/pieguyguide/lfg-board/internal/domain"
	"github.com/pieguyguide/lfg-board/internal/repo"
)

// InterestService implements the use-cases around a post's interest list.
// It enforces capacity and authorization rules and persists claims using the
// provided GORM handle. Each call runs inside its own transaction so the
// capacity check and the insert agree on what they saw.
type InterestService struct {
	// DB is the database handle used for all interest operations.
	DB *gorm.DB
}

// Add records playerName's claim on a slot of postID and returns the post
// with its updated interested list.
//
// Semantics and validation:
//   - playerName must be non-blank after trimming; otherwise ErrPlayerRequired.
//   - postID must exist; otherwise ErrPostNotFound.
//   - When the claim count has reached the post's slot capacity the join is
//     rejected with ErrNoSlotsLeft. The capacity check runs before the
//     duplicate resolution, so re-joining a full post also reports no slots.
//   - A player who already holds a slot re-joining is a success; the insert
//     is a database-level no-op and current state is returned.
//
// Concurrency & atomicity:
//   - Count, insert, and the list read share one transaction.
func (s *InterestService) Add(ctx context.Context, postID uint, playerName string) (*domain.Post, []string, error) {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return nil, nil, ErrPlayerRequired
	}

	var (
		post  *domain.Post
		names []string
	)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := repo.GetPost(ctx, tx, postID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		n, err := repo.CountInterested(ctx, tx, p.ID)
		if err != nil {
			return err
		}
		if n >= int64(p.Slots) {
			return ErrNoSlotsLeft
		}

		if err := repo.CreateInterest(ctx, tx, p.ID, playerName); err != nil {
			return err
		}

		if names, err = repo.ListInterestedNames(ctx, tx, p.ID); err != nil {
			return err
		}
		post = p
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return post, names, nil
}

// Remove deletes playerNameToRemove's claim on postID on behalf of
// requesterName and returns the post with its updated interested list.
//
// Authorization: the requester must be the post's author (may remove anyone)
// or the named player themselves (self-removal). Comparisons are
// case-insensitive and trim-normalized.
//
// Semantics and validation:
//   - Both names must be non-blank after trimming; otherwise ErrNamesRequired.
//   - postID must exist; otherwise ErrPostNotFound.
//   - An unauthorized requester gets ErrRemoveForbidden.
//   - When no matching claim exists the call is a no-op success returning
//     current state.
func (s *InterestService) Remove(ctx context.Context, postID uint, playerNameToRemove, requesterName string) (*domain.Post, []string, error) {
	toRemove := strings.TrimSpace(playerNameToRemove)
	requester := strings.TrimSpace(requesterName)
	if toRemove == "" || requester == "" {
		return nil, nil, ErrNamesRequired
	}

	var (
		post  *domain.Post
		names []string
	)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := repo.GetPost(ctx, tx, postID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		isAuthor := domain.SameName(requester, p.AuthorName)
		isSelf := domain.SameName(requester, toRemove)
		if !isAuthor && !isSelf {
			return ErrRemoveForbidden
		}

		in, err := repo.FindInterest(ctx, tx, p.ID, domain.NormalizeName(toRemove))
		switch {
		case errors.Is(err, repo.ErrNotFound):
			// Nothing to remove; fall through and return current state.
		case err != nil:
			return err
		default:
			if err := repo.DeleteInterest(ctx, tx, in.ID); err != nil {
				return err
			}
		}

		if names, err = repo.ListInterestedNames(ctx, tx, p.ID); err != nil {
			return err
		}
		post = p
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return post, names, nil
}
