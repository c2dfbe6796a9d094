// Package services – PostService
//
// This file implements the PostService, which governs the lifecycle of LFG
// posts: listing a shard's board with derived counts, fetching a single post
// with its ordered interested list, creating posts (input normalization,
// one-post-per-character-per-server), and author-only deletion with cascade.
// Service-level errors (e.g. ErrServerRequired, ErrPostNotFound,
// ErrDuplicateAuthor, ErrNotPostAuthor) are returned for predictable cases so
// handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/pieguyguide/lfg-board/internal/domain"
	"github.com/pieguyguide/lfg-board/internal/repo"
	"github.com/pieguyguide/lfg-board/internal/utils"
)

// Post capacity bounds. Out-of-range or missing slot counts are clamped
// rather than rejected, matching the lenient UX of the desktop client.
const (
	MinSlots     = 1
	MaxSlots     = 20
	DefaultSlots = 4
)

// DefaultLanguage is assumed when a post is created without one.
const DefaultLanguage = "English"

// defaultServer is the shard recorded when a create request omits one.
const defaultServer = "1"

// PostSummary is a post annotated with the derived counts shown on the
// board listing. Counts are computed per request, never stored.
type PostSummary struct {
	domain.Post
	InterestedCount int64
	CommentCount    int64
}

// CreatePostInput carries the caller-supplied fields for a new post before
// normalization. Zero values mean "absent" and trigger the documented
// defaults.
type CreatePostInput struct {
	AuthorName  string
	Text        string
	Description string
	Tags        []string
	Language    string
	Slots       int
	Server      string
}

// PostService implements the use-cases around post lifecycle. It validates
// and normalizes input, enforces the single-post-per-author-per-server
// invariant, and persists through the repo package. The service is
// context-aware and opens its own transaction where multiple statements must
// agree.
type PostService struct {
	// DB is the database handle used for all post operations.
	DB *gorm.DB
}

// List returns the posts on a server, newest first, each annotated with its
// interested and comment counts. tag and language are optional filters: a
// non-empty tag keeps only posts whose tag set contains it exactly, and a
// non-empty language requires an exact match.
//
// Errors:
//   - ErrServerRequired when server is blank.
//   - The underlying DB error on store failure.
func (s *PostService) List(ctx context.Context, server, tag, language string) ([]PostSummary, error) {
	server = strings.TrimSpace(server)
	if server == "" {
		return nil, ErrServerRequired
	}
	tag = strings.TrimSpace(tag)
	language = strings.TrimSpace(language)

	posts, err := repo.ListPosts(ctx, s.DB, server)
	if err != nil {
		return nil, err
	}

	out := make([]PostSummary, 0, len(posts))
	for i := range posts {
		p := posts[i]
		if tag != "" && !p.HasTag(tag) {
			continue
		}
		if language != "" && p.Language != language {
			continue
		}
		ic, err := repo.CountInterested(ctx, s.DB, p.ID)
		if err != nil {
			return nil, err
		}
		cc, err := repo.CountComments(ctx, s.DB, p.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, PostSummary{Post: p, InterestedCount: ic, CommentCount: cc})
	}
	return out, nil
}

// Get returns a single post together with the ordered list of interested
// player names (creation order, original spelling preserved).
//
// Errors:
//   - ErrPostNotFound when no post with that id exists.
//   - The underlying DB error on store failure.
func (s *PostService) Get(ctx context.Context, id uint) (*domain.Post, []string, error) {
	p, err := repo.GetPost(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil, ErrPostNotFound
		}
		return nil, nil, err
	}
	names, err := repo.ListInterestedNames(ctx, s.DB, p.ID)
	if err != nil {
		return nil, nil, err
	}
	return p, names, nil
}

// Create validates and normalizes the input, enforces the one-post-per-
// character-per-server invariant, and inserts the post.
//
// Normalization:
//   - AuthorName and Text are trimmed and must be non-empty.
//   - Tags keep only non-empty trimmed entries, order preserved.
//   - Language defaults to "English" when blank.
//   - Slots defaults to 4 when missing/zero and is clamped to [1, 20].
//   - Server defaults to "1" when blank.
//
// Concurrency & atomicity:
//   - The duplicate-author check and the insert run in one transaction; the
//     (server, author_key) unique index closes the remaining race, and a
//     constraint violation on insert is likewise reported as
//     ErrDuplicateAuthor.
//
// Errors:
//   - ErrAuthorRequired / ErrTextRequired on blank required fields.
//   - ErrDuplicateAuthor when the character already has a post on the server.
//   - The underlying DB error on store failure.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*domain.Post, error) {
	name := strings.TrimSpace(in.AuthorName)
	if name == "" {
		return nil, ErrAuthorRequired
	}
	title := strings.TrimSpace(in.Text)
	if title == "" {
		return nil, ErrTextRequired
	}

	tags := make([]string, 0, len(in.Tags))
	for _, t := range in.Tags {
		if tt := strings.TrimSpace(t); tt != "" {
			tags = append(tags, tt)
		}
	}

	lang := strings.TrimSpace(in.Language)
	if lang == "" {
		lang = DefaultLanguage
	}

	server := strings.TrimSpace(in.Server)
	if server == "" {
		server = defaultServer
	}

	slots := in.Slots
	if slots == 0 {
		slots = DefaultSlots
	}
	slots = utils.ClampInt(slots, MinSlots, MaxSlots)

	p := &domain.Post{
		AuthorName:  name,
		Text:        title,
		Description: in.Description,
		Tags:        tags,
		Language:    lang,
		Slots:       slots,
		Server:      server,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := repo.CountAuthorPosts(ctx, tx, server, domain.NormalizeName(name))
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrDuplicateAuthor
		}
		if err := repo.CreatePost(ctx, tx, p); err != nil {
			if isDuplicate(err) {
				return ErrDuplicateAuthor
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a post and cascades its interest entries and comments.
// Only the post's author may delete it; the comparison is case-insensitive
// and trim-normalized.
//
// Errors:
//   - ErrAuthorRequired when authorName is blank.
//   - ErrPostNotFound when the post does not exist.
//   - ErrNotPostAuthor when authorName does not match the post's author.
//   - The underlying DB error on store failure.
func (s *PostService) Delete(ctx context.Context, id uint, authorName string) error {
	if strings.TrimSpace(authorName) == "" {
		return ErrAuthorRequired
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := repo.GetPost(ctx, tx, id)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrPostNotFound
			}
			return err
		}
		if !domain.SameName(p.AuthorName, authorName) {
			return ErrNotPostAuthor
		}
		if err := repo.DeleteInterestsForPost(ctx, tx, p.ID); err != nil {
			return err
		}
		if err := repo.DeleteCommentsForPost(ctx, tx, p.ID); err != nil {
			return err
		}
		return repo.DeletePost(ctx, tx, p.ID)
	})
}

// isDuplicate attempts to detect unique-constraint violations across drivers
// that may not map to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// SQLite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
