// Package domain defines the persistence models for LFG posts, interest
// entries, and comments. These types are mapped with GORM and form the core
// data layer of the board service.
package domain

import (
	"time"
)

// Post represents a single looking-for-group listing on a game server
// (shard). A post is owned by the character name that created it; that name
// is the only identity allowed to delete the post or remove other players'
// interest entries.
//
// Fields:
//   - ID: integer primary key assigned by the store, immutable.
//   - AuthorName: creating character name as typed by the caller.
//   - AuthorKey: case-folded, trimmed AuthorName; combined with Server in a
//     unique index so one character can hold at most one live post per shard.
//   - Text: required post title.
//   - Description: optional free text, empty string when absent.
//   - Tags: ordered free-text labels, stored as a JSON-serialized column so
//     the schema is identical on SQLite and Postgres.
//   - Language: post language, defaults to "English".
//   - Slots: party capacity, clamped to [1, 20].
//   - Server: shard identifier the post belongs to; indexed for listing.
//   - CreatedAt: creation timestamp, newest-first sort key.
type Post struct {
	ID          uint      `json:"id"          gorm:"primaryKey"`
	AuthorName  string    `json:"author_name" gorm:"type:varchar(64);not null"`
	AuthorKey   string    `json:"-"           gorm:"type:varchar(64);not null;uniqueIndex:ux_posts_server_author,priority:2"`
	Text        string    `json:"text"        gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text;not null;default:''"`
	Tags        []string  `json:"tags"        gorm:"serializer:json"`
	Language    string    `json:"language"    gorm:"type:varchar(64);not null;default:'English'"`
	Slots       int       `json:"slots"       gorm:"not null;check:slots BETWEEN 1 AND 20"`
	Server      string    `json:"server"      gorm:"type:varchar(64);not null;index;uniqueIndex:ux_posts_server_author,priority:1"`
	CreatedAt   time.Time `json:"created_at"  gorm:"index"`
}

// TableName returns the database table name for Post.
func (Post) TableName() string { return "lfg_posts" }

// HasTag reports whether the post carries the given tag (exact match, the
// same containment semantics the list filter uses).
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Interest represents one character's claim on a slot in a post. The pair
// (post, folded player name) is unique, which makes duplicate joins converge
// on the existing row instead of creating a second claim.
//
// Fields:
//   - ID: integer primary key; also the creation-order sort key for the
//     interested list shown on a post.
//   - PostID: foreign key to the owning post (cascade delete).
//   - PlayerName: joining character name as typed by the caller.
//   - PlayerKey: case-folded, trimmed PlayerName; unique per post.
//   - CreatedAt: join timestamp.
type Interest struct {
	ID         uint      `json:"id"          gorm:"primaryKey"`
	PostID     uint      `json:"post_id"     gorm:"not null;index;uniqueIndex:ux_interest_post_player,priority:1"`
	PlayerName string    `json:"player_name" gorm:"type:varchar(64);not null"`
	PlayerKey  string    `json:"-"           gorm:"type:varchar(64);not null;uniqueIndex:ux_interest_post_player,priority:2"`
	CreatedAt  time.Time `json:"created_at"`

	// Post is the parent listing. Interest rows are cascade-deleted when
	// their post is removed.
	Post Post `json:"-" gorm:"foreignKey:PostID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Interest.
func (Interest) TableName() string { return "lfg_interested" }

// Comment is a timestamped free-text message attached to a post. The thread
// is append-only: comments are never edited or individually deleted, only
// removed by cascade when the parent post goes away.
type Comment struct {
	ID         uint      `json:"id"          gorm:"primaryKey"`
	PostID     uint      `json:"post_id"     gorm:"not null;index"`
	AuthorName string    `json:"author_name" gorm:"type:varchar(64);not null"`
	Text       string    `json:"text"        gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"created_at"  gorm:"index"`

	// Post is the parent listing. Comments are cascade-deleted when their
	// post is removed.
	Post Post `json:"-" gorm:"foreignKey:PostID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Comment.
func (Comment) TableName() string { return "lfg_comments" }
