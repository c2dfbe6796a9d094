package domain

import "testing"

func TestTableNames(t *testing.T) {
	if got := (Post{}).TableName(); got != "lfg_posts" {
		t.Fatalf("Post table = %q", got)
	}
	if got := (Interest{}).TableName(); got != "lfg_interested" {
		t.Fatalf("Interest table = %q", got)
	}
	if got := (Comment{}).TableName(); got != "lfg_comments" {
		t.Fatalf("Comment table = %q", got)
	}
}

func TestPostHasTag(t *testing.T) {
	p := &Post{Tags: []string{"Questing", "Grinding"}}

	if !p.HasTag("Questing") {
		t.Fatalf("expected tag hit")
	}
	if p.HasTag("Raiding") {
		t.Fatalf("unexpected tag hit")
	}
	// Containment is exact, not case-insensitive: tags are labels, not identities.
	if p.HasTag("questing") {
		t.Fatalf("tag matching must be exact")
	}

	empty := &Post{}
	if empty.HasTag("Questing") {
		t.Fatalf("empty tag set matches nothing")
	}
}
