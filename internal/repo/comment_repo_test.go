package repo

import (
	"context"
	"testing"
)

func TestCreateAndListComments_AscendingOrder(t *testing.T) {
	db := newTestDB(t)
	p := seedPost(t, db, "Mira", "1", 4)
	ctx := context.Background()

	for _, text := range []string{"first", "second", "third"} {
		if err := CreateComment(ctx, db, p.ID, "Boros", text); err != nil {
			t.Fatalf("CreateComment %q: %v", text, err)
		}
	}

	out, err := ListComments(ctx, db, p.ID)
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("got %d comments, want 3", len(out))
	}
	for i, want := range []string{"first", "second", "third"} {
		if out[i].Text != want {
			t.Fatalf("comment[%d] = %q, want %q", i, out[i].Text, want)
		}
	}
	if out[0].CreatedAt.IsZero() {
		t.Fatalf("CreatedAt not stamped")
	}
}

func TestListComments_EmptyThread(t *testing.T) {
	db := newTestDB(t)
	p := seedPost(t, db, "Mira", "1", 4)

	out, err := ListComments(context.Background(), db, p.ID)
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("got %d comments, want 0", len(out))
	}
}

func TestCountAndDeleteCommentsForPost(t *testing.T) {
	db := newTestDB(t)
	p := seedPost(t, db, "Mira", "1", 4)
	other := seedPost(t, db, "Kael", "2", 4)
	ctx := context.Background()

	_ = CreateComment(ctx, db, p.ID, "Boros", "hi")
	_ = CreateComment(ctx, db, p.ID, "Tam", "hello")
	_ = CreateComment(ctx, db, other.ID, "Boros", "elsewhere")

	if n, _ := CountComments(ctx, db, p.ID); n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
	if err := DeleteCommentsForPost(ctx, db, p.ID); err != nil {
		t.Fatalf("DeleteCommentsForPost: %v", err)
	}
	if n, _ := CountComments(ctx, db, p.ID); n != 0 {
		t.Fatalf("post still has %d comments", n)
	}
	if n, _ := CountComments(ctx, db, other.ID); n != 1 {
		t.Fatalf("sibling post count = %d, want 1", n)
	}
}
