package services

import (
	"testing"

	"github.com/rarepublishers/rare/pkg/internal/database"
	"github.com/rarepublishers/rare/pkg/internal/models"
)

func TestCommentLifecycle(t *testing.T) {
	useTestDatabase(t)

	author := mustCreateProfile(t, "alice")
	category := mustCreateCategory(t, "news")

	post, err := NewPost(author, models.Post{
		Title:      "Hello world",
		Content:    "A post people will comment on.",
		CategoryID: category.ID,
	})
	if err != nil {
		t.Fatalf("new post: %v", err)
	}

	comment, err := NewComment(author, post, "first!")
	if err != nil {
		t.Fatalf("new comment: %v", err)
	}
	if comment.AuthorID != author.ID || comment.PostID != post.ID {
		t.Errorf("comment wired to author %d post %d", comment.AuthorID, comment.PostID)
	}

	comments, err := ListComment(FilterCommentWithPost(database.C, post.ID), 50, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("got %d comments, want 1", len(comments))
	}

	if _, err := EditComment(comment, "edited"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	got, err := GetComment(comment.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Content != "edited" {
		t.Errorf("content %q, want edited", got.Content)
	}

	if err := DeleteComment(got); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := GetComment(comment.ID); err == nil {
		t.Error("deleted comment should not resolve")
	}
}
