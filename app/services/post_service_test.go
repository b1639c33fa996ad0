package services

import (
	"fmt"
	"testing"

	"miniblog/app/apperr"
	"miniblog/app/models"
	"miniblog/app/repo"
)

func registerAuthor(t *testing.T, auth *AuthService, name string) *models.User {
	t.Helper()
	u, _, err := auth.Register(name, name+"@x.com", "secret123")
	if err != nil {
		t.Fatalf("register %s: %v", name, err)
	}
	return u
}

func TestCreatePost(t *testing.T) {
	auth, posts := newTestServices(t)
	amy := registerAuthor(t, auth, "amy")

	p, err := posts.Create(amy.ID, PostInput{Title: "Hi There", Content: "0123456789", Tags: []string{"x"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.AuthorID != amy.ID {
		t.Fatalf("author = %d, want %d", p.AuthorID, amy.ID)
	}
	if p.Author == nil || p.Author.Username != "amy" {
		t.Fatalf("author details not populated: %+v", p.Author)
	}
	if !p.Tags.Contains("x") {
		t.Fatalf("tags = %v", p.Tags)
	}
}

func TestCreatePostValidation(t *testing.T) {
	auth, posts := newTestServices(t)
	amy := registerAuthor(t, auth, "amy")

	cases := []struct {
		name string
		in   PostInput
	}{
		{"missing title", PostInput{Content: "long enough content"}},
		{"short content", PostInput{Title: "Hi", Content: "too short"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := posts.Create(amy.ID, tc.in); apperr.KindOf(err) != apperr.KindValidation {
				t.Fatalf("err = %v, want validation error", err)
			}
		})
	}
}

func TestUpdateOwnership(t *testing.T) {
	auth, posts := newTestServices(t)
	amy := registerAuthor(t, auth, "amy")
	bob := registerAuthor(t, auth, "bob")

	p, err := posts.Create(amy.ID, PostInput{Title: "Hi There", Content: "0123456789", Tags: []string{"x"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	in := PostInput{Title: "New Title", Content: "0123456789"}
	if _, err := posts.Update(p.ID, bob.ID, in); apperr.KindOf(err) != apperr.KindForbidden {
		t.Fatalf("err = %v, want forbidden", err)
	}
	updated, err := posts.Update(p.ID, amy.ID, in)
	if err != nil {
		t.Fatalf("Update as author: %v", err)
	}
	if updated.Title != "New Title" {
		t.Fatalf("title = %q", updated.Title)
	}

	// a missing post is not-found even for a non-author
	if _, err := posts.Update(9999, bob.ID, in); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestDeleteOwnership(t *testing.T) {
	auth, posts := newTestServices(t)
	amy := registerAuthor(t, auth, "amy")
	bob := registerAuthor(t, auth, "bob")

	p, err := posts.Create(amy.ID, PostInput{Title: "Hi There", Content: "0123456789"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := posts.Delete(p.ID, bob.ID); apperr.KindOf(err) != apperr.KindForbidden {
		t.Fatalf("err = %v, want forbidden", err)
	}
	if err := posts.Delete(p.ID, amy.ID); err != nil {
		t.Fatalf("Delete as author: %v", err)
	}
	if _, err := posts.Get(p.ID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("err = %v, want not found after delete", err)
	}
}

func TestListPagination(t *testing.T) {
	auth, posts := newTestServices(t)
	amy := registerAuthor(t, auth, "amy")

	for i := 1; i <= 7; i++ {
		in := PostInput{Title: fmt.Sprintf("Post %d", i), Content: "some content here"}
		if _, err := posts.Create(amy.ID, in); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}

	page, err := posts.List(repo.PostQuery{Page: 2, Limit: 5})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page.Posts) != 2 || page.TotalPages != 2 || page.TotalPosts != 7 || page.CurrentPage != 2 {
		t.Fatalf("got %d posts, totalPages=%d totalPosts=%d currentPage=%d",
			len(page.Posts), page.TotalPages, page.TotalPosts, page.CurrentPage)
	}

	// newest-first: page 1 starts at the last created post
	first, err := posts.List(repo.PostQuery{})
	if err != nil {
		t.Fatalf("List defaults: %v", err)
	}
	if first.CurrentPage != 1 || len(first.Posts) != DefaultPageSize {
		t.Fatalf("defaults: page=%d len=%d", first.CurrentPage, len(first.Posts))
	}
	if first.Posts[0].Title != "Post 7" {
		t.Fatalf("first post = %q, want newest", first.Posts[0].Title)
	}
}

func TestListSearchAndTag(t *testing.T) {
	auth, posts := newTestServices(t)
	amy := registerAuthor(t, auth, "amy")

	seed := []PostInput{
		{Title: "My First Post", Content: "hello world out there", Tags: []string{"intro"}},
		{Title: "Second", Content: "the FIRST word is hidden here", Tags: []string{"misc"}},
		{Title: "Third", Content: "nothing to see in this one", Tags: []string{"intro", "misc"}},
	}
	for _, in := range seed {
		if _, err := posts.Create(amy.ID, in); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	page, err := posts.List(repo.PostQuery{Search: "first"})
	if err != nil {
		t.Fatalf("List search: %v", err)
	}
	if page.TotalPosts != 2 {
		t.Fatalf("search matched %d posts, want 2 (title and content, case-insensitive)", page.TotalPosts)
	}

	page, err = posts.List(repo.PostQuery{Tag: "intro"})
	if err != nil {
		t.Fatalf("List tag: %v", err)
	}
	if page.TotalPosts != 2 {
		t.Fatalf("tag matched %d posts, want 2", page.TotalPosts)
	}
	for _, p := range page.Posts {
		if !p.Tags.Contains("intro") {
			t.Fatalf("post %q lacks tag", p.Title)
		}
	}
}
