package services

import (
	"strings"

	"miniblog/app/apperr"
	"miniblog/app/models"
	"miniblog/app/repo"
)

const (
	DefaultPageSize = 5
	maxTitleLen     = 120
	minContentLen   = 10
)

type PostInput struct {
	Title   string
	Content string
	Tags    []string
}

type PostPage struct {
	Posts       []models.Post
	TotalPages  int
	CurrentPage int
	TotalPosts  int64
}

type PostService struct{ posts *repo.PostRepository }

func NewPostService(posts *repo.PostRepository) *PostService { return &PostService{posts: posts} }

// List returns one page of posts newest-first. Pages are 1-indexed and the
// page size defaults to 5. The limit is passed through uncapped.
func (s *PostService) List(q repo.PostQuery) (*PostPage, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageSize
	}
	posts, total, err := s.posts.List(q)
	if err != nil {
		return nil, apperr.Store(err)
	}
	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	return &PostPage{Posts: posts, TotalPages: totalPages, CurrentPage: q.Page, TotalPosts: total}, nil
}

func (s *PostService) Create(authorID uint, in PostInput) (*models.Post, error) {
	if err := validatePostInput(&in); err != nil {
		return nil, err
	}
	p := &models.Post{Title: in.Title, Content: in.Content, Tags: models.TagList(in.Tags), AuthorID: authorID}
	if err := s.posts.Create(p); err != nil {
		return nil, apperr.Store(err)
	}
	return p, nil
}

func (s *PostService) Get(id uint) (*models.Post, error) {
	p, err := s.posts.FindByID(id)
	if err != nil {
		return nil, apperr.FromGorm(err, "post not found")
	}
	return p, nil
}

// Update applies field changes after the existence and ownership checks, in
// that order: a missing post is not-found even for a non-author.
func (s *PostService) Update(id, authorID uint, in PostInput) (*models.Post, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if p.AuthorID != authorID {
		return nil, apperr.Forbidden("not authorized to update this post")
	}
	if err := validatePostInput(&in); err != nil {
		return nil, err
	}
	p.Title = in.Title
	p.Content = in.Content
	p.Tags = models.TagList(in.Tags)
	if err := s.posts.Save(p); err != nil {
		return nil, apperr.Store(err)
	}
	return p, nil
}

func (s *PostService) Delete(id, authorID uint) error {
	p, err := s.Get(id)
	if err != nil {
		return err
	}
	if p.AuthorID != authorID {
		return apperr.Forbidden("not authorized to delete this post")
	}
	if err := s.posts.Delete(p); err != nil {
		return apperr.Store(err)
	}
	return nil
}

func validatePostInput(in *PostInput) error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return apperr.Validation("title is required")
	}
	if len(in.Title) > maxTitleLen {
		return apperr.Validation("title must be at most 120 characters")
	}
	if len(strings.TrimSpace(in.Content)) < minContentLen {
		return apperr.Validation("content must be at least 10 characters")
	}
	tags := make([]string, 0, len(in.Tags))
	for _, t := range in.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	in.Tags = tags
	return nil
}
