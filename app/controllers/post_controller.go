package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"miniblog/app/apperr"
	"miniblog/app/dto"
	"miniblog/app/middleware"
	"miniblog/app/repo"
	"miniblog/app/services"
)

type PostController struct{ Posts *services.PostService }

func NewPostController(posts *services.PostService) *PostController {
	return &PostController{Posts: posts}
}

func (c *PostController) List(w http.ResponseWriter, r *http.Request) {
	q := repo.PostQuery{
		Page:   intQuery(r, "page", 1),
		Limit:  intQuery(r, "limit", services.DefaultPageSize),
		Search: r.URL.Query().Get("search"),
		Tag:    r.URL.Query().Get("tag"),
	}
	page, err := c.Posts.List(q)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.PostListResponse{
		Posts:       page.Posts,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
		TotalPosts:  page.TotalPosts,
	})
}

func (c *PostController) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeError(w, apperr.Auth("missing token"))
		return
	}
	var req dto.PostRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	p, err := c.Posts.Create(claims.UserID, services.PostInput{Title: req.Title, Content: req.Content, Tags: req.Tags})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (c *PostController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	p, err := c.Posts.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (c *PostController) Update(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeError(w, apperr.Auth("missing token"))
		return
	}
	id, err := postID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req dto.PostRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	p, err := c.Posts.Update(id, claims.UserID, services.PostInput{Title: req.Title, Content: req.Content, Tags: req.Tags})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (c *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeError(w, apperr.Auth("missing token"))
		return
	}
	id, err := postID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := c.Posts.Delete(id, claims.UserID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "post deleted successfully"})
}

func postID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		return 0, apperr.NotFound("post not found")
	}
	return uint(id), nil
}

func intQuery(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}
