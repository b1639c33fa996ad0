package dto

import "miniblog/app/models"

type PostRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

type PostListResponse struct {
	Posts       []models.Post `json:"posts"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
	TotalPosts  int64         `json:"totalPosts"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
