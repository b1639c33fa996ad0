package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Post struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	AuthorID  uint      `json:"authorId"`
	Author    *User     `json:"author"`
	Views     int       `json:"views"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PostPage struct {
	Posts       []Post `json:"posts"`
	TotalPages  int    `json:"totalPages"`
	CurrentPage int    `json:"currentPage"`
	TotalPosts  int64  `json:"totalPosts"`
}

type apiError struct {
	Message string `json:"message"`
}

type authResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Client talks to the blog REST API and holds the bearer token for the
// current session.
type Client struct {
	BaseURL string
	Token   string
	User    *User
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) do(method, path string, body any, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequest(method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		var apiErr apiError
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("%s", apiErr.Message)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) Login(email, password string) error {
	var resp authResponse
	if err := c.do(http.MethodPost, "/auth/login", map[string]string{"email": email, "password": password}, &resp); err != nil {
		return err
	}
	c.Token, c.User = resp.Token, resp.User
	return nil
}

func (c *Client) Register(username, email, password string) error {
	var resp authResponse
	body := map[string]string{"username": username, "email": email, "password": password}
	if err := c.do(http.MethodPost, "/auth/register", body, &resp); err != nil {
		return err
	}
	c.Token, c.User = resp.Token, resp.User
	return nil
}

func (c *Client) ListPosts(page int, search, tag string) (*PostPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if search != "" {
		q.Set("search", search)
	}
	if tag != "" {
		q.Set("tag", tag)
	}
	var out PostPage
	if err := c.do(http.MethodGet, "/posts?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetPost(id uint) (*Post, error) {
	var out Post
	if err := c.do(http.MethodGet, fmt.Sprintf("/posts/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePost(title, content string, tags []string) (*Post, error) {
	var out Post
	body := map[string]any{"title": title, "content": content, "tags": tags}
	if err := c.do(http.MethodPost, "/posts", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePost(id uint, title, content string, tags []string) (*Post, error) {
	var out Post
	body := map[string]any{"title": title, "content": content, "tags": tags}
	if err := c.do(http.MethodPut, fmt.Sprintf("/posts/%d", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePost(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/posts/%d", id), nil, nil)
}
