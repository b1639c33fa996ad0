package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"miniblog/app/controllers"
	"miniblog/app/db"
	jwtutil "miniblog/app/jwt"
	"miniblog/app/middleware"
	"miniblog/app/models"
	"miniblog/app/repo"
	"miniblog/app/services"
	"miniblog/router"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	gdb, err := db.Connect(db.Config{Driver: "sqlite", Path: ":memory:", MaxIdleConns: 1, MaxOpenConns: 1})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(gdb) })
	if err := gdb.AutoMigrate(&models.User{}, &models.Post{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	signer := &jwtutil.Signer{Secret: []byte("test-secret"), Issuer: "miniblog", ExpHours: 24}
	authSvc := services.NewAuthService(repo.NewUserRepository(gdb), signer)
	postSvc := services.NewPostService(repo.NewPostRepository(gdb))
	return router.NewRouter(
		controllers.NewAuthController(authSvc),
		controllers.NewPostController(postSvc),
		&middleware.Auth{Signer: signer},
	)
}

func request(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func registerUser(t *testing.T, h http.Handler, username, email string) string {
	t.Helper()
	w := request(t, h, http.MethodPost, "/auth/register", "", map[string]string{
		"username": username, "email": email, "password": "secret123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d body %s", username, w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	if resp.Token == "" {
		t.Fatal("register returned no token")
	}
	return resp.Token
}

func TestHealthz(t *testing.T) {
	h := newTestRouter(t)
	if w := request(t, h, http.MethodGet, "/healthz", "", nil); w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
}

func TestRegisterThenMe(t *testing.T) {
	h := newTestRouter(t)
	token := registerUser(t, h, "amy", "a@x.com")

	w := request(t, h, http.MethodGet, "/auth/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me: status %d body %s", w.Code, w.Body.String())
	}
	var user map[string]any
	decode(t, w, &user)
	if user["username"] != "amy" {
		t.Fatalf("username = %v", user["username"])
	}
	if strings.Contains(strings.ToLower(w.Body.String()), "password") {
		t.Fatalf("password leaked in response: %s", w.Body.String())
	}
}

func TestMeRequiresToken(t *testing.T) {
	h := newTestRouter(t)

	if w := request(t, h, http.MethodGet, "/auth/me", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status %d", w.Code)
	}
	if w := request(t, h, http.MethodGet, "/auth/me", "not-a-jwt", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: status %d", w.Code)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	h := newTestRouter(t)
	registerUser(t, h, "amy", "a@x.com")

	w := request(t, h, http.MethodPost, "/auth/register", "", map[string]string{
		"username": "completely-different", "email": "a@x.com", "password": "secret123",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d", w.Code)
	}
	var resp struct {
		Message string `json:"message"`
	}
	decode(t, w, &resp)
	if resp.Message != "email already registered" {
		t.Fatalf("message = %q", resp.Message)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	h := newTestRouter(t)
	registerUser(t, h, "amy", "a@x.com")

	wrongPass := request(t, h, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "a@x.com", "password": "wrong",
	})
	noUser := request(t, h, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "nobody@x.com", "password": "secret123",
	})
	if wrongPass.Code != http.StatusUnauthorized || noUser.Code != http.StatusUnauthorized {
		t.Fatalf("statuses %d / %d", wrongPass.Code, noUser.Code)
	}
	if wrongPass.Body.String() != noUser.Body.String() {
		t.Fatalf("enumeration signal: %q vs %q", wrongPass.Body.String(), noUser.Body.String())
	}
}

func TestPostLifecycle(t *testing.T) {
	h := newTestRouter(t)
	amy := registerUser(t, h, "amy", "a@x.com")
	bob := registerUser(t, h, "bob", "b@x.com")

	body := map[string]any{"title": "Hi There", "content": "0123456789", "tags": []string{"x"}}

	// unauthenticated create is rejected
	if w := request(t, h, http.MethodPost, "/posts", "", body); w.Code != http.StatusUnauthorized {
		t.Fatalf("create without token: status %d", w.Code)
	}

	w := request(t, h, http.MethodPost, "/posts", amy, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status %d body %s", w.Code, w.Body.String())
	}
	var created struct {
		ID     uint `json:"id"`
		Author struct {
			Username string `json:"username"`
		} `json:"author"`
	}
	decode(t, w, &created)
	if created.ID == 0 || created.Author.Username != "amy" {
		t.Fatalf("created = %+v", created)
	}
	path := fmt.Sprintf("/posts/%d", created.ID)

	// public read
	if w := request(t, h, http.MethodGet, path, "", nil); w.Code != http.StatusOK {
		t.Fatalf("get: status %d", w.Code)
	}

	// another valid token is forbidden, never unauthorized
	update := map[string]any{"title": "Taken Over", "content": "0123456789", "tags": []string{}}
	if w := request(t, h, http.MethodPut, path, bob, update); w.Code != http.StatusForbidden {
		t.Fatalf("update as bob: status %d", w.Code)
	}
	if w := request(t, h, http.MethodDelete, path, bob, nil); w.Code != http.StatusForbidden {
		t.Fatalf("delete as bob: status %d", w.Code)
	}

	// the author succeeds
	update["title"] = "New Title"
	w = request(t, h, http.MethodPut, path, amy, update)
	if w.Code != http.StatusOK {
		t.Fatalf("update as amy: status %d body %s", w.Code, w.Body.String())
	}
	var updated struct {
		Title string `json:"title"`
	}
	decode(t, w, &updated)
	if updated.Title != "New Title" {
		t.Fatalf("title = %q", updated.Title)
	}

	if w := request(t, h, http.MethodDelete, path, amy, nil); w.Code != http.StatusOK {
		t.Fatalf("delete as amy: status %d", w.Code)
	}
	if w := request(t, h, http.MethodGet, path, "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("get after delete: status %d", w.Code)
	}
}

func TestPostValidation(t *testing.T) {
	h := newTestRouter(t)
	amy := registerUser(t, h, "amy", "a@x.com")

	cases := []map[string]any{
		{"content": "long enough content"},
		{"title": "Hi", "content": "short"},
	}
	for _, body := range cases {
		if w := request(t, h, http.MethodPost, "/posts", amy, body); w.Code != http.StatusBadRequest {
			t.Fatalf("body %v: status %d", body, w.Code)
		}
	}
}

func TestListViaAPI(t *testing.T) {
	h := newTestRouter(t)
	amy := registerUser(t, h, "amy", "a@x.com")

	for i := 1; i <= 7; i++ {
		body := map[string]any{
			"title":   fmt.Sprintf("Post %d", i),
			"content": "some content here",
			"tags":    []string{"seed"},
		}
		if w := request(t, h, http.MethodPost, "/posts", amy, body); w.Code != http.StatusCreated {
			t.Fatalf("seed %d: status %d", i, w.Code)
		}
	}

	w := request(t, h, http.MethodGet, "/posts?page=2&limit=5", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: status %d", w.Code)
	}
	var resp struct {
		Posts       []json.RawMessage `json:"posts"`
		TotalPages  int               `json:"totalPages"`
		CurrentPage int               `json:"currentPage"`
		TotalPosts  int64             `json:"totalPosts"`
	}
	decode(t, w, &resp)
	if len(resp.Posts) != 2 || resp.TotalPages != 2 || resp.TotalPosts != 7 || resp.CurrentPage != 2 {
		t.Fatalf("got %d posts, totalPages=%d totalPosts=%d currentPage=%d",
			len(resp.Posts), resp.TotalPages, resp.TotalPosts, resp.CurrentPage)
	}
}
