package router

import (
	"net/http"

	"miniblog/app/controllers"
	"miniblog/app/middleware"
)

func NewRouter(authCtrl *controllers.AuthController, postCtrl *controllers.PostController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	// public
	mux.HandleFunc("POST /auth/register", authCtrl.Register)
	mux.HandleFunc("POST /auth/login", authCtrl.Login)
	mux.HandleFunc("GET /posts", postCtrl.List)
	mux.HandleFunc("GET /posts/{id}", postCtrl.Get)

	// bearer token required
	mux.Handle("GET /auth/me", mw.RequireAuth(http.HandlerFunc(authCtrl.Me)))
	mux.Handle("POST /posts", mw.RequireAuth(http.HandlerFunc(postCtrl.Create)))
	mux.Handle("PUT /posts/{id}", mw.RequireAuth(http.HandlerFunc(postCtrl.Update)))
	mux.Handle("DELETE /posts/{id}", mw.RequireAuth(http.HandlerFunc(postCtrl.Delete)))

	return mux
}
