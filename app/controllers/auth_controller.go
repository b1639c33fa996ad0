package controllers

import (
	"encoding/json"
	"net/http"

	"miniblog/app/apperr"
	"miniblog/app/dto"
	"miniblog/app/middleware"
	"miniblog/app/services"
)

type AuthController struct{ Auth *services.AuthService }

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	u, token, err := c.Auth.Register(req.Username, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.AuthResponse{Message: "user registered successfully", User: u, Token: token})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	u, token, err := c.Auth.Authenticate(req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.AuthResponse{Message: "login successful", User: u, Token: token})
}

// Me re-fetches the user record behind the token so the response carries
// fresh profile data.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeError(w, apperr.Auth("missing token"))
		return
	}
	u, err := c.Auth.CurrentUser(claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}
