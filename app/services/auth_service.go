package services

import (
	"errors"
	"regexp"
	"strings"

	"miniblog/app/apperr"
	jwtutil "miniblog/app/jwt"
	"miniblog/app/models"
	"miniblog/app/repo"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// The same message is returned for unknown emails and wrong passwords so a
// caller cannot probe which accounts exist.
const invalidCredentials = "invalid email or password"

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type AuthService struct {
	users  *repo.UserRepository
	signer *jwtutil.Signer
}

func NewAuthService(users *repo.UserRepository, signer *jwtutil.Signer) *AuthService {
	return &AuthService{users: users, signer: signer}
}

// Register creates a user and issues a token for the new identity.
func (s *AuthService) Register(username, email, password string) (*models.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, "", apperr.Validation("please provide all required fields")
	}
	if !emailPattern.MatchString(email) {
		return nil, "", apperr.Validation("invalid email format")
	}
	if len(password) < 6 {
		return nil, "", apperr.Validation("password must be at least 6 characters")
	}
	existing, err := s.users.FindByEmailOrUsername(email, username)
	if err != nil {
		return nil, "", apperr.Store(err)
	}
	if existing != nil {
		if existing.Email == email {
			return nil, "", apperr.Conflict("email already registered")
		}
		return nil, "", apperr.Conflict("username already taken")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperr.Store(err)
	}
	u := &models.User{Username: username, Email: email, PasswordHash: string(hash)}
	if err := s.users.Create(u); err != nil {
		// a concurrent registration can still trip the unique index
		return nil, "", apperr.FromGorm(err, "user not found")
	}
	token, err := s.signer.Sign(u.ID, u.Username)
	if err != nil {
		return nil, "", apperr.Store(err)
	}
	return u, token, nil
}

// Authenticate checks credentials and issues a fresh token.
func (s *AuthService) Authenticate(email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", apperr.Validation("please provide email and password")
	}
	u, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperr.Auth(invalidCredentials)
		}
		return nil, "", apperr.Store(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", apperr.Auth(invalidCredentials)
	}
	token, err := s.signer.Sign(u.ID, u.Username)
	if err != nil {
		return nil, "", apperr.Store(err)
	}
	return u, token, nil
}

// CurrentUser re-reads the profile behind a verified token so the caller
// gets fresh data even if the record changed after issuance.
func (s *AuthService) CurrentUser(id uint) (*models.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		return nil, apperr.FromGorm(err, "user not found")
	}
	return u, nil
}
