package services

import (
	"testing"

	"miniblog/app/db"
	jwtutil "miniblog/app/jwt"
	"miniblog/app/models"
	"miniblog/app/repo"

	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Connect(db.Config{Driver: "sqlite", Path: ":memory:", MaxIdleConns: 1, MaxOpenConns: 1})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(gdb) })
	if err := gdb.AutoMigrate(&models.User{}, &models.Post{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func newTestServices(t *testing.T) (*AuthService, *PostService) {
	t.Helper()
	gdb := openTestDB(t)
	signer := &jwtutil.Signer{Secret: []byte("test-secret"), Issuer: "miniblog", ExpHours: 24}
	return NewAuthService(repo.NewUserRepository(gdb), signer), NewPostService(repo.NewPostRepository(gdb))
}
