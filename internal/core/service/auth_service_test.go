package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/konveksi/order-system/internal/core/domain"
)

type stubAuthRepo struct {
	users map[string]*domain.User
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	stored := *user
	stored.ID = user.Username
	r.users[stored.Username] = &stored
	out := stored
	return &out, nil
}

func (r *stubAuthRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	if err := svc.Register(context.Background(), "alice", "secret"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	stored := repo.users["alice"]
	if stored == nil {
		t.Fatalf("expected user to be persisted")
	}
	if stored.PasswordHash == "secret" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	if err := svc.Register(context.Background(), "bob", "pass"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if err := svc.Register(context.Background(), "bob", "pass2"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	if err := svc.Register(context.Background(), "carol", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success")
	}
	if result.Username != "carol" {
		t.Fatalf("expected username to be echoed back, got %q", result.Username)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	_ = svc.Register(context.Background(), "dave", "goodpass")

	result, err := svc.Login(context.Background(), "dave", "badpass")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Success {
		t.Fatalf("expected unauthenticated result")
	}
}

// An unknown username yields the same unauthenticated result as a wrong
// password, so callers cannot probe which usernames exist.
func TestAuthService_Login_UnknownUser(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	result, err := svc.Login(context.Background(), "ghost", "pass")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Success || result.Username != "" {
		t.Fatalf("expected empty unauthenticated result, got %+v", result)
	}
}
