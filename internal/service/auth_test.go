package service

import (
	"context"
	"testing"
	"time"

	"github.com/relatahq/relata/internal/domain"
	"github.com/relatahq/relata/internal/token"
)

type mockUserRepo struct {
	byID    map[string]domain.User
	byEmail map[string]domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byID:    map[string]domain.User{},
		byEmail: map[string]domain.User{},
	}
}

func (m *mockUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return u, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return domain.User{}, domain.NotFoundError{Kind: domain.KindUser}
	}
	return u, nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (domain.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return domain.User{}, domain.NotFoundError{Kind: domain.KindUser, ID: id}
	}
	return u, nil
}

func newAuth() (*AuthService, *mockUserRepo) {
	users := newMockUserRepo()
	return NewAuthService(users, token.New("test-secret", "relata", time.Hour)), users
}

func TestRegisterLoginAuthenticate(t *testing.T) {
	auth, _ := newAuth()
	ctx := context.Background()

	user, err := auth.Register(ctx, "ada@example.com", "hunter2", "Ada")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.PasswordHash == "hunter2" || user.PasswordHash == "" {
		t.Fatalf("expected password to be hashed")
	}

	signed, err := auth.Login(ctx, "ada@example.com", "hunter2")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	result, err := auth.Authenticate(ctx, signed)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if result.UserID != user.ID {
		t.Fatalf("expected requester %s got %s", user.ID, result.UserID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	auth, _ := newAuth()
	ctx := context.Background()

	if _, err := auth.Register(ctx, "ada@example.com", "hunter2", "Ada"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := auth.Login(ctx, "ada@example.com", "wrong"); err == nil {
		t.Fatalf("expected wrong password to fail")
	}
	if _, err := auth.Login(ctx, "nobody@example.com", "hunter2"); err == nil {
		t.Fatalf("expected unknown account to fail")
	}
}

func TestAuthenticateRejectsDeletedUser(t *testing.T) {
	auth, users := newAuth()
	ctx := context.Background()

	user, err := auth.Register(ctx, "ada@example.com", "hunter2", "Ada")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	signed, err := auth.Login(ctx, "ada@example.com", "hunter2")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	delete(users.byID, user.ID)

	if _, err := auth.Authenticate(ctx, signed); err == nil {
		t.Fatalf("expected authentication to fail for deleted user")
	}
}
