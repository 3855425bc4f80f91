package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"golang.org/x/crypto/bcrypt"

	"github.com/relatahq/relata"
	"github.com/relatahq/relata/internal/domain"
	"github.com/relatahq/relata/internal/token"
)

var tracer = otel.Tracer("auth")

// UserRepository is the slice of persistence the auth service needs.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByID(ctx context.Context, id string) (domain.User, error)
}

type AuthService struct {
	users UserRepository
	token *token.Service
}

func NewAuthService(users UserRepository, tok *token.Service) *AuthService {
	return &AuthService{
		users: users,
		token: tok,
	}
}

type AuthResult struct {
	UserID string
}

func (s *AuthService) Register(ctx context.Context, email, password, name string) (domain.User, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.Register")
	defer span.End()

	if email == "" || password == "" {
		return domain.User{}, domain.InvalidRequestError{Message: "email and password are required"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		span.RecordError(err)
		return domain.User{}, errors.Wrap(err, "hashing password")
	}

	user, err := s.users.Create(ctx, domain.User{
		ID:           relata.NewID(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		CDate:        time.Now(),
	})
	if err != nil {
		span.RecordError(err)
		return domain.User{}, err
	}
	return user, nil
}

// Login checks the credentials and issues a bearer token. Credential
// failures are indistinguishable from unknown accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.Login")
	defer span.End()

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("invalid credentials")
	}

	signed, err := s.token.Create(user.ID)
	if err != nil {
		span.RecordError(err)
		return "", errors.Wrap(err, "signing token")
	}
	return signed, nil
}

// Authenticate resolves a bearer token into the requesting user.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*AuthResult, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.Authenticate")
	defer span.End()

	claims, err := s.token.Validate(tokenString)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if _, err := s.users.FindByID(ctx, claims.UserID); err != nil {
		span.RecordError(errors.Wrap(err, "token subject no longer exists"))
		return nil, err
	}

	return &AuthResult{UserID: claims.UserID}, nil
}
